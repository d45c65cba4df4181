package routes

import (
	"pitchjury/controllers"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the organizer dashboard routes
func SetupDashboardRoutes(router *gin.RouterGroup, controller *controllers.DashboardController) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/results", controller.GetResults)
	}
}
