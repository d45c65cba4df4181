package routes

import (
	"pitchjury/controllers"

	"github.com/gin-gonic/gin"
)

// SetupEvaluationRoutes sets up the founder-facing evaluation flow routes
func SetupEvaluationRoutes(router *gin.RouterGroup, controller *controllers.EvaluationController) {
	evaluation := router.Group("/evaluation")
	{
		evaluation.POST("/start", controller.StartEvaluation)
		evaluation.POST("/:sessionId/answer", controller.SubmitAnswer)
		evaluation.POST("/:sessionId/finalize", controller.Finalize)
	}
}
