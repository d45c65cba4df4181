package controllers

import (
	"fmt"
	"net/http"

	"pitchjury/models"
	"pitchjury/services"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the organizer views over finalized evaluations.
type DashboardController struct {
	Store services.ResultStore
}

func NewDashboardController(store services.ResultStore) *DashboardController {
	return &DashboardController{Store: store}
}

// DashboardData is the response structure for the organizer dashboard.
type DashboardData struct {
	Results []models.StoredEvaluationRecord `json:"results"`
	Stats   []Stat                          `json:"stats"`
}

// Stat represents a single aggregate statistic
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetResults returns all evaluation records, newest first, with a few
// aggregate stats.
func (dc *DashboardController) GetResults(c *gin.Context) {
	records, err := dc.Store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evaluation results"})
		return
	}

	var sum, top float64
	for _, record := range records {
		sum += record.TotalScore
		if record.TotalScore > top {
			top = record.TotalScore
		}
	}
	average := 0.0
	if len(records) > 0 {
		average = sum / float64(len(records))
	}

	c.JSON(http.StatusOK, DashboardData{
		Results: records,
		Stats: []Stat{
			{Value: fmt.Sprintf("%d", len(records)), Label: "Startups evaluated"},
			{Value: fmt.Sprintf("%.1f", average), Label: "Average total score"},
			{Value: fmt.Sprintf("%.1f", top), Label: "Top total score"},
		},
	})
}
