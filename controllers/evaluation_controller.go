package controllers

import (
	"errors"
	"io"
	"net/http"

	"pitchjury/models"
	"pitchjury/services"

	"github.com/gin-gonic/gin"
)

var allowedDeckTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"application/vnd.ms-powerpoint":                                             true,
}

// EvaluationController exposes the founder-facing evaluation flow. The
// session manager is injected at construction.
type EvaluationController struct {
	Manager        *services.SessionManager
	MaxUploadBytes int64
}

func NewEvaluationController(manager *services.SessionManager, maxUploadBytes int64) *EvaluationController {
	return &EvaluationController{Manager: manager, MaxUploadBytes: maxUploadBytes}
}

type StartEvaluationResponse struct {
	SessionId string                    `json:"sessionId"`
	Analysis  *models.PitchDeckAnalysis `json:"analysis"`
}

type SubmitAnswerRequest struct {
	QuestionIndex *int   `json:"questionIndex" binding:"required"`
	Answer        string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Record models.AnswerRecord `json:"record"`
	Done   bool                `json:"done"`
}

// StartEvaluation accepts the multipart deck upload, creates a session, and
// runs phase 1. The upload size is validated before the evaluator is touched.
func (ec *EvaluationController) StartEvaluation(c *gin.Context) {
	startupName := c.PostForm("startupName")
	founderName := c.PostForm("founderName")
	if startupName == "" || founderName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startupName and founderName are required"})
		return
	}

	file, header, err := c.Request.FormFile("deck")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pitch deck file is required"})
		return
	}
	defer file.Close()

	if header.Size > ec.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "pitch deck exceeds the maximum upload size"})
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if !allowedDeckTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pitch deck must be a PDF or PPTX file"})
		return
	}

	document, err := io.ReadAll(io.LimitReader(file, ec.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read pitch deck: " + err.Error()})
		return
	}
	if int64(len(document)) > ec.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "pitch deck exceeds the maximum upload size"})
		return
	}

	session := ec.Manager.Create(startupName, founderName)
	analysis, err := session.AnalyzeDeck(c.Request.Context(), document, mimeType)
	if err != nil {
		// No partial state survives a failed analysis.
		ec.Manager.Remove(session.ID())
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StartEvaluationResponse{
		SessionId: session.ID(),
		Analysis:  analysis,
	})
}

// SubmitAnswer scores one transcribed answer against the current question.
func (ec *EvaluationController) SubmitAnswer(c *gin.Context) {
	session, err := ec.Manager.Get(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	record, done, err := session.SubmitAnswer(c.Request.Context(), *req.QuestionIndex, req.Answer)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SubmitAnswerResponse{Record: record, Done: done})
}

// Finalize runs phase 3 and returns the evaluation result. Persistence
// failures never surface here; the orchestrator reports them to the log only.
func (ec *EvaluationController) Finalize(c *gin.Context) {
	session, err := ec.Manager.Get(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	result, err := session.Finalize(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyAnswer),
		errors.Is(err, services.ErrOutOfOrderAnswer):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAnswerInProgress),
		errors.Is(err, services.ErrIncompleteSession),
		errors.Is(err, services.ErrWrongPhase):
		return http.StatusConflict
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAnalysisFailed),
		errors.Is(err, services.ErrAnswerScoringFailed),
		errors.Is(err, services.ErrFinalizationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
