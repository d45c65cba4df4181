package services

import (
	"context"

	"pitchjury/models"
)

// AnswerEvaluation is the evaluator's verdict on a single answer.
type AnswerEvaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// SessionEvaluation is the evaluator's holistic verdict on the full Q&A
// transcript, re-derived from the whole performance rather than averaged
// from per-answer scores.
type SessionEvaluation struct {
	InnovationScore         float64 `json:"innovationScore"`
	FeasibilityScore        float64 `json:"feasibilityScore"`
	MarketPotentialScore    float64 `json:"marketPotentialScore"`
	PitchClarityScore       float64 `json:"pitchClarityScore"`
	ProblemSolutionFitScore float64 `json:"problemSolutionFitScore"`
	FeedbackSummary         string  `json:"feedbackSummary"`
}

// Evaluator is the AI jury capability the orchestrator depends on. It is
// injected at construction so tests can substitute doubles.
type Evaluator interface {
	// AnalyzeDeck extracts the narrative fields from a raw pitch deck and
	// generates investor-style questions.
	AnalyzeDeck(ctx context.Context, document []byte, mimeType string) (*models.PitchDeckAnalysis, error)

	// ScoreAnswer scores one transcribed answer against its question, with
	// the serialized deck analysis as context.
	ScoreAnswer(ctx context.Context, analysisContext, question, answer string) (AnswerEvaluation, error)

	// ScoreSession scores the entire Q&A transcript holistically.
	ScoreSession(ctx context.Context, analysisContext, transcript string) (SessionEvaluation, error)
}
