package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"pitchjury/models"

	"github.com/google/uuid"
)

// SessionOrchestrator drives one founder's pass through the three phases:
// deck analysis, voice Q&A, and final scoring. All session state lives here
// in memory; only the final result is durable. One orchestrator serves one
// session and is invoked by one presentation-layer instance at a time.
type SessionOrchestrator struct {
	id          string
	startupName string
	founderName string

	evaluator Evaluator
	store     ResultStore
	timeout   time.Duration

	mu             sync.Mutex
	phase          models.Phase
	analysis       *models.PitchDeckAnalysis
	answers        []models.AnswerRecord
	result         *models.EvaluationResult
	answerInFlight bool
}

func NewSessionOrchestrator(evaluator Evaluator, store ResultStore, startupName, founderName string, timeout time.Duration) *SessionOrchestrator {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &SessionOrchestrator{
		id:          uuid.NewString(),
		startupName: startupName,
		founderName: founderName,
		evaluator:   evaluator,
		store:       store,
		timeout:     timeout,
		phase:       models.PhaseUpload,
	}
}

func (s *SessionOrchestrator) ID() string {
	return s.id
}

func (s *SessionOrchestrator) Phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Analysis returns the deck analysis, or nil before phase 1 completes.
func (s *SessionOrchestrator) Analysis() *models.PitchDeckAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

// AnalyzeDeck runs phase 1: a single evaluator call that extracts the deck
// narrative and generates 5-7 investor questions. On any failure the session
// stays in the upload phase with no partial state, so the caller may retry
// with the same document.
func (s *SessionOrchestrator) AnalyzeDeck(ctx context.Context, document []byte, mimeType string) (*models.PitchDeckAnalysis, error) {
	s.mu.Lock()
	if s.phase != models.PhaseUpload {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: deck already analyzed", ErrWrongPhase)
	}
	s.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	analysis, err := s.evaluator.AnalyzeDeck(callCtx, document, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if n := len(analysis.InvestorQuestions); n < 5 || n > 7 {
		// Contract violation: never pad with placeholder questions.
		return nil, fmt.Errorf("%w: evaluator returned %d questions, want 5-7", ErrAnalysisFailed, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = analysis
	s.answers = nil
	s.phase = models.PhaseQA
	return analysis, nil
}

// SubmitAnswer runs one step of phase 2: scoring the transcribed answer to
// the question at questionIndex, which must equal the session's current
// index. The returned bool reports whether this was the last question; the
// caller advances to finalize explicitly. Only one submission may be in
// flight per session.
func (s *SessionOrchestrator) SubmitAnswer(ctx context.Context, questionIndex int, transcribedText string) (models.AnswerRecord, bool, error) {
	s.mu.Lock()
	if s.phase != models.PhaseQA || s.analysis == nil {
		s.mu.Unlock()
		return models.AnswerRecord{}, false, fmt.Errorf("%w: session is not in the Q&A phase", ErrWrongPhase)
	}
	if s.answerInFlight {
		s.mu.Unlock()
		return models.AnswerRecord{}, false, ErrAnswerInProgress
	}
	if questionIndex != len(s.answers) {
		s.mu.Unlock()
		return models.AnswerRecord{}, false, fmt.Errorf("%w: got index %d, current index is %d", ErrOutOfOrderAnswer, questionIndex, len(s.answers))
	}
	answer := strings.TrimSpace(transcribedText)
	if answer == "" {
		s.mu.Unlock()
		return models.AnswerRecord{}, false, ErrEmptyAnswer
	}
	question := s.analysis.InvestorQuestions[questionIndex]
	analysisContext := serializeAnalysis(s.analysis)
	questionCount := len(s.analysis.InvestorQuestions)
	s.answerInFlight = true
	s.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	evaluation, err := s.evaluator.ScoreAnswer(callCtx, analysisContext, question, answer)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.answerInFlight = false
	if err != nil {
		// Retryable: no state was mutated for this question.
		return models.AnswerRecord{}, false, fmt.Errorf("%w: %v", ErrAnswerScoringFailed, err)
	}

	record := models.AnswerRecord{
		Question: question,
		Answer:   answer,
		Score:    ClampScore(evaluation.Score),
		Feedback: evaluation.Feedback,
	}
	s.answers = append(s.answers, record)
	done := len(s.answers) == questionCount
	return record, done, nil
}

// Answers returns a copy of the committed answer sequence in question order.
func (s *SessionOrchestrator) Answers() []models.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make([]models.AnswerRecord, len(s.answers))
	copy(answers, s.answers)
	return answers
}

// Finalize runs phase 3: one holistic evaluator call over the full
// transcript, local total-score computation, and a best-effort result-store
// append. A store failure is logged and never fails the call; the founder's
// result does not depend on organizer-side persistence. An evaluator failure
// is fatal but the answers are preserved, so Finalize may be retried.
func (s *SessionOrchestrator) Finalize(ctx context.Context) (*models.EvaluationResult, error) {
	s.mu.Lock()
	if s.analysis == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no deck analysis", ErrIncompleteSession)
	}
	if len(s.answers) < len(s.analysis.InvestorQuestions) {
		answered, total := len(s.answers), len(s.analysis.InvestorQuestions)
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %d of %d questions answered", ErrIncompleteSession, answered, total)
	}
	analysisContext := serializeAnalysis(s.analysis)
	transcript := serializeTranscript(s.answers)
	s.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	evaluation, err := s.evaluator.ScoreSession(callCtx, analysisContext, transcript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFinalizationFailed, err)
	}

	result := &models.EvaluationResult{
		InnovationScore:         evaluation.InnovationScore,
		FeasibilityScore:        evaluation.FeasibilityScore,
		MarketPotentialScore:    evaluation.MarketPotentialScore,
		PitchClarityScore:       evaluation.PitchClarityScore,
		ProblemSolutionFitScore: evaluation.ProblemSolutionFitScore,
		FeedbackSummary:         evaluation.FeedbackSummary,
		TotalScore: TotalScore(
			evaluation.InnovationScore,
			evaluation.FeasibilityScore,
			evaluation.MarketPotentialScore,
			evaluation.PitchClarityScore,
			evaluation.ProblemSolutionFitScore,
		),
	}

	record := models.StoredEvaluationRecord{
		ID:                 uuid.NewString(),
		CreatedAt:          time.Now().Unix(),
		StartupName:        s.startupName,
		FounderName:        s.founderName,
		TotalScore:         result.TotalScore,
		Innovation:         result.InnovationScore,
		Feasibility:        result.FeasibilityScore,
		MarketPotential:    result.MarketPotentialScore,
		PitchClarity:       result.PitchClarityScore,
		ProblemSolutionFit: result.ProblemSolutionFitScore,
		FeedbackSummary:    result.FeedbackSummary,
	}

	storeCtx, cancelStore := context.WithTimeout(context.Background(), s.timeout)
	defer cancelStore()
	if err := s.store.Append(storeCtx, record); err != nil {
		// Persistence isolation: the founder still gets the result.
		log.Printf("%v: session %s: %v", ErrPersistenceFailed, s.id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.phase = models.PhaseResults
	return result, nil
}

// serializeAnalysis renders the deck analysis as the JSON context string the
// evaluator prompts embed.
func serializeAnalysis(analysis *models.PitchDeckAnalysis) string {
	data, err := json.Marshal(analysis)
	if err != nil {
		return ""
	}
	return string(data)
}

// serializeTranscript renders the answer sequence, in question order, as the
// transcript the session-level evaluator call consumes.
func serializeTranscript(answers []models.AnswerRecord) string {
	var sb strings.Builder
	for i, answer := range answers {
		sb.WriteString(fmt.Sprintf("Question %d: %s\n", i+1, answer.Question))
		sb.WriteString(fmt.Sprintf("Answer: %s\n", answer.Answer))
		sb.WriteString(fmt.Sprintf("Score: %.1f\n", answer.Score))
		sb.WriteString(fmt.Sprintf("Feedback: %s\n\n", answer.Feedback))
	}
	return sb.String()
}
