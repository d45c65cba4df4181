package services

import "errors"

// Session error taxonomy. Handlers map these to HTTP statuses with errors.Is;
// services wrap them with fmt.Errorf("%w: ...") to attach detail.
var (
	// ErrAnalysisFailed means the deck-analysis call failed or returned
	// out-of-contract data (e.g. fewer than 5 questions). The session stays
	// in the upload phase and may be retried with the same document.
	ErrAnalysisFailed = errors.New("pitch deck analysis failed")

	// ErrEmptyAnswer means the transcribed text was empty after trimming.
	// Raised before any evaluator call; no state is mutated.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrAnswerInProgress means another answer submission is still in
	// flight for this session.
	ErrAnswerInProgress = errors.New("answer submission already in progress")

	// ErrOutOfOrderAnswer means the submitted question index does not match
	// the session's current question index.
	ErrOutOfOrderAnswer = errors.New("answer submitted out of order")

	// ErrAnswerScoringFailed means the per-answer evaluator call failed
	// entirely. The same question/answer pair may be retried.
	ErrAnswerScoringFailed = errors.New("answer scoring failed")

	// ErrIncompleteSession means finalize was called before every question
	// had an answer. No external calls are made.
	ErrIncompleteSession = errors.New("session has unanswered questions")

	// ErrFinalizationFailed means the session-level evaluator call failed.
	// All answers are preserved, so finalize may be retried.
	ErrFinalizationFailed = errors.New("session finalization failed")

	// ErrPersistenceFailed marks a result-store write failure. It is logged
	// only and never surfaced to the founder-facing caller.
	ErrPersistenceFailed = errors.New("result persistence failed")

	// ErrWrongPhase means an operation was invoked in a phase that does not
	// permit it, e.g. submitting an answer before the deck was analyzed.
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrSessionNotFound means no session exists for the given id.
	ErrSessionNotFound = errors.New("session not found")
)
