package models

// PitchDeckAnalysis is the structured output of the deck-analysis phase.
// It is immutable once produced and owned by the session for its lifetime.
type PitchDeckAnalysis struct {
	Problem           string   `json:"problem" bson:"problem"`
	Solution          string   `json:"solution" bson:"solution"`
	MarketSize        string   `json:"marketSize" bson:"marketSize"`
	BusinessModel     string   `json:"businessModel" bson:"businessModel"`
	Competition       string   `json:"competition" bson:"competition"`
	Risks             string   `json:"risks" bson:"risks"`
	InvestorQuestions []string `json:"investorQuestions" bson:"investorQuestions"`
}

// AnswerRecord holds one scored answer. Records are appended in question
// order and never mutated afterwards.
type AnswerRecord struct {
	Question string  `json:"question" bson:"question"`
	Answer   string  `json:"answer" bson:"answer"`
	Score    float64 `json:"score" bson:"score"`
	Feedback string  `json:"feedback" bson:"feedback"`
}

// EvaluationResult is the final session evaluation returned to the founder.
// TotalScore is always the mean of the five category scores rounded to one
// decimal, computed locally and never trusted from the model.
type EvaluationResult struct {
	InnovationScore         float64 `json:"innovationScore"`
	FeasibilityScore        float64 `json:"feasibilityScore"`
	MarketPotentialScore    float64 `json:"marketPotentialScore"`
	PitchClarityScore       float64 `json:"pitchClarityScore"`
	ProblemSolutionFitScore float64 `json:"problemSolutionFitScore"`
	FeedbackSummary         string  `json:"feedbackSummary"`
	TotalScore              float64 `json:"totalScore"`
}

// StoredEvaluationRecord is the durable form written to the result store and
// read back by the organizer dashboard, newest first.
type StoredEvaluationRecord struct {
	ID                 string  `json:"id" bson:"_id"`
	CreatedAt          int64   `json:"createdAt" bson:"createdAt"`
	StartupName        string  `json:"startupName" bson:"startupName"`
	FounderName        string  `json:"founderName" bson:"founderName"`
	TotalScore         float64 `json:"totalScore" bson:"totalScore"`
	Innovation         float64 `json:"innovation" bson:"innovation"`
	Feasibility        float64 `json:"feasibility" bson:"feasibility"`
	MarketPotential    float64 `json:"marketPotential" bson:"marketPotential"`
	PitchClarity       float64 `json:"pitchClarity" bson:"pitchClarity"`
	ProblemSolutionFit float64 `json:"problemSolutionFit" bson:"problemSolutionFit"`
	FeedbackSummary    string  `json:"feedbackSummary" bson:"feedbackSummary"`
}
