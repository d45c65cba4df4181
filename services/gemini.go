package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pitchjury/models"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiEvaluator implements Evaluator on top of the Gemini API. The client
// is injected at construction; there is no package-level state.
type GeminiEvaluator struct {
	client *genai.Client
	model  string
}

func NewGeminiEvaluator(ctx context.Context, apiKey, model string) (*GeminiEvaluator, error) {
	config := &genai.ClientConfig{}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiEvaluator{client: client, model: model}, nil
}

func (g *GeminiEvaluator) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := cleanModelOutput(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}

// cleanModelOutput strips the markdown code fences Gemini tends to wrap JSON in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// AnalyzeDeck sends the raw deck bytes alongside the analysis prompt and
// parses the structured response. Question-count validation is the
// orchestrator's job, not this client's.
func (g *GeminiEvaluator) AnalyzeDeck(ctx context.Context, document []byte, mimeType string) (*models.PitchDeckAnalysis, error) {
	prompt := `You are an AI jury member evaluating startup pitch decks. Analyze the attached pitch deck and extract the problem the startup is trying to solve, their proposed solution, the target market size, the business model, the competitive landscape, and the potential risks.

Then generate between 5 and 7 investor-style questions grounded in specific details from this deck, not generic boilerplate. Together the questions must cover at least: problem clarity, feasibility, market sizing, differentiation, monetization, and risk.

Required Output Format (JSON):
{
  "problem": "text",
  "solution": "text",
  "marketSize": "text",
  "businessModel": "text",
  "competition": "text",
  "risks": "text",
  "investorQuestions": ["question 1", "question 2", ...]
}

Provide ONLY the JSON output without additional text or markdown formatting.`

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(document, mimeType),
		}, genai.RoleUser),
	}

	response, err := g.generate(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze pitch deck: %w", err)
	}
	return parseDeckAnalysis(response)
}

func parseDeckAnalysis(response string) (*models.PitchDeckAnalysis, error) {
	var analysis models.PitchDeckAnalysis
	if err := json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("invalid deck analysis format: %w", err)
	}
	return &analysis, nil
}

// ScoreAnswer evaluates one transcribed answer in the context of the deck
// analysis. A malformed or missing score is coerced to 0 so a partial session
// can still reach the results phase; empty feedback is a hard failure.
func (g *GeminiEvaluator) ScoreAnswer(ctx context.Context, analysisContext, question, answer string) (AnswerEvaluation, error) {
	prompt := fmt.Sprintf(
		`You are an AI jury member conducting a voice Q&A with a startup founder. Evaluate the founder's answer to the investor question below, judging clarity, feasibility, scalability, innovation, and risk-awareness of this specific answer.

Pitch Deck Analysis:
%s

Question: "%s"
Founder's Answer: "%s"

Required Output Format (JSON):
{
  "score": X,
  "feedback": "2-3 sentences of investor-style feedback"
}

The score must be a number from 1 to 10. Provide ONLY the JSON output without additional text or markdown formatting.`,
		analysisContext, question, answer,
	)

	response, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return AnswerEvaluation{}, fmt.Errorf("failed to score answer: %w", err)
	}
	return parseAnswerEvaluation(response)
}

func parseAnswerEvaluation(response string) (AnswerEvaluation, error) {
	var parsed struct {
		Score    any    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return AnswerEvaluation{}, fmt.Errorf("invalid answer evaluation format: %w", err)
	}
	if strings.TrimSpace(parsed.Feedback) == "" {
		return AnswerEvaluation{}, errors.New("answer evaluation has no feedback")
	}
	return AnswerEvaluation{
		Score:    coerceScore(parsed.Score),
		Feedback: parsed.Feedback,
	}, nil
}

// coerceScore turns whatever the model put in the score field into a bounded
// number, defaulting to 0 instead of propagating a type error.
func coerceScore(value any) float64 {
	switch v := value.(type) {
	case float64:
		return ClampScore(v)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return ClampScore(parsed)
		}
	}
	return 0
}

// ScoreSession re-derives the five category scores holistically from the full
// Q&A transcript rather than averaging the per-answer scores.
func (g *GeminiEvaluator) ScoreSession(ctx context.Context, analysisContext, transcript string) (SessionEvaluation, error) {
	prompt := fmt.Sprintf(
		`You are an expert evaluator for a startup pitch competition. Using the pitch deck analysis and the complete Q&A transcript below, score the founder's overall performance.

Evaluation Criteria (each scored 0-10, judged across the entire transcript, not per answer):
- Innovation
- Feasibility
- Market Potential
- Pitch Clarity
- Problem-Solution Fit

Also write a feedback summary of 3 to 5 sentences covering strengths and actionable weaknesses.

Pitch Deck Analysis:
%s

Q&A Transcript:
%s

Required Output Format (JSON):
{
  "innovationScore": X,
  "feasibilityScore": X,
  "marketPotentialScore": X,
  "pitchClarityScore": X,
  "problemSolutionFitScore": X,
  "feedbackSummary": "text"
}

All scores must be numbers. Provide ONLY the JSON output without additional text or markdown formatting.`,
		analysisContext, transcript,
	)

	response, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return SessionEvaluation{}, fmt.Errorf("failed to score session: %w", err)
	}
	return parseSessionEvaluation(response)
}

func parseSessionEvaluation(response string) (SessionEvaluation, error) {
	var evaluation SessionEvaluation
	if err := json.Unmarshal([]byte(response), &evaluation); err != nil {
		return SessionEvaluation{}, fmt.Errorf("invalid session evaluation format: %w", err)
	}
	if strings.TrimSpace(evaluation.FeedbackSummary) == "" {
		return SessionEvaluation{}, errors.New("session evaluation has no feedback summary")
	}
	evaluation.InnovationScore = ClampScore(evaluation.InnovationScore)
	evaluation.FeasibilityScore = ClampScore(evaluation.FeasibilityScore)
	evaluation.MarketPotentialScore = ClampScore(evaluation.MarketPotentialScore)
	evaluation.PitchClarityScore = ClampScore(evaluation.PitchClarityScore)
	evaluation.ProblemSolutionFitScore = ClampScore(evaluation.ProblemSolutionFitScore)
	return evaluation, nil
}
