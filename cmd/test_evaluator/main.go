package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"pitchjury/config"
	"pitchjury/services"
)

// Runs the live evaluator against a canned Q&A transcript so prompt or
// model changes can be checked without driving the full HTTP flow.
func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	ctx := context.Background()
	evaluator, err := services.NewGeminiEvaluator(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model)
	if err != nil {
		panic("failed to initialize evaluator: " + err.Error())
	}

	analysisContext := `{
		"problem": "Mid-market finance teams close their books manually across disconnected tools.",
		"solution": "Ledgerly automates reconciliation and close checklists on top of existing ERPs.",
		"marketSize": "Roughly 200k mid-market companies in North America and Europe.",
		"businessModel": "Per-seat SaaS with a usage tier for transaction volume.",
		"competition": "Spreadsheet workflows, BlackLine at the enterprise end.",
		"risks": "Long sales cycles; ERP integration breadth."
	}`

	transcript := "Question 1: How do you land your first hundred customers?\n" +
		"Answer: We sell through fractional CFO networks; 40 design partners today.\n" +
		"Score: 7\n" +
		"Feedback: Concrete channel, but conversion data is still early.\n\n" +
		"Question 2: What stops an ERP vendor from building this?\n" +
		"Answer: Close workflows cut across ERPs, and vendors have no incentive to be neutral.\n" +
		"Score: 8\n" +
		"Feedback: Credible wedge grounded in vendor incentives."

	timeout := time.Duration(cfg.Evaluator.TimeoutSeconds) * time.Second
	scoreCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	evaluation, err := evaluator.ScoreSession(scoreCtx, analysisContext, transcript)
	if err != nil {
		panic("scoring failed: " + err.Error())
	}

	fmt.Println("Session Evaluation:")
	fmt.Printf("  Innovation:           %.1f\n", evaluation.InnovationScore)
	fmt.Printf("  Feasibility:          %.1f\n", evaluation.FeasibilityScore)
	fmt.Printf("  Market Potential:     %.1f\n", evaluation.MarketPotentialScore)
	fmt.Printf("  Pitch Clarity:        %.1f\n", evaluation.PitchClarityScore)
	fmt.Printf("  Problem-Solution Fit: %.1f\n", evaluation.ProblemSolutionFitScore)
	fmt.Printf("  Total:                %.1f\n", services.TotalScore(
		evaluation.InnovationScore,
		evaluation.FeasibilityScore,
		evaluation.MarketPotentialScore,
		evaluation.PitchClarityScore,
		evaluation.ProblemSolutionFitScore,
	))
	fmt.Println("Feedback:", evaluation.FeedbackSummary)
}
