package utils

import (
	"context"
	"log"
	"time"

	"pitchjury/models"
	"pitchjury/services"

	"github.com/google/uuid"
)

// SeedSampleEvaluations inserts a few example records so the organizer
// dashboard has something to show on a fresh database. It is a no-op
// when the store already holds data.
func SeedSampleEvaluations(ctx context.Context, store services.ResultStore) {
	existing, err := store.ListAll(ctx)
	if err != nil {
		log.Printf("Skipping sample data seed: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	samples := []models.StoredEvaluationRecord{
		{
			StartupName:             "Ledgerly",
			FounderName:             "Dana Reyes",
			TotalScore:         7.4,
			Innovation:         7,
			Feasibility:        7,
			MarketPotential:    8,
			PitchClarity:       8,
			ProblemSolutionFit: 7,
			FeedbackSummary:    "Clear wedge into mid-market finance teams; distribution plan still thin.",
		},
		{
			StartupName:             "Gridmote",
			FounderName:             "Sam Okafor",
			TotalScore:         6.2,
			Innovation:         8,
			Feasibility:        5,
			MarketPotential:    7,
			PitchClarity:       6,
			ProblemSolutionFit: 5,
			FeedbackSummary:    "Ambitious hardware play, but the unit economics need another pass.",
		},
	}

	for _, record := range samples {
		record.ID = uuid.NewString()
		record.CreatedAt = time.Now().Unix()
		if err := store.Append(ctx, record); err != nil {
			log.Printf("Failed to seed sample record for %s: %v", record.StartupName, err)
		}
	}
	log.Printf("Seeded %d sample evaluation records", len(samples))
}
