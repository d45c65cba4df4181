// Package sheets mirrors evaluation records into the organizer spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pitchjury/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	appendRange = "Sheet1!A1"
	readRange   = "Sheet1!A2:J"
)

// Store appends one row per finalized evaluation. It is a mirror store:
// callers treat its failures as non-fatal.
type Store struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewStore(ctx context.Context, credentialsFile, spreadsheetID string) (*Store, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Store{service: service, spreadsheetID: spreadsheetID}, nil
}

func (s *Store) Append(ctx context.Context, record models.StoredEvaluationRecord) error {
	row := []interface{}{
		time.Unix(record.CreatedAt, 0).UTC().Format(time.RFC3339),
		record.StartupName,
		record.FounderName,
		record.TotalScore,
		record.Innovation,
		record.Feasibility,
		record.MarketPotential,
		record.PitchClarity,
		record.ProblemSolutionFit,
		record.FeedbackSummary,
	}
	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, appendRange, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to sheet: %w", err)
	}
	return nil
}

// ListAll reads the sheet back, newest first. Rows are appended
// chronologically, so the read order is reversed.
func (s *Store) ListAll(ctx context.Context) ([]models.StoredEvaluationRecord, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	records := make([]models.StoredEvaluationRecord, 0, len(resp.Values))
	for i := len(resp.Values) - 1; i >= 0; i-- {
		row := resp.Values[i]
		record := models.StoredEvaluationRecord{ID: fmt.Sprintf("row-%d", i+2)}
		if ts, err := time.Parse(time.RFC3339, cell(row, 0)); err == nil {
			record.CreatedAt = ts.Unix()
		}
		record.StartupName = cell(row, 1)
		record.FounderName = cell(row, 2)
		record.TotalScore = cellFloat(row, 3)
		record.Innovation = cellFloat(row, 4)
		record.Feasibility = cellFloat(row, 5)
		record.MarketPotential = cellFloat(row, 6)
		record.PitchClarity = cellFloat(row, 7)
		record.ProblemSolutionFit = cellFloat(row, 8)
		record.FeedbackSummary = cell(row, 9)
		records = append(records, record)
	}
	return records, nil
}

func cell(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	value, _ := row[index].(string)
	return value
}

func cellFloat(row []interface{}, index int) float64 {
	if index >= len(row) {
		return 0
	}
	switch v := row[index].(type) {
	case float64:
		return v
	case string:
		parsed, _ := strconv.ParseFloat(v, 64)
		return parsed
	}
	return 0
}
