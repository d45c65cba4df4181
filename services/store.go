package services

import (
	"context"
	"fmt"
	"log"

	"pitchjury/models"
)

// ResultStore is the durable append-only list of evaluation records consumed
// by the orchestrator and the organizer dashboard.
type ResultStore interface {
	Append(ctx context.Context, record models.StoredEvaluationRecord) error
	// ListAll returns records sorted by creation time descending.
	ListAll(ctx context.Context) ([]models.StoredEvaluationRecord, error)
}

// MultiStore fans each append out to a primary store plus any number of
// mirrors (e.g. the organizer spreadsheet). Mirror failures are logged and
// never returned; reads always come from the primary.
type MultiStore struct {
	primary ResultStore
	mirrors []ResultStore
}

func NewMultiStore(primary ResultStore, mirrors ...ResultStore) *MultiStore {
	return &MultiStore{primary: primary, mirrors: mirrors}
}

func (m *MultiStore) Append(ctx context.Context, record models.StoredEvaluationRecord) error {
	for _, mirror := range m.mirrors {
		if err := mirror.Append(ctx, record); err != nil {
			log.Printf("Mirror store append failed for record %s: %v", record.ID, err)
		}
	}
	if err := m.primary.Append(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}

func (m *MultiStore) ListAll(ctx context.Context) ([]models.StoredEvaluationRecord, error) {
	return m.primary.ListAll(ctx)
}
