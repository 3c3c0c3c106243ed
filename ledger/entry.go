// Package ledger is a minimal Postgres-backed ledger of money entries. It
// exists to carry pgmoney.Money across a real driver boundary: amounts are
// bound and scanned as native money columns through database/sql.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/moneywire/pgmoney"
)

// Entry represents a single signed movement of money in the ledger.
type Entry struct {
	ID          uuid.UUID
	Description string
	Amount      pgmoney.Money
	RecordedAt  time.Time
}

// Validate ensures the entry adheres to domain rules.
// Returns an error if validation fails.
func (e *Entry) Validate() error {
	if e.ID == uuid.Nil {
		return errors.New("entry ID cannot be nil")
	}
	if e.Description == "" {
		return errors.New("entry description cannot be empty")
	}
	if e.Amount.IsZero() {
		return errors.New("entry amount cannot be zero")
	}
	return nil
}

// Repository defines the persistence operations for ledger entries.
type Repository interface {
	Record(ctx context.Context, entry *Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	Balance(ctx context.Context) (pgmoney.Money, error)
}
