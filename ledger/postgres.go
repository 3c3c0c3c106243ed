package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/moneywire/pgmoney"
)

// driverName is the database/sql driver the ledger binds through. Money
// amounts cross it as text; lib/pq has no binary parameter mode.
const driverName = "postgres"

// DB is the ledger's handle to a Postgres database.
type DB struct {
	*sql.DB
}

// Open connects to Postgres with a lib/pq connection string
// ("host=localhost port=5432 dbname=ledger sslmode=disable", or a
// postgres:// URL) and verifies the connection before returning it.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &DB{DB: db}, nil
}

// entryRepository implements Repository
type entryRepository struct {
	db *DB
}

// NewEntryRepository creates a new ledger entry repository
func NewEntryRepository(db *DB) Repository {
	return &entryRepository{db: db}
}

// Record inserts a ledger entry. The amount travels through the driver as
// its canonical money text via pgmoney.Money's driver.Valuer.
func (r *entryRepository) Record(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	insertQuery := `
		INSERT INTO ledger_entries (id, description, amount, recorded_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, insertQuery,
		entry.ID,
		entry.Description,
		entry.Amount,
		entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	return nil
}

// FindByID loads a single entry; the money column scans back through
// pgmoney.Money's sql.Scanner.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*Entry, error) {
	query := `
		SELECT id, description, amount, recorded_at
		FROM ledger_entries
		WHERE id = $1
	`

	var entry Entry
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Description,
		&entry.Amount,
		&entry.RecordedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ledger entry %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entry: %w", err)
	}

	return &entry, nil
}

// Balance sums every entry server-side; summing money columns yields money,
// so the result scans like any other amount.
func (r *entryRepository) Balance(ctx context.Context) (pgmoney.Money, error) {
	query := `
		SELECT COALESCE(SUM(amount), '$0.00'::money)
		FROM ledger_entries
	`

	var balance pgmoney.Money
	if err := r.db.QueryRowContext(ctx, query).Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to query ledger balance: %w", err)
	}

	return balance, nil
}
