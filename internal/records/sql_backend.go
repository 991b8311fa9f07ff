package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allisson/crowdfund/internal/database"
	apperrors "github.com/allisson/crowdfund/internal/errors"
)

// SQLBackend keeps each record set as one row of the record_sets table. Writes delete
// and re-insert the row inside a transaction.
type SQLBackend struct {
	db        *sql.DB
	txManager database.TxManager
	dollar    bool
}

// NewSQLBackend creates a SQLBackend for driver (postgres, mysql or sqlite).
func NewSQLBackend(db *sql.DB, txManager database.TxManager, driver string) (*SQLBackend, error) {
	switch driver {
	case "postgres":
		return &SQLBackend{db: db, txManager: txManager, dollar: true}, nil
	case "mysql", "sqlite":
		return &SQLBackend{db: db, txManager: txManager}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// rebind rewrites ? placeholders as $n for postgres.
func (s *SQLBackend) rebind(query string) string {
	if !s.dollar {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Read returns the stored payload, or apperrors.ErrNotFound when no row exists.
func (s *SQLBackend) Read(ctx context.Context, kind Kind) ([]byte, error) {
	querier := database.GetTx(ctx, s.db)

	query := s.rebind(`SELECT payload FROM record_sets WHERE kind = ?`)

	var payload string
	if err := querier.QueryRowContext(ctx, query, string(kind)).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read record set")
	}
	return []byte(payload), nil
}

// Write replaces the row for kind in a single transaction.
func (s *SQLBackend) Write(ctx context.Context, kind Kind, data []byte) error {
	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		querier := database.GetTx(ctx, s.db)

		if _, err := querier.ExecContext(
			ctx,
			s.rebind(`DELETE FROM record_sets WHERE kind = ?`),
			string(kind),
		); err != nil {
			return apperrors.Wrap(err, "failed to clear record set")
		}

		if _, err := querier.ExecContext(
			ctx,
			s.rebind(`INSERT INTO record_sets (kind, payload, updated_at) VALUES (?, ?, ?)`),
			string(kind),
			string(data),
			time.Now().UTC(),
		); err != nil {
			return apperrors.Wrap(err, "failed to write record set")
		}
		return nil
	})
}
