package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store adds transactions on top of Queries.
type Store struct {
	*Queries
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{Queries: New(db), db: db}
}

// ExecTx runs fn inside a single transaction. The transaction commits only if
// fn returns nil; any error (or a failed commit) rolls everything back.
func (s *Store) ExecTx(ctx context.Context, fn func(Querier) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(); rErr != nil && !errors.Is(rErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rErr))
		}
	}()

	if err = fn(s.WithTx(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
