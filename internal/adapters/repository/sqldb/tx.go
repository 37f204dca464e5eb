package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jsamuelsen/quote-service/internal/ports"
)

type txKey struct{}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier = squirrel.StdSqlCtx

// connOrTx returns the transaction carried by ctx, or the pool if there is none.
func (h *DB) connOrTx(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return h.sql
}

// Transactor begins database transactions and hands them to repositories
// through the context.
type Transactor struct {
	db *DB
}

var _ ports.Transactor = (*Transactor)(nil)

// NewTransactor creates a transactor for db.
func NewTransactor(db *DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn in a read-write transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.inTx(ctx, &sql.TxOptions{}, fn)
}

// WithinReadOnlyTx runs fn in a read-only transaction.
func (t *Transactor) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.inTx(ctx, &sql.TxOptions{ReadOnly: t.db.dialect.readOnlyTx}, fn)
}

// inTx joins the transaction already in ctx, or begins one, commits it when
// fn succeeds and rolls it back when fn fails or panics.
func (h *DB) inTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := h.sql.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rb := tx.Rollback(); rb != nil && !errors.Is(rb, sql.ErrTxDone) {
			return fmt.Errorf("could not rollback transaction: %w", errors.Join(err, rb))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}
