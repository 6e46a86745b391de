package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txCtxKey struct{}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// PgxTxManager runs units of work in a pgx transaction carried through the context.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func newPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// WithTransaction begins a transaction, runs fn and commits when fn succeeds.
// Calls nested inside an active transaction join it.
func (m *PgxTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return apperrors.NewAppError(http.StatusInternalServerError,
				"failed to rollback transaction", fmt.Errorf("%w (original error: %w)", rbErr, err))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}
