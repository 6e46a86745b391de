package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// querier returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) querier(ctx context.Context) Querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.Pool
}

// queryRows runs query and collects every row into M by column name.
func queryRows[M any](ctx context.Context, q Querier, what string, query string, args ...any) ([]M, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect "+what+" rows", err)
	}
	return out, nil
}

// queryOne runs query and scans exactly one row into M.
// No row yields an error matching apperrors.ErrNotFound.
func queryOne[M any](ctx context.Context, q Querier, what string, query string, args ...any) (M, error) {
	var zero M
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperrors.NewNotFoundError(what)
		}
		return zero, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan "+what, err)
	}
	return m, nil
}

// exec runs a statement and reports a not-found error when no row was affected.
func exec(ctx context.Context, q Querier, what string, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update "+what, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(what)
	}
	return nil
}

// insertError maps a failed INSERT, turning unique violations into ErrDuplicate.
func insertError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return apperrors.NewConflictError(what + " already exists")
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert "+what, err)
}
