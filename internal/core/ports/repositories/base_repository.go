package repositories

import "context"

// TransactionManager runs a unit of work in a single database transaction.
// Repositories called with the ctx passed to fn take part in that transaction.
type TransactionManager interface {
	// WithTransaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
