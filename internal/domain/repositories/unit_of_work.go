package repositories

import "context"

// UnitOfWork executes a function within a single transaction scope. Each batch
// item runs in its own unit of work: there is deliberately no cross-record
// transaction in batch actions.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
