package database

import "context"

// Transactor runs fn atomically. Repositories called with the ctx passed to
// fn take part in the transaction; if fn returns an error nothing it wrote
// is kept.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
