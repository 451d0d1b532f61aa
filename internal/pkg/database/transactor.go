package database

import (
	"context"
	"errors"
)

// ErrBusy reports that a lock could not be acquired before the store's lock
// timeout elapsed. The whole operation may be retried unchanged.
var ErrBusy = errors.New("resource busy, retry the operation")

// Transactor runs fn inside a single store transaction. The context passed to
// fn carries the transaction; repositories pick it up from there. fn's error
// rolls the transaction back and is returned to the caller.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
