package utils

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

// Recovery stops a panicking handler from taking down the node. The panic
// is returned as ErrPanic and the savepoint below it drops partial writes.
type Recovery struct{}

var _ hodl.Decorator = Recovery{}

// NewRecovery returns the decorator placed right after Logging in the chain.
func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx, next hodl.Checker) (_ *hodl.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver is like Check. A panic inside a withdrawal never leaves a bank
// half marked.
func (Recovery) Deliver(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx, next hodl.Deliverer) (_ *hodl.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
