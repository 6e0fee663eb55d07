package hodltest

import "github.com/hodl4me/hodl"

// Decorator counts how often a chain reaches it. CheckErr and DeliverErr,
// when set, short circuit the call so tests can assert that the vault
// handler behind it never ran.
type Decorator struct {
	checkCall int
	CheckErr  error

	deliverCall int
	DeliverErr  error
}

var _ hodl.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx, next hodl.Checker) (*hodl.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx, next hodl.Deliverer) (*hodl.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

// CallCount sums check and deliver calls.
func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate puts d in front of h. Vault tests use it to run every message
// inside a savepoint the way the node does.
func Decorate(h hodl.Handler, d hodl.Decorator) hodl.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn hodl.Handler
	dc hodl.Decorator
}

var _ hodl.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
