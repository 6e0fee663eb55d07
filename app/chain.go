package app

import (
	"reflect"

	"github.com/hodl4me/hodl"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []hodl.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

	app.ChainDecorators(
	  utils.NewLogging(),
	  utils.NewRecovery(),
	  utils.NewSavepoint().OnCheck(),
	  sigs.NewDecorator(),
	  utils.NewSavepoint().OnDeliver(),
	).WithHandler(
	  app.NewRouter(),
	)
*/
func ChainDecorators(chain ...hodl.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...hodl.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := make([]hodl.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	return Decorators{append(newChain, chain...)}
}

// cutoffNil removes in place all nil values from given slice, typed nil
// pointers included.
func cutoffNil(ds []hodl.Decorator) []hodl.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h hodl.Handler) hodl.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step executes one decorator around the rest of the stack.
type step struct {
	d    hodl.Decorator
	next hodl.Handler
}

var _ hodl.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
