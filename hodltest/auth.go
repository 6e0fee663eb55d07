package hodltest

import (
	"context"
	"fmt"

	"github.com/hodl4me/hodl"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions. Signer, when
// set, is always the main signer and comes before Signers.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer hodl.Condition

	// Signers represents an authentication of multiple signers.
	Signers []hodl.Condition
}

func (a *Auth) GetConditions(hodl.Context) []hodl.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]hodl.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx hodl.Context, addr hodl.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx hodl.Context, permissions ...hodl.Condition) hodl.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx hodl.Context) []hodl.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]hodl.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []hodl.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx hodl.Context, addr hodl.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
