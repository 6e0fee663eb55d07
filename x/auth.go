package x

import (
	"github.com/hodl4me/hodl"
)

// Authenticator extracts the conditions satisfied by the current
// transaction from the context. Handlers receive one in their constructor
// instead of reading x/sigs directly.
type Authenticator interface {
	// GetConditions returns the satisfied conditions, signers first.
	GetConditions(hodl.Context) []hodl.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(hodl.Context, hodl.Address) bool
}

// MainSigner returns the first condition, or nil for unsigned transactions.
func MainSigner(ctx hodl.Context, auth Authenticator) hodl.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// MainSignerAddress returns the address of the main signer or nil if the
// transaction is not signed. This is the identity of the caller.
func MainSignerAddress(ctx hodl.Context, auth Authenticator) hodl.Address {
	if signer := MainSigner(ctx, auth); signer != nil {
		return signer.Address()
	}
	return nil
}
