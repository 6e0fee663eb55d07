package vault

import (
	"github.com/hodl4me/hodl"
)

// NativeAsset is the asset reference of the native currency.
var NativeAsset = make(hodl.Address, hodl.AddressLength)

// CustodyAddress holds all deposited funds until they are withdrawn.
var CustodyAddress = hodl.NewCondition("vault", "custody", []byte("bank")).Address()

// AssetKind tells how the funds of a bank are held.
type AssetKind int

const (
	Native AssetKind = iota
	Token
)

func (k AssetKind) String() string {
	if k == Native {
		return "native"
	}
	return "token"
}

// Asset is an asset reference resolved from its address form.
type Asset struct {
	Kind AssetKind
	// Handle is the token contract address, nil for the native currency.
	Handle hodl.Address
}

// ResolveAsset returns the asset referenced by addr. The all zero address
// is the native currency, anything else a token contract.
func ResolveAsset(addr hodl.Address) Asset {
	if addr.Equals(NativeAsset) {
		return Asset{Kind: Native}
	}
	return Asset{Kind: Token, Handle: addr}
}

// Address returns the stored form of the reference.
func (a Asset) Address() hodl.Address {
	if a.Kind == Native {
		return NativeAsset.Clone()
	}
	return a.Handle
}

func (a Asset) String() string {
	if a.Kind == Native {
		return a.Kind.String()
	}
	return a.Kind.String() + ":" + a.Handle.String()
}
