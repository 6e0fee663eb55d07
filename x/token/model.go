package token

import (
	"regexp"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

const maxDecimals = 36

var (
	isTokenName   = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString
	isTokenSymbol = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`).MatchString
)

var (
	_ orm.Model = (*Token)(nil)
	_ orm.Model = (*Balance)(nil)
	_ orm.Model = (*Allowance)(nil)
)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if !isTokenName(t.Name) {
		errs = errors.AppendField(errs, "Name", errors.Wrapf(errors.ErrInput, "invalid name %q", t.Name))
	}
	if !isTokenSymbol(t.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrapf(errors.ErrInput, "invalid symbol %q", t.Symbol))
	}
	if t.Decimals > maxDecimals {
		errs = errors.AppendField(errs, "Decimals", errors.Wrapf(errors.ErrInput, "more than %d", maxDecimals))
	}
	errs = errors.AppendField(errs, "TotalSupply", t.TotalSupply.Validate())
	return errs
}

func (b *Balance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", b.Amount.Validate())
	return errs
}

func (a *Allowance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", a.Amount.Validate())
	return errs
}

// ContractAddress returns the address of the contract created with given
// sequence number.
func ContractAddress(id uint64) hodl.Address {
	return hodl.NewCondition("token", "seq", orm.EncodeSequence(id)).Address()
}

// NewTokenBucket returns a bucket of token contracts keyed by the contract
// address.
func NewTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokens", &Token{})
}

// NewBalanceBucket returns a bucket of holder balances keyed by
// token || holder.
func NewBalanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("balance", &Balance{})
}

// NewAllowanceBucket returns a bucket of allowances keyed by
// token || owner || spender.
func NewAllowanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("allowance", &Allowance{})
}

func join(parts ...hodl.Address) []byte {
	var key []byte
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}
