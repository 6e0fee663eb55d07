package vault

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

var (
	_ orm.Model = (*Bank)(nil)
	_ orm.Model = (*Override)(nil)
)

func (b *Bank) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	errs = errors.AppendField(errs, "Asset", b.Asset.Validate())
	if err := b.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !b.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", ErrZeroAmount)
	}
	errs = errors.AppendField(errs, "DepositedAt", b.DepositedAt.Validate())
	if b.MaturesAt <= b.DepositedAt {
		errs = errors.AppendField(errs, "MaturesAt",
			errors.Wrap(ErrMaturity, "must be after the deposit"))
	}
	errs = errors.AppendField(errs, "Depositor", b.Depositor.Validate())
	return errs
}

// AssetRef returns the resolved asset reference of the bank.
func (b *Bank) AssetRef() Asset {
	return ResolveAsset(b.Asset)
}

// IsLocked returns true if the bank cannot be withdrawn at given time
// without the override.
func (b *Bank) IsLocked(now hodl.UnixTime) bool {
	return now < b.MaturesAt
}

func (o *Override) Validate() error {
	return errors.AppendField(nil, "Metadata", o.Metadata.Validate())
}
