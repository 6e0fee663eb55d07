package vault

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

var (
	_ hodl.Msg = (*DepositMsg)(nil)
	_ hodl.Msg = (*WithdrawMsg)(nil)
	_ hodl.Msg = (*ToggleOverrideMsg)(nil)
)

func (DepositMsg) Path() string {
	return "vault/deposit"
}

// Validate checks the format of the message. Zero amounts and maturity
// are checked by the handler in a fixed order.
func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Depositor) != 0 {
		errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	}
	errs = errors.AppendField(errs, "Asset", m.Asset.Validate())
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	errs = errors.AppendField(errs, "MaturesAt", m.MaturesAt.Validate())
	errs = errors.AppendField(errs, "Value", m.Value.Validate())
	return errs
}

func (WithdrawMsg) Path() string {
	return "vault/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

func (ToggleOverrideMsg) Path() string {
	return "vault/toggle_override"
}

func (m *ToggleOverrideMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}
