package token

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

var (
	_ hodl.Msg = (*CreateTokenMsg)(nil)
	_ hodl.Msg = (*TransferMsg)(nil)
	_ hodl.Msg = (*ApproveMsg)(nil)
	_ hodl.Msg = (*TransferFromMsg)(nil)
)

func (CreateTokenMsg) Path() string {
	return "token/create"
}

func (m *CreateTokenMsg) Validate() error {
	t := Token{
		Metadata:    m.Metadata,
		Name:        m.Name,
		Symbol:      m.Symbol,
		Decimals:    m.Decimals,
		TotalSupply: m.InitialSupply,
	}
	return t.Validate()
}

func (TransferMsg) Path() string {
	return "token/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs
}

func (ApproveMsg) Path() string {
	return "token/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs
}

func (TransferFromMsg) Path() string {
	return "token/transfer_from"
}

func (m *TransferFromMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Token", m.Token.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs
}
