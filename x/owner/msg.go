package owner

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

var _ hodl.Msg = (*TransferOwnershipMsg)(nil)

func (TransferOwnershipMsg) Path() string {
	return "owner/transfer"
}

func (m *TransferOwnershipMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "NewOwner", m.NewOwner.Validate())
	return errs
}
