package hodld

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/owner"
	"github.com/hodl4me/hodl/x/sigs"
	"github.com/hodl4me/hodl/x/token"
	"github.com/hodl4me/hodl/x/vault"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (hodl.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ hodl.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the only message set on the transaction.
func (tx *Tx) GetMsg() (hodl.Msg, error) {
	var found []hodl.Msg
	for _, m := range tx.msgs() {
		if m != nil {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return found[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages, only one allowed", len(found))
	}
}

// msgs lists every message field. Unset fields are typed nil pointers and
// are converted to nil interfaces.
func (tx *Tx) msgs() []hodl.Msg {
	var res []hodl.Msg
	add := func(ok bool, m hodl.Msg) {
		if ok {
			res = append(res, m)
		} else {
			res = append(res, nil)
		}
	}
	add(tx.CashSendMsg != nil, tx.CashSendMsg)
	add(tx.TokenCreateMsg != nil, tx.TokenCreateMsg)
	add(tx.TokenTransferMsg != nil, tx.TokenTransferMsg)
	add(tx.TokenApproveMsg != nil, tx.TokenApproveMsg)
	add(tx.TokenTransferFromMsg != nil, tx.TokenTransferFromMsg)
	add(tx.OwnerTransferMsg != nil, tx.OwnerTransferMsg)
	add(tx.VaultDepositMsg != nil, tx.VaultDepositMsg)
	add(tx.VaultWithdrawMsg != nil, tx.VaultWithdrawMsg)
	add(tx.VaultToggleOverrideMsg != nil, tx.VaultToggleOverrideMsg)
	return res
}

// SetMsg sets the message field matching the type of msg. Any message set
// before is dropped.
func (tx *Tx) SetMsg(msg hodl.Msg) error {
	signatures := tx.Signatures
	tx.Reset()
	tx.Signatures = signatures

	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.CashSendMsg = m
	case *token.CreateTokenMsg:
		tx.TokenCreateMsg = m
	case *token.TransferMsg:
		tx.TokenTransferMsg = m
	case *token.ApproveMsg:
		tx.TokenApproveMsg = m
	case *token.TransferFromMsg:
		tx.TokenTransferFromMsg = m
	case *owner.TransferOwnershipMsg:
		tx.OwnerTransferMsg = m
	case *vault.DepositMsg:
		tx.VaultDepositMsg = m
	case *vault.WithdrawMsg:
		tx.VaultWithdrawMsg = m
	case *vault.ToggleOverrideMsg:
		tx.VaultToggleOverrideMsg = m
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes must only come from the data itself, not previous
	// signatures
	unsigned := *tx
	unsigned.Signatures = nil
	return proto.Marshal(&unsigned)
}
