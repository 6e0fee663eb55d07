package hodld

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/owner"
	"github.com/hodl4me/hodl/x/sigs"
	"github.com/hodl4me/hodl/x/token"
	"github.com/hodl4me/hodl/x/vault"
)

// Tx contains the message.
//
// Exactly one of the message fields must be set. Field numbers below 20 are
// reserved for the transaction envelope.
type Tx struct {
	Signatures             []*sigs.StdSignature        `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	CashSendMsg            *cash.SendMsg               `protobuf:"bytes,20,opt,name=cash_send_msg,json=cashSendMsg,proto3" json:"cash_send_msg,omitempty"`
	TokenCreateMsg         *token.CreateTokenMsg       `protobuf:"bytes,30,opt,name=token_create_msg,json=tokenCreateMsg,proto3" json:"token_create_msg,omitempty"`
	TokenTransferMsg       *token.TransferMsg          `protobuf:"bytes,31,opt,name=token_transfer_msg,json=tokenTransferMsg,proto3" json:"token_transfer_msg,omitempty"`
	TokenApproveMsg        *token.ApproveMsg           `protobuf:"bytes,32,opt,name=token_approve_msg,json=tokenApproveMsg,proto3" json:"token_approve_msg,omitempty"`
	TokenTransferFromMsg   *token.TransferFromMsg      `protobuf:"bytes,33,opt,name=token_transfer_from_msg,json=tokenTransferFromMsg,proto3" json:"token_transfer_from_msg,omitempty"`
	OwnerTransferMsg       *owner.TransferOwnershipMsg `protobuf:"bytes,40,opt,name=owner_transfer_msg,json=ownerTransferMsg,proto3" json:"owner_transfer_msg,omitempty"`
	VaultDepositMsg        *vault.DepositMsg           `protobuf:"bytes,50,opt,name=vault_deposit_msg,json=vaultDepositMsg,proto3" json:"vault_deposit_msg,omitempty"`
	VaultWithdrawMsg       *vault.WithdrawMsg          `protobuf:"bytes,51,opt,name=vault_withdraw_msg,json=vaultWithdrawMsg,proto3" json:"vault_withdraw_msg,omitempty"`
	VaultToggleOverrideMsg *vault.ToggleOverrideMsg    `protobuf:"bytes,52,opt,name=vault_toggle_override_msg,json=vaultToggleOverrideMsg,proto3" json:"vault_toggle_override_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}
