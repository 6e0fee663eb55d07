package vault

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/gconf"
	"github.com/hodl4me/hodl/orm"
	"github.com/hodl4me/hodl/x"
)

const (
	depositCost  = 200
	withdrawCost = 200
	toggleCost   = 50
)

// Cash moves native coins in and out of the custody.
type Cash interface {
	MoveCoins(ctx hodl.Context, db hodl.KVStore, src, dst hodl.Address, amount coin.Amount) error
}

// Tokens is the part of the token contracts used to hold token deposits.
type Tokens interface {
	IsContract(db hodl.ReadOnlyKVStore, token hodl.Address) (bool, error)
	Transfer(db hodl.KVStore, token, src, dst hodl.Address, amount coin.Amount) error
	TransferFrom(db hodl.KVStore, token, spender, src, dst hodl.Address, amount coin.Amount) error
}

// Owner authorizes administrative messages.
type Owner interface {
	IsOwner(ctx hodl.Context, auth x.Authenticator, db gconf.ReadStore) error
}

// RegisterRoutes registers handlers for all messages of this package.
func RegisterRoutes(r hodl.Registry, auth x.Authenticator, cash Cash, tokens Tokens, owner Owner) {
	c := custody{cash: cash, tokens: tokens}
	ledger := NewLedger()
	r.Handle(&DepositMsg{}, &DepositHandler{auth: auth, custody: c, tokens: tokens, ledger: ledger})
	r.Handle(&WithdrawMsg{}, &WithdrawHandler{auth: auth, custody: c, ledger: ledger})
	r.Handle(&ToggleOverrideMsg{}, &ToggleOverrideHandler{auth: auth, owner: owner, ledger: ledger})
}

// custody moves funds between depositors and the custody address.
type custody struct {
	cash   Cash
	tokens Tokens
}

// pull takes amount from the depositor. Token deposits require an allowance
// for the custody address.
func (c custody) pull(ctx hodl.Context, db hodl.KVStore, asset Asset, from hodl.Address, amount coin.Amount) error {
	if asset.Kind == Native {
		return c.cash.MoveCoins(ctx, db, from, CustodyAddress, amount)
	}
	return c.tokens.TransferFrom(db, asset.Handle, CustodyAddress, from, CustodyAddress, amount)
}

func (c custody) push(ctx hodl.Context, db hodl.KVStore, asset Asset, to hodl.Address, amount coin.Amount) error {
	if asset.Kind == Native {
		return c.cash.MoveCoins(ctx, db, CustodyAddress, to, amount)
	}
	return c.tokens.Transfer(db, asset.Handle, CustodyAddress, to, amount)
}

func blockNow(ctx hodl.Context) (hodl.UnixTime, error) {
	now, err := hodl.BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return hodl.AsUnixTime(now), nil
}

func caller(ctx hodl.Context, auth x.Authenticator) (hodl.Address, error) {
	addr := x.MainSignerAddress(ctx, auth)
	if addr == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return addr, nil
}

// DepositHandler creates a new bank. The index of the bank is returned as
// the 8 byte big endian result data.
type DepositHandler struct {
	auth    x.Authenticator
	custody custody
	tokens  Tokens
	ledger  Ledger
}

var _ hodl.Handler = (*DepositHandler)(nil)

func (h *DepositHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: depositCost}, nil
}

func (h *DepositHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	bank, from, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset := bank.AssetRef()
	if err := h.custody.pull(ctx, db, asset, from, bank.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot take the deposit")
	}
	index, err := h.ledger.Append(db, bank)
	if err != nil {
		return nil, err
	}

	hodl.GetLogger(ctx).Info("bank deposit",
		"depositor", bank.Depositor,
		"index", index,
		"asset", asset,
		"amount", bank.Amount,
		"matures_at", int64(bank.MaturesAt))
	return &hodl.DeliverResult{Data: orm.EncodeSequence(index)}, nil
}

// validate returns the bank the message creates together with the address
// that pays for it.
func (h *DepositHandler) validate(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*Bank, hodl.Address, error) {
	var msg DepositMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	from, err := caller(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, nil, err
	}

	asset := ResolveAsset(msg.Asset)
	var amount coin.Amount
	switch asset.Kind {
	case Native:
		if !msg.Value.IsPositive() {
			return nil, nil, errors.Wrap(ErrZeroAmount, "Ether amount can't be zero")
		}
		amount = msg.Value
	case Token:
		ok, err := h.tokens.IsContract(db, asset.Handle)
		if err != nil {
			return nil, nil, errors.Wrap(err, "token contract")
		}
		if !ok {
			return nil, nil, errors.Wrap(ErrNotContract, "Address needs to be a contract")
		}
		if !msg.Amount.IsPositive() {
			return nil, nil, errors.Wrap(ErrZeroAmount, "Token amount can't be zero")
		}
		if !msg.Value.IsZero() {
			return nil, nil, errors.Wrap(errors.ErrInput, "native value cannot be attached to a token deposit")
		}
		amount = msg.Amount
	}

	if msg.MaturesAt <= now {
		return nil, nil, errors.Wrap(ErrMaturity, "Unlock time needs to be in the future")
	}

	depositor := msg.Depositor
	if len(depositor) == 0 {
		depositor = from
	}
	bank := &Bank{
		Metadata:    &hodl.Metadata{Schema: 1},
		Asset:       asset.Address(),
		Amount:      amount,
		DepositedAt: now,
		MaturesAt:   msg.MaturesAt,
		Depositor:   depositor,
	}
	return bank, from, nil
}

// WithdrawHandler releases a bank of the main signer. The released amount
// is returned as the decimal result data.
type WithdrawHandler struct {
	auth    x.Authenticator
	custody custody
	ledger  Ledger
}

var _ hodl.Handler = (*WithdrawHandler)(nil)

func (h *WithdrawHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h *WithdrawHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	bank, index, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The bank must be marked before the funds leave the custody.
	bank.Withdrawn = true
	if err := h.ledger.Update(db, index, bank); err != nil {
		return nil, err
	}
	asset := bank.AssetRef()
	if err := h.custody.push(ctx, db, asset, bank.Depositor, bank.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot release the deposit")
	}

	hodl.GetLogger(ctx).Info("bank withdrawal",
		"depositor", bank.Depositor,
		"index", index,
		"asset", asset,
		"amount", bank.Amount)
	return &hodl.DeliverResult{Data: []byte(bank.Amount.String())}, nil
}

func (h *WithdrawHandler) validate(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*Bank, uint64, error) {
	var msg WithdrawMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	depositor, err := caller(ctx, h.auth)
	if err != nil {
		return nil, 0, err
	}
	bank, err := h.ledger.BankInfo(db, depositor, msg.Index)
	if err != nil {
		return nil, 0, err
	}
	if bank.Withdrawn {
		return nil, 0, errors.Wrap(ErrAlreadyWithdrawn, "User already withdrawn from this HODL Bank")
	}

	now, err := blockNow(ctx)
	if err != nil {
		return nil, 0, err
	}
	if bank.IsLocked(now) {
		override, err := h.ledger.OverrideEnabled(db)
		if err != nil {
			return nil, 0, err
		}
		if !override {
			return nil, 0, &StillLockedError{Required: bank.MaturesAt}
		}
	}
	return bank, msg.Index, nil
}

// ToggleOverrideHandler flips the emergency unlock switch. Only the owner
// can do it. The new state is returned as a single byte result data.
type ToggleOverrideHandler struct {
	auth   x.Authenticator
	owner  Owner
	ledger Ledger
}

var _ hodl.Handler = (*ToggleOverrideHandler)(nil)

func (h *ToggleOverrideHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: toggleCost}, nil
}

func (h *ToggleOverrideHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	enabled, err := h.ledger.OverrideEnabled(db)
	if err != nil {
		return nil, err
	}
	enabled = !enabled
	if err := h.ledger.SetOverride(db, enabled); err != nil {
		return nil, err
	}

	hodl.GetLogger(ctx).Info("vault override", "enabled", enabled)
	return &hodl.DeliverResult{Data: []byte{flagByte(enabled)}}, nil
}

func (h *ToggleOverrideHandler) validate(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) error {
	var msg ToggleOverrideMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return h.owner.IsOwner(ctx, h.auth, db)
}

func flagByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
