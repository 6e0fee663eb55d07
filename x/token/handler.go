package token

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/x"
)

const (
	createTokenCost  = 300
	transferCost     = 100
	approveCost      = 50
	transferFromCost = 150
)

// RegisterQuery registers contracts under "/tokens", balances under
// "/tokens/balances" and allowances under "/tokens/allowances".
func RegisterQuery(qr hodl.QueryRouter) {
	NewTokenBucket().Register("tokens", qr)
	NewBalanceBucket().Register("tokens/balances", qr)
	NewAllowanceBucket().Register("tokens/allowances", qr)
}

// RegisterRoutes registers handlers for all messages of this package.
func RegisterRoutes(r hodl.Registry, auth x.Authenticator, ctrl *BaseController) {
	r.Handle(&CreateTokenMsg{}, &CreateTokenHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ApproveMsg{}, &ApproveHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferFromMsg{}, &TransferFromHandler{auth: auth, ctrl: ctrl})
}

// CreateTokenHandler creates contracts owned by the main signer. The
// contract address is returned as the result data.
type CreateTokenHandler struct {
	auth x.Authenticator
	ctrl *BaseController
}

var _ hodl.Handler = (*CreateTokenHandler)(nil)

func (h *CreateTokenHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: createTokenCost}, nil
}

func (h *CreateTokenHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	t := &Token{
		Metadata:    &hodl.Metadata{Schema: 1},
		Name:        msg.Name,
		Symbol:      msg.Symbol,
		Decimals:    msg.Decimals,
		TotalSupply: msg.InitialSupply,
	}
	addr, err := h.ctrl.Create(db, owner, t)
	if err != nil {
		return nil, err
	}
	return &hodl.DeliverResult{Data: addr}, nil
}

func (h *CreateTokenHandler) validate(ctx hodl.Context, tx hodl.Tx) (*CreateTokenMsg, hodl.Address, error) {
	var msg CreateTokenMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner := x.MainSignerAddress(ctx, h.auth)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return &msg, owner, nil
}

// TransferHandler moves tokens of the main signer.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ hodl.Handler = (*TransferHandler)(nil)

func (h *TransferHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: transferCost}, nil
}

func (h *TransferHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	msg, src, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, msg.Token, src, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &hodl.DeliverResult{}, nil
}

func (h *TransferHandler) validate(ctx hodl.Context, tx hodl.Tx) (*TransferMsg, hodl.Address, error) {
	var msg TransferMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	src := x.MainSignerAddress(ctx, h.auth)
	if src == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return &msg, src, nil
}

// ApproveHandler sets the allowance of a spender over the main signer's
// tokens.
type ApproveHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ hodl.Handler = (*ApproveHandler)(nil)

func (h *ApproveHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: approveCost}, nil
}

func (h *ApproveHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(db, msg.Token, owner, msg.Spender, msg.Amount); err != nil {
		return nil, err
	}
	return &hodl.DeliverResult{}, nil
}

func (h *ApproveHandler) validate(ctx hodl.Context, tx hodl.Tx) (*ApproveMsg, hodl.Address, error) {
	var msg ApproveMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner := x.MainSignerAddress(ctx, h.auth)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return &msg, owner, nil
}

// TransferFromHandler moves tokens of the source, spending the allowance
// granted to the main signer.
type TransferFromHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ hodl.Handler = (*TransferFromHandler)(nil)

func (h *TransferFromHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{GasAllocated: transferFromCost}, nil
}

func (h *TransferFromHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	msg, spender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.TransferFrom(db, msg.Token, spender, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &hodl.DeliverResult{}, nil
}

func (h *TransferFromHandler) validate(ctx hodl.Context, tx hodl.Tx) (*TransferFromMsg, hodl.Address, error) {
	var msg TransferFromMsg
	if err := hodl.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	spender := x.MainSignerAddress(ctx, h.auth)
	if spender == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return &msg, spender, nil
}
