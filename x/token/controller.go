package token

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

// Controller exposes the operations of token contracts to other
// extensions.
type Controller interface {
	// IsContract returns true if a token contract is registered under
	// given address.
	IsContract(db hodl.ReadOnlyKVStore, token hodl.Address) (bool, error)
	Balance(db hodl.ReadOnlyKVStore, token, holder hodl.Address) (coin.Amount, error)
	Allowance(db hodl.ReadOnlyKVStore, token, owner, spender hodl.Address) (coin.Amount, error)
	Transfer(db hodl.KVStore, token, src, dst hodl.Address, amount coin.Amount) error
	Approve(db hodl.KVStore, token, owner, spender hodl.Address, amount coin.Amount) error
	// TransferFrom moves amount from src to dst spending the allowance
	// src granted to spender.
	TransferFrom(db hodl.KVStore, token, spender, src, dst hodl.Address, amount coin.Amount) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	tokens     orm.ModelBucket
	balances   orm.ModelBucket
	allowances orm.ModelBucket
	ids        orm.Sequence
}

var _ Controller = (*BaseController)(nil)

// NewController returns a controller operating on the default buckets.
func NewController() *BaseController {
	return &BaseController{
		tokens:     NewTokenBucket(),
		balances:   NewBalanceBucket(),
		allowances: NewAllowanceBucket(),
		ids:        orm.NewSequence("tokens", "id"),
	}
}

// Create registers a new contract and assigns the total supply to owner.
// The contract address is returned.
func (c *BaseController) Create(db hodl.KVStore, owner hodl.Address, t *Token) (hodl.Address, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	id, err := c.ids.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "token id")
	}
	addr := ContractAddress(id)
	if _, err := c.tokens.Put(db, addr, t); err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	if err := c.setBalance(db, addr, owner, t.TotalSupply); err != nil {
		return nil, err
	}
	return addr, nil
}

// Token returns the contract registered under given address.
func (c *BaseController) Token(db hodl.ReadOnlyKVStore, token hodl.Address) (*Token, error) {
	var t Token
	if err := c.tokens.One(db, token, &t); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrNoSuchToken, "%s", token)
		}
		return nil, err
	}
	return &t, nil
}

func (c *BaseController) IsContract(db hodl.ReadOnlyKVStore, token hodl.Address) (bool, error) {
	if len(token) == 0 {
		return false, nil
	}
	switch err := c.tokens.Has(db, token); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

func (c *BaseController) Balance(db hodl.ReadOnlyKVStore, token, holder hodl.Address) (coin.Amount, error) {
	var b Balance
	switch err := c.balances.One(db, join(token, holder), &b); {
	case err == nil && b.Amount != "":
		return b.Amount, nil
	case err == nil:
		return coin.Zero, nil
	case errors.ErrNotFound.Is(err):
		return coin.Zero, nil
	default:
		return "", err
	}
}

func (c *BaseController) Allowance(db hodl.ReadOnlyKVStore, token, owner, spender hodl.Address) (coin.Amount, error) {
	var a Allowance
	switch err := c.allowances.One(db, join(token, owner, spender), &a); {
	case err == nil && a.Amount != "":
		return a.Amount, nil
	case err == nil:
		return coin.Zero, nil
	case errors.ErrNotFound.Is(err):
		return coin.Zero, nil
	default:
		return "", err
	}
}

func (c *BaseController) Transfer(db hodl.KVStore, token, src, dst hodl.Address, amount coin.Amount) error {
	if err := c.requireContract(db, token); err != nil {
		return err
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	have, err := c.Balance(db, token, src)
	if err != nil {
		return err
	}
	left, err := have.Sub(amount)
	if err != nil {
		return errors.Wrapf(ErrInsufficientBalance, "%s has %s, needs %s", src, have, amount)
	}
	if err := c.setBalance(db, token, src, left); err != nil {
		return err
	}

	got, err := c.Balance(db, token, dst)
	if err != nil {
		return err
	}
	sum, err := got.Add(amount)
	if err != nil {
		return err
	}
	return c.setBalance(db, token, dst, sum)
}

func (c *BaseController) Approve(db hodl.KVStore, token, owner, spender hodl.Address, amount coin.Amount) error {
	if err := c.requireContract(db, token); err != nil {
		return err
	}
	if err := spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	a := &Allowance{Metadata: &hodl.Metadata{Schema: 1}, Amount: amount}
	_, err := c.allowances.Put(db, join(token, owner, spender), a)
	return err
}

func (c *BaseController) TransferFrom(db hodl.KVStore, token, spender, src, dst hodl.Address, amount coin.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	allowed, err := c.Allowance(db, token, src, spender)
	if err != nil {
		return err
	}
	left, err := allowed.Sub(amount)
	if err != nil {
		return errors.Wrapf(ErrInsufficientAllowance, "%s may spend %s, needs %s", spender, allowed, amount)
	}
	if err := c.Transfer(db, token, src, dst, amount); err != nil {
		return err
	}
	return c.Approve(db, token, src, spender, left)
}

func (c *BaseController) requireContract(db hodl.ReadOnlyKVStore, token hodl.Address) error {
	ok, err := c.IsContract(db, token)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrNoSuchToken, "%s", token)
	}
	return nil
}

func (c *BaseController) setBalance(db hodl.KVStore, token, holder hodl.Address, amount coin.Amount) error {
	if err := holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	b := &Balance{Metadata: &hodl.Metadata{Schema: 1}, Amount: amount}
	_, err := c.balances.Put(db, join(token, holder), b)
	return err
}
