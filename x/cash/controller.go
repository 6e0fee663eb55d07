package cash

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. The receive hook of the destination, if
	// any, runs after the balances are saved.
	MoveCoins(ctx hodl.Context, db hodl.KVStore, src, dst hodl.Address, amount coin.Amount) error
}

// Balancer returns the native balance of an address.
type Balancer interface {
	Balance(db hodl.ReadOnlyKVStore, addr hodl.Address) (coin.Amount, error)
}

// Controller is the functionality needed by the cash handlers.
type Controller interface {
	CoinMover
	Balancer
	CoinMint(db hodl.KVStore, dst hodl.Address, amount coin.Amount) error
}

// ReceiveHook runs when native coins land in a hooked address. Returning an
// error fails the transfer that triggered it.
type ReceiveHook func(ctx hodl.Context, db hodl.KVStore, from hodl.Address, amount coin.Amount) error

// BaseController is a simple implementation of the Controller interface.
type BaseController struct {
	bucket Bucket
	hooks  map[string]ReceiveHook
}

var _ Controller = (*BaseController)(nil)

// NewController returns a controller operating on the default bucket.
func NewController() *BaseController {
	return &BaseController{
		bucket: NewBucket(),
		hooks:  make(map[string]ReceiveHook),
	}
}

// OnReceive registers code that runs every time coins are moved to addr.
// Registering a nil hook removes it.
func (c *BaseController) OnReceive(addr hodl.Address, hook ReceiveHook) {
	if hook == nil {
		delete(c.hooks, string(addr))
		return
	}
	c.hooks[string(addr)] = hook
}

// Balance returns the amount held by addr, zero for unknown addresses.
func (c *BaseController) Balance(db hodl.ReadOnlyKVStore, addr hodl.Address) (coin.Amount, error) {
	w, err := c.bucket.GetOrCreate(db, addr)
	if err != nil {
		return "", err
	}
	if w.Balance == "" {
		return coin.Zero, nil
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c *BaseController) MoveCoins(ctx hodl.Context, db hodl.KVStore, src, dst hodl.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %q", amount)
	}

	sender, err := c.bucket.GetOrCreate(db, src)
	if err != nil {
		return err
	}
	left, err := sender.Balance.Sub(amount)
	if err != nil {
		if errors.ErrAmount.Is(err) {
			return errors.Wrapf(ErrInsufficientFunds, "%s has %s, needs %s", src, sender.Balance, amount)
		}
		return err
	}
	sender.Balance = left
	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}

	recipient, err := c.bucket.GetOrCreate(db, dst)
	if err != nil {
		return err
	}
	if recipient.Balance, err = recipient.Balance.Add(amount); err != nil {
		return err
	}
	if err := c.bucket.Save(db, dst, recipient); err != nil {
		return err
	}

	if hook, ok := c.hooks[string(dst)]; ok {
		if err := hook(ctx, db, src, amount); err != nil {
			return errors.Wrap(err, "receive hook")
		}
	}
	return nil
}

// CoinMint attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c *BaseController) CoinMint(db hodl.KVStore, dst hodl.Address, amount coin.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	w, err := c.bucket.GetOrCreate(db, dst)
	if err != nil {
		return err
	}
	if w.Balance, err = w.Balance.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, dst, w)
}
