package cash

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// NewWallet returns a wallet holding given balance.
func NewWallet(balance coin.Amount) *Wallet {
	return &Wallet{
		Metadata: &hodl.Metadata{Schema: 1},
		Balance:  balance,
	}
}

// Validate requires the balance to be a valid amount.
func (w *Wallet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", w.Metadata.Validate())
	errs = errors.AppendField(errs, "Balance", w.Balance.Validate())
	return errs
}

// Bucket is a type-safe wrapper around the wallet ModelBucket.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name.
func NewBucket() Bucket {
	return Bucket{orm.NewModelBucket(BucketName, &Wallet{})}
}

// GetOrCreate returns the wallet of given address or a new, empty and
// unsaved one if it does not exist.
func (b Bucket) GetOrCreate(db hodl.ReadOnlyKVStore, addr hodl.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return NewWallet(coin.Zero), nil
	default:
		return nil, err
	}
}

// Save stores the wallet under the given address.
func (b Bucket) Save(db hodl.KVStore, addr hodl.Address, w *Wallet) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	_, err := b.Put(db, addr, w)
	return err
}
