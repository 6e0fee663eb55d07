package cash

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use hodl.Address, so address in hex, not base64
type GenesisAccount struct {
	Address hodl.Address `json:"address"`
	Balance coin.Amount  `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ hodl.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts hodl.Options, kv hodl.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := bucket.Save(kv, acct.Address, NewWallet(acct.Balance)); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
