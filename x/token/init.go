package token

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
)

const optKey = "tokens"

// GenesisToken describes a contract created at genesis. Contracts get
// addresses in the order they are listed, see ContractAddress.
type GenesisToken struct {
	Name     string           `json:"name"`
	Symbol   string           `json:"symbol"`
	Decimals uint32           `json:"decimals"`
	Holders  []GenesisHolding `json:"holders"`
}

// GenesisHolding is the initial balance of a holder.
type GenesisHolding struct {
	Address hodl.Address `json:"address"`
	Amount  coin.Amount  `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ hodl.Initializer = Initializer{}

// FromGenesis creates all contracts listed under "tokens".
func (Initializer) FromGenesis(opts hodl.Options, db hodl.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions(optKey, &tokens); err != nil {
		return err
	}
	ctrl := NewController()
	for i, gt := range tokens {
		if len(gt.Holders) == 0 {
			return errors.Wrapf(errors.ErrEmpty, "token %d: holders", i)
		}
		supply := coin.Zero
		for _, h := range gt.Holders {
			var err error
			if supply, err = supply.Add(h.Amount); err != nil {
				return errors.Wrapf(err, "token %d: supply", i)
			}
		}
		t := &Token{
			Metadata:    &hodl.Metadata{Schema: 1},
			Name:        gt.Name,
			Symbol:      gt.Symbol,
			Decimals:    gt.Decimals,
			TotalSupply: supply,
		}
		// The first holder receives the whole supply and distributes it.
		first := gt.Holders[0].Address
		addr, err := ctrl.Create(db, first, t)
		if err != nil {
			return errors.Wrapf(err, "token %d", i)
		}
		for _, h := range gt.Holders[1:] {
			if err := ctrl.Transfer(db, addr, first, h.Address, h.Amount); err != nil {
				return errors.Wrapf(err, "token %d: holder %s", i, h.Address)
			}
		}
	}
	return nil
}
