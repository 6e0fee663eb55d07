package client

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/app"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/sigs"
	"github.com/hodl4me/hodl/x/vault"
)

// queryResults runs the query and returns the raw values of the result set.
func (c *Client) queryResults(path string, data []byte) ([][]byte, error) {
	resp := c.Query(RequestQuery{Path: path, Data: data})
	if resp.IsErr() {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}
	var values app.ResultSet
	if err := proto.Unmarshal(resp.Value, &values); err != nil {
		return nil, errors.Wrap(errors.ErrSchema, err.Error())
	}
	return values.Results, nil
}

// queryOne loads at most one entity into dest. It returns false when
// nothing is stored under the key.
func (c *Client) queryOne(path string, key []byte, dest proto.Message) (bool, error) {
	values, err := c.queryResults(path, key)
	switch {
	case err != nil:
		return false, err
	case len(values) == 0:
		return false, nil
	case len(values) > 1:
		return false, errors.Wrapf(errors.ErrState, "%d results for a key query", len(values))
	}
	if err := proto.Unmarshal(values[0], dest); err != nil {
		return false, errors.Wrap(errors.ErrSchema, err.Error())
	}
	return true, nil
}

// Banks returns every bank of the depositor, in ledger order.
func (c *Client) Banks(depositor hodl.Address) ([]*vault.Bank, error) {
	values, err := c.queryResults("/banks?"+hodl.PrefixQueryMod, depositor)
	if err != nil {
		return nil, err
	}
	banks := make([]*vault.Bank, len(values))
	for i, raw := range values {
		var b vault.Bank
		if err := proto.Unmarshal(raw, &b); err != nil {
			return nil, errors.Wrapf(errors.ErrSchema, "bank %d: %s", i, err)
		}
		banks[i] = &b
	}
	return banks, nil
}

// BankInfo returns a single bank. An index past the end of the ledger
// gives vault.ErrIndexOutOfBounds.
func (c *Client) BankInfo(depositor hodl.Address, index uint64) (*vault.Bank, error) {
	var b vault.Bank
	ok, err := c.queryOne("/banks", vault.BankKey(depositor, index), &b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(vault.ErrIndexOutOfBounds, "index %d", index)
	}
	return &b, nil
}

// BankCount returns the length of the depositor ledger.
func (c *Client) BankCount(depositor hodl.Address) (uint64, error) {
	values, err := c.queryResults("/banks/count", depositor)
	if err != nil {
		return 0, err
	}
	if len(values) != 1 {
		return 0, errors.Wrapf(errors.ErrState, "%d results for a count query", len(values))
	}
	return orm.DecodeSequence(values[0])
}

// Override returns the state of the emergency unlock switch.
func (c *Client) Override() (bool, error) {
	values, err := c.queryResults("/vault/override", nil)
	if err != nil {
		return false, err
	}
	if len(values) != 1 || len(values[0]) != 1 {
		return false, errors.Wrap(errors.ErrSchema, "override flag")
	}
	return values[0][0] == 1, nil
}

// Balance returns the native balance of the address. Unknown addresses
// hold nothing.
func (c *Client) Balance(addr hodl.Address) (coin.Amount, error) {
	var w cash.Wallet
	ok, err := c.queryOne("/wallets", addr, &w)
	if err != nil || !ok {
		return coin.Zero, err
	}
	return w.Balance, nil
}

// NextSequence returns the sequence the next signature of the key at addr
// must carry.
func (c *Client) NextSequence(addr hodl.Address) (int64, error) {
	var user sigs.UserData
	ok, err := c.queryOne("/auth", addr, &user)
	if err != nil || !ok {
		return 0, err
	}
	return user.Sequence, nil
}
