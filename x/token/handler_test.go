package token

import (
	"testing"
	"time"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
	"github.com/hodl4me/hodl/store"
	"github.com/stretchr/testify/require"
)

// router is a minimal hodl.Registry used to reach handlers by message.
type router map[string]hodl.Handler

func (r router) Handle(m hodl.Msg, h hodl.Handler) { r[m.Path()] = h }

func (r router) deliver(ctx hodl.Context, db hodl.KVStore, msg hodl.Msg) (*hodl.DeliverResult, error) {
	tx := &hodltest.Tx{Msg: msg}
	h := r[msg.Path()]
	if _, err := h.Check(ctx, db.(hodl.CacheableKVStore).CacheWrap(), tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func TestHandlers(t *testing.T) {
	meta := &hodl.Metadata{Schema: 1}
	alice, bob, vault := hodltest.NewCondition(), hodltest.NewCondition(), hodltest.NewCondition()
	auth := &hodltest.CtxAuth{Key: "auth"}
	r := router{}
	RegisterRoutes(r, auth, NewController())

	db := store.MemStore()
	ctx := hodltest.BlockCtx(1, time.Now())
	as := func(c hodl.Condition) hodl.Context { return auth.SetConditions(ctx, c) }

	_, err := r.deliver(ctx, db, &CreateTokenMsg{Metadata: meta, Name: "Anonymous", Symbol: "ANON", InitialSupply: "1"})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	res, err := r.deliver(as(alice), db, &CreateTokenMsg{Metadata: meta, Name: "Alice Token", Symbol: "ALC", Decimals: 6, InitialSupply: "500"})
	require.NoError(t, err)
	tok := hodl.Address(res.Data)
	require.Equal(t, ContractAddress(1), tok)

	_, err = r.deliver(as(alice), db, &TransferMsg{Metadata: meta, Token: tok, Destination: bob.Address(), Amount: "100"})
	require.NoError(t, err)

	_, err = r.deliver(as(bob), db, &ApproveMsg{Metadata: meta, Token: tok, Spender: vault.Address(), Amount: "60"})
	require.NoError(t, err)

	// alice never approved
	_, err = r.deliver(as(vault), db, &TransferFromMsg{Metadata: meta, Token: tok, Source: alice.Address(), Destination: vault.Address(), Amount: "1"})
	assert.IsErr(t, ErrInsufficientAllowance, err)

	_, err = r.deliver(as(vault), db, &TransferFromMsg{Metadata: meta, Token: tok, Source: bob.Address(), Destination: vault.Address(), Amount: "60"})
	require.NoError(t, err)

	ctrl := NewController()
	assertBalance(t, ctrl, db, tok, alice.Address(), "400")
	assertBalance(t, ctrl, db, tok, bob.Address(), "40")
	assertBalance(t, ctrl, db, tok, vault.Address(), "60")

	_, err = r.deliver(as(bob), db, &TransferMsg{Metadata: meta, Token: tok, Destination: alice.Address(), Amount: "41"})
	assert.IsErr(t, ErrInsufficientBalance, err)

	_, err = r.deliver(as(bob), db, &TransferMsg{Metadata: meta, Token: tok, Amount: "1"})
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestGenesisAndQuery(t *testing.T) {
	alice, bob := hodltest.NewAddress(), hodltest.NewAddress()
	opts := hodl.Options{
		"tokens": []byte(`[{
			"name": "Genesis Token",
			"symbol": "GEN",
			"decimals": 2,
			"holders": [
				{"address": "` + alice.String() + `", "amount": "70"},
				{"address": "` + bob.String() + `", "amount": "30"}
			]
		}]`),
	}
	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController()
	tok := ContractAddress(1)
	info, err := ctrl.Token(db, tok)
	require.NoError(t, err)
	assert.Equal(t, coin.Amount("100"), info.TotalSupply)
	assertBalance(t, ctrl, db, tok, alice, "70")
	assertBalance(t, ctrl, db, tok, bob, "30")

	qr := hodl.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/tokens").Query(db, hodl.KeyQueryMod, tok)
	require.NoError(t, err)
	assert.Equal(t, 1, len(res))

	res, err = qr.Handler("/tokens/balances").Query(db, hodl.PrefixQueryMod, tok)
	require.NoError(t, err)
	assert.Equal(t, 2, len(res))

	res, err = qr.Handler("/tokens/allowances").Query(db, hodl.PrefixQueryMod, tok)
	require.NoError(t, err)
	assert.Equal(t, 0, len(res))

	empty := hodl.Options{"tokens": []byte(`[{"name": "Nobody Holds", "symbol": "NOB"}]`)}
	assert.IsErr(t, errors.ErrEmpty, Initializer{}.FromGenesis(empty, store.MemStore()))
}
