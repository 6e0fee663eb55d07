package token

import (
	"testing"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
	"github.com/hodl4me/hodl/store"
)

func newToken(supply coin.Amount) *Token {
	return &Token{
		Metadata:    &hodl.Metadata{Schema: 1},
		Name:        "Test Token",
		Symbol:      "TST",
		Decimals:    18,
		TotalSupply: supply,
	}
}

func TestCreate(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	owner := hodltest.NewAddress()

	addr, err := c.Create(db, owner, newToken("1000"))
	assert.Nil(t, err)
	assert.Equal(t, ContractAddress(1), addr)

	ok, err := c.IsContract(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
	ok, err = c.IsContract(db, owner)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
	ok, err = c.IsContract(db, nil)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	bal, err := c.Balance(db, addr, owner)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("1000"), bal)

	second, err := c.Create(db, owner, newToken("1"))
	assert.Nil(t, err)
	assert.Equal(t, ContractAddress(2), second)

	tok, err := c.Token(db, second)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("1"), tok.TotalSupply)

	_, err = c.Token(db, owner)
	assert.IsErr(t, ErrNoSuchToken, err)

	bad := newToken("1")
	bad.Symbol = "lower"
	_, err = c.Create(db, owner, bad)
	assert.FieldError(t, err, "Symbol", errors.ErrInput)
}

func TestTransfer(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice, bob := hodltest.NewAddress(), hodltest.NewAddress()
	tok, err := c.Create(db, alice, newToken("100"))
	assert.Nil(t, err)

	assert.Nil(t, c.Transfer(db, tok, alice, bob, "30"))
	assertBalance(t, c, db, tok, alice, "70")
	assertBalance(t, c, db, tok, bob, "30")

	assert.IsErr(t, ErrInsufficientBalance, c.Transfer(db, tok, bob, alice, "31"))
	assert.IsErr(t, ErrNoSuchToken, c.Transfer(db, bob, alice, bob, "1"))
	assert.IsErr(t, errors.ErrAmount, c.Transfer(db, tok, alice, bob, "-1"))

	// zero transfers are allowed, like in ERC-20
	assert.Nil(t, c.Transfer(db, tok, alice, bob, "0"))
	// sending to yourself keeps the balance
	assert.Nil(t, c.Transfer(db, tok, alice, alice, "70"))
	assertBalance(t, c, db, tok, alice, "70")
}

func TestTransferFrom(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice, bob, spender := hodltest.NewAddress(), hodltest.NewAddress(), hodltest.NewAddress()
	tok, err := c.Create(db, alice, newToken("100"))
	assert.Nil(t, err)

	assert.IsErr(t, ErrInsufficientAllowance, c.TransferFrom(db, tok, spender, alice, bob, "1"))

	assert.Nil(t, c.Approve(db, tok, alice, spender, "50"))
	allowed, err := c.Allowance(db, tok, alice, spender)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("50"), allowed)

	assert.Nil(t, c.TransferFrom(db, tok, spender, alice, bob, "20"))
	assertBalance(t, c, db, tok, alice, "80")
	assertBalance(t, c, db, tok, bob, "20")
	allowed, err = c.Allowance(db, tok, alice, spender)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("30"), allowed)

	assert.IsErr(t, ErrInsufficientAllowance, c.TransferFrom(db, tok, spender, alice, bob, "31"))

	// allowance above the balance does not allow overdraft
	assert.Nil(t, c.Approve(db, tok, bob, spender, "1000"))
	assert.IsErr(t, ErrInsufficientBalance, c.TransferFrom(db, tok, spender, bob, alice, "21"))
	allowed, err = c.Allowance(db, tok, bob, spender)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("1000"), allowed)
}

func assertBalance(t testing.TB, c Controller, db hodl.ReadOnlyKVStore, tok, holder hodl.Address, want coin.Amount) {
	t.Helper()
	got, err := c.Balance(db, tok, holder)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}
