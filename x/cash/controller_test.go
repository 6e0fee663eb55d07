package cash

import (
	"context"
	"testing"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
	"github.com/hodl4me/hodl/store"
)

func TestMoveCoins(t *testing.T) {
	a, b := hodltest.NewAddress(), hodltest.NewAddress()

	cases := map[string]struct {
		mint    coin.Amount
		move    coin.Amount
		wantErr *errors.Error
		wantA   coin.Amount
		wantB   coin.Amount
	}{
		"full balance": {
			mint:  "100",
			move:  "100",
			wantA: "0",
			wantB: "100",
		},
		"part of balance": {
			mint:  "100",
			move:  "1",
			wantA: "99",
			wantB: "1",
		},
		"insufficient funds": {
			mint:    "100",
			move:    "101",
			wantErr: ErrInsufficientFunds,
			wantA:   "100",
			wantB:   "0",
		},
		"unknown sender": {
			move:    "1",
			wantErr: ErrInsufficientFunds,
			wantA:   "0",
			wantB:   "0",
		},
		"zero amount": {
			mint:    "100",
			move:    "0",
			wantErr: errors.ErrAmount,
			wantA:   "100",
			wantB:   "0",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			c := NewController()
			if tc.mint != "" {
				assert.Nil(t, c.CoinMint(db, a, tc.mint))
			}

			err := c.MoveCoins(context.Background(), db, a, b, tc.move)
			assert.IsErr(t, tc.wantErr, err)

			balA, err := c.Balance(db, a)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantA, balA)
			balB, err := c.Balance(db, b)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantB, balB)
		})
	}
}

func TestReceiveHook(t *testing.T) {
	a, b, c := hodltest.NewAddress(), hodltest.NewAddress(), hodltest.NewAddress()
	db := store.MemStore()
	ctrl := NewController()
	assert.Nil(t, ctrl.CoinMint(db, a, "10"))

	var calls int
	ctrl.OnReceive(b, func(ctx hodl.Context, db hodl.KVStore, from hodl.Address, amount coin.Amount) error {
		calls++
		assert.Equal(t, a, from)

		// funds are already available in the hook
		bal, err := ctrl.Balance(db, b)
		assert.Nil(t, err)
		assert.Equal(t, coin.Amount("4"), bal)

		// pass them on
		return ctrl.MoveCoins(ctx, db, b, c, amount)
	})

	assert.Nil(t, ctrl.MoveCoins(context.Background(), db, a, b, "4"))
	assert.Equal(t, 1, calls)
	bal, err := ctrl.Balance(db, c)
	assert.Nil(t, err)
	assert.Equal(t, coin.Amount("4"), bal)

	// a failing hook fails the transfer
	ctrl.OnReceive(c, func(hodl.Context, hodl.KVStore, hodl.Address, coin.Amount) error {
		return errors.Wrap(errors.ErrState, "rejected")
	})
	err = ctrl.MoveCoins(context.Background(), db, a, c, "1")
	assert.IsErr(t, errors.ErrState, err)

	ctrl.OnReceive(c, nil)
	assert.Nil(t, ctrl.MoveCoins(context.Background(), db, a, c, "1"))
}

func TestCoinMintOverflow(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	addr := hodltest.NewAddress()
	max := coin.MustParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	assert.Nil(t, c.CoinMint(db, addr, max))
	assert.IsErr(t, errors.ErrOverflow, c.CoinMint(db, addr, "1"))
}
