package gconf

import (
	"context"
	"testing"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
	"github.com/hodl4me/hodl/store"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	cond := hodltest.NewCondition()
	admin := hodltest.NewCondition()

	cases := map[string]struct {
		// If Init is provided, initialize the database before running
		// handler code. This should represent the configuration's
		// initial state. Use nil to not provide initial state.
		Init *myconfig

		Msg            hodl.Msg
		MsgConditions  []hodl.Condition
		InitAdmin      func(hodl.ReadOnlyKVStore) (hodl.Address, error)
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error

		// When not nil database state will be tested to contain the
		// exact version of the configuration.
		WantConfig *myconfig
	}{
		"success": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Cn: "10"},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: 333, Str: "boing!", Cn: "4"},
			},
			MsgConditions: []hodl.Condition{cond},
			WantConfig:    &myconfig{Owner: cond.Address(), Num: 333, Str: "boing!", Cn: "4"},
		},
		"message must be signed by the configuration owner": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125},
			Msg: &myconfigMsg{
				Patch: &myconfig{Num: 1},
			},
			MsgConditions: []hodl.Condition{
				// A random condition, for sure not the same as the Owner.
				hodltest.NewCondition(),
			},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"owner co-signing is not enough": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125},
			Msg: &myconfigMsg{
				Patch: &myconfig{Num: 1},
			},
			MsgConditions:  []hodl.Condition{hodltest.NewCondition(), cond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"zero values are not updating the configuration": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Cn: "10"},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Cn: "4"},
			},
			MsgConditions: []hodl.Condition{cond},
			WantConfig:    &myconfig{Owner: cond.Address(), Num: 5125, Str: "foobar", Cn: "4"},
		},
		"invalid configuration is not accepted": {
			Init: &myconfig{Owner: cond.Address(), Num: 5125},
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Cn: "01"},
			},
			MsgConditions:  []hodl.Condition{cond},
			WantCheckErr:   errors.ErrAmount,
			WantDeliverErr: errors.ErrAmount,
		},
		"missing configuration without init admin": {
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address()},
			},
			MsgConditions:  []hodl.Condition{cond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"missing configuration created by init admin": {
			Msg: &myconfigMsg{
				Patch: &myconfig{Owner: cond.Address(), Num: 1},
			},
			InitAdmin: func(hodl.ReadOnlyKVStore) (hodl.Address, error) {
				return admin.Address(), nil
			},
			MsgConditions: []hodl.Condition{admin},
			WantConfig:    &myconfig{Owner: cond.Address(), Num: 1},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			if tc.Init != nil {
				if err := Save(db, "mypkg", tc.Init); err != nil {
					t.Fatalf("cannot save initial configuration: %s", err)
				}
			}

			auth := &hodltest.CtxAuth{Key: "auth"}
			handler := NewUpdateConfigurationHandler("mypkg", &myconfig{}, auth, tc.InitAdmin)

			ctx := hodl.WithHeight(context.Background(), 999)
			ctx = hodl.WithChainID(ctx, "mychain-123")
			ctx = auth.SetConditions(ctx, tc.MsgConditions...)

			tx := &hodltest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := handler.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatal(err)
			}
			cache.Discard()

			if _, err := handler.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatal(err)
			}

			if tc.WantConfig != nil {
				var got myconfig
				if err := Load(db, "mypkg", &got); err != nil {
					t.Fatalf("cannot load configuration from the database: %s", err)
				}
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}

func TestCustomPatch(t *testing.T) {
	cond := hodltest.NewCondition()
	db := store.MemStore()
	assert.Nil(t, Save(db, "mypkg", &myconfig{Owner: cond.Address(), Num: 1}))

	auth := &hodltest.Auth{Signer: cond}
	handler := NewUpdateConfigurationHandler("mypkg", &myconfig{}, auth, nil).
		WithPatch(func(msg hodl.Msg, c OwnedConfig) error {
			c.(*myconfig).Num++
			return nil
		})

	ctx := hodltest.BlockCtx(1, hodl.UnixTime(0).Time())
	tx := &hodltest.Tx{Msg: &hodltest.Msg{RoutePath: "mypkg/bump"}}
	for i := 0; i < 2; i++ {
		_, err := handler.Deliver(ctx, db, tx)
		assert.Nil(t, err)
	}

	var got myconfig
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, int64(3), got.Num)
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ hodl.Msg = (*myconfigMsg)(nil)

func (msg *myconfigMsg) Reset()          { *msg = myconfigMsg{} }
func (msg *myconfigMsg) String() string  { return "myconfigMsg" }
func (*myconfigMsg) ProtoMessage()       {}
func (msg *myconfigMsg) Path() string    { return "myconfig" }
func (msg *myconfigMsg) Validate() error { return msg.Patch.Validate() }
