package x

import (
	"context"
	"testing"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
)

func TestAuth(t *testing.T) {
	a := hodltest.NewCondition()
	b := hodltest.NewCondition()
	c := hodltest.NewCondition()

	ctx1 := &hodltest.CtxAuth{Key: "foo"}
	ctx2 := &hodltest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          hodl.Context
		auth         Authenticator
		mainSigner   hodl.Condition
		wantInCtx    hodl.Condition
		wantNotInCtx hodl.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &hodltest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &hodltest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
		},
		"first of many signers": {
			ctx:          context.Background(),
			auth:         &hodltest.Auth{Signers: []hodl.Condition{b, a}},
			mainSigner:   b,
			wantInCtx:    a,
			wantNotInCtx: c,
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			if tc.mainSigner == nil {
				assert.Nil(t, MainSignerAddress(tc.ctx, tc.auth))
			} else {
				assert.Equal(t, tc.mainSigner.Address(), MainSignerAddress(tc.ctx, tc.auth))
			}
			if tc.wantInCtx != nil {
				assert.Equal(t, true, tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()))
			}
			assert.Equal(t, false, tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()))
		})
	}
}
