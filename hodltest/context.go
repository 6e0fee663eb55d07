package hodltest

import (
	"context"
	"time"

	"github.com/hodl4me/hodl"
)

// BlockCtx returns a context as it is prepared for every transaction of a
// block: height, block time and chain id are set.
func BlockCtx(height int64, now time.Time) hodl.Context {
	ctx := context.Background()
	ctx = hodl.WithHeight(ctx, height)
	ctx = hodl.WithBlockTime(ctx, now)
	return hodl.WithChainID(ctx, "test-chain")
}
