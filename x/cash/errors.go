package cash

import "github.com/hodl4me/hodl/errors"

// x/cash reserves 30 ~ 39.
var (
	ErrInsufficientFunds = errors.Register(30, "insufficient funds")
)
