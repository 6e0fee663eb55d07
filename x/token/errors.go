package token

import "github.com/hodl4me/hodl/errors"

// x/token reserves 40 ~ 49.
var (
	ErrInsufficientBalance   = errors.Register(40, "insufficient token balance")
	ErrInsufficientAllowance = errors.Register(41, "insufficient allowance")
	ErrNoSuchToken           = errors.Register(42, "no such token contract")
)
