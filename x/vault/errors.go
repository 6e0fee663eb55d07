package vault

import (
	"fmt"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

// x/vault reserves 100 ~ 109.
var (
	ErrZeroAmount       = errors.Register(100, "zero amount")
	ErrMaturity         = errors.Register(101, "invalid maturity")
	ErrNotContract      = errors.Register(102, "not a contract")
	ErrIndexOutOfBounds = errors.Register(103, "index out of bounds")
	ErrAlreadyWithdrawn = errors.Register(104, "already withdrawn")
	ErrStillLocked      = errors.Register(105, "still locked")
)

// StillLockedError is returned when a bank is withdrawn before it matures.
// Its root error is ErrStillLocked.
type StillLockedError struct {
	// Required is the moment the bank unlocks.
	Required hodl.UnixTime
}

func (e *StillLockedError) Error() string {
	return fmt.Sprintf("required: %d", int64(e.Required))
}

// Cause allows ErrStillLocked.Is and ABCI code resolution to see through.
func (e *StillLockedError) Cause() error {
	return ErrStillLocked
}
