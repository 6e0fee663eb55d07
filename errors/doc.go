/*
Package errors implements the error kinds used by every hodl extension.

Each failure returned by a handler wraps exactly one root error created with
Register. The root error carries the ABCI code reported to the client, while
the wrapping layers add a human readable context:

	if msg.MaturesAt <= now {
		return errors.Wrap(ErrMaturity, "Unlock time needs to be in the future")
	}

Test for a kind with the Is method of the root error:

	if vault.ErrAlreadyWithdrawn.Is(err) {
		...
	}
*/
package errors
