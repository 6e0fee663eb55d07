package coin

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/hodl4me/hodl/errors"
	"github.com/holiman/uint256"
)

// isCanonical matches a decimal number without sign or leading zeros.
var isCanonical = regexp.MustCompile(`^(0|[1-9][0-9]*)$`).MatchString

// Amount is a non negative integer of at most 256 bits in its canonical
// decimal form. An empty amount is equal to zero.
type Amount string

// Zero is the canonical zero amount.
const Zero Amount = "0"

// NewAmount returns the amount representing given value.
func NewAmount(v uint64) Amount {
	return Amount(strconv.FormatUint(v, 10))
}

// ParseAmount returns the amount represented by given decimal string. Only
// the canonical form is accepted.
func ParseAmount(s string) (Amount, error) {
	a := Amount(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// MustParseAmount is like ParseAmount but panics on invalid input.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromInt returns the amount representing given value.
func FromInt(v *uint256.Int) Amount {
	return Amount(v.Dec())
}

// Validate returns an error if the amount is not a canonical decimal or does
// not fit in 256 bits.
func (a Amount) Validate() error {
	if a == "" {
		return nil
	}
	if !isCanonical(string(a)) {
		return errors.Wrapf(errors.ErrAmount, "malformed amount %q", string(a))
	}
	if _, err := uint256.FromDecimal(string(a)); err != nil {
		return errors.Wrapf(errors.ErrOverflow, "amount %q: %s", string(a), err)
	}
	return nil
}

// Int returns the 256 bit integer value of this amount.
func (a Amount) Int() (*uint256.Int, error) {
	if a == "" {
		return new(uint256.Int), nil
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	v, err := uint256.FromDecimal(string(a))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrAmount, "amount %q: %s", string(a), err)
	}
	return v, nil
}

// IsZero returns true if this amount represents no value.
func (a Amount) IsZero() bool {
	return a == "" || a == Zero
}

// IsPositive returns true if this is a well formed amount greater than zero.
func (a Amount) IsPositive() bool {
	return !a.IsZero() && a.Validate() == nil
}

// Compare returns 1 if a is greater than b, -1 if it is smaller and zero if
// both amounts are equal.
func (a Amount) Compare(b Amount) (int, error) {
	x, err := a.Int()
	if err != nil {
		return 0, err
	}
	y, err := b.Int()
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(b Amount) bool {
	c, err := a.Compare(b)
	return err == nil && c == 0
}

// Add returns the sum of both amounts. ErrOverflow is returned if the result
// does not fit in 256 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	x, err := a.Int()
	if err != nil {
		return "", err
	}
	y, err := b.Int()
	if err != nil {
		return "", err
	}
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return "", errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return FromInt(sum), nil
}

// Sub returns a - b. ErrAmount is returned if b is greater than a, because
// an amount cannot be negative.
func (a Amount) Sub(b Amount) (Amount, error) {
	x, err := a.Int()
	if err != nil {
		return "", err
	}
	y, err := b.Int()
	if err != nil {
		return "", err
	}
	diff, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return "", errors.Wrapf(errors.ErrAmount, "%s is less than %s", a, b)
	}
	return FromInt(diff), nil
}

// String returns the canonical representation, "0" for an empty amount.
func (a Amount) String() string {
	if a == "" {
		return string(Zero)
	}
	return string(a)
}

// MarshalJSON always encodes the amount as a string. JavaScript clients
// cannot represent 256 bit numbers.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a string and a plain number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrAmount, "amount must be a string or a number")
		}
		s = n.String()
	}
	amount, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = amount
	return nil
}
