package coin

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest/assert"
)

// 2^256 - 1
const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestAmountValidate(t *testing.T) {
	cases := map[string]struct {
		amount  Amount
		wantErr *errors.Error
	}{
		"empty is zero":        {amount: ""},
		"zero":                 {amount: "0"},
		"wei sized":            {amount: "1000000000000000000"},
		"largest value":        {amount: maxUint256},
		"leading zero":         {amount: "01", wantErr: errors.ErrAmount},
		"negative":             {amount: "-1", wantErr: errors.ErrAmount},
		"fraction":             {amount: "1.5", wantErr: errors.ErrAmount},
		"sign":                 {amount: "+1", wantErr: errors.ErrAmount},
		"not a number":         {amount: "ten", wantErr: errors.ErrAmount},
		"more than 256 bits":   {amount: "115792089237316195423570985008687907853269984665640564039457584007913129639936", wantErr: errors.ErrOverflow},
		"far more than 256bit": {amount: Amount("1" + strings.Repeat("0", 90)), wantErr: errors.ErrOverflow},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.amount.Validate())
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	sum, err := NewAmount(40).Add("2")
	assert.Nil(t, err)
	assert.Equal(t, Amount("42"), sum)

	sum, err = Amount("").Add("7")
	assert.Nil(t, err)
	assert.Equal(t, Amount("7"), sum)

	_, err = Amount(maxUint256).Add("1")
	assert.IsErr(t, errors.ErrOverflow, err)

	diff, err := Amount("1000000000000000000").Sub("1")
	assert.Nil(t, err)
	assert.Equal(t, Amount("999999999999999999"), diff)

	diff, err = NewAmount(5).Sub("5")
	assert.Nil(t, err)
	assert.Equal(t, true, diff.IsZero())

	_, err = NewAmount(5).Sub("6")
	assert.IsErr(t, errors.ErrAmount, err)

	_, err = NewAmount(5).Add("x")
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestAmountCompare(t *testing.T) {
	cases := map[string]struct {
		a, b Amount
		want int
	}{
		"equal":             {a: "10", b: "10", want: 0},
		"empty equals zero": {a: "", b: "0", want: 0},
		"greater":           {a: maxUint256, b: "1", want: 1},
		"smaller":           {a: "9", b: "10", want: -1},
		"longer is greater": {a: "100", b: "99", want: 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Compare(tc.b)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == 0, tc.a.Equals(tc.b))
		})
	}
}

func TestAmountIsPositive(t *testing.T) {
	assert.Equal(t, false, Amount("").IsPositive())
	assert.Equal(t, false, Zero.IsPositive())
	assert.Equal(t, false, Amount("-3").IsPositive())
	assert.Equal(t, true, Amount("1").IsPositive())
}

func TestAmountJSON(t *testing.T) {
	raw, err := json.Marshal(Amount(""))
	assert.Nil(t, err)
	assert.Equal(t, `"0"`, string(raw))

	var a Amount
	assert.Nil(t, json.Unmarshal([]byte(`"`+maxUint256+`"`), &a))
	assert.Equal(t, Amount(maxUint256), a)

	assert.Nil(t, json.Unmarshal([]byte(`1500`), &a))
	assert.Equal(t, Amount("1500"), a)

	assert.IsErr(t, errors.ErrAmount, json.Unmarshal([]byte(`-4`), &a))
	assert.IsErr(t, errors.ErrAmount, json.Unmarshal([]byte(`true`), &a))
}

func TestMustParseAmount(t *testing.T) {
	assert.Equal(t, Amount("12"), MustParseAmount("12"))
	assert.Panics(t, func() { MustParseAmount("012") })
}
