package assert

import (
	"testing"

	"github.com/hodl4me/hodl/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant: errors.ErrEmpty,
			ErrGot:  errors.ErrEmpty,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant: nil,
			ErrGot:  nil,
		},
		"wrapped": {
			ErrWant: errors.ErrEmpty,
			ErrGot:  errors.Wrap(errors.ErrEmpty, "test"),
		},
		"different root": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrAmount, "test"),
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			mock.run(func() { IsErr(mock, tc.ErrWant, tc.ErrGot) })
			if failed := mock.failcalls > 0; tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	cases := map[string]struct {
		Err      error
		Name     string
		WantErr  *errors.Error
		WantFail bool
	}{
		"ensure a single error exists and is found": {
			Err:     errors.Field("Amount", errors.ErrAmount, "must be positive"),
			Name:    "Amount",
			WantErr: errors.ErrAmount,
		},
		"use nil to ensure no error was found": {
			Err:  errors.Field("Amount", errors.ErrAmount, "must be positive"),
			Name: "Depositor",
		},
		"nil error fails when a field error is expected": {
			Name:     "Amount",
			WantErr:  errors.ErrAmount,
			WantFail: true,
		},
		"field error of a different kind": {
			Err:      errors.Field("Amount", errors.ErrEmpty, "missing"),
			Name:     "Amount",
			WantErr:  errors.ErrAmount,
			WantFail: true,
		},
		"error found in a group": {
			Err: errors.AppendField(
				errors.AppendField(nil, "Depositor", errors.ErrEmpty),
				"MaturesAt", errors.ErrInput),
			Name:    "MaturesAt",
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			mock.run(func() { FieldError(mock, tc.Err, tc.Name, tc.WantErr) })
			if failed := mock.failcalls > 0; tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestEqualAndNil(t *testing.T) {
	mock := &tmock{TB: t}
	mock.run(func() { Equal(mock, 1, 2) })
	if mock.failcalls != 1 {
		t.Fatal("different values must fail")
	}

	mock = &tmock{TB: t}
	var ptr *int
	mock.run(func() { Nil(mock, ptr) })
	mock.run(func() { Nil(mock, nil) })
	if mock.failcalls != 0 {
		t.Fatal("nil values must pass")
	}
	mock.run(func() { Nil(mock, errors.ErrEmpty) })
	if mock.failcalls != 1 {
		t.Fatal("non nil value must fail")
	}
}

// tmock records fatal calls instead of stopping the test. A fatal call
// unwinds the asserting function, the way testing.T does with runtime.Goexit.
type tmock struct {
	testing.TB
	failcalls int
}

type failure struct{}

func (m *tmock) Fatal(args ...interface{}) {
	m.failcalls++
	panic(failure{})
}

func (m *tmock) Fatalf(s string, args ...interface{}) {
	m.failcalls++
	panic(failure{})
}

func (m *tmock) Errorf(s string, args ...interface{}) {
	m.failcalls++
}

func (m *tmock) Logf(s string, args ...interface{}) {}

func (m *tmock) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failure); !ok {
				panic(r)
			}
		}
	}()
	fn()
}
