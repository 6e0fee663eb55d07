package errors

import (
	"strings"
	"testing"
)

func TestFieldWrapping(t *testing.T) {
	if err := Field("Value", nil, "ignored"); err != nil {
		t.Fatalf("nil error must stay nil, got %v", err)
	}

	var errs error
	errs = AppendField(errs, "Metadata.Schema", nil)
	errs = AppendField(errs, "MaturesAt", Wrap(ErrInput, "in the past"))
	errs = AppendField(errs, "Value", ErrAmount)
	errs = Append(errs, Field("Value", ErrAmount, "must be at least %d", 1))

	if !ErrInput.Is(errs) || !ErrAmount.Is(errs) {
		t.Fatalf("field errors must keep their kind: %v", errs)
	}
	if got := FieldErrors(errs, "Metadata.Schema"); len(got) != 0 {
		t.Fatalf("want no schema errors, got %v", got)
	}
	if got := FieldErrors(errs, "MaturesAt"); len(got) != 1 {
		t.Fatalf("want one maturity error, got %v", got)
	}
	value := FieldErrors(errs, "Value")
	if len(value) != 2 {
		t.Fatalf("want two value errors, got %v", value)
	}
	if msg := value[1].Error(); !strings.Contains(msg, `field "Value": must be at least 1`) {
		t.Fatalf("unexpected message: %s", msg)
	}
	if FieldErrors(Wrap(Field("Value", ErrAmount, ""), "deposit"), "Value") == nil {
		t.Fatal("wrapped field error not found")
	}
}
