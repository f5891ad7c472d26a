package rverrors_test

import (
	"errors"
	"testing"

	"github.com/lookbusy1344/arm-emulator/rverrors"
)

func TestErrorFormatsKindAndMessage(t *testing.T) {
	err := rverrors.New(rverrors.BadRegister, "invalid register: %s", "x99")
	want := "BadRegister: invalid register: x99"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapFormatsUnderlyingCause(t *testing.T) {
	cause := errors.New("strconv failure")
	err := rverrors.Wrap(rverrors.ImmediateOutOfRange, cause, "parsing %q", "0xzz")
	want := `ImmediateOutOfRange: parsing "0xzz": strconv failure`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() did not return the wrapped cause")
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := rverrors.New(rverrors.ShiftOutOfRange, "shamt 40 invalid for RV32I")
	if !rverrors.Is(err, rverrors.ShiftOutOfRange) {
		t.Errorf("Is() = false, want true for matching kind")
	}
	if rverrors.Is(err, rverrors.BadCsr) {
		t.Errorf("Is() = true, want false for mismatched kind")
	}
}
