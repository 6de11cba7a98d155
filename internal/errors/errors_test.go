package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := RosterInvalid("could not read roster", fmt.Errorf("open roster.csv: no such file"))

	wrapped := Wrap(base, "draw aborted")
	appErr, ok := wrapped.(*AppError)
	if !ok {
		t.Fatalf("Wrap returned %T, want *AppError", wrapped)
	}
	if appErr.Code != CodeRosterInvalid {
		t.Errorf("code = %s, want %s", appErr.Code, CodeRosterInvalid)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause chain")
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should stay nil")
	}
	if Wrapf(nil, "nothing %d", 1) != nil {
		t.Error("Wrapf(nil) should stay nil")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "config", err: ConfigInvalid("missing BREVO_API_KEY"), want: CodeConfigInvalid},
		{name: "delivery", err: DeliveryFailed("a@b.test", errors.New("503")), want: CodeDeliveryFailed},
		{name: "render", err: RenderFailed("bad template", errors.New("parse")), want: CodeRenderFailed},
		{name: "plain error", err: errors.New("plain"), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeDeliveryFailed, errors.New("connection refused"))
	if GetCode(err) != CodeDeliveryFailed {
		t.Errorf("code = %s, want %s", GetCode(err), CodeDeliveryFailed)
	}
	if !IsAppError(err) {
		t.Error("WithCode should produce an AppError")
	}
}
