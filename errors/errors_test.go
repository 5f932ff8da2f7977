package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(PhaseMarshal, KindResolution).
		Path("options", "getMaxResults").
		Detail("no such member").
		Build()

	got := err.Error()
	want := "[marshal] resolution at options.getMaxResults: no such member"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(PhaseInit, KindEngine, cause, "create engine")

	got := err.Error()
	if !strings.Contains(got, "create engine") {
		t.Fatalf("missing detail in %q", got)
	}
	if !strings.Contains(got, "(caused by: boom)") {
		t.Fatalf("missing cause in %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(PhaseClassify, KindEngine, cause, "classify")

	if !stderrors.Is(err, cause) {
		t.Fatal("errors.Is should reach the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := EngineFailure(PhaseInit, StatusInternal, "model too small")
	b := EngineFailure(PhaseInit, StatusInternal, "different text")
	c := EngineFailure(PhaseClassify, StatusInternal, "model too small")

	if !stderrors.Is(a, b) {
		t.Fatal("same phase and kind should match")
	}
	if stderrors.Is(a, c) {
		t.Fatal("different phase should not match")
	}
}

func TestError_MessageVerbatim(t *testing.T) {
	err := EngineFailure(PhaseInit, StatusInternal, "model too small")
	if err.Message() != "model too small" {
		t.Fatalf("engine message not verbatim: %q", err.Message())
	}

	structural := FieldMissing([]string{"options"}, "getDisplayNamesLocale")
	if !strings.Contains(structural.Message(), "getDisplayNamesLocale") {
		t.Fatalf("structural message lost context: %q", structural.Message())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		sub  string
	}{
		{"resolution", Resolution([]string{"opts"}, "no method GetLocale"), KindResolution, "GetLocale"},
		{"type mismatch", TypeMismatch([]string{"opts", "getMaxResults"}, "func() int", "func() string"), KindTypeMismatch, "func() string"},
		{"field missing", FieldMissing(nil, "getMaxResults"), KindFieldMissing, "getMaxResults"},
		{"buffer unmapped", BufferUnmapped("nil backing slice"), KindBufferUnmapped, "nil backing slice"},
		{"invalid handle", InvalidHandle(PhaseClassify, 7), KindInvalidHandle, "handle 7"},
		{"nil value", NilValue(PhaseInit, "options object"), KindNilValue, "options object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Fatalf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.sub) {
				t.Fatalf("%q does not contain %q", tt.err.Error(), tt.sub)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	structured := EngineFailure(PhaseClassify, StatusInternal, "bad frame")
	if From(PhaseInit, structured) != structured {
		t.Fatal("structured errors must pass through")
	}

	plain := fmt.Errorf("model too small")
	got := From(PhaseInit, plain)
	if got.Kind != KindEngine {
		t.Fatalf("Kind = %q, want %q", got.Kind, KindEngine)
	}
	if got.Message() != "model too small" {
		t.Fatalf("Message() = %q, want text preserved", got.Message())
	}
}
