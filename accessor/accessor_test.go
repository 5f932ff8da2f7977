package accessor

import (
	stderrors "errors"
	"testing"

	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/errors"
)

type fakeOptions struct {
	locale    string
	max       int
	threshold float32
	set       bool
	allow     []string
}

func (o *fakeOptions) GetDisplayNamesLocale() string   { return o.locale }
func (o *fakeOptions) GetMaxResults() int              { return o.max }
func (o *fakeOptions) GetIsScoreThresholdSet() bool    { return o.set }
func (o *fakeOptions) GetScoreThreshold() float32      { return o.threshold }
func (o *fakeOptions) GetClassNameAllowList() []string { return o.allow }
func (o *fakeOptions) GetDenyList() bridge.List        { return bridge.FromStrings([]string{"x", "y"}) }

type badOptions struct{}

func (badOptions) GetMaxResults() string        { return "nope" }
func (badOptions) GetLocale(lang string) string { return lang }

func (badOptions) GetMixedList() bridge.List {
	l := bridge.NewSliceList(1)
	l.Append(42)
	return l
}

func TestAccessor_TypedReads(t *testing.T) {
	acc := New()
	opts := &fakeOptions{locale: "en", max: -1, threshold: 0.25, set: true}

	locale, err := acc.String(opts, "GetDisplayNamesLocale")
	if err != nil || locale != "en" {
		t.Fatalf("String = %q, %v", locale, err)
	}

	max, err := acc.Int(opts, "GetMaxResults")
	if err != nil || max != -1 {
		t.Fatalf("Int = %d, %v; negative sentinel must pass through", max, err)
	}

	set, err := acc.Bool(opts, "GetIsScoreThresholdSet")
	if err != nil || !set {
		t.Fatalf("Bool = %v, %v", set, err)
	}

	th, err := acc.Float32(opts, "GetScoreThreshold")
	if err != nil || th != 0.25 {
		t.Fatalf("Float32 = %v, %v", th, err)
	}
}

func TestAccessor_StringsFromSlice(t *testing.T) {
	acc := New()
	opts := &fakeOptions{allow: []string{"dog", "cat", "bird"}}

	ss, err := acc.Strings(opts, "GetClassNameAllowList")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"dog", "cat", "bird"}
	if len(ss) != len(want) {
		t.Fatalf("got %d elements, want %d", len(ss), len(want))
	}
	for i := range want {
		if ss[i] != want[i] {
			t.Fatalf("element %d = %q, want %q; order must be preserved", i, ss[i], want[i])
		}
	}
}

func TestAccessor_StringsFromList(t *testing.T) {
	acc := New()
	ss, err := acc.Strings(&fakeOptions{}, "GetDenyList")
	if err != nil {
		t.Fatal(err)
	}
	if len(ss) != 2 || ss[0] != "x" || ss[1] != "y" {
		t.Fatalf("List iteration got %v", ss)
	}
}

func TestAccessor_MissingMember(t *testing.T) {
	acc := New()
	_, err := acc.String(&fakeOptions{}, "GetNoSuchThing")
	if err == nil {
		t.Fatal("missing member must be a hard failure")
	}
	if !stderrors.Is(err, errors.Resolution(nil, "")) {
		t.Fatalf("want resolution error, got %v", err)
	}
}

func TestAccessor_SignatureMismatch(t *testing.T) {
	acc := New()

	// wrong return type
	if _, err := acc.Int(badOptions{}, "GetMaxResults"); err == nil {
		t.Fatal("wrong return type must fail")
	}

	// wrong arity
	if _, err := acc.String(badOptions{}, "GetLocale"); err == nil {
		t.Fatal("non-niladic member must fail")
	}

	// list with non-string element
	if _, err := acc.Strings(badOptions{}, "GetMixedList"); err == nil {
		t.Fatal("non-string list element must fail")
	}
}

func TestAccessor_NilObject(t *testing.T) {
	acc := New()
	_, err := acc.String(nil, "GetDisplayNamesLocale")
	if err == nil {
		t.Fatal("nil object must be a hard failure")
	}
}

func TestAccessor_CacheHitStillResolves(t *testing.T) {
	acc := New()
	opts := &fakeOptions{locale: "fr"}

	for i := 0; i < 3; i++ {
		locale, err := acc.String(opts, "GetDisplayNamesLocale")
		if err != nil || locale != "fr" {
			t.Fatalf("call %d: %q, %v", i, locale, err)
		}
	}

	// Same member name on a different dynamic type resolves independently.
	if _, err := acc.Int(badOptions{}, "GetMaxResults"); err == nil {
		t.Fatal("cache must be keyed by dynamic type, not member name alone")
	}
}
