package classifierbridge

import (
	"strings"
	"testing"
)

func TestLocalEnv_ThrowRecording(t *testing.T) {
	env := NewEnv()
	if env.Err() != nil || env.ThrowCount() != 0 {
		t.Fatal("fresh env must be clean")
	}

	env.Throw(AssertionError, "first failure")
	env.Throw(AssertionError, "second failure")

	if env.ThrowCount() != 2 {
		t.Fatalf("ThrowCount = %d", env.ThrowCount())
	}

	// First failure wins.
	err := env.Err().(*ThrownError)
	if err.Message != "first failure" {
		t.Fatalf("Err() = %q", err.Message)
	}
	if err.Class != AssertionError {
		t.Fatalf("Class = %q", err.Class)
	}
	if !strings.Contains(err.Error(), "first failure") {
		t.Fatalf("Error() = %q", err.Error())
	}

	env.Reset()
	if env.Err() != nil {
		t.Fatal("Reset must clear recorded throws")
	}
}

func TestSliceList_OrderAndCapacity(t *testing.T) {
	l := NewSliceList(4)
	if l.Cap() != 4 || l.Len() != 0 {
		t.Fatalf("cap=%d len=%d", l.Cap(), l.Len())
	}

	l.Append("a")
	l.Append("b")
	if l.Len() != 2 || l.At(0) != "a" || l.At(1) != "b" {
		t.Fatal("insertion order must be preserved")
	}
}

func TestFromStrings(t *testing.T) {
	l := FromStrings([]string{"x", "y", "z"})
	if l.Len() != 3 || l.At(2) != "z" {
		t.Fatalf("FromStrings = %v elements", l.Len())
	}
}

func TestLocalEnv_ObjectModel(t *testing.T) {
	env := NewEnv()

	inner := env.NewList(1)
	inner.Append(env.NewCategory("dog", 0.9))
	v := env.NewClassifications(inner, 2)

	c := v.(Classifications)
	if c.HeadIndex != 2 {
		t.Fatalf("head index = %d", c.HeadIndex)
	}
	cat := c.Categories.At(0).(Category)
	if cat.Label != "dog" || cat.Score != 0.9 {
		t.Fatalf("category = %+v", cat)
	}
}
