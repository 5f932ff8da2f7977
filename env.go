package classifierbridge

import "fmt"

// ThrownError is the error form of a managed exception raised through a
// LocalEnv. Message is preserved verbatim as thrown.
type ThrownError struct {
	Class   ErrorClass
	Message string
}

func (e *ThrownError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Class, e.Message)
}

// LocalEnv is a plain-Go Env for callers without a foreign object model.
// Throws are recorded instead of raised; results are built from SliceList,
// Category and Classifications values.
//
// A LocalEnv is not safe for concurrent use.
type LocalEnv struct {
	thrown []*ThrownError
}

// NewEnv creates an empty LocalEnv.
func NewEnv() *LocalEnv {
	return &LocalEnv{}
}

// Throw records the exception.
func (e *LocalEnv) Throw(class ErrorClass, message string) {
	e.thrown = append(e.thrown, &ThrownError{Class: class, Message: message})
}

// Err returns the first recorded exception, or nil if none was thrown.
func (e *LocalEnv) Err() error {
	if len(e.thrown) == 0 {
		return nil
	}
	return e.thrown[0]
}

// ThrowCount returns how many exceptions have been recorded.
func (e *LocalEnv) ThrowCount() int {
	return len(e.thrown)
}

// Reset clears recorded exceptions so the env can serve another call.
func (e *LocalEnv) Reset() {
	e.thrown = e.thrown[:0]
}

func (e *LocalEnv) NewList(capacity int) List {
	return &SliceList{items: make([]any, 0, capacity)}
}

func (e *LocalEnv) NewCategory(label string, score float32) any {
	return Category{Label: label, Score: score}
}

func (e *LocalEnv) NewClassifications(categories List, headIndex int) any {
	return Classifications{Categories: categories, HeadIndex: headIndex}
}

// Category is one labeled score in the plain-Go object model.
type Category struct {
	Label string
	Score float32
}

// Classifications is one output head's ordered categories in the plain-Go
// object model.
type Classifications struct {
	Categories List
	HeadIndex  int
}

// SliceList is the plain-Go List implementation backed by a slice.
type SliceList struct {
	items []any
}

// NewSliceList creates a SliceList with the given capacity hint.
func NewSliceList(capacity int) *SliceList {
	return &SliceList{items: make([]any, 0, capacity)}
}

// FromStrings wraps the given strings in a SliceList, preserving order.
func FromStrings(ss []string) *SliceList {
	l := NewSliceList(len(ss))
	for _, s := range ss {
		l.Append(s)
	}
	return l
}

func (l *SliceList) Len() int     { return len(l.items) }
func (l *SliceList) At(i int) any { return l.items[i] }
func (l *SliceList) Append(v any) { l.items = append(l.items, v) }

// Cap exposes the backing capacity, used to verify exact preallocation.
func (l *SliceList) Cap() int { return cap(l.items) }
