package accessor

import (
	"fmt"
	"reflect"
	"sync"

	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/errors"
)

type memberKey struct {
	typ  reflect.Type
	name string
}

// Accessor reads typed values from opaque managed objects by resolving
// getter members reflectively. Resolution results are cached per
// (dynamic type, member name) pair.
//
// An Accessor is safe for concurrent use.
type Accessor struct {
	mu    sync.RWMutex
	cache map[memberKey]int // method index into the dynamic type's method set
}

// New creates an empty Accessor.
func New() *Accessor {
	return &Accessor{
		cache: make(map[memberKey]int, 8),
	}
}

// resolve returns the bound method for obj.name, resolving and caching the
// method index on first use. Missing members are hard failures.
func (a *Accessor) resolve(obj any, name string) (reflect.Value, *errors.Error) {
	if obj == nil {
		return reflect.Value{}, errors.NilValue(errors.PhaseMarshal, "managed object")
	}

	v := reflect.ValueOf(obj)
	key := memberKey{typ: v.Type(), name: name}

	a.mu.RLock()
	idx, ok := a.cache[key]
	a.mu.RUnlock()
	if ok {
		return v.Method(idx), nil
	}

	m, ok := key.typ.MethodByName(name)
	if !ok {
		return reflect.Value{}, errors.Resolution(
			[]string{name},
			fmt.Sprintf("type %s has no method %s", key.typ, name),
		)
	}

	a.mu.Lock()
	a.cache[key] = m.Index
	a.mu.Unlock()

	return v.Method(m.Index), nil
}

// call invokes a resolved niladic getter and checks its arity.
func (a *Accessor) call(obj any, name string) (reflect.Value, *errors.Error) {
	m, err := a.resolve(obj, name)
	if err != nil {
		return reflect.Value{}, err
	}

	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return reflect.Value{}, errors.TypeMismatch([]string{name}, "func() T", t.String())
	}
	return m.Call(nil)[0], nil
}

// String reads a string-valued member.
func (a *Accessor) String(obj any, name string) (string, error) {
	out, err := a.call(obj, name)
	if err != nil {
		return "", err
	}
	if out.Kind() != reflect.String {
		return "", errors.TypeMismatch([]string{name}, "func() string", out.Type().String())
	}
	return out.String(), nil
}

// Int reads a signed-integer member. Negative values pass through unchanged.
func (a *Accessor) Int(obj any, name string) (int, error) {
	out, err := a.call(obj, name)
	if err != nil {
		return 0, err
	}
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(out.Int()), nil
	}
	return 0, errors.TypeMismatch([]string{name}, "func() int", out.Type().String())
}

// Bool reads a boolean member.
func (a *Accessor) Bool(obj any, name string) (bool, error) {
	out, err := a.call(obj, name)
	if err != nil {
		return false, err
	}
	if out.Kind() != reflect.Bool {
		return false, errors.TypeMismatch([]string{name}, "func() bool", out.Type().String())
	}
	return out.Bool(), nil
}

// Float32 reads a float member.
func (a *Accessor) Float32(obj any, name string) (float32, error) {
	out, err := a.call(obj, name)
	if err != nil {
		return 0, err
	}
	switch out.Kind() {
	case reflect.Float32, reflect.Float64:
		return float32(out.Float()), nil
	}
	return 0, errors.TypeMismatch([]string{name}, "func() float32", out.Type().String())
}

// Strings reads an ordered list of strings. The member may return []string
// directly or a classifierbridge.List whose elements are strings; either way
// the result is copied out element by element with order preserved, so no
// reference to the managed collection escapes the call.
func (a *Accessor) Strings(obj any, name string) ([]string, error) {
	out, err := a.call(obj, name)
	if err != nil {
		return nil, err
	}

	if out.Kind() == reflect.Slice && out.Type().Elem().Kind() == reflect.String {
		n := out.Len()
		ss := make([]string, n)
		for i := 0; i < n; i++ {
			ss[i] = out.Index(i).String()
		}
		return ss, nil
	}

	if list, ok := out.Interface().(bridge.List); ok {
		n := list.Len()
		ss := make([]string, 0, n)
		for i := 0; i < n; i++ {
			s, ok := list.At(i).(string)
			if !ok {
				return nil, errors.TypeMismatch(
					[]string{name, fmt.Sprintf("[%d]", i)},
					"string element", fmt.Sprintf("%T", list.At(i)),
				)
			}
			ss = append(ss, s)
		}
		return ss, nil
	}

	return nil, errors.TypeMismatch([]string{name}, "func() []string or List", out.Type().String())
}
