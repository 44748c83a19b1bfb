// Package testutils provides utilities for testing property bag objects.
package testutils

import (
	"testing"

	"propbag"
)

// Builtin resolves the named property on h's base object and asserts that it
// is a function handle. The test fails fatally otherwise.
func Builtin(t *testing.T, h propbag.Handle, name string) *propbag.Function {
	t.Helper()
	v := h.Base().GetProperty(name)
	if v.Kind() != propbag.KindFunction {
		t.Fatalf("property %q resolved to %v, not a function", name, v.Kind())
	}
	f := v.AsFunction()
	if f == nil {
		t.Fatalf("property %q is a function value with no handle", name)
	}
	return f
}

// Call resolves the named property on h's base object as a function and
// invokes it with args.
func Call(t *testing.T, h propbag.Handle, name string, args ...propbag.Value) propbag.Value {
	t.Helper()
	return Builtin(t, h, name).Call(args...)
}

// CheckNames asserts that h's enumerable stored property names are exactly
// want, in order. PropertyNames sorts, so want must be sorted as well.
func CheckNames(t *testing.T, h propbag.Handle, want ...string) {
	t.Helper()
	names := h.Base().PropertyNames()
	if len(names) != len(want) {
		t.Errorf("wrong property names: want %v, got %v", want, names)
		return
	}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("wrong property names: want %v, got %v", want, names)
			return
		}
	}
}

// CheckRender asserts that v renders as want.
func CheckRender(t *testing.T, v propbag.Value, want string) {
	t.Helper()
	if got := v.String(); got != want {
		t.Errorf("wrong rendering: want %q, got %q", want, got)
	}
}
