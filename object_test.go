package propbag_test

import (
	"testing"

	"propbag"
	"propbag/testutils"
)

// TestSetPropertyNonWritable tests that assignment to a non-writable property
// without a setter fails and leaves the stored value untouched.
func TestSetPropertyNonWritable(t *testing.T) {
	o := propbag.NewObject()
	o.DefineProperty("id", propbag.DataDescriptor(propbag.Int32Value(7), false, true, true))
	if o.SetProperty("id", propbag.Int32Value(0)) {
		t.Error("assignment to non-writable property succeeded")
	}
	if got := o.GetProperty("id").Int32(); got != 7 {
		t.Errorf("stored value changed: have %v, want 7", got)
	}
}

// TestSetPropertyWritable tests overwrite of a plain data property and
// implicit definition of an unknown name.
func TestSetPropertyWritable(t *testing.T) {
	o := propbag.NewObject()
	if !o.SetProperty("x", propbag.Int32Value(1)) {
		t.Fatal("implicit definition failed")
	}
	if !o.SetProperty("x", propbag.Int32Value(2)) {
		t.Fatal("overwrite of writable property failed")
	}
	if got := o.GetProperty("x").Int32(); got != 2 {
		t.Errorf("wrong stored value: have %v, want 2", got)
	}
	// Implicitly defined properties are enumerable and configurable.
	testutils.CheckNames(t, o, "x")
	if !o.DeleteProperty("x") {
		t.Error("implicitly defined property is not configurable")
	}
}

// TestAccessorPrecedence tests that accessors win over the stored value and
// the writable flag.
func TestAccessorPrecedence(t *testing.T) {
	o := propbag.NewObject()
	backing := propbag.Int32Value(1)
	o.DefineProperty("x", propbag.PropertyDescriptor{
		Value:  propbag.Int32Value(99),
		Getter: func() propbag.Value { return backing },
		Setter: func(v propbag.Value) { backing = v },
	})
	if got := o.GetProperty("x").Int32(); got != 1 {
		t.Errorf("getter not consulted: have %v, want 1", got)
	}
	// Writable is false, but the setter still runs.
	if !o.SetProperty("x", propbag.Int32Value(2)) {
		t.Error("assignment through setter failed")
	}
	if got := backing.Int32(); got != 2 {
		t.Errorf("setter not consulted: have %v, want 2", got)
	}
}

// TestDeleteProperty tests that deletion respects the configurable flag.
func TestDeleteProperty(t *testing.T) {
	o := propbag.NewObject()
	o.DefineProperty("keep", propbag.DataDescriptor(propbag.Int32Value(1), true, true, false))
	o.DefineProperty("drop", propbag.DataDescriptor(propbag.Int32Value(2), true, true, true))
	cases := map[string]struct {
		name string
		ok   bool
	}{
		"NonConfigurable": {"keep", false},
		"Configurable":    {"drop", true},
		"Missing":         {"gone", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if ok := o.DeleteProperty(c.name); ok != c.ok {
				t.Errorf("wrong delete result for %q: have %v, want %v", c.name, ok, c.ok)
			}
		})
	}
	if !o.HasProperty("keep") {
		t.Error("failed deletion removed the property")
	}
	if o.HasProperty("drop") {
		t.Error("successful deletion left the property behind")
	}
}

// TestDefinePropertyOverwrite tests that redefinition succeeds even when the
// existing descriptor is not configurable.
func TestDefinePropertyOverwrite(t *testing.T) {
	o := propbag.NewObject()
	o.DefineProperty("x", propbag.DataDescriptor(propbag.Int32Value(1), false, false, false))
	if !o.DefineProperty("x", propbag.DataDescriptor(propbag.Int32Value(2), true, true, true)) {
		t.Fatal("redefinition failed")
	}
	if got := o.GetProperty("x").Int32(); got != 2 {
		t.Errorf("wrong value after redefinition: have %v, want 2", got)
	}
}

// TestPropertyNames tests that enumeration includes only enumerable stored
// properties and is sorted.
func TestPropertyNames(t *testing.T) {
	o := propbag.NewObject()
	o.SetProperty("zeta", propbag.Int32Value(1))
	o.SetProperty("alpha", propbag.Int32Value(2))
	o.DefineProperty("hidden", propbag.DataDescriptor(propbag.Int32Value(3), true, false, true))
	testutils.CheckNames(t, o, "alpha", "zeta")
}

// TestHasProperty tests that presence probes the stored table only, so
// synthesized built-ins are gettable but not present.
func TestHasProperty(t *testing.T) {
	o := propbag.NewObject()
	if o.HasProperty("toString") {
		t.Error("synthesized built-in reported present")
	}
	if o.GetProperty("toString").Kind() != propbag.KindFunction {
		t.Error("synthesized built-in not resolved by lookup")
	}
}

// TestGetPropertyMissing tests that unknown names resolve to null.
func TestGetPropertyMissing(t *testing.T) {
	o := propbag.NewObject()
	if got := o.GetProperty("missing"); !got.IsNull() {
		t.Errorf("unknown name resolved to %v, want null", got.Kind())
	}
}

// TestToStringBuiltin tests that the synthesized toString of each variant
// produces the variant's own rendering.
func TestToStringBuiltin(t *testing.T) {
	cases := map[string]struct {
		h    propbag.Handle
		want string
	}{
		"Object":   {propbag.NewObject(), "[object Object]"},
		"String":   {propbag.NewString("hi"), "hi"},
		"Array":    {propbag.NewArrayOf(propbag.Int32Value(1), propbag.Int32Value(2)), "1,2"},
		"Function": {propbag.NewFunction("f", nil), "function f() { [native code] }"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			testutils.CheckRender(t, testutils.Call(t, c.h, "toString"), c.want)
		})
	}
}

// TestIndexSugar tests the index forms of get and set on a plain object.
func TestIndexSugar(t *testing.T) {
	o := propbag.NewObject()
	if !o.SetAtIndex(3, propbag.Int32Value(30)) {
		t.Fatal("indexed assignment failed")
	}
	if got := o.AtIndex(3).Int32(); got != 30 {
		t.Errorf("wrong value through index sugar: have %v, want 30", got)
	}
	if got := o.At("3").Int32(); got != 30 {
		t.Errorf("index property not stored under decimal name: have %v, want 30", got)
	}
}

// TestUniqueID tests that distinct objects receive distinct IDs.
func TestUniqueID(t *testing.T) {
	a, b := propbag.NewObject(), propbag.NewObject()
	if a.UniqueID() == b.UniqueID() {
		t.Error("distinct objects share an ID")
	}
}
