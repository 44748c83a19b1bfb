package propbag_test

import (
	"testing"

	"propbag"
	"propbag/testutils"
)

// TestFunctionCall tests direct invocation and the null result of a missing
// callable.
func TestFunctionCall(t *testing.T) {
	sum := propbag.NewFunction("sum", func(args []propbag.Value) propbag.Value {
		n := int32(0)
		for _, a := range args {
			n += a.Int32()
		}
		return propbag.Int32Value(n)
	})
	got := sum.Call(propbag.Int32Value(1), propbag.Int32Value(2), propbag.Int32Value(3))
	if got.Int32() != 6 {
		t.Errorf("wrong call result: have %v, want 6", got)
	}
	empty := propbag.NewFunction("empty", nil)
	if !empty.Call(propbag.Int32Value(1)).IsNull() {
		t.Error("calling a function with no callable did not yield null")
	}
}

// TestFunctionCallValue tests the package-level Call on function and
// non-function values.
func TestFunctionCallValue(t *testing.T) {
	f := propbag.NewFunction("one", func([]propbag.Value) propbag.Value {
		return propbag.Int32Value(1)
	})
	if got := propbag.Call(propbag.FunctionValue(f)); got.Int32() != 1 {
		t.Errorf("wrong call result: have %v, want 1", got)
	}
	if !propbag.Call(propbag.Int32Value(1)).IsNull() {
		t.Error("calling a non-function did not yield null")
	}
	if !propbag.Call(propbag.FunctionValue(nil)).IsNull() {
		t.Error("calling an absent handle did not yield null")
	}
}

// TestFunctionName tests the live name property and renaming.
func TestFunctionName(t *testing.T) {
	f := propbag.NewFunction("first", nil)
	testutils.CheckRender(t, f.GetProperty("name"), "first")
	f.SetName("second")
	testutils.CheckRender(t, f.GetProperty("name"), "second")
	// name has no setter and is not writable.
	if f.SetProperty("name", str("third")) {
		t.Error("assignment to name succeeded")
	}
	// name and length are not enumerable.
	testutils.CheckNames(t, f)
}

// TestFunctionLength tests the declared-arity slot.
func TestFunctionLength(t *testing.T) {
	f := propbag.NewFunction("f", nil)
	got := f.GetProperty("length")
	if got.Kind() != propbag.KindUInt32 || got.UInt32() != 0 {
		t.Errorf("wrong length: have %v (%v)", got, got.Kind())
	}
	if f.SetProperty("length", propbag.UInt32Value(2)) {
		t.Error("assignment to length succeeded")
	}
}

// TestFunctionCallBuiltin tests the synthesized call method.
func TestFunctionCallBuiltin(t *testing.T) {
	echo := propbag.NewFunction("echo", func(args []propbag.Value) propbag.Value {
		if len(args) == 0 {
			return propbag.Null
		}
		return args[0]
	})
	got := testutils.Call(t, echo, "call", str("hi"))
	testutils.CheckRender(t, got, "hi")
}

// TestFunctionToString tests the source-like rendering.
func TestFunctionToString(t *testing.T) {
	f := propbag.NewFunction("greet", nil)
	if got := f.ToString(); got != "function greet() { [native code] }" {
		t.Errorf("wrong rendering: have %q", got)
	}
}
