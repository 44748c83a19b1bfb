package propbag

// A NativeFn is the Go body of a callable object. It receives the argument
// values and returns the result.
type NativeFn func(args []Value) Value

// A Function wraps a callable. The "name" property reflects the function's
// current name through a getter; "length" is a fixed declared-arity slot.
type Function struct {
	Object
	name string
	fn   NativeFn
}

// NewFunction creates a Function with the given name wrapping fn. A nil fn is
// allowed; calling it yields null.
func NewFunction(name string, fn NativeFn) *Function {
	f := &Function{name: name, fn: fn}
	f.init(f)
	f.DefineProperty("name", PropertyDescriptor{
		Getter:       func() Value { return StringValue(NewString(f.name)) },
		Configurable: true,
	})
	f.DefineProperty("length", DataDescriptor(UInt32Value(0), false, false, true))
	return f
}

// Kind returns KindFunction.
func (f *Function) Kind() Kind {
	return KindFunction
}

// Name returns the function's name.
func (f *Function) Name() string {
	return f.name
}

// SetName renames the function. The "name" property reflects the change.
func (f *Function) SetName(name string) {
	f.name = name
}

// Call invokes the wrapped callable with args. It returns null when no
// callable is attached.
func (f *Function) Call(args ...Value) Value {
	if f.fn == nil {
		return Null
	}
	return f.fn(args)
}

// Call invokes v as a function with args. It returns null when v is not a
// function or has no handle.
func Call(v Value, args ...Value) Value {
	f := v.AsFunction()
	if f == nil {
		return Null
	}
	return f.Call(args...)
}

// ToString renders the function in source-like form with an opaque body.
func (f *Function) ToString() string {
	return "function " + f.name + "() { [native code] }"
}

// resolveBuiltin synthesizes the call method, then delegates to the base.
func (f *Function) resolveBuiltin(name string) (Value, bool) {
	if name == "call" {
		fn := NewFunction("call", func(args []Value) Value {
			return f.Call(args...)
		})
		return FunctionValue(fn), true
	}
	return f.Object.resolveBuiltin(name)
}
