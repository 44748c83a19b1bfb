package propbag

import (
	"math"
	"strconv"
)

// Kind discriminates the variants of a Value. A Value is always exactly one
// variant; the three integer widths and Double are distinct kinds which
// consumers must discriminate explicitly. There is no implicit promotion.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindUInt32
	KindUInt64
	KindDouble
	KindString
	KindArray
	KindObject
	KindFunction
	KindDate
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt32:
		return "int32"
	case KindUInt32:
		return "uint32"
	case KindUInt64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// A Handle is a shared reference to a heap-allocated object variant. Every
// concrete type embeds Object and implements Handle; copies of a Value alias
// the same underlying object, so mutation through one handle is visible
// through all of them.
type Handle interface {
	// Base returns the object owning the property table. All property
	// protocol operations go through it.
	Base() *Object
	// Kind reports which variant the handle refers to.
	Kind() Kind
	// ToString renders the object as text.
	ToString() string

	// resolveBuiltin synthesizes a built-in member for a recognized name.
	// Implementations handle their own names and then delegate to the
	// embedded base's method directly, never back through GetProperty.
	resolveBuiltin(name string) (Value, bool)
}

// A Value is a member of the closed union over null, boolean, the three
// integer widths, double, and the five handle kinds. The zero Value is null.
// Numeric payloads are packed into a single word; handle kinds carry a
// reference which may itself be absent.
type Value struct {
	kind   Kind
	num    uint64
	handle Handle
}

// Null is the null value. It is also the zero value of the Value type.
var Null = Value{}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1}
	}
	return Value{kind: KindBool}
}

// Int32Value returns a signed 32-bit integer Value.
func Int32Value(n int32) Value {
	return Value{kind: KindInt32, num: uint64(int64(n))}
}

// UInt32Value returns an unsigned 32-bit integer Value.
func UInt32Value(n uint32) Value {
	return Value{kind: KindUInt32, num: uint64(n)}
}

// UInt64Value returns an unsigned 64-bit integer Value.
func UInt64Value(n uint64) Value {
	return Value{kind: KindUInt64, num: n}
}

// DoubleValue returns a double Value.
func DoubleValue(f float64) Value {
	return Value{kind: KindDouble, num: math.Float64bits(f)}
}

// ObjectValue returns a Value holding o. A nil o yields an object-kinded
// value with an absent handle.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Value{kind: KindObject}
	}
	return Value{kind: KindObject, handle: o}
}

// StringValue returns a Value holding s.
func StringValue(s *String) Value {
	if s == nil {
		return Value{kind: KindString}
	}
	return Value{kind: KindString, handle: s}
}

// ArrayValue returns a Value holding a.
func ArrayValue(a *Array) Value {
	if a == nil {
		return Value{kind: KindArray}
	}
	return Value{kind: KindArray, handle: a}
}

// FunctionValue returns a Value holding f.
func FunctionValue(f *Function) Value {
	if f == nil {
		return Value{kind: KindFunction}
	}
	return Value{kind: KindFunction, handle: f}
}

// DateValue returns a Value holding d.
func DateValue(d *Date) Value {
	if d == nil {
		return Value{kind: KindDate}
	}
	return Value{kind: KindDate, handle: d}
}

// Kind reports the variant this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.num != 0
}

// Int32 returns the signed 32-bit payload, or 0 for other kinds.
func (v Value) Int32() int32 {
	if v.kind != KindInt32 {
		return 0
	}
	return int32(v.num)
}

// UInt32 returns the unsigned 32-bit payload, or 0 for other kinds.
func (v Value) UInt32() uint32 {
	if v.kind != KindUInt32 {
		return 0
	}
	return uint32(v.num)
}

// UInt64 returns the unsigned 64-bit payload, or 0 for other kinds.
func (v Value) UInt64() uint64 {
	if v.kind != KindUInt64 {
		return 0
	}
	return v.num
}

// Double returns the double payload, or 0 for other kinds.
func (v Value) Double() float64 {
	if v.kind != KindDouble {
		return 0
	}
	return math.Float64frombits(v.num)
}

// Handle returns the value's handle. It is nil for non-handle kinds and for
// handle kinds whose reference is absent.
func (v Value) Handle() Handle {
	return v.handle
}

// AsObject returns the base object handle, or nil if the value is not an
// object.
func (v Value) AsObject() *Object {
	o, _ := v.handle.(*Object)
	return o
}

// AsString returns the string handle, or nil if the value is not a string.
func (v Value) AsString() *String {
	s, _ := v.handle.(*String)
	return s
}

// AsArray returns the array handle, or nil if the value is not an array.
func (v Value) AsArray() *Array {
	a, _ := v.handle.(*Array)
	return a
}

// AsFunction returns the function handle, or nil if the value is not a
// function.
func (v Value) AsFunction() *Function {
	f, _ := v.handle.(*Function)
	return f
}

// AsDate returns the date handle, or nil if the value is not a date.
func (v Value) AsDate() *Date {
	d, _ := v.handle.(*Date)
	return d
}

// String renders the value as text. Null renders as "null", booleans as
// "true" or "false", numbers in their decimal forms, and handle kinds via
// the object's own ToString, or "null" when the handle is absent.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case KindInt32:
		return strconv.FormatInt(int64(int32(v.num)), 10)
	case KindUInt32:
		return strconv.FormatUint(v.num, 10)
	case KindUInt64:
		return strconv.FormatUint(v.num, 10)
	case KindDouble:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	default:
		if v.handle == nil {
			return "null"
		}
		return v.handle.ToString()
	}
}

// IsNumber reports whether the value holds any of the numeric kinds.
func IsNumber(v Value) bool {
	switch v.kind {
	case KindInt32, KindUInt32, KindUInt64, KindDouble:
		return true
	}
	return false
}

// ToNumber coerces the value to a double. Null is 0, booleans are 0 or 1,
// numeric kinds widen to double, and handle kinds are NaN.
func ToNumber(v Value) float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.num != 0 {
			return 1
		}
		return 0
	case KindInt32:
		return float64(int32(v.num))
	case KindUInt32:
		return float64(uint32(v.num))
	case KindUInt64:
		return float64(v.num)
	case KindDouble:
		return math.Float64frombits(v.num)
	default:
		return math.NaN()
	}
}

// ToBoolean coerces the value to a boolean. Null is false, numbers are true
// when nonzero (and, for doubles, not NaN), strings are true when non-empty,
// and other handle kinds are true when the handle is present.
func ToBoolean(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.num != 0
	case KindInt32, KindUInt32, KindUInt64:
		return v.num != 0
	case KindDouble:
		f := math.Float64frombits(v.num)
		return f != 0 && !math.IsNaN(f)
	case KindString:
		s, _ := v.handle.(*String)
		return s != nil && !s.Empty()
	default:
		return v.handle != nil
	}
}

// asInt extracts an integer argument of any of the three integer widths.
// Other kinds report false. Built-in methods use this to interpret index and
// size arguments.
func asInt(v Value) (int, bool) {
	switch v.kind {
	case KindInt32:
		return int(int32(v.num)), true
	case KindUInt32:
		return int(uint32(v.num)), true
	case KindUInt64:
		return int(v.num), true
	}
	return 0, false
}
