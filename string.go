package propbag

import "strings"

// A String wraps a text buffer. The buffer is immutable through the property
// protocol; it is replaced wholesale with SetText. Search and concatenation
// treat the text as an opaque byte sequence.
type String struct {
	Object
	value string
}

// NewString creates a String backed by text.
func NewString(text string) *String {
	s := &String{value: text}
	s.init(s)
	s.DefineProperty("length", PropertyDescriptor{
		Getter: func() Value { return UInt32Value(uint32(len(s.value))) },
	})
	return s
}

// Kind returns KindString.
func (s *String) Kind() Kind {
	return KindString
}

// Size returns the length of the backing text in bytes.
func (s *String) Size() int {
	return len(s.value)
}

// Empty reports whether the backing text is empty.
func (s *String) Empty() bool {
	return len(s.value) == 0
}

// Clear empties the backing text.
func (s *String) Clear() {
	s.value = ""
}

// At returns the byte at index i, or 0 if i is out of range.
func (s *String) At(i int) byte {
	if i < 0 || i >= len(s.value) {
		return 0
	}
	return s.value[i]
}

// Front returns the first byte, or 0 if the text is empty.
func (s *String) Front() byte {
	return s.At(0)
}

// Back returns the last byte, or 0 if the text is empty.
func (s *String) Back() byte {
	return s.At(len(s.value) - 1)
}

// Text returns the backing text.
func (s *String) Text() string {
	return s.value
}

// SetText replaces the backing text wholesale.
func (s *String) SetText(text string) {
	s.value = text
}

// ToString returns the backing text.
func (s *String) ToString() string {
	return s.value
}

// Concat returns a new String holding the backing text with the rendered
// form of each argument appended in order.
func (s *String) Concat(args ...Value) *String {
	b := strings.Builder{}
	b.WriteString(s.value)
	for _, arg := range args {
		b.WriteString(arg.String())
	}
	return NewString(b.String())
}

// IndexOf returns the byte offset of the first occurrence of the rendered
// needle, or -1 if there is none.
func (s *String) IndexOf(needle Value) int {
	return strings.Index(s.value, needle.String())
}

// LastIndexOf returns the byte offset of the last occurrence of the rendered
// needle, or -1 if there is none.
func (s *String) LastIndexOf(needle Value) int {
	return strings.LastIndex(s.value, needle.String())
}

// resolveBuiltin synthesizes the string methods, then delegates to the base.
// Each call constructs a fresh bound function.
func (s *String) resolveBuiltin(name string) (Value, bool) {
	switch name {
	case "concat":
		fn := NewFunction("concat", func(args []Value) Value {
			return StringValue(s.Concat(args...))
		})
		return FunctionValue(fn), true
	case "indexOf":
		fn := NewFunction("indexOf", func(args []Value) Value {
			if len(args) == 0 {
				return Int32Value(-1)
			}
			return Int32Value(int32(s.IndexOf(args[0])))
		})
		return FunctionValue(fn), true
	case "lastIndexOf":
		fn := NewFunction("lastIndexOf", func(args []Value) Value {
			if len(args) == 0 {
				return Int32Value(-1)
			}
			return Int32Value(int32(s.LastIndexOf(args[0])))
		})
		return FunctionValue(fn), true
	}
	return s.Object.resolveBuiltin(name)
}
