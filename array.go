package propbag

import (
	"strconv"
	"strings"

	"github.com/zephyrtronium/contains"
)

// An Array wraps an ordered, resizable sequence of values. Every index in
// [0, Len()) is mirrored in the property table as an accessor property named
// by the index's decimal string form, reading and writing the backing
// element; the mirror is restored after every mutating operation, and no
// property for an out-of-range index persists.
type Array struct {
	Object
	elems []Value

	// mirrored is the number of leading indices with mirror descriptors,
	// used to remove stale entries when the array shrinks.
	mirrored int
}

// NewArray creates an Array of the given size with every element null.
func NewArray(size int) *Array {
	if size < 0 {
		size = 0
	}
	return newArray(make([]Value, size))
}

// NewArrayOf creates an Array holding the given values.
func NewArrayOf(values ...Value) *Array {
	elems := make([]Value, len(values))
	copy(elems, values)
	return newArray(elems)
}

func newArray(elems []Value) *Array {
	a := &Array{elems: elems}
	a.init(a)
	a.DefineProperty("length", PropertyDescriptor{
		Getter: func() Value { return UInt32Value(uint32(len(a.elems))) },
		Setter: func(v Value) {
			if n, ok := asInt(v); ok && n >= 0 {
				a.SetLen(n)
			}
		},
		Writable: true,
	})
	a.syncIndexes()
	return a
}

// Kind returns KindArray.
func (a *Array) Kind() Kind {
	return KindArray
}

// syncIndexes restores the index mirror: every index in [0, len) gets an
// accessor descriptor over the backing element, and descriptors for indices
// past the end are removed.
func (a *Array) syncIndexes() {
	n := len(a.elems)
	for i := 0; i < n; i++ {
		i := i
		a.DefineProperty(strconv.Itoa(i), AccessorDescriptor(
			func() Value {
				if i < len(a.elems) {
					return a.elems[i]
				}
				return Null
			},
			func(v Value) {
				if i < len(a.elems) {
					a.elems[i] = v
				}
			},
		))
	}
	for i := n; i < a.mirrored; i++ {
		delete(a.table, strconv.Itoa(i))
	}
	a.mirrored = n
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// Empty reports whether the array has no elements.
func (a *Array) Empty() bool {
	return len(a.elems) == 0
}

// Clear removes all elements.
func (a *Array) Clear() {
	a.elems = a.elems[:0]
	a.syncIndexes()
}

// At returns the element at index i, or Null if i is out of range.
func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.elems) {
		return Null
	}
	return a.elems[i]
}

// Front returns the first element, or Null if the array is empty.
func (a *Array) Front() Value {
	return a.At(0)
}

// Back returns the last element, or Null if the array is empty.
func (a *Array) Back() Value {
	return a.At(len(a.elems) - 1)
}

// Elements returns the backing sequence. The slice aliases the array's
// storage; callers must not grow or shrink it directly.
func (a *Array) Elements() []Value {
	return a.elems
}

// SetElement stores v at index i, growing the array with nulls to make i
// valid. Negative indices are ignored.
func (a *Array) SetElement(i int, v Value) {
	if i < 0 {
		return
	}
	if i >= len(a.elems) {
		a.elems = append(a.elems, make([]Value, i+1-len(a.elems))...)
	}
	a.elems[i] = v
	a.syncIndexes()
}

// SetLen resizes the backing sequence: truncation drops trailing elements
// and growth appends nulls. Negative sizes are ignored.
func (a *Array) SetLen(n int) {
	if n < 0 {
		return
	}
	if n <= len(a.elems) {
		a.elems = a.elems[:n]
	} else {
		a.elems = append(a.elems, make([]Value, n-len(a.elems))...)
	}
	a.syncIndexes()
}

// Push appends the given values in order and returns the new size.
func (a *Array) Push(values ...Value) int {
	a.elems = append(a.elems, values...)
	a.syncIndexes()
	return len(a.elems)
}

// Pop removes and returns the last element, or Null if the array is empty.
func (a *Array) Pop() Value {
	if len(a.elems) == 0 {
		return Null
	}
	v := a.elems[len(a.elems)-1]
	a.elems = a.elems[:len(a.elems)-1]
	a.syncIndexes()
	return v
}

// Shift removes and returns the first element, or Null if the array is
// empty.
func (a *Array) Shift() Value {
	if len(a.elems) == 0 {
		return Null
	}
	v := a.elems[0]
	copy(a.elems, a.elems[1:])
	a.elems = a.elems[:len(a.elems)-1]
	a.syncIndexes()
	return v
}

// Unshift inserts the given values at the front, preserving their order, and
// returns the new size.
func (a *Array) Unshift(values ...Value) int {
	a.elems = append(append(make([]Value, 0, len(values)+len(a.elems)), values...), a.elems...)
	a.syncIndexes()
	return len(a.elems)
}

// Splice deletes deleteCount elements starting at start, inserts items in
// their place, and returns a new Array holding exactly the deleted elements.
// A negative start is an offset from the end, floored at 0; start is then
// clamped to the current size, and deleteCount to [0, size-start].
func (a *Array) Splice(start, deleteCount int, items ...Value) *Array {
	size := len(a.elems)
	if start < 0 {
		start += size
		if start < 0 {
			start = 0
		}
	}
	if start > size {
		start = size
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > size-start {
		deleteCount = size - start
	}
	deleted := make([]Value, deleteCount)
	copy(deleted, a.elems[start:start+deleteCount])
	rest := make([]Value, 0, size-deleteCount+len(items))
	rest = append(rest, a.elems[:start]...)
	rest = append(rest, items...)
	rest = append(rest, a.elems[start+deleteCount:]...)
	a.elems = rest
	a.syncIndexes()
	return newArray(deleted)
}

// Slice returns a new Array copying the half-open span [start, end).
// Negative bounds are offsets from the end, floored at 0; both bounds are
// then clamped to [0, size]. The result is empty when start >= end.
func (a *Array) Slice(start, end int) *Array {
	size := len(a.elems)
	if start < 0 {
		start += size
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end += size
		if end < 0 {
			end = 0
		}
	}
	if start > size {
		start = size
	}
	if end > size {
		end = size
	}
	if start >= end {
		return NewArray(0)
	}
	return NewArrayOf(a.elems[start:end]...)
}

// ToString renders the elements joined with "," with no trailing separator.
// Null elements render as "null" rather than being skipped. An array
// encountered a second time within one rendering produces the empty string,
// so self-referential arrays do not recurse forever.
func (a *Array) ToString() string {
	seen := contains.Set{}
	seen.Add(a.UniqueID())
	return a.render(&seen)
}

func (a *Array) render(seen *contains.Set) string {
	b := strings.Builder{}
	for i, v := range a.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		inner := v.AsArray()
		if inner == nil {
			b.WriteString(v.String())
			continue
		}
		if seen.Add(inner.UniqueID()) {
			b.WriteString(inner.render(seen))
		}
	}
	return b.String()
}

// resolveBuiltin synthesizes the array methods, then delegates to the base.
// Each mutator restores the index mirror before returning.
func (a *Array) resolveBuiltin(name string) (Value, bool) {
	switch name {
	case "push":
		fn := NewFunction("push", func(args []Value) Value {
			return UInt32Value(uint32(a.Push(args...)))
		})
		return FunctionValue(fn), true
	case "pop":
		fn := NewFunction("pop", func([]Value) Value {
			return a.Pop()
		})
		return FunctionValue(fn), true
	case "shift":
		fn := NewFunction("shift", func([]Value) Value {
			return a.Shift()
		})
		return FunctionValue(fn), true
	case "unshift":
		fn := NewFunction("unshift", func(args []Value) Value {
			return UInt32Value(uint32(a.Unshift(args...)))
		})
		return FunctionValue(fn), true
	case "splice":
		fn := NewFunction("splice", func(args []Value) Value {
			if len(args) == 0 {
				return ArrayValue(NewArray(0))
			}
			start := 0
			if n, ok := asInt(args[0]); ok {
				start = n
			}
			deleteCount := len(a.elems)
			if len(args) > 1 {
				if n, ok := asInt(args[1]); ok {
					deleteCount = n
				}
			}
			var items []Value
			if len(args) > 2 {
				items = args[2:]
			}
			return ArrayValue(a.Splice(start, deleteCount, items...))
		})
		return FunctionValue(fn), true
	case "slice":
		fn := NewFunction("slice", func(args []Value) Value {
			start, end := 0, len(a.elems)
			if len(args) > 0 {
				if n, ok := asInt(args[0]); ok {
					start = n
				}
			}
			if len(args) > 1 {
				if n, ok := asInt(args[1]); ok {
					end = n
				}
			}
			return ArrayValue(a.Slice(start, end))
		})
		return FunctionValue(fn), true
	}
	return a.Object.resolveBuiltin(name)
}
