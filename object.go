package propbag

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObjectID increments the object counter and returns its value as a
// unique ID for a new object.
func nextObjectID() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// An Object is the base of every concrete variant. It owns the property
// table and implements the generic property protocol. Property resolution is
// two-stage: the stored table first, then the variant's built-in synthesis
// hook for the fixed set of members not worth storing eagerly.
//
// Always obtain objects from NewObject or a type-specific constructor.
// Object identity is table identity: two objects are distinct even with
// identical contents.
type Object struct {
	table map[string]PropertyDescriptor

	// self is the most-derived variant embedding this object. Stage-2
	// resolution dispatches through it so that each variant's hook runs
	// even when the lookup starts from the base protocol.
	self Handle

	id uintptr
}

// NewObject creates a new generic object with an empty property table.
func NewObject() *Object {
	o := &Object{}
	o.init(o)
	return o
}

// init prepares the embedded base of a concrete variant. Constructors must
// call it with the outermost value before defining any properties.
func (o *Object) init(self Handle) {
	o.table = map[string]PropertyDescriptor{}
	o.self = self
	o.id = nextObjectID()
}

// Base returns o.
func (o *Object) Base() *Object {
	return o
}

// Kind returns KindObject.
func (o *Object) Kind() Kind {
	return KindObject
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// DefineProperty inserts or replaces the slot for name unconditionally and
// reports true. Existing descriptors are replaced even when they are not
// configurable; callers that need a property protected should avoid handing
// out the object rather than rely on redefinition being rejected.
func (o *Object) DefineProperty(name string, desc PropertyDescriptor) bool {
	o.table[name] = desc
	return true
}

// DeleteProperty removes the slot for name if it exists and is configurable.
// It reports false, leaving the table unchanged, otherwise.
func (o *Object) DeleteProperty(name string) bool {
	desc, ok := o.table[name]
	if !ok || !desc.Configurable {
		return false
	}
	delete(o.table, name)
	return true
}

// HasProperty reports whether the stored table holds name. Synthesized
// built-ins are not probed, so HasProperty("push") on an array is false even
// though GetProperty("push") succeeds.
func (o *Object) HasProperty(name string) bool {
	_, ok := o.table[name]
	return ok
}

// PropertyNames returns the names of all enumerable stored properties. The
// order is sorted so repeated calls on an unmutated table agree.
func (o *Object) PropertyNames() []string {
	names := make([]string, 0, len(o.table))
	for name, desc := range o.table {
		if desc.Enumerable {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GetProperty resolves name. If the table holds the name, the getter runs if
// present and the stored value is returned otherwise. On a table miss the
// variant's built-in synthesis hook runs; a name recognized by no level
// yields Null.
func (o *Object) GetProperty(name string) Value {
	if desc, ok := o.table[name]; ok {
		if desc.Getter != nil {
			return desc.Getter()
		}
		return desc.Value
	}
	if v, ok := o.self.resolveBuiltin(name); ok {
		return v
	}
	return Null
}

// SetProperty assigns v to name. A stored descriptor's setter runs if
// present; otherwise the stored value is overwritten when writable.
// Assigning to an unknown name defines a new writable, enumerable,
// configurable property. SetProperty reports false, changing nothing, for a
// known non-writable property without a setter.
func (o *Object) SetProperty(name string, v Value) bool {
	if desc, ok := o.table[name]; ok {
		if desc.Setter != nil {
			desc.Setter(v)
			return true
		}
		if desc.Writable {
			desc.Value = v
			o.table[name] = desc
			return true
		}
		return false
	}
	return o.DefineProperty(name, implicitDescriptor(v))
}

// At is read-only indexing sugar for GetProperty.
func (o *Object) At(name string) Value {
	return o.GetProperty(name)
}

// AtIndex is read-only indexing sugar with the index converted to its
// decimal string form.
func (o *Object) AtIndex(i int) Value {
	return o.GetProperty(strconv.Itoa(i))
}

// SetAtIndex assigns through the property protocol with the index converted
// to its decimal string form.
func (o *Object) SetAtIndex(i int, v Value) bool {
	return o.SetProperty(strconv.Itoa(i), v)
}

// ToString renders the generic object marker. Every concrete variant
// overrides it.
func (o *Object) ToString() string {
	return "[object Object]"
}

// resolveBuiltin synthesizes the members every variant has. The toString
// property wraps the variant's ToString method as a fresh bound function; it
// must not be produced by re-running property resolution on the same name,
// which would recurse forever.
func (o *Object) resolveBuiltin(name string) (Value, bool) {
	if name == "toString" {
		self := o.self
		fn := NewFunction("toString", func([]Value) Value {
			return StringValue(NewString(self.ToString()))
		})
		return FunctionValue(fn), true
	}
	return Null, false
}
