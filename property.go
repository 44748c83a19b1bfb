package propbag

// A Getter produces the current value of an accessor property.
type Getter func() Value

// A Setter receives the value assigned to an accessor property.
type Setter func(Value)

// A PropertyDescriptor governs one property slot: either a stored value or a
// getter/setter pair, plus the three independent flags. When either accessor
// is present, the accessors are the read/write path and Value and Writable
// are not consulted on access.
type PropertyDescriptor struct {
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
	Getter       Getter
	Setter       Setter
}

// DataDescriptor returns a descriptor storing v directly with the given
// flags and no accessors.
func DataDescriptor(v Value, writable, enumerable, configurable bool) PropertyDescriptor {
	return PropertyDescriptor{
		Value:        v,
		Writable:     writable,
		Enumerable:   enumerable,
		Configurable: configurable,
	}
}

// AccessorDescriptor returns a read/write accessor descriptor with all flags
// set. Either accessor may be nil.
func AccessorDescriptor(get Getter, set Setter) PropertyDescriptor {
	return PropertyDescriptor{
		Getter:       get,
		Setter:       set,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	}
}

// ReadOnlyDescriptor returns an enumerable, configurable accessor descriptor
// with only a getter.
func ReadOnlyDescriptor(get Getter) PropertyDescriptor {
	return PropertyDescriptor{
		Getter:       get,
		Enumerable:   true,
		Configurable: true,
	}
}

// implicitDescriptor is the descriptor created when assignment defines a new
// property: writable, enumerable, and configurable, with no accessors.
func implicitDescriptor(v Value) PropertyDescriptor {
	return PropertyDescriptor{
		Value:        v,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	}
}
