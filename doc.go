/*
Package propbag implements a dynamic value model built on property bags.

Every structured value is an object owning a table of named properties.
A property is governed by a descriptor holding either a stored value or a
getter/setter pair, plus three independent flags: writable, enumerable, and
configurable. On top of the base object, the package provides string, array,
function, and date variants whose built-in members (concat, push, splice,
getTime, and the rest) are synthesized lazily on lookup rather than stored in
the table.

Values passed around the model are members of a closed tagged union: null,
boolean, three distinct integer widths, double, and handles to the five object
variants. The zero Value is null. Handle kinds are reference types; copying a
Value aliases the same underlying object.

The protocol has no errors and no exceptions. Operations that cannot proceed
report false or yield null and leave the object unchanged:

	o := propbag.NewObject()
	o.SetProperty("answer", propbag.Int32Value(42))
	v := o.GetProperty("answer") // Int32 42
	_ = o.GetProperty("missing") // Null

Arrays keep an index mirror: every index in [0, Len()) is also reachable as a
property named by its decimal string form, and the mirror is restored after
every mutating operation.
*/
package propbag
