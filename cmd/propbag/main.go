// Command propbag demonstrates the property bag value model: the property
// protocol on a plain object, the array index mirror, and the synthesized
// built-ins on each variant.
package main

import (
	"fmt"

	"propbag"
)

func main() {
	user := propbag.NewObject()
	user.SetProperty("name", propbag.StringValue(propbag.NewString("ada")))
	user.SetProperty("visits", propbag.Int32Value(3))
	user.DefineProperty("id", propbag.DataDescriptor(propbag.UInt64Value(7), false, false, false))
	fmt.Println("user:", user.ToString())
	for _, name := range user.PropertyNames() {
		fmt.Printf("  %s = %s\n", name, user.GetProperty(name))
	}
	fmt.Println("set id:", user.SetProperty("id", propbag.Int32Value(0)), "id still", user.GetProperty("id"))

	s := propbag.NewString("hello world")
	fmt.Println("length:", s.GetProperty("length"))
	needle := propbag.StringValue(propbag.NewString("world"))
	fmt.Println("indexOf:", propbag.Call(s.GetProperty("indexOf"), needle))

	a := propbag.NewArrayOf(
		propbag.Int32Value(10),
		propbag.Int32Value(20),
		propbag.Int32Value(30),
		propbag.Int32Value(40),
	)
	fmt.Println("array:", a.ToString())
	fmt.Println("a[2]:", a.GetProperty("2"))
	deleted := propbag.Call(a.GetProperty("splice"), propbag.Int32Value(1), propbag.Int32Value(2), propbag.Int32Value(99))
	fmt.Println("spliced out:", deleted, "leaving:", a.ToString())

	d := propbag.NewDate()
	fmt.Println("now:", d.ToString(), "ms:", propbag.Call(d.GetProperty("getTime")))
}
