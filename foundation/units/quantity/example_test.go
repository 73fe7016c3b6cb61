// File: example_test.go
// Title: Example Tests for Quantity Package Documentation
// Description: Executable examples for conversions, mixed-unit arithmetic
//              and dimension composition.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package quantity_test

import (
	"fmt"

	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
)

func ExampleConvert() {
	m, err := quantity.Convert[si.Metre, int64](si.Kilometres(3))
	fmt.Println(m, err)

	_, err = quantity.Convert[si.Kilometre, int64](si.Metres(1500))
	fmt.Println(err != nil)

	km := quantity.Cast[si.Kilometre, int64](si.Metres(1500))
	fmt.Println(km)
	// Output:
	// 3000 m <nil>
	// true
	// 1 km
}

func ExampleAdd() {
	sum := quantity.Add(si.Kilometres(2), si.Metres(300))
	fmt.Println(sum)
	// Output:
	// 2300 m
}

func ExampleDiv() {
	v, _ := quantity.Div(si.KilometresF(220), si.HoursF(2))
	speed, _ := quantity.In[si.Velocity, si.KilometrePerHour](v)
	fmt.Printf("%.1f\n", speed)
	// Output:
	// 110.0 km/h
}

func ExampleEqual() {
	fmt.Println(quantity.Equal(si.Metres(1000), si.Kilometres(1)))
	fmt.Println(quantity.Less(si.Metres(999), si.Kilometres(1)))
	// Output:
	// true
	// true
}
