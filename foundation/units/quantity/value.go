// File: value.go
// Title: Dynamic Quantity Values
// Description: Implements Value, a count carrying its unit and dimension
//              at run time. Values are the results of operations whose
//              unit has to be computed: mixed-unit sums, products and
//              quotients across dimensions, and reciprocals. In and As bind
//              a Value back to a static Quantity type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"github.com/msto63/unitx/foundation/core/errors"
	"github.com/msto63/unitx/foundation/units/dimension"
	"github.com/msto63/unitx/foundation/units/unit"
)

// Value is a count of a unit known at run time. The zero value is a
// dimensionless zero.
type Value[R Number] struct {
	count R
	unit  unit.Unit
}

// NewValue creates a value of count many u
func NewValue[R Number](count R, u unit.Unit) Value[R] {
	return Value[R]{count: count, unit: u}
}

// Count returns the stored count
func (v Value[R]) Count() R { return v.count }

// Unit returns the unit the count is expressed in
func (v Value[R]) Unit() unit.Unit { return v.unit }

// Dimension returns the dimension of the unit
func (v Value[R]) Dimension() dimension.Dimension { return v.unit.Dimension() }

// Add returns v+o in the common unit of both operands
func (v Value[R]) Add(o Value[R]) (Value[R], error) {
	if err := sameDimension("quantity.Value.Add", v, o); err != nil {
		return Value[R]{}, err
	}
	a, b, u := align(v.count, v.unit, o.count, o.unit)
	return Value[R]{count: a + b, unit: u}, nil
}

// Sub returns v-o in the common unit of both operands
func (v Value[R]) Sub(o Value[R]) (Value[R], error) {
	if err := sameDimension("quantity.Value.Sub", v, o); err != nil {
		return Value[R]{}, err
	}
	a, b, u := align(v.count, v.unit, o.count, o.unit)
	return Value[R]{count: a - b, unit: u}, nil
}

// Rem returns v modulo o, both aligned to their common unit first
func (v Value[R]) Rem(o Value[R]) (Value[R], error) {
	if err := sameDimension("quantity.Value.Rem", v, o); err != nil {
		return Value[R]{}, err
	}
	a, b, u := align(v.count, v.unit, o.count, o.unit)
	return Value[R]{count: rem(a, b), unit: u}, nil
}

// Mul returns v·o with the product dimension and unit. For integral
// representations the product unit's ratio must be an integer.
func (v Value[R]) Mul(o Value[R]) (Value[R], error) {
	u := unit.Multiply(v.unit, o.unit)
	if err := integralScale[R]("quantity.Mul", u); err != nil {
		return Value[R]{}, err
	}
	return Value[R]{count: v.count * o.count, unit: u}, nil
}

// Div returns v/o with the quotient dimension and unit. For integral
// representations the quotient unit's ratio must be an integer.
func (v Value[R]) Div(o Value[R]) (Value[R], error) {
	u := unit.Divide(v.unit, o.unit)
	if err := integralScale[R]("quantity.Div", u); err != nil {
		return Value[R]{}, err
	}
	return Value[R]{count: v.count / o.count, unit: u}, nil
}

// Scale returns v with its count multiplied by r
func (v Value[R]) Scale(r R) Value[R] {
	return Value[R]{count: v.count * r, unit: v.unit}
}

// Compare compares v and o in their common unit. It returns 0 if either
// count is NaN.
func (v Value[R]) Compare(o Value[R]) (int, error) {
	if err := sameDimension("quantity.Value.Compare", v, o); err != nil {
		return 0, err
	}
	c, _ := compareAligned(v.count, v.unit, o.count, o.unit)
	return c, nil
}

// Equal reports whether v and o have the same dimension and denote the
// same amount
func (v Value[R]) Equal(o Value[R]) bool {
	if !v.Dimension().Equal(o.Dimension()) {
		return false
	}
	c, ordered := compareAligned(v.count, v.unit, o.count, o.unit)
	return ordered && c == 0
}

// Convert expresses v in unit u if that cannot lose precision
func (v Value[R]) Convert(u unit.Unit) (Value[R], error) {
	if !v.Dimension().Equal(u.Dimension()) {
		return Value[R]{}, errors.QuantityDimensionMismatch("quantity.Value.Convert", u.Dimension(), v.Dimension())
	}
	cr := unit.ConversionRatio(v.unit, u)
	if !lossless[R, R](cr) {
		return Value[R]{}, errors.QuantityLossyConversion("quantity.Value.Convert", v.unit, u, cr)
	}
	return Value[R]{count: scale[R, R](v.count, cr), unit: u}, nil
}

// Cast expresses v in unit u, truncating integral counts if necessary
func (v Value[R]) Cast(u unit.Unit) (Value[R], error) {
	if !v.Dimension().Equal(u.Dimension()) {
		return Value[R]{}, errors.QuantityDimensionMismatch("quantity.Value.Cast", u.Dimension(), v.Dimension())
	}
	return Value[R]{count: scale[R, R](v.count, unit.ConversionRatio(v.unit, u)), unit: u}, nil
}

// String returns the count followed by the unit, e.g. "2 m/s"
func (v Value[R]) String() string {
	return formatString(v.count, v.unit)
}

// In binds v to the static type Quantity[D, U, R]. The dimension must
// match and the unit conversion must be lossless.
//
//	speed, err := quantity.In[Velocity, MetrePerSecond](v)
func In[D Dim, U Unit[D], R Number](v Value[R]) (Quantity[D, U, R], error) {
	var d D
	var u U
	if !v.Dimension().Equal(d.Dimension()) {
		return Quantity[D, U, R]{}, errors.QuantityDimensionMismatch("quantity.In", d.Dimension(), v.Dimension())
	}
	out, err := v.Convert(u.Def())
	if err != nil {
		return Quantity[D, U, R]{}, err
	}
	return Quantity[D, U, R]{count: out.count}, nil
}

// As binds v to the static type Quantity[D, U, R], casting the count to
// U. Only the dimension is checked.
func As[D Dim, U Unit[D], R Number](v Value[R]) (Quantity[D, U, R], error) {
	var d D
	var u U
	if !v.Dimension().Equal(d.Dimension()) {
		return Quantity[D, U, R]{}, errors.QuantityDimensionMismatch("quantity.As", d.Dimension(), v.Dimension())
	}
	out, err := v.Cast(u.Def())
	if err != nil {
		return Quantity[D, U, R]{}, err
	}
	return Quantity[D, U, R]{count: out.count}, nil
}

func sameDimension[R Number](op string, a, b Value[R]) error {
	if !a.Dimension().Equal(b.Dimension()) {
		return errors.QuantityDimensionMismatch(op, a.Dimension(), b.Dimension())
	}
	return nil
}

func integralScale[R Number](op string, u unit.Unit) error {
	if !IsFloatingPoint[R]() && !u.Ratio().IsInteger() {
		return errors.QuantityFractionalScale(op, u.Ratio())
	}
	return nil
}
