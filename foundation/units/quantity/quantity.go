// File: quantity.go
// Title: Quantity Value Type
// Description: Implements Quantity, a numeric count tagged at the type
//              level with a dimension and a unit, together with its
//              construction rules, accessors, unary operators,
//              increment/decrement and compound assignment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package quantity

import (
	"cmp"

	"github.com/msto63/unitx/foundation/core/errors"
	"github.com/msto63/unitx/foundation/units/dimension"
	"github.com/msto63/unitx/foundation/units/unit"
)

// Dim is implemented by zero-size dimension tag types
type Dim interface {
	Dimension() dimension.Dimension
}

// Unit is implemented by zero-size unit tag types. Dim ties the unit to
// its dimension tag so that a unit of another dimension does not satisfy
// Unit[D].
type Unit[D Dim] interface {
	Dim() D
	Def() unit.Unit
}

// Quantity is count many U of dimension D, stored as R. The zero value is
// a count of zero.
type Quantity[D Dim, U Unit[D], R Number] struct {
	count R
}

// New creates a quantity from a count of the same representation
func New[D Dim, U Unit[D], R Number](count R) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: count}
}

// From creates a quantity from a count of another representation. A
// floating-point-like count is only accepted if R is floating-point-like
// as well.
func From[D Dim, U Unit[D], R Number, R2 Number](count R2) (Quantity[D, U, R], error) {
	if !IsFloatingPoint[R]() && IsFloatingPoint[R2]() {
		return Quantity[D, U, R]{}, errors.QuantityNarrowing("quantity.From", typeName[R2](), typeName[R]())
	}
	return Quantity[D, U, R]{count: R(count)}, nil
}

// Validate checks that the unit tag's definition measures the dimension of
// the dimension tag
func Validate[D Dim, U Unit[D]]() error {
	var d D
	var u U
	def := u.Def()
	if !def.Dimension().Equal(d.Dimension()) {
		return errors.UnitDimensionMismatch("quantity.Validate", def.Dimension(), d.Dimension())
	}
	if !def.Ratio().IsPositive() {
		return errors.UnitInvalidRatio(def.Name(), def.Ratio())
	}
	return nil
}

// Zero returns the quantity with the representation's zero count
func Zero[D Dim, U Unit[D], R Number]() Quantity[D, U, R] {
	return Quantity[D, U, R]{count: ZeroOf[R]()}
}

// Min returns the quantity with the representation's lowest count
func Min[D Dim, U Unit[D], R Number]() Quantity[D, U, R] {
	return Quantity[D, U, R]{count: MinOf[R]()}
}

// Max returns the quantity with the representation's largest count
func Max[D Dim, U Unit[D], R Number]() Quantity[D, U, R] {
	return Quantity[D, U, R]{count: MaxOf[R]()}
}

// Count returns the stored count
func (q Quantity[D, U, R]) Count() R {
	return q.count
}

// Unit returns the unit definition of U
func (q Quantity[D, U, R]) Unit() unit.Unit {
	var u U
	return u.Def()
}

// Dimension returns the dimension of D
func (q Quantity[D, U, R]) Dimension() dimension.Dimension {
	var d D
	return d.Dimension()
}

// Value returns the dynamic view of q
func (q Quantity[D, U, R]) Value() Value[R] {
	return Value[R]{count: q.count, unit: q.Unit()}
}

// Pos returns q unchanged
func (q Quantity[D, U, R]) Pos() Quantity[D, U, R] {
	return q
}

// Neg returns -q
func (q Quantity[D, U, R]) Neg() Quantity[D, U, R] {
	return Quantity[D, U, R]{count: -q.count}
}

// Inc adds one to the count and returns the new value
func (q *Quantity[D, U, R]) Inc() Quantity[D, U, R] {
	q.count++
	return *q
}

// PostInc adds one to the count and returns the previous value
func (q *Quantity[D, U, R]) PostInc() Quantity[D, U, R] {
	old := *q
	q.count++
	return old
}

// Dec subtracts one from the count and returns the new value
func (q *Quantity[D, U, R]) Dec() Quantity[D, U, R] {
	q.count--
	return *q
}

// PostDec subtracts one from the count and returns the previous value
func (q *Quantity[D, U, R]) PostDec() Quantity[D, U, R] {
	old := *q
	q.count--
	return old
}

// AddAssign adds a quantity of exactly the same type. Quantities of other
// units go through Add.
func (q *Quantity[D, U, R]) AddAssign(o Quantity[D, U, R]) Quantity[D, U, R] {
	q.count += o.count
	return *q
}

// SubAssign subtracts a quantity of exactly the same type
func (q *Quantity[D, U, R]) SubAssign(o Quantity[D, U, R]) Quantity[D, U, R] {
	q.count -= o.count
	return *q
}

// MulAssign scales the count by r
func (q *Quantity[D, U, R]) MulAssign(r R) Quantity[D, U, R] {
	q.count *= r
	return *q
}

// DivAssign divides the count by r
func (q *Quantity[D, U, R]) DivAssign(r R) Quantity[D, U, R] {
	q.count /= r
	return *q
}

// RemAssign replaces the count by its remainder modulo r
func (q *Quantity[D, U, R]) RemAssign(r R) Quantity[D, U, R] {
	q.count = rem(q.count, r)
	return *q
}

// RemAssignQ replaces the count by its remainder modulo the count of a
// quantity of the same type
func (q *Quantity[D, U, R]) RemAssignQ(o Quantity[D, U, R]) Quantity[D, U, R] {
	q.count = rem(q.count, o.count)
	return *q
}

// Add returns q+o for a quantity of the same type
func (q Quantity[D, U, R]) Add(o Quantity[D, U, R]) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: q.count + o.count}
}

// Sub returns q-o for a quantity of the same type
func (q Quantity[D, U, R]) Sub(o Quantity[D, U, R]) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: q.count - o.count}
}

// Mul returns q scaled by r
func (q Quantity[D, U, R]) Mul(r R) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: q.count * r}
}

// Div returns q divided by r
func (q Quantity[D, U, R]) Div(r R) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: q.count / r}
}

// Rem returns q with its count reduced modulo r
func (q Quantity[D, U, R]) Rem(r R) Quantity[D, U, R] {
	return Quantity[D, U, R]{count: rem(q.count, r)}
}

// Equal reports whether q and o have the same count
func (q Quantity[D, U, R]) Equal(o Quantity[D, U, R]) bool {
	return q.count == o.count
}

// Less reports whether q < o
func (q Quantity[D, U, R]) Less(o Quantity[D, U, R]) bool {
	return q.count < o.count
}

// Compare returns -1, 0 or +1 as q is less than, equal to or greater
// than o
func (q Quantity[D, U, R]) Compare(o Quantity[D, U, R]) int {
	return cmp.Compare(q.count, o.count)
}

// String returns the count followed by the unit symbol, e.g. "2 km"
func (q Quantity[D, U, R]) String() string {
	return formatString(q.count, q.Unit())
}
