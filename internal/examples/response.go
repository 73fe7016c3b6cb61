package examples

import (
	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
	"github.com/msto63/unitx/foundation/units/unit"
)

// Response walks through the ways a units library can present values:
// one unit per dimension, one type per unit, conversions across a unit
// family and the precision cost of converting very small values.
func (r *Runner) Response() error {
	r.simpleQuantities()
	r.typedUnits()
	if err := r.conversions(); err != nil {
		return err
	}
	return r.smallValues()
}

func (r *Runner) simpleQuantities() {
	r.p.Println("A physical quantities library can choose the simple")
	r.p.Println("option to provide output using a single type for each base unit:")
	r.p.Println()
	r.p.Println(r.p.Q(quantity.Cast[si.Metre, float64](si.KilometresF(1))))
	r.p.Println(r.p.Q(quantity.Cast[si.Metre, float64](si.MilesF(1))))
	r.p.Println(quantity.Cast[si.Second, int64](si.Seconds(1)))
	r.p.Println(quantity.Cast[si.Second, int64](si.Minutes(1)))
	r.p.Println(quantity.Cast[si.Second, int64](si.Hours(1)))
	r.p.Println()
}

func (r *Runner) typedUnits() {
	r.p.Println("A more flexible option is to provide separate types for each unit,")
	r.p.Println()
	r.p.Println(r.p.Q(si.KilometresF(1)))
	r.p.Println(r.p.Q(si.MilesF(1)))
	r.p.Println(si.Seconds(1))
	r.p.Println(si.Minutes(1))
	r.p.Println(si.Hours(1))
	r.p.Println()
}

// conversions expresses one metre in every other length unit of the
// catalog through the dynamic tier
func (r *Runner) conversions() error {
	r.p.Println("then a wide range of pre-defined units can be defined and converted,")
	r.p.Println("for consistency and repeatability across applications:")
	r.p.Println()

	one := si.MetresF(1).Value()
	r.p.Println(r.p.Q(one))
	for _, e := range si.ByKind("length") {
		if unit.Equal(e.Unit, one.Unit()) {
			continue
		}
		v, err := one.Cast(e.Unit)
		if err != nil {
			return err
		}
		r.p.Printf(" = %s\n", r.p.Q(v))
	}
	r.p.Println()
	return nil
}

// smallValues adds and multiplies nanometre values held as float32, once
// in nanometres and once in metres
func (r *Runner) smallValues() error {
	nm := unit.MustPrefixed(unit.Nano, si.Metre{}.Def())
	m := si.Metre{}.Def()

	r.p.Println("A distinct unit for each type is efficient and accurate")
	r.p.Println("when adding two values of the same very big")
	r.p.Println("or very small type:")
	r.p.Println()

	l1 := quantity.NewValue[float32](2, nm)
	l2 := quantity.NewValue[float32](3, nm)
	if err := r.sumAndProduct(l1, l2); err != nil {
		return err
	}

	r.p.Println("The single unit method must convert large")
	r.p.Println("or small values in other units to the base unit.")
	r.p.Println("This is both inefficient and inaccurate")
	r.p.Println()

	l1m, err := l1.Cast(m)
	if err != nil {
		return err
	}
	l2m, err := l2.Cast(m)
	if err != nil {
		return err
	}
	return r.sumAndProduct(l1m, l2m)
}

func (r *Runner) sumAndProduct(a, b quantity.Value[float32]) error {
	const prec = 9

	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	r.p.Printf("%s\n + %s\n   = %s\n\n", r.p.QP(prec, a), r.p.QP(prec, b), r.p.QP(prec, sum))

	product, err := a.Mul(b)
	if err != nil {
		return err
	}
	r.p.Printf("%s\n * %s\n   = %s\n\n", r.p.QP(prec, a), r.p.QP(prec, b), r.p.QP(prec, product))
	return nil
}
