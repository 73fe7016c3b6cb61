package examples

import (
	"github.com/msto63/unitx/foundation/core/errors"
	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
	"github.com/msto63/unitx/pkg/core/config"
)

type (
	metres  = quantity.Quantity[si.Length, si.Metre, float64]
	seconds = quantity.Quantity[si.Time, si.Second, float64]
	kgs     = quantity.Quantity[si.Mass, si.Kilogram, float64]
	cubic   = quantity.Quantity[si.Volume, si.CubicMetre, float64]
	newtons = quantity.Quantity[si.Force, si.Newton, float64]
	kgPerM3 = quantity.Quantity[si.Density, si.KilogramPerCubicMetre, float64]
)

// box is an open container being filled with a liquid of known density
type box struct {
	length, width, height metres
	density               kgPerM3
}

func newBox(cfg config.BoxConfig) (box, error) {
	b := box{
		length:  quantity.Cast[si.Metre, float64](si.MillimetresF(cfg.LengthMm)),
		width:   quantity.Cast[si.Metre, float64](si.MillimetresF(cfg.WidthMm)),
		height:  quantity.Cast[si.Metre, float64](si.MillimetresF(cfg.HeightMm)),
		density: si.KilogramsPerCubicMetreF(config.AirDensity),
	}
	if err := b.setDensity(si.KilogramsPerCubicMetreF(cfg.Density)); err != nil {
		return box{}, err
	}
	return b, nil
}

func (b *box) setDensity(d kgPerM3) error {
	if !quantity.Greater(d, si.KilogramsPerCubicMetreF(config.AirDensity)) {
		return errors.InvalidInput("examples", "box.setDensity", d, "denser than air")
	}
	b.density = d
	return nil
}

func (b box) volume() (cubic, error) {
	area, err := quantity.Mul(b.length, b.width)
	if err != nil {
		return cubic{}, err
	}
	v, err := area.Mul(b.height.Value())
	if err != nil {
		return cubic{}, err
	}
	return quantity.In[si.Volume, si.CubicMetre](v)
}

// filledWeight is the weight of the box filled to the brim
func (b box) filledWeight() (newtons, error) {
	vol, err := b.volume()
	if err != nil {
		return newtons{}, err
	}
	m, err := quantity.Mul(b.density, vol)
	if err != nil {
		return newtons{}, err
	}
	mass, err := quantity.In[si.Mass, si.Kilogram](m)
	if err != nil {
		return newtons{}, err
	}
	w, err := quantity.Mul(mass, si.StandardGravity())
	if err != nil {
		return newtons{}, err
	}
	return quantity.In[si.Force, si.Newton](w)
}

// fillLevel is the height of the contents for a measured mass
func (b box) fillLevel(measured kgs) (metres, error) {
	full, err := b.filledWeight()
	if err != nil {
		return metres{}, err
	}
	weight, err := quantity.Mul(measured, si.StandardGravity())
	if err != nil {
		return metres{}, err
	}
	v, err := b.height.Value().Mul(weight)
	if err != nil {
		return metres{}, err
	}
	if v, err = v.Div(full.Value()); err != nil {
		return metres{}, err
	}
	return quantity.In[si.Length, si.Metre](v)
}

// spareCapacity is the volume still empty for a measured mass
func (b box) spareCapacity(measured kgs) (cubic, error) {
	level, err := b.fillLevel(measured)
	if err != nil {
		return cubic{}, err
	}
	area, err := quantity.Mul(b.height.Sub(level), b.width)
	if err != nil {
		return cubic{}, err
	}
	v, err := area.Mul(b.length.Value())
	if err != nil {
		return cubic{}, err
	}
	return quantity.In[si.Volume, si.CubicMetre](v)
}

// Box reports the fill state of a box from one mass measurement
func (r *Runner) Box() error {
	cfg := r.cfg.Box
	b, err := newBox(cfg)
	if err != nil {
		return err
	}

	fillTime := quantity.Cast[si.Second, float64](si.FromDuration(cfg.FillTime.Duration))
	measured := si.KilogramsF(cfg.FillMassKg)

	level, err := b.fillLevel(measured)
	if err != nil {
		return err
	}
	spare, err := b.spareCapacity(measured)
	if err != nil {
		return err
	}
	flow, err := quantity.Div(measured, fillTime)
	if err != nil {
		return err
	}
	rise, err := quantity.Div(level, fillTime)
	if err != nil {
		return err
	}

	percent := quantity.Quo(level, b.height) * 100
	r.logger.Debug("box filled", mdwlog.Fields{"level": level, "percent": percent})

	r.p.Printf("fill height at %s = %s (%s%% full)\n", r.p.Q(fillTime), r.p.Q(level), r.p.F(percent))
	r.p.Printf("spare capacity at %s = %s\n", r.p.Q(fillTime), r.p.Q(spare))
	r.p.Printf("input flow rate after %s = %s\n", r.p.Q(fillTime), r.p.Q(flow))
	r.p.Printf("float rise rate = %s\n", r.p.Q(rise))

	if level.Count() == 0 {
		r.p.Println("box full E.T.A. at current flow rate = never")
		return nil
	}
	left := fillTime.Mul(quantity.Quo(b.height, level) - 1)
	r.p.Printf("box full E.T.A. at current flow rate = %s\n", r.p.Q(left))
	return nil
}
