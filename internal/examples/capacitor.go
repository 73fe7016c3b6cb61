package examples

import (
	"math"

	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
)

type volts = quantity.Quantity[si.Voltage, si.Volt, float64]

// timeConstant returns τ = R·C
func timeConstant(
	r quantity.Quantity[si.Resistance, si.Kiloohm, float64],
	c quantity.Quantity[si.Capacitance, si.Microfarad, float64],
) (seconds, error) {
	rc, err := quantity.Mul(quantity.Cast[si.Ohm, float64](r), quantity.Cast[si.Farad, float64](c))
	if err != nil {
		return seconds{}, err
	}
	return quantity.In[si.Time, si.Second](rc)
}

// discharge returns V(t) = V0·e^(-t/τ)
func discharge(v0 volts, t, tau seconds) volts {
	return v0.Mul(math.Exp(-quantity.Quo(t, tau)))
}

// displayVoltage formats v in the largest voltage unit not exceeding it
func (r *Runner) displayVoltage(v volts) string {
	switch {
	case quantity.GreaterEqual(v, si.VoltsF(1)):
		return r.p.Q(v)
	case quantity.GreaterEqual(v, si.MillivoltsF(1)):
		return r.p.Q(quantity.Cast[si.Millivolt, float64](v))
	case quantity.GreaterEqual(v, si.MicrovoltsF(1)):
		return r.p.Q(quantity.Cast[si.Microvolt, float64](v))
	case quantity.GreaterEqual(v, si.NanovoltsF(1)):
		return r.p.Q(quantity.Cast[si.Nanovolt, float64](v))
	default:
		return r.p.Q(quantity.Cast[si.Picovolt, float64](v))
	}
}

// Capacitor prints the discharge curve of an RC circuit
func (r *Runner) Capacitor() error {
	cfg := r.cfg.Capacitor

	tau, err := timeConstant(si.KiloohmsF(cfg.ResistanceKOhm), si.MicrofaradsF(cfg.CapacitanceUF))
	if err != nil {
		return err
	}
	v0 := si.VoltsF(cfg.Voltage)
	r.logger.Debug("capacitor time constant", mdwlog.Fields{"tau": tau, "v0": v0})

	step := si.FromDuration(cfg.Step.Duration)
	end := si.FromDuration(cfg.End.Duration)
	for t := si.FromDuration(0); quantity.LessEqual(t, end); t.AddAssign(step) {
		vt := discharge(v0, quantity.Cast[si.Second, float64](t), tau)
		r.p.Printf("at %s voltage is %s\n", r.p.Q(quantity.Cast[si.Millisecond, float64](t)), r.displayVoltage(vt))
	}
	return nil
}
