package examples

import (
	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"github.com/msto63/unitx/foundation/units/quantity"
	"github.com/msto63/unitx/foundation/units/si"
)

// averageSpeed divides a distance by a time and binds the result to the
// velocity unit U
func averageSpeed[U quantity.Unit[si.Velocity], UL quantity.Unit[si.Length], UT quantity.Unit[si.Time]](
	d quantity.Quantity[si.Length, UL, float64],
	t quantity.Quantity[si.Time, UT, float64],
) (quantity.Quantity[si.Velocity, U, float64], error) {
	v, err := quantity.Div(d, t)
	if err != nil {
		return quantity.Quantity[si.Velocity, U, float64]{}, err
	}
	return quantity.In[si.Velocity, U](v)
}

// Hello computes the average speed of two trips and converts the second
// one to metres per second
func (r *Runner) Hello() error {
	cfg := r.cfg.Hello
	t := quantity.Cast[si.Hour, float64](si.FromDuration(cfg.Duration.Duration))

	d1 := si.KilometresF(cfg.DistanceKm)
	v1, err := averageSpeed[si.KilometrePerHour](d1, t)
	if err != nil {
		return err
	}

	d2 := si.MilesF(cfg.DistanceMi)
	v2, err := averageSpeed[si.MilePerHour](d2, t)
	if err != nil {
		return err
	}

	v3 := quantity.Cast[si.MetrePerSecond, float64](v2)
	v4 := quantity.CastRep[int64](v3)

	r.logger.Debug("average speeds computed", mdwlog.Fields{"v1": v1, "v2": v2})

	r.p.Printf("%s / %s = %s\n", r.p.Q(d1), r.p.Q(t), r.p.Q(v1))
	r.p.Printf("%s / %s = %s\n", r.p.Q(d2), r.p.Q(t), r.p.Q(v2))
	r.p.Printf("%s = %s\n", r.p.Q(v2), r.p.Q(v3))
	r.p.Printf("%s truncated = %v\n", r.p.Q(v3), v4)
	return nil
}
