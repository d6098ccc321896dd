package battery

import "time"

// Noise ceilings for the derived time estimates. A derived time-to-full
// above ten hours, or a time-to-empty above ten days, is a division-by-
// small-rate artifact rather than a meaningful estimate and is discarded.
// The values are heuristics inherited from upstream battery tooling.
const (
	DefaultTimeToFullCeiling  = 10 * time.Hour
	DefaultTimeToEmptyCeiling = 10 * 24 * time.Hour
)

// Thresholds carries the noise ceilings applied to derived time estimates.
type Thresholds struct {
	TimeToFullCeiling  time.Duration
	TimeToEmptyCeiling time.Duration
}

// DefaultThresholds returns the stock noise ceilings.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TimeToFullCeiling:  DefaultTimeToFullCeiling,
		TimeToEmptyCeiling: DefaultTimeToEmptyCeiling,
	}
}

// StateOfHealth is the ratio of the battery's current full capacity to its
// designed full capacity, clamped into [0.0, 1.0].
func StateOfHealth(d Device) Ratio {
	return Ratio(d.EnergyFull().WattHours() / d.EnergyFullDesign().WattHours()).Bounded()
}

// StateOfCharge is the ratio of the currently stored energy to the
// battery's current full capacity, clamped into [0.0, 1.0].
func StateOfCharge(d Device) Ratio {
	return Ratio(d.Energy().WattHours() / d.EnergyFull().WattHours()).Bounded()
}

// TimeToFull estimates how long until the battery is fully charged. The
// estimate is defined only while charging with a non-zero energy rate.
// Devices reporting an instantaneous value from hardware bypass the
// derived calculation and its ceiling.
func TimeToFull(d Device, th Thresholds) (time.Duration, bool) {
	if p, ok := d.(TimeToFullProvider); ok {
		return p.TimeToFull()
	}

	// The rate can be zero while charging, e.g. right after plugging the
	// charger in. No estimate in that case, to avoid division by zero.
	rate := d.EnergyRate()
	if d.State() != Charging || rate == 0 {
		return 0, false
	}

	// Some drivers report energy above energy_full while still charging.
	// The data is inconsistent, so no estimate rather than a negative one.
	left := d.EnergyFull().WattHours() - d.Energy().WattHours()
	if left < 0 {
		return 0, false
	}

	return boundedDuration(left, rate.Watts(), th.TimeToFullCeiling)
}

// TimeToEmpty estimates how long until the battery is drained. The
// estimate is defined only while discharging with a non-zero energy rate.
func TimeToEmpty(d Device, th Thresholds) (time.Duration, bool) {
	if p, ok := d.(TimeToEmptyProvider); ok {
		return p.TimeToEmpty()
	}

	rate := d.EnergyRate()
	if d.State() != Discharging || rate == 0 {
		return 0, false
	}

	return boundedDuration(d.Energy().WattHours(), rate.Watts(), th.TimeToEmptyCeiling)
}

// boundedDuration converts watt-hours over watts into a duration, dropping
// estimates above the ceiling. The comparison happens in floating-point
// hours: a near-zero rate yields more nanoseconds than a Duration can hold,
// and converting first would wrap the very estimates the ceiling discards.
func boundedDuration(wattHours, watts float64, ceiling time.Duration) (time.Duration, bool) {
	hours := wattHours / watts
	if hours > ceiling.Hours() {
		return 0, false
	}

	return time.Duration(hours * float64(time.Hour)), true
}
