package battery

import "math"

// Physical quantities are small opaque value types so that backend math and
// derived metrics agree on units. Stored base units: watt-hours, watts,
// volts, degrees Celsius, and dimensionless fractions.

// Energy is an amount of energy stored in watt-hours.
type Energy float64

// WattHours creates an Energy from a value in watt-hours.
func WattHours(v float64) Energy {
	return Energy(v)
}

// WattHours returns the energy in watt-hours.
func (e Energy) WattHours() float64 {
	return float64(e)
}

// Joules returns the energy in joules.
func (e Energy) Joules() float64 {
	return float64(e) * 3600
}

// Power is an energy flow rate stored in watts.
type Power float64

// Watts creates a Power from a value in watts.
func Watts(v float64) Power {
	return Power(v)
}

// Watts returns the power in watts.
func (p Power) Watts() float64 {
	return float64(p)
}

// Voltage is an electric potential stored in volts.
type Voltage float64

// Volts creates a Voltage from a value in volts.
func Volts(v float64) Voltage {
	return Voltage(v)
}

// Volts returns the potential in volts.
func (v Voltage) Volts() float64 {
	return float64(v)
}

// Temperature is a thermodynamic temperature stored in degrees Celsius.
type Temperature float64

// Celsius creates a Temperature from a value in degrees Celsius.
func Celsius(v float64) Temperature {
	return Temperature(v)
}

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 {
	return float64(t)
}

// Kelvin returns the temperature in kelvins.
func (t Temperature) Kelvin() float64 {
	return float64(t) + 273.15
}

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 {
	return float64(t)*9/5 + 32
}

// Ratio is a dimensionless fraction.
type Ratio float64

// Value returns the ratio as a plain fraction.
func (r Ratio) Value() float64 {
	return float64(r)
}

// Percent returns the ratio scaled to percent.
func (r Ratio) Percent() float64 {
	return float64(r) * 100
}

// Bounded forces the ratio into the [0.0, 1.0] range. Raw sensor math can
// produce values outside it (calibration drift, division by zero); the
// overshoot is physically meaningless, so it is clamped to the boundary.
func (r Ratio) Bounded() Ratio {
	v := float64(r)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return r
	}
}
