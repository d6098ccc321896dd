package battery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice is a scripted Device snapshot. Energy values are in
// watt-hours, the rate in watts.
type fakeDevice struct {
	energy           float64
	energyFull       float64
	energyFullDesign float64
	rate             float64
	voltage          float64
	state            State
	technology       Technology
	temperature      float64
	hasTemperature   bool
	vendor           string
	model            string
	serial           string
	cycles           uint32
	hasCycles        bool
	refreshErr       error
	refreshes        int
}

func (d *fakeDevice) Energy() Energy           { return WattHours(d.energy) }
func (d *fakeDevice) EnergyFull() Energy       { return WattHours(d.energyFull) }
func (d *fakeDevice) EnergyFullDesign() Energy { return WattHours(d.energyFullDesign) }
func (d *fakeDevice) EnergyRate() Power        { return Watts(d.rate) }
func (d *fakeDevice) Voltage() Voltage         { return Volts(d.voltage) }
func (d *fakeDevice) State() State             { return d.state }
func (d *fakeDevice) Technology() Technology   { return d.technology }

func (d *fakeDevice) Temperature() (Temperature, bool) {
	return Celsius(d.temperature), d.hasTemperature
}

func (d *fakeDevice) Vendor() (string, bool)       { return d.vendor, d.vendor != "" }
func (d *fakeDevice) Model() (string, bool)        { return d.model, d.model != "" }
func (d *fakeDevice) SerialNumber() (string, bool) { return d.serial, d.serial != "" }
func (d *fakeDevice) CycleCount() (uint32, bool)   { return d.cycles, d.hasCycles }

func (d *fakeDevice) Refresh() error {
	d.refreshes++
	return d.refreshErr
}

// instantDevice additionally reports hardware instant time estimates.
type instantDevice struct {
	fakeDevice
	ttf time.Duration
	tte time.Duration
}

func (d *instantDevice) TimeToFull() (time.Duration, bool)  { return d.ttf, d.ttf != 0 }
func (d *instantDevice) TimeToEmpty() (time.Duration, bool) { return d.tte, d.tte != 0 }

func TestStateOfHealthBounded(t *testing.T) {
	tests := []struct {
		name   string
		full   float64
		design float64
		want   float64
	}{
		{"nominal", 45, 50, 0.9},
		{"calibration drift above one", 55, 50, 1.0},
		{"negative reading", -5, 50, 0.0},
		{"zero design capacity", 50, 0, 1.0},
		{"zero over zero", 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDevice{energyFull: tt.full, energyFullDesign: tt.design}
			soh := StateOfHealth(d).Value()
			assert.InDelta(t, tt.want, soh, 1e-9)
			assert.GreaterOrEqual(t, soh, 0.0)
			assert.LessOrEqual(t, soh, 1.0)
		})
	}
}

func TestStateOfChargeBounded(t *testing.T) {
	tests := []struct {
		name   string
		energy float64
		full   float64
		want   float64
	}{
		{"nominal", 40, 50, 0.8},
		{"energy above full", 60, 50, 1.0},
		{"negative energy", -1, 50, 0.0},
		{"zero full capacity", 10, 0, 1.0},
		{"zero over zero", 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDevice{energy: tt.energy, energyFull: tt.full}
			soc := StateOfCharge(d).Value()
			assert.InDelta(t, tt.want, soc, 1e-9)
			assert.GreaterOrEqual(t, soc, 0.0)
			assert.LessOrEqual(t, soc, 1.0)
		})
	}
}

func TestTimeToFull(t *testing.T) {
	tests := []struct {
		name   string
		device fakeDevice
		want   time.Duration
		known  bool
	}{
		{
			name:   "charging at steady rate",
			device: fakeDevice{state: Charging, energy: 40, energyFull: 50, rate: 5},
			want:   2 * time.Hour,
			known:  true,
		},
		{
			name:   "not charging",
			device: fakeDevice{state: Discharging, energy: 40, energyFull: 50, rate: 5},
		},
		{
			name:   "zero rate right after plug-in",
			device: fakeDevice{state: Charging, energy: 40, energyFull: 50, rate: 0},
		},
		{
			name:   "energy above reported full",
			device: fakeDevice{state: Charging, energy: 60, energyFull: 50, rate: 5},
		},
		{
			name:   "estimate above noise ceiling",
			device: fakeDevice{state: Charging, energy: 0, energyFull: 50, rate: 0.1},
		},
		{
			// Microwatt-scale rates drive the estimate past the range of a
			// nanosecond duration. The result must be unknown, never a
			// wrapped negative duration.
			name:   "microwatt rate overflows a nanosecond count",
			device: fakeDevice{state: Charging, energy: 0, energyFull: 50, rate: 1e-6},
		},
		{
			name:   "estimate exactly at ceiling",
			device: fakeDevice{state: Charging, energy: 0, energyFull: 50, rate: 5},
			want:   10 * time.Hour,
			known:  true,
		},
		{
			name:   "already full",
			device: fakeDevice{state: Charging, energy: 50, energyFull: 50, rate: 5},
			want:   0,
			known:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := TimeToFull(&tt.device, DefaultThresholds())
			require.Equal(t, tt.known, known)
			if known {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTimeToEmpty(t *testing.T) {
	tests := []struct {
		name   string
		device fakeDevice
		want   time.Duration
		known  bool
	}{
		{
			name:   "discharging at steady rate",
			device: fakeDevice{state: Discharging, energy: 20, rate: 2},
			want:   10 * time.Hour,
			known:  true,
		},
		{
			name:   "not discharging",
			device: fakeDevice{state: Charging, energy: 20, rate: 2},
		},
		{
			name:   "zero rate",
			device: fakeDevice{state: Discharging, energy: 20, rate: 0},
		},
		{
			name:   "estimate above noise ceiling",
			device: fakeDevice{state: Discharging, energy: 250, rate: 1},
		},
		{
			name:   "microwatt rate overflows a nanosecond count",
			device: fakeDevice{state: Discharging, energy: 50, rate: 1e-6},
		},
		{
			name:   "estimate exactly at ceiling",
			device: fakeDevice{state: Discharging, energy: 240, rate: 1},
			want:   240 * time.Hour,
			known:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := TimeToEmpty(&tt.device, DefaultThresholds())
			require.Equal(t, tt.known, known)
			if known {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInstantTimesBypassCeiling(t *testing.T) {
	// Hardware-reported instant values are returned as-is, even above the
	// ceilings guarding the derived calculation.
	d := &instantDevice{
		fakeDevice: fakeDevice{state: Charging, energy: 40, energyFull: 50, rate: 5},
		ttf:        14 * time.Hour,
		tte:        12 * 24 * time.Hour,
	}

	ttf, known := TimeToFull(d, DefaultThresholds())
	require.True(t, known)
	assert.Equal(t, 14*time.Hour, ttf)

	tte, known := TimeToEmpty(d, DefaultThresholds())
	require.True(t, known)
	assert.Equal(t, 12*24*time.Hour, tte)
}

func TestCustomThresholds(t *testing.T) {
	d := &fakeDevice{state: Charging, energy: 40, energyFull: 50, rate: 5}
	th := Thresholds{TimeToFullCeiling: time.Hour, TimeToEmptyCeiling: time.Hour}

	_, known := TimeToFull(d, th)
	assert.False(t, known, "2h estimate should exceed a 1h ceiling")
}
