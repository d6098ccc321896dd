package battery

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonotope/battery/internal/errors"
)

// fakeBackend scripts a SystemManager. Every Devices call produces an
// independent cursor over the same step list.
type fakeBackend struct {
	steps      []fakeStep
	devicesErr error
	iterations int
}

type fakeStep struct {
	device Device
	err    error
}

func (b *fakeBackend) Devices() (DeviceIterator, error) {
	if b.devicesErr != nil {
		return nil, b.devicesErr
	}

	b.iterations++
	return &fakeIterator{manager: b, steps: b.steps}, nil
}

type fakeIterator struct {
	manager *fakeBackend
	steps   []fakeStep
	pos     int
}

func (it *fakeIterator) Next() (Device, error) {
	if it.pos >= len(it.steps) {
		return nil, Done
	}

	step := it.steps[it.pos]
	it.pos++
	if step.err != nil {
		return nil, step.err
	}

	return step.device, nil
}

func collect(t *testing.T, batteries *Batteries) (found []*Battery, failures []error) {
	t.Helper()
	for {
		bat, err := batteries.Next()
		if err == Done {
			return found, failures
		}
		if err != nil {
			failures = append(failures, err)
			continue
		}
		found = append(found, bat)
	}
}

func TestBatteriesEnumeration(t *testing.T) {
	backend := &fakeBackend{steps: []fakeStep{
		{device: &fakeDevice{state: Discharging, energy: 20, energyFull: 50, rate: 2}},
		{device: &fakeDevice{state: Full, energy: 50, energyFull: 50}},
	}}
	m := NewManagerWith(backend)

	batteries, err := m.Batteries()
	require.NoError(t, err)

	found, failures := collect(t, batteries)
	require.Len(t, found, 2)
	assert.Empty(t, failures)

	tte, known := found[0].TimeToEmpty()
	require.True(t, known)
	assert.Equal(t, 10*time.Hour, tte)
	assert.Equal(t, Full, found[1].State())
}

func TestBatteriesIndependentSequences(t *testing.T) {
	backend := &fakeBackend{steps: []fakeStep{
		{device: &fakeDevice{state: Full, energy: 50, energyFull: 50}},
	}}
	m := NewManagerWith(backend)

	first, err := m.Batteries()
	require.NoError(t, err)
	second, err := m.Batteries()
	require.NoError(t, err)

	// Exhaust the first sequence completely.
	found, _ := collect(t, first)
	require.Len(t, found, 1)
	_, err = first.Next()
	assert.Equal(t, Done, err, "exhausted sequences stay exhausted")

	// The second sequence is unaffected.
	found, _ = collect(t, second)
	assert.Len(t, found, 1)
	assert.Equal(t, 2, backend.iterations)
}

func TestPerDeviceErrorDoesNotAbortSequence(t *testing.T) {
	readErr := errors.New().New(errors.ErrDeviceRead)
	backend := &fakeBackend{steps: []fakeStep{
		{err: readErr},
		{device: &fakeDevice{state: Full, energy: 50, energyFull: 50}},
	}}
	m := NewManagerWith(backend)

	batteries, err := m.Batteries()
	require.NoError(t, err)

	found, failures := collect(t, batteries)
	require.Len(t, failures, 1)
	assert.Equal(t, errors.ErrDeviceRead, errors.CodeOf(failures[0]))
	assert.Len(t, found, 1)
}

func TestEnumerationStartFailurePropagates(t *testing.T) {
	enumErr := errors.New().New(errors.ErrEnumeration)
	m := NewManagerWith(&fakeBackend{devicesErr: enumErr})

	_, err := m.Batteries()
	require.Error(t, err)
	assert.Equal(t, errors.ErrEnumeration, errors.CodeOf(err))
}

func TestBackendOutlivesManagerHandle(t *testing.T) {
	backend := &fakeBackend{steps: []fakeStep{
		{device: &fakeDevice{state: Full, energy: 50, energyFull: 50}},
	}}
	m := NewManagerWith(backend)

	batteries, err := m.Batteries()
	require.NoError(t, err)

	// Drop the manager handle; the iterator still holds the backend.
	m = nil
	runtime.GC()

	found, failures := collect(t, batteries)
	assert.Len(t, found, 1)
	assert.Empty(t, failures)
	_ = m
}

func TestUnsupportedPlatform(t *testing.T) {
	_, err := newSystemManager("plan9")
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnsupportedPlatform, errors.CodeOf(err))
}

func TestBatteryDelegation(t *testing.T) {
	device := &fakeDevice{
		energy:           40,
		energyFull:       50,
		energyFullDesign: 60,
		rate:             5,
		voltage:          12.1,
		state:            Charging,
		technology:       LithiumIon,
		temperature:      31.5,
		hasTemperature:   true,
		vendor:           "ACME",
		model:            "PowerCell",
		serial:           "pc-0451",
		cycles:           118,
		hasCycles:        true,
	}
	backend := &fakeBackend{steps: []fakeStep{{device: device}}}
	m := NewManagerWith(backend)

	batteries, err := m.Batteries()
	require.NoError(t, err)
	bat, err := batteries.Next()
	require.NoError(t, err)

	assert.InDelta(t, 40, bat.Energy().WattHours(), 1e-9)
	assert.InDelta(t, 50, bat.EnergyFull().WattHours(), 1e-9)
	assert.InDelta(t, 60, bat.EnergyFullDesign().WattHours(), 1e-9)
	assert.InDelta(t, 5, bat.EnergyRate().Watts(), 1e-9)
	assert.InDelta(t, 12.1, bat.Voltage().Volts(), 1e-9)
	assert.Equal(t, Charging, bat.State())
	assert.Equal(t, LithiumIon, bat.Technology())

	temp, ok := bat.Temperature()
	require.True(t, ok)
	assert.InDelta(t, 31.5, temp.Celsius(), 1e-9)

	vendor, ok := bat.Vendor()
	require.True(t, ok)
	assert.Equal(t, "ACME", vendor)

	model, ok := bat.Model()
	require.True(t, ok)
	assert.Equal(t, "PowerCell", model)

	serial, ok := bat.SerialNumber()
	require.True(t, ok)
	assert.Equal(t, "pc-0451", serial)

	cycles, ok := bat.CycleCount()
	require.True(t, ok)
	assert.Equal(t, uint32(118), cycles)

	assert.InDelta(t, 0.8, bat.StateOfCharge().Value(), 1e-9)
	assert.InDelta(t, 50.0/60.0, bat.StateOfHealth().Value(), 1e-9)

	ttf, known := bat.TimeToFull()
	require.True(t, known)
	assert.Equal(t, 2*time.Hour, ttf)

	require.NoError(t, bat.Refresh())
	assert.Equal(t, 1, device.refreshes)
}

func TestManagerThresholdOption(t *testing.T) {
	device := &fakeDevice{state: Charging, energy: 40, energyFull: 50, rate: 5}
	backend := &fakeBackend{steps: []fakeStep{{device: device}}}
	m := NewManagerWith(backend, WithThresholds(Thresholds{
		TimeToFullCeiling:  time.Hour,
		TimeToEmptyCeiling: time.Hour,
	}))

	batteries, err := m.Batteries()
	require.NoError(t, err)
	bat, err := batteries.Next()
	require.NoError(t, err)

	_, known := bat.TimeToFull()
	assert.False(t, known)
}
