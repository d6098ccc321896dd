package battery

import (
	"errors"
	"time"
)

// Done is returned by Next when an enumeration has been exhausted.
// Enumerations are not restartable; call Manager.Batteries again to
// re-enumerate from the OS.
var Done = errors.New("battery: no more batteries")

// SystemManager is the entry point every OS backend must provide. It
// represents "the system's battery-reporting subsystem is available" and
// exists only to be constructed and to produce device iterators.
type SystemManager interface {
	// Devices starts a fresh enumeration of the batteries currently
	// visible to the OS. Each call produces an independent sequence.
	Devices() (DeviceIterator, error)
}

// DeviceIterator is a stateful cursor over the batteries visible at
// enumeration start. The sequence is lazy and finite. A step yields a
// fully-populated Device snapshot or a per-device error; a per-device
// error does not invalidate the remaining sequence.
//
// Implementations must keep a reference to the SystemManager they were
// spawned from, even if they never use it, so the manager stays reachable
// for as long as any of its iterators is.
type DeviceIterator interface {
	// Next returns the next device snapshot. It returns Done when the
	// sequence is exhausted.
	Next() (Device, error)
}

// Device is an immutable snapshot of one battery's raw readings, taken at
// enumeration time. All I/O happens while the iterator step constructs the
// snapshot; the accessors below are pure reads with no failure path.
type Device interface {
	// Energy is the amount of energy currently stored in the battery.
	Energy() Energy

	// EnergyFull is the amount of energy the battery holds when fully
	// charged, in its current (possibly degraded) condition.
	EnergyFull() Energy

	// EnergyFullDesign is the amount of energy the battery was designed
	// to hold when fully charged.
	EnergyFullDesign() Energy

	// EnergyRate is the rate at which energy is being drained from or
	// fed into the battery.
	EnergyRate() Power

	// Voltage is the battery terminal voltage.
	Voltage() Voltage

	// State is the charging state at snapshot time.
	State() State

	// Technology is the battery chemistry.
	Technology() Technology

	// Temperature reports the battery temperature, when available.
	Temperature() (Temperature, bool)

	// Vendor reports the battery manufacturer, when available.
	Vendor() (string, bool)

	// Model reports the battery model name, when available.
	Model() (string, bool)

	// SerialNumber reports the battery serial number, when available.
	SerialNumber() (string, bool)

	// CycleCount reports the charge cycle count, when available.
	CycleCount() (uint32, bool)

	// Refresh re-queries the OS for this device's current values. It
	// fails when the device has disappeared or the read fails; the
	// previously stored values are left intact in that case.
	Refresh() error
}

// TimeToFullProvider is implemented by devices whose hardware reports an
// instantaneous time-to-full directly. The reported value is returned as-is,
// without the noise ceiling applied to the derived calculation.
type TimeToFullProvider interface {
	TimeToFull() (time.Duration, bool)
}

// TimeToEmptyProvider is the time-to-empty counterpart of
// TimeToFullProvider.
type TimeToEmptyProvider interface {
	TimeToEmpty() (time.Duration, bool)
}
