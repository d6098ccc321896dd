// Package battery exposes a uniform, platform-independent view of the
// host's battery devices: enumerate batteries, read their instantaneous
// state, and derive health and time estimates from the raw readings.
//
//	manager, err := battery.NewManager()
//	if err != nil {
//		// the OS battery subsystem is unavailable
//	}
//	batteries, err := manager.Batteries()
//	if err != nil {
//		// enumeration could not start
//	}
//	for {
//		bat, err := batteries.Next()
//		if err == battery.Done {
//			break
//		}
//		if err != nil {
//			continue // this device failed; the rest are unaffected
//		}
//		fmt.Println(bat.State(), bat.StateOfCharge().Percent())
//	}
package battery

import "time"

// Battery is the platform-erased view of one battery: the raw snapshot
// fields plus derived metrics.
type Battery struct {
	device     Device
	thresholds Thresholds
}

// Energy is the amount of energy currently stored in the battery.
func (b *Battery) Energy() Energy {
	return b.device.Energy()
}

// EnergyFull is the battery's current full capacity.
func (b *Battery) EnergyFull() Energy {
	return b.device.EnergyFull()
}

// EnergyFullDesign is the battery's designed full capacity.
func (b *Battery) EnergyFullDesign() Energy {
	return b.device.EnergyFullDesign()
}

// EnergyRate is the current energy flow rate.
func (b *Battery) EnergyRate() Power {
	return b.device.EnergyRate()
}

// Voltage is the battery terminal voltage.
func (b *Battery) Voltage() Voltage {
	return b.device.Voltage()
}

// State is the charging state at snapshot time.
func (b *Battery) State() State {
	return b.device.State()
}

// Technology is the battery chemistry.
func (b *Battery) Technology() Technology {
	return b.device.Technology()
}

// Temperature reports the battery temperature, when available.
func (b *Battery) Temperature() (Temperature, bool) {
	return b.device.Temperature()
}

// Vendor reports the battery manufacturer, when available.
func (b *Battery) Vendor() (string, bool) {
	return b.device.Vendor()
}

// Model reports the battery model name, when available.
func (b *Battery) Model() (string, bool) {
	return b.device.Model()
}

// SerialNumber reports the battery serial number, when available.
func (b *Battery) SerialNumber() (string, bool) {
	return b.device.SerialNumber()
}

// CycleCount reports the charge cycle count, when available.
func (b *Battery) CycleCount() (uint32, bool) {
	return b.device.CycleCount()
}

// StateOfHealth is the battery's full capacity relative to its designed
// capacity, in [0.0, 1.0].
func (b *Battery) StateOfHealth() Ratio {
	return StateOfHealth(b.device)
}

// StateOfCharge is the stored energy relative to the battery's full
// capacity, in [0.0, 1.0].
func (b *Battery) StateOfCharge() Ratio {
	return StateOfCharge(b.device)
}

// TimeToFull estimates how long until the battery is fully charged. The
// second return is false when no meaningful estimate exists.
func (b *Battery) TimeToFull() (time.Duration, bool) {
	return TimeToFull(b.device, b.thresholds)
}

// TimeToEmpty estimates how long until the battery is drained. The second
// return is false when no meaningful estimate exists.
func (b *Battery) TimeToEmpty() (time.Duration, bool) {
	return TimeToEmpty(b.device, b.thresholds)
}

// Refresh re-reads this battery's values from the OS. On failure the
// previously read values remain visible.
func (b *Battery) Refresh() error {
	return b.device.Refresh()
}
