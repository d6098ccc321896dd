package battery

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/zonotope/battery/internal/errors"
)

const sysfsRoot = "/sys/class/power_supply"

// sysfsManager reports batteries through the Linux power_supply sysfs
// class. The root directory is injectable so tests can point it at a
// fixture tree.
type sysfsManager struct {
	root string
}

func newSysfsManager(root string) (*sysfsManager, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.New().Wrap(errors.ErrInitFailed, err)
	}

	return &sysfsManager{root: root}, nil
}

func (m *sysfsManager) Devices() (DeviceIterator, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrEnumeration, err)
	}

	// Mains, USB and UPS supplies share the power_supply class; only
	// entries of type "Battery" are enumerated.
	var names []string
	for _, entry := range entries {
		kind, err := readString(filepath.Join(m.root, entry.Name()), "type")
		if err != nil || kind != "Battery" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return &sysfsIterator{manager: m, names: names}, nil
}

// sysfsIterator keeps its manager reachable for as long as the iterator
// itself is, per the capability contract.
type sysfsIterator struct {
	manager *sysfsManager
	names   []string
	pos     int
}

func (it *sysfsIterator) Next() (Device, error) {
	if it.pos >= len(it.names) {
		return nil, Done
	}

	name := it.names[it.pos]
	it.pos++

	device := &sysfsDevice{
		name: name,
		dir:  filepath.Join(it.manager.root, name),
	}
	if err := device.Refresh(); err != nil {
		return nil, err
	}

	return device, nil
}

// sysfsReading is one complete read of a battery directory. Refresh fills
// a fresh reading and swaps it in wholesale, so a failed refresh leaves
// the previous values visible.
type sysfsReading struct {
	energy           Energy
	energyFull       Energy
	energyFullDesign Energy
	rate             Power
	voltage          Voltage
	state            State
	technology       Technology
	temperature      Temperature
	hasTemperature   bool
	vendor           string
	model            string
	serial           string
	cycles           uint32
	hasCycles        bool
}

type sysfsDevice struct {
	name string
	dir  string
	sysfsReading
}

func (d *sysfsDevice) Refresh() error {
	errFactory := errors.New()

	if _, err := os.Stat(d.dir); err != nil {
		if os.IsNotExist(err) {
			return errFactory.WithData(errors.ErrDeviceGone, d.name)
		}

		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}

	var r sysfsReading

	voltage, err := readMicro(d.dir, "voltage_now")
	if err != nil {
		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}
	r.voltage = Volts(voltage)

	// Drivers report either energy_* in µWh or charge_* in µAh. Charge
	// values are converted through the design voltage, matching upower.
	designVoltage := voltage
	for _, attr := range []string{"voltage_min_design", "voltage_max_design"} {
		if v, err := readMicro(d.dir, attr); err == nil {
			designVoltage = v
			break
		}
	}

	r.energy, err = readEnergy(d.dir, "energy_now", "charge_now", designVoltage)
	if err != nil {
		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}

	r.energyFull, err = readEnergy(d.dir, "energy_full", "charge_full", designVoltage)
	if err != nil {
		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}

	r.energyFullDesign, err = readEnergy(d.dir, "energy_full_design", "charge_full_design", designVoltage)
	if err != nil {
		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}

	if power, err := readMicro(d.dir, "power_now"); err == nil {
		r.rate = Watts(power)
	} else if current, err := readMicro(d.dir, "current_now"); err == nil {
		r.rate = Watts(current * voltage)
	}

	status, err := readString(d.dir, "status")
	if err != nil {
		return errFactory.Wrap(errors.ErrDeviceRead, err)
	}
	r.state = ParseState(status)

	if tech, err := readString(d.dir, "technology"); err == nil {
		r.technology = ParseTechnology(tech)
	}

	// temp is reported in tenths of a degree Celsius
	if tenths, err := readFloat(d.dir, "temp"); err == nil {
		r.temperature = Celsius(tenths / 10)
		r.hasTemperature = true
	}

	if cycles, err := readFloat(d.dir, "cycle_count"); err == nil && cycles >= 0 {
		r.cycles = uint32(cycles)
		r.hasCycles = true
	}

	r.vendor, _ = readString(d.dir, "manufacturer")
	r.model, _ = readString(d.dir, "model_name")
	r.serial, _ = readString(d.dir, "serial_number")

	d.sysfsReading = r

	return nil
}

func (d *sysfsDevice) Energy() Energy           { return d.energy }
func (d *sysfsDevice) EnergyFull() Energy       { return d.energyFull }
func (d *sysfsDevice) EnergyFullDesign() Energy { return d.energyFullDesign }
func (d *sysfsDevice) EnergyRate() Power        { return d.rate }
func (d *sysfsDevice) Voltage() Voltage         { return d.voltage }
func (d *sysfsDevice) State() State             { return d.state }
func (d *sysfsDevice) Technology() Technology   { return d.technology }

func (d *sysfsDevice) Temperature() (Temperature, bool) {
	return d.temperature, d.hasTemperature
}

func (d *sysfsDevice) Vendor() (string, bool) {
	return d.vendor, d.vendor != ""
}

func (d *sysfsDevice) Model() (string, bool) {
	return d.model, d.model != ""
}

func (d *sysfsDevice) SerialNumber() (string, bool) {
	return d.serial, d.serial != ""
}

func (d *sysfsDevice) CycleCount() (uint32, bool) {
	return d.cycles, d.hasCycles
}

func readString(dir, file string) (string, error) {
	bytes, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(bytes)), nil
}

func readFloat(dir, file string) (float64, error) {
	str, err := readString(dir, file)
	if err != nil {
		return 0, err
	}

	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrMalformedValue, err)
	}

	return num, nil
}

// readMicro reads a micro-unit attribute (µWh, µW, µV, µAh) as its base unit.
func readMicro(dir, file string) (float64, error) {
	val, err := readFloat(dir, file)
	if err != nil {
		return 0, err
	}

	return val / 1e6, nil
}

// readEnergy reads an energy attribute, falling back from the µWh file to
// the µAh file converted through the design voltage.
func readEnergy(dir, energyFile, chargeFile string, designVoltage float64) (Energy, error) {
	if wh, err := readMicro(dir, energyFile); err == nil {
		return WattHours(wh), nil
	}

	ah, err := readMicro(dir, chargeFile)
	if err != nil {
		return 0, err
	}

	return WattHours(ah * designVoltage), nil
}
