package main

/*
#include <pthread.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/zonotope/battery/internal/capi"
)

// callingThread keys the last-error slot. Exported functions run locked to
// the pthread that called them, so the pthread id scopes errors per
// foreign thread.
func callingThread() capi.ThreadID {
	return capi.ThreadID(C.pthread_self())
}

// battery_manager_new creates a batteries manager. It returns the null
// handle when the platform backend cannot be initialized; check
// battery_last_error_message for details. The caller must release the
// handle with battery_manager_free.
//
//export battery_manager_new
func battery_manager_new() C.uintptr_t {
	return C.uintptr_t(capi.ManagerNew(callingThread()))
}

// battery_manager_iter creates an iterator over the manager's batteries.
// The manager handle must be valid and non-null. It returns the null
// handle when enumeration cannot start. The caller must release the
// handle with battery_iterator_free.
//
//export battery_manager_iter
func battery_manager_iter(manager C.uintptr_t) C.uintptr_t {
	if manager == 0 {
		panic("battery_manager_iter: null manager handle")
	}

	return C.uintptr_t(capi.ManagerIter(callingThread(), capi.Handle(manager)))
}

// battery_manager_free releases a manager handle. No-op for the null
// handle.
//
//export battery_manager_free
func battery_manager_free(manager C.uintptr_t) {
	capi.Free(capi.Handle(manager))
}

// battery_iterator_next yields the next battery, transferring ownership
// of the returned handle to the caller (release with battery_free). It
// returns the null handle at end of sequence, or on a per-device failure
// with a message recorded for the calling thread; the iterator stays
// usable after a failure.
//
//export battery_iterator_next
func battery_iterator_next(iterator C.uintptr_t) C.uintptr_t {
	if iterator == 0 {
		panic("battery_iterator_next: null iterator handle")
	}

	return C.uintptr_t(capi.IteratorNext(callingThread(), capi.Handle(iterator)))
}

// battery_iterator_free releases an iterator handle. No-op for the null
// handle.
//
//export battery_iterator_free
func battery_iterator_free(iterator C.uintptr_t) {
	capi.Free(capi.Handle(iterator))
}

// battery_free releases a battery handle. No-op for the null handle.
//
//export battery_free
func battery_free(handle C.uintptr_t) {
	capi.Free(capi.Handle(handle))
}

// battery_refresh re-reads the battery's values from the OS. It returns 1
// on success and 0 on failure, with the error recorded for the calling
// thread.
//
//export battery_refresh
func battery_refresh(handle C.uintptr_t) C.int {
	if capi.BatteryRefresh(callingThread(), capi.Handle(handle)) {
		return 1
	}

	return 0
}

// battery_get_energy returns the stored energy in watt-hours.
//
//export battery_get_energy
func battery_get_energy(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).Energy().WattHours())
}

// battery_get_energy_full returns the current full capacity in watt-hours.
//
//export battery_get_energy_full
func battery_get_energy_full(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).EnergyFull().WattHours())
}

// battery_get_energy_full_design returns the designed full capacity in
// watt-hours.
//
//export battery_get_energy_full_design
func battery_get_energy_full_design(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).EnergyFullDesign().WattHours())
}

// battery_get_energy_rate returns the energy flow rate in watts.
//
//export battery_get_energy_rate
func battery_get_energy_rate(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).EnergyRate().Watts())
}

// battery_get_voltage returns the terminal voltage in volts.
//
//export battery_get_voltage
func battery_get_voltage(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).Voltage().Volts())
}

// battery_get_state returns the charging state: 0 unknown, 1 charging,
// 2 discharging, 3 empty, 4 full.
//
//export battery_get_state
func battery_get_state(handle C.uintptr_t) C.uchar {
	return C.uchar(capi.BatteryValue(capi.Handle(handle)).State())
}

// battery_get_technology returns the battery chemistry as the Technology
// enumeration ordinal, 0 for unknown.
//
//export battery_get_technology
func battery_get_technology(handle C.uintptr_t) C.uchar {
	return C.uchar(capi.BatteryValue(capi.Handle(handle)).Technology())
}

// battery_get_state_of_health returns the health ratio in [0.0, 1.0].
//
//export battery_get_state_of_health
func battery_get_state_of_health(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).StateOfHealth().Value())
}

// battery_get_state_of_charge returns the charge ratio in [0.0, 1.0].
//
//export battery_get_state_of_charge
func battery_get_state_of_charge(handle C.uintptr_t) C.double {
	return C.double(capi.BatteryValue(capi.Handle(handle)).StateOfCharge().Value())
}

// battery_get_temperature writes the battery temperature in degrees
// Celsius into out and returns 1, or returns 0 when the temperature is
// unavailable.
//
//export battery_get_temperature
func battery_get_temperature(handle C.uintptr_t, out *C.double) C.int {
	temp, ok := capi.BatteryValue(capi.Handle(handle)).Temperature()
	if !ok {
		return 0
	}

	*out = C.double(temp.Celsius())
	return 1
}

// battery_get_cycle_count returns the charge cycle count, or -1 when
// unavailable.
//
//export battery_get_cycle_count
func battery_get_cycle_count(handle C.uintptr_t) C.longlong {
	cycles, ok := capi.BatteryValue(capi.Handle(handle)).CycleCount()
	if !ok {
		return -1
	}

	return C.longlong(cycles)
}

// battery_get_time_to_full returns the time-to-full estimate in seconds,
// or 0 when no meaningful estimate exists.
//
//export battery_get_time_to_full
func battery_get_time_to_full(handle C.uintptr_t) C.double {
	ttf, ok := capi.BatteryValue(capi.Handle(handle)).TimeToFull()
	if !ok {
		return 0
	}

	return C.double(ttf.Seconds())
}

// battery_get_time_to_empty returns the time-to-empty estimate in
// seconds, or 0 when no meaningful estimate exists.
//
//export battery_get_time_to_empty
func battery_get_time_to_empty(handle C.uintptr_t) C.double {
	tte, ok := capi.BatteryValue(capi.Handle(handle)).TimeToEmpty()
	if !ok {
		return 0
	}

	return C.double(tte.Seconds())
}

// battery_get_vendor returns the battery manufacturer as a C string, or
// NULL when unavailable. The caller must release it with
// battery_str_free.
//
//export battery_get_vendor
func battery_get_vendor(handle C.uintptr_t) *C.char {
	vendor, ok := capi.BatteryValue(capi.Handle(handle)).Vendor()
	if !ok {
		return nil
	}

	return C.CString(vendor)
}

// battery_get_model returns the battery model name as a C string, or
// NULL when unavailable. The caller must release it with
// battery_str_free.
//
//export battery_get_model
func battery_get_model(handle C.uintptr_t) *C.char {
	model, ok := capi.BatteryValue(capi.Handle(handle)).Model()
	if !ok {
		return nil
	}

	return C.CString(model)
}

// battery_get_serial_number returns the battery serial number as a C
// string, or NULL when unavailable. The caller must release it with
// battery_str_free.
//
//export battery_get_serial_number
func battery_get_serial_number(handle C.uintptr_t) *C.char {
	serial, ok := capi.BatteryValue(capi.Handle(handle)).SerialNumber()
	if !ok {
		return nil
	}

	return C.CString(serial)
}

// battery_last_error_message returns the calling thread's most recent
// error description, or an empty string when no call from this thread has
// failed. Reading does not clear the slot. The caller must release the
// string with battery_str_free.
//
//export battery_last_error_message
func battery_last_error_message() *C.char {
	return C.CString(capi.LastErrorMessage(callingThread()))
}

// battery_str_free releases a string returned by this library. No-op for
// NULL.
//
//export battery_str_free
func battery_str_free(str *C.char) {
	if str == nil {
		return
	}

	C.free(unsafe.Pointer(str))
}
