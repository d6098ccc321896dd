package telemetry

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Snapshot is one recorded battery observation
type Snapshot struct {
	Timestamp time.Time
	Battery   BatteryMetrics
	Derived   DerivedMetrics
}

// BatteryMetrics carries the raw readings of one battery
type BatteryMetrics struct {
	Index            int
	Vendor           string
	Model            string
	State            string
	Energy           float64 // watt-hours
	EnergyFull       float64
	EnergyFullDesign float64
	EnergyRate       float64 // watts
	Voltage          float64 // volts
	Temperature      float64 // degrees Celsius
	HasTemperature   bool
	CycleCount       int64 // -1 when unknown
}

// DerivedMetrics carries the metrics computed from the raw readings.
// Time estimates are in seconds, 0 when unknown.
type DerivedMetrics struct {
	StateOfCharge float64
	StateOfHealth float64
	TimeToFull    float64
	TimeToEmpty   float64
}
