package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zonotope/battery"
	"github.com/zonotope/battery/internal/config"
	"github.com/zonotope/battery/internal/logger"
	"github.com/zonotope/battery/internal/pid"
	"github.com/zonotope/battery/internal/telemetry"
)

var (
	cfg      *config.Config
	manager  *battery.Manager
	recorder telemetry.Collector
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	initLogger()
	logger.Debug().Msg("Config loaded")

	manager, err = battery.NewManager(battery.WithThresholds(battery.Thresholds{
		TimeToFullCeiling:  time.Duration(cfg.TimeToFullCeiling) * time.Hour,
		TimeToEmptyCeiling: time.Duration(cfg.TimeToEmptyCeiling) * time.Hour,
	}))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize battery manager")
	}
}

func initLogger() {
	logger.Init(false, false, logger.IsService())

	switch config.LogLevel(cfg.LogLevel) {
	case config.LogLevelDebug:
		logger.SetLogLevel(logger.DebugLevel)
	case config.LogLevelInfo:
		logger.SetLogLevel(logger.InfoLevel)
	case config.LogLevelWarning:
		logger.SetLogLevel(logger.WarnLevel)
	case config.LogLevelError:
		logger.SetLogLevel(logger.ErrorLevel)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if !cfg.Once {
		if err := pid.Write(); err != nil {
			logger.Fatal().Err(err).Msg("failed to write pid file")
		}
		defer pid.Remove()
	}

	if cfg.Telemetry {
		var err error
		recorder, err = telemetry.NewService(telemetry.Config{DBPath: cfg.TelemetryDB})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telemetry")
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close telemetry")
			}
		}()
	}

	if err := loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func loop(ctx context.Context) error {
	if err := report(ctx); err != nil {
		return err
	}
	if cfg.Once {
		return nil
	}

	ticker := time.NewTicker(time.Duration(cfg.Interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := report(ctx); err != nil {
				return err
			}
		}
	}
}

// report enumerates the batteries once, logging a status line per battery
// and recording telemetry when enabled. Unreadable batteries are skipped;
// the rest of the enumeration proceeds.
func report(ctx context.Context) error {
	batteries, err := manager.Batteries()
	if err != nil {
		return err
	}

	for index := 0; ; index++ {
		bat, err := batteries.Next()
		if err == battery.Done {
			return nil
		}
		if err != nil {
			logger.Warn().Err(err).Int("battery", index).Msg("skipping unreadable battery")
			continue
		}

		logBattery(index, bat)

		if recorder != nil {
			if err := recorder.Record(ctx, snapshotOf(index, bat)); err != nil {
				logger.Warn().Err(err).Int("battery", index).Msg("failed to record telemetry")
			}
		}
	}
}

func logBattery(index int, bat *battery.Battery) {
	event := logger.Info()
	event.Int("battery", index).
		Str("state", bat.State().String()).
		Float64("charge_pct", bat.StateOfCharge().Percent()).
		Float64("health_pct", bat.StateOfHealth().Percent()).
		Float64("rate_w", bat.EnergyRate().Watts()).
		Float64("voltage_v", bat.Voltage().Volts())

	if ttf, ok := bat.TimeToFull(); ok {
		event.Dur("time_to_full", ttf)
	}
	if tte, ok := bat.TimeToEmpty(); ok {
		event.Dur("time_to_empty", tte)
	}
	if temp, ok := bat.Temperature(); ok {
		event.Float64("temperature_c", temp.Celsius())
	}

	event.Msg("battery status")
}

func snapshotOf(index int, bat *battery.Battery) *telemetry.Snapshot {
	vendor, _ := bat.Vendor()
	model, _ := bat.Model()

	metrics := telemetry.BatteryMetrics{
		Index:            index,
		Vendor:           vendor,
		Model:            model,
		State:            bat.State().String(),
		Energy:           bat.Energy().WattHours(),
		EnergyFull:       bat.EnergyFull().WattHours(),
		EnergyFullDesign: bat.EnergyFullDesign().WattHours(),
		EnergyRate:       bat.EnergyRate().Watts(),
		Voltage:          bat.Voltage().Volts(),
		CycleCount:       -1,
	}
	if temp, ok := bat.Temperature(); ok {
		metrics.Temperature = temp.Celsius()
		metrics.HasTemperature = true
	}
	if cycles, ok := bat.CycleCount(); ok {
		metrics.CycleCount = int64(cycles)
	}

	derived := telemetry.DerivedMetrics{
		StateOfCharge: bat.StateOfCharge().Value(),
		StateOfHealth: bat.StateOfHealth().Value(),
	}
	if ttf, ok := bat.TimeToFull(); ok {
		derived.TimeToFull = ttf.Seconds()
	}
	if tte, ok := bat.TimeToEmpty(); ok {
		derived.TimeToEmpty = tte.Seconds()
	}

	return &telemetry.Snapshot{
		Timestamp: time.Now(),
		Battery:   metrics,
		Derived:   derived,
	}
}
