package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zonotope/battery/internal/errors"
	"github.com/zonotope/battery/internal/logger"
)

type Repository interface {
	Store(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing telemetry repository at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var temperature any
	if snapshot.Battery.HasTemperature {
		temperature = snapshot.Battery.Temperature
	}

	var cycles any
	if snapshot.Battery.CycleCount >= 0 {
		cycles = snapshot.Battery.CycleCount
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO battery_telemetry (
            timestamp, battery_index, vendor, model, state,
            energy, energy_full, energy_full_design,
            energy_rate, voltage, temperature, cycle_count,
            state_of_charge, state_of_health,
            time_to_full, time_to_empty
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(timestamp, battery_index) DO UPDATE SET
            state = excluded.state,
            energy = excluded.energy,
            energy_full = excluded.energy_full,
            energy_full_design = excluded.energy_full_design,
            energy_rate = excluded.energy_rate,
            voltage = excluded.voltage,
            temperature = excluded.temperature,
            cycle_count = excluded.cycle_count,
            state_of_charge = excluded.state_of_charge,
            state_of_health = excluded.state_of_health,
            time_to_full = excluded.time_to_full,
            time_to_empty = excluded.time_to_empty
    `,
		snapshot.Timestamp.Unix(),
		snapshot.Battery.Index,
		snapshot.Battery.Vendor,
		snapshot.Battery.Model,
		snapshot.Battery.State,
		snapshot.Battery.Energy,
		snapshot.Battery.EnergyFull,
		snapshot.Battery.EnergyFullDesign,
		snapshot.Battery.EnergyRate,
		snapshot.Battery.Voltage,
		temperature,
		cycles,
		snapshot.Derived.StateOfCharge,
		snapshot.Derived.StateOfHealth,
		snapshot.Derived.TimeToFull,
		snapshot.Derived.TimeToEmpty,
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}
	return nil
}
