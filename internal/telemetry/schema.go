package telemetry

import (
	"database/sql"

	"github.com/zonotope/battery/internal/errors"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS battery_telemetry (
            timestamp           INTEGER NOT NULL,
            battery_index       INTEGER NOT NULL,
            vendor              TEXT,
            model               TEXT,
            state               TEXT NOT NULL,
            energy              REAL NOT NULL,
            energy_full         REAL NOT NULL,
            energy_full_design  REAL NOT NULL,
            energy_rate         REAL NOT NULL,
            voltage             REAL NOT NULL,
            temperature         REAL,
            cycle_count         INTEGER,
            state_of_charge     REAL NOT NULL,
            state_of_health     REAL NOT NULL,
            time_to_full        REAL,
            time_to_empty       REAL,
            PRIMARY KEY (timestamp, battery_index)
        )
    `)
	if err != nil {
		return errors.New().Wrap(ErrSchemaInitFailed, err)
	}

	return nil
}
