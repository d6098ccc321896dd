package telemetry

import "github.com/zonotope/battery/internal/errors"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "/var/lib/batteryctl/telemetry.db"
)

type Config struct {
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New().New(ErrInvalidDBPath)
	}
	return nil
}
