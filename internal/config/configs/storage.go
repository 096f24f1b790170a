package configs

import (
	"fmt"
	"slices"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

var Drivers = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverRedis, DriverS3}

// Storage picks the key-value driver. The memory driver loses everything on
// exit and is meant for tests and demos.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
}

func (c Storage) Validate() error {
	if !slices.Contains(Drivers, c.Driver) {
		return fmt.Errorf("unknown storage driver %q, want one of %v", c.Driver, Drivers)
	}
	return nil
}
