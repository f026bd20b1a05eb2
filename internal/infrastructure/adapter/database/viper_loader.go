package database

import (
	"fmt"

	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/config"
)

// FromAppConfig adapts the application configuration to database configuration.
// Zero values in the application config keep the defaults.
func FromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	dbConf.Host = src.Host
	dbConf.Port = ParsePort(src.Port)
	dbConf.Username = src.Username
	dbConf.Password = src.Password
	dbConf.Database = src.Database

	if src.Driver != "" {
		dbConf.Driver = src.Driver
	}
	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.RetryAttempts > 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}
	if src.SlowThreshold > 0 {
		dbConf.SlowThreshold = src.SlowThreshold
	}

	return dbConf
}

// ParsePort converts a port string to an int. Invalid ports give 0.
func ParsePort(port string) int {
	var p int
	if _, err := fmt.Sscanf(port, "%d", &p); err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
