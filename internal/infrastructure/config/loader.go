package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "BC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// ErrNoDotEnv is returned when none of the search paths holds a .env file
var ErrNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration for the environment named by BC_ENV
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables still apply
	if err := loadDotEnvFile(DotEnvPaths); err != nil && !errors.Is(err, ErrNoDotEnv) {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path holding it and applies
// environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile(paths []string) error {
	var lastError error

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return ErrNoDotEnv
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.slowThreshold", 200)
	v.SetDefault("database.migrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenExpiration", 24*60)
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("card.validityYears", 3)
	v.SetDefault("card.defaultCurrency", "USD")
}

// getEnvironment reads BC_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented BC_* variables whose names do not
// follow the nested key layout
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"BC_DB_HOST":          "database.host",
		"BC_DB_PORT":          "database.port",
		"BC_DB_USERNAME":      "database.username",
		"BC_DB_PASSWORD":      "database.password",
		"BC_DB_NAME":          "database.database",
		"BC_DB_SSL_MODE":      "database.sslMode",
		"BC_DB_LOG_LEVEL":     "database.logLevel",
		"BC_SERVER_HOST":      "server.host",
		"BC_SERVER_PORT":      "server.port",
		"BC_LOGGER_LEVEL":     "logger.level",
		"BC_JWT_SECRET":       "auth.jwtSecret",
		"BC_ADMIN_USERNAME":   "admin.username",
		"BC_ADMIN_EMAIL":      "admin.email",
		"BC_ADMIN_PASSWORD":   "admin.password",
		"BC_DEFAULT_CURRENCY": "card.defaultCurrency",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"BC_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"BC_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"BC_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"BC_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"BC_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"BC_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"BC_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"BC_DB_SLOW_THRESHOLD_MS":          "database.slowThreshold",
		"BC_TOKEN_EXPIRATION_MINUTES":      "auth.tokenExpiration",
		"BC_CARD_VALIDITY_YEARS":           "card.validityYears",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(env); ok && value > 0 {
			v.Set(key, value)
		}
	}
}

func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts the integer units used in YAML into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond

	config.Auth.TokenExpiration = time.Duration(config.Auth.TokenExpiration) * time.Minute
}
