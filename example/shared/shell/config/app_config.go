package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverPGX     = "pgx"
	DriverSQLDB   = "sqldb"
	DriverSQLX    = "sqlx"
	DriverSQLite3 = "sqlite3"
)

// Supported handler failure policies.
const (
	FailurePolicyAbort    = "abort"
	FailurePolicyContinue = "continue"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Sentinel errors for configuration loading.
var (
	ErrReadingConfigFailed   = errors.New("reading config failed")
	ErrParsingConfigFailed   = errors.New("parsing config failed")
	ErrUnsupportedDriver     = errors.New("unsupported database driver")
	ErrUnsupportedPolicy     = errors.New("unsupported handler failure policy")
	ErrUnsupportedLogLevel   = errors.New("unsupported log level")
	ErrDSNIsRequired         = errors.New("database dsn is required")
	ErrEndpointIsRequired    = errors.New("observability endpoint is required")
	ErrRecipientIsRequired   = errors.New("email recipient is required")
	ErrInvalidMetricInterval = errors.New("metric interval must be positive")
)

// AppConfig is the configuration of the checkout demo application.
type AppConfig struct {
	Database      DatabaseConfig      `yaml:"database"`
	Dispatcher    DispatcherConfig    `yaml:"dispatcher"`
	Logging       LoggingConfig       `yaml:"logging"`
	Observability ObservabilityConfig `yaml:"observability"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// DatabaseConfig selects the database driver and connection.
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	DSN        string `yaml:"dsn"`
	MaxRetries int    `yaml:"max_retries"`
}

// DispatcherConfig configures the event dispatcher.
type DispatcherConfig struct {
	FailurePolicy string `yaml:"failure_policy"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ObservabilityConfig configures the OpenTelemetry export.
type ObservabilityConfig struct {
	Enabled        bool          `yaml:"enabled"`
	ServiceName    string        `yaml:"service_name"`
	ServiceVersion string        `yaml:"service_version"`
	TraceEndpoint  string        `yaml:"trace_endpoint"`
	MetricEndpoint string        `yaml:"metric_endpoint"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// NotificationsConfig configures the event handlers of the demo.
type NotificationsConfig struct {
	EmailRecipient string `yaml:"email_recipient"`
	AuditLogPath   string `yaml:"audit_log_path"`
}

// DefaultAppConfig returns the configuration used when no config file is given.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Database: DatabaseConfig{
			Driver:     DriverSQLite3,
			DSN:        SQLiteInMemoryDSN(),
			MaxRetries: DefaultWaitConfig().MaxRetries,
		},
		Dispatcher: DispatcherConfig{
			FailurePolicy: FailurePolicyAbort,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
		},
		Observability: ObservabilityConfig{
			ServiceName:    "checkout-demo",
			ServiceVersion: "dev",
			TraceEndpoint:  "localhost:4319",
			MetricEndpoint: "localhost:4317",
			MetricInterval: 5 * time.Second,
		},
		Notifications: NotificationsConfig{
			EmailRecipient: "catalog@example.com",
		},
	}
}

// LoadAppConfig reads a YAML config file. Keys missing in the file keep their defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return AppConfig{}, errors.Join(ErrReadingConfigFailed, err)
	}
	defer func() { _ = file.Close() }()

	return LoadAppConfigFromReader(file)
}

// LoadAppConfigFromReader reads a YAML config from the reader. Keys missing in the input keep their defaults.
func LoadAppConfigFromReader(reader io.Reader) (AppConfig, error) {
	cfg := DefaultAppConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AppConfig{}, errors.Join(ErrParsingConfigFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate reports all invalid settings at once.
func (c AppConfig) Validate() error {
	var errs []error

	if !slices.Contains([]string{DriverPGX, DriverSQLDB, DriverSQLX, DriverSQLite3}, c.Database.Driver) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver))
	}

	if c.Database.DSN == "" {
		errs = append(errs, ErrDSNIsRequired)
	}

	if !slices.Contains([]string{FailurePolicyAbort, FailurePolicyContinue}, c.Dispatcher.FailurePolicy) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, c.Dispatcher.FailurePolicy))
	}

	if !slices.Contains([]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedLogLevel, c.Logging.Level))
	}

	if c.Observability.Enabled {
		if c.Observability.TraceEndpoint == "" || c.Observability.MetricEndpoint == "" {
			errs = append(errs, ErrEndpointIsRequired)
		}

		if c.Observability.MetricInterval <= 0 {
			errs = append(errs, ErrInvalidMetricInterval)
		}
	}

	if c.Notifications.EmailRecipient == "" {
		errs = append(errs, ErrRecipientIsRequired)
	}

	return errors.Join(errs...)
}

// WaitConfig returns the WaitConfig for the configured database.
func (c AppConfig) WaitConfig() WaitConfig {
	wait := DefaultWaitConfig()
	wait.MaxRetries = c.Database.MaxRetries

	return wait
}
