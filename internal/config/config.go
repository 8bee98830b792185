package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It covers the
// environment, the ops HTTP listener, dependency endpoints (Postgres, Redis),
// the readiness gate, the forecast pipeline, crew definitions and reports.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Ops contains settings for the operational HTTP listener (metrics, health, pprof)
	Ops struct {
		// Addr is the address and port the ops server will listen on
		Addr string `env:"OPS_ADDR" env-default:":9090" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"OPS_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"OPS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"OPS_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"OPS_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"OPS_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where Prometheus metrics are exposed
		MetricsPath string `env:"OPS_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"ops"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"postgres" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"postgres" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"aurora" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains connection settings for the cache store
	Redis struct {
		// Host is the Redis server hostname or IP address
		Host string `env:"REDIS_HOST" env-default:"localhost" yaml:"host"`
		// Port is the Redis server port number
		Port int `env:"REDIS_PORT" env-default:"6379" yaml:"port"`
	} `yaml:"redis"`

	// Gate configures the startup readiness gate
	Gate struct {
		// Interval is the fixed backoff between full probe passes
		Interval time.Duration `env:"GATE_INTERVAL" env-default:"2s" yaml:"interval"`
		// ProbeTimeout bounds each individual dependency probe
		ProbeTimeout time.Duration `env:"GATE_PROBE_TIMEOUT" env-default:"3s" yaml:"probeTimeout"`
		// Checks lists the dependency probes to run, in order.
		// Supported values: "redis", "postgres".
		Checks []string `env:"GATE_CHECKS" env-default:"redis,postgres" yaml:"checks"`
	} `yaml:"gate"`

	// Forecast configures the trend forecasting pipeline
	Forecast struct {
		// Horizon is the number of weekly periods to forecast
		Horizon int `env:"FORECAST_HORIZON" env-default:"12" yaml:"horizon"`
		// Lookback is how far back signal points are loaded for a run
		Lookback time.Duration `env:"FORECAST_LOOKBACK" env-default:"8760h" yaml:"lookback"`
		// MaxAttempts is the maximum number of attempts for a forecast job
		MaxAttempts int `env:"FORECAST_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// UniquePeriod is the window during which duplicate forecast jobs per signal are skipped
		UniquePeriod time.Duration `env:"FORECAST_UNIQUE_PERIOD" env-default:"1h" yaml:"uniquePeriod"`
	} `yaml:"forecast"`

	// Crew points at the agent crew definition files consumed by the
	// orchestration framework
	Crew struct {
		// DefinitionsDir is the directory holding *.yaml crew definitions
		DefinitionsDir string `env:"CREW_DEFINITIONS_DIR" env-default:"crew" yaml:"definitionsDir"`
	} `yaml:"crew"`

	// Report configures generated markdown reports
	Report struct {
		// OutputDir is where rendered reports are written
		OutputDir string `env:"REPORT_OUTPUT_DIR" env-default:"reports" yaml:"outputDir"`
		// LowStockLimit caps the number of rows in the low stock table
		LowStockLimit uint `env:"REPORT_LOW_STOCK_LIMIT" env-default:"50" yaml:"lowStockLimit"`
	} `yaml:"report"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the number of concurrent jobs in the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// JWT holds the shared secret for minting service tokens
	JWT struct {
		// Secret is the HS256 signing secret shared with the API service
		Secret string `env:"JWT_SECRET_KEY" env-default:"" yaml:"secret"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to finish during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
