package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, puzzle data locations, reporting,
// the blog generator, the preview server and the benchmark history database.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// InputDir is the directory holding puzzle inputs laid out as <year>/day_DD.txt
	InputDir string `env:"AOC_INPUT_DIR" env-default:"input" yaml:"inputDir"`
	// AnswerDir is the directory holding known answers laid out as <year>/day_DD.properties
	AnswerDir string `env:"AOC_ANSWER_DIR" env-default:"answers" yaml:"answerDir"`

	// Benchmark contains the defaults of benchmark mode
	Benchmark struct {
		// Runs is the number of runs per day when benchmarking
		Runs int `env:"BENCHMARK_RUNS" env-default:"5" yaml:"runs"`
	} `yaml:"benchmark"`

	// Report contains settings of the report writers
	Report struct {
		// Format selects the writer: markdown or json
		Format string `env:"REPORT_FORMAT" env-default:"markdown" yaml:"format"`
		// Dir is where JSON reports are written
		Dir string `env:"REPORT_DIR" env-default:"build/report" yaml:"dir"`
	} `yaml:"report"`

	// Blog contains settings of the static blog generator
	Blog struct {
		OutputDir     string `env:"BLOG_OUTPUT_DIR" env-default:"build/blog" yaml:"outputDir"`
		Title         string `env:"BLOG_TITLE" env-default:"Advent of Code" yaml:"title"`
		BaseURL       string `env:"BLOG_BASE_URL" env-default:"/" yaml:"baseUrl"`
		RepositoryURL string `env:"BLOG_REPOSITORY_URL" env-default:"" yaml:"repositoryUrl"`
	} `yaml:"blog"`

	// HTTP contains all preview server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds a single request, including on-demand solver runs
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// History enables persisting benchmark runs to the database
	History struct {
		Enabled bool `env:"HISTORY_ENABLED" env-default:"false" yaml:"enabled"`
	} `yaml:"history"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"advent" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"advent" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"advent" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: values then come from the environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
