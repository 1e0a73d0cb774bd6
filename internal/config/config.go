package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		// The data source name (DSN) for connecting to the database.
		DSN string `yaml:"dsn" env:"DATABASE_URI"`
		// Location of the schema migrations, golang-migrate source URL.
		MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"file://migrations"`
		// Time zone used to print receipts.
		TimeZone string `yaml:"time_zone" env:"TIME_ZONE" env-default:"Asia/Makassar"`
		// Subconfigs.
		HTTPServer HTTPServer `yaml:"http_server"`
		Logger     Logger     `yaml:"logger"`
		Archive    Archive    `yaml:"archive"`
	}
	// Config for HTTP server.
	HTTPServer struct {
		// The server startup address.
		Address string `yaml:"run_address" env:"RUN_ADDRESS" env-default:"127.0.0.1:3000"`
		// Read header timeout.
		Timeout time.Duration `yaml:"timeout" env-default:"5s"`
		// Idle timeout.
		IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
		// Upper bound for a single request, database calls included.
		RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"15s"`
		// Shutdown timeout.
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb" env-default:"10"`
		MaxBackups int `yaml:"max_backups" env-default:"3"`
		MaxAgeDays int `yaml:"max_age_days" env-default:"28"`
	}
	// Config for the print and reset workflow.
	Archive struct {
		// Key of the advisory lock taken while an archive is committed.
		LockKey int64 `yaml:"lock_key" env:"ARCHIVE_LOCK_KEY" env-default:"7301"`
		// Print and reset requests allowed per interval, extra ones get 429.
		ResetInterval time.Duration `yaml:"reset_interval" env-default:"1s"`
		ResetBurst    int           `yaml:"reset_burst" env-default:"1"`
	}
)

// Location returns the time zone receipts are printed in.
// Falls back to UTC for an unknown zone name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MustLoad returns an application configuration which is populated
// from the given configuration file, environment variables and flags.
func MustLoad() *Config {
	// Configuration yaml file path.
	configPath := flag.String("config", "./config/local.yml", "path to the config file")
	address := flag.String("a", "", "server startup address")
	dsn := flag.String("d", "", "server data source name")
	flag.Parse()

	// Values from .env are visible to ReadEnv below. The file is optional.
	_ = godotenv.Load()

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Given flags win over the file, environment wins over both.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.HTTPServer.Address = *address
		case "d":
			cfg.DSN = *dsn
		}
	})

	if err = cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read environment variables: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path and then the environment.
func Load(path string) (*Config, error) {
	// Check if file exists.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}
