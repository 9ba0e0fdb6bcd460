package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Demo     DemoConfig     `mapstructure:"demo"`
	Report   ReportConfig   `mapstructure:"report"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds SQLite configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// DemoConfig controls the seeded demo dataset.
type DemoConfig struct {
	Seed         uint64 `mapstructure:"seed"`
	Vendors      int    `mapstructure:"vendors"`
	Clients      int    `mapstructure:"clients"`
	Invoices     int    `mapstructure:"invoices"`
	Budgets      int    `mapstructure:"budgets"`
	AuditEntries int    `mapstructure:"audit_entries"`
	EmailImports int    `mapstructure:"email_imports"`
}

// ReportConfig holds report export configuration
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// Load loads configuration from file and environment variables. A .env
// file in the working directory is applied first when present.
func Load(configPath string) (*Config, error) {
	_ = gotenv.Load()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	viper.SetDefault("database.path", "data/invoiceflow.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	viper.SetDefault("database.migrations_dir", "migrations")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")

	viper.SetDefault("demo.seed", 1)
	viper.SetDefault("demo.vendors", 50)
	viper.SetDefault("demo.clients", 40)
	viper.SetDefault("demo.invoices", 150)
	viper.SetDefault("demo.budgets", 12)
	viper.SetDefault("demo.audit_entries", 80)
	viper.SetDefault("demo.email_imports", 30)

	viper.SetDefault("report.output_dir", "generated_reports")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("demo.seed", "DEMO_SEED")
	viper.BindEnv("report.output_dir", "REPORT_OUTPUT_DIR")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Demo.Vendors < 0 || c.Demo.Clients < 0 || c.Demo.Invoices < 0 ||
		c.Demo.Budgets < 0 || c.Demo.AuditEntries < 0 || c.Demo.EmailImports < 0 {
		return fmt.Errorf("demo record counts must not be negative")
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}
	return nil
}
