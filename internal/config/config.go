package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server and CLI need at startup
type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	BcryptCost      int
	DB              DBConfig
}

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN           string
	MaxRetries    int
	RetryInterval time.Duration
}

// Load reads configuration from environment variables (a .env file should
// already have been loaded by the caller). DATABASE_URL wins over the
// discrete DB_* settings.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_retries", 5)
	v.SetDefault("db_retry_interval", 5*time.Second)

	dbCfg, err := loadDBConfig(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            v.GetString("port"),
		GinMode:         v.GetString("gin_mode"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		BcryptCost:      v.GetInt("bcrypt_cost"),
		DB:              *dbCfg,
	}, nil
}

func loadDBConfig(v *viper.Viper) (*DBConfig, error) {
	cfg := &DBConfig{
		DSN:           v.GetString("database_url"),
		MaxRetries:    v.GetInt("db_max_retries"),
		RetryInterval: v.GetDuration("db_retry_interval"),
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.DSN != "" {
		return cfg, nil
	}

	dbHost := v.GetString("db_host")
	dbPort := v.GetString("db_port")
	dbUser := v.GetString("db_user")
	dbPassword := v.GetString("db_password")
	dbName := v.GetString("db_name")
	sslMode := v.GetString("db_sslmode")

	if dbHost == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	cfg.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbHost, dbPort, dbUser, dbPassword, dbName, sslMode)
	return cfg, nil
}
