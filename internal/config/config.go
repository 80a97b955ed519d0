package config

import (
	"fmt"
	"time"

	coreconfig "github.com/go-core-fx/config"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	APIKey        string        `koanf:"api_key"`
	TaxID         string        `koanf:"tax_id"`
	DeviceID      string        `koanf:"device_id"`
	StorageSerial string        `koanf:"storage_serial"`
	BaseURL       string        `koanf:"base_url"`
	From          string        `koanf:"from"`
	To            string        `koanf:"to"`
	Timeout       time.Duration `koanf:"timeout"`
	LogFile       string        `koanf:"log_file"`
	Debug         bool          `koanf:"debug"`
}

func New() (Config, error) {
	cfg := Config{
		BaseURL: "https://org.1-ofd.ru",
		Timeout: 20 * time.Second,
		LogFile: "./ofd-import.log",
		Debug:   false,
	}

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// FileLogLevel is the minimum level written to the log file; the Debug
// flag widens it.
func (c Config) FileLogLevel() zapcore.Level {
	if c.Debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
