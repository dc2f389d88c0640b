package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"GillPay"`
		Currency string `envconfig:"CURRENCY" default:"USD"`
	}

	Data struct {
		Dir            string `envconfig:"DATA_DIR" default:"data"`
		LedgerFile     string `envconfig:"LEDGER_FILE" default:"gillpay_data.csv"`
		CategoriesFile string `envconfig:"CATEGORIES_FILE" default:"categories.csv"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		// File receives the TUI's logs, which would otherwise draw over the screen.
		File string `envconfig:"LOG_FILE" default:"gillpay.log"`
	}
}

// LedgerPath is the location of the transactions file.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Data.Dir, c.Data.LedgerFile)
}

// CategoriesPath is the location of the category registry.
func (c *Config) CategoriesPath() string {
	return filepath.Join(c.Data.Dir, c.Data.CategoriesFile)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
