package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are runtime options read from the environment.
type Settings struct {
	DataDir         string `env:"CAFE_DATA_DIR"`
	PreferencesPath string `env:"CAFE_PREFERENCES_PATH"`
	PageSize        int    `env:"CAFE_PAGE_SIZE" envDefault:"12"`
	CountryCode     string `env:"CAFE_COUNTRY_CODE" envDefault:"+855"`
	DefaultLanguage string `env:"CAFE_DEFAULT_LANG" envDefault:"en"`
}

// LoadSettings loads an optional .env file from dotenvPath, then parses the
// environment. Variables already set in the environment win over .env values.
func LoadSettings(dotenvPath string) (Settings, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if settings.PageSize <= 0 {
		return Settings{}, fmt.Errorf("CAFE_PAGE_SIZE must be > 0, got %d", settings.PageSize)
	}
	return settings, nil
}
