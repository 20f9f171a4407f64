package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// XDGConfigFile is looked up in the XDG config directories when the working
// directory has no config file.
const XDGConfigFile = "tictactoe/config.yml"

type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"error"`
	BoardSize int    `yaml:"board-size" env-default:"0"`
	Colors    bool   `yaml:"colors" env-default:"false"`
}

// MustLoad - load the first config file found, or the defaults when there is none.
func MustLoad(paths ...string) *Config {
	config, err := Load(paths...)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(paths ...string) (*Config, error) {
	config := &Config{}

	path, found := find(paths)
	if found {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - a board size of 0 means the player is asked at startup.
func (that *Config) Validate() error {
	if that.BoardSize == 0 {
		return nil
	}

	if err := entity.ValidateBoardSize(that.BoardSize); err != nil {
		return fmt.Errorf("invalid board-size: %w", err)
	}

	return nil
}

func (that *Config) HasBoardSize() bool {
	return that.BoardSize != 0
}

func find(paths []string) (string, bool) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	path, err := xdg.SearchConfigFile(XDGConfigFile)
	if err != nil {
		return "", false
	}

	return path, true
}
