package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstMoverHuman  = "human"
	FirstMoverBot    = "bot"
	FirstMoverRandom = "random"
	FirstMoverAsk    = "ask"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFormat  string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	WinTarget  int      `yaml:"win-target" env:"WIN_TARGET" env-default:"3"`
	FirstMover string   `yaml:"first-mover" env:"FIRST_MOVER" env-default:"ask"`
	Colors     bool     `yaml:"colors" env:"COLORS" env-default:"true"`
	BotNames   []string `yaml:"bot-names" env:"BOT_NAMES" env-default:"R2D2,Hal,Chappie,Sonny"`
}

// MustLoad - loads all configuration from the config file, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
