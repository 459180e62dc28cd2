package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	Markers  Markers `yaml:"markers"`
}

type Game struct {
	Dimension    int    `yaml:"dimension" env:"GAME_DIMENSION" env-default:"3"`
	MaxDimension int    `yaml:"max-dimension" env:"GAME_MAX_DIMENSION" env-default:"16"`
	PlayerOne    string `yaml:"player-one" env:"GAME_PLAYER_ONE" env-default:"PlayerOne"`
	PlayerTwo    string `yaml:"player-two" env:"GAME_PLAYER_TWO" env-default:"PlayerTwo"`
}

// Markers are the glyphs drawn for each player's cells.
type Markers struct {
	PlayerOne string `yaml:"player-one" env:"MARKER_PLAYER_ONE" env-default:"X"`
	PlayerTwo string `yaml:"player-two" env:"MARKER_PLAYER_TWO" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config, nil
}
