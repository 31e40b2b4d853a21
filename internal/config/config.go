package config

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultAPIBaseURL     = "http://localhost:8000/api"
)

type Keymap struct {
	Quit           string `toml:"quit"`
	Up             string `toml:"up"`
	Down           string `toml:"down"`
	Add            string `toml:"add"`
	Edit           string `toml:"edit"`
	Complete       string `toml:"complete"`
	Delete         string `toml:"delete"`
	Select         string `toml:"select"`
	Search         string `toml:"search"`
	StatusFilter   string `toml:"status_filter"`
	PriorityFilter string `toml:"priority_filter"`
	Refresh        string `toml:"refresh"`
}

type Config struct {
	APIBaseURL string `toml:"api_base_url"`
	LogPath    string `toml:"log_path"`
	Keys       Keymap `toml:"keys"`
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		Keys: Keymap{
			Quit:           "q",
			Up:             "k",
			Down:           "j",
			Add:            "a",
			Edit:           "e",
			Complete:       "c",
			Delete:         "d",
			Select:         " ",
			Search:         "/",
			StatusFilter:   "s",
			PriorityFilter: "p",
			Refresh:        "r",
		},
	}
}
