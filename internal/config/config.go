package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-server/internal/util"
	"holdem-server/pkg/playable/poker/texasholdem"
)

const envPrefix = "holdem"

// Config provides configuration for the holdem server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Table Table `yaml:"table"`
}

// Table holds the options every table is opened with
type Table struct {
	StartingChips int           `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int           `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int           `yaml:"bigBlind" envconfig:"big_blind"`
	MaxSeats      int           `yaml:"maxSeats" envconfig:"max_seats"`
	MinPlayers    int           `yaml:"minPlayers" envconfig:"min_players"`
	NextHandDelay time.Duration `yaml:"nextHandDelay" envconfig:"next_hand_delay"`
}

// ToOptions converts the table config into engine options
func (t Table) ToOptions() texasholdem.Options {
	return texasholdem.Options{
		StartingChips: t.StartingChips,
		SmallBlind:    t.SmallBlind,
		BigBlind:      t.BigBlind,
		MaxSeats:      t.MaxSeats,
		MinPlayers:    t.MinPlayers,
		NextHandDelay: t.NextHandDelay,
	}
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	cfg := Config{
		Addr: ":5000",
		Table: Table{
			StartingChips: opts.StartingChips,
			SmallBlind:    opts.SmallBlind,
			BigBlind:      opts.BigBlind,
			MaxSeats:      opts.MaxSeats,
			MinPlayers:    opts.MinPlayers,
			NextHandDelay: opts.NextHandDelay,
		},
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are overridden by the YAML file, then by the environment (including a .env file)
func Load() error {
	cfg := DefaultConfig()

	configFile, explicit := os.LookupEnv("HOLDEM_CONFIG_FILE")
	if !explicit {
		configFile = "config.yaml"
	}

	if err := loadFile(&cfg, configFile, explicit); err != nil {
		return err
	}

	if err := godotenv.Load(util.Getenv("HOLDEM_ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// loadFile decodes the YAML file into cfg
// A missing file is only an error if it was asked for
func loadFile(cfg *Config, configFile string, required bool) error {
	file, err := os.Open(configFile)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}

		return err
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(cfg)
}
