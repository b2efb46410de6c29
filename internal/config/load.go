package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SETGAME_GAME_BOARD_SIZE.
const EnvPrefix = "SETGAME"

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Flag names recognised by Load, mapped to their configuration keys.
var flagKeys = map[string]string{
	"board-size": "game.board_size",
	"columns":    "output.columns",
	"color":      "output.color",
	"format":     "output.format",
	"log-level":  "log.level",
}

var envKeys = []string{
	"game.board_size",
	"game.seed",
	"output.columns",
	"output.color",
	"output.format",
	"log.level",
}

// Load builds the configuration. path names an optional config file (any
// format viper understands); flags may be nil. Only flags the user actually
// set override the other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("game.board_size", 12)
	v.SetDefault("output.columns", 4)
	v.SetDefault("output.color", "auto")
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "warn")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		envVar := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("binding environment variable %s: %w", envVar, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
		// An unset --seed must stay nil instead of falling back to the flag's zero default.
		if f := flags.Lookup("seed"); f != nil && f.Changed {
			v.Set("game.seed", f.Value.String())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}
