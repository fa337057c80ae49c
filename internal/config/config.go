// Package config resolves natunit settings from flags, NATUNIT_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/edp1096/natural-unit/pkg/system"
)

const EnvPrefix = "NATUNIT"

const (
	keyConfig    = "config"
	keyFrom      = "from"
	keyTo        = "to"
	keyPrecision = "precision"
	keyVerbose   = "verbose"
)

type Config struct {
	From      system.UnitSystem
	To        system.UnitSystem
	Precision int
	Verbose   bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (yaml, json or toml)")
	fs.String(keyFrom, "cgs", "source unit system (cgs, si, geometrized, natural)")
	fs.String(keyTo, "si", "target unit system (cgs, si, geometrized, natural)")
	fs.Int(keyPrecision, 6, "digits after the decimal point")
	fs.BoolP(keyVerbose, "v", false, "enable debug logging")
}

// Load reads the configuration for fs into a fresh viper instance.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	from, err := system.Parse(v.GetString(keyFrom))
	if err != nil {
		return Config{}, fmt.Errorf("--%s: %w", keyFrom, err)
	}
	to, err := system.Parse(v.GetString(keyTo))
	if err != nil {
		return Config{}, fmt.Errorf("--%s: %w", keyTo, err)
	}

	precision := v.GetInt(keyPrecision)
	if precision < 0 || precision > 17 {
		return Config{}, fmt.Errorf("--%s: %d out of range [0, 17]", keyPrecision, precision)
	}

	return Config{
		From:      from,
		To:        to,
		Precision: precision,
		Verbose:   v.GetBool(keyVerbose),
	}, nil
}
