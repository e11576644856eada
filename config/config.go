// Package config owns the configuration surface: the registry of known keys,
// their defaults, environment bindings and the tubevault.toml file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/constant"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/where"
)

// EnvKeyReplacer maps a dotted key onto its environment variable suffix.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrUnknownKey is returned for keys missing from the registry.
var ErrUnknownKey = errors.New("unknown key")

// durations are string-typed keys that must hold a time.Duration.
var durations = map[string]struct{}{
	key.CatalogUpdateInterval: {},
	key.NetworkFetchTimeout:   {},
}

// Setup binds defaults and environment variables, then reads the config file if
// there is one. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Tubevault)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tubevault)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}

// File is where Write puts the configuration.
func File() string {
	return filepath.Join(where.Config(), constant.Tubevault+".toml")
}

// Write persists the current settings, creating the file when it does not exist yet.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// Parse converts raw command-line values into the type of the key's default.
func Parse(name string, values []string) (any, error) {
	field, ok := Default[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}

	if _, ok := field.Value.([]string); ok {
		return values, nil
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no value for %s", name)
	}

	raw := values[0]
	switch field.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value %q for %s", raw, name)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value %q for %s", raw, name)
		}
		return b, nil
	}

	if _, ok := durations[name]; ok {
		if _, err := time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("invalid duration %q for %s", raw, name)
		}
	}

	return raw, nil
}
