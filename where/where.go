// Package where resolves the directories and documents tubevault keeps on disk.
// Directories are created on first resolution.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tubevault/tubevault/constant"
	"github.com/tubevault/tubevault/filesystem"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "TUBEVAULT_CONFIG_PATH"

// Storage document names.
const (
	quotaDocument       = "quota.json"
	watchStatesDocument = "watch_states.json"
	catalogDocument     = "catalog.json"
	queriesDocument     = "queries.json"
)

func mkdir(elem ...string) string {
	path := filepath.Join(elem...)
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is TUBEVAULT_CONFIG_PATH when set, the user config dir otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}
	return mkdir(lo.Must(os.UserConfigDir()), constant.Tubevault)
}

// Cache holds disposable data, falling back to ./cache when the platform has no cache dir.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}
	return mkdir(base, constant.Tubevault)
}

func Logs() string {
	return mkdir(Config(), "logs")
}

// Storage is the local key-value store. Each document in it belongs to one component.
func Storage() string {
	return mkdir(Config(), "storage")
}

func Quota() string {
	return filepath.Join(Storage(), quotaDocument)
}

func WatchStates() string {
	return filepath.Join(Storage(), watchStatesDocument)
}

// Catalog holds the snapshot together with its last update time.
func Catalog() string {
	return filepath.Join(Storage(), catalogDocument)
}

// Artwork caches TMDB lookups.
func Artwork() string {
	return mkdir(Cache(), "artwork")
}

func Queries() string {
	return filepath.Join(Cache(), queriesDocument)
}
