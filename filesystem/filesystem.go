// Package filesystem is the single entry point to disk. Stores, caches and logs
// all go through it so tests can run on an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var current = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return current
}

func use(fs afero.Fs) {
	current = afero.Afero{Fs: fs}
}

// SetOsFs switches to the real filesystem.
func SetOsFs() { use(afero.NewOsFs()) }

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() { use(afero.NewMemMapFs()) }
