// Package cache keeps artwork lookups on disk for a week.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/where"
)

const TTL = 7 * 24 * time.Hour

// GenerateKey derives a file name from a lookup query and its kind. Queries that
// differ only in case or spacing share a key.
func GenerateKey(query, kind string) string {
	sanitized := strings.ToLower(strings.Join(strings.Fields(query), "")) + "\x00" + kind
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry stored under key into target. Missing, expired and
// undecodable entries all report false.
func Read(key string, target any) bool {
	path := filepath.Join(where.Artwork(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Warnf("decode cached %s: %v", key, err)
		return false
	}
	return true
}

// Write stores data under key, swapping a temporary file into place.
func Write(key string, data any) error {
	path := filepath.Join(where.Artwork(), key)
	tmpPath := path + ".tmp"

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmpPath, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage removes expired entries and returns how many were removed.
func CollectGarbage() int {
	var removed int

	_ = filesystem.API().Walk(where.Artwork(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	if removed > 0 {
		log.Debugf("removed %d expired artwork entries", removed)
	}
	return removed
}

// Clear removes every entry.
func Clear() error {
	return filesystem.API().RemoveAll(where.Artwork())
}
