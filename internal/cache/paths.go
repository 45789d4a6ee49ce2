// Package cache provides a BadgerDB-backed, FEN-keyed cache of
// opening-book and endgame-tablebase responses, sparing repeated
// positions (openings especially) a round trip to the remote service.
package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessengine"

// DataDir returns the platform-specific data directory for the engine:
//   - macOS: ~/Library/Application Support/chessengine/
//   - Linux: ~/.local/share/chessengine/ (respecting XDG_DATA_HOME)
//   - Windows: %APPDATA%/chessengine/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabaseDir returns the directory the response cache's BadgerDB
// instance opens its files in.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "providercache")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
