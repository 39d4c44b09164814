// Package storage keeps preferences, win statistics and the unfinished
// game between launches.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessboard"

// DataDirEnv overrides the data directory on every platform.
const DataDirEnv = "CHESSBOARD_DATA_DIR"

// GetDataDir returns the per-user data directory, creating it if needed:
// ~/Library/Application Support/chessboard on macOS, %APPDATA%\chessboard
// on Windows and $XDG_DATA_HOME/chessboard (or ~/.local/share/chessboard)
// elsewhere.
func GetDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return ensureDir(dir)
	}
	base, err := userBaseDir(runtime.GOOS)
	if err != nil {
		return "", fmt.Errorf("locate data directory: %w", err)
	}
	return ensureDir(filepath.Join(base, appName))
}

// userBaseDir picks the platform's parent directory for application data.
func userBaseDir(goos string) (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch goos {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dataDir, "db"))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}
