// Package paths resolves where tmplfactory keeps its own files: the user
// config under the XDG config home and the log file under the XDG state
// home.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory created under each XDG base directory.
	AppDirName = "tmplfactory"

	ConfigFileName = "config.toml"
	LogFileName    = "tmplfactory.log"

	// EnvHome is the fallback when the OS cannot report a home directory.
	EnvHome = "HOME"
)

// ConfigDir returns the tmplfactory directory under the XDG config home.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default user config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the tmplfactory state directory. XDG_STATE_HOME is read
// on every call so tests can redirect it.
func StateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return ""
	}
	return filepath.Join(stateHome, AppDirName)
}

// LogFile returns the default log file path, or just the file name when no
// state directory can be determined.
func LogFile() string {
	dir := StateDir()
	if dir == "" {
		return LogFileName
	}
	return filepath.Join(dir, LogFileName)
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
