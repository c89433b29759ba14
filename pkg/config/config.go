package config

import (
	"fmt"
	"io/fs"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective tmplfactory configuration.
type Config struct {
	Templates   TemplatesConfig   `koanf:"templates" toml:"templates"`
	Materialize MaterializeConfig `koanf:"materialize" toml:"materialize"`
	Logging     LoggingConfig     `koanf:"logging" toml:"logging"`
}

// TemplatesConfig locates the template catalog.
type TemplatesConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// MaterializeConfig controls how projects are written.
type MaterializeConfig struct {
	DirMode     FileMode `koanf:"dir_mode" toml:"dir_mode"`
	FileMode    FileMode `koanf:"file_mode" toml:"file_mode"`
	StrictPaths bool     `koanf:"strict_paths" toml:"strict_paths"`
	Only        []string `koanf:"only" toml:"only"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	File string `koanf:"file" toml:"file"`
}

// FileMode is a permission mode written as an octal string ("0755").
type FileMode fs.FileMode

// Perm returns the mode as an fs.FileMode.
func (m FileMode) Perm() fs.FileMode {
	return fs.FileMode(m).Perm()
}

// MarshalText renders the mode in octal.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%#o", uint32(m))), nil
}

// ParseFileMode parses an octal permission string such as "0644".
func ParseFileMode(s string) (FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", s, err)
	}
	if v > 0777 {
		return 0, fmt.Errorf("invalid file mode %q: only permission bits are allowed", s)
	}
	return FileMode(v), nil
}

// Dump renders cfg as TOML.
func Dump(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(out), nil
}
