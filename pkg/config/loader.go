package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tmplfactory/pkg/paths"
)

const envPrefix = "TMPLFACTORY_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the optional configuration layers.
type LoadOptions struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// SkipUserConfig ignores the XDG user config file when ConfigFile is empty.
	SkipUserConfig bool
	// Overrides are applied last, keyed by dotted path ("templates.path").
	Overrides map[string]interface{}
}

// DefaultConfigPath returns the XDG location of the user config file.
func DefaultConfigPath() string {
	return paths.ConfigFile()
}

// Default returns the configuration built from the embedded defaults only.
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true})
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User config
	if path := userConfigPath(opts); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				fileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	postProcessConfig(&cfg)
	return &cfg, nil
}

func userConfigPath(opts LoadOptions) string {
	if opts.ConfigFile != "" {
		return opts.ConfigFile
	}
	if opts.SkipUserConfig {
		return ""
	}
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// fileModeHookFunc decodes octal strings ("0755") and plain integers into FileMode.
func fileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(FileMode(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return ParseFileMode(strings.TrimSpace(v))
		case int64:
			return FileMode(v), nil
		case int:
			return FileMode(v), nil
		}
		return data, nil
	}
}

func postProcessConfig(cfg *Config) {
	var only []string
	for _, p := range cfg.Materialize.Only {
		if p = strings.TrimSpace(p); p != "" {
			only = append(only, p)
		}
	}
	cfg.Materialize.Only = only
	cfg.Templates.Path = paths.ExpandHome(strings.TrimSpace(cfg.Templates.Path))
	cfg.Logging.File = paths.ExpandHome(strings.TrimSpace(cfg.Logging.File))
}
