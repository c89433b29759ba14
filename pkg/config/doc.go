// Package config loads tmplfactory's configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/tmplfactory/config.toml or an
//     explicit path
//  3. TMPLFACTORY_* environment variables, e.g. TMPLFACTORY_TEMPLATES_PATH
//     or TMPLFACTORY_MATERIALIZE_STRICT_PATHS
//  4. explicit overrides, typically command-line flags
package config
