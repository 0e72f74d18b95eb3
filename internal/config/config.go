// Package config loads treedb's layered configuration: a project config
// file, falling back to a user config directory and finally the home
// directory, with environment variables taking precedence over whatever
// file was found, matching the precedence chain the CLI layer expects.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/treedb/treedb/internal/logging"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton. Should be called
// once at CLI startup, before any Get* accessor.
//
// Search order for config.yaml (first match wins):
//  1. ./.treedb/config.yaml, walking up from the current directory
//  2. $XDG_CONFIG_HOME (or platform equivalent)/treedb/config.yaml
//  3. ~/.treedb/config.yaml
//
// Environment variables prefixed TREEDB_ override anything the config file
// sets; they in turn are overridden by explicit command-line flags, which
// callers bind separately.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	configFileSet := false

	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			configPath := filepath.Join(dir, ".treedb", "config.yaml")
			if _, statErr := os.Stat(configPath); statErr == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
				break
			}
		}
	}

	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "treedb", "config.yaml")
			if _, statErr := os.Stat(configPath); statErr == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	if !configFileSet {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configPath := filepath.Join(homeDir, ".treedb", "config.yaml")
			if _, statErr := os.Stat(configPath); statErr == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	v.SetEnvPrefix("TREEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", ".treedb/tree.db")
	v.SetDefault("codec", "raw")
	v.SetDefault("busy-timeout", "5s")
	v.SetDefault("lock-timeout", "10s")
	v.SetDefault("passphrase-env", "TREEDB_PASSPHRASE")
	v.SetDefault("json", false)
	v.SetDefault("color", "auto")
	v.SetDefault("debug-log", "")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		logging.Logf("loaded config from %s", v.ConfigFileUsed())
	} else {
		logging.Logf("no config.yaml found; using defaults and environment variables")
	}

	return nil
}

// GetString retrieves a string configuration value.
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value.
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration retrieves a duration configuration value.
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set overrides a configuration value in place, used by flag binding.
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// DBPath resolves the database file path: an explicit flagValue wins,
// otherwise the "db" config key (itself env-overridable via TREEDB_DB).
func DBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetString("db")
}

// Passphrase resolves the at-rest encryption passphrase: an explicit
// flagValue wins, then the environment variable named by "passphrase-env"
// (TREEDB_PASSPHRASE by default). An empty result means the database is
// unencrypted.
func Passphrase(flagValue string) []byte {
	if flagValue != "" {
		return []byte(flagValue)
	}
	envVar := GetString("passphrase-env")
	if envVar == "" {
		return nil
	}
	if val := os.Getenv(envVar); val != "" {
		return []byte(val)
	}
	return nil
}

// treedbTOML is the shape of an optional per-directory sidecar config file
// (treedb.toml), decoded directly with BurntSushi/toml rather than through
// viper — for settings a project wants to pin independent of the user's
// layered config.yaml, such as which codec new writes should default to.
type treedbTOML struct {
	DefaultCodec string `toml:"default_codec"`
	ReadOnly     bool   `toml:"read_only"`
}

// LoadSidecar reads treedb.toml from dir, if present. A missing file is not
// an error; it simply yields the zero value.
func LoadSidecar(dir string) (defaultCodec string, readOnly bool, err error) {
	path := filepath.Join(dir, "treedb.toml")
	if _, statErr := os.Stat(path); statErr != nil {
		return "", false, nil
	}

	var cfg treedbTOML
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return "", false, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.DefaultCodec, cfg.ReadOnly, nil
}
