// Package config loads the application configuration from an optional
// config.yaml with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Config is the root configuration of the application.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
	} `json:"env" yaml:"env"`

	Log Log `json:"log" yaml:"log"`

	Store StoreConfig `json:"store" yaml:"store"`
}

// Log defines logging configuration.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines policy toggles for the in-memory store.
type StoreConfig struct {
	// AllowForeignDishes disables the check that every order line item
	// belongs to the order's own restaurant. Off by default; the legacy
	// desktop application never checked this.
	AllowForeignDishes bool `json:"allowForeignDishes" yaml:"allowForeignDishes"`
}

// LoadWithEnv loads .yaml files through koanf, then applies environment
// variable overrides. A missing config file is not an error; the zero Config
// plus defaults is a valid setup for embedding the store as a library.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for the config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a key path and align each segment
			// with existing YAML keys.
			// Example: STORE_ALLOWFOREIGNDISHES -> store.allowForeignDishes
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the application configuration, applying defaults for anything
// the file and environment left unset.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = "fooddesk"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment matches a lowercased env segment against the keys
// already loaded from YAML, so camelCase YAML keys survive env overrides.
func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	for key, value := range current {
		if strings.EqualFold(key, segment) {
			next, _ := value.(map[string]any)

			return key, next, true
		}
	}

	return "", nil, false
}
