package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// CacheConfig configures the ResultCache.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
	Capacity   int `yaml:"capacity"`
}

// SearchConfig configures Search defaults.
type SearchConfig struct {
	DefaultLimit       int `yaml:"default_limit"`
	DefaultMaxDistance int `yaml:"default_max_distance"`
}

// LoggingConfig configures the logging package.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Console  bool   `yaml:"console"`
	FilePath string `yaml:"file_path"`
}

// Config is the full engine configuration document.
type Config struct {
	Cache            CacheConfig   `yaml:"cache"`
	Search           SearchConfig  `yaml:"search"`
	Logging          LoggingConfig `yaml:"logging"`
	SynonymPacksDir  string        `yaml:"synonym_packs_dir"`
}

// Default returns the documented defaults (spec §4.9, §6).
func Default() Config {
	return Config{
		Cache:  CacheConfig{TTLSeconds: 3600, Capacity: 1000},
		Search: SearchConfig{DefaultLimit: 10, DefaultMaxDistance: 4},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads and validates path (YAML), filling documented defaults for any
// zero-valued field it doesn't cover.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided config path
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Validate(data); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = defaults.Cache.TTLSeconds
	}
	if cfg.Cache.Capacity <= 0 {
		cfg.Cache.Capacity = defaults.Cache.Capacity
	}
	if cfg.Search.DefaultLimit <= 0 {
		cfg.Search.DefaultLimit = defaults.Search.DefaultLimit
	}
	if cfg.Search.DefaultMaxDistance < 0 {
		cfg.Search.DefaultMaxDistance = defaults.Search.DefaultMaxDistance
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
}

// Validate checks a YAML config document against the embedded schema
// (spec ambient "Configuration"), adapted from the teacher's
// schema.ValidateSchemaBytes compiler flow.
func Validate(yamlData []byte) error {
	var payload interface{}
	if err := yaml.Unmarshal(yamlData, &payload); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	normalized, err := normalizeToStringMap(payload)
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()
	const schemaURL = "mem://meilirank-config.json"
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func normalizeToStringMap(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			nv, err := normalizeToStringMap(val)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			strKey, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			nv, err := normalizeToStringMap(val)
			if err != nil {
				return nil, err
			}
			out[strKey] = nv
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			nv, err := normalizeToStringMap(elem)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
