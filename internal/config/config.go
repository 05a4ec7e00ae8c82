// Package config loads genesearch settings from defaults, a YAML file,
// GENESEARCH_* environment variables and command-line flags.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GENESEARCH_"

// Dataset formats.
const (
	FormatAuto   = "auto"
	FormatTSV    = "tsv"
	FormatSQLite = "sqlite"
)

// Defaults.
const (
	DefaultTitle     = "Genetic Searching"
	DefaultRuleWidth = 74
	DefaultTable     = "records"
	DefaultFormat    = "text"
)

// ValidOutputFormats lists the report formats.
var ValidOutputFormats = []string{"text", "json"}

// ValidDatasetFormats lists the dataset source formats.
var ValidDatasetFormats = []string{FormatAuto, FormatTSV, FormatSQLite}

// configFileNames are searched for in the working directory.
var configFileNames = []string{"genesearch.yaml", "genesearch.yml"}

// BannerConfig controls the header of the text report.
type BannerConfig struct {
	Title     string `koanf:"title"`
	Author    string `koanf:"author"`
	RuleWidth int    `koanf:"rule_width"`
}

// Config holds all CLI configuration options.
type Config struct {
	Dataset       string       `koanf:"dataset"`
	DatasetFormat string       `koanf:"dataset_format"`
	SQLiteTable   string       `koanf:"sqlite_table"`
	Commands      string       `koanf:"commands"`
	Output        string       `koanf:"output"`
	Format        string       `koanf:"format"`
	Verbose       bool         `koanf:"verbose"`
	Banner        BannerConfig `koanf:"banner"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

// findConfigFile returns explicit if set, otherwise the first default
// config file present in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config. cfgFile may be empty; flags may be nil.
// Only flags the user explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dataset_format":    FormatAuto,
		"sqlite_table":      DefaultTable,
		"format":            DefaultFormat,
		"verbose":           false,
		"banner.title":      DefaultTitle,
		"banner.author":     "",
		"banner.rule_width": DefaultRuleWidth,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: GENESEARCH_DATASET_FORMAT -> dataset_format,
	// GENESEARCH_BANNER_TITLE -> banner.title
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return keyFor(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := keyFor(strings.ReplaceAll(f.Name, "-", "_"))
			switch key {
			case "config":
				return "", nil
			case "table":
				key = "sqlite_table"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// keyFor maps a flat snake_case name to its koanf key.
func keyFor(name string) string {
	if rest, ok := strings.CutPrefix(name, "banner_"); ok {
		return "banner." + rest
	}
	return name
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(ValidOutputFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidOutputFormats)
	}
	if !slices.Contains(ValidDatasetFormats, c.DatasetFormat) {
		return fmt.Errorf("invalid dataset format %q: must be one of %v", c.DatasetFormat, ValidDatasetFormats)
	}
	if c.Banner.RuleWidth < 0 {
		return fmt.Errorf("invalid banner rule width %d", c.Banner.RuleWidth)
	}
	return nil
}

// ResolveDatasetFormat returns tsv or sqlite for the configured dataset.
// In auto mode, .db, .sqlite and .sqlite3 files are SQLite; anything else is TSV.
func (c *Config) ResolveDatasetFormat() string {
	if c.DatasetFormat != FormatAuto && c.DatasetFormat != "" {
		return c.DatasetFormat
	}
	switch strings.ToLower(filepath.Ext(c.Dataset)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatTSV
	}
}
