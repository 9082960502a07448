// Package config loads fstree CLI configuration from YAML or TOML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fstree/errors"
	"github.com/jmgilman/go/fstree/fs/core"
	"github.com/jmgilman/go/fstree/tree"
)

// Format is a configuration file format.
type Format string

const (
	// FormatYAML is selected by the .yaml and .yml extensions.
	FormatYAML Format = "yaml"
	// FormatTOML is selected by the .toml extension.
	FormatTOML Format = "toml"
)

// Walk policy values accepted in walk.other.
const (
	OtherSkip   = "skip"
	OtherReject = "reject"
)

// Config is the CLI configuration.
type Config struct {
	LogLevel string        `yaml:"log_level" toml:"log_level"`
	Hash     HashConfig    `yaml:"hash" toml:"hash"`
	Walk     WalkConfig    `yaml:"walk" toml:"walk"`
	Archive  ArchiveConfig `yaml:"archive" toml:"archive"`
}

// HashConfig configures fingerprinting.
type HashConfig struct {
	Algorithm string `yaml:"algorithm" toml:"algorithm"` // "md5" (default) or "sha256"
}

// WalkConfig configures tree traversal.
type WalkConfig struct {
	Other string `yaml:"other" toml:"other"` // "skip" (default) or "reject"
}

// ArchiveConfig configures archive creation.
type ArchiveConfig struct {
	Tool string `yaml:"tool" toml:"tool"` // overrides the platform archiver
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Hash:     HashConfig{Algorithm: string(tree.AlgorithmMD5)},
		Walk:     WalkConfig{Other: OtherSkip},
	}
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "unsupported config file extension"),
			"path", path)
	}
}

// Load reads and validates the config file at path from fsys. Values absent
// from the file keep their defaults.
func Load(fsys core.ReadFS, path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"failed to read config file", map[string]interface{}{"path": path})
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// Decode reads a config in the given format over the defaults and
// validates it. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode YAML config")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode TOML config")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.Newf(errors.CodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.Newf(errors.CodeInvalidConfig, "unsupported config format %q", string(format))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := tree.ParseAlgorithm(c.Hash.Algorithm); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid hash.algorithm")
	}
	if _, err := c.EntryPolicy(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// EntryPolicy returns the tree entry policy named by Walk.Other.
func (c *Config) EntryPolicy() (tree.EntryPolicy, error) {
	switch strings.ToLower(c.Walk.Other) {
	case "", OtherSkip:
		return tree.SkipOther, nil
	case OtherReject:
		return tree.RejectOther, nil
	default:
		return 0, errors.Newf(errors.CodeInvalidConfig,
			"invalid walk.other %q: must be %q or %q", c.Walk.Other, OtherSkip, OtherReject)
	}
}

// Options converts the configuration into tree options.
func (c *Config) Options() ([]tree.Option, error) {
	algorithm, err := tree.ParseAlgorithm(c.Hash.Algorithm)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid hash.algorithm")
	}
	policy, err := c.EntryPolicy()
	if err != nil {
		return nil, err
	}

	opts := []tree.Option{
		tree.WithAlgorithm(algorithm),
		tree.WithEntryPolicy(policy),
	}
	if c.Archive.Tool != "" {
		opts = append(opts, tree.WithTool(c.Archive.Tool))
	}
	return opts, nil
}

// String renders the configuration for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("log_level=%s hash.algorithm=%s walk.other=%s archive.tool=%s",
		c.LogLevel, c.Hash.Algorithm, c.Walk.Other, c.Archive.Tool)
}
