package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the langmerge configuration.
type Config struct {
	SourceRoots []string `json:"sourceRoots"`
	OutDir      string   `json:"outDir"`
	OutputName  string   `json:"outputName"`
	Manifest    string   `json:"manifest,omitempty"`
	Strict      bool     `json:"strict"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		SourceRoots: []string{"app/src", "src"},
		OutDir:      ".",
		OutputName:  "lang.json",
		Strict:      false,
	}
}

// ConfigDir returns the platform-appropriate config directory for langmerge.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "langmerge"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "langmerge"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "langmerge"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "langmerge"), nil
	default:
		return filepath.Join(home, ".config", "langmerge"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Origin identifies the layer that supplied a field's effective value.
type Origin string

const (
	OriginDefault Origin = "default"
	OriginFile    Origin = "file"
	OriginEnv     Origin = "env"
	OriginFlag    Origin = "flag"
)

// FieldKeys lists the config keys in display order. They double as the key
// names accepted by [SetField].
var FieldKeys = []string{"sourceRoots", "outDir", "outputName", "manifest", "strict"}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// A project .env file, if present, is folded into the environment first.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, _, err := LoadWithOrigins(overrides)
	return cfg, err
}

// LoadWithOrigins builds the effective config like [Load] and additionally
// reports, per field key, the layer that last changed that field's value. A
// layer re-asserting an identical value does not take over the origin.
func LoadWithOrigins(overrides map[string]string) (Config, map[string]Origin, error) {
	cfg := Default()
	origins := make(map[string]Origin, len(FieldKeys))
	for _, key := range FieldKeys {
		origins[key] = OriginDefault
	}
	prev := Values(cfg)

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, nil, err
	}
	mergeFile(&cfg, fileCfg)
	prev = markChanged(origins, prev, Values(cfg), OriginFile)
	mergeEnv(&cfg)
	prev = markChanged(origins, prev, Values(cfg), OriginEnv)
	mergeOverrides(&cfg, overrides)
	markChanged(origins, prev, Values(cfg), OriginFlag)

	return cfg, origins, nil
}

// Values renders each config field as a display string, keyed by the names in
// FieldKeys.
func Values(cfg Config) map[string]string {
	return map[string]string{
		"sourceRoots": strings.Join(cfg.SourceRoots, ","),
		"outDir":      cfg.OutDir,
		"outputName":  cfg.OutputName,
		"manifest":    cfg.Manifest,
		"strict":      strconv.FormatBool(cfg.Strict),
	}
}

func markChanged(origins map[string]Origin, prev, next map[string]string, layer Origin) map[string]string {
	for key, val := range next {
		if prev[key] != val {
			origins[key] = layer
		}
	}
	return next
}

func mergeFile(dst *Config, src Config) {
	if len(src.SourceRoots) > 0 {
		dst.SourceRoots = src.SourceRoots
	}
	if src.OutDir != "" {
		dst.OutDir = src.OutDir
	}
	if src.OutputName != "" {
		dst.OutputName = src.OutputName
	}
	if src.Manifest != "" {
		dst.Manifest = src.Manifest
	}
	dst.Strict = src.Strict || dst.Strict
}

func mergeEnv(cfg *Config) {
	// .env is optional; already-set environment variables win over its contents.
	_ = godotenv.Load()

	if v := os.Getenv("LANGMERGE_SOURCE_ROOTS"); v != "" {
		cfg.SourceRoots = SplitList(v)
	}
	if v := os.Getenv("LANGMERGE_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv("LANGMERGE_OUTPUT_NAME"); v != "" {
		cfg.OutputName = v
	}
	if v := os.Getenv("LANGMERGE_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := os.Getenv("LANGMERGE_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["sourceRoots"]; ok && v != "" {
		cfg.SourceRoots = SplitList(v)
	}
	if v, ok := overrides["outDir"]; ok && v != "" {
		cfg.OutDir = v
	}
	if v, ok := overrides["outputName"]; ok && v != "" {
		cfg.OutputName = v
	}
	if v, ok := overrides["manifest"]; ok && v != "" {
		cfg.Manifest = v
	}
	if v, ok := overrides["strict"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "sourceRoots":
		cfg.SourceRoots = SplitList(value)
	case "outDir":
		cfg.OutDir = value
	case "outputName":
		cfg.OutputName = value
	case "manifest":
		cfg.Manifest = value
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict must be a boolean: %w", err)
		}
		cfg.Strict = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SplitList splits a comma-separated list, trimming whitespace and dropping
// empty parts.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
