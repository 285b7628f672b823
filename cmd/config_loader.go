package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/column/internal/config"
	"github.com/oakwood-commons/column/pkg/settings"
)

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() ([]byte, error)
}

var cfgLoader = configLoader{defaultConfig: loadDefaultConfigYAML}

func loadMergedConfig(cfgPath string) (config.File, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func loadDefaultConfigYAML() ([]byte, error) {
	data := config.DefaultConfigYAML()
	if len(data) == 0 {
		return nil, fmt.Errorf("embedded default config is empty")
	}
	return data, nil
}

func (l configLoader) loadMergedConfig(cfgPath string) (config.File, error) {
	defaultData, err := l.defaultConfig()
	if err != nil {
		return config.File{}, fmt.Errorf("load default config: %w", err)
	}
	cfg, err := decodeConfig(defaultData, "default.yaml")
	if err != nil {
		return config.File{}, fmt.Errorf("decode default config: %w", err)
	}
	if cfgPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, err
	}
	user, err := decodeConfig(data, cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", cfgPath, err)
	}
	return cfg.Merge(user), nil
}

// decodeConfig decodes TOML when name ends in .toml and YAML otherwise.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func decodeConfig(data []byte, name string) (config.File, error) {
	var f config.File
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return config.File{}, err
		}
		return f, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return config.File{}, err
	}
	return f, nil
}

// resolveConfigPath returns explicit if set, otherwise the first existing
// file among $XDG_CONFIG_HOME/column/config.{yaml,toml} (or
// ~/.config/column/config.{yaml,toml} when XDG_CONFIG_HOME is unset).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		candidate := filepath.Join(dir, settings.CliBinaryName, name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
