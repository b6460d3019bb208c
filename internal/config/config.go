// Package config loads the default parser settings for the pinyinseg CLI
// from a YAML file. The library itself (package pinyinparser) never reads
// this package; Settings only seeds the builder defaults the CLI starts
// its Parser from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/pinyinseg"
)

// Settings mirrors the builder knobs on pinyinparser.Parser so the CLI
// can ship a default configuration instead of hardcoding flags.
type Settings struct {
	Strictness             string `yaml:"strictness"` // "strict", "strict-separate-curly-quote", or "loose"
	PreserveSpaces         bool   `yaml:"preserve_spaces"`
	PreservePunctuations   bool   `yaml:"preserve_punctuations"`
	PreserveMiscellaneous  bool   `yaml:"preserve_miscellaneous"`
	PreserveCapitalization bool   `yaml:"preserve_capitalization"`
}

// Default is used when no settings file exists.
func Default() Settings {
	return Settings{Strictness: "loose"}
}

// Load reads settings.yaml from dir. If the file does not exist, Default
// is returned without error.
func Load(dir string) (Settings, error) {
	path := filepath.Join(dir, "settings.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}
	return settings, nil
}

// Save writes settings to settings.yaml in dir, creating dir if needed.
func Save(dir string, settings Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out, err := yaml.Marshal(&settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Parser builds a pinyinparser.Parser from settings.
func (settings Settings) Parser() pinyinparser.Parser {
	p := pinyinparser.New().
		WithStrictness(settings.strictness()).
		PreserveSpaces(settings.PreserveSpaces).
		PreservePunctuations(settings.PreservePunctuations).
		PreserveMiscellaneous(settings.PreserveMiscellaneous).
		PreserveCapitalization(settings.PreserveCapitalization)
	return p
}

func (settings Settings) strictness() pinyinparser.Strictness {
	switch settings.Strictness {
	case "strict":
		return pinyinparser.Strict
	case "strict-separate-curly-quote":
		return pinyinparser.StrictSeparateCurlyQuote
	default:
		return pinyinparser.Loose
	}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pinyinseg"), nil
}
