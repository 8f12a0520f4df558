package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".matchdex"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads selectors and scorecard layout from a YAML file.
// Fields the file leaves unset keep their defaults, so a config file only
// has to name what actually changed.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cf := DefaultFile()
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, err
	}

	mergeDefaults(cf)
	return cf, nil
}

// mergeDefaults fills fields the YAML document cleared or omitted.
// yaml.Unmarshal into a pre-populated struct keeps absent mappings intact
// but an explicitly empty mapping zeroes its fields, so both cases land here.
func mergeDefaults(cf *File) {
	def := DefaultFile()

	if cf.Selectors.MatchBlock == "" {
		cf.Selectors.MatchBlock = def.Selectors.MatchBlock
	}
	if cf.Selectors.TeamName == "" {
		cf.Selectors.TeamName = def.Selectors.TeamName
	}
	if cf.Selectors.Score == "" {
		cf.Selectors.Score = def.Selectors.Score
	}
	if cf.Selectors.Result == "" {
		cf.Selectors.Result = def.Selectors.Result
	}

	fields := []struct {
		field *TextField
		def   TextField
	}{
		{&cf.Scorecard.TeamName, def.Scorecard.TeamName},
		{&cf.Scorecard.OpponentName, def.Scorecard.OpponentName},
		{&cf.Scorecard.SelfScore, def.Scorecard.SelfScore},
		{&cf.Scorecard.OpponentScore, def.Scorecard.OpponentScore},
		{&cf.Scorecard.Result, def.Scorecard.Result},
	}
	for _, f := range fields {
		if f.field.Size == 0 {
			*f.field = f.def
		}
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .matchdex in the current directory
//  3. Look for .matchdex in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
