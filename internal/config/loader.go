package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/congestionscan/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".congestionscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. Every field is optional;
// absent fields keep their defaults.
//
// Example:
//
//	months: 24
//	networks:
//	  "7018": AT&T
//	  "7922": COMCAST
//	asns:
//	  "16509": AMAZON-02
//	  "40027": NETFLIX
type File struct {
	// Months overrides the lookback length. A pointer distinguishes an
	// explicit zero (query nothing) from an absent field.
	Months *int `yaml:"months"`

	// APIBaseURL overrides the measurement API root.
	APIBaseURL string `yaml:"api_base_url"`

	// VizBaseURL overrides the visualization dashboard address.
	VizBaseURL string `yaml:"viz_base_url"`

	// Networks replaces the built-in near-network table (ASN to name).
	Networks map[string]string `yaml:"networks"`

	// ASNs replaces the built-in far-ASN table (ASN to name).
	ASNs map[string]string `yaml:"asns"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the config file path was explicitly
// specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .congestionscan in the current directory
// 3. Look for .congestionscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homePath := filepath.Join(home, DefaultConfigFile)
	if _, err := os.Stat(homePath); err == nil {
		return homePath
	}

	return ""
}

// Apply overlays the file's settings onto the configuration.
// Network tables from YAML are maps, so they are ordered numerically by ASN
// to keep processing order deterministic across runs.
func (f *File) Apply(cfg *Config) {
	if f.Months != nil {
		cfg.Months = *f.Months
	}
	if f.APIBaseURL != "" {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if f.VizBaseURL != "" {
		cfg.VizBaseURL = f.VizBaseURL
	}
	if len(f.Networks) > 0 {
		cfg.NearNetworks = sortedNetworks(f.Networks)
	}
	if len(f.ASNs) > 0 {
		cfg.FarNetworks = sortedNetworks(f.ASNs)
	}
}

// sortedNetworks converts an ASN-to-name map into a slice ordered
// numerically by ASN (non-numeric ASNs sort last, lexicographically).
func sortedNetworks(m map[string]string) []model.Network {
	networks := make([]model.Network, 0, len(m))
	for asn, name := range m {
		networks = append(networks, model.Network{ASN: asn, Name: name})
	}

	sort.Slice(networks, func(i, j int) bool {
		a, aErr := strconv.Atoi(networks[i].ASN)
		b, bErr := strconv.Atoi(networks[j].ASN)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return networks[i].ASN < networks[j].ASN
		}
	})

	return networks
}
