package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/congestionscan/internal/manic"
	"github.com/nao1215/congestionscan/internal/model"
	"github.com/nao1215/congestionscan/internal/viz"
)

// Default configuration values.
const (
	// DefaultMonths is the default lookback length. Five years of history
	// covers the full span of MANIC's assertion archive for most vantage
	// points. A "month" is a fixed 30-day window, not a calendar month.
	DefaultMonths = 60

	// AppName is the application name used for XDG directory paths.
	AppName = "congestionscan"

	// RunDirPrefix is the prefix of per-run output directories.
	RunDirPrefix = "congestion-"

	// RunDirTimeFormat is the timestamp layout used in run directory
	// names. Colons and spaces are avoided so the name is portable.
	RunDirTimeFormat = "2006-01-02-15-04-05"

	// DefaultSummaryFileName is the file name of the optional Markdown
	// run summary inside the run directory.
	DefaultSummaryFileName = "summary.md"
)

// Config holds all configuration options for congestionscan.
// This struct is populated from defaults, the optional config file, and CLI
// flags, then validated once before any query is issued. It is read-only
// afterwards.
type Config struct {
	// Months is the lookback length in 30-day windows.
	// Zero means no query is issued and every pair has zero events.
	Months int

	// APIBaseURL is the MANIC measurement API root.
	APIBaseURL string

	// VizBaseURL is the visualization dashboard address that derived
	// links are appended to.
	VizBaseURL string

	// Timeout is the per-request timeout for measurement queries and
	// name lookups.
	Timeout time.Duration

	// OutputDir is the directory the per-run "congestion-<timestamp>"
	// directory is created under. Defaults to the current directory.
	OutputDir string

	// NearNetworks are the networks reports are generated for, in
	// processing order.
	NearNetworks []model.Network

	// FarNetworks are the peer networks each near network is checked
	// against, in processing order. The reference behavior augments
	// this set with all near networks, which MergeNearIntoFar applies.
	FarNetworks []model.Network

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// KeepGoing narrows remote-failure scope from the whole run to the
	// failing (near, far) pair. Off by default: the reference behavior
	// aborts the entire run on the first remote error.
	KeepGoing bool

	// MarkdownSummary enables writing a Markdown run summary into the
	// run directory.
	MarkdownSummary bool

	// NoCache disables the persistent ASN-name cache for this run.
	NoCache bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .congestionscan in the current
	// directory and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values, including the
// built-in near-network and far-ASN tables.
func NewConfig() *Config {
	return &Config{
		Months:       DefaultMonths,
		APIBaseURL:   manic.DefaultBaseURL,
		VizBaseURL:   viz.DefaultBaseURL,
		Timeout:      manic.DefaultTimeout,
		OutputDir:    ".",
		NearNetworks: DefaultNearNetworks(),
		FarNetworks:  DefaultFarNetworks(),
	}
}

// XDGCacheDir returns the XDG cache directory for congestionscan.
// On Linux: ~/.cache/congestionscan
// On macOS: ~/Library/Caches/congestionscan
// On Windows: %LOCALAPPDATA%\congestionscan\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid; the first error
// found wins, since fixing one often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Months < 0 {
		return ErrInvalidMonths
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if len(c.NearNetworks) == 0 {
		return ErrNoNearNetworks
	}

	if len(c.FarNetworks) == 0 {
		return ErrNoFarNetworks
	}

	if c.APIBaseURL == "" {
		return ErrNoAPIBaseURL
	}

	return nil
}

// MergeNearIntoFar extends the far-network set with every near network not
// already present, preserving order: configured far networks first, then
// near networks in their configured order. Congestion between the operator
// networks themselves is as interesting as congestion toward content
// networks, so each near network is also checked as a peer.
func (c *Config) MergeNearIntoFar() []model.Network {
	merged := make([]model.Network, 0, len(c.FarNetworks)+len(c.NearNetworks))
	seen := make(map[string]bool, len(c.FarNetworks))

	for _, n := range c.FarNetworks {
		merged = append(merged, n)
		seen[n.ASN] = true
	}
	for _, n := range c.NearNetworks {
		if seen[n.ASN] {
			continue
		}
		merged = append(merged, n)
		seen[n.ASN] = true
	}

	return merged
}
