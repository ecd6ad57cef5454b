// Package config loads and validates pagecheck suite files.
//
// A suite file is YAML: suite-wide defaults plus a list of checks. Unset
// per-check fields inherit the defaults.
package config

import (
	"fmt"

	"github.com/entrhq/pagecheck/pkg/browser"
)

// Suite is the root of a pagecheck configuration file.
type Suite struct {
	// Defaults apply to every check that does not override them
	Defaults Defaults `yaml:"defaults"`

	// Checks are the page-readiness probes to run, in order
	Checks []CheckConfig `yaml:"checks"`
}

// Defaults holds suite-wide settings.
type Defaults struct {
	// Headless controls whether the browser runs without a window.
	// Nil means headless (the production default).
	Headless *bool `yaml:"headless"`

	// Viewport sets the browser viewport for the run
	Viewport *ViewportConfig `yaml:"viewport"`

	// TimeoutMS bounds selector waits, in milliseconds
	TimeoutMS float64 `yaml:"timeout_ms"`

	// WaitUntil is the navigation completion state
	// ("load", "domcontentloaded", "networkidle")
	WaitUntil string `yaml:"wait_until"`

	// OutputDir is where run artifacts (run.json, summary.md) are written
	OutputDir string `yaml:"output_dir"`

	// Verbosity controls logging: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity"`
}

// ViewportConfig sets the browser viewport dimensions.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CheckConfig describes one check in the suite file.
type CheckConfig struct {
	// Name identifies the check; required and unique within the suite
	Name string `yaml:"name"`

	// URL is the page under verification; required
	URL string `yaml:"url"`

	// WaitFor is the readiness selector. Playwright selector syntax,
	// e.g. `text="New Deployment"` or `#content`. Empty means the check
	// passes on navigation alone.
	WaitFor string `yaml:"wait_for"`

	// TimeoutMS bounds the WaitFor wait; zero inherits the default
	TimeoutMS float64 `yaml:"timeout_ms"`

	// WaitUntil overrides the navigation completion state
	WaitUntil string `yaml:"wait_until"`

	// Screenshot is the PNG output path; empty disables capture
	Screenshot string `yaml:"screenshot"`

	// Fallback is the recovery interaction for a first wait timeout
	Fallback *FallbackConfig `yaml:"fallback"`

	// Required marks the check as gating the exit code. Nil means true.
	Required *bool `yaml:"required"`
}

// FallbackConfig describes the recovery click for a check.
type FallbackConfig struct {
	// Click is the selector of the element to click
	Click string `yaml:"click"`

	// TimeoutMS bounds the re-wait after the click
	TimeoutMS float64 `yaml:"timeout_ms"`
}

// Default suite settings
const (
	DefaultOutputDir = "pagecheck-artifacts"
	DefaultVerbosity = "normal"
)

// DefaultSuite returns a suite with production defaults and no checks.
func DefaultSuite() *Suite {
	return &Suite{
		Defaults: Defaults{
			TimeoutMS: browser.DefaultTimeout,
			WaitUntil: "load",
			OutputDir: DefaultOutputDir,
			Verbosity: DefaultVerbosity,
		},
	}
}

// Validate checks the suite for configuration errors.
func (s *Suite) Validate() error {
	if len(s.Checks) == 0 {
		return fmt.Errorf("suite has no checks")
	}

	if s.Defaults.TimeoutMS < 0 {
		return fmt.Errorf("defaults.timeout_ms cannot be negative")
	}
	if !browser.ValidWaitUntil(s.Defaults.WaitUntil) {
		return fmt.Errorf("invalid defaults.wait_until: %s (must be 'load', 'domcontentloaded', or 'networkidle')", s.Defaults.WaitUntil)
	}
	if !validVerbosity(s.Defaults.Verbosity) {
		return fmt.Errorf("invalid defaults.verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", s.Defaults.Verbosity)
	}
	if s.Defaults.Viewport != nil {
		if s.Defaults.Viewport.Width <= 0 || s.Defaults.Viewport.Height <= 0 {
			return fmt.Errorf("defaults.viewport dimensions must be positive")
		}
	}

	seen := make(map[string]bool, len(s.Checks))
	for i, c := range s.Checks {
		if err := c.validate(); err != nil {
			return fmt.Errorf("check %d (%s): %w", i, c.Name, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate check name: %s", c.Name)
		}
		seen[c.Name] = true
	}

	return nil
}

// validate checks a single check entry.
func (c *CheckConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms cannot be negative")
	}
	if !browser.ValidWaitUntil(c.WaitUntil) {
		return fmt.Errorf("invalid wait_until: %s (must be 'load', 'domcontentloaded', or 'networkidle')", c.WaitUntil)
	}
	if c.Fallback != nil {
		if c.WaitFor == "" {
			return fmt.Errorf("fallback requires wait_for")
		}
		if c.Fallback.Click == "" {
			return fmt.Errorf("fallback.click is required")
		}
		if c.Fallback.TimeoutMS < 0 {
			return fmt.Errorf("fallback.timeout_ms cannot be negative")
		}
	}
	return nil
}

func validVerbosity(v string) bool {
	switch v {
	case "", "quiet", "normal", "verbose", "debug":
		return true
	}
	return false
}
