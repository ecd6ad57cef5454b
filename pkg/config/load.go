package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/pagecheck/pkg/browser"
	"github.com/entrhq/pagecheck/pkg/check"
)

// Load reads and validates a suite file, filling unset fields with
// defaults.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite := DefaultSuite()
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("failed to parse suite file: %w", err)
	}

	suite.applyDefaults()

	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite file: %w", err)
	}

	return suite, nil
}

// applyDefaults fills empty suite-level fields. Per-check fields stay as
// configured; checks that leave them unset inherit the defaults when the
// runnable checks are built, so later overrides of the defaults (the
// -timeout flag) never clobber an explicit per-check bound.
func (s *Suite) applyDefaults() {
	if s.Defaults.TimeoutMS == 0 {
		s.Defaults.TimeoutMS = browser.DefaultTimeout
	}
	if s.Defaults.WaitUntil == "" {
		s.Defaults.WaitUntil = "load"
	}
	if s.Defaults.OutputDir == "" {
		s.Defaults.OutputDir = DefaultOutputDir
	}
	if s.Defaults.Verbosity == "" {
		s.Defaults.Verbosity = DefaultVerbosity
	}
}

// Headless reports whether the run should use a headless browser.
func (s *Suite) Headless() bool {
	if s.Defaults.Headless == nil {
		return true
	}
	return *s.Defaults.Headless
}

// SessionOptions builds the browser session options for this suite.
func (s *Suite) SessionOptions() browser.SessionOptions {
	opts := browser.SessionOptions{
		Headless: s.Headless(),
		Timeout:  s.Defaults.TimeoutMS,
	}
	if s.Defaults.Viewport != nil {
		opts.Viewport = &browser.Viewport{
			Width:  s.Defaults.Viewport.Width,
			Height: s.Defaults.Viewport.Height,
		}
	}
	return opts
}

// BuildChecks converts the suite entries into runnable checks, filling
// unset per-check fields from the suite defaults.
func (s *Suite) BuildChecks() []check.Check {
	checks := make([]check.Check, 0, len(s.Checks))
	for _, c := range s.Checks {
		timeout := c.TimeoutMS
		if timeout == 0 {
			timeout = s.Defaults.TimeoutMS
		}
		waitUntil := c.WaitUntil
		if waitUntil == "" {
			waitUntil = s.Defaults.WaitUntil
		}

		built := check.Check{
			Name:       c.Name,
			URL:        c.URL,
			WaitUntil:  waitUntil,
			WaitFor:    c.WaitFor,
			Timeout:    timeout,
			Screenshot: c.Screenshot,
			Required:   c.Required == nil || *c.Required,
		}
		if c.Fallback != nil {
			built.Fallback = &check.Fallback{
				Click:   c.Fallback.Click,
				Timeout: c.Fallback.TimeoutMS,
			}
		}
		checks = append(checks, built)
	}
	return checks
}
