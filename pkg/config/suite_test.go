package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/pagecheck/pkg/browser"
)

// writeSuite writes a suite file into a temp dir and returns its path.
func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const sampleSuite = `
defaults:
  timeout_ms: 15000
  wait_until: networkidle
  output_dir: artifacts
  verbosity: verbose

checks:
  - name: dashboard
    url: http://localhost:3000/
    wait_for: text="New Deployment"
    timeout_ms: 10000
    fallback:
      click: text="Sign in with GitHub"
      timeout_ms: 60000
    screenshot: verification.png

  - name: render
    url: http://localhost:3004/
    screenshot: verification.png
    required: false
`

func TestLoad(t *testing.T) {
	suite, err := Load(writeSuite(t, sampleSuite))
	require.NoError(t, err)

	assert.Equal(t, 15000.0, suite.Defaults.TimeoutMS)
	assert.Equal(t, "networkidle", suite.Defaults.WaitUntil)
	assert.Equal(t, "artifacts", suite.Defaults.OutputDir)
	assert.Equal(t, "verbose", suite.Defaults.Verbosity)
	require.Len(t, suite.Checks, 2)

	// Per-check fields keep what the file says; unset ones stay zero
	// until BuildChecks resolves them against the defaults.
	assert.Equal(t, 10000.0, suite.Checks[0].TimeoutMS)
	assert.Empty(t, suite.Checks[0].WaitUntil)
	assert.Zero(t, suite.Checks[1].TimeoutMS)
}

func TestLoadAppliesDefaults(t *testing.T) {
	suite, err := Load(writeSuite(t, `
checks:
  - name: render
    url: http://localhost:3004/
`))
	require.NoError(t, err)

	assert.Equal(t, browser.DefaultTimeout, suite.Defaults.TimeoutMS)
	assert.Equal(t, "load", suite.Defaults.WaitUntil)
	assert.Equal(t, DefaultOutputDir, suite.Defaults.OutputDir)
	assert.Equal(t, DefaultVerbosity, suite.Defaults.Verbosity)
	assert.True(t, suite.Headless())

	checks := suite.BuildChecks()
	require.Len(t, checks, 1)
	assert.Equal(t, browser.DefaultTimeout, checks[0].Timeout)
	assert.Equal(t, "load", checks[0].WaitUntil)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeSuite(t, "checks: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse suite file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no checks",
			content: "defaults:\n  verbosity: normal\n",
			wantErr: "suite has no checks",
		},
		{
			name: "missing name",
			content: `
checks:
  - url: http://localhost:3000/
`,
			wantErr: "name is required",
		},
		{
			name: "missing url",
			content: `
checks:
  - name: dashboard
`,
			wantErr: "url is required",
		},
		{
			name: "duplicate names",
			content: `
checks:
  - name: dashboard
    url: http://localhost:3000/
  - name: dashboard
    url: http://localhost:3000/
`,
			wantErr: "duplicate check name",
		},
		{
			name: "bad wait_until",
			content: `
checks:
  - name: dashboard
    url: http://localhost:3000/
    wait_until: finished
`,
			wantErr: "invalid wait_until",
		},
		{
			name: "bad verbosity",
			content: `
defaults:
  verbosity: chatty
checks:
  - name: dashboard
    url: http://localhost:3000/
`,
			wantErr: "invalid defaults.verbosity",
		},
		{
			name: "fallback without wait_for",
			content: `
checks:
  - name: dashboard
    url: http://localhost:3000/
    fallback:
      click: text="Sign in"
`,
			wantErr: "fallback requires wait_for",
		},
		{
			name: "fallback without click",
			content: `
checks:
  - name: dashboard
    url: http://localhost:3000/
    wait_for: text="Ready"
    fallback:
      timeout_ms: 1000
`,
			wantErr: "fallback.click is required",
		},
		{
			name: "negative timeout",
			content: `
checks:
  - name: dashboard
    url: http://localhost:3000/
    timeout_ms: -1
`,
			wantErr: "timeout_ms cannot be negative",
		},
		{
			name: "bad viewport",
			content: `
defaults:
  viewport:
    width: 0
    height: 720
checks:
  - name: dashboard
    url: http://localhost:3000/
`,
			wantErr: "viewport dimensions must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSuite(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildChecks(t *testing.T) {
	suite, err := Load(writeSuite(t, sampleSuite))
	require.NoError(t, err)

	checks := suite.BuildChecks()
	require.Len(t, checks, 2)

	dashboard := checks[0]
	assert.Equal(t, "dashboard", dashboard.Name)
	assert.Equal(t, `text="New Deployment"`, dashboard.WaitFor)
	assert.Equal(t, 10000.0, dashboard.Timeout)
	assert.True(t, dashboard.Required, "required defaults to true")
	require.NotNil(t, dashboard.Fallback)
	assert.Equal(t, `text="Sign in with GitHub"`, dashboard.Fallback.Click)
	assert.Equal(t, 60000.0, dashboard.Fallback.Timeout)

	render := checks[1]
	assert.Empty(t, render.WaitFor)
	assert.False(t, render.Required)
	assert.Nil(t, render.Fallback)

	// Unset per-check fields inherit the suite defaults
	assert.Equal(t, 15000.0, render.Timeout)
	assert.Equal(t, "networkidle", render.WaitUntil)
	assert.Equal(t, "networkidle", dashboard.WaitUntil)
}

func TestBuildChecksDefaultOverrideKeepsExplicitBounds(t *testing.T) {
	suite, err := Load(writeSuite(t, sampleSuite))
	require.NoError(t, err)

	// Changing the default after load (the -timeout flag does this)
	// must not touch checks that set their own timeout_ms.
	suite.Defaults.TimeoutMS = 5000

	checks := suite.BuildChecks()
	require.Len(t, checks, 2)
	assert.Equal(t, 10000.0, checks[0].Timeout, "explicit bound kept")
	assert.Equal(t, 5000.0, checks[1].Timeout, "inherited bound follows the default")
}

// TestLoadExampleSuite keeps the shipped example suite loadable and its
// dashboard check on the settle-then-wait shape the harness is built for.
func TestLoadExampleSuite(t *testing.T) {
	suite, err := Load(filepath.Join("..", "..", "examples", "suite.yaml"))
	require.NoError(t, err)

	checks := suite.BuildChecks()
	require.Len(t, checks, 3)

	dashboard := checks[0]
	assert.Equal(t, "dashboard", dashboard.Name)
	assert.Equal(t, "networkidle", dashboard.WaitUntil)
	assert.Equal(t, 10000.0, dashboard.Timeout)
	require.NotNil(t, dashboard.Fallback)
	assert.Equal(t, 60000.0, dashboard.Fallback.Timeout)
}

func TestSessionOptions(t *testing.T) {
	suite, err := Load(writeSuite(t, `
defaults:
  headless: false
  viewport:
    width: 1400
    height: 900
checks:
  - name: render
    url: http://localhost:3004/
`))
	require.NoError(t, err)

	opts := suite.SessionOptions()
	assert.False(t, opts.Headless)
	require.NotNil(t, opts.Viewport)
	assert.Equal(t, 1400, opts.Viewport.Width)
	assert.Equal(t, 900, opts.Viewport.Height)
	assert.Equal(t, browser.DefaultTimeout, opts.Timeout)
}
