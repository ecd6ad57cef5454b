// Package main provides the pagecheck CLI, a headless-browser page
// verification harness. It runs a suite of page-readiness checks —
// navigate, wait for a selector, optionally recover via a fallback click,
// capture a screenshot — and writes run artifacts for CI consumption.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/pagecheck/pkg/artifact"
	"github.com/entrhq/pagecheck/pkg/browser"
	"github.com/entrhq/pagecheck/pkg/check"
	"github.com/entrhq/pagecheck/pkg/config"
	"github.com/entrhq/pagecheck/pkg/logging"
)

const version = "0.1.0" // Version of the pagecheck harness

// sessionName is the single browser session a run uses
const sessionName = "verification"

// errChecksFailed signals a completed run with failing required checks,
// distinguishing exit code 1 from harness errors.
var errChecksFailed = errors.New("one or more required checks failed")

// Config holds the application configuration
type Config struct {
	SuitePath   string
	RunFilter   string
	Headed      bool
	OutputDir   string
	TimeoutMS   float64
	Verbosity   string
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("pagecheck v%s\n", version)
		return
	}

	if err := config.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintf(os.Stderr, "pagecheck: %v\n", err)
		}
		os.Exit(1)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.SuitePath, "config", "", "Path to the suite file (YAML, required)")
	flag.StringVar(&config.RunFilter, "run", "", "Glob over check names; only matching checks run")
	flag.BoolVar(&config.Headed, "headed", false, "Run the browser with a visible window")
	flag.StringVar(&config.OutputDir, "output", "", "Artifact output directory (overrides suite setting)")
	flag.Float64Var(&config.TimeoutMS, "timeout", 0, "Default selector wait bound in milliseconds (overrides the suite default; checks with an explicit timeout_ms keep it)")
	flag.StringVar(&config.Verbosity, "verbosity", "", "Logging verbosity: quiet, normal, verbose, debug (overrides suite setting)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pagecheck - headless browser page verification\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pagecheck -config suite.yaml [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pagecheck -config suite.yaml\n")
		fmt.Fprintf(os.Stderr, "  pagecheck -config suite.yaml -run 'dashboard*'\n")
		fmt.Fprintf(os.Stderr, "  pagecheck -config suite.yaml -headed -verbosity debug\n")
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  all required checks passed\n")
		fmt.Fprintf(os.Stderr, "  1  a required check failed or the run errored\n")
		fmt.Fprintf(os.Stderr, "  2  invalid invocation\n")
	}

	flag.Parse()
	return config
}

// validate checks that the configuration is valid
func (c *Config) validate() error {
	if c.SuitePath == "" {
		return fmt.Errorf("a suite file is required (use -config flag)")
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// run executes the verification suite
func run(ctx context.Context, config *Config) error {
	suite, err := config.loadSuite()
	if err != nil {
		return err
	}

	logger, logErr := logging.NewLogger("pagecheck", logging.ParseLevel(suite.Defaults.Verbosity))
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", logErr)
	}
	defer logger.Close()

	checks, err := config.selectChecks(suite)
	if err != nil {
		return err
	}

	writer := artifact.NewWriter(suite.Defaults.OutputDir)
	if err := writer.EnsureDir(); err != nil {
		return err
	}
	for i := range checks {
		if checks[i].Screenshot == "" {
			continue
		}
		resolved, resolveErr := writer.ResolveScreenshot(checks[i].Screenshot)
		if resolveErr != nil {
			return resolveErr
		}
		checks[i].Screenshot = resolved
	}

	logger.Infof("starting run: %d checks, headless=%v", len(checks), !config.Headed)

	manager := browser.NewManager()
	if err := manager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize browser runtime: %w", err)
	}
	// Sessions and the Playwright runtime are released on every path,
	// including failed runs and cancellation.
	defer manager.Shutdown()

	sessionOpts := suite.SessionOptions()
	if config.Headed {
		sessionOpts.Headless = false
	}
	session, err := manager.StartSession(sessionName, sessionOpts)
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}

	runner := check.NewRunner(
		check.NewSessionDriver(session),
		check.WithLogger(logger),
		check.WithProgress(os.Stdout),
	)

	summary := runner.Run(ctx, checks)

	if err := writer.WriteAll(summary); err != nil {
		logger.Errorf("failed to write artifacts: %v", err)
		return err
	}

	fmt.Printf("\n%d passed, %d failed, %d errored — artifacts in %s\n",
		summary.Passed, summary.Failed, summary.Errored, suite.Defaults.OutputDir)
	logger.Infof("run finished: passed=%d failed=%d errored=%d ok=%v",
		summary.Passed, summary.Failed, summary.Errored, summary.Ok())

	if !summary.Ok() {
		return errChecksFailed
	}
	return nil
}

// loadSuite loads the suite file and applies CLI overrides.
func (c *Config) loadSuite() (*config.Suite, error) {
	suite, err := config.Load(c.SuitePath)
	if err != nil {
		return nil, err
	}

	if c.OutputDir != "" {
		suite.Defaults.OutputDir = c.OutputDir
	}
	if c.Verbosity != "" {
		suite.Defaults.Verbosity = c.Verbosity
	}
	if c.TimeoutMS > 0 {
		// Only the default changes; checks with an explicit timeout_ms
		// keep their own bound.
		suite.Defaults.TimeoutMS = c.TimeoutMS
	}

	return suite, nil
}

// selectChecks builds the runnable checks and applies the -run filter.
func (c *Config) selectChecks(suite *config.Suite) ([]check.Check, error) {
	return check.Filter(suite.BuildChecks(), c.RunFilter)
}
