package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/entrhq/pagecheck/pkg/browser"
	"github.com/entrhq/pagecheck/pkg/logging"
)

// Runner executes checks sequentially against a single driver.
type Runner struct {
	driver   Driver
	logger   *logging.Logger
	progress io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's debug logger.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithProgress sets the writer for human-readable progress lines.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

// NewRunner creates a runner over the given driver.
func NewRunner(driver Driver, opts ...Option) *Runner {
	r := &Runner{
		driver:   driver,
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every check in order and returns the aggregated summary.
// Cancelling the context stops the run between checks; already-collected
// results are kept so the artifact writer can still report partial runs.
func (r *Runner) Run(ctx context.Context, checks []Check) *Summary {
	summary := &Summary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}

	for _, c := range checks {
		if ctx.Err() != nil {
			summary.add(Result{
				Name:     c.Name,
				URL:      c.URL,
				Status:   StatusError,
				Required: c.Required,
				Error:    fmt.Sprintf("run cancelled: %v", ctx.Err()),
			})
			continue
		}
		summary.add(r.runOne(c))
	}

	summary.FinishedAt = time.Now()
	return summary
}

// runOne executes a single check: navigate, wait, recover, screenshot.
func (r *Runner) runOne(c Check) Result {
	start := time.Now()
	result := Result{
		Name:     c.Name,
		URL:      c.URL,
		Status:   StatusPassed,
		Required: c.Required,
	}

	r.printf("%s: checking %s", c.Name, c.URL)
	r.debugf("check %s: navigate url=%s wait_until=%s", c.Name, c.URL, c.WaitUntil)

	if err := r.driver.Navigate(c.URL, c.WaitUntil); err != nil {
		result.Status = StatusError
		result.Error = fmt.Sprintf("navigation failed: %v", err)
		result.Duration = time.Since(start)
		r.printf("%s: error: %v", c.Name, err)
		return result
	}

	if c.WaitFor != "" {
		if failed := r.waitReady(c, &result); failed {
			result.Duration = time.Since(start)
			return result
		}
	}

	// Title is best-effort metadata on a ready page
	if title, titleErr := r.driver.Title(); titleErr == nil {
		result.Title = title
	} else {
		r.debugf("check %s: title unavailable: %v", c.Name, titleErr)
	}

	if c.Screenshot != "" {
		r.debugf("check %s: screenshot path=%s", c.Name, c.Screenshot)
		if err := r.driver.Screenshot(c.Screenshot); err != nil {
			result.Status = StatusError
			result.Error = fmt.Sprintf("screenshot failed: %v", err)
			result.Duration = time.Since(start)
			r.printf("%s: error: %v", c.Name, err)
			return result
		}
		result.Screenshot = c.Screenshot
	}

	result.Duration = time.Since(start)
	r.printf("%s: passed (%s)", c.Name, result.Duration.Round(time.Millisecond))
	return result
}

// waitReady performs the readiness wait with the fallback branch. It
// fills in the result and returns true when the check is finished
// (failed or errored); the caller continues to the screenshot otherwise.
func (r *Runner) waitReady(c Check, result *Result) (done bool) {
	err := r.driver.WaitVisible(c.WaitFor, c.Timeout)
	if err == nil {
		r.printf("%s: already ready", c.Name)
		return false
	}

	if !errors.Is(err, ErrWaitTimeout) {
		result.Status = StatusError
		result.Error = fmt.Sprintf("wait failed: %v", err)
		r.printf("%s: error: %v", c.Name, err)
		return true
	}

	if !c.HasFallback() {
		r.failTimeout(c, result, err)
		return true
	}

	r.printf("%s: not ready, attempting fallback click", c.Name)
	r.debugf("check %s: fallback click=%s", c.Name, c.Fallback.Click)

	if clickErr := r.driver.Click(c.Fallback.Click, c.Timeout); clickErr != nil {
		result.Status = StatusError
		result.Error = fmt.Sprintf("fallback click failed: %v", clickErr)
		r.printf("%s: error: %v", c.Name, clickErr)
		return true
	}

	if retryErr := r.driver.WaitVisible(c.WaitFor, c.FallbackTimeout()); retryErr != nil {
		if errors.Is(retryErr, ErrWaitTimeout) {
			r.failTimeout(c, result, retryErr)
		} else {
			result.Status = StatusError
			result.Error = fmt.Sprintf("wait failed: %v", retryErr)
			r.printf("%s: error: %v", c.Name, retryErr)
		}
		return true
	}

	result.FallbackUsed = true
	return false
}

// failTimeout marks the result failed and attaches a snapshot of the
// page's interactive elements so the operator can see what rendered
// instead of the expected selector.
func (r *Runner) failTimeout(c Check, result *Result, err error) {
	result.Status = StatusFailed
	result.Error = err.Error()
	result.Diagnostics = r.diagnose()
	r.printf("%s: failed: %v", c.Name, err)
}

// diagnose captures the interactive-element snapshot of the current page.
// Diagnostics are best-effort: any error here is logged and swallowed.
func (r *Runner) diagnose() string {
	rawHTML, err := r.driver.PageHTML()
	if err != nil {
		r.debugf("diagnostics: page HTML unavailable: %v", err)
		return ""
	}

	snap, err := browser.SnapshotPage(rawHTML)
	if err != nil {
		r.debugf("diagnostics: snapshot failed: %v", err)
		return ""
	}
	return snap.String()
}

func (r *Runner) printf(format string, v ...interface{}) {
	fmt.Fprintf(r.progress, format+"\n", v...)
	if r.logger != nil {
		r.logger.Infof(format, v...)
	}
}

func (r *Runner) debugf(format string, v ...interface{}) {
	if r.logger != nil {
		r.logger.Debugf(format, v...)
	}
}
