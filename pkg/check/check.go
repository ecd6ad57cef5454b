// Package check defines page-readiness checks and the runner that
// executes them against a browser session.
//
// A check navigates to a URL, optionally waits for a selector to become
// visible within a bounded timeout, optionally recovers from a first
// timeout by clicking a fallback element (a sign-in button, typically)
// and re-waiting with a longer bound, and finally captures a screenshot.
// Checks run sequentially on a single browser session.
package check

// Check is one page-readiness probe.
type Check struct {
	// Name identifies the check in results, logs, and the -run filter
	Name string

	// URL is the page to navigate to
	URL string

	// WaitUntil specifies when navigation is considered complete
	// ("load", "domcontentloaded", "networkidle"). Empty means "load".
	WaitUntil string

	// WaitFor is the selector that must become visible for the check to
	// pass. Playwright selector syntax (text="New Deployment" works).
	// Empty means the check passes as soon as navigation completes.
	WaitFor string

	// Timeout bounds the WaitFor wait, in milliseconds. Zero means the
	// session default.
	Timeout float64

	// Fallback, if set, is attempted when the first WaitFor wait times
	// out: click Fallback.Click, then re-wait for WaitFor.
	Fallback *Fallback

	// Screenshot is the PNG path written after the page is ready.
	// Empty disables capture.
	Screenshot string

	// Required marks the check as gating the run's exit status.
	Required bool
}

// Fallback describes the recovery interaction for a check whose first
// selector wait timed out.
type Fallback struct {
	// Click is the selector of the element to click (e.g. the
	// text="Sign in with GitHub" button)
	Click string

	// Timeout bounds the re-wait after the click, in milliseconds.
	// Zero means the check's own timeout.
	Timeout float64
}

// HasFallback reports whether the check can recover from a first
// wait timeout.
func (c *Check) HasFallback() bool {
	return c.Fallback != nil && c.Fallback.Click != ""
}

// FallbackTimeout returns the bound for the post-fallback re-wait.
func (c *Check) FallbackTimeout() float64 {
	if c.Fallback != nil && c.Fallback.Timeout > 0 {
		return c.Fallback.Timeout
	}
	return c.Timeout
}
