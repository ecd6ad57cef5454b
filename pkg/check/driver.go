package check

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pagecheck/pkg/browser"
)

// Driver is the page-automation surface the runner needs. The production
// implementation wraps a browser.Session; tests substitute a fake.
type Driver interface {
	// Navigate loads url and blocks until the waitUntil state is reached
	Navigate(url, waitUntil string) error

	// WaitVisible blocks until the selector is visible or the timeout
	// (milliseconds) elapses. A timeout is reported as an error wrapping
	// ErrWaitTimeout.
	WaitVisible(selector string, timeout float64) error

	// Click clicks the element matching the selector
	Click(selector string, timeout float64) error

	// Screenshot writes a PNG of the current page to path
	Screenshot(path string) error

	// Title returns the current page title
	Title() (string, error)

	// PageHTML returns the serialized HTML of the current page, for
	// timeout diagnostics
	PageHTML() (string, error)
}

// sessionDriver adapts a browser.Session to the Driver interface.
type sessionDriver struct {
	session *browser.Session
}

// NewSessionDriver returns a Driver backed by the given browser session.
func NewSessionDriver(session *browser.Session) Driver {
	return &sessionDriver{session: session}
}

func (d *sessionDriver) Navigate(url, waitUntil string) error {
	return d.session.Navigate(url, browser.NavigateOptions{WaitUntil: waitUntil})
}

func (d *sessionDriver) WaitVisible(selector string, timeout float64) error {
	err := d.session.WaitFor(browser.WaitOptions{
		Selector: selector,
		State:    "visible",
		Timeout:  timeout,
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %v", ErrWaitTimeout, err)
	}
	return err
}

func (d *sessionDriver) Click(selector string, timeout float64) error {
	return d.session.Click(browser.ClickOptions{
		Selector: selector,
		Timeout:  timeout,
	})
}

func (d *sessionDriver) Screenshot(path string) error {
	return d.session.Screenshot(browser.ScreenshotOptions{Path: path})
}

func (d *sessionDriver) Title() (string, error) {
	return d.session.Title()
}

func (d *sessionDriver) PageHTML() (string, error) {
	return d.session.HTML()
}
