package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	playwrightOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		playwrightOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.Goto(url, playwrightOpts); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// WaitFor waits until the element matching the selector reaches the
// requested state, or the timeout elapses.
func (s *Session) WaitFor(opts WaitOptions) error {
	if opts.Selector == "" {
		return fmt.Errorf("selector is required for wait")
	}

	playwrightOpts := playwright.PageWaitForSelectorOptions{}

	state := opts.State
	if state == "" {
		state = "visible"
	}
	waitState := playwright.WaitForSelectorState(state)
	playwrightOpts.State = &waitState

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.WaitForSelector(opts.Selector, playwrightOpts); err != nil {
		return fmt.Errorf("wait failed: %w", err)
	}

	return nil
}

// Click clicks an element matching the selector.
func (s *Session) Click(opts ClickOptions) error {
	playwrightOpts := playwright.PageClickOptions{}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if err := s.Page.Click(opts.Selector, playwrightOpts); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}

	// Update current URL in case click caused navigation
	s.CurrentURL = s.Page.URL()
	return nil
}

// Screenshot captures the page to a PNG file at opts.Path.
func (s *Session) Screenshot(opts ScreenshotOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("path is required for screenshot")
	}

	playwrightOpts := playwright.PageScreenshotOptions{
		Path: playwright.String(opts.Path),
	}
	if opts.FullPage {
		playwrightOpts.FullPage = playwright.Bool(true)
	}

	if _, err := s.Page.Screenshot(playwrightOpts); err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}

	return nil
}

// Title returns the current page title.
func (s *Session) Title() (string, error) {
	return s.Page.Title()
}

// HTML returns the full serialized HTML of the current page.
func (s *Session) HTML() (string, error) {
	content, err := s.Page.Content()
	if err != nil {
		return "", fmt.Errorf("content extraction failed: %w", err)
	}
	return content, nil
}
