package browser

import (
	"github.com/playwright-community/playwright-go"
)

// Session represents an active browser session with its associated resources.
type Session struct {
	// Name is the unique identifier for this session
	Name string

	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated session)
	Context playwright.BrowserContext

	// Page is the current active page
	Page playwright.Page

	// Headless indicates if the browser is running in headless mode
	Headless bool

	// CurrentURL is the URL of the current page
	CurrentURL string
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for operations (in milliseconds)
	Timeout float64
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// WaitOptions configures selector waits.
type WaitOptions struct {
	// Selector to wait for. Playwright selector syntax, so both CSS
	// selectors and text selectors (text="Sign in") work.
	Selector string

	// State to wait for: "attached", "detached", "visible", "hidden".
	// Empty means "visible".
	State string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// ClickOptions configures element clicking behavior.
type ClickOptions struct {
	// Selector identifies the element to click
	Selector string

	// Timeout in milliseconds
	Timeout float64
}

// ScreenshotOptions configures screenshot capture.
type ScreenshotOptions struct {
	// Path is the file path the PNG is written to. Parent directories
	// must already exist.
	Path string

	// FullPage captures the full scrollable page instead of the viewport
	FullPage bool
}

// Default values for session and operation settings
const (
	DefaultTimeout        = 30000.0 // 30 seconds in milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// ValidWaitState reports whether s is a state WaitFor understands.
func ValidWaitState(s string) bool {
	switch s {
	case "", "attached", "detached", "visible", "hidden":
		return true
	}
	return false
}

// ValidWaitUntil reports whether s is a navigation wait state Navigate understands.
func ValidWaitUntil(s string) bool {
	switch s {
	case "", "load", "domcontentloaded", "networkidle":
		return true
	}
	return false
}
