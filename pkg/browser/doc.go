// Package browser provides the headless browser layer for pagecheck,
// built on Playwright.
//
// The package is organized around two types:
//
//  1. Session: a Playwright browser instance with its context and page
//  2. Manager: owns the Playwright runtime and all active sessions
//
// A verification run acquires a single session, drives it through
// navigation, selector waits, clicks, and screenshots, and releases it
// through the manager when the run finishes. The manager guarantees
// cleanup on every exit path: callers defer Shutdown, which closes all
// sessions and stops the Playwright runtime.
//
// # Session Lifecycle
//
//  1. Initialize: install and start the Playwright runtime
//  2. StartSession: launch a Chromium instance with viewport/headless options
//  3. Use: Navigate, WaitFor, Click, Screenshot on the session
//  4. Shutdown: close everything, including sessions leaked by failed runs
//
// # Example Usage
//
//	manager := browser.NewManager()
//	if err := manager.Initialize(); err != nil {
//	    return err
//	}
//	defer manager.Shutdown()
//
//	session, err := manager.StartSession("verification", browser.SessionOptions{
//	    Headless: true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = session.Navigate("http://localhost:3000/", browser.NavigateOptions{
//	    WaitUntil: "load",
//	})
package browser
