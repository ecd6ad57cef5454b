package browser

import (
	"strings"
	"testing"
)

func TestStartSessionRequiresInitialize(t *testing.T) {
	manager := NewManager()

	_, err := manager.StartSession("verification", SessionOptions{Headless: true})
	if err == nil {
		t.Fatal("expected error for uninitialized manager")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShutdownWithoutInitialize(t *testing.T) {
	manager := NewManager()
	if err := manager.Shutdown(); err != nil {
		t.Errorf("shutdown of uninitialized manager should be a no-op, got %v", err)
	}
}

func TestValidWaitState(t *testing.T) {
	for _, state := range []string{"", "attached", "detached", "visible", "hidden"} {
		if !ValidWaitState(state) {
			t.Errorf("ValidWaitState(%q) = false, want true", state)
		}
	}
	if ValidWaitState("present") {
		t.Error(`ValidWaitState("present") = true, want false`)
	}
}

func TestValidWaitUntil(t *testing.T) {
	for _, state := range []string{"", "load", "domcontentloaded", "networkidle"} {
		if !ValidWaitUntil(state) {
			t.Errorf("ValidWaitUntil(%q) = false, want true", state)
		}
	}
	if ValidWaitUntil("finished") {
		t.Error(`ValidWaitUntil("finished") = true, want false`)
	}
}
