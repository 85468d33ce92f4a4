package main

import (
	"os"
	"testing"
)

// TestNewStepperRejectsNonTerminalFD exercises the error path NewStepper
// takes when handed a file descriptor that isn't a terminal (as happens
// under a test runner, with no tty attached) instead of panicking.
func TestNewStepperRejectsNonTerminalFD(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if _, err := NewStepper(nil, int(f.Fd())); err == nil {
		t.Fatalf("expected NewStepper to reject a non-terminal fd")
	}
}
