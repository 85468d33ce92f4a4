// stepper.go - a raw-mode single-keypress step debugger: each keypress on
// stdin advances the driver by one tick and prints the instruction that
// ran. Grounded on terminal_host.go's MakeRaw/Restore pairing and its
// blocking-read-in-a-goroutine shape, simplified here to a synchronous
// read-step-print loop since stepping is inherently request/response
// rather than a free-running byte stream.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Stepper drives a Driver one tick at a time, gated on a keypress from an
// open terminal file descriptor. Instantiated from main.go's run -step
// path for interactive use; tests call Driver.RunTick directly instead,
// since stepping needs a real terminal file descriptor.
type Stepper struct {
	driver   *Driver
	fd       int
	oldState *term.State
}

// NewStepper puts fd (expected to be os.Stdin's descriptor) into raw mode
// and returns a Stepper bound to driver.
func NewStepper(driver *Driver, fd int) (*Stepper, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("stepper: failed to set raw mode: %w", err)
	}
	return &Stepper{driver: driver, fd: fd, oldState: oldState}, nil
}

// Close restores the terminal to its prior mode.
func (s *Stepper) Close() error {
	return term.Restore(s.fd, s.oldState)
}

// Run blocks reading single bytes from stdin; each one steps the driver by
// one tick and prints the instruction executed. 'q' exits the loop.
func (s *Stepper) Run() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if buf[0] == 'q' {
			return
		}
		exec := s.driver.RunTick()
		fmt.Printf("t=%-10d %s\r\n", exec.TAfter, exec.Instr)
	}
}
