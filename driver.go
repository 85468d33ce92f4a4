// driver.go - the outer per-tick scheduler: CPU.tick, trace ring push, PPU
// cycles, real-time pacing, periodic trace dump. Grounded on
// cpu_z80.go's Execute() loop and its perfStartTime/lastPerfReport pacing
// fields, repurposed from instructions-per-second reporting to the
// wall-clock lag detection §4.7 calls for.

package main

import (
	"fmt"
	"time"
)

const (
	pacingCheckInterval = 4096
	pacingTolerance     = 8 * time.Millisecond
	nominalHz           = 1_000_000 // nominal machine-cycle rate the pacer targets
	traceDumpInterval   = 500_000
	traceDumpLines      = 32
)

// Driver owns the CPU, PPU, audio register file and trace ring, and runs
// the combined tick loop.
type Driver struct {
	CPU   *CPU
	PPU   *PPU
	Audio *AudioRegs
	Ring  *TraceRing

	// Hook, if set, runs alongside the periodic trace dump (every
	// traceDumpInterval ticks). main wires it to whatever debug output the
	// run subcommand's flags requested (clipboard trace copy, PNG frame
	// dump); nil by default, so plain runs pay nothing extra.
	Hook func(d *Driver)

	ticks      uint64
	startWall  time.Time
	lastPacing time.Time
	Lagging    bool
}

// NewDriver wires a Driver to an already-constructed CPU/PPU/Audio/Ring
// set (the MemoryMap, once built, already references the PPU and Audio
// instances passed here; the driver advances the PPU, and the audio
// register file has no per-cycle state to advance).
func NewDriver(cpu *CPU, ppu *PPU, audio *AudioRegs, ring *TraceRing) *Driver {
	return &Driver{CPU: cpu, PPU: ppu, Audio: audio, Ring: ring}
}

// RunTick performs one CPU.tick, advances the PPU by the resulting cycle
// count in clock ticks (the audio register file is not advanced: it is
// storage only), and applies real-time
// pacing and periodic trace dumps. It is the body of the outer loop
// described in §4.7.
func (d *Driver) RunTick() InstructionExecution {
	if d.startWall.IsZero() {
		d.startWall = time.Now()
		d.lastPacing = d.startWall
	}

	exec := d.CPU.Tick()
	cycles := exec.TAfter - exec.TBefore

	for i := uint64(0); i < cycles*4; i++ {
		d.PPU.VideoCycle()
	}

	d.ticks++
	if d.ticks%pacingCheckInterval == 0 {
		d.applyPacing()
	}
	if d.ticks%traceDumpInterval == 0 {
		d.dumpTrace()
		if d.Hook != nil {
			d.Hook(d)
		}
	}

	return exec
}

// applyPacing compares the nominal elapsed time (at nominalHz machine
// cycles per second) against the wall clock; if the emulator is ahead by
// more than the tolerance it sleeps, and if it is behind it marks the
// trace lagging instead of trying to catch up by skipping work.
func (d *Driver) applyPacing() {
	nominalElapsed := time.Duration(float64(d.CPU.Regs.t) / nominalHz * float64(time.Second))
	wallElapsed := time.Since(d.startWall)
	drift := nominalElapsed - wallElapsed

	if drift > pacingTolerance {
		time.Sleep(drift)
		d.Lagging = false
	} else if -drift > pacingTolerance {
		d.Lagging = true
	} else {
		d.Lagging = false
	}
}

// dumpTrace prints the most recent trace entries, matching §4.7's
// "every ~500k ticks, print the last 32 trace entries."
func (d *Driver) dumpTrace() {
	for _, e := range d.Ring.Last(traceDumpLines) {
		fmt.Printf("t=%-10d %s\n", e.TAfter, e.Instr)
	}
}
