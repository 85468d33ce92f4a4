package main

import "testing"

func TestCopyTraceToClipboardDoesNotPanicHeadless(t *testing.T) {
	ring := &TraceRing{}
	ring.Push(InstructionExecution{Instr: Instruction{Op: OpNOP}})
	// The clipboard backend is unavailable in a headless test environment;
	// copyTraceToClipboard must report that rather than panicking.
	_ = copyTraceToClipboard(ring, 1)
}
