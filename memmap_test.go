package main

import "testing"

func newTestMemoryMap() *MemoryMap {
	ic := &InterruptController{}
	ring := &TraceRing{}
	fb := NewFramebuffer()
	ppu := NewPPU(ic, fb)
	audio := &AudioRegs{}
	return NewMemoryMap([0x100]byte{}, nil, ppu, audio, ic, ring)
}

// requireMachineFault runs fn, expecting it to panic with a *MachineFault
// of the given kind, and returns the fault for further assertions.
func requireMachineFault(t *testing.T, kind FaultKind, fn func()) *MachineFault {
	t.Helper()
	var fault *MachineFault
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected a panic, got none")
			}
			f, ok := r.(*MachineFault)
			if !ok {
				t.Fatalf("expected *MachineFault, got %T: %v", r, r)
			}
			fault = f
		}()
		fn()
	}()
	if fault.Kind != kind {
		t.Fatalf("fault.Kind = %v, want %v", fault.Kind, kind)
	}
	return fault
}

func TestReadFromUnmappedAddressIsFatal(t *testing.T) {
	mem := newTestMemoryMap()
	fault := requireMachineFault(t, FaultMemory, func() {
		mem.Read(0xFEA0)
	})
	if fault.Addr != 0xFEA0 {
		t.Fatalf("fault.Addr = 0x%04X, want 0xFEA0", fault.Addr)
	}
}

func TestWriteToROMIsFatal(t *testing.T) {
	mem := newTestMemoryMap()
	requireMachineFault(t, FaultMemory, func() {
		mem.Write(0x0100, 0x00)
	})
}

func TestWriteToReadOnlyLYIsFatal(t *testing.T) {
	mem := newTestMemoryMap()
	requireMachineFault(t, FaultMemory, func() {
		mem.Write(0xFF44, 0x00)
	})
}

func TestIllegalBootROMUnmapValueIsFatal(t *testing.T) {
	mem := newTestMemoryMap()
	requireMachineFault(t, FaultMemory, func() {
		mem.Write(0xFF50, 0x02)
	})
}

// TestMachineFaultCarriesTrace verifies the diagnostic contract: a fault
// raised after some instructions have run carries those instructions in
// its Trace snapshot, per the design's "diagnostic including the
// recent-execution ring buffer" requirement.
func TestMachineFaultCarriesTrace(t *testing.T) {
	mem := newTestMemoryMap()
	mem.ring.Push(InstructionExecution{Instr: Instruction{Op: OpNOP}})
	mem.ring.Push(InstructionExecution{Instr: Instruction{Op: OpNOP}})

	fault := requireMachineFault(t, FaultMemory, func() {
		mem.Read(0xFEA0)
	})
	if len(fault.Trace) != 2 {
		t.Fatalf("fault.Trace has %d entries, want 2", len(fault.Trace))
	}
}
