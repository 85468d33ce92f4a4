package main

import "testing"

func newTestDriver() (*Driver, *cpuTestRig) {
	r := newCPUTestRig()
	d := NewDriver(r.cpu, r.ppu, &AudioRegs{}, r.cpu.Ring)
	return d, r
}

func TestDriverAdvancesPPUByFourTimesCycles(t *testing.T) {
	d, r := newTestDriver()
	r.load(0x0100, []byte{0x00}) // NOP: 1 machine cycle
	before := r.ppu.t
	d.RunTick()
	if r.ppu.t-before != 4 {
		t.Fatalf("PPU advanced by %d clock ticks, want 4 (1 machine cycle * 4)", r.ppu.t-before)
	}
}

func TestDriverPushesExecutionIntoSharedRing(t *testing.T) {
	d, r := newTestDriver()
	r.load(0x0100, []byte{0x00})
	d.RunTick()
	last := d.Ring.Last(1)
	if len(last) != 1 || last[0].Instr.Op != OpNOP {
		t.Fatalf("expected the ring to hold the executed NOP")
	}
}
