package main

import "testing"

func TestAudioRegsReadWrite(t *testing.T) {
	var a AudioRegs
	a.Write(0x00, 0x80)
	a.Write(0x16, 0xFF)
	if got := a.Read(0x00); got != 0x80 {
		t.Fatalf("Read(0x00) = 0x%02X, want 0x80", got)
	}
	if got := a.Read(0x16); got != 0xFF {
		t.Fatalf("Read(0x16) = 0x%02X, want 0xFF", got)
	}
	if got := a.Read(0x01); got != 0x00 {
		t.Fatalf("unwritten register should read zero, got 0x%02X", got)
	}
}

func TestAudioRegsOutOfRangeOffsetIsSafe(t *testing.T) {
	var a AudioRegs
	if got := a.Read(0xFF); got != 0x00 {
		t.Fatalf("out-of-range Read should return 0, got 0x%02X", got)
	}
	a.Write(0xFF, 0x42) // must not panic; logged and discarded
}
