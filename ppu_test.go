package main

import "testing"

func TestLYDerivedFromClock(t *testing.T) {
	p := NewPPU(&InterruptController{}, NewFramebuffer())
	for i := uint64(0); i < 4*clocksPerLine*linesPerFrame; i++ {
		p.VideoCycle()
		want := byte((p.t / clocksPerLine) % linesPerFrame)
		if p.LY != want {
			t.Fatalf("t=%d: LY = %d, want %d", p.t, p.LY, want)
		}
		if p.LY > 153 {
			t.Fatalf("t=%d: LY = %d out of range [0,153]", p.t, p.LY)
		}
	}
}

func TestVBlankRaisedAtLineZeroEdge(t *testing.T) {
	ic := &InterruptController{}
	p := NewPPU(ic, NewFramebuffer())
	for i := 0; i < clocksPerLine*linesPerFrame; i++ {
		p.VideoCycle()
	}
	if ic.IF&0x01 == 0 {
		t.Fatalf("IF bit 0 (V-Blank) should be set after one full frame of clocks")
	}
}

func TestTileDecodeRoundTrip(t *testing.T) {
	var pixels [8][8]byte
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pixels[r][c] = byte((r + c) % 4)
		}
	}
	encoded := encodeTile(pixels)

	p := &PPU{}
	copy(p.VRAM[:], encoded[:])
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			got := p.tilePixel(0, r, c)
			if got != pixels[r][c] {
				t.Fatalf("tilePixel(r=%d,c=%d) = %d, want %d", r, c, got, pixels[r][c])
			}
		}
	}

	reencoded := encodeTile(pixels)
	if reencoded != encoded {
		t.Fatalf("re-encoding the decoded pixels did not reproduce the original 16 bytes")
	}
}

func TestPaletteLookupStaysWithinFourLevels(t *testing.T) {
	p := &PPU{BGP: 0x1B} // 00 01 10 11 -> colour0=3 colour1=2 colour2=1 colour3=0
	want := []byte{3, 2, 1, 0}
	for colour := byte(0); colour < 4; colour++ {
		if got := p.paletteLookup(colour); got != want[colour] {
			t.Fatalf("paletteLookup(%d) = %d, want %d", colour, got, want[colour])
		}
		if got := p.paletteLookup(colour); got > 3 {
			t.Fatalf("paletteLookup(%d) = %d, out of the four brightness levels", colour, got)
		}
	}
}

func TestCompositeScrollsBackground(t *testing.T) {
	ic := &InterruptController{}
	fb := NewFramebuffer()
	p := NewPPU(ic, fb)
	p.BGP = 0xE4 // identity mapping: colour n -> level n

	// Tile 0 is all colour-index 1; tile 1 is all colour-index 2.
	var tile0, tile1 [8][8]byte
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			tile0[r][c] = 1
			tile1[r][c] = 2
		}
	}
	enc0 := encodeTile(tile0)
	enc1 := encodeTile(tile1)
	copy(p.VRAM[0:16], enc0[:])
	copy(p.VRAM[16:32], enc1[:])

	// Background map: tile 0 at column 0, tile 1 at column 1.
	p.VRAM[vramBackgroundMapOffset+0] = 0
	p.VRAM[vramBackgroundMapOffset+1] = 1

	p.SCX = 0
	p.SCY = 0
	p.composite()

	pixels := fb.Snapshot()
	if got := pixels[0]; got != 1 {
		t.Fatalf("pixel (0,0) = %d, want 1 (tile 0's colour)", got)
	}
	if got := pixels[8]; got != 2 {
		t.Fatalf("pixel (8,0) = %d, want 2 (tile 1's colour)", got)
	}

	// Scrolling right by one tile brings tile 1 to the left edge.
	p.SCX = 8
	p.composite()
	pixels = fb.Snapshot()
	if got := pixels[0]; got != 2 {
		t.Fatalf("SCX=8: pixel (0,0) = %d, want 2 (tile 1's colour)", got)
	}
}
