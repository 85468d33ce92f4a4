// ppu.go - VRAM, LCDC/SCX/SCY/LY/BGP registers, the cycle-derived line
// counter, and the background compositor. Grounded on video_chip.go's
// VideoChip (VRAM-equivalent storage plus HandleRead/HandleWrite register
// access) and video_compositor.go's buffer composition, reworked from a
// scanline/sprite/palette-table renderer down to the DMG's single
// background layer with a literal 2bpp tile format and a 4-entry BGP
// lookup, per §4.6.

package main

const (
	vramBackgroundMapOffset = 0x1800
	backgroundMapDim        = 32
	tileBytes               = 16
	clocksPerLine           = 113
	linesPerFrame           = 154
)

// PPU owns video RAM and the registers that control background
// composition. It has no sprite, window, or LCD-enable support, per §4.6's
// explicit non-goals for this layer.
type PPU struct {
	VRAM [vramSize]byte

	LCDC byte
	SCX  byte
	SCY  byte
	LY   byte
	BGP  byte

	t uint64

	Interrupts *InterruptController
	Framebuffer *Framebuffer
}

// NewPPU wires a PPU to the interrupt controller it raises V-Blank on and
// the framebuffer it composites into.
func NewPPU(ic *InterruptController, fb *Framebuffer) *PPU {
	return &PPU{Interrupts: ic, Framebuffer: fb}
}

// VideoCycle advances the PPU by one CPU clock tick (not one machine
// cycle — the driver calls this cycles*4 times per CPU.tick). LY is
// recomputed from the running clock counter; at the rising edge into the
// visible region after V-Blank, the PPU raises the V-Blank interrupt and
// recomposites the framebuffer.
func (p *PPU) VideoCycle() {
	p.t++
	p.LY = byte((p.t / clocksPerLine) % linesPerFrame)
	if p.LY == 0 && p.t%clocksPerLine == 0 {
		p.Interrupts.Request(InterruptVBlank)
		p.composite()
	}
}

// tilePixel returns the 2-bit colour index (0-3) of the pixel at column c
// (0 = leftmost), row r (0 = top) within the 16-byte tile starting at
// VRAM offset tileAddr. Row r uses bytes [2r] (low bit-plane) and [2r+1]
// (high bit-plane); column c reads bit (7-c) of each plane, with the
// low-plane bit contributing bit 0 of the 2-bit value and the high-plane
// bit contributing bit 1.
func (p *PPU) tilePixel(tileAddr uint16, r, c int) byte {
	low := p.VRAM[tileAddr+uint16(2*r)]
	high := p.VRAM[tileAddr+uint16(2*r+1)]
	bit := uint(7 - c)
	var value byte
	if bitGet(low, bit) {
		value |= 0x01
	}
	if bitGet(high, bit) {
		value |= 0x02
	}
	return value
}

// encodeTile is the inverse of tilePixel: given the 8x8 grid of 2-bit
// colour indices a tile represents, it returns the 16 bytes that decode
// back to that grid under the documented bit-plane rule.
func encodeTile(pixels [8][8]byte) [tileBytes]byte {
	var out [tileBytes]byte
	for r := 0; r < 8; r++ {
		var low, high byte
		for c := 0; c < 8; c++ {
			bit := uint(7 - c)
			v := pixels[r][c]
			if v&0x01 != 0 {
				low = bitSet(low, bit, true)
			}
			if v&0x02 != 0 {
				high = bitSet(high, bit, true)
			}
		}
		out[2*r] = low
		out[2*r+1] = high
	}
	return out
}

// paletteLookup remaps a 2-bit tile colour index through BGP (bits
// [1:0]=colour 0, [3:2]=colour 1, [5:4]=colour 2, [7:6]=colour 3) and
// returns the resulting 2-bit greyscale level.
func (p *PPU) paletteLookup(colourIndex byte) byte {
	return (p.BGP >> (2 * colourIndex)) & 0x03
}

// composite renders the scrolled 256x256 background into the 160x144
// framebuffer. The background map is 32x32 tile indices at VRAM offset
// 0x1800; each tile is looked up in the 0x0000-based tile data block at
// tileIndex*16.
func (p *PPU) composite() {
	p.Framebuffer.WithFrame(func(pixels *[ScreenWidth * ScreenHeight]byte) {
		for y := 0; y < ScreenHeight; y++ {
			bgY := (int(p.SCY) + y) % 256
			tileRow := bgY / 8
			rowInTile := bgY % 8
			for x := 0; x < ScreenWidth; x++ {
				bgX := (int(p.SCX) + x) % 256
				tileCol := bgX / 8
				colInTile := bgX % 8

				mapOffset := vramBackgroundMapOffset + tileRow*backgroundMapDim + tileCol
				tileIndex := p.VRAM[mapOffset]
				tileAddr := uint16(tileIndex) * tileBytes

				colourIndex := p.tilePixel(tileAddr, rowInTile, colInTile)
				level := p.paletteLookup(colourIndex)
				pixels[y*ScreenWidth+x] = level
			}
		}
	})
}
