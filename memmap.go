// memmap.go - address-range dispatch across boot ROM, game ROM, VRAM, WRAM,
// HRAM, audio registers and PPU/interrupt registers. Grounded on
// memory_bus.go's SystemBus, trading its generic page-masked IORegion table
// (built for a flat 32-bit address space with arbitrary MMIO windows) for
// the DMG's small set of fixed, non-overlapping ranges known at compile
// time — a direct if/else cascade reads better than a map here, and every
// out-of-range or illegal access is fatal rather than silently absorbed.

package main

const (
	wramSize = 0x2000
	hramSize = 0x80
	vramSize = 0x2000
)

// MemoryMap routes CPU reads/writes to the component that owns each address
// range. It is the one place in the core that constructs a FaultMemory
// MachineFault, since it is the only component that knows the full address
// space.
type MemoryMap struct {
	BootROM       [0x100]byte
	GameROM       []byte
	WRAM          [wramSize]byte
	HRAM          [hramSize]byte
	BootROMMapped bool

	PPU        *PPU
	Audio      *AudioRegs
	Interrupts *InterruptController

	ring *TraceRing
}

// NewMemoryMap wires a MemoryMap to the components it dispatches into. The
// boot ROM overlay starts mapped, per the data model.
func NewMemoryMap(bootROM [0x100]byte, gameROM []byte, ppu *PPU, audio *AudioRegs, ic *InterruptController, ring *TraceRing) *MemoryMap {
	return &MemoryMap{
		BootROM:       bootROM,
		GameROM:       gameROM,
		BootROMMapped: true,
		PPU:           ppu,
		Audio:         audio,
		Interrupts:    ic,
		ring:          ring,
	}
}

// Read returns the byte at addr, or panics with a *MachineFault if addr is
// outside every mapped range (per §7: memory faults are fatal, not
// recoverable).
func (m *MemoryMap) Read(addr uint16) byte {
	switch {
	case addr <= 0x00FF:
		if m.BootROMMapped {
			return m.BootROM[addr]
		}
		return m.romByte(addr)
	case addr <= 0x7FFF:
		return m.romByte(addr)
	case addr >= 0x8000 && addr <= 0x9FFF:
		return m.PPU.VRAM[addr-0x8000]
	case addr >= 0xC000 && addr <= 0xDFFF:
		return m.WRAM[addr-0xC000]
	case addr >= 0xFF10 && addr <= 0xFF26:
		return m.Audio.Read(addr - 0xFF10)
	case addr == 0xFF0F:
		return m.Interrupts.IF
	case addr == 0xFFFF:
		return m.Interrupts.IE
	case addr == 0xFF40:
		return m.PPU.LCDC
	case addr == 0xFF42:
		return m.PPU.SCY
	case addr == 0xFF43:
		return m.PPU.SCX
	case addr == 0xFF44:
		return m.PPU.LY
	case addr == 0xFF47:
		return m.PPU.BGP
	case addr == 0xFF50:
		if m.BootROMMapped {
			return 0x01
		}
		return 0x00
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return m.HRAM[addr-0xFF80]
	default:
		panic(newMachineFault(FaultMemory, addr, "read from unmapped address", m.ring))
	}
}

// Write stores value at addr, or panics with a *MachineFault for any range
// the table marks fatal: writes to fixed ROM, a write to the read-only LY
// register, or a non-0x01 write to the boot ROM unmap register.
func (m *MemoryMap) Write(addr uint16, value byte) {
	switch {
	case addr <= 0x7FFF:
		panic(newMachineFault(FaultMemory, addr, "write to ROM (no MBC)", m.ring))
	case addr >= 0x8000 && addr <= 0x9FFF:
		m.PPU.VRAM[addr-0x8000] = value
	case addr >= 0xC000 && addr <= 0xDFFF:
		m.WRAM[addr-0xC000] = value
	case addr >= 0xFF10 && addr <= 0xFF26:
		m.Audio.Write(addr-0xFF10, value)
	case addr == 0xFF0F:
		m.Interrupts.IF = value
	case addr == 0xFFFF:
		m.Interrupts.IE = value
	case addr == 0xFF40:
		m.PPU.LCDC = value
	case addr == 0xFF42:
		m.PPU.SCY = value
	case addr == 0xFF43:
		m.PPU.SCX = value
	case addr == 0xFF44:
		panic(newMachineFault(FaultMemory, addr, "write to read-only LY", m.ring))
	case addr == 0xFF47:
		m.PPU.BGP = value
	case addr == 0xFF50:
		if value != 0x01 {
			panic(newMachineFault(FaultMemory, addr, "illegal value written to boot ROM unmap register", m.ring))
		}
		m.BootROMMapped = false
	case addr >= 0xFF80 && addr <= 0xFFFE:
		m.HRAM[addr-0xFF80] = value
	default:
		panic(newMachineFault(FaultMemory, addr, "write to unmapped address", m.ring))
	}
}

// romByte reads the game ROM, treating any address past the image's length
// as zero-filled — the stubbed no-MBC case has no bank switching, so the
// whole fixed ROM window (0x0000-0x7FFF) is addressable even when the
// supplied image is shorter.
func (m *MemoryMap) romByte(addr uint16) byte {
	if int(addr) < len(m.GameROM) {
		return m.GameROM[addr]
	}
	return 0
}
