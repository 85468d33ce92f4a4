// romcodec.go - the byte array <-> role-tagged byte array half of the ROM
// codec: AssembledRom, RomByte and the idempotent, self-tracing
// GetKnownInstruction. Grounded on memory_bus.go's page-mapped dispatch
// idea applied to a single linear array instead of an address space (one
// role-tagged slice, walked instead of paged), since the codec works over
// a ROM image rather than a live bus.

package main

// RomByteRole tags what a byte in an AssembledRom currently represents.
// Promotion is monotonic except that KnownJumpDestination may flip
// false->true on an already-InstructionStart byte; RoleUnknown->
// RoleInstructionStart is allowed; the reverse transitions are forbidden
// (enforced by GetKnownInstruction, the only place that promotes bytes).
type RomByteRole int

const (
	RoleUnknown RomByteRole = iota
	RoleInstructionStart
	RoleInstructionRest
)

// RomByte is one byte of a ROM image plus its role. Instr and
// KnownJumpDestination are only meaningful when Role is
// RoleInstructionStart.
type RomByte struct {
	Byte                 byte
	Role                 RomByteRole
	Instr                Instruction
	KnownJumpDestination bool
}

// AssembledRom wraps a byte sequence, every byte initially Unknown, that
// GetKnownInstruction progressively annotates with decoded instructions as
// it traces control flow.
type AssembledRom struct {
	bytes []RomByte
}

// AssembledRomFromBytes wraps raw ROM bytes, marking every byte Unknown.
func AssembledRomFromBytes(b []byte) *AssembledRom {
	out := make([]RomByte, len(b))
	for i, v := range b {
		out[i] = RomByte{Byte: v}
	}
	return &AssembledRom{bytes: out}
}

// Len returns the ROM image's length in bytes.
func (a *AssembledRom) Len() int {
	return len(a.bytes)
}

// ToBytes reconstructs the plain byte sequence, discarding role
// annotations.
func (a *AssembledRom) ToBytes() []byte {
	out := make([]byte, len(a.bytes))
	for i, rb := range a.bytes {
		out[i] = rb.Byte
	}
	return out
}

// inFixedRegion reports whether addr lies in the region the flow tracer is
// allowed to follow: below 0x4000 always, or below 0x8000 when this image
// has no bank-switched page (this core never models one, so an image no
// larger than 0x8000 bytes counts as having none).
func (a *AssembledRom) inFixedRegion(addr uint16) bool {
	if len(a.bytes) <= 0x8000 {
		return int(addr) < 0x8000
	}
	return addr < 0x4000
}

// GetKnownInstruction returns the instruction at addr, decoding and
// recursively tracing it on first call (promoting its bytes' roles and
// marking it a known jump destination), and returning the cached
// instruction on every subsequent call. Jump, call and RST targets reached
// while tracing are marked as jump destinations too; an instruction
// reached only by falling through from the one before it is not.
func (a *AssembledRom) GetKnownInstruction(addr uint16) Instruction {
	return a.traceFrom(addr, true)
}

// traceFrom is GetKnownInstruction's body; destination reports whether addr
// is reached as an entry point or jump target rather than by fall-through.
func (a *AssembledRom) traceFrom(addr uint16, destination bool) Instruction {
	rb := &a.bytes[addr]
	if rb.Role == RoleInstructionStart {
		if destination {
			rb.KnownJumpDestination = true
		}
		return rb.Instr
	}

	pos := int(addr)
	inst := decodeInstruction(func() byte {
		if pos >= len(a.bytes) {
			panic("romcodec: instruction stream terminates mid-instruction")
		}
		b := a.bytes[pos].Byte
		pos++
		return b
	})
	length := inst.Len()

	a.bytes[addr].Role = RoleInstructionStart
	a.bytes[addr].Instr = inst
	a.bytes[addr].KnownJumpDestination = destination
	for i := 1; i < length; i++ {
		a.bytes[int(addr)+i].Role = RoleInstructionRest
	}

	next := addr + uint16(length)
	for _, target := range controlFlowsTo(addr, inst) {
		if a.inFixedRegion(target) {
			a.traceFrom(target, target != next)
		}
	}

	return inst
}
