// romcodec_assemble.go - the inverse of disassemble(): concatenates a
// DisassembledRom's blocks back into a flat byte stream, padding with
// address-pinned zero bytes where a gap exists. Grounded on §4.2's
// round-trip law and zerodmg-codes/src/rom.rs's Vec<Block>::to_bytes.

package main

// assemble concatenates d's blocks in address order into an AssembledRom,
// inserting zero-byte padding (tagged as a non-destination NOP
// InstructionStart, matching how a real assembler pads unreached gaps)
// whenever a block's pinned address is ahead of the current output
// position. It panics if a block's address has already been passed, since
// that means two blocks overlap.
func (d *DisassembledRom) assemble() *AssembledRom {
	var out []RomByte

	for _, block := range d.Blocks {
		if int(block.Address) < len(out) {
			panic("romcodec: disassembled blocks overlap")
		}
		for len(out) < int(block.Address) {
			out = append(out, RomByte{
				Byte:  0x00,
				Role:  RoleInstructionStart,
				Instr: Instruction{Op: OpNOP},
			})
		}

		switch block.Kind {
		case BlockCode:
			for _, inst := range block.Instructions {
				encoded := inst.Bytes()
				out = append(out, RomByte{Byte: encoded[0], Role: RoleInstructionStart, Instr: inst})
				for _, b := range encoded[1:] {
					out = append(out, RomByte{Byte: b, Role: RoleInstructionRest})
				}
			}
		case BlockData:
			for _, b := range block.Data {
				out = append(out, RomByte{Byte: b, Role: RoleUnknown})
			}
		}
	}

	for len(out) < d.Length {
		out = append(out, RomByte{Byte: 0x00, Role: RoleUnknown})
	}

	return &AssembledRom{bytes: out}
}

// ToBytes reassembles d directly to a flat byte slice, without exposing
// the intermediate role-tagged AssembledRom.
func (d *DisassembledRom) ToBytes() []byte {
	return d.assemble().ToBytes()
}
