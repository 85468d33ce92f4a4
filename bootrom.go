// bootrom.go - the fixed 256-byte power-up program every DMG-class machine
// starts executing from address 0x0000. Built with this package's own ROM
// assembler rather than carrying Nintendo's boot ROM bytes, so its
// behaviour can be checked against §4 directly: clear video RAM, set a
// visible greyscale palette, zero the scroll registers, then unmap itself
// with its last instruction so execution continues at the game ROM's entry
// point, 0x0100. Grounded on zerodmg-codes'
// description of the real boot sequence, reproduced here as assembled
// Instructions rather than a literal byte dump.

package main

// buildBootROM assembles the power-up program and returns it as a
// zero-padded 256-byte image, ready to be copied into MemoryMap.BootROM.
func buildBootROM() [256]byte {
	instrs := []Instruction{
		{Op: OpLD_RR_NN, Dst16: RegHL, Imm16: 0x8000}, // HL = start of VRAM
		{Op: OpALU_R8, ALU: ALUXor, Src: RegA},         // A = 0
		{Op: OpLD_R_N, Dst: RegB, Imm8: 0x20},          // B = 32 outer passes

		// outerLoop:
		{Op: OpLD_R_N, Dst: RegC, Imm8: 0x00}, // C = 0, wraps through 256 writes

		// innerLoop:
		{Op: OpLD_IND_A, Sec: SecAtHLInc}, // (HL++) = 0
		{Op: OpDEC_R8, Dst: RegC},
		{Op: OpJR_CC, Cond: CondNZ, Rel: -4}, // back to innerLoop

		{Op: OpDEC_R8, Dst: RegB},
		{Op: OpJR_CC, Cond: CondNZ, Rel: -9}, // back to outerLoop

		{Op: OpLD_R_N, Dst: RegA, Imm8: 0xFC},  // BGP: darkest-to-lightest ramp
		{Op: OpLDH_N_A, Imm8: 0x47},            // BGP register
		{Op: OpALU_R8, ALU: ALUXor, Src: RegA}, // A = 0
		{Op: OpLDH_N_A, Imm8: 0x42},            // SCY = 0
		{Op: OpLDH_N_A, Imm8: 0x43},            // SCX = 0
		// the zero padding up to 0x00FC runs as NOPs
	}

	// Pinned so the unmap write is the last instruction, at 0x00FE-0x00FF:
	// once it executes, PC is 0x0100 and execution continues in the game ROM.
	handoff := []Instruction{
		{Op: OpLD_R_N, Dst: RegA, Imm8: 0x01},
		{Op: OpLDH_N_A, Imm8: 0x50}, // unmap the boot ROM
	}

	disasm := &DisassembledRom{
		Blocks: []RomBlock{
			{Address: 0x0000, Kind: BlockCode, Instructions: instrs},
			{Address: 0x00FC, Kind: BlockCode, Instructions: handoff},
		},
		Length: 256,
	}

	var out [256]byte
	copy(out[:], disasm.ToBytes())
	return out
}
