// isa_encode.go - Instruction to byte stream encoding, the inverse of
// decodeInstruction. For every constructible Instruction x,
// decodeInstruction(sliceReader(x.Bytes())) must equal x.

package main

// Bytes encodes the instruction to its opcode byte sequence.
func (i Instruction) Bytes() []byte {
	switch i.Op {
	case OpNOP:
		return []byte{0x00}
	case OpHALT:
		return []byte{0x76}
	case OpSTOP:
		return []byte{0x10, i.Imm8}
	case OpDI:
		return []byte{0xF3}
	case OpEI:
		return []byte{0xFB}
	case OpRETI:
		return []byte{0xD9}
	case OpDAA:
		return []byte{0x27}
	case OpCPL:
		return []byte{0x2F}
	case OpSCF:
		return []byte{0x37}
	case OpCCF:
		return []byte{0x3F}
	case OpRLCA:
		return []byte{0x07}
	case OpRRCA:
		return []byte{0x0F}
	case OpRLA:
		return []byte{0x17}
	case OpRRA:
		return []byte{0x1F}

	case OpLD_R_R:
		return []byte{0x40 | i.Dst.index()<<3 | i.Src.index()}
	case OpLD_R_N:
		return []byte{0x06 | i.Dst.index()<<3, i.Imm8}
	case OpLD_RR_NN:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0x01 | i.Dst16.index()<<4, low, high}
	case OpLD_IND_A:
		return []byte{0x02 | i.Sec.index()<<4}
	case OpLD_A_IND:
		return []byte{0x0A | i.Sec.index()<<4}

	case OpINC_R8:
		return []byte{0x04 | i.Dst.index()<<3}
	case OpDEC_R8:
		return []byte{0x05 | i.Dst.index()<<3}
	case OpINC_RR:
		return []byte{0x03 | i.Dst16.index()<<4}
	case OpDEC_RR:
		return []byte{0x0B | i.Dst16.index()<<4}
	case OpADD_HL_RR:
		return []byte{0x09 | i.Dst16.index()<<4}

	case OpADD_SP_N:
		return []byte{0xE8, i.Imm8}
	case OpLD_HL_SP_N:
		return []byte{0xF8, i.Imm8}
	case OpLD_SP_HL:
		return []byte{0xF9}
	case OpLD_NN_SP:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0x08, low, high}
	case OpLD_NN_A:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xEA, low, high}
	case OpLD_A_NN:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xFA, low, high}
	case OpLDH_N_A:
		return []byte{0xE0, i.Imm8}
	case OpLDH_A_N:
		return []byte{0xF0, i.Imm8}
	case OpLD_C_A:
		return []byte{0xE2}
	case OpLD_A_C:
		return []byte{0xF2}

	case OpJR:
		return []byte{0x18, byte(i.Rel)}
	case OpJR_CC:
		return []byte{0x20 | i.Cond.index()<<3, byte(i.Rel)}
	case OpJP:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xC3, low, high}
	case OpJP_CC:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xC2 | i.Cond.index()<<3, low, high}
	case OpJP_HL:
		return []byte{0xE9}
	case OpCALL:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xCD, low, high}
	case OpCALL_CC:
		low, high := u16ToU8s(i.Imm16)
		return []byte{0xC4 | i.Cond.index()<<3, low, high}
	case OpRET:
		return []byte{0xC9}
	case OpRET_CC:
		return []byte{0xC0 | i.Cond.index()<<3}
	case OpRST:
		return []byte{0xC7 | i.Reset.index()<<3}

	case OpPUSH:
		return []byte{0xC5 | i.Stack.index()<<4}
	case OpPOP:
		return []byte{0xC1 | i.Stack.index()<<4}

	case OpALU_R8:
		return []byte{0x80 | i.ALU.index()<<3 | i.Src.index()}
	case OpALU_N8:
		return []byte{0xC6 | i.ALU.index()<<3, i.Imm8}

	case OpCB_ROT:
		return []byte{0xCB, i.Rot.index()<<3 | i.Dst.index()}
	case OpCB_BIT:
		return []byte{0xCB, 0x40 | i.Bit<<3 | i.Dst.index()}
	case OpCB_RES:
		return []byte{0xCB, 0x80 | i.Bit<<3 | i.Dst.index()}
	case OpCB_SET:
		return []byte{0xCB, 0xC0 | i.Bit<<3 | i.Dst.index()}

	case OpHCF:
		return []byte{i.RawOpcode}

	default:
		panic("unencodable instruction")
	}
}
