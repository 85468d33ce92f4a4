// isa_text.go - mnemonic rendering for disassembly output. Grounded on
// zerodmg-codes/src/instruction.rs's Display impl for Instruction, generalised
// to this decoder's bit-parameterised register/operand types.

package main

import "fmt"

func (r U8Register) String() string {
	switch r {
	case RegB:
		return "B"
	case RegC:
		return "C"
	case RegD:
		return "D"
	case RegE:
		return "E"
	case RegH:
		return "H"
	case RegL:
		return "L"
	case RegAtHL:
		return "(HL)"
	case RegA:
		return "A"
	default:
		return "?"
	}
}

func (r U16Register) String() string {
	switch r {
	case RegBC:
		return "BC"
	case RegDE:
		return "DE"
	case RegHL:
		return "HL"
	case RegSP:
		return "SP"
	default:
		return "?"
	}
}

func (r U16StackRegister) String() string {
	switch r {
	case StackBC:
		return "BC"
	case StackDE:
		return "DE"
	case StackHL:
		return "HL"
	case StackAF:
		return "AF"
	default:
		return "?"
	}
}

func (s U8SecondaryRegister) String() string {
	switch s {
	case SecAtBC:
		return "(BC)"
	case SecAtDE:
		return "(DE)"
	case SecAtHLInc:
		return "(HL+)"
	case SecAtHLDec:
		return "(HL-)"
	default:
		return "?"
	}
}

func (c FlagCondition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	default:
		return "?"
	}
}

func (a ALUOperation) String() string {
	switch a {
	case ALUAdd:
		return "ADD"
	case ALUAdc:
		return "ADC"
	case ALUSub:
		return "SUB"
	case ALUSbc:
		return "SBC"
	case ALUAnd:
		return "AND"
	case ALUXor:
		return "XOR"
	case ALUOr:
		return "OR"
	case ALUCp:
		return "CP"
	default:
		return "?"
	}
}

func (r RotateOperation) String() string {
	switch r {
	case RotRLC:
		return "RLC"
	case RotRRC:
		return "RRC"
	case RotRL:
		return "RL"
	case RotRR:
		return "RR"
	case RotSLA:
		return "SLA"
	case RotSRA:
		return "SRA"
	case RotSWAP:
		return "SWAP"
	case RotSRL:
		return "SRL"
	default:
		return "?"
	}
}

// String renders the instruction as pseudo-assembly text, suitable for a
// disassembly listing or a trace dump.
func (i Instruction) String() string {
	switch i.Op {
	case OpNOP:
		return "NOP"
	case OpHALT:
		return "HALT"
	case OpSTOP:
		return "STOP"
	case OpDI:
		return "DI"
	case OpEI:
		return "EI"
	case OpRETI:
		return "RETI"
	case OpDAA:
		return "DAA"
	case OpCPL:
		return "CPL"
	case OpSCF:
		return "SCF"
	case OpCCF:
		return "CCF"
	case OpRLCA:
		return "RLCA"
	case OpRRCA:
		return "RRCA"
	case OpRLA:
		return "RLA"
	case OpRRA:
		return "RRA"

	case OpLD_R_R:
		return fmt.Sprintf("LD %s,%s", i.Dst, i.Src)
	case OpLD_R_N:
		return fmt.Sprintf("LD %s,0x%02X", i.Dst, i.Imm8)
	case OpLD_RR_NN:
		return fmt.Sprintf("LD %s,0x%04X", i.Dst16, i.Imm16)
	case OpLD_IND_A:
		return fmt.Sprintf("LD %s,A", i.Sec)
	case OpLD_A_IND:
		return fmt.Sprintf("LD A,%s", i.Sec)

	case OpINC_R8:
		return fmt.Sprintf("INC %s", i.Dst)
	case OpDEC_R8:
		return fmt.Sprintf("DEC %s", i.Dst)
	case OpINC_RR:
		return fmt.Sprintf("INC %s", i.Dst16)
	case OpDEC_RR:
		return fmt.Sprintf("DEC %s", i.Dst16)
	case OpADD_HL_RR:
		return fmt.Sprintf("ADD HL,%s", i.Dst16)

	case OpADD_SP_N:
		return fmt.Sprintf("ADD SP,%d", i.Imm8)
	case OpLD_HL_SP_N:
		return fmt.Sprintf("LD HL,SP+%d", i.Imm8)
	case OpLD_SP_HL:
		return "LD SP,HL"
	case OpLD_NN_SP:
		return fmt.Sprintf("LD (0x%04X),SP", i.Imm16)
	case OpLD_NN_A:
		return fmt.Sprintf("LD (0x%04X),A", i.Imm16)
	case OpLD_A_NN:
		return fmt.Sprintf("LD A,(0x%04X)", i.Imm16)
	case OpLDH_N_A:
		return fmt.Sprintf("LDH (0xFF00+0x%02X),A", i.Imm8)
	case OpLDH_A_N:
		return fmt.Sprintf("LDH A,(0xFF00+0x%02X)", i.Imm8)
	case OpLD_C_A:
		return "LD (C),A"
	case OpLD_A_C:
		return "LD A,(C)"

	case OpJR:
		return fmt.Sprintf("JR %d", i.Rel)
	case OpJR_CC:
		return fmt.Sprintf("JR %s,%d", i.Cond, i.Rel)
	case OpJP:
		return fmt.Sprintf("JP 0x%04X", i.Imm16)
	case OpJP_CC:
		return fmt.Sprintf("JP %s,0x%04X", i.Cond, i.Imm16)
	case OpJP_HL:
		return "JP (HL)"
	case OpCALL:
		return fmt.Sprintf("CALL 0x%04X", i.Imm16)
	case OpCALL_CC:
		return fmt.Sprintf("CALL %s,0x%04X", i.Cond, i.Imm16)
	case OpRET:
		return "RET"
	case OpRET_CC:
		return fmt.Sprintf("RET %s", i.Cond)
	case OpRST:
		return fmt.Sprintf("RST 0x%02X", i.Reset.address())

	case OpPUSH:
		return fmt.Sprintf("PUSH %s", i.Stack)
	case OpPOP:
		return fmt.Sprintf("POP %s", i.Stack)

	case OpALU_R8:
		return fmt.Sprintf("%s A,%s", i.ALU, i.Src)
	case OpALU_N8:
		return fmt.Sprintf("%s A,0x%02X", i.ALU, i.Imm8)

	case OpCB_ROT:
		return fmt.Sprintf("%s %s", i.Rot, i.Dst)
	case OpCB_BIT:
		return fmt.Sprintf("BIT %d,%s", i.Bit, i.Dst)
	case OpCB_RES:
		return fmt.Sprintf("RES %d,%s", i.Bit, i.Dst)
	case OpCB_SET:
		return fmt.Sprintf("SET %d,%s", i.Bit, i.Dst)

	case OpHCF:
		return fmt.Sprintf("HCF 0x%02X", i.RawOpcode)

	default:
		return "???"
	}
}
