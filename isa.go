// isa.go - the instruction set: register/condition enums and the Instruction
// tagged union. Grounded on cpu_z80.go's bit-pattern register indices and on
// zerodmg-codes/src/instruction.rs's Instruction/U8Register/U16Register enums.

package main

// U8Register is one of the eight 8-bit operands addressable by the low three
// bits of most opcodes. AtHL stands in for the indirect "(HL)" operand.
type U8Register int

const (
	RegB U8Register = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAtHL
	RegA
)

func u8RegisterFromBits(bits byte) U8Register {
	return U8Register(bits & 0x07)
}

// index returns the 3-bit pattern used to encode this register in an opcode.
func (r U8Register) index() byte {
	return byte(r)
}

// U16Register parameterises the 16-bit operand group used by LD rr,nn,
// INC rr, DEC rr and ADD HL,rr.
type U16Register int

const (
	RegBC U16Register = iota
	RegDE
	RegHL
	RegSP
)

func u16RegisterFromBits(bits byte) U16Register {
	return U16Register(bits & 0x03)
}

func (r U16Register) index() byte {
	return byte(r)
}

// U16StackRegister parameterises the PUSH/POP operand group, which uses AF
// in place of SP.
type U16StackRegister int

const (
	StackBC U16StackRegister = iota
	StackDE
	StackHL
	StackAF
)

func u16StackRegisterFromBits(bits byte) U16StackRegister {
	return U16StackRegister(bits & 0x03)
}

func (r U16StackRegister) index() byte {
	return byte(r)
}

// U8SecondaryRegister parameterises the indirect-load group: LD A,(BC),
// LD (DE),A, LD A,(HL+), LD (HL-),A and their inverses.
type U8SecondaryRegister int

const (
	SecAtBC U8SecondaryRegister = iota
	SecAtDE
	SecAtHLInc
	SecAtHLDec
)

func u8SecondaryRegisterFromBits(bits byte) U8SecondaryRegister {
	return U8SecondaryRegister(bits & 0x03)
}

func (r U8SecondaryRegister) index() byte {
	return byte(r)
}

// FlagCondition parameterises conditional jumps, calls and returns.
type FlagCondition int

const (
	CondNZ FlagCondition = iota
	CondZ
	CondNC
	CondC
)

func flagConditionFromBits(bits byte) FlagCondition {
	return FlagCondition(bits & 0x03)
}

func (c FlagCondition) index() byte {
	return byte(c)
}

// ResetTarget enumerates the eight single-byte RST call targets.
type ResetTarget int

const (
	Reset00 ResetTarget = iota
	Reset08
	Reset10
	Reset18
	Reset20
	Reset28
	Reset30
	Reset38
)

func resetTargetFromBits(bits byte) ResetTarget {
	return ResetTarget(bits & 0x07)
}

func (r ResetTarget) address() uint16 {
	return uint16(r) * 8
}

func (r ResetTarget) index() byte {
	return byte(r)
}

// ALUOperation is the eight-entry ALU group used by both the register (0x80s)
// and immediate (0xC6-family) instruction blocks.
type ALUOperation int

const (
	ALUAdd ALUOperation = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
)

func aluOperationFromBits(bits byte) ALUOperation {
	return ALUOperation(bits & 0x07)
}

func (a ALUOperation) index() byte {
	return byte(a)
}

// RotateOperation is the eight-entry 0xCB rotate/shift group.
type RotateOperation int

const (
	RotRLC RotateOperation = iota
	RotRRC
	RotRL
	RotRR
	RotSLA
	RotSRA
	RotSWAP
	RotSRL
)

func rotateOperationFromBits(bits byte) RotateOperation {
	return RotateOperation(bits & 0x07)
}

func (r RotateOperation) index() byte {
	return byte(r)
}

// Op tags the operation an Instruction performs; operand fields on
// Instruction that don't apply to a given Op are left at their zero value.
type Op int

const (
	OpNOP Op = iota
	OpHALT
	OpSTOP
	OpDI
	OpEI
	OpRETI
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpLD_R_R
	OpLD_R_N
	OpLD_RR_NN
	OpLD_IND_A
	OpLD_A_IND
	OpINC_R8
	OpDEC_R8
	OpINC_RR
	OpDEC_RR
	OpADD_HL_RR
	OpADD_SP_N
	OpLD_HL_SP_N
	OpLD_SP_HL
	OpLD_NN_SP
	OpLD_NN_A
	OpLD_A_NN
	OpLDH_N_A
	OpLDH_A_N
	OpLD_C_A
	OpLD_A_C
	OpJR
	OpJR_CC
	OpJP
	OpJP_CC
	OpJP_HL
	OpCALL
	OpCALL_CC
	OpRET
	OpRET_CC
	OpRST
	OpPUSH
	OpPOP
	OpALU_R8
	OpALU_N8
	OpCB_ROT
	OpCB_BIT
	OpCB_RES
	OpCB_SET
	OpHCF
)

// Instruction is a single decoded CPU instruction with its immediate
// operands already resolved. It is comparable, so decode(encode(x)) == x can
// be checked with plain ==.
type Instruction struct {
	Op    Op
	Dst   U8Register
	Src   U8Register
	Dst16 U16Register
	Stack U16StackRegister
	Sec   U8SecondaryRegister
	Cond  FlagCondition
	Reset ResetTarget
	ALU   ALUOperation
	Rot   RotateOperation
	Bit   uint8
	Imm8  uint8
	Imm16 uint16
	Rel   int8
	// RawOpcode preserves the literal invalid opcode byte for HCF, so the
	// fatal diagnostic and the disassembly can report exactly what was
	// fetched.
	RawOpcode uint8
}

// Len returns the instruction's encoded length in bytes: 1 for plain
// register/control ops, 2 for an 8-bit immediate/offset or a 0xCB prefix,
// 3 for a 16-bit immediate/address.
func (i Instruction) Len() int {
	switch i.Op {
	case OpLD_R_N, OpADD_SP_N, OpLD_HL_SP_N, OpLDH_N_A, OpLDH_A_N,
		OpJR, OpJR_CC, OpALU_N8, OpSTOP,
		OpCB_ROT, OpCB_BIT, OpCB_RES, OpCB_SET:
		return 2
	case OpLD_RR_NN, OpLD_NN_SP, OpLD_NN_A, OpLD_A_NN,
		OpJP, OpJP_CC, OpCALL, OpCALL_CC:
		return 3
	default:
		return 1
	}
}
