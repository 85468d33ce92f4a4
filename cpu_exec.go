// cpu_exec.go - the Op-keyed dispatch table. Grounded on cpu_z80.go's
// initBaseOps/opLDRegReg/opALUReg-family parameterised handlers (§9's design
// note: prefer one handler keyed on the decoded operand fields over 64
// near-duplicate opcode entries).

package main

// execute performs inst's effect on the CPU's registers and memory,
// updating PC for control-flow instructions, and returns the number of
// machine cycles it consumed.
func (c *CPU) execute(inst Instruction) int {
	switch inst.Op {
	case OpNOP:
		return 1
	case OpHALT:
		return 1
	case OpSTOP:
		return 1
	case OpDI:
		c.Interrupts.RequestDI()
		return 1
	case OpEI:
		c.Interrupts.RequestEI()
		return 1
	case OpRETI:
		c.Regs.PC = c.pop16()
		c.Interrupts.IME = true
		return 4

	case OpDAA:
		c.execDAA()
		return 1
	case OpCPL:
		c.Regs.A = ^c.Regs.A
		c.Regs.SetFlagN(true)
		c.Regs.SetFlagH(true)
		return 1
	case OpSCF:
		c.Regs.SetFlagN(false)
		c.Regs.SetFlagH(false)
		c.Regs.SetFlagC(true)
		return 1
	case OpCCF:
		c.Regs.SetFlagN(false)
		c.Regs.SetFlagH(false)
		c.Regs.SetFlagC(!c.Regs.FlagC())
		return 1

	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		c.execRotateAccumulator(inst.Op)
		return 1

	case OpLD_R_R:
		v := c.read8(inst.Src)
		c.write8(inst.Dst, v)
		if inst.Dst == RegAtHL || inst.Src == RegAtHL {
			return 2
		}
		return 1
	case OpLD_R_N:
		c.write8(inst.Dst, inst.Imm8)
		if inst.Dst == RegAtHL {
			return 3
		}
		return 2
	case OpLD_RR_NN:
		c.Regs.Set16(inst.Dst16, inst.Imm16)
		return 3
	case OpLD_IND_A:
		c.writeSecondary(inst.Sec, c.Regs.A)
		return 2
	case OpLD_A_IND:
		c.Regs.A = c.readSecondary(inst.Sec)
		return 2

	case OpINC_R8:
		v := c.read8(inst.Dst) + 1
		c.write8(inst.Dst, v)
		c.Regs.F = incFlags(v, c.Regs.FlagC())
		if inst.Dst == RegAtHL {
			return 3
		}
		return 1
	case OpDEC_R8:
		v := c.read8(inst.Dst) - 1
		c.write8(inst.Dst, v)
		c.Regs.F = decFlags(v, c.Regs.FlagC())
		if inst.Dst == RegAtHL {
			return 3
		}
		return 1
	case OpINC_RR:
		c.Regs.Set16(inst.Dst16, c.Regs.Get16(inst.Dst16)+1)
		return 2
	case OpDEC_RR:
		c.Regs.Set16(inst.Dst16, c.Regs.Get16(inst.Dst16)-1)
		return 2
	case OpADD_HL_RR:
		c.execAddHL(inst.Dst16)
		return 2

	case OpADD_SP_N:
		c.execAddSPN(inst.Imm8)
		return 4
	case OpLD_HL_SP_N:
		c.execLDHLSPN(inst.Imm8)
		return 3
	case OpLD_SP_HL:
		c.Regs.SP = c.Regs.HL()
		return 2
	case OpLD_NN_SP:
		low, high := u16ToU8s(c.Regs.SP)
		c.Mem.Write(inst.Imm16, low)
		c.Mem.Write(inst.Imm16+1, high)
		return 5
	case OpLD_NN_A:
		c.Mem.Write(inst.Imm16, c.Regs.A)
		return 4
	case OpLD_A_NN:
		c.Regs.A = c.Mem.Read(inst.Imm16)
		return 4
	case OpLDH_N_A:
		c.Mem.Write(0xFF00+uint16(inst.Imm8), c.Regs.A)
		return 4
	case OpLDH_A_N:
		c.Regs.A = c.Mem.Read(0xFF00 + uint16(inst.Imm8))
		return 3
	case OpLD_C_A:
		c.Mem.Write(0xFF00+uint16(c.Regs.C), c.Regs.A)
		return 2
	case OpLD_A_C:
		c.Regs.A = c.Mem.Read(0xFF00 + uint16(c.Regs.C))
		return 2

	case OpJR:
		c.Regs.PC = uint16(int32(c.Regs.PC) + int32(inst.Rel))
		return 3
	case OpJR_CC:
		if c.Regs.CheckCondition(inst.Cond) {
			c.Regs.PC = uint16(int32(c.Regs.PC) + int32(inst.Rel))
			return 3
		}
		return 2
	case OpJP:
		c.Regs.PC = inst.Imm16
		return 4
	case OpJP_CC:
		if c.Regs.CheckCondition(inst.Cond) {
			c.Regs.PC = inst.Imm16
			return 4
		}
		return 3
	case OpJP_HL:
		c.Regs.PC = c.Regs.HL()
		return 1
	case OpCALL:
		c.push16(c.Regs.PC)
		c.Regs.PC = inst.Imm16
		return 6
	case OpCALL_CC:
		if c.Regs.CheckCondition(inst.Cond) {
			c.push16(c.Regs.PC)
			c.Regs.PC = inst.Imm16
			return 6
		}
		return 3
	case OpRET:
		c.Regs.PC = c.pop16()
		return 2
	case OpRET_CC:
		if c.Regs.CheckCondition(inst.Cond) {
			c.Regs.PC = c.pop16()
			return 4
		}
		return 2
	case OpRST:
		c.push16(c.Regs.PC)
		c.Regs.PC = inst.Reset.address()
		return 4

	case OpPUSH:
		c.push16(c.Regs.GetStack(inst.Stack))
		return 4
	case OpPOP:
		c.Regs.SetStack(inst.Stack, c.pop16())
		return 3

	case OpALU_R8:
		v := c.read8(inst.Src)
		result, flags := applyALU(inst.ALU, c.Regs.A, v, c.Regs.FlagC())
		c.Regs.F = flags
		if inst.ALU != ALUCp {
			c.Regs.A = result
		}
		if inst.Src == RegAtHL {
			return 2
		}
		return 1
	case OpALU_N8:
		result, flags := applyALU(inst.ALU, c.Regs.A, inst.Imm8, c.Regs.FlagC())
		c.Regs.F = flags
		if inst.ALU != ALUCp {
			c.Regs.A = result
		}
		return 2

	case OpCB_ROT:
		v := c.read8(inst.Dst)
		result, flags := rotateResult(inst.Rot, v, c.Regs.FlagC())
		c.write8(inst.Dst, result)
		c.Regs.F = flags
		if inst.Dst == RegAtHL {
			return 4
		}
		return 2
	case OpCB_BIT:
		v := c.read8(inst.Dst)
		c.Regs.F = bitTestFlags(v, uint(inst.Bit), c.Regs.FlagC())
		if inst.Dst == RegAtHL {
			return 3
		}
		return 2
	case OpCB_RES:
		v := c.read8(inst.Dst)
		c.write8(inst.Dst, bitSet(v, uint(inst.Bit), false))
		if inst.Dst == RegAtHL {
			return 4
		}
		return 2
	case OpCB_SET:
		v := c.read8(inst.Dst)
		c.write8(inst.Dst, bitSet(v, uint(inst.Bit), true))
		if inst.Dst == RegAtHL {
			return 4
		}
		return 2

	case OpHCF:
		panic(newMachineFault(FaultHCF, c.Regs.PC-1, "invalid opcode", c.Ring))

	default:
		panic(newMachineFault(FaultUnimplemented, c.Regs.PC, inst.String(), c.Ring))
	}
}

// execRotateAccumulator implements RLCA/RRCA/RLA/RRA. Unlike their
// 0xCB-prefixed counterparts, these always clear Z regardless of the
// result.
func (c *CPU) execRotateAccumulator(op Op) {
	var rot RotateOperation
	switch op {
	case OpRLCA:
		rot = RotRLC
	case OpRRCA:
		rot = RotRRC
	case OpRLA:
		rot = RotRL
	default:
		rot = RotRR
	}
	result, flags := rotateResult(rot, c.Regs.A, c.Regs.FlagC())
	c.Regs.A = result
	c.Regs.F = flags &^ flagZ
}

// execAddHL implements ADD HL,rr: 16-bit add, no Z change, H/C from bit
// 11/15 carry, N=0.
func (c *CPU) execAddHL(reg U16Register) {
	hl := c.Regs.HL()
	v := c.Regs.Get16(reg)
	sum := uint32(hl) + uint32(v)
	half := (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF
	c.Regs.SetHL(uint16(sum))
	c.Regs.SetFlagN(false)
	c.Regs.SetFlagH(half)
	c.Regs.SetFlagC(sum > 0xFFFF)
}

// execAddSPN implements ADD SP,n: the 8-bit signed immediate is added to
// SP; flags are computed as an 8-bit add of the low byte of SP and the
// immediate (matching real hardware's unintuitive-but-standard behaviour),
// Z and N are always cleared.
func (c *CPU) execAddSPN(imm8 byte) {
	n := int8(imm8)
	sp := c.Regs.SP
	result := uint16(int32(sp) + int32(n))
	low := byte(sp)
	half := (low&0x0F)+(byte(n)&0x0F) > 0x0F
	carry := uint16(low)+uint16(byte(n)) > 0xFF
	c.Regs.SP = result
	c.Regs.SetFlagZ(false)
	c.Regs.SetFlagN(false)
	c.Regs.SetFlagH(half)
	c.Regs.SetFlagC(carry)
}

// execLDHLSPN implements LD HL,SP+n with the same flag behaviour as
// ADD SP,n, writing the result to HL instead of SP.
func (c *CPU) execLDHLSPN(imm8 byte) {
	n := int8(imm8)
	sp := c.Regs.SP
	result := uint16(int32(sp) + int32(n))
	low := byte(sp)
	half := (low&0x0F)+(byte(n)&0x0F) > 0x0F
	carry := uint16(low)+uint16(byte(n)) > 0xFF
	c.Regs.SetHL(result)
	c.Regs.SetFlagZ(false)
	c.Regs.SetFlagN(false)
	c.Regs.SetFlagH(half)
	c.Regs.SetFlagC(carry)
}

// execDAA adjusts A after a BCD add/subtract, following N/H/C from the
// preceding ALU operation.
func (c *CPU) execDAA() {
	a := c.Regs.A
	var adjust byte
	carry := c.Regs.FlagC()
	if c.Regs.FlagN() {
		if c.Regs.FlagH() {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.Regs.FlagH() || a&0x0F > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}
	c.Regs.A = a
	c.Regs.SetFlagZ(a == 0)
	c.Regs.SetFlagH(false)
	c.Regs.SetFlagC(carry)
}
