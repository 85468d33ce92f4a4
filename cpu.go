// cpu.go - the CPU struct and tick(), matching §4.4's "poll interrupt, else
// fetch/decode/execute" contract. Grounded on cpu_z80.go's Step()/Execute()
// split (fetch+decode in one method, dispatch through a function-pointer
// table in another) and its fetchOpcode/fetchByte helpers for PC-advancing
// reads.

package main

// CPU ties the register file to the memory map and interrupt controller
// and drives the fetch/decode/execute loop.
type CPU struct {
	Regs       RegisterFile
	Mem        *MemoryMap
	Interrupts *InterruptController
	Ring       *TraceRing
}

// NewCPU wires a CPU to its memory map, interrupt controller and trace
// ring. PC and SP are left at zero, so execution starts at 0x0000, where
// the boot ROM overlay is mapped.
func NewCPU(mem *MemoryMap, ic *InterruptController, ring *TraceRing) *CPU {
	return &CPU{Mem: mem, Interrupts: ic, Ring: ring}
}

// fetchByte reads the byte at PC and advances PC, for use as the pull
// source decodeInstruction streams through.
func (c *CPU) fetchByte() byte {
	b := c.Mem.Read(c.Regs.PC)
	c.Regs.PC++
	return b
}

// Tick performs exactly one instruction or one interrupt dispatch, per
// §4.4: when IME is set, poll for a pending, enabled interrupt first;
// otherwise fetch, decode and execute the next instruction. With IME clear
// a pending interrupt stays in IF. It pushes the execution record into the
// trace ring and returns it.
func (c *CPU) Tick() InstructionExecution {
	tBefore := c.Regs.t

	var kind InterruptKind
	ok := false
	if c.Interrupts.IME {
		kind, ok = c.Interrupts.Pop()
	}
	if ok {
		c.Interrupts.IME = false
		returnPC := c.Regs.PC
		c.push16(returnPC)
		c.Regs.PC = kind.handlerAddress()
		c.Regs.t += 4

		exec := InstructionExecution{
			TBefore: tBefore,
			TAfter:  c.Regs.t,
			Instr:   Instruction{Op: OpCALL, Imm16: kind.handlerAddress()},
			Source:  ExecutionSource{FromInterrupt: true, PC: returnPC, InterruptKind: int(kind)},
		}
		c.Ring.Push(exec)
		return exec
	}

	pc := c.Regs.PC
	inst := decodeInstruction(c.fetchByte)
	cycles := c.execute(inst)
	c.Regs.t += uint64(cycles)
	c.Interrupts.SettleDelayed()

	exec := InstructionExecution{
		TBefore: tBefore,
		TAfter:  c.Regs.t,
		Instr:   inst,
		Source:  ExecutionSource{PC: pc},
	}
	c.Ring.Push(exec)
	return exec
}

// push16 pushes a 16-bit value onto the stack: SP -= 2, high byte stored at
// the lower address (SP), low byte at SP+1.
func (c *CPU) push16(v uint16) {
	c.Regs.SP -= 2
	low, high := u16ToU8s(v)
	c.Mem.Write(c.Regs.SP, high)
	c.Mem.Write(c.Regs.SP+1, low)
}

// pop16 is push16's inverse.
func (c *CPU) pop16() uint16 {
	high := c.Mem.Read(c.Regs.SP)
	low := c.Mem.Read(c.Regs.SP + 1)
	c.Regs.SP += 2
	return u8sToU16(low, high)
}

// read8 reads an 8-bit operand, routing RegAtHL through the memory map
// since RegisterFile alone has no bus access.
func (c *CPU) read8(reg U8Register) byte {
	if reg == RegAtHL {
		return c.Mem.Read(c.Regs.HL())
	}
	return c.Regs.Get8(reg)
}

// write8 is read8's inverse.
func (c *CPU) write8(reg U8Register, v byte) {
	if reg == RegAtHL {
		c.Mem.Write(c.Regs.HL(), v)
		return
	}
	c.Regs.Set8(reg, v)
}

// readSecondary reads through one of the indirect-register operands,
// applying the HL post-increment/post-decrement side effect.
func (c *CPU) readSecondary(sec U8SecondaryRegister) byte {
	switch sec {
	case SecAtBC:
		return c.Mem.Read(c.Regs.BC())
	case SecAtDE:
		return c.Mem.Read(c.Regs.DE())
	case SecAtHLInc:
		v := c.Mem.Read(c.Regs.HL())
		c.Regs.SetHL(c.Regs.HL() + 1)
		return v
	default: // SecAtHLDec
		v := c.Mem.Read(c.Regs.HL())
		c.Regs.SetHL(c.Regs.HL() - 1)
		return v
	}
}

func (c *CPU) writeSecondary(sec U8SecondaryRegister, v byte) {
	switch sec {
	case SecAtBC:
		c.Mem.Write(c.Regs.BC(), v)
	case SecAtDE:
		c.Mem.Write(c.Regs.DE(), v)
	case SecAtHLInc:
		c.Mem.Write(c.Regs.HL(), v)
		c.Regs.SetHL(c.Regs.HL() + 1)
	default: // SecAtHLDec
		c.Mem.Write(c.Regs.HL(), v)
		c.Regs.SetHL(c.Regs.HL() - 1)
	}
}
