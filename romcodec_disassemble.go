// romcodec_disassemble.go - groups a traced AssembledRom's role-tagged
// bytes into alternating Code/Data blocks. Grounded on §4.2's block
// splitting rules and on zerodmg-codes/src/rom.rs's Block enum, adapted
// from that crate's owned Vec<Block> to this repo's RomBlock/
// RomBlockKind pair.

package main

// RomBlockKind tags whether a block holds decoded instructions or raw
// data bytes. Exactly one of Instructions or Data is populated, selected
// by Kind.
type RomBlockKind int

const (
	BlockCode RomBlockKind = iota
	BlockData
)

// RomBlock is one contiguous run of either instructions or data bytes,
// pinned to the address its first byte occupied in the source image.
type RomBlock struct {
	Address      uint16
	Kind         RomBlockKind
	Instructions []Instruction
	Data         []byte
}

// DisassembledRom is an AssembledRom regrouped into a sequence of
// alternating RomBlocks, suitable for pretty-printing or for reassembly
// back into an AssembledRom. Length preserves the source image's total
// size, since a dropped all-zero trailing Data block would otherwise leave
// assemble() with nothing to pad out to the original length.
type DisassembledRom struct {
	Blocks []RomBlock
	Length int
}

// disassemble regroups a is byte-per-byte roles into blocks: a new Code
// block starts at every byte marked KnownJumpDestination; contiguous
// InstructionStart bytes that aren't themselves jump destinations extend
// the current Code block, unless the current block is Data, in which case
// a non-NOP instruction opens a new Code block while a NOP closes the Data
// block without starting a new one; contiguous Unknown bytes form Data
// blocks; trailing NOPs are stripped from Code blocks; an all-zero Data
// block is dropped (it represents unreached padding, not real content).
func (a *AssembledRom) disassemble() *DisassembledRom {
	var blocks []RomBlock
	afterData := false
	i := 0
	for i < len(a.bytes) {
		rb := a.bytes[i]
		switch rb.Role {
		case RoleInstructionStart:
			if afterData && rb.Instr.Op == OpNOP && !rb.KnownJumpDestination {
				i++ // padding after data: no Code block opens here
				continue
			}
			afterData = false
			start := i
			var instrs []Instruction
			for i < len(a.bytes) && a.bytes[i].Role == RoleInstructionStart {
				if i != start && a.bytes[i].KnownJumpDestination {
					break
				}
				instrs = append(instrs, a.bytes[i].Instr)
				i += a.bytes[i].Instr.Len()
			}
			instrs = stripTrailingNOPs(instrs)
			if len(instrs) > 0 {
				blocks = append(blocks, RomBlock{Address: uint16(start), Kind: BlockCode, Instructions: instrs})
			}
		case RoleInstructionRest:
			// only reachable if tracing is inconsistent (a RoleInstructionRest
			// byte not preceded by its owning RoleInstructionStart); treat as
			// data to stay total rather than panicking mid-disassembly.
			start := i
			var data []byte
			for i < len(a.bytes) && a.bytes[i].Role == RoleInstructionRest {
				data = append(data, a.bytes[i].Byte)
				i++
			}
			afterData = true
			if !allZero(data) {
				blocks = append(blocks, RomBlock{Address: uint16(start), Kind: BlockData, Data: data})
			}
		default: // RoleUnknown
			start := i
			var data []byte
			for i < len(a.bytes) && a.bytes[i].Role == RoleUnknown {
				data = append(data, a.bytes[i].Byte)
				i++
			}
			afterData = true
			if !allZero(data) {
				blocks = append(blocks, RomBlock{Address: uint16(start), Kind: BlockData, Data: data})
			}
		}
	}
	return &DisassembledRom{Blocks: blocks, Length: len(a.bytes)}
}

func stripTrailingNOPs(instrs []Instruction) []Instruction {
	end := len(instrs)
	for end > 0 && instrs[end-1].Op == OpNOP {
		end--
	}
	return instrs[:end]
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
