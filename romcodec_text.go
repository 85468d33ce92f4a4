// romcodec_text.go - pretty-printer for a disassembled ROM, grouping each
// block under its pinned address. Grounded on zerodmg-codes/src/rom.rs's
// Display impl for Block/Rom, translated from that crate's write! calls
// into fmt.Stringer.

package main

import (
	"fmt"
	"strings"
)

func (b RomBlock) String() string {
	var sb strings.Builder
	switch b.Kind {
	case BlockCode:
		fmt.Fprintf(&sb, "0x%04X:\n", b.Address)
		addr := b.Address
		for _, inst := range b.Instructions {
			fmt.Fprintf(&sb, "  0x%04X  %s\n", addr, inst)
			addr += uint16(inst.Len())
		}
	case BlockData:
		fmt.Fprintf(&sb, "0x%04X: data[%d]\n", b.Address, len(b.Data))
	}
	return sb.String()
}

func (d *DisassembledRom) String() string {
	var sb strings.Builder
	for _, block := range d.Blocks {
		sb.WriteString(block.String())
	}
	return sb.String()
}
