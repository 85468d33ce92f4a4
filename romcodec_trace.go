// romcodec_trace.go - seeds the control-flow trace from the addresses a
// game ROM is known to be entered at: the eight RST targets, the five
// interrupt handlers, and the 0x100 entry point the boot ROM always jumps
// to. Grounded on §4.2's tracing entry points.

package main

// traceStandardGameInstructions walks control flow from every statically
// known entry point into a game ROM image: the RST targets, the interrupt
// handler addresses, and the cartridge entry point at 0x100.
func (a *AssembledRom) traceStandardGameInstructions() *AssembledRom {
	for _, target := range standardEntryPoints() {
		if a.inFixedRegion(target) {
			a.GetKnownInstruction(target)
		}
	}
	return a
}

// standardEntryPoints lists every address the hardware can transfer
// control to without it appearing as a jump target inside the traced code
// itself.
func standardEntryPoints() []uint16 {
	points := make([]uint16, 0, 8+5+1)
	for rst := Reset00; rst <= Reset38; rst++ {
		points = append(points, rst.address())
	}
	for kind := InterruptVBlank; kind <= InterruptButton; kind++ {
		points = append(points, kind.handlerAddress())
	}
	points = append(points, 0x0100)
	return points
}
