// trace.go - fixed-capacity circular trace buffer. Grounded on the teacher's
// InstructionCount/perf-report bookkeeping in cpu_z80.go, generalised from a
// running counter to a ring of full execution records per the driver's
// periodic-dump requirement.

package main

// ExecutionSource records whether an InstructionExecution was a plain fetch
// at PC or an implicit interrupt dispatch.
type ExecutionSource struct {
	FromInterrupt bool
	PC            uint16
	InterruptKind int
}

// InstructionExecution is one trace ring entry: the cycle counter before and
// after the instruction, the instruction itself, and where it came from.
// Formatted can carry a pre-rendered trace line. Nothing in this package
// fills it in, and there is no build-time switch for it; consumers such as
// copyTraceToClipboard fall back to Instr.String() when it is empty.
type InstructionExecution struct {
	TBefore   uint64
	TAfter    uint64
	Instr     Instruction
	Source    ExecutionSource
	Formatted string
}

const traceRingCapacity = 1024

// TraceRing is a fixed-size circular buffer of InstructionExecution records,
// overwritten oldest-first once full. It is not safe for concurrent use;
// only the emulator thread writes it, per the concurrency model.
type TraceRing struct {
	entries [traceRingCapacity]InstructionExecution
	next    int
	count   int
}

// Push appends an execution record, evicting the oldest entry if the ring
// is already full.
func (r *TraceRing) Push(e InstructionExecution) {
	r.entries[r.next] = e
	r.next = (r.next + 1) % traceRingCapacity
	if r.count < traceRingCapacity {
		r.count++
	}
}

// Snapshot returns the ring's contents in chronological order (oldest
// first). The result is a copy: callers may retain it past further Push
// calls, which is what MachineFault relies on.
func (r *TraceRing) Snapshot() []InstructionExecution {
	out := make([]InstructionExecution, r.count)
	start := r.next - r.count
	if start < 0 {
		start += traceRingCapacity
	}
	for i := 0; i < r.count; i++ {
		out[i] = r.entries[(start+i)%traceRingCapacity]
	}
	return out
}

// Last returns the most recent n entries (or fewer, if the ring holds
// fewer), oldest first. Used by the driver's periodic trace dump.
func (r *TraceRing) Last(n int) []InstructionExecution {
	all := r.Snapshot()
	if n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}
