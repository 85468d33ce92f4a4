// tracecopy.go - copies the formatted trace ring to the system clipboard,
// for pasting the last N executed instructions into a bug report. Grounded
// on video_backend_ebiten.go's clipboard.Init/clipboard.Read pairing,
// mirrored here as Init/Write for the opposite direction (copy, not
// paste).

package main

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// copyTraceToClipboard formats the last n trace entries, one per line, and
// writes them to the system clipboard. It is a no-op (returning false) on
// any platform or headless environment where the clipboard backend fails
// to initialise, since this is a convenience for interactive debugging,
// not a core operation.
func copyTraceToClipboard(ring *TraceRing, n int) bool {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return false
	}

	var sb strings.Builder
	for _, e := range ring.Last(n) {
		line := e.Formatted
		if line == "" {
			line = e.Instr.String()
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	clipboard.Write(clipboard.FmtText, []byte(sb.String()))
	return true
}
