// framebuffer.go - the single mutex-protected framebuffer handle shared
// between the emulator thread (sole writer) and the UI thread (reader). No
// channel of frames: the UI always sees the latest complete frame, per the
// design note against introducing a frame channel. Grounded on
// video_screen_buffer.go's front-buffer-swap pattern, simplified to a single
// locked buffer since this core has exactly one producer and one consumer.

package main

import "sync"

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Framebuffer holds one complete 160x144 greyscale frame. Pixel values are
// the BGP-remapped 2-bit shades 0-3, which encode darkness (0 = white,
// 3 = black); callers that need RGB brightness convert at the boundary, as
// greyscaleLevel does for the PNG dump.
type Framebuffer struct {
	mu     sync.Mutex
	pixels [ScreenWidth * ScreenHeight]byte
}

// NewFramebuffer returns a framebuffer initialised to all-white (level 0).
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Set writes one pixel under the lock. The PPU compositor does not use it;
// it writes whole frames through WithFrame.
func (fb *Framebuffer) Set(x, y int, level byte) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.pixels[y*ScreenWidth+x] = level
}

// Snapshot returns a copy of the current frame contents, safe to retain and
// encode after the lock is released.
func (fb *Framebuffer) Snapshot() [ScreenWidth * ScreenHeight]byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.pixels
}

// WithFrame runs fn with the buffer locked, for a caller (the PPU
// compositor) that wants to write a whole frame under a single
// lock/unlock pair instead of one lock per pixel.
func (fb *Framebuffer) WithFrame(fn func(pixels *[ScreenWidth * ScreenHeight]byte)) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fn(&fb.pixels)
}
