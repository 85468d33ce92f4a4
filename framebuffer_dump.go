// framebuffer_dump.go - one-shot debug PNG dump of the current frame,
// upscaled with nearest-neighbour interpolation so pixel edges stay crisp
// at DMG resolution. Grounded on video_chip.go's splash-image decode/
// draw.Draw/PNG pipeline, swapping its stdlib image/draw bilinear scaler
// for golang.org/x/image/draw's NearestNeighbor (appropriate for a
// 4-greyscale-level source image, where blending shades would blur the
// palette rather than smooth it).

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// greyscaleLevel maps a 2-bit BGP-remapped colour index to an 8-bit grey
// value, darkest at index 3.
func greyscaleLevel(level byte) byte {
	switch level {
	case 0:
		return 0xFF
	case 1:
		return 0xAA
	case 2:
		return 0x55
	default:
		return 0x00
	}
}

// dumpFramebufferPNG renders fb at the given integer upscale factor and
// writes it to path as a PNG.
func dumpFramebufferPNG(fb *Framebuffer, scale int, path string) error {
	src := image.NewGray(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	fb.WithFrame(func(pixels *[ScreenWidth * ScreenHeight]byte) {
		for y := 0; y < ScreenHeight; y++ {
			for x := 0; x < ScreenWidth; x++ {
				src.SetGray(x, y, color.Gray{Y: greyscaleLevel(pixels[y*ScreenWidth+x])})
			}
		}
	})

	dst := image.NewGray(image.Rect(0, 0, ScreenWidth*scale, ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuffer dump: %w", err)
	}
	defer f.Close()

	return png.Encode(f, dst)
}
