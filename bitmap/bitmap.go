/*
Package bitmap converts glyph images into the fixed-size RGB565 bitmaps
embedded in the firmware.

A bitmap is a square grid of packed 16-bit colors stored row-major; each
value holds 5 bits of red in the most significant bits, 6 bits of green
and 5 bits of blue. The packing truncates the low-order bits of each
8-bit channel rather than rounding, which is what the firmware's display
driver expects.
*/
package bitmap

// Bitmap is a row-major grid of packed RGB565 pixels.
type Bitmap []uint16

// RGB565 packs an 8-bit-per-channel color into a 16-bit 5-6-5 value,
// discarding the low-order bits of each channel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b)>>3
}
