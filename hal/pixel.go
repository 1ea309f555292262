package hal

// Colours the emulated e-paper glass shows for set and clear page bits.
var (
	paperInk   = rgb565(0x10, 0x10, 0x10)
	paperWhite = rgb565(0xE8, 0xE6, 0xDC)
)

// inkThreshold matches the binarizer in deck/screen: darker pixels are ink.
const inkThreshold = 128

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands by bit replication so full scale maps to 0xFF.
func rgb888From565(p uint16) (r, g, b uint8) {
	r5, g6, b5 := uint8(p>>11)&0x1F, uint8(p>>5)&0x3F, uint8(p)&0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// isInk reports whether an 8-bit colour lands on the ink side (Rec.601 luma).
func isInk(r, g, b uint8) bool {
	return (uint32(r)*299+uint32(g)*587+uint32(b)*114)/1000 < inkThreshold
}
