package ds1307

// Addr is the chip's fixed 7-bit bus address.
const Addr = 0x68

const (
	regSeconds = 0x00
	regControl = 0x07

	nvramStart = 0x08
)

// NVRAMSize is the usable battery-backed RAM in bytes, addressed from
// logical offset 0.
const NVRAMSize = 56

const (
	// haltBit in the seconds register stops the oscillator.
	haltBit = 0x80

	// timeSetToken at logical NVRAM offset 0 records that the clock was
	// explicitly set; anything else means power-on garbage.
	timeSetToken  = 0xA5
	timeSetOffset = 0
)
