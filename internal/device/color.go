package device

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// RGB is a display color. It is persisted as a three-element JSON array.
type RGB [3]uint8

// Gray is the color used when device colors are not randomized.
var Gray = RGB{20, 20, 20}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// ColorSource hands out display colors for new devices.
type ColorSource interface {
	Next() RGB
}

// FixedColor always returns Gray.
type FixedColor struct{}

// Next implements ColorSource
func (FixedColor) Next() RGB {
	return Gray
}

// RandomColors draws each channel independently and uniformly.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns a deterministic color source for the given seed.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewSystemRandomColors returns a color source seeded from the clock.
func NewSystemRandomColors() *RandomColors {
	return NewRandomColors(uint64(time.Now().UnixNano()))
}

// Next implements ColorSource
func (r *RandomColors) Next() RGB {
	return RGB{
		uint8(r.rng.UintN(256)),
		uint8(r.rng.UintN(256)),
		uint8(r.rng.UintN(256)),
	}
}

// NewColorSource returns a random source when randomize is true and
// FixedColor otherwise.
func NewColorSource(randomize bool) ColorSource {
	if randomize {
		return NewSystemRandomColors()
	}
	return FixedColor{}
}
