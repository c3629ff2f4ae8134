package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedColor(t *testing.T) {
	var src ColorSource = FixedColor{}
	assert.Equal(t, RGB{20, 20, 20}, src.Next())
	assert.Equal(t, src.Next(), src.Next())
}

func TestRandomColors_Deterministic(t *testing.T) {
	a := NewRandomColors(42)
	b := NewRandomColors(42)

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestRandomColors_SeedsDiffer(t *testing.T) {
	a := NewRandomColors(1)
	b := NewRandomColors(2)

	same := true
	for i := 0; i < 8; i++ {
		if a.Next() != b.Next() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different sequences")
}

func TestNewColorSource(t *testing.T) {
	assert.IsType(t, FixedColor{}, NewColorSource(false))
	assert.IsType(t, &RandomColors{}, NewColorSource(true))
}

func TestRGB_Hex(t *testing.T) {
	assert.Equal(t, "#141414", Gray.Hex())
	assert.Equal(t, "#ff0a00", RGB{255, 10, 0}.Hex())
}
