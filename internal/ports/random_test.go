package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededRandomIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewSeededRandom(42)
	b := NewSeededRandom(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeededRandomStaysInRange(t *testing.T) {
	t.Parallel()

	r := NewSeededRandom(0)
	for i := 0; i < 100; i++ {
		v := r.IntN(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
