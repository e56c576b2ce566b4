package bitwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{1, 2, 4, 512, 1024, 32768, 65536, 1 << 40} {
		assert.True(t, IsPowerOfTwo(n), n)
	}

	for _, n := range []uint64{0, 3, 5, 511, 513, 32769, 65535} {
		assert.False(t, IsPowerOfTwo(n), n)
	}
}
