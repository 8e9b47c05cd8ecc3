package xstrings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strext/xstrings"
)

func TestBuilderZeroValue(t *testing.T) {
	var b xstrings.Builder
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
}

func TestBuilderWrites(t *testing.T) {
	var b xstrings.Builder
	b.Write([]byte("ab"))
	b.WriteString("cd")
	b.WriteByte('e')
	n, _ := b.WriteRune('é')
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcdeé", b.String())
	assert.Equal(t, 7, b.Len())
}

func TestBuilderGrow(t *testing.T) {
	var b xstrings.Builder
	b.Grow(64)
	assert.GreaterOrEqual(t, b.Cap(), 64)

	b.WriteString("keep")
	b.Grow(1024)
	assert.GreaterOrEqual(t, b.Cap()-b.Len(), 1024)
	assert.Equal(t, "keep", b.String())

	assert.Panics(t, func() { b.Grow(-1) })
}

func TestBuilderResetKeepsEarlierStrings(t *testing.T) {
	var b xstrings.Builder
	b.WriteString("first")
	s := b.String()
	b.Reset()
	b.WriteString("second")
	assert.Equal(t, "first", s)
	assert.Equal(t, "second", b.String())
}

func BenchmarkChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var sb xstrings.Builder
		sb.Chain().Write("pink: ").WritelnDebug([3]int{255, 27, 141})
	}
}
