package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "x", *String("x"))

	a, b := String("same"), String("same")
	assert.NotSame(t, a, b)
}

func TestDeref(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fallback", Deref[string](nil, "fallback"))
	assert.Equal(t, "v", Deref(String("v"), "fallback"))

	zero := 0
	assert.Equal(t, 0, Deref(&zero, 7))
}
