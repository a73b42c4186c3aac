package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	g := NewGate("", true)

	assert.True(t, g.Check("Sampras"))
	assert.False(t, g.Check("sampras"))
	assert.False(t, g.Check(""))
	assert.False(t, g.Check("Sampras "))
}

func TestCheckIsRepeatable(t *testing.T) {
	g := NewGate("secret", true)
	for i := 0; i < 5; i++ {
		assert.False(t, g.Check("wrong"))
	}
	assert.True(t, g.Check("secret"))
}

func TestDisabledGateAcceptsAnything(t *testing.T) {
	g := NewGate("secret", false)
	assert.True(t, g.Check(""))
	assert.False(t, g.Enabled())
}
