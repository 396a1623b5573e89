package punch_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/combograph/punch"
	"github.com/stretchr/testify/assert"
)

// TestNewCombo_CopiesInput ensures a Combo does not alias the caller's slice.
func TestNewCombo_CopiesInput(t *testing.T) {
	src := []punch.Kind{punch.Jab, punch.Cross}
	c := punch.NewCombo(src...)
	src[0] = punch.RearHook

	assert.Equal(t, []punch.Kind{punch.Jab, punch.Cross}, c.Punches())

	out := c.Punches()
	out[1] = punch.LeadUppercut
	assert.Equal(t, punch.Cross, c.Punches()[1])
}

func TestCombo_LenEqual(t *testing.T) {
	a := punch.NewCombo(punch.Jab, punch.Cross, punch.LeadHook)
	b := punch.NewCombo(punch.Jab, punch.Cross, punch.LeadHook)
	c := punch.NewCombo(punch.Jab, punch.LeadHook, punch.Cross)

	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, punch.NewCombo().Equal(punch.Combo{}))
	assert.Zero(t, punch.Combo{}.Len())
}

// ExampleNewCombo shows how a combo renders.
func ExampleNewCombo() {
	c := punch.NewCombo(punch.Jab, punch.Cross, punch.LeadHook)
	fmt.Println(c, c.Len())

	// Output:
	// Jab-Cross-LeadHook 3
}
