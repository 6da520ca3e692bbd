package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Unset.String())
	assert.Equal(t, "0", Of(0).String())
	assert.Equal(t, "0", Of(math.Copysign(0, -1)).String())
	assert.Equal(t, "3.5", Of(3.5).String())
	assert.Equal(t, "-12", Of(-12).String())
	assert.Equal(t, "1500000", Of(1.5e6).String())
}

func TestValueUnsetIsDistinctFromZero(t *testing.T) {
	t.Parallel()

	assert.False(t, Unset.IsSet())
	assert.True(t, Of(0).IsSet())
	assert.False(t, Unset.Equal(Of(0)))
	assert.True(t, Unset.Equal(Value{}))
	assert.False(t, Unset.Finite())
	assert.False(t, Of(math.NaN()).Finite())
}
