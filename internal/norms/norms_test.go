package norms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestH1Coefficient(t *testing.T) {
	assert.Equal(t, 0.0, H1Coefficient(FreshCutting, BaselineCoefficient))
	assert.Equal(t, 1.0, H1Coefficient(BoxCutting, BaselineCoefficient))
	assert.InDelta(t, 0.34, H1Coefficient(BackCutting, BaselineCoefficient), 1e-9)
}

func TestLookupCutting(t *testing.T) {
	ct, err := LookupCutting(" Box ")
	require.NoError(t, err)
	assert.Equal(t, BoxCutting, ct.Coefficient)

	_, err = LookupCutting("trench")
	assert.Error(t, err)
}

func TestClassifyCoefficient(t *testing.T) {
	ct, ok := ClassifyCoefficient(0.67, 0.005)
	require.True(t, ok)
	assert.Equal(t, "back", ct.ID)

	_, ok = ClassifyCoefficient(0.8, 0.005)
	assert.False(t, ok)
}
