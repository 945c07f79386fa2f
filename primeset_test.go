package primesieve

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/hupe1980/primesieve/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeSet(t *testing.T) {
	set := NewPrimeSet()
	_, ok := set.Max()
	assert.False(t, ok)

	s, err := New(WithLimit(200_000), WithWorkers(2))
	require.NoError(t, err)
	_, err = s.Run(context.Background(), set)
	require.NoError(t, err)

	assert.Equal(t, uint64(17984), set.Cardinality())
	assert.Equal(t, uint64(25), set.Rank(100))
	assert.Equal(t, uint64(6542), set.Rank(65535))
	assert.True(t, set.Contains(65521))
	assert.True(t, set.Contains(65537))
	assert.False(t, set.Contains(65535))
	assert.False(t, set.Contains(1))

	expected := testutil.PrimesBelow(200_000)
	largest, ok := set.Max()
	assert.True(t, ok)
	assert.Equal(t, expected[len(expected)-1], largest)

	assert.Equal(t, expected, slices.Collect(set.All()))
}

func TestPrimeSet_RejectsOutOfOrder(t *testing.T) {
	set := NewPrimeSet()
	require.NoError(t, set.Emit(2))
	require.NoError(t, set.Emit(3))

	assert.ErrorIs(t, set.Emit(3), ErrOutOfOrder)
	assert.ErrorIs(t, set.Emit(2), ErrOutOfOrder)
	assert.Equal(t, uint64(2), set.Cardinality())
}

func TestPrimeSet_WriteRead(t *testing.T) {
	set := NewPrimeSet()
	s, err := New(WithLimit(3 * BlockSize))
	require.NoError(t, err)
	_, err = s.Run(context.Background(), set)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = set.WriteTo(&buf)
	require.NoError(t, err)

	loaded, err := ReadPrimeSet(&buf)
	require.NoError(t, err)
	assert.Equal(t, set.Cardinality(), loaded.Cardinality())

	largest, _ := set.Max()
	assert.ErrorIs(t, loaded.Emit(largest), ErrOutOfOrder, "a loaded set continues after its maximum")

	_, err = ReadPrimeSet(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
