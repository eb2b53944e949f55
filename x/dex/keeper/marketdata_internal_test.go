package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/dex/x/dex/types"
)

// TestMaxMinOptional exercises the skiplist-backed high/low lookup
// directly: maxOptional/minOptional must ignore unset entries and return
// the true max/min of whatever remains.
func TestMaxMinOptional(t *testing.T) {
	series := []types.OptionalPrice{
		{Value: math.NewUint(5), Set: true},
		{Set: false},
		{Value: math.NewUint(9), Set: true},
		{Value: math.NewUint(2), Set: true},
	}

	max, ok := maxOptional(series)
	require.True(t, ok)
	require.Equal(t, math.NewUint(9), max)

	min, ok := minOptional(series)
	require.True(t, ok)
	require.Equal(t, math.NewUint(2), min)
}

// TestMaxMinOptionalEmpty covers the all-unset case: both return not-ok.
func TestMaxMinOptionalEmpty(t *testing.T) {
	series := []types.OptionalPrice{{Set: false}, {Set: false}}

	_, ok := maxOptional(series)
	require.False(t, ok)

	_, ok = minOptional(series)
	require.False(t, ok)
}

// TestMaxMinOptionalDuplicates confirms repeated values collapse cleanly
// in the skiplist without perturbing the max/min result.
func TestMaxMinOptionalDuplicates(t *testing.T) {
	series := []types.OptionalPrice{
		{Value: math.NewUint(7), Set: true},
		{Value: math.NewUint(7), Set: true},
		{Value: math.NewUint(3), Set: true},
	}

	max, ok := maxOptional(series)
	require.True(t, ok)
	require.Equal(t, math.NewUint(7), max)

	min, ok := minOptional(series)
	require.True(t, ok)
	require.Equal(t, math.NewUint(3), min)
}
