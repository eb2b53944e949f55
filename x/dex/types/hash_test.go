package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHashFromBytesDeterministic confirms the same inputs always derive
// the same hash.
func TestHashFromBytesDeterministic(t *testing.T) {
	a := HashFromBytes([]byte("alice"), []byte("bob"))
	b := HashFromBytes([]byte("alice"), []byte("bob"))
	require.Equal(t, a, b)
}

// TestHashFromBytesLengthPrefixedNoCollision confirms the length-prefixing
// documented on HashFromBytes actually prevents the "ab","c" vs "a","bc"
// collision a naive concatenation would allow.
func TestHashFromBytesLengthPrefixedNoCollision(t *testing.T) {
	a := HashFromBytes([]byte("ab"), []byte("c"))
	b := HashFromBytes([]byte("a"), []byte("bc"))
	require.NotEqual(t, a, b)
}

// TestHashJSONRoundTrip covers the custom Marshal/UnmarshalJSON pair.
func TestHashJSONRoundTrip(t *testing.T) {
	h := HashFromBytes([]byte("round-trip"))
	bz, err := h.MarshalJSON()
	require.NoError(t, err)

	var out Hash
	require.NoError(t, out.UnmarshalJSON(bz))
	require.Equal(t, h, out)
}

// TestZeroHash confirms the zero-value sentinel behaves as documented.
func TestZeroHash(t *testing.T) {
	require.True(t, ZeroHash.IsZero())
	require.False(t, HashFromBytes([]byte("nonzero")).IsZero())
}
