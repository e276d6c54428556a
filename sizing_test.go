package probably

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	require.ErrorIs(t, CheckCapacity(0), ErrZeroCapacity)
	require.NoError(t, CheckCapacity(1))
	require.NoError(t, CheckCapacity(uint64(^uint(0))))

	// Only reachable where uint is narrower than 64 bits.
	maxUint := uint64(^uint(0))
	if maxUint < ^uint64(0) {
		require.ErrorIs(t, CheckCapacity(maxUint+1), ErrCapacityOverflow)
	}
}

func TestCapacitySafeCast(t *testing.T) {
	require.Equal(t, uint(0), CapacitySafeCast(0))
	require.Equal(t, uint(1), CapacitySafeCast(1))
	require.Equal(t, ^uint(0), CapacitySafeCast(uint64(^uint(0))))
}

func TestBitsetBytes(t *testing.T) {
	require.Equal(t, uint64(0), BitsetBytes(0))
	require.Equal(t, uint64(1), BitsetBytes(1))
	require.Equal(t, uint64(1), BitsetBytes(8))
	require.Equal(t, uint64(2), BitsetBytes(9))
	require.Equal(t, uint64(2), BitsetBytes(16))
	require.Equal(t, uint64(1)<<61, BitsetBytes(^uint64(0)))
}
