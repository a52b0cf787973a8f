package amm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ammlab/amm-service/internal/apperrors"
)

var (
	testAssetX = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testAssetY = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func TestPairKeySymmetric(t *testing.T) {
	t.Parallel()

	k1, err := PairKey(testAssetX, testAssetY)
	require.NoError(t, err)
	k2, err := PairKey(testAssetY, testAssetX)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}

func TestPairKeyIdenticalAssets(t *testing.T) {
	t.Parallel()

	_, err := PairKey(testAssetX, testAssetX)
	require.ErrorIs(t, err, apperrors.ErrIdenticalAssets)
}

func TestSortAssets(t *testing.T) {
	t.Parallel()

	low, high := SortAssets(testAssetY, testAssetX)
	require.Equal(t, testAssetX, low)
	require.Equal(t, testAssetY, high)

	low, high = SortAssets(testAssetX, testAssetY)
	require.Equal(t, testAssetX, low)
	require.Equal(t, testAssetY, high)
}

func TestRegistryGetOrCreate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.Equal(t, 0, r.Len())

	p1, err := r.GetOrCreate(testAssetX, testAssetY)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	require.Equal(t, testAssetX, p1.AssetLow)
	require.Equal(t, testAssetY, p1.AssetHigh)
	require.Zero(t, p1.ReserveLow.Sign())
	require.Zero(t, p1.ReserveHigh.Sign())
	require.Zero(t, p1.TotalShares.Sign())

	// Same record regardless of argument order.
	p2, err := r.GetOrCreate(testAssetY, testAssetX)
	require.NoError(t, err)
	require.Same(t, p1, p2)
	require.Equal(t, 1, r.Len())
}

func TestRegistryGetOrCreateIdenticalAssets(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.GetOrCreate(testAssetX, testAssetX)
	require.ErrorIs(t, err, apperrors.ErrIdenticalAssets)
	require.Equal(t, 0, r.Len())
}

func TestRegistryGetMissing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.Get(testAssetX, testAssetY)
	require.ErrorIs(t, err, apperrors.ErrPairNotFound)
	require.Equal(t, 0, r.Len(), "lookups must not create pools")
}

func TestRegistryGetAfterCreate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	p1, err := r.GetOrCreate(testAssetX, testAssetY)
	require.NoError(t, err)

	p2, err := r.Get(testAssetY, testAssetX)
	require.NoError(t, err)
	require.Same(t, p1, p2)

	// Unrelated errors are not PairNotFound.
	_, err = r.Get(testAssetX, testAssetX)
	require.False(t, errors.Is(err, apperrors.ErrPairNotFound))
	require.ErrorIs(t, err, apperrors.ErrIdenticalAssets)
}

func TestPairCustodyDeterministic(t *testing.T) {
	t.Parallel()

	r1 := NewRegistry()
	r2 := NewRegistry()
	p1, err := r1.GetOrCreate(testAssetX, testAssetY)
	require.NoError(t, err)
	p2, err := r2.GetOrCreate(testAssetY, testAssetX)
	require.NoError(t, err)
	require.Equal(t, p1.Custody, p2.Custody)
	require.NotEqual(t, common.Address{}, p1.Custody)
}
