package token

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ammlab/amm-service/internal/apperrors"
)

var (
	asset = common.HexToAddress("0x0000000000000000000000000000000000000001")
	owner = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	other = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	spndr = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func amt(v int64) *big.Int { return big.NewInt(v) }

func TestMintAndBalance(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	require.Zero(t, l.BalanceOf(asset, owner).Sign())

	l.Mint(asset, owner, amt(100))
	l.Mint(asset, owner, amt(50))
	require.Equal(t, amt(150), l.BalanceOf(asset, owner))

	// Balances are isolated per asset.
	otherAsset := common.HexToAddress("0x0000000000000000000000000000000000000002")
	require.Zero(t, l.BalanceOf(otherAsset, owner).Sign())
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	l.Mint(asset, owner, amt(100))

	require.NoError(t, l.Transfer(asset, owner, other, amt(60)))
	require.Equal(t, amt(40), l.BalanceOf(asset, owner))
	require.Equal(t, amt(60), l.BalanceOf(asset, other))

	err := l.Transfer(asset, owner, other, amt(41))
	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	// A failed transfer must not touch either balance.
	require.Equal(t, amt(40), l.BalanceOf(asset, owner))
	require.Equal(t, amt(60), l.BalanceOf(asset, other))
}

func TestTransferFrom(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	l.Mint(asset, owner, amt(100))
	l.Approve(asset, owner, spndr, amt(70))

	require.NoError(t, l.TransferFrom(asset, spndr, owner, other, amt(30)))
	require.Equal(t, amt(70), l.BalanceOf(asset, owner))
	require.Equal(t, amt(30), l.BalanceOf(asset, other))
	require.Equal(t, amt(40), l.Allowance(asset, owner, spndr))
}

func TestTransferFromAllowanceGuards(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	l.Mint(asset, owner, amt(100))

	t.Run("no approval at all", func(t *testing.T) {
		err := l.TransferFrom(asset, spndr, owner, other, amt(1))
		require.ErrorIs(t, err, apperrors.ErrInsufficientAllowance)
	})

	t.Run("allowance below amount", func(t *testing.T) {
		l.Approve(asset, owner, spndr, amt(10))
		err := l.TransferFrom(asset, spndr, owner, other, amt(11))
		require.ErrorIs(t, err, apperrors.ErrInsufficientAllowance)
		require.Equal(t, amt(10), l.Allowance(asset, owner, spndr))
	})

	t.Run("balance below amount keeps allowance", func(t *testing.T) {
		l.Approve(asset, owner, spndr, amt(500))
		err := l.TransferFrom(asset, spndr, owner, other, amt(200))
		require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
		require.Equal(t, amt(500), l.Allowance(asset, owner, spndr))
		require.Equal(t, amt(100), l.BalanceOf(asset, owner))
	})
}

func TestApproveOverwrites(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	l.Approve(asset, owner, spndr, amt(10))
	l.Approve(asset, owner, spndr, amt(3))
	require.Equal(t, amt(3), l.Allowance(asset, owner, spndr))
}

func TestBalanceOfReturnsCopy(t *testing.T) {
	t.Parallel()

	l := NewInMemoryLedger()
	l.Mint(asset, owner, amt(100))

	b := l.BalanceOf(asset, owner)
	b.SetInt64(0)
	require.Equal(t, amt(100), l.BalanceOf(asset, owner))
}
