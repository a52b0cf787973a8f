package dto

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AddLiquidityRequest represents a validated deposit request.
type AddLiquidityRequest struct {
	Sender    common.Address
	AssetA    common.Address
	AssetB    common.Address
	DesiredA  *big.Int
	DesiredB  *big.Int
	MinA      *big.Int
	MinB      *big.Int
	Recipient common.Address
	Deadline  time.Time
}

// AddLiquidityResult reports the actual deposit and the shares minted.
type AddLiquidityResult struct {
	AmountA *big.Int
	AmountB *big.Int
	Shares  *big.Int
}

// RemoveLiquidityRequest represents a validated withdrawal request.
type RemoveLiquidityRequest struct {
	Sender    common.Address
	AssetA    common.Address
	AssetB    common.Address
	Shares    *big.Int
	MinA      *big.Int
	MinB      *big.Int
	Recipient common.Address
	Deadline  time.Time
}

// RemoveLiquidityResult reports the actual amounts withdrawn.
type RemoveLiquidityResult struct {
	AmountA *big.Int
	AmountB *big.Int
}

// SwapRequest represents a validated exact-input swap request.
type SwapRequest struct {
	Sender       common.Address
	AmountIn     *big.Int
	AmountOutMin *big.Int
	Path         []common.Address
	Recipient    common.Address
	Deadline     time.Time
}

// SwapResult reports the input and output amounts of a swap.
type SwapResult struct {
	AmountIn  *big.Int
	AmountOut *big.Int
}

// PriceRequest asks for the price of AssetA denominated in AssetB.
type PriceRequest struct {
	AssetA common.Address
	AssetB common.Address
}

// AmountOutRequest asks for the pure constant-product output amount.
type AmountOutRequest struct {
	AmountIn   *big.Int
	ReserveIn  *big.Int
	ReserveOut *big.Int
}
