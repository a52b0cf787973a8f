package service

import (
	"context"
	"math/big"

	"github.com/ammlab/amm-service/internal/amm"
	"github.com/ammlab/amm-service/internal/service/dto"
)

// Service represents the interface for business logic.
type Service interface {
	AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*dto.AddLiquidityResult, error)
	RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) (*dto.RemoveLiquidityResult, error)
	Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error)
	Price(ctx context.Context, req dto.PriceRequest) (*big.Int, error)
	AmountOut(ctx context.Context, req dto.AmountOutRequest) (*big.Int, error)
}

// AMMService is the business-logic facade over the AMM engine.
type AMMService struct {
	engine *amm.Engine
}

// NewAMMService creates an AMMService.
func NewAMMService(engine *amm.Engine) *AMMService {
	return &AMMService{engine: engine}
}
