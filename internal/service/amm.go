package service

import (
	"context"
	"math/big"

	"github.com/ammlab/amm-service/internal/service/dto"
	"github.com/ammlab/amm-service/internal/service/validate"
)

// AddLiquidity validates a deposit request and executes it against the engine.
// Deadlines are the only cancellation mechanism of engine operations, so the
// context is not consulted past this point.
func (s *AMMService) AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*dto.AddLiquidityResult, error) {
	if err := validate.AddLiquidityRequestValidate(req); err != nil {
		return nil, err
	}

	res, err := s.engine.AddLiquidity(
		req.Sender,
		req.AssetA, req.AssetB,
		req.DesiredA, req.DesiredB, req.MinA, req.MinB,
		req.Recipient,
		req.Deadline,
	)
	if err != nil {
		return nil, err
	}
	return &dto.AddLiquidityResult{AmountA: res.AmountA, AmountB: res.AmountB, Shares: res.Shares}, nil
}

// RemoveLiquidity validates a withdrawal request and executes it.
func (s *AMMService) RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) (*dto.RemoveLiquidityResult, error) {
	if err := validate.RemoveLiquidityRequestValidate(req); err != nil {
		return nil, err
	}

	res, err := s.engine.RemoveLiquidity(
		req.Sender,
		req.AssetA, req.AssetB,
		req.Shares, req.MinA, req.MinB,
		req.Recipient,
		req.Deadline,
	)
	if err != nil {
		return nil, err
	}
	return &dto.RemoveLiquidityResult{AmountA: res.AmountA, AmountB: res.AmountB}, nil
}

// Swap validates an exact-input swap request and executes it.
func (s *AMMService) Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	amounts, err := s.engine.SwapExactTokensForTokens(
		req.Sender,
		req.AmountIn, req.AmountOutMin,
		req.Path,
		req.Recipient,
		req.Deadline,
	)
	if err != nil {
		return nil, err
	}
	return &dto.SwapResult{AmountIn: amounts[0], AmountOut: amounts[1]}, nil
}

// Price returns the pool price of AssetA in AssetB at the fixed-point scale.
func (s *AMMService) Price(ctx context.Context, req dto.PriceRequest) (*big.Int, error) {
	return s.engine.GetPrice(req.AssetA, req.AssetB)
}

// AmountOut returns the constant-product output amount for explicit reserves.
func (s *AMMService) AmountOut(ctx context.Context, req dto.AmountOutRequest) (*big.Int, error) {
	if err := validate.AmountOutRequestValidate(req); err != nil {
		return nil, err
	}
	return s.engine.AmountOut(req.AmountIn, req.ReserveIn, req.ReserveOut)
}
