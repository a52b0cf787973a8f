package validate

import (
	"github.com/pkg/errors"

	"github.com/ammlab/amm-service/internal/apperrors"
	"github.com/ammlab/amm-service/internal/service/dto"
)

// AddLiquidityRequestValidate checks that a deposit request carries every
// required amount. Sign and ordering rules belong to the engine; only shape is
// checked here.
func AddLiquidityRequestValidate(req dto.AddLiquidityRequest) error {
	if req.DesiredA == nil || req.DesiredB == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "desired amounts are required")
	}
	if req.MinA == nil || req.MinB == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "min amounts are required")
	}
	return nil
}

// RemoveLiquidityRequestValidate checks that a withdrawal request carries
// every required amount.
func RemoveLiquidityRequestValidate(req dto.RemoveLiquidityRequest) error {
	if req.Shares == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "shares to burn are required")
	}
	if req.MinA == nil || req.MinB == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "min amounts are required")
	}
	return nil
}

// SwapRequestValidate checks that a swap request carries its amounts and a
// two-element path.
func SwapRequestValidate(req dto.SwapRequest) error {
	if req.AmountIn == nil || req.AmountOutMin == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "swap amounts are required")
	}
	if len(req.Path) != 2 {
		return errors.Wrapf(apperrors.ErrInvalidPath, "length %d", len(req.Path))
	}
	return nil
}

// AmountOutRequestValidate checks that a pure pricing request carries all
// three operands.
func AmountOutRequestValidate(req dto.AmountOutRequest) error {
	if req.AmountIn == nil {
		return errors.Wrap(apperrors.ErrInsufficientAmount, "amount in is required")
	}
	if req.ReserveIn == nil || req.ReserveOut == nil {
		return errors.Wrap(apperrors.ErrEmptyReserves, "reserves are required")
	}
	return nil
}
