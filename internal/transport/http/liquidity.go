package http

import (
	"context"
	"net/http"

	"github.com/ammlab/amm-service/internal/transport/http/dto"
	"github.com/ammlab/amm-service/internal/transport/http/validate"
)

func (s *Server) handleAddLiquidity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, code, err := validate.AddLiquidityRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.AddLiquidity(ctx, *req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, dto.AddLiquidityResponse{
		AmountA: res.AmountA.String(),
		AmountB: res.AmountB.String(),
		Shares:  res.Shares.String(),
	})
}

func (s *Server) handleRemoveLiquidity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, code, err := validate.RemoveLiquidityRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.RemoveLiquidity(ctx, *req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, dto.RemoveLiquidityResponse{
		AmountA: res.AmountA.String(),
		AmountB: res.AmountB.String(),
	})
}
