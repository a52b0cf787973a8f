package http

import (
	"context"
	"net/http"

	"github.com/ammlab/amm-service/internal/transport/http/dto"
	"github.com/ammlab/amm-service/internal/transport/http/validate"
)

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Swap(ctx, *req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, dto.SwapResponse{
		AmountIn:  res.AmountIn.String(),
		AmountOut: res.AmountOut.String(),
	})
}
