package http

import (
	"context"
	"net/http"

	"github.com/ammlab/amm-service/internal/transport/http/validate"
)

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.PriceRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	price, err := s.svc.Price(ctx, *req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeText(w, price.String())
}

func (s *Server) handleAmountOut(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.AmountOutRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	out, err := s.svc.AmountOut(ctx, *req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeText(w, out.String())
}
