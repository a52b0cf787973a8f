package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ammlab/amm-service/internal/apperrors"
)

// statusFromError maps the engine's error taxonomy to HTTP status codes.
// Every sentinel reflects a caller mistake except the unknown default.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrPairNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrExpired),
		errors.Is(err, apperrors.ErrIdenticalAssets),
		errors.Is(err, apperrors.ErrZeroAddress),
		errors.Is(err, apperrors.ErrInsufficientAmount),
		errors.Is(err, apperrors.ErrInsufficientMinAmount),
		errors.Is(err, apperrors.ErrInsufficientAAmount),
		errors.Is(err, apperrors.ErrInsufficientBAmount),
		errors.Is(err, apperrors.ErrInsufficientShareBalance),
		errors.Is(err, apperrors.ErrInsufficientOutputAmount),
		errors.Is(err, apperrors.ErrInvalidPath),
		errors.Is(err, apperrors.ErrEmptyReserves),
		errors.Is(err, apperrors.ErrEmptyPool),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrInsufficientAllowance):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFromError(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		http.Error(w, "internal error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response write error: %v", err)
	}
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(s)); err != nil {
		log.Printf("response write error: %v", err)
	}
}
