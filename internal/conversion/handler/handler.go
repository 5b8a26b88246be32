package handler

import (
	"context"
	"encoding/json"
	"fxcalc/internal/conversion"
	"fxcalc/internal/domain"
	"net/http"

	"github.com/google/uuid"
)

type validator interface {
	ValidateCodes(source, target string) error
	SupportedCodes() []string
}

type service interface {
	Quote(ctx context.Context, req domain.ConversionRequest) (domain.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (domain.Quote, error)
	GetRate(ctx context.Context, source, target string) conversion.RateView
	Pairs() []domain.RatePair
}

type Handler struct {
	validator validator
	service   service
}

func NewConversionHandler(v validator, s service) *Handler {
	return &Handler{validator: v, service: s}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
