package handler

import (
	"encoding/json"
	"errors"
	"fxcalc/internal/conversion"
	"fxcalc/internal/domain"
	"fxcalc/internal/render"
	"math"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// CreateConversionRequest carries the amount as raw JSON so both numbers and
// user typed strings ("1,250.50") are accepted.
type CreateConversionRequest struct {
	Amount json.RawMessage `json:"amount" swaggertype:"string" example:"100"`
	Source string          `json:"source" example:"USD"`
	Target string          `json:"target" example:"KES"`
}

type ConversionResponse struct {
	QuoteID     string    `json:"quote_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Source      string    `json:"source" example:"USD"`
	Target      string    `json:"target" example:"KES"`
	Amount      float64   `json:"amount" example:"100"`
	Rate        float64   `json:"rate" example:"128.5"`
	FeePercent  float64   `json:"fee_percent" example:"2"`
	GrossAmount float64   `json:"gross_amount" example:"12850"`
	FeeAmount   float64   `json:"fee_amount" example:"257"`
	NetAmount   float64   `json:"net_amount" example:"12593"`
	Display     string    `json:"display" example:"12,593.00 KES"`
	FeeDisplay  string    `json:"fee_display" example:"Fee: 257.00 KES"`
	RateDisplay string    `json:"rate_display" example:"1 USD = 128.50 KES"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-02T15:04:05Z"`
}

// CreateConversion godoc
// @Summary Convert an amount
// @Description Convert an amount between currencies, deducting the 2% service fee
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body CreateConversionRequest true "Conversion request"
// @Success 201 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse "invalid amount"
// @Failure 500 {object} errorResponse
// @Router /conversions [post]
func (h *Handler) CreateConversion(w http.ResponseWriter, r *http.Request) {
	var req CreateConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source := conversion.NormalizeCode(req.Source)
	target := conversion.NormalizeCode(req.Target)
	if err := h.validator.ValidateCodes(source, target); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.service.Quote(r.Context(), domain.ConversionRequest{
		Amount: parseAmount(req.Amount),
		Source: source,
		Target: target,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			writeError(w, http.StatusUnprocessableEntity, render.InvalidAmountMessage)
			return
		}
		msg := "ups, couldn't convert amount this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateConversion", "source": source, "target": target}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusCreated, toConversionResponse(quote))
}

// parseAmount accepts a JSON number or string. Anything else yields NaN.
func parseAmount(raw json.RawMessage) float64 {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return render.ParseAmount(s)
	}
	return math.NaN()
}

func toConversionResponse(q domain.Quote) ConversionResponse {
	return ConversionResponse{
		QuoteID:     q.ID.String(),
		Source:      q.Request.Source,
		Target:      q.Request.Target,
		Amount:      q.Request.Amount,
		Rate:        q.Rate,
		FeePercent:  domain.FeePercent,
		GrossAmount: q.Result.GrossAmount,
		FeeAmount:   q.Result.FeeAmount,
		NetAmount:   q.Result.NetAmount,
		Display:     render.NetLine(q.Result),
		FeeDisplay:  render.FeeLine(q.Result),
		RateDisplay: render.RateLine(q.Request.Source, q.Request.Target, q.Rate),
		CreatedAt:   q.CreatedAt,
	}
}
