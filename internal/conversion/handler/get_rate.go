package handler

import (
	"fxcalc/internal/conversion"
	"fxcalc/internal/render"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type GetRateResponse struct {
	Source  string  `json:"source" example:"USD"`
	Target  string  `json:"target" example:"KES"`
	Rate    float64 `json:"rate" example:"128.5"`
	Display string  `json:"display" example:"1 USD = 128.50 KES"`
}

// GetRate godoc
// @Summary Get exchange rate
// @Description Resolve the multiplier for a currency pair. Pairs missing from the table convert 1:1.
// @Tags Rates
// @Produce json
// @Param source path string true "Source currency code"
// @Param target path string true "Target currency code"
// @Success 200 {object} GetRateResponse
// @Failure 400 {object} errorResponse
// @Router /rates/{source}/{target} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	source := conversion.NormalizeCode(chi.URLParam(r, "source"))
	target := conversion.NormalizeCode(chi.URLParam(r, "target"))

	if err := h.validator.ValidateCodes(source, target); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.service.GetRate(r.Context(), source, target)
	writeJSON(w, http.StatusOK, GetRateResponse{
		Source:  view.Source,
		Target:  view.Target,
		Rate:    view.Rate,
		Display: render.RateLine(view.Source, view.Target, view.Rate),
	})
}
