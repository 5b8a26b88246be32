package handler

import (
	"encoding/json"
	"fxcalc/internal/conversion"
	"fxcalc/internal/render"
	"net/http"
)

type SwapRequest struct {
	Source string `json:"source" example:"USD"`
	Target string `json:"target" example:"KES"`
}

// Swap godoc
// @Summary Swap currencies
// @Description Flip the conversion direction and resolve the rate for the new pair
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body SwapRequest true "Current pair"
// @Success 200 {object} GetRateResponse
// @Failure 400 {object} errorResponse
// @Router /swap [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	var req SwapRequest
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

	source, target = conversion.Swap(source, target)

	view := h.service.GetRate(r.Context(), source, target)
	writeJSON(w, http.StatusOK, GetRateResponse{
		Source:  view.Source,
		Target:  view.Target,
		Rate:    view.Rate,
		Display: render.RateLine(view.Source, view.Target, view.Rate),
	})
}
