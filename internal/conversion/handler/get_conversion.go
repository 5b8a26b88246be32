package handler

import (
	"errors"
	"fxcalc/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetConversion godoc
// @Summary Get a conversion quote
// @Description Fetch a recently computed conversion by its quote ID. Quotes expire after a short TTL.
// @Tags Conversions
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /conversions/{id} [get]
func (h *Handler) GetConversion(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote ID format")
		return
	}

	quote, err := h.service.GetQuote(r.Context(), quoteID)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			writeError(w, http.StatusNotFound, "quote not found")
			return
		}
		msg := "ups, couldn't get quote this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetConversion", "quote_id": quoteID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toConversionResponse(quote))
}
