package handler

import (
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes" example:"KES,USD"`
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Retrieve all currency codes present in the rate table
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{
		Codes: h.validator.SupportedCodes(),
	})
}

type PairResponse struct {
	Source string `json:"source" example:"USD"`
	Target string `json:"target" example:"KES"`
}

type GetPairsResponse struct {
	Pairs []PairResponse `json:"pairs"`
}

// GetPairs godoc
// @Summary List configured pairs
// @Description Retrieve every currency pair with an explicit rate
// @Tags Rates
// @Produce json
// @Success 200 {object} GetPairsResponse
// @Router /rates/pairs [get]
func (h *Handler) GetPairs(w http.ResponseWriter, _ *http.Request) {
	pairs := h.service.Pairs()
	res := GetPairsResponse{Pairs: make([]PairResponse, 0, len(pairs))}
	for _, p := range pairs {
		res.Pairs = append(res.Pairs, PairResponse{Source: p.Base, Target: p.Quote})
	}
	writeJSON(w, http.StatusOK, res)
}
