package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
)

// FeeHandler handles HTTP requests for fee configuration and quotes.
type FeeHandler struct {
	uc     feeUsecase
	logger logx.Logger
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(logger logx.Logger, uc feeUsecase) *FeeHandler {
	return &FeeHandler{uc: uc, logger: logger}
}

type feeConfigDTO struct {
	BasePrice          float64 `json:"base_price"`
	PricePerKm         float64 `json:"price_per_km"`
	RushHourMultiplier float64 `json:"rush_hour_multiplier"`
	RushHourStart      int     `json:"rush_hour_start"`
	RushHourEnd        int     `json:"rush_hour_end"`
	NightFeeMultiplier float64 `json:"night_fee_multiplier"`
	NightFeeStart      int     `json:"night_fee_start"`
	NightFeeEnd        int     `json:"night_fee_end"`
}

func feeConfigToResponse(cfg domain.FeeConfig) feeConfigDTO {
	return feeConfigDTO(cfg)
}

func (dto feeConfigDTO) toModel() domain.FeeConfig {
	return domain.FeeConfig(dto)
}

type quoteResponse struct {
	Fee              float64 `json:"fee"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

// GetConfig handles GET /admin/fees.
func (h *FeeHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.uc.Config(r.Context())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, feeConfigToResponse(cfg))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "fee config not initialized")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateConfig handles PUT /admin/fees.
func (h *FeeHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req feeConfigDTO
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.uc.Update(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid fee config")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Quote handles GET /fees/quote?distance_km=.
func (h *FeeHandler) Quote(w http.ResponseWriter, r *http.Request) {
	distStr := r.URL.Query().Get("distance_km")
	dist, err := strconv.ParseFloat(distStr, 64)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid distance_km")
		return
	}

	feeAmount, minutes, err := h.uc.Quote(r.Context(), dist)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, quoteResponse{Fee: feeAmount, EstimatedMinutes: minutes})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid distance_km")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
