package handlers

import (
	"errors"
	"net/http"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
)

// DeliveryHandler handles HTTP requests for delivery resources.
type DeliveryHandler struct {
	uc     deliveryUsecase
	logger logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, logger: logger}
}

// Create handles POST /deliveries.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.uc.Create(r.Context(), req.OrderID, req.DistanceKm)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(*d))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "delivery already exists for order")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /deliveries/{id}.
func (h *DeliveryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := deliveryIDFromURL(r)
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// ListPending handles GET /deliveries/pending.
func (h *DeliveryHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListPending(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Assign handles POST /deliveries/{id}/assign.
func (h *DeliveryHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id := deliveryIDFromURL(r)
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req assignDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.CourierID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
		return
	}

	res, err := h.uc.Assign(r.Context(), id, req.CourierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignResultToResponse(res))
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		writeError(h.logger, w, r, http.StatusConflict, "delivery already assigned")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "courier not available")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles PUT /deliveries/{id}/status.
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := deliveryIDFromURL(r)
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateDeliveryStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.uc.UpdateStatus(r.Context(), id, domain.Status(req.Status))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "illegal status transition")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Rate handles POST /deliveries/{id}/rating.
func (h *DeliveryHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id := deliveryIDFromURL(r)
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req rateDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.uc.Rate(r.Context(), id, req.Rating, req.Feedback)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "rating must be between 1 and 5")
	case errors.Is(err, apperr.ErrNoCourierAssigned):
		writeError(h.logger, w, r, http.StatusConflict, "no courier assigned")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
