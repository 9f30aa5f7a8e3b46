package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/http/handlers"
)

type stubOrderUsecase struct {
	createFn       func(ctx context.Context, customerID string, items []domain.OrderItem) (*domain.Order, error)
	getFn          func(ctx context.Context, id string) (*domain.Order, error)
	updateStatusFn func(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}

func (s *stubOrderUsecase) Create(ctx context.Context, customerID string, items []domain.OrderItem) (*domain.Order, error) {
	return s.createFn(ctx, customerID, items)
}

func (s *stubOrderUsecase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	return s.updateStatusFn(ctx, orderID, status)
}

func TestOrderHandler_Create_Created(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		createFn: func(ctx context.Context, customerID string, items []domain.OrderItem) (*domain.Order, error) {
			require.Equal(t, "cust_1", customerID)
			require.Len(t, items, 2)
			require.Equal(t, "soup", items[0].Name)
			return &domain.Order{
				ID:         "order_1",
				CustomerID: customerID,
				Items:      items,
				Total:      12.30,
				Status:     domain.StatusPending,
			}, nil
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/orders",
		`{"customer_id":"cust_1","items":[{"name":"soup","price":3.1,"quantity":3},{"name":"bread","price":1.0,"quantity":3}]}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "order_1", body["id"])
	require.Equal(t, 12.30, body["total"])
}

func TestOrderHandler_Create_InvalidItems(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		createFn: func(context.Context, string, []domain.OrderItem) (*domain.Order, error) {
			return nil, apperr.ErrInvalid
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/orders", `{"customer_id":"cust_1","items":[]}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		getFn: func(ctx context.Context, id string) (*domain.Order, error) {
			require.Equal(t, "order_1", id)
			return &domain.Order{ID: id, CustomerID: "cust_1", Status: domain.StatusReady}, nil
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/order_1", nil), "id", "order_1")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		getFn: func(context.Context, string) (*domain.Order, error) {
			return nil, apperr.ErrNotFound
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/orders/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_UpdateStatus_OK(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		updateStatusFn: func(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
			require.Equal(t, domain.StatusReady, status)
			return &domain.Order{ID: orderID, CustomerID: "cust_1", Status: status}, nil
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	req := withURLParam(
		jsonRequest(http.MethodPut, "/orders/order_1/status", `{"status":"ready"}`), "id", "order_1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_UpdateStatus_BadStatus(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		updateStatusFn: func(context.Context, string, domain.Status) (*domain.Order, error) {
			return nil, apperr.ErrInvalid
		},
	}
	h := handlers.NewOrderHandler(testLogger(), uc)

	req := withURLParam(
		jsonRequest(http.MethodPut, "/orders/order_1/status", `{"status":"shipped"}`), "id", "order_1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
