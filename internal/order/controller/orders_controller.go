package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rompefaja/internal/domain"
	"rompefaja/internal/dto"
	apperrors "rompefaja/internal/errors"
	"rompefaja/internal/order/notify"
	"rompefaja/internal/order/store"
	"rompefaja/internal/order/view"
)

type OrdersService interface {
	Refresh(ctx context.Context) error
	UpdateStatus(ctx context.Context, orderID int64, status string) error
}

// OrdersController is the hosting surface of the engine: it exposes the
// derived views and the mutation entry points as JSON.
type OrdersController struct {
	service  OrdersService
	store    *store.Store
	notifier *notify.Manager
	logger   *zap.Logger
}

func NewOrdersController(service OrdersService, st *store.Store, notifier *notify.Manager, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		service:  service,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

func (c *OrdersController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := view.FilteredOrders(c.store.Orders(), c.store.Filter())
	c.writeJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (c *OrdersController) GetBuckets(w http.ResponseWriter, r *http.Request) {
	buckets := view.StatusBuckets(c.store.Orders(), c.store.Filter())

	response := make([]dto.BucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		response = append(response, dto.FromBucket(bucket))
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *OrdersController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := view.Summarize(c.store.Orders(), c.store.Filter())
	c.writeJSON(w, http.StatusOK, dto.StatsResponse{
		Delivered:   stats.Delivered,
		Pending:     stats.Pending,
		TotalAmount: stats.TotalAmount,
	})
}

func (c *OrdersController) Refresh(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.service.Refresh(r.Context()); err != nil {
		logger.Warn("refresh request failed", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "could not load orders from the backend")
		return
	}

	c.writeJSON(w, http.StatusOK, dto.FromOrders(view.FilteredOrders(c.store.Orders(), c.store.Filter())))
}

func (c *OrdersController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "orderId must be an integer")
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	if err := c.service.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]any{
		"traceId": traceID,
		"orderId": orderID,
		"status":  req.Status,
	})
}

func (c *OrdersController) SetFilter(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req dto.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "start must be a yyyy-mm-dd date")
		return
	}

	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "end must be a yyyy-mm-dd date")
		return
	}

	if end.Before(start) {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "end must not be before start")
		return
	}

	c.store.SetFilter(&domain.DateRange{Start: start, End: end})
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrdersController) ClearFilter(w http.ResponseWriter, r *http.Request) {
	c.store.SetFilter(nil)
	w.WriteHeader(http.StatusNoContent)
}

func (c *OrdersController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications := c.notifier.Notifications()

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, dto.FromNotification(n))
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *OrdersController) ToggleSound(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.SoundResponse{SoundEnabled: c.notifier.ToggleSound()})
}

func (c *OrdersController) handleServiceError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ise, ok := apperrors.IsInvalidStatusError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, "INVALID_STATUS", ise.Error())
		return
	}

	if _, ok := apperrors.IsBackendUnavailableError(err); ok {
		c.writeError(w, traceID, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "backend rejected the status write")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *OrdersController) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		TraceID:   traceID,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
