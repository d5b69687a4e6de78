package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rompefaja/internal/domain"
	"rompefaja/internal/errors"
	"rompefaja/internal/metrics"
	"rompefaja/internal/order/notify"
)

type OrderRepository interface {
	FetchAll(ctx context.Context) ([]domain.Order, error)
	AppendStatus(ctx context.Context, orderID int64, status string) error
}

type Store interface {
	SetLoading(loading bool)
	SetError(err error)
	ReplaceAll(orders []domain.Order)
	AppendStatusEvent(orderID int64, event domain.StatusEvent)
}

type Notifier interface {
	Notify(message string, typ notify.Type) notify.Notification
}

// OrdersService orchestrates the bulk refresh and the status updates between
// the repository and the local store.
type OrdersService struct {
	repo     OrderRepository
	store    Store
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrdersService(repo OrderRepository, store Store, notifier Notifier, logger *zap.Logger) *OrdersService {
	return &OrdersService{
		repo:     repo,
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Refresh replaces the local collection with the backend's current state.
// A failure is recorded in the store, notified, and returned so the caller
// can inspect or discard the outcome.
func (s *OrdersService) Refresh(ctx context.Context) error {
	s.store.SetLoading(true)

	orders, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Error("bulk refresh failed", zap.Error(err))
		s.store.SetError(err)
		s.notifier.Notify("Error al cargar las órdenes", notify.TypeError)
		return err
	}

	s.store.ReplaceAll(orders)
	s.logger.Info("bulk refresh completed", zap.Int("orderCount", len(orders)))
	return nil
}

// UpdateStatus appends one status event, remote first. The local store is
// only touched after the remote write succeeds; there is no retry and no
// rollback to perform.
func (s *OrdersService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if !domain.IsValidStatus(status) {
		err := errors.NewInvalidStatusError(status)
		s.logger.Warn("rejected status update", zap.Int64("orderId", orderID), zap.String("status", status))
		s.notifier.Notify(fmt.Sprintf("Error al actualizar la orden #%d", orderID), notify.TypeError)
		return err
	}

	if err := s.repo.AppendStatus(ctx, orderID, status); err != nil {
		s.logger.Error("status update failed", zap.Int64("orderId", orderID), zap.String("status", status), zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("Error al actualizar la orden #%d", orderID), notify.TypeError)
		return err
	}

	s.store.AppendStatusEvent(orderID, domain.StatusEvent{
		Status: status,
		Date:   s.now(),
	})
	metrics.StatusUpdates.Inc()
	s.logger.Info("order status updated", zap.Int64("orderId", orderID), zap.String("status", status))

	return nil
}
