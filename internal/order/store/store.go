package store

import (
	"sync"

	"go.uber.org/zap"

	"rompefaja/internal/domain"
)

// Store is the single authoritative in-memory collection of orders, held
// newest-first, plus the loading flag, last error and active date filter.
// All mutation goes through its methods; readers get copies.
type Store struct {
	mu      sync.RWMutex
	orders  []domain.Order
	loading bool
	err     error
	filter  *domain.DateRange
	logger  *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// ReplaceAll overwrites the collection with a bulk-refresh result and clears
// the loading flag and last error.
func (s *Store) ReplaceAll(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]domain.Order, len(orders))
	copy(s.orders, orders)
	s.loading = false
	s.err = nil
}

// Prepend inserts a live-feed arrival at the head. Id uniqueness is not
// enforced here; the feed's dedup window is the only guard against a
// duplicate insert.
func (s *Store) Prepend(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]domain.Order{order}, s.orders...)
}

// AppendStatusEvent appends one event to the order's history. A target
// absent from the local cache is a logged no-op: the update may reference an
// order not yet loaded.
func (s *Store) AppendStatusEvent(orderID int64, event domain.StatusEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].StatusHistory = append(s.orders[i].StatusHistory, event)
			return
		}
	}

	s.logger.Warn("status event targets order not in local cache", zap.Int64("orderId", orderID), zap.String("status", event.Status))
}

func (s *Store) SetFilter(r *domain.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r == nil {
		s.filter = nil
		return
	}
	cp := *r
	s.filter = &cp
}

func (s *Store) Filter() *domain.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.filter == nil {
		return nil
	}
	cp := *s.filter
	return &cp
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.loading = false
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Orders returns a copy of the collection, newest-first.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
