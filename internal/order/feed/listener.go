package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rompefaja/internal/domain"
	"rompefaja/internal/metrics"
	"rompefaja/internal/order/notify"
	"rompefaja/internal/order/repository"
)

type State string

const (
	StateUnsubscribed State = "UNSUBSCRIBED"
	StateSubscribing  State = "SUBSCRIBING"
	StateActive       State = "ACTIVE"
	StateError        State = "ERROR"
)

const ChangeAdded = "added"

// Change is one entry of a feed batch. Only added kinds are processed;
// modifications and removals never reach the store from the feed.
type Change struct {
	Kind    string
	Payload []byte
}

// Source is a long-lived change stream. Poll blocks until a batch arrives or
// the stream fails; a returned error is terminal for this subscription.
type Source interface {
	Poll(ctx context.Context) ([]Change, error)
	Close()
}

type Store interface {
	Prepend(order domain.Order)
}

type Notifier interface {
	Notify(message string, typ notify.Type) notify.Notification
}

// Listener consumes the change feed and forwards genuinely new orders into
// the store. It does not auto-retry after a stream error; re-subscribing is
// the caller's responsibility.
type Listener struct {
	mu             sync.Mutex
	state          State
	cancel         context.CancelFunc
	subscriptionID string

	source     Source
	window     *Window
	translator *repository.Translator
	store      Store
	notifier   Notifier
	logger     *zap.Logger
}

func NewListener(
	source Source,
	window *Window,
	translator *repository.Translator,
	store Store,
	notifier Notifier,
	logger *zap.Logger,
) *Listener {
	return &Listener{
		state:      StateUnsubscribed,
		source:     source,
		window:     window,
		translator: translator,
		store:      store,
		notifier:   notifier,
		logger:     logger,
	}
}

func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Subscribe opens the stream. Only orders created strictly after the
// subscription start surface; anything older is skipped.
func (l *Listener) Subscribe(ctx context.Context) error {
	l.mu.Lock()

	if l.state == StateActive || l.state == StateSubscribing {
		l.mu.Unlock()
		return fmt.Errorf("feed listener already subscribed")
	}

	l.state = StateSubscribing
	subscribedAt := time.Now()
	l.subscriptionID = uuid.New().String()

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = StateActive

	logger := l.logger.With(zap.String("subscriptionId", l.subscriptionID))
	l.mu.Unlock()

	logger.Info("feed subscription active")
	go l.run(runCtx, subscribedAt, logger)

	return nil
}

// Unsubscribe stops consumption. This is the only cancellation primitive;
// batches already delivered are still processed.
func (l *Listener) Unsubscribe() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.state = StateUnsubscribed
}

// run owns a value snapshot of the subscription start so a later
// re-subscribe never races a batch still in flight.
func (l *Listener) run(ctx context.Context, subscribedAt time.Time, logger *zap.Logger) {
	for {
		changes, err := l.source.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.fail(err, logger)
			return
		}

		for _, change := range changes {
			l.handle(change, subscribedAt, logger)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func (l *Listener) handle(change Change, subscribedAt time.Time, logger *zap.Logger) {
	if change.Kind != ChangeAdded {
		return
	}

	order, ok := l.translator.Decode(change.Payload)
	if !ok {
		return
	}

	if !order.CreatedAt.After(subscribedAt) {
		logger.Debug("skipping pre-subscription record", zap.Int64("orderId", order.ID))
		return
	}

	if !l.window.ShouldProcess(order.ID) {
		metrics.OrdersDeduplicated.Inc()
		logger.Debug("order already processed within dedup window", zap.Int64("orderId", order.ID))
		return
	}

	l.store.Prepend(order)
	metrics.OrdersReceived.Inc()
	logger.Info("new order received", zap.Int64("orderId", order.ID), zap.Float64("total", order.Total))
	l.notifier.Notify(fmt.Sprintf("Nueva orden recibida: #%d", order.ID), notify.TypeSuccess)
}

func (l *Listener) fail(err error, logger *zap.Logger) {
	l.mu.Lock()
	l.state = StateError
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()

	logger.Error("feed subscription failed", zap.Error(err))
	l.notifier.Notify("Error al escuchar nuevas órdenes", notify.TypeError)
}
