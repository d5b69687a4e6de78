package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rompefaja/internal/domain"
	apperrors "rompefaja/internal/errors"
	"rompefaja/internal/order/notify"
	"rompefaja/internal/order/store"
)

// Mock implementations

type mockOrderRepository struct {
	FetchAllFunc     func(ctx context.Context) ([]domain.Order, error)
	AppendStatusFunc func(ctx context.Context, orderID int64, status string) error
}

func (m *mockOrderRepository) FetchAll(ctx context.Context) ([]domain.Order, error) {
	return m.FetchAllFunc(ctx)
}

func (m *mockOrderRepository) AppendStatus(ctx context.Context, orderID int64, status string) error {
	return m.AppendStatusFunc(ctx, orderID, status)
}

type mockStore struct {
	loading   []bool
	lastError error
	replaced  [][]domain.Order
	appended  []domain.StatusEvent
}

func (m *mockStore) SetLoading(loading bool) { m.loading = append(m.loading, loading) }
func (m *mockStore) SetError(err error)      { m.lastError = err }
func (m *mockStore) ReplaceAll(orders []domain.Order) {
	m.replaced = append(m.replaced, orders)
}
func (m *mockStore) AppendStatusEvent(orderID int64, event domain.StatusEvent) {
	m.appended = append(m.appended, event)
}

type mockNotifier struct {
	messages []string
	types    []notify.Type
}

func (m *mockNotifier) Notify(message string, typ notify.Type) notify.Notification {
	m.messages = append(m.messages, message)
	m.types = append(m.types, typ)
	return notify.Notification{ID: "test", Message: message, Type: typ}
}

func TestOrdersService_Refresh_Success(t *testing.T) {
	orders := []domain.Order{{ID: 2}, {ID: 1}}
	repo := &mockOrderRepository{
		FetchAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return orders, nil
		},
	}
	st := &mockStore{}
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []bool{true}, st.loading)
	require.Len(t, st.replaced, 1)
	assert.Equal(t, orders, st.replaced[0])
	assert.Empty(t, notifier.messages)
}

func TestOrdersService_Refresh_BackendFailure(t *testing.T) {
	failure := apperrors.NewBackendUnavailableError("fetching orders", errors.New("connection refused"))
	repo := &mockOrderRepository{
		FetchAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, failure
		},
	}
	st := &mockStore{}
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.Refresh(context.Background())

	assert.Equal(t, failure, err)
	assert.Equal(t, failure, st.lastError)
	assert.Empty(t, st.replaced)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Error al cargar las órdenes", notifier.messages[0])
	assert.Equal(t, notify.TypeError, notifier.types[0])
}

func TestOrdersService_UpdateStatus_Success(t *testing.T) {
	var gotID int64
	var gotStatus string
	repo := &mockOrderRepository{
		AppendStatusFunc: func(ctx context.Context, orderID int64, status string) error {
			gotID = orderID
			gotStatus = status
			return nil
		},
	}
	st := &mockStore{}
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 7, domain.OrderStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, domain.OrderStatusAccepted, gotStatus)
	require.Len(t, st.appended, 1)
	assert.Equal(t, domain.OrderStatusAccepted, st.appended[0].Status)
	assert.Empty(t, notifier.messages)
}

func TestOrdersService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockOrderRepository{
		AppendStatusFunc: func(ctx context.Context, orderID int64, status string) error {
			t.Fatal("repository must not be called for an invalid status")
			return nil
		},
	}
	st := &mockStore{}
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 7, "FOO")

	require.Error(t, err)
	ise, ok := apperrors.IsInvalidStatusError(err)
	require.True(t, ok)
	assert.Equal(t, "FOO", ise.Status)

	assert.Empty(t, st.appended)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Error al actualizar la orden #7", notifier.messages[0])
	assert.Equal(t, notify.TypeError, notifier.types[0])
}

func TestOrdersService_UpdateStatus_RemoteFailure(t *testing.T) {
	failure := apperrors.NewBackendUnavailableError("appending status for order 7", errors.New("timeout"))
	repo := &mockOrderRepository{
		AppendStatusFunc: func(ctx context.Context, orderID int64, status string) error {
			return failure
		},
	}
	st := &mockStore{}
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 7, domain.OrderStatusDelivered)

	assert.Equal(t, failure, err)
	// Local store untouched: the write is remote-first.
	assert.Empty(t, st.appended)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Error al actualizar la orden #7", notifier.messages[0])
}

func TestOrdersService_UpdateStatus_OrderAbsentLocally(t *testing.T) {
	repo := &mockOrderRepository{
		AppendStatusFunc: func(ctx context.Context, orderID int64, status string) error {
			return nil
		},
	}
	// Real store, empty: the append must be a logged no-op, not a failure.
	st := store.New(zap.NewNop())
	notifier := &mockNotifier{}
	svc := NewOrdersService(repo, st, notifier, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 42, domain.OrderStatusDelivered)

	require.NoError(t, err)
	assert.Empty(t, st.Orders())
	assert.Empty(t, notifier.messages)
}

func TestOrdersService_UpdateStatus_EventDateFromClock(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockOrderRepository{
		AppendStatusFunc: func(ctx context.Context, orderID int64, status string) error {
			return nil
		},
	}
	st := &mockStore{}
	svc := NewOrdersService(repo, st, &mockNotifier{}, zap.NewNop())
	svc.now = func() time.Time { return fixed }

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, domain.OrderStatusAccepted))

	require.Len(t, st.appended, 1)
	assert.Equal(t, fixed, st.appended[0].Date)
}
