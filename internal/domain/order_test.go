package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_CurrentStatus_EmptyHistory(t *testing.T) {
	order := Order{ID: 1}

	assert.Equal(t, OrderStatusPending, order.CurrentStatus())
}

func TestOrder_CurrentStatus_LastEntryWins(t *testing.T) {
	now := time.Now()
	order := Order{
		ID: 1,
		StatusHistory: []StatusEvent{
			{Status: OrderStatusPending, Date: now.Add(-2 * time.Hour)},
			{Status: OrderStatusAccepted, Date: now.Add(-time.Hour)},
			{Status: OrderStatusDelivered, Date: now},
		},
	}

	assert.Equal(t, OrderStatusDelivered, order.CurrentStatus())
}

func TestOrder_CurrentStatus_BlankLastEntry(t *testing.T) {
	order := Order{
		ID: 1,
		StatusHistory: []StatusEvent{
			{Status: OrderStatusAccepted, Date: time.Now()},
			{Status: "", Date: time.Now()},
		},
	}

	assert.Equal(t, OrderStatusPending, order.CurrentStatus())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(OrderStatusPending))
	assert.True(t, IsValidStatus(OrderStatusAccepted))
	assert.True(t, IsValidStatus(OrderStatusDelivered))
	assert.True(t, IsValidStatus(OrderStatusCancelled))

	assert.False(t, IsValidStatus("FOO"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("pending"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pendiente", StatusLabel(OrderStatusPending))
	assert.Equal(t, "Aceptado", StatusLabel(OrderStatusAccepted))
	assert.Equal(t, "Entregado", StatusLabel(OrderStatusDelivered))
	assert.Equal(t, "Cancelado", StatusLabel(OrderStatusCancelled))
	assert.Equal(t, "FOO", StatusLabel("FOO"))
}
