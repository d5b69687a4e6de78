package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedTranslator(now time.Time) *Translator {
	tr := NewTranslator(zap.NewNop())
	tr.now = func() time.Time { return now }
	return tr
}

func TestRawTime_UnmarshalMillis(t *testing.T) {
	var raw RawTime
	require.NoError(t, raw.UnmarshalJSON([]byte("1741610445000")))

	assert.Equal(t, time.UnixMilli(1741610445000), raw.Time)
}

func TestRawTime_UnmarshalRFC3339(t *testing.T) {
	var raw RawTime
	require.NoError(t, raw.UnmarshalJSON([]byte(`"2025-03-10T12:30:45Z"`)))

	assert.Equal(t, time.Date(2025, 3, 10, 12, 30, 45, 0, time.UTC), raw.Time)
}

func TestRawTime_UnmarshalGarbageLeavesZero(t *testing.T) {
	var raw RawTime
	require.NoError(t, raw.UnmarshalJSON([]byte(`"ayer"`)))
	assert.True(t, raw.Time.IsZero())

	require.NoError(t, raw.UnmarshalJSON([]byte(`{"nested": true}`)))
	assert.True(t, raw.Time.IsZero())
}

func TestTranslator_Decode(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tr := fixedTranslator(now)

	payload := []byte(`{
		"id": 15,
		"address": "Jr. Cusco 220",
		"total": 55.9,
		"subtotal": 50.9,
		"shippingCost": 5.0,
		"createdAt": "2025-03-10T11:59:00Z",
		"statusHistory": [{"status": "PENDING", "date": 1741607940000}],
		"items": [{
			"productId": "p-1",
			"productName": "Rompefaja Clásica",
			"price": 25.45,
			"quantity": 2,
			"customizations": {"fries": "extra", "vegetables": {"lechuga": true}, "sauces": {"ají": true}}
		}]
	}`)

	order, ok := tr.Decode(payload)

	require.True(t, ok)
	assert.Equal(t, int64(15), order.ID)
	assert.Equal(t, "Jr. Cusco 220", order.Address)
	assert.Equal(t, 55.9, order.Total)
	assert.Equal(t, time.Date(2025, 3, 10, 11, 59, 0, 0, time.UTC), order.CreatedAt)

	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "PENDING", order.StatusHistory[0].Status)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Rompefaja Clásica", order.Items[0].ProductName)
	assert.Equal(t, "extra", order.Items[0].Customizations.Fries)
	assert.True(t, order.Items[0].Customizations.Sauces["ají"])
}

func TestTranslator_Decode_UndecodableEnvelope(t *testing.T) {
	tr := fixedTranslator(time.Now())

	_, ok := tr.Decode([]byte("{this is not json"))

	assert.False(t, ok)
}

func TestTranslator_ToOrder_DefaultsMissingCreatedAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tr := fixedTranslator(now)

	order := tr.ToOrder(RawOrder{ID: 3})

	assert.Equal(t, now, order.CreatedAt)
}

func TestTranslator_ToOrder_NegativeMoneyBecomesZero(t *testing.T) {
	tr := fixedTranslator(time.Now())

	order := tr.ToOrder(RawOrder{
		ID:           4,
		Subtotal:     -10,
		ShippingCost: -1,
		Total:        -11,
		Items:        []RawOrderItem{{ProductName: "Clásica", Price: -25}},
	})

	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.ShippingCost)
	assert.Zero(t, order.Total)
	assert.Zero(t, order.Items[0].Price)
}

func TestTranslator_ToOrder_DefaultsMissingEventDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tr := fixedTranslator(now)

	order := tr.ToOrder(RawOrder{
		ID:            5,
		CreatedAt:     RawTime{Time: now},
		StatusHistory: []RawStatusEvent{{Status: "ACCEPTED"}},
	})

	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, now, order.StatusHistory[0].Date)
}

func TestTranslator_ParseCustomizations(t *testing.T) {
	tr := fixedTranslator(time.Now())

	c := tr.ParseCustomizations(1, []byte(`{"fries": "sin sal", "vegetables": {"tomate": false}}`))
	assert.Equal(t, "sin sal", c.Fries)
	assert.False(t, c.Vegetables["tomate"])

	assert.Equal(t, tr.ParseCustomizations(1, nil).Fries, "")
	assert.Empty(t, tr.ParseCustomizations(1, []byte("{{")).Vegetables)
}
