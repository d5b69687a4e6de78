package repository

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"rompefaja/internal/domain"
)

// RawOrder is the backend wire shape of an order, shared by the change-feed
// payloads and the JSON columns of the relational backend.
type RawOrder struct {
	ID                     int64            `json:"id"`
	Address                string           `json:"address"`
	AlternativeIngredients bool             `json:"alternativeIngredients"`
	DNI                    string           `json:"dni"`
	Cellphone              string           `json:"cellphone"`
	PaymentMethod          string           `json:"paymentMethod"`
	Reference              string           `json:"reference"`
	StatusHistory          []RawStatusEvent `json:"statusHistory"`
	Items                  []RawOrderItem   `json:"items"`
	Subtotal               float64          `json:"subtotal"`
	ShippingCost           float64          `json:"shippingCost"`
	TermsAccepted          bool             `json:"termsAccepted"`
	Total                  float64          `json:"total"`
	CreatedAt              RawTime          `json:"createdAt"`
}

type RawStatusEvent struct {
	Status string  `json:"status"`
	Date   RawTime `json:"date"`
}

type RawOrderItem struct {
	ProductID      string           `json:"productId"`
	ProductName    string           `json:"productName"`
	Price          float64          `json:"price"`
	Quantity       int              `json:"quantity"`
	Customizations RawCustomization `json:"customizations"`
}

type RawCustomization struct {
	Fries      string          `json:"fries"`
	Vegetables map[string]bool `json:"vegetables"`
	Sauces     map[string]bool `json:"sauces"`
}

// RawTime accepts either an RFC3339 string or a unix-millisecond number.
// Anything else leaves the zero value; the translator substitutes a default.
type RawTime struct {
	time.Time
}

func (t *RawTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(millis)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil
	}

	t.Time = parsed
	return nil
}

// Translator normalizes raw backend records into domain orders. The mapping
// is total: missing or malformed fields become defaults and are logged,
// never returned as errors.
type Translator struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTranslator(logger *zap.Logger) *Translator {
	return &Translator{
		logger: logger,
		now:    time.Now,
	}
}

func (t *Translator) ToOrder(raw RawOrder) domain.Order {
	order := domain.Order{
		ID:                     raw.ID,
		Address:                raw.Address,
		Reference:              raw.Reference,
		PaymentMethod:          raw.PaymentMethod,
		DNI:                    raw.DNI,
		Cellphone:              raw.Cellphone,
		AlternativeIngredients: raw.AlternativeIngredients,
		TermsAccepted:          raw.TermsAccepted,
		Subtotal:               t.nonNegative(raw.ID, "subtotal", raw.Subtotal),
		ShippingCost:           t.nonNegative(raw.ID, "shippingCost", raw.ShippingCost),
		Total:                  t.nonNegative(raw.ID, "total", raw.Total),
		CreatedAt:              raw.CreatedAt.Time,
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = t.now()
		t.logger.Warn("order record missing creation time, defaulting to now", zap.Int64("orderId", raw.ID))
	}

	order.StatusHistory = make([]domain.StatusEvent, 0, len(raw.StatusHistory))
	for _, ev := range raw.StatusHistory {
		date := ev.Date.Time
		if date.IsZero() {
			date = t.now()
			t.logger.Warn("status event missing date, defaulting to now", zap.Int64("orderId", raw.ID), zap.String("status", ev.Status))
		}
		order.StatusHistory = append(order.StatusHistory, domain.StatusEvent{
			Status: ev.Status,
			Date:   date,
		})
	}

	order.Items = make([]domain.OrderItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       t.nonNegative(raw.ID, "item price", item.Price),
			Quantity:    item.Quantity,
			Customizations: domain.Customization{
				Fries:      item.Customizations.Fries,
				Vegetables: item.Customizations.Vegetables,
				Sauces:     item.Customizations.Sauces,
			},
		})
	}

	return order
}

// Decode unmarshals a feed payload into a domain order. Malformed fields
// inside a decodable envelope become defaults; an undecodable envelope is
// reported with ok=false so the caller can skip the record.
func (t *Translator) Decode(payload []byte) (domain.Order, bool) {
	var raw RawOrder
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.logger.Warn("discarding undecodable feed payload", zap.Error(err))
		return domain.Order{}, false
	}
	return t.ToOrder(raw), true
}

// ParseCustomizations reads a JSON customizations column. Malformed content
// yields an empty customization and a log line.
func (t *Translator) ParseCustomizations(orderID int64, data []byte) domain.Customization {
	if len(data) == 0 {
		return domain.Customization{}
	}

	var raw RawCustomization
	if err := json.Unmarshal(data, &raw); err != nil {
		t.logger.Warn("malformed customizations column, defaulting to empty", zap.Int64("orderId", orderID), zap.Error(err))
		return domain.Customization{}
	}

	return domain.Customization{
		Fries:      raw.Fries,
		Vegetables: raw.Vegetables,
		Sauces:     raw.Sauces,
	}
}

func (t *Translator) nonNegative(orderID int64, field string, v float64) float64 {
	if v < 0 {
		t.logger.Warn("negative monetary field, defaulting to zero", zap.Int64("orderId", orderID), zap.String("field", field), zap.Float64("value", v))
		return 0
	}
	return v
}
