package domain

import "time"

type Order struct {
	ID                     int64
	Address                string
	Reference              string
	PaymentMethod          string
	DNI                    string
	Cellphone              string
	AlternativeIngredients bool
	TermsAccepted          bool
	Subtotal               float64
	ShippingCost           float64
	Total                  float64
	CreatedAt              time.Time
	StatusHistory          []StatusEvent
	Items                  []OrderItem
}

// StatusEvent is one entry of an order's append-only status history.
type StatusEvent struct {
	Status string
	Date   time.Time
}

type OrderItem struct {
	ProductID      string
	ProductName    string
	Price          float64
	Quantity       int
	Customizations Customization
}

type Customization struct {
	Fries      string
	Vegetables map[string]bool
	Sauces     map[string]bool
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusAccepted  = "ACCEPTED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// CurrentStatus is the status of the last history entry. An empty history is
// a valid state and means PENDING.
func (o Order) CurrentStatus() string {
	if len(o.StatusHistory) == 0 {
		return OrderStatusPending
	}
	last := o.StatusHistory[len(o.StatusHistory)-1]
	if last.Status == "" {
		return OrderStatusPending
	}
	return last.Status
}

func IsValidStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func StatusLabel(status string) string {
	switch status {
	case OrderStatusPending:
		return "Pendiente"
	case OrderStatusAccepted:
		return "Aceptado"
	case OrderStatusDelivered:
		return "Entregado"
	case OrderStatusCancelled:
		return "Cancelado"
	}
	return status
}
