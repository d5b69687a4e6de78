package dto

import (
	"time"

	"rompefaja/internal/domain"
	"rompefaja/internal/order/notify"
	"rompefaja/internal/order/view"
)

type OrderResponse struct {
	ID                     int64                 `json:"id"`
	Address                string                `json:"address"`
	Reference              string                `json:"reference"`
	PaymentMethod          string                `json:"paymentMethod"`
	DNI                    string                `json:"dni"`
	Cellphone              string                `json:"cellphone"`
	AlternativeIngredients bool                  `json:"alternativeIngredients"`
	TermsAccepted          bool                  `json:"termsAccepted"`
	Subtotal               float64               `json:"subtotal"`
	ShippingCost           float64               `json:"shippingCost"`
	Total                  float64               `json:"total"`
	CreatedAt              time.Time             `json:"createdAt"`
	CreatedAtDisplay       string                `json:"createdAtDisplay"`
	CurrentStatus          string                `json:"currentStatus"`
	StatusLabel            string                `json:"statusLabel"`
	StatusHistory          []StatusEventResponse `json:"statusHistory"`
	Items                  []OrderItemResponse   `json:"items"`
}

type StatusEventResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type OrderItemResponse struct {
	ProductID      string                `json:"productId"`
	ProductName    string                `json:"productName"`
	Price          float64               `json:"price"`
	Quantity       int                   `json:"quantity"`
	Customizations CustomizationResponse `json:"customizations"`
}

type CustomizationResponse struct {
	Fries      string          `json:"fries"`
	Vegetables map[string]bool `json:"vegetables"`
	Sauces     map[string]bool `json:"sauces"`
}

type BucketResponse struct {
	Title  string          `json:"title"`
	Status string          `json:"status"`
	Orders []OrderResponse `json:"orders"`
}

type StatsResponse struct {
	Delivered   int    `json:"delivered"`
	Pending     int    `json:"pending"`
	TotalAmount string `json:"totalAmount"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type FilterRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SoundResponse struct {
	SoundEnabled bool `json:"soundEnabled"`
}

func FromOrder(order domain.Order) OrderResponse {
	status := order.CurrentStatus()

	history := make([]StatusEventResponse, 0, len(order.StatusHistory))
	for _, ev := range order.StatusHistory {
		history = append(history, StatusEventResponse{Status: ev.Status, Date: ev.Date})
	}

	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Customizations: CustomizationResponse{
				Fries:      item.Customizations.Fries,
				Vegetables: item.Customizations.Vegetables,
				Sauces:     item.Customizations.Sauces,
			},
		})
	}

	return OrderResponse{
		ID:                     order.ID,
		Address:                order.Address,
		Reference:              order.Reference,
		PaymentMethod:          order.PaymentMethod,
		DNI:                    order.DNI,
		Cellphone:              order.Cellphone,
		AlternativeIngredients: order.AlternativeIngredients,
		TermsAccepted:          order.TermsAccepted,
		Subtotal:               order.Subtotal,
		ShippingCost:           order.ShippingCost,
		Total:                  order.Total,
		CreatedAt:              order.CreatedAt,
		CreatedAtDisplay:       domain.FormatLimaTime(order.CreatedAt),
		CurrentStatus:          status,
		StatusLabel:            domain.StatusLabel(status),
		StatusHistory:          history,
		Items:                  items,
	}
}

func FromOrders(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromOrder(order))
	}
	return out
}

func FromBucket(bucket view.Bucket) BucketResponse {
	return BucketResponse{
		Title:  bucket.Title,
		Status: bucket.Status,
		Orders: FromOrders(bucket.Orders),
	}
}

func FromNotification(n notify.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		Timestamp: n.Timestamp,
	}
}
