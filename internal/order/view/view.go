package view

import (
	"fmt"

	"rompefaja/internal/domain"
)

// Derived views over the store contents. Everything here is a pure function
// recomputed on read; nothing is incrementally maintained.

type Bucket struct {
	Title  string
	Status string
	Orders []domain.Order
}

type Stats struct {
	Delivered   int
	Pending     int
	TotalAmount string
}

// FilteredOrders keeps orders whose creation date falls within the range,
// inclusive at day granularity. A nil range means no filtering.
func FilteredOrders(orders []domain.Order, r *domain.DateRange) []domain.Order {
	if r == nil {
		return orders
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if r.Contains(order.CreatedAt) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// StatusBuckets partitions the filtered orders into the three presentation
// groups. CANCELLED orders appear in none of them.
func StatusBuckets(orders []domain.Order, r *domain.DateRange) []Bucket {
	filtered := FilteredOrders(orders, r)

	buckets := []Bucket{
		{Title: "Pendientes", Status: domain.OrderStatusPending},
		{Title: "Aceptadas", Status: domain.OrderStatusAccepted},
		{Title: "Entregadas", Status: domain.OrderStatusDelivered},
	}

	for i := range buckets {
		for _, order := range filtered {
			if order.CurrentStatus() == buckets[i].Status {
				buckets[i].Orders = append(buckets[i].Orders, order)
			}
		}
	}

	return buckets
}

// Summarize counts delivered and pending orders and sums Total over the
// delivered ones only, formatted to two decimals.
func Summarize(orders []domain.Order, r *domain.DateRange) Stats {
	filtered := FilteredOrders(orders, r)

	var delivered, pending int
	var totalAmount float64

	for _, order := range filtered {
		switch order.CurrentStatus() {
		case domain.OrderStatusDelivered:
			delivered++
			totalAmount += order.Total
		case domain.OrderStatusPending:
			pending++
		}
	}

	return Stats{
		Delivered:   delivered,
		Pending:     pending,
		TotalAmount: fmt.Sprintf("%.2f", totalAmount),
	}
}
