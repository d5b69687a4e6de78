package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rompefaja/internal/domain"
	"rompefaja/internal/errors"
)

type MySQLOrderRepository struct {
	db         *sql.DB
	translator *Translator
	logger     *zap.Logger
}

func NewMySQLOrderRepository(db *sql.DB, translator *Translator, logger *zap.Logger) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db:         db,
		translator: translator,
		logger:     logger,
	}
}

// FetchAll returns every order newest-first, with items and status history
// attached. Transport failures surface as BackendUnavailableError.
func (r *MySQLOrderRepository) FetchAll(ctx context.Context) ([]domain.Order, error) {
	orders, index, err := r.fetchOrders(ctx)
	if err != nil {
		return nil, errors.NewBackendUnavailableError("fetching orders", err)
	}

	if err := r.attachItems(ctx, orders, index); err != nil {
		return nil, errors.NewBackendUnavailableError("fetching order items", err)
	}

	if err := r.attachHistory(ctx, orders, index); err != nil {
		return nil, errors.NewBackendUnavailableError("fetching order status history", err)
	}

	return orders, nil
}

// AppendStatus appends one history event for the order. The status is
// validated against the four-tag enumeration before touching the network.
func (r *MySQLOrderRepository) AppendStatus(ctx context.Context, orderID int64, status string) error {
	if !domain.IsValidStatus(status) {
		return errors.NewInvalidStatusError(status)
	}

	query := `INSERT INTO OrderStatusHistory (orderId, status, createdAt) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, orderID, status, time.Now()); err != nil {
		return errors.NewBackendUnavailableError(fmt.Sprintf("appending status for order %d", orderID), err)
	}

	return nil
}

func (r *MySQLOrderRepository) fetchOrders(ctx context.Context) ([]domain.Order, map[int64]int, error) {
	query := `
		SELECT id, address, reference, paymentMethod, dni, cellphone,
		       alternativeIngredients, termsAccepted, subtotal, shippingCost, total, createdAt
		FROM Orders
		ORDER BY createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	index := make(map[int64]int)

	for rows.Next() {
		var (
			id                     int64
			address                sql.NullString
			reference              sql.NullString
			paymentMethod          sql.NullString
			dni                    sql.NullString
			cellphone              sql.NullString
			alternativeIngredients sql.NullBool
			termsAccepted          sql.NullBool
			subtotal               sql.NullFloat64
			shippingCost           sql.NullFloat64
			total                  sql.NullFloat64
			createdAt              sql.NullTime
		)

		if err := rows.Scan(&id, &address, &reference, &paymentMethod, &dni, &cellphone,
			&alternativeIngredients, &termsAccepted, &subtotal, &shippingCost, &total, &createdAt); err != nil {
			return nil, nil, fmt.Errorf("scanning order row: %w", err)
		}

		raw := RawOrder{
			ID:                     id,
			Address:                address.String,
			Reference:              reference.String,
			PaymentMethod:          paymentMethod.String,
			DNI:                    dni.String,
			Cellphone:              cellphone.String,
			AlternativeIngredients: alternativeIngredients.Bool,
			TermsAccepted:          termsAccepted.Bool,
			Subtotal:               subtotal.Float64,
			ShippingCost:           shippingCost.Float64,
			Total:                  total.Float64,
			CreatedAt:              RawTime{Time: createdAt.Time},
		}

		index[id] = len(orders)
		orders = append(orders, r.translator.ToOrder(raw))
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, index, nil
}

func (r *MySQLOrderRepository) attachItems(ctx context.Context, orders []domain.Order, index map[int64]int) error {
	query := `
		SELECT orderId, productId, productName, price, quantity, customizations
		FROM OrderItems
		ORDER BY orderId, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID        int64
			productID      sql.NullString
			productName    sql.NullString
			price          sql.NullFloat64
			quantity       sql.NullInt64
			customizations []byte
		)

		if err := rows.Scan(&orderID, &productID, &productName, &price, &quantity, &customizations); err != nil {
			return fmt.Errorf("scanning order item row: %w", err)
		}

		pos, ok := index[orderID]
		if !ok {
			r.logger.Warn("item references unknown order, skipping", zap.Int64("orderId", orderID))
			continue
		}

		itemPrice := price.Float64
		if itemPrice < 0 {
			r.logger.Warn("negative item price, defaulting to zero", zap.Int64("orderId", orderID), zap.String("productId", productID.String))
			itemPrice = 0
		}

		orders[pos].Items = append(orders[pos].Items, domain.OrderItem{
			ProductID:      productID.String,
			ProductName:    productName.String,
			Price:          itemPrice,
			Quantity:       int(quantity.Int64),
			Customizations: r.translator.ParseCustomizations(orderID, customizations),
		})
	}

	return rows.Err()
}

func (r *MySQLOrderRepository) attachHistory(ctx context.Context, orders []domain.Order, index map[int64]int) error {
	query := `
		SELECT orderId, status, createdAt
		FROM OrderStatusHistory
		ORDER BY orderId, createdAt ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying status history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   int64
			status    sql.NullString
			createdAt sql.NullTime
		)

		if err := rows.Scan(&orderID, &status, &createdAt); err != nil {
			return fmt.Errorf("scanning status history row: %w", err)
		}

		pos, ok := index[orderID]
		if !ok {
			r.logger.Warn("status event references unknown order, skipping", zap.Int64("orderId", orderID))
			continue
		}

		orders[pos].StatusHistory = append(orders[pos].StatusHistory, domain.StatusEvent{
			Status: status.String,
			Date:   createdAt.Time,
		})
	}

	return rows.Err()
}
