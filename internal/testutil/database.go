package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects MySQL reachable
// on localhost:3306 with a database named 'rompefaja_test'; tests skip when
// it is absent.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/rompefaja_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB limpia la BD de prueba
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderStatusHistory", "OrderItems", "Orders"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables crea las tablas necesarias para los tests
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		address VARCHAR(255),
		reference VARCHAR(255),
		paymentMethod VARCHAR(50),
		dni VARCHAR(20),
		cellphone VARCHAR(30),
		alternativeIngredients TINYINT(1) DEFAULT 0,
		termsAccepted TINYINT(1) DEFAULT 0,
		subtotal DECIMAL(10,2) DEFAULT 0.00,
		shippingCost DECIMAL(10,2) DEFAULT 0.00,
		total DECIMAL(10,2) DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_created (createdAt)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId BIGINT NOT NULL,
		productId VARCHAR(64),
		productName VARCHAR(255),
		price DECIMAL(10,2) DEFAULT 0.00,
		quantity INT DEFAULT 1,
		customizations JSON,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	createStatusHistoryTable := `
	CREATE TABLE IF NOT EXISTS OrderStatusHistory (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId),
		INDEX idx_order_created (orderId, createdAt)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
		{"OrderStatusHistory", createStatusHistoryTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
