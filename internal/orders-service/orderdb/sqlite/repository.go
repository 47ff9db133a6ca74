// Package sqlite provides the SQLite-backed implementation of
// orderdb.Repository.
//
// WAL mode is enabled on Open so that readers never block the writer —
// list/get requests keep working while a create is committing.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mvaldesdev/fleet-commerce/internal/orders-service/orderdb"

	// Register the pure-Go SQLite driver.
	// We use modernc.org/sqlite instead of mattn/go-sqlite3 to avoid CGO
	// requirements, making it easier to build and run in Docker (Alpine).
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. Order ids come from the
// AUTOINCREMENT rowid, which is what makes them monotonically increasing
// integers.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Wall-clock creation time (RFC3339 stored as TEXT, SQLite idiom).
    created_at  TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS order_details (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id    INTEGER NOT NULL REFERENCES orders(id),
    product_id  TEXT    NOT NULL,

    -- Decimal string such as "99.99"; never stored as REAL.
    price       TEXT    NOT NULL,
    quantity    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_details_order_id ON order_details(order_id);
`

// Repository is the SQLite implementation of orderdb.Repository.
type Repository struct {
	db *sql.DB
}

var _ orderdb.Repository = (*Repository)(nil)

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	repo, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver uses _pragma query parameters to configure connection state.
	// WAL enables concurrent readers. foreign_keys=on enforces the
	// order_details -> orders reference. busy_timeout waits for locks
	// instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3" for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Create inserts the order and its details in one transaction and returns
// the assigned id.
func (r *Repository) Create(ctx context.Context, details []orderdb.OrderDetail) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin create order: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (created_at) VALUES (?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("sqlite: insert order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: order id: %w", err)
	}

	const q = `INSERT INTO order_details (order_id, product_id, price, quantity) VALUES (?, ?, ?, ?)`
	for _, d := range details {
		if _, err := tx.ExecContext(ctx, q, orderID, d.ProductID, d.Price, d.Quantity); err != nil {
			return 0, fmt.Errorf("sqlite: insert order detail for %q: %w", d.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit order: %w", err)
	}
	return orderID, nil
}

// Get returns a single order with its details.
func (r *Repository) Get(ctx context.Context, id int64) (*orderdb.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, created_at FROM orders WHERE id = ?`, id)

	order := &orderdb.Order{}
	var createdAt string
	err := row.Scan(&order.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order id %d: %w", id, orderdb.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get order %d: %w", id, err)
	}
	order.CreatedAt, err = parseRFC3339(createdAt)
	if err != nil {
		return nil, err
	}

	order.OrderDetails, err = r.detailsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns one page of orders in ascending id order. page is 1-based.
func (r *Repository) List(ctx context.Context, page, limit int) ([]*orderdb.Order, error) {
	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at FROM orders ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}
	defer rows.Close()

	var orders []*orderdb.Order
	for rows.Next() {
		order := &orderdb.Order{}
		var createdAt string
		if err := rows.Scan(&order.ID, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan order: %w", err)
		}
		order.CreatedAt, err = parseRFC3339(createdAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	byID := make(map[int64]*orderdb.Order, len(orders))
	ids := make([]any, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	detailRows, err := r.db.QueryContext(ctx,
		`SELECT order_id, product_id, price, quantity FROM order_details
		 WHERE order_id IN (`+placeholders+`) ORDER BY order_id, id`, ids...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list order details: %w", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		var orderID int64
		var d orderdb.OrderDetail
		if err := detailRows.Scan(&orderID, &d.ProductID, &d.Price, &d.Quantity); err != nil {
			return nil, fmt.Errorf("sqlite: scan order detail: %w", err)
		}
		o := byID[orderID]
		o.OrderDetails = append(o.OrderDetails, d)
	}
	if err := detailRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list order details: %w", err)
	}
	return orders, nil
}

func (r *Repository) detailsFor(ctx context.Context, orderID int64) ([]orderdb.OrderDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, price, quantity FROM order_details WHERE order_id = ? ORDER BY id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: details for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var details []orderdb.OrderDetail
	for rows.Next() {
		var d orderdb.OrderDetail
		if err := rows.Scan(&d.ProductID, &d.Price, &d.Quantity); err != nil {
			return nil, fmt.Errorf("sqlite: scan order detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: details for order %d: %w", orderID, err)
	}
	return details, nil
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
