package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, resolution domain.CustomerResolution, customer *domain.Customer, order *domain.Order, items []domain.OrderItem) (float64, error) {
	logger.EnterMethod("orderRepository.CreateWithItems", "resolution", resolution, "invoiceNo", order.InvoiceNo, "items", len(items))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err)
		return 0, err
	}
	defer tx.Rollback()

	now := time.Now()

	if err := r.resolveCustomer(ctx, tx, resolution, customer, now); err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err, "phone", customer.Phone)
		return 0, err
	}
	order.CustomerID = customer.ID

	// Provisional total of zero; rewritten from the item rows below.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (invoice_no, customer_id, order_date, rent_start, rent_end, total, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $6) RETURNING id`,
		order.InvoiceNo, order.CustomerID, order.OrderDate, order.RentStart, order.RentEnd, now,
	).Scan(&order.ID)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err, "invoiceNo", order.InvoiceNo)
		return 0, err
	}

	if err := insertItems(ctx, tx, order.ID, items); err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err, "orderID", order.ID)
		return 0, err
	}

	total, err := rewriteTotal(ctx, tx, order.ID, now)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err, "orderID", order.ID)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("orderRepository.CreateWithItems", err, "orderID", order.ID)
		return 0, err
	}

	order.Total = total
	logger.ExitMethod("orderRepository.CreateWithItems", "orderID", order.ID, "total", total)
	return total, nil
}

func (r *orderRepository) ReplaceItems(ctx context.Context, orderID int32, patch domain.OrderPatch, items []domain.OrderItem) (float64, error) {
	logger.EnterMethod("orderRepository.ReplaceItems", "orderID", orderID, "items", len(items))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err)
		return 0, err
	}
	defer tx.Rollback()

	var existing int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM orders WHERE id = $1`, orderID).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", domain.ErrOrderNotFound, "orderID", orderID)
		return 0, domain.ErrOrderNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	// Whole item set is swapped; items have no identity outside their order.
	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	if err := insertItems(ctx, tx, orderID, items); err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	now := time.Now()

	// COALESCE keeps stored dates for fields the caller did not supply.
	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET
			order_date = COALESCE($1, order_date),
			rent_start = COALESCE($2, rent_start),
			rent_end   = COALESCE($3, rent_end),
			updated_on = $4
		WHERE id = $5`,
		patch.OrderDate, patch.RentStart, patch.RentEnd, now, orderID)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	total, err := rewriteTotal(ctx, tx, orderID, now)
	if err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("orderRepository.ReplaceItems", err, "orderID", orderID)
		return 0, err
	}

	logger.ExitMethod("orderRepository.ReplaceItems", "orderID", orderID, "total", total)
	return total, nil
}

// resolveCustomer inserts or resolves the customer row inside the transaction.
func (r *orderRepository) resolveCustomer(ctx context.Context, tx *sql.Tx, resolution domain.CustomerResolution, c *domain.Customer, now time.Time) error {
	if resolution == domain.CustomerFindOrCreateByPhone {
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM customers WHERE phone = $1 ORDER BY id LIMIT 1`, c.Phone).Scan(&c.ID)
		if err == nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE customers SET name=$1, alt_phone=$2, address=$3, updated_on=$4 WHERE id=$5`,
				c.Name, c.AltPhone, c.Address, now, c.ID)
			return err
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}
	return tx.QueryRowContext(ctx, `
		INSERT INTO customers (name, phone, alt_phone, address, rent_status, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		c.Name, c.Phone, c.AltPhone, c.Address, domain.RentStatusActive, now,
	).Scan(&c.ID)
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID int32, items []domain.OrderItem) error {
	for i := range items {
		items[i].OrderID = orderID
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product, price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			orderID, items[i].Product, items[i].Price, items[i].Quantity, items[i].LineTotal,
		).Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// rewriteTotal re-derives the order total from its current item rows. Running
// inside the writing transaction keeps total == sum(line_total) for every
// committed reader.
func rewriteTotal(ctx context.Context, tx *sql.Tx, orderID int32, now time.Time) (float64, error) {
	var total float64
	err := tx.QueryRowContext(ctx, `
		UPDATE orders SET
			total = (SELECT COALESCE(SUM(line_total), 0) FROM order_items WHERE order_id = $1),
			updated_on = $2
		WHERE id = $1 RETURNING total`, orderID, now).Scan(&total)
	return total, err
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	var orderDate sql.NullTime
	var rentStart, rentEnd sql.NullTime
	query := `SELECT id, invoice_no, customer_id, order_date, rent_start, rent_end, total, created_on, updated_on
	          FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.InvoiceNo, &o.CustomerID, &orderDate, &rentStart, &rentEnd, &o.Total, &o.CreatedOn, &o.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if orderDate.Valid {
		o.OrderDate = orderDate.Time.Format("2006-01-02")
	}
	o.RentStart = formatNullDate(rentStart)
	o.RentEnd = formatNullDate(rentEnd)
	return o, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID int32) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product, price, quantity, line_total
	          FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Product, &it.Price, &it.Quantity, &it.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepository) Delete(ctx context.Context, id int32) error {
	// Items cascade via FK constraint.
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) SalesBetween(ctx context.Context, from, to string) (int32, float64, error) {
	var count int32
	var total float64
	query := `SELECT count(*), COALESCE(SUM(total), 0) FROM orders WHERE order_date >= $1 AND order_date < $2`
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&count, &total)
	if err != nil {
		return 0, 0, err
	}
	return count, total, nil
}

func formatNullDate(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format("2006-01-02")
	return &s
}
