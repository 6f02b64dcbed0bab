package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, alt_phone, address, rent_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.AltPhone, c.Address, c.RentStatus, time.Now()).
		Scan(&c.ID, &c.CreatedOn, &c.UpdatedOn)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, phone, COALESCE(alt_phone, ''), COALESCE(address, ''), COALESCE(rent_status, ''), created_on, updated_on
	          FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.AltPhone, &c.Address, &c.RentStatus, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone=$2, alt_phone=$3, address=$4, updated_on=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.AltPhone, c.Address, time.Now(), c.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) UpdateStatus(ctx context.Context, id int32, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET rent_status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	sqlQuery := `SELECT id, name, phone, COALESCE(alt_phone, ''), COALESCE(address, ''), COALESCE(rent_status, ''), created_on, updated_on
	             FROM customers WHERE name ILIKE $1 OR phone LIKE $1 ORDER BY name LIMIT 50`
	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.AltPhone, &c.Address, &c.RentStatus, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	// Orders and their items cascade via FK constraints.
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) MarkActiveRenters(ctx context.Context, date string) (int64, error) {
	query := `UPDATE customers SET rent_status=$1, updated_on=$2
	          WHERE id IN (
	              SELECT customer_id FROM orders
	              WHERE rent_start IS NOT NULL AND rent_end IS NOT NULL
	                AND rent_start <= $3 AND rent_end >= $3
	          ) AND rent_status IS DISTINCT FROM $1`
	result, err := r.db.ExecContext(ctx, query, domain.RentStatusActive, time.Now(), date)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *customerRepository) CloseFinishedRenters(ctx context.Context, date string) (int64, error) {
	query := `UPDATE customers SET rent_status=$1, updated_on=$2
	          WHERE rent_status = $3 AND id NOT IN (
	              SELECT customer_id FROM orders
	              WHERE rent_start IS NOT NULL AND rent_end IS NOT NULL
	                AND rent_start <= $4 AND rent_end >= $4
	          )`
	result, err := r.db.ExecContext(ctx, query, domain.RentStatusClosed, time.Now(), domain.RentStatusActive, date)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
