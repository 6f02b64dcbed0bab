package repos

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func sampleItems() []domain.OrderItem {
	return []domain.OrderItem{
		{Product: "Chair", Price: 50, Quantity: 4, LineTotal: 200},
		{Product: "Table", Price: 200, Quantity: 1, LineTotal: 200},
	}
}

func expectItemInserts(mock sqlmock.Sqlmock, orderID int32, items []domain.OrderItem) {
	for i, it := range items {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO order_items")).
			WithArgs(orderID, it.Product, it.Price, it.Quantity, it.LineTotal).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(100 + i)))
	}
}

func expectTotalRewrite(mock sqlmock.Sqlmock, orderID int32, total float64) {
	mock.ExpectQuery(regexp.QuoteMeta("total = (SELECT COALESCE(SUM(line_total), 0)")).
		WithArgs(orderID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(total))
}

func TestOrderRepository_CreateWithItems(t *testing.T) {
	t.Run("Always-insert creates the customer unconditionally", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		customer := &domain.Customer{Name: "Asha", Phone: "98400 12345", Address: "4 Lake View"}
		start := "2024-01-01"
		end := "2024-01-03"
		order := &domain.Order{InvoiceNo: "inv-token", OrderDate: "2024-01-01", RentStart: &start, RentEnd: &end}
		items := sampleItems()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
			WithArgs("Asha", "98400 12345", "", "4 Lake View", domain.RentStatusActive, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs("inv-token", int32(7), "2024-01-01", &start, &end, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
		expectItemInserts(mock, 42, items)
		expectTotalRewrite(mock, 42, 400)
		mock.ExpectCommit()

		total, err := repo.CreateWithItems(context.Background(), domain.CustomerAlwaysInsert, customer, order, items)

		require.NoError(t, err)
		assert.Equal(t, 400.0, total)
		assert.Equal(t, int32(7), customer.ID)
		assert.Equal(t, int32(42), order.ID)
		assert.Equal(t, 400.0, order.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Find-or-create reuses an existing phone match", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		customer := &domain.Customer{Name: "Asha", Phone: "98400 12345", Address: "4 Lake View"}
		order := &domain.Order{InvoiceNo: "inv-token", OrderDate: "2024-01-01"}
		items := sampleItems()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM customers WHERE phone = $1 ORDER BY id LIMIT 1")).
			WithArgs("98400 12345").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET name=$1, alt_phone=$2, address=$3")).
			WithArgs("Asha", "", "4 Lake View", sqlmock.AnyArg(), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs("inv-token", int32(7), "2024-01-01", nil, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
		expectItemInserts(mock, 42, items)
		expectTotalRewrite(mock, 42, 400)
		mock.ExpectCommit()

		total, err := repo.CreateWithItems(context.Background(), domain.CustomerFindOrCreateByPhone, customer, order, items)

		require.NoError(t, err)
		assert.Equal(t, 400.0, total)
		assert.Equal(t, int32(7), customer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Find-or-create inserts when no phone match exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		customer := &domain.Customer{Name: "Asha", Phone: "98400 12345", Address: "4 Lake View"}
		order := &domain.Order{InvoiceNo: "inv-token", OrderDate: "2024-01-01"}
		items := sampleItems()[:1]

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM customers WHERE phone = $1 ORDER BY id LIMIT 1")).
			WithArgs("98400 12345").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
			WithArgs("Asha", "98400 12345", "", "4 Lake View", domain.RentStatusActive, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(8)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs("inv-token", int32(8), "2024-01-01", nil, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(43)))
		expectItemInserts(mock, 43, items)
		expectTotalRewrite(mock, 43, 200)
		mock.ExpectCommit()

		total, err := repo.CreateWithItems(context.Background(), domain.CustomerFindOrCreateByPhone, customer, order, items)

		require.NoError(t, err)
		assert.Equal(t, 200.0, total)
		assert.Equal(t, int32(8), customer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert failure rolls everything back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		customer := &domain.Customer{Name: "Asha", Phone: "98400 12345", Address: "4 Lake View"}
		order := &domain.Order{InvoiceNo: "inv-token", OrderDate: "2024-01-01"}
		items := sampleItems()

		boom := errors.New("value too long")

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
			WithArgs("Asha", "98400 12345", "", "4 Lake View", domain.RentStatusActive, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs("inv-token", int32(7), "2024-01-01", nil, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO order_items")).
			WithArgs(int32(42), "Chair", 50.0, int32(4), 200.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(100)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO order_items")).
			WithArgs(int32(42), "Table", 200.0, int32(1), 200.0).
			WillReturnError(boom)
		mock.ExpectRollback()

		_, err := repo.CreateWithItems(context.Background(), domain.CustomerAlwaysInsert, customer, order, items)

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ReplaceItems(t *testing.T) {
	t.Run("Swaps items, patches dates and rewrites the total", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		items := []domain.OrderItem{{Product: "Tent", Price: 75, Quantity: 2, LineTotal: 150}}
		start := "2024-02-10"
		patch := domain.OrderPatch{RentStart: &start}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM orders WHERE id = $1")).
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM order_items WHERE order_id = $1")).
			WithArgs(int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		expectItemInserts(mock, 42, items)
		mock.ExpectExec(regexp.QuoteMeta("order_date = COALESCE($1, order_date)")).
			WithArgs(nil, &start, nil, sqlmock.AnyArg(), int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectTotalRewrite(mock, 42, 150)
		mock.ExpectCommit()

		total, err := repo.ReplaceItems(context.Background(), 42, patch, items)

		require.NoError(t, err)
		assert.Equal(t, 150.0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown order returns not-found and rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM orders WHERE id = $1")).
			WithArgs(int32(999)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.ReplaceItems(context.Background(), 999, domain.OrderPatch{},
			[]domain.OrderItem{{Product: "Tent", Price: 75, Quantity: 2, LineTotal: 150}})

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetByID(t *testing.T) {
	t.Run("Unknown id maps to not-found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := postgres.NewOrderRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
			WithArgs(int32(999)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderRepository_SalesBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*), COALESCE(SUM(total), 0) FROM orders")).
		WithArgs("2024-01-01", "2024-01-02").
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(int32(3), 950.0))

	count, total, err := repo.SalesBetween(context.Background(), "2024-01-01", "2024-01-02")

	require.NoError(t, err)
	assert.Equal(t, int32(3), count)
	assert.Equal(t, 950.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
