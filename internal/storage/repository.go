package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/salesledger/internal/domain/models"
	pq "github.com/lib/pq"
)

// ErrNotFound is returned by Save when asked to update a sale that does not exist.
var ErrNotFound = errors.New("sale does not exist")

// SalesRepository defines contract for sale persistence.
//
// Absence is not an error: FindByID returns (nil, nil) when no sale matches.
// Save assigns an identifier to new sales (ID == 0) and re-parents their
// line items; sales with an ID replace the stored row and all of its items.
// SaveImport stores a file's sales and its import log entry atomically:
// either both are visible afterwards or neither is.
type SalesRepository interface {
	ListAll(ctx context.Context) ([]*models.Sale, error)
	FindByID(ctx context.Context, id int64) (*models.Sale, error)
	Save(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	DeleteByID(ctx context.Context, id int64) error
	SaveImport(ctx context.Context, filename string, rowCount int, sales []*models.Sale) error
	HasImport(ctx context.Context, filename string) (bool, error)
}

type salesRepository struct {
	db *sql.DB
}

// NewSalesRepository returns a PostgreSQL-backed SalesRepository.
func NewSalesRepository(db *sql.DB) SalesRepository {
	return &salesRepository{db: db}
}

// ListAll loads every sale with its line items, ordered by id.
func (r *salesRepository) ListAll(ctx context.Context) ([]*models.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, customer, sold_at FROM sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	type header struct {
		id       int64
		customer string
		soldAt   time.Time
	}
	var headers []header
	for rows.Next() {
		var h header
		if err := rows.Scan(&h.id, &h.customer, &h.soldAt); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	_ = rows.Close()

	items, err := r.queryLineItems(ctx, `
		SELECT id, sale_id, product, quantity, unit_price, unit_cost
		FROM sale_line_items
		ORDER BY sale_id, id`)
	if err != nil {
		return nil, err
	}

	sales := make([]*models.Sale, 0, len(headers))
	for _, h := range headers {
		sales = append(sales, restoreSale(h.id, h.customer, h.soldAt, items[h.id]))
	}
	return sales, nil
}

// FindByID loads one sale, or returns (nil, nil) if it does not exist.
func (r *salesRepository) FindByID(ctx context.Context, id int64) (*models.Sale, error) {
	var customer string
	var soldAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT customer, sold_at FROM sales WHERE id = $1`, id).Scan(&customer, &soldAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query sale %d: %w", id, err)
	}

	items, err := r.queryLineItems(ctx, `
		SELECT id, sale_id, product, quantity, unit_price, unit_cost
		FROM sale_line_items
		WHERE sale_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	return restoreSale(id, customer, soldAt, items[id]), nil
}

// Save inserts or replaces a sale and its line items in a single transaction.
func (r *salesRepository) Save(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	if sale.ID == 0 {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO sales (customer, total, sold_at) VALUES ($1, $2, $3) RETURNING id`,
			sale.Customer, sale.Total(), sale.Timestamp,
		).Scan(&id)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert sale: %w", err)
		}
		sale.AssignID(id)
	} else {
		res, err := tx.ExecContext(ctx,
			`UPDATE sales SET customer = $1, total = $2, sold_at = $3 WHERE id = $4`,
			sale.Customer, sale.Total(), sale.Timestamp, sale.ID,
		)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update sale %d: %w", sale.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update sale %d: rows affected: %w", sale.ID, err)
		}
		if n == 0 {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update sale %d: %w", sale.ID, ErrNotFound)
		}
		// orphaned items are removed; the new collection is inserted below
		if _, err := tx.ExecContext(ctx, `DELETE FROM sale_line_items WHERE sale_id = $1`, sale.ID); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("delete line items of sale %d: %w", sale.ID, err)
		}
	}

	items := sale.LineItems()
	for i := range items {
		var itemID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO sale_line_items (sale_id, product, quantity, unit_price, unit_cost) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			sale.ID, items[i].Product, items[i].Quantity, items[i].UnitPrice, items[i].UnitCost,
		).Scan(&itemID)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert line item %d of sale %d: %w", i, sale.ID, err)
		}
		items[i].ID = itemID
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteByID removes a sale; line items are removed by cascade.
// Deleting an unknown id is a no-op.
func (r *salesRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	return nil
}

// SaveImport inserts new sales in one transaction, bulk-loading their line
// items with COPY, and upserts the import_log row for filename in that same
// transaction. Line item ids are not read back.
func (r *salesRepository) SaveImport(ctx context.Context, filename string, rowCount int, sales []*models.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, s := range sales {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO sales (customer, total, sold_at) VALUES ($1, $2, $3) RETURNING id`,
			s.Customer, s.Total(), s.Timestamp,
		).Scan(&id)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert sale: %w", err)
		}
		s.AssignID(id)
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"sale_line_items",
		"sale_id",
		"product",
		"quantity",
		"unit_price",
		"unit_cost",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, s := range sales {
		for _, li := range s.LineItems() {
			if _, err := stmt.Exec(li.SaleID, li.Product, li.Quantity, li.UnitPrice, li.UnitCost); err != nil {
				_ = stmt.Close()
				_ = tx.Rollback()
				return err
			}
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, upsertImportSQL, filename, rowCount); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record import %s: %w", filename, err)
	}

	return tx.Commit()
}

const upsertImportSQL = `
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`

// HasImport checks if a file was already imported.
func (r *salesRepository) HasImport(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// queryLineItems runs query and groups the resulting line items by sale id,
// preserving row order within each sale.
func (r *salesRepository) queryLineItems(ctx context.Context, query string, args ...interface{}) (map[int64][]models.LineItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[int64][]models.LineItem)
	for rows.Next() {
		var li models.LineItem
		if err := rows.Scan(&li.ID, &li.SaleID, &li.Product, &li.Quantity, &li.UnitPrice, &li.UnitCost); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		out[li.SaleID] = append(out[li.SaleID], li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", err)
	}
	return out, nil
}

// restoreSale rebuilds a stored sale. The total is recomputed from the items,
// which is what was persisted in the first place.
func restoreSale(id int64, customer string, soldAt time.Time, items []models.LineItem) *models.Sale {
	s := &models.Sale{ID: id, Customer: customer, Timestamp: soldAt.UTC()}
	s.ReplaceLineItems(items)
	return s
}
