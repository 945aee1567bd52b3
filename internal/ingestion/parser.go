package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/salesledger/internal/domain/models"
	"github.com/shopspring/decimal"
)

// expectedHeaders enforces strict column ordering for sales import files.
// If the header doesn't match EXACTLY (order + count), the file is rejected.
var expectedHeaders = []string{
	"SaleRef",
	"Customer",
	"Timestamp",
	"Product",
	"Quantity",
	"UnitPrice",
	"UnitCost",
}

// timestampLayouts are tried in order for the Timestamp column.
var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

// saleRow is one parsed line of an import file.
type saleRow struct {
	SaleRef   string          `validate:"required"`
	Customer  string          `validate:"required"`
	Timestamp time.Time       `validate:"required"`
	Product   string          `validate:"required"`
	Quantity  int             `validate:"min=1"`
	UnitPrice decimal.Decimal `validate:"gte=0"`
	UnitCost  decimal.Decimal `validate:"gte=0"`
}

var validate = newValidator()

// newValidator returns a validator that compares decimal.Decimal fields as float64.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// parseFile reads one import file and groups its rows into sales.
//
// Rows sharing a SaleRef become one sale. The first row of a SaleRef decides
// customer and timestamp; line items keep row order. Sales are returned in
// order of first appearance.
//
// It fails on:
//   - header not matching expected order/length
//   - wrong column count, unparsable values or rows failing validation
//   - unrecoverable I/O errors or context cancellation
func parseFile(ctx context.Context, path string) ([]*models.Sale, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // checked explicitly below for better messages

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		// tolerate a UTF-8 BOM on the first column
		if strings.TrimPrefix(strings.TrimSpace(h), "\ufeff") != expectedHeaders[i] {
			return nil, 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	type group struct {
		customer string
		at       time.Time
		items    []models.LineItem
	}
	groups := map[string]*group{}
	var order []string

	lineNumber := 1
	rows := 0
	for {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		row, err := recordToRow(rec)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		g, ok := groups[row.SaleRef]
		if !ok {
			g = &group{customer: row.Customer, at: row.Timestamp}
			groups[row.SaleRef] = g
			order = append(order, row.SaleRef)
		}
		g.items = append(g.items, models.NewLineItem(row.Product, row.Quantity, row.UnitPrice, row.UnitCost))
		rows++
	}

	sales := make([]*models.Sale, 0, len(order))
	for _, ref := range order {
		g := groups[ref]
		sales = append(sales, models.NewSale(g.customer, g.items, g.at))
	}
	return sales, rows, nil
}

// recordToRow converts a single record (already validated length==7) into a
// validated saleRow.
//
// Column order:
//
//	0 SaleRef    → groups rows into one sale (string)
//	1 Customer   → Sale.Customer
//	2 Timestamp  → Sale.Timestamp (RFC3339 or "2006-01-02 15:04:05", UTC when no offset)
//	3 Product    → LineItem.Product
//	4 Quantity   → LineItem.Quantity (int ≥ 1)
//	5 UnitPrice  → LineItem.UnitPrice (decimal, comma or dot separator, ≥ 0)
//	6 UnitCost   → LineItem.UnitCost (decimal, comma or dot separator, ≥ 0)
func recordToRow(rec []string) (saleRow, error) {
	row := saleRow{
		SaleRef:  strings.TrimSpace(rec[0]),
		Customer: strings.TrimSpace(rec[1]),
		Product:  strings.TrimSpace(rec[3]),
	}

	if s := strings.TrimSpace(rec[2]); s != "" {
		ts, err := parseTimestamp(s)
		if err != nil {
			return row, err
		}
		row.Timestamp = ts
	}

	if s := strings.TrimSpace(rec[4]); s != "" {
		q, err := strconv.Atoi(s)
		if err != nil {
			return row, fmt.Errorf("invalid Quantity: %v", err)
		}
		row.Quantity = q
	}

	var err error
	if row.UnitPrice, err = parseDecimal("UnitPrice", rec[5]); err != nil {
		return row, err
	}
	if row.UnitCost, err = parseDecimal("UnitCost", rec[6]); err != nil {
		return row, err
	}

	if err := validate.Struct(row); err != nil {
		return row, describeValidation(err)
	}
	return row, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid Timestamp %q: expected RFC3339 or YYYY-MM-DD HH:MM:SS", s)
}

func parseDecimal(column, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("missing %s", column)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %v", column, err)
	}
	if !models.FitsMoneyScale(d) {
		return decimal.Zero, fmt.Errorf("invalid %s: more than %d decimal places", column, models.MoneyScale)
	}
	return d, nil
}

// describeValidation flattens validator errors into "Field: tag" pairs.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return fmt.Errorf("invalid row (%s)", strings.Join(parts, ", "))
}
