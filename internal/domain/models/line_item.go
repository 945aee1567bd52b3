package models

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for unit prices and
// costs. Values needing more would be rounded by the database.
const MoneyScale = 4

// LineItem represents a single product line within a sale.
//
// Fields:
//   - ID: Storage identifier. Optional metadata, never used in computations.
//   - SaleID: Identifier of the owning Sale. Navigation only; the Sale owns the item.
//   - Product: Product name (e.g., "Coffee 500g").
//   - Quantity: Units sold. Expected to be >= 1; not validated here.
//   - UnitPrice: Price charged per unit.
//   - UnitCost: Cost per unit. May exceed UnitPrice (negative profit).
type LineItem struct {
	ID        int64
	SaleID    int64
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// NewLineItem builds a detached line item. The owning sale sets SaleID
// when the item is attached through Sale.ReplaceLineItems.
func NewLineItem(product string, quantity int, unitPrice, unitCost decimal.Decimal) LineItem {
	return LineItem{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
	}
}

// Subtotal returns UnitPrice × Quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Profit returns (UnitPrice − UnitCost) × Quantity. Negative values are valid.
func (li LineItem) Profit() decimal.Decimal {
	return li.UnitPrice.Sub(li.UnitCost).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// FitsMoneyScale reports whether d can be stored with MoneyScale fractional
// digits without rounding. Trailing zeros beyond the scale are accepted.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
