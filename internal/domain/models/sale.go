package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a recorded sales transaction and the owner of its line items.
//
// Total is a float64 convenience aggregate cached whenever the line items
// are replaced. ProfitTotal is always computed on demand with exact decimal
// arithmetic. The two paths are kept separate because they round differently.
type Sale struct {
	ID        int64
	Customer  string
	Timestamp time.Time

	lineItems []LineItem
	total     float64
}

// NewSale creates a sale for the given customer and timestamp and attaches
// items, computing the total immediately. ID stays zero until storage
// assigns one.
func NewSale(customer string, items []LineItem, timestamp time.Time) *Sale {
	s := &Sale{Customer: customer, Timestamp: timestamp}
	s.ReplaceLineItems(items)
	return s
}

// ReplaceLineItems swaps the owned collection for a copy of items,
// re-parents every item to this sale, and recomputes the total.
// A nil or empty slice leaves the sale with no items and a zero total.
func (s *Sale) ReplaceLineItems(items []LineItem) {
	owned := make([]LineItem, len(items))
	copy(owned, items)
	for i := range owned {
		owned[i].SaleID = s.ID
	}
	s.lineItems = owned
	s.total = s.computeTotal()
}

// LineItems returns the owned collection. Changes made through the
// returned slice do not update Total; use ReplaceLineItems for that.
func (s *Sale) LineItems() []LineItem {
	return s.lineItems
}

// Total returns the total cached by the last ReplaceLineItems call.
func (s *Sale) Total() float64 {
	return s.total
}

// ProfitTotal sums the profit of every owned item.
func (s *Sale) ProfitTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range s.lineItems {
		sum = sum.Add(li.Profit())
	}
	return sum
}

// AssignID sets the storage identifier and points the current items at it.
// The total is left untouched.
func (s *Sale) AssignID(id int64) {
	s.ID = id
	for i := range s.lineItems {
		s.lineItems[i].SaleID = id
	}
}

// Clone returns a deep copy, including the cached total as-is.
func (s *Sale) Clone() *Sale {
	c := *s
	if s.lineItems != nil {
		c.lineItems = make([]LineItem, len(s.lineItems))
		copy(c.lineItems, s.lineItems)
	}
	return &c
}

func (s *Sale) computeTotal() float64 {
	var total float64
	for _, li := range s.lineItems {
		total += li.Subtotal().InexactFloat64()
	}
	return total
}

// FindByID returns the first sale in sales with the given id, or nil.
func FindByID(sales []*Sale, id int64) *Sale {
	for _, s := range sales {
		if s.ID == id {
			return s
		}
	}
	return nil
}
