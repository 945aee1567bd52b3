package dto

import (
	"strconv"
	"time"

	"github.com/guttosm/salesledger/internal/domain/models"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line of a SaleRequest.
type LineItemRequest struct {
	Product   string          `json:"product" binding:"required" example:"Coffee 500g"`
	Quantity  int             `json:"quantity" binding:"required,min=1" example:"10"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"10.00"`
	UnitCost  decimal.Decimal `json:"unit_cost" swaggertype:"string" example:"5.00"`
}

// SaleRequest is the body accepted by POST and PUT /api/v1/sales.
//
// Timestamp is optional; when omitted the handler stamps the current UTC time.
type SaleRequest struct {
	Customer  string            `json:"customer" binding:"required" example:"Client A"`
	Timestamp time.Time         `json:"timestamp" example:"2025-10-05T10:00:00Z"`
	LineItems []LineItemRequest `json:"line_items" binding:"dive"`
}

// ToModel converts the request into a detached Sale (ID zero).
func (r SaleRequest) ToModel() *models.Sale {
	items := make([]models.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, models.NewLineItem(li.Product, li.Quantity, li.UnitPrice, li.UnitCost))
	}
	return models.NewSale(r.Customer, items, r.Timestamp)
}

// LineItemResponse is the JSON view of a line item, including derived values.
type LineItemResponse struct {
	ID        int64           `json:"id" example:"1"`
	Product   string          `json:"product" example:"Coffee 500g"`
	Quantity  int             `json:"quantity" example:"10"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"10.00"`
	UnitCost  decimal.Decimal `json:"unit_cost" swaggertype:"string" example:"5.00"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string" example:"100.00"`
	Profit    decimal.Decimal `json:"profit" swaggertype:"string" example:"50.00"`
}

// SaleResponse is the JSON view of a sale.
//
// Total is the float aggregate cached on the sale; ProfitTotal is exact.
type SaleResponse struct {
	ID          int64              `json:"id" example:"1"`
	Customer    string             `json:"customer" example:"Client A"`
	Timestamp   time.Time          `json:"timestamp" example:"2025-10-05T10:00:00Z"`
	LineItems   []LineItemResponse `json:"line_items"`
	Total       float64            `json:"total" example:"100"`
	ProfitTotal decimal.Decimal    `json:"profit_total" swaggertype:"string" example:"50.00"`
	Links       map[string]Link    `json:"_links,omitempty"`
}

// SaleListResponse wraps the sale collection with collection-level links.
type SaleListResponse struct {
	Sales []SaleResponse  `json:"sales"`
	Links map[string]Link `json:"_links,omitempty"`
}

// Link is a navigational hyperlink.
type Link struct {
	Href string `json:"href" example:"/api/v1/sales/1"`
}

// NewSaleResponse maps a sale to its JSON view. basePath, when non-empty,
// is used to build the self link (e.g., "/api/v1/sales").
func NewSaleResponse(s *models.Sale, basePath string) SaleResponse {
	items := make([]LineItemResponse, 0, len(s.LineItems()))
	for _, li := range s.LineItems() {
		items = append(items, LineItemResponse{
			ID:        li.ID,
			Product:   li.Product,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			UnitCost:  li.UnitCost,
			Subtotal:  li.Subtotal(),
			Profit:    li.Profit(),
		})
	}
	resp := SaleResponse{
		ID:          s.ID,
		Customer:    s.Customer,
		Timestamp:   s.Timestamp,
		LineItems:   items,
		Total:       s.Total(),
		ProfitTotal: s.ProfitTotal(),
	}
	if basePath != "" {
		resp.Links = map[string]Link{"self": {Href: basePath + "/" + strconv.FormatInt(s.ID, 10)}}
	}
	return resp
}

// NewSaleListResponse maps a collection of sales, preserving order.
func NewSaleListResponse(sales []*models.Sale, basePath string) SaleListResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleResponse(s, basePath))
	}
	return SaleListResponse{
		Sales: out,
		Links: map[string]Link{
			"self":        {Href: basePath},
			"create-sale": {Href: basePath},
		},
	}
}
