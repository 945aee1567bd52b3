package dto

import "github.com/shopspring/decimal"

// ProfitResponse is returned by the /api/v1/sales/profits/* endpoints.
//
// Profit is serialized as a string to keep it exact (e.g., "150.75").
type ProfitResponse struct {
	Period string          `json:"period" example:"2025-10-05"`
	Profit decimal.Decimal `json:"profit" swaggertype:"string" example:"150.75"`
}
