package service

import (
	"time"

	"github.com/guttosm/salesledger/internal/domain/models"
	"github.com/shopspring/decimal"
)

// DailyProfit sums the profit of every sale whose timestamp falls on the
// calendar date of day. Time of day is ignored on both sides.
func DailyProfit(sales []*models.Sale, day time.Time) decimal.Decimal {
	y, m, d := day.Date()
	return sumProfit(sales, func(ts time.Time) bool {
		ty, tm, td := ts.Date()
		return ty == y && tm == m && td == d
	})
}

// MonthlyProfit sums the profit of every sale dated within month of year.
func MonthlyProfit(sales []*models.Sale, month time.Month, year int) decimal.Decimal {
	return sumProfit(sales, func(ts time.Time) bool {
		return ts.Month() == month && ts.Year() == year
	})
}

// YearlyProfit sums the profit of every sale dated within year.
func YearlyProfit(sales []*models.Sale, year int) decimal.Decimal {
	return sumProfit(sales, func(ts time.Time) bool {
		return ts.Year() == year
	})
}

// sumProfit folds ProfitTotal over the sales whose timestamp matches, starting
// from an exact zero.
func sumProfit(sales []*models.Sale, match func(time.Time) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		if match(s.Timestamp) {
			sum = sum.Add(s.ProfitTotal())
		}
	}
	return sum
}
