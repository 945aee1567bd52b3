package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/salesledger/internal/domain/models"
	"github.com/guttosm/salesledger/internal/logger"
	"github.com/guttosm/salesledger/internal/storage"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrSaleNotFound is returned by Update when no sale has the given id.
var ErrSaleNotFound = errors.New("sale not found")

// SalesService defines business logic for recording sales and computing profits.
// This decouples HTTP handlers from data access.
type SalesService interface {
	ListAll(ctx context.Context) ([]*models.Sale, error)
	FindByID(ctx context.Context, id int64) (*models.Sale, error)
	Create(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	Update(ctx context.Context, id int64, sale *models.Sale) (*models.Sale, error)
	Delete(ctx context.Context, id int64) error
	DailyProfit(ctx context.Context, day time.Time) (decimal.Decimal, error)
	MonthlyProfit(ctx context.Context, month time.Month, year int) (decimal.Decimal, error)
	YearlyProfit(ctx context.Context, year int) (decimal.Decimal, error)
}

type salesService struct {
	repo storage.SalesRepository
	log  zerolog.Logger
}

func NewSalesService(repo storage.SalesRepository) SalesService {
	return &salesService{repo: repo, log: logger.Component("sales_service")}
}

func (s *salesService) ListAll(ctx context.Context) ([]*models.Sale, error) {
	sales, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// FindByID returns (nil, nil) when the sale does not exist.
func (s *salesService) FindByID(ctx context.Context, id int64) (*models.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find sale %d: %w", id, err)
	}
	return sale, nil
}

func (s *salesService) Create(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	saved, err := s.repo.Save(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("save sale: %w", err)
	}
	s.log.Debug().Int64("sale_id", saved.ID).Int("items", len(saved.LineItems())).Msg("sale created")
	return saved, nil
}

// Update overwrites customer and timestamp of an existing sale and replaces
// its line items wholesale, which re-parents them and recomputes the total.
func (s *salesService) Update(ctx context.Context, id int64, sale *models.Sale) (*models.Sale, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find sale %d: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("update sale %d: %w", id, ErrSaleNotFound)
	}

	existing.Customer = sale.Customer
	existing.Timestamp = sale.Timestamp
	existing.ReplaceLineItems(sale.LineItems())

	saved, err := s.repo.Save(ctx, existing)
	if errors.Is(err, storage.ErrNotFound) {
		// deleted between load and save
		return nil, fmt.Errorf("update sale %d: %w", id, ErrSaleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("save sale %d: %w", id, err)
	}
	s.log.Debug().Int64("sale_id", id).Int("items", len(saved.LineItems())).Msg("sale updated")
	return saved, nil
}

func (s *salesService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	return nil
}

func (s *salesService) DailyProfit(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	sales, err := s.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return DailyProfit(sales, day), nil
}

func (s *salesService) MonthlyProfit(ctx context.Context, month time.Month, year int) (decimal.Decimal, error) {
	sales, err := s.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return MonthlyProfit(sales, month, year), nil
}

func (s *salesService) YearlyProfit(ctx context.Context, year int) (decimal.Decimal, error) {
	sales, err := s.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return YearlyProfit(sales, year), nil
}
