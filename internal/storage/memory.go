package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/guttosm/salesledger/internal/domain/models"
)

// memoryRepository keeps sales in process memory, in insertion order. It
// stores and hands out clones, so callers never alias stored state.
type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	itemSeq int64
	sales   []*models.Sale
	imports map[string]int
}

// NewMemoryRepository returns an empty in-memory SalesRepository.
// It is safe for concurrent use.
func NewMemoryRepository() SalesRepository {
	return &memoryRepository{imports: make(map[string]int)}
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := models.FindByID(r.sales, id)
	if s == nil {
		return nil, nil
	}
	return s.Clone(), nil
}

func (r *memoryRepository) Save(_ context.Context, sale *models.Sale) (*models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.saveLocked(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			break
		}
	}
	return nil
}

// SaveImport stores every sale and the import entry under one lock. Sales
// must be new or already stored; otherwise nothing is written.
func (r *memoryRepository) SaveImport(_ context.Context, filename string, rowCount int, sales []*models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range sales {
		if s.ID != 0 && models.FindByID(r.sales, s.ID) == nil {
			return fmt.Errorf("import %s: update sale %d: %w", filename, s.ID, ErrNotFound)
		}
	}
	for _, s := range sales {
		if err := r.saveLocked(s); err != nil {
			return err
		}
	}
	r.imports[filename] = rowCount
	return nil
}

func (r *memoryRepository) HasImport(_ context.Context, filename string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.imports[filename]
	return ok, nil
}

// saveLocked assigns ids where missing and stores a clone. Caller holds mu.
func (r *memoryRepository) saveLocked(sale *models.Sale) error {
	idx := -1
	if sale.ID == 0 {
		r.nextID++
		sale.AssignID(r.nextID)
	} else {
		for i, s := range r.sales {
			if s.ID == sale.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("update sale %d: %w", sale.ID, ErrNotFound)
		}
	}

	items := sale.LineItems()
	for i := range items {
		if items[i].ID == 0 {
			r.itemSeq++
			items[i].ID = r.itemSeq
		}
	}
	if idx < 0 {
		r.sales = append(r.sales, sale.Clone())
	} else {
		r.sales[idx] = sale.Clone()
	}
	return nil
}
