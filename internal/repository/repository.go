package repository

import (
	"fmt"
	"sync"

	"agri-auction/internal/auctionerrors"
	model "agri-auction/internal/models"
)

// Catalog is the product-catalog collaborator: the source of lot metadata
// (title, starting price, auction window). The bidding engine reads it at
// registration time and treats the values as immutable.
type Catalog interface {
	AddLot(lot model.Lot) error
	GetLot(lotID string) (model.Lot, error)
	ListLots() ([]model.Lot, error)
}

// MemoryCatalog is a concurrency-safe in-memory implementation of Catalog.
type MemoryCatalog struct {
	mu   sync.RWMutex
	lots map[string]model.Lot // key: lotID
}

// NewMemoryCatalog creates a new in-memory catalog instance.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		lots: make(map[string]model.Lot),
	}
}

// AddLot stores a lot. Lots are immutable once created, so re-adding an
// existing id is rejected.
func (c *MemoryCatalog) AddLot(lot model.Lot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lots[lot.LotID]; ok {
		return fmt.Errorf("add lot %s: %w", lot.LotID, auctionerrors.ErrLotExists)
	}
	c.lots[lot.LotID] = lot
	return nil
}

// GetLot returns the lot for an id.
func (c *MemoryCatalog) GetLot(lotID string) (model.Lot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lot, ok := c.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}
	return lot, nil
}

// ListLots returns all registered lots.
func (c *MemoryCatalog) ListLots() ([]model.Lot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lots := make([]model.Lot, 0, len(c.lots))
	for _, lot := range c.lots {
		lots = append(lots, lot)
	}
	return lots, nil
}
