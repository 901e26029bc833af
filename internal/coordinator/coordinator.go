package coordinator

import (
	"fmt"
	"sync"
	"time"

	"agri-auction/internal/auctionerrors"
	"agri-auction/internal/clock"
	model "agri-auction/internal/models"
)

// Coordinator maps lot ids to their sessions. Lots are fully independent:
// operations on different lots never contend on a shared lock beyond the
// session lookup itself.
type Coordinator struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// New creates an empty coordinator.
func New() *Coordinator {
	return &Coordinator{
		sessions: make(map[string]*Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithNow injects a deterministic clock for tests.
func (c *Coordinator) WithNow(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Register creates the session for a newly approved lot. The auction window
// comes from the catalog collaborator and is treated as immutable; instants
// are normalized to the reference timezone here, once, at ingestion.
func (c *Coordinator) Register(lot model.Lot) (*Session, error) {
	lot.StartsAt = clock.Normalize(lot.StartsAt)
	lot.EndsAt = clock.Normalize(lot.EndsAt)

	if lot.StartingPrice <= 0 || !lot.EndsAt.After(lot.StartsAt) {
		return nil, fmt.Errorf("lot %s: starting price %d, window [%s, %s): %w",
			lot.LotID, lot.StartingPrice, lot.StartsAt, lot.EndsAt, auctionerrors.ErrInvalidWindow)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sessions[lot.LotID]; ok {
		return nil, fmt.Errorf("lot %s: %w", lot.LotID, auctionerrors.ErrLotExists)
	}

	sess := newSession(lot, c.now)
	c.sessions[lot.LotID] = sess
	return sess, nil
}

// Session returns the session for a lot id.
func (c *Coordinator) Session(lotID string) (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sess, ok := c.sessions[lotID]
	return sess, ok
}
