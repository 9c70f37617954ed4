package service

import (
	"context"
	"errors"
	"sync"

	"second_brain/internal/models"
)

// memContentRepo is an in-memory repository.ContentRepo.
type memContentRepo struct {
	mu        sync.Mutex
	items     []models.Content
	createErr error
}

func (r *memContentRepo) Create(_ context.Context, c models.Content) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	return nil
}

func (r *memContentRepo) ListByUser(_ context.Context, userID int) ([]models.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Content{}
	for _, c := range r.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memContentRepo) DeleteByIDAndUser(_ context.Context, id string, userID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id && c.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// memLinkRepo is an in-memory repository.LinkRepo enforcing both unique columns.
type memLinkRepo struct {
	mu      sync.Mutex
	byUser  map[int]string
	inserts int
	// forceConflicts makes the next N CreateIfAbsent calls report a hash collision.
	forceConflicts int
}

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{byUser: map[int]string{}}
}

func (r *memLinkRepo) GetByUser(_ context.Context, userID int) (*models.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.byUser[userID]; ok {
		return &models.ShareLink{UserID: userID, Hash: h}, nil
	}
	return nil, nil
}

func (r *memLinkRepo) GetByHash(_ context.Context, hash string) (*models.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for uid, h := range r.byUser {
		if h == hash {
			return &models.ShareLink{UserID: uid, Hash: h}, nil
		}
	}
	return nil, nil
}

func (r *memLinkRepo) CreateIfAbsent(_ context.Context, userID int, hash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceConflicts > 0 {
		r.forceConflicts--
		return false, nil
	}
	if _, ok := r.byUser[userID]; ok {
		return false, nil
	}
	for _, h := range r.byUser {
		if h == hash {
			return false, nil
		}
	}
	r.byUser[userID] = hash
	r.inserts++
	return true, nil
}

func (r *memLinkRepo) DeleteByUser(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
	return nil
}

// memCache is an in-memory ShareCache.
type memCache struct {
	mu      sync.Mutex
	owners  map[string]int
	getErr  error
	delErr  error
	pingErr error
	hits    int
}

func newMemCache() *memCache { return &memCache{owners: map[string]int{}} }

func (c *memCache) GetOwner(_ context.Context, hash string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	id, ok := c.owners[hash]
	if ok {
		c.hits++
	}
	return id, ok, nil
}

func (c *memCache) SetOwner(_ context.Context, hash string, userID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owners[hash] = userID
	return nil
}

func (c *memCache) Delete(_ context.Context, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.delErr != nil {
		return c.delErr
	}
	delete(c.owners, hash)
	return nil
}

func (c *memCache) Ping(context.Context) error { return c.pingErr }

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

var errBoom = errors.New("boom")
