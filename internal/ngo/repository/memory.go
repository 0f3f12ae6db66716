package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ngodirectory/go-services/internal/ngo"
)

// MemoryRepo is an in-memory Repository used by unit tests and by the
// standalone demo binary. It mirrors the ordering and visibility semantics
// of the SQL implementation.
type MemoryRepo struct {
	mu     sync.RWMutex
	store  map[int64]*ngo.NGO
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[int64]*ngo.NGO), nextID: 1}
}

func (m *MemoryRepo) Insert(_ context.Context, f ngo.Fields) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	rec := &ngo.NGO{
		ID:          m.nextID,
		Name:        f.Name,
		Address:     f.Address,
		Phone:       f.Phone,
		Email:       f.Email,
		Website:     f.Website,
		Category:    f.Category,
		Description: f.Description,
		Rating:      f.Rating,
		ReviewCount: f.ReviewCount,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.store[rec.ID] = rec
	m.nextID++
	return rec.ID, nil
}

func (m *MemoryRepo) Replace(_ context.Context, id int64, f ngo.Fields) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.store[id]
	if !ok {
		return false, nil
	}
	rec.Name = f.Name
	rec.Address = f.Address
	rec.Phone = f.Phone
	rec.Email = f.Email
	rec.Website = f.Website
	rec.Category = f.Category
	rec.Description = f.Description
	rec.Rating = f.Rating
	rec.ReviewCount = f.ReviewCount
	rec.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *MemoryRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.store[id]
	if !ok {
		return false, nil
	}
	rec.IsActive = false
	rec.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *MemoryRepo) GetActive(_ context.Context, id int64) (*ngo.NGO, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.store[id]
	if !ok || !rec.IsActive {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *MemoryRepo) ListActive(ctx context.Context) ([]ngo.NGO, error) {
	return m.selectActive(func(*ngo.NGO) bool { return true }), nil
}

func (m *MemoryRepo) ListByCategory(_ context.Context, category string) ([]ngo.NGO, error) {
	return m.selectActive(func(r *ngo.NGO) bool { return r.Category == category }), nil
}

func (m *MemoryRepo) Search(_ context.Context, term string) ([]ngo.NGO, error) {
	return m.selectActive(func(r *ngo.NGO) bool { return matches(r, term) }), nil
}

func (m *MemoryRepo) SearchByCategory(_ context.Context, term, category string) ([]ngo.NGO, error) {
	return m.selectActive(func(r *ngo.NGO) bool {
		return r.Category == category && matches(r, term)
	}), nil
}

func (m *MemoryRepo) ListAll(_ context.Context) ([]ngo.NGO, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ngo.NGO, 0, len(m.store))
	for _, r := range m.store {
		out = append(out, *r)
	}
	// admin view: newest first; id breaks creation-time ties deterministically
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryRepo) selectActive(keep func(*ngo.NGO) bool) []ngo.NGO {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ngo.NGO, 0, len(m.store))
	for _, r := range m.store {
		if r.IsActive && keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// matches implements the case-insensitive substring semantics of the SQL
// LIKE statements (SQLite LIKE is case-insensitive for ASCII).
func matches(r *ngo.NGO, term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Name), t) ||
		strings.Contains(strings.ToLower(r.Description), t) ||
		strings.Contains(strings.ToLower(r.Address), t)
}
