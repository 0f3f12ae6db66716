package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngodirectory/go-services/internal/ngo"
	"github.com/ngodirectory/go-services/internal/ngo/repository"
	"github.com/ngodirectory/go-services/pkg/logger"
)

var ErrNotFound = errors.New("organization not found")

// ValidationError reports a missing required field on create/update.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Service routes directory reads to the right repository query and applies
// the validation rules for writes.
type Service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// List resolves the (search, category) pair to one of the four public read
// shapes. Blank search means no search; category "All" (or blank) means no
// category filter. Results contain only active records, ordered by rating
// descending then name ascending.
func (s *Service) List(ctx context.Context, search, category string) ([]ngo.NGO, error) {
	search = strings.TrimSpace(search)
	filtered := category != "" && category != ngo.CategoryAll
	switch {
	case search != "" && filtered:
		return s.repo.SearchByCategory(ctx, search, category)
	case search != "":
		return s.repo.Search(ctx, search)
	case filtered:
		return s.repo.ListByCategory(ctx, category)
	default:
		return s.repo.ListActive(ctx)
	}
}

// Get returns the active record with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*ngo.NGO, error) {
	rec, err := s.repo.GetActive(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rec, err
}

// Create validates the payload and inserts a new active record, returning
// its id. Rating and review count default to zero via the zero value;
// email/website stay absent unless provided non-blank.
func (s *Service) Create(ctx context.Context, f ngo.Fields) (int64, error) {
	if err := validate(&f); err != nil {
		return 0, err
	}
	return s.repo.Insert(ctx, f)
}

// Update overwrites all mutable fields of an existing record, active or
// inactive, without changing its active flag or creation time.
func (s *Service) Update(ctx context.Context, id int64, f ngo.Fields) error {
	if err := validate(&f); err != nil {
		return err
	}
	changed, err := s.repo.Replace(ctx, id, f)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes the record with the given id. Deleting a record that
// is already inactive succeeds as a no-op; only a nonexistent id is an
// error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	changed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotFound
	}
	return nil
}

// AdminList returns every record, inactive ones included, newest first.
func (s *Service) AdminList(ctx context.Context) ([]ngo.NGO, error) {
	return s.repo.ListAll(ctx)
}

// SeedIfEmpty inserts the fixed sample set when no active record exists and
// reports how many records it inserted. Safe to call repeatedly; only the
// first call on an empty store does anything.
func (s *Service) SeedIfEmpty(ctx context.Context) (int, error) {
	existing, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed check: %w", err)
	}
	if len(existing) > 0 {
		logger.Debugf("seed skipped: %d active organizations present", len(existing))
		return 0, nil
	}
	for i, f := range ngo.SampleNGOs {
		if _, err := s.repo.Insert(ctx, f); err != nil {
			return i, fmt.Errorf("seed insert %q: %w", f.Name, err)
		}
	}
	logger.Infof("seeded %d sample organizations", len(ngo.SampleNGOs))
	return len(ngo.SampleNGOs), nil
}

func validate(f *ngo.Fields) error {
	for _, req := range []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"address", f.Address},
		{"phone", f.Phone},
		{"category", f.Category},
		{"description", f.Description},
	} {
		if strings.TrimSpace(req.value) == "" {
			return &ValidationError{Field: req.field}
		}
	}
	// blank optional fields are stored as absent, not empty string
	f.Email = blankToNil(f.Email)
	f.Website = blankToNil(f.Website)
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
