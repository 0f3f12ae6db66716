package repository

import (
	"context"
	"errors"

	"github.com/ngodirectory/go-services/internal/ngo"
)

var ErrNotFound = errors.New("organization not found")

// Repository is the closed set of access patterns over organization records.
// There is deliberately no ad-hoc query entry point: every read the service
// can perform is one of the enumerated shapes below.
//
// Public reads (ListActive, ListByCategory, Search, SearchByCategory) return
// only active records ordered by rating descending, then name ascending.
// ListAll is the administrative view: every record, newest first.
type Repository interface {
	Insert(ctx context.Context, f ngo.Fields) (int64, error)
	// Replace overwrites all mutable fields of the record with the given id,
	// active or not, and refreshes updatedAt. Returns whether a row matched.
	Replace(ctx context.Context, id int64, f ngo.Fields) (bool, error)
	// SoftDelete marks the record inactive and refreshes updatedAt. Returns
	// whether a row matched; deleting an already-inactive record still matches.
	SoftDelete(ctx context.Context, id int64) (bool, error)
	GetActive(ctx context.Context, id int64) (*ngo.NGO, error)
	ListActive(ctx context.Context) ([]ngo.NGO, error)
	ListByCategory(ctx context.Context, category string) ([]ngo.NGO, error)
	// Search matches term as a case-insensitive substring of name,
	// description or address.
	Search(ctx context.Context, term string) ([]ngo.NGO, error)
	SearchByCategory(ctx context.Context, term, category string) ([]ngo.NGO, error)
	ListAll(ctx context.Context) ([]ngo.NGO, error)
}
