package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ngodirectory/go-services/internal/database"
	"github.com/ngodirectory/go-services/internal/ngo"
	"github.com/stretchr/testify/require"
)

func newSQLRepo(t *testing.T) *SQLRepo {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), ":memory:", 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r, err := NewSQLRepo(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSQLRepoInsertAndGet(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	f := sample("A", "Health", 0)
	f.Email = email("a@example.org")
	id, err := r.Insert(ctx, f)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	got, err := r.GetActive(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)
	require.Equal(t, "addr", got.Address)
	require.Equal(t, 0.0, got.Rating)
	require.Equal(t, 0, got.ReviewCount)
	require.True(t, got.IsActive)
	require.NotNil(t, got.Email)
	require.Equal(t, "a@example.org", *got.Email)
	require.Nil(t, got.Website)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.Before(got.CreatedAt))

	_, err = r.GetActive(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLRepoOrdering(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	for _, f := range []ngo.Fields{
		sample("Beta", "Health", 4.5),
		sample("Alpha", "Health", 4.5),
		sample("Gamma", "Education", 4.9),
	} {
		_, err := r.Insert(ctx, f)
		require.NoError(t, err)
	}

	list, err := r.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Gamma", list[0].Name)
	require.Equal(t, "Alpha", list[1].Name)
	require.Equal(t, "Beta", list[2].Name)

	// adjacent-pair invariant over the whole sequence
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		require.True(t, a.Rating > b.Rating || (a.Rating == b.Rating && a.Name <= b.Name))
	}
}

func TestSQLRepoSearch(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	f := sample("Community Clinic", "Health", 4.0)
	f.Description = "Healthcare for everyone"
	_, err := r.Insert(ctx, f)
	require.NoError(t, err)
	_, err = r.Insert(ctx, sample("Food Bank", "Social Services", 4.2))
	require.NoError(t, err)

	res, err := r.Search(ctx, "Health")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "Community Clinic", res[0].Name)

	// SQLite LIKE is case-insensitive for ASCII
	res, err = r.Search(ctx, "healthCARE")
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = r.SearchByCategory(ctx, "addr", "Health")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "Community Clinic", res[0].Name)

	res, err = r.ListByCategory(ctx, "Social Services")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "Food Bank", res[0].Name)

	res, err = r.Search(ctx, "no such thing")
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestSQLRepoSoftDelete(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	id, err := r.Insert(ctx, sample("A", "Health", 4.0))
	require.NoError(t, err)

	changed, err := r.SoftDelete(ctx, id)
	require.NoError(t, err)
	require.True(t, changed)

	_, err = r.GetActive(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.False(t, all[0].IsActive)

	// a second delete still matches the row; only unknown ids do not
	changed, err = r.SoftDelete(ctx, id)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = r.SoftDelete(ctx, 999)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestSQLRepoReplace(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	id, err := r.Insert(ctx, sample("Old", "Health", 1.0))
	require.NoError(t, err)
	before, err := r.GetActive(ctx, id)
	require.NoError(t, err)

	nf := sample("New", "Education", 3.5)
	nf.Website = email("https://new.example.org")
	changed, err := r.Replace(ctx, id, nf)
	require.NoError(t, err)
	require.True(t, changed)

	after, err := r.GetActive(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "New", after.Name)
	require.Equal(t, "Education", after.Category)
	require.True(t, after.CreatedAt.Equal(before.CreatedAt))
	require.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	require.NotNil(t, after.Website)
	require.Equal(t, "https://new.example.org", *after.Website)

	// replacing an inactive record works and does not reactivate it
	_, err = r.SoftDelete(ctx, id)
	require.NoError(t, err)
	changed, err = r.Replace(ctx, id, sample("Newer", "Education", 3.5))
	require.NoError(t, err)
	require.True(t, changed)
	_, err = r.GetActive(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)

	changed, err = r.Replace(ctx, 999, nf)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestSQLRepoAdminOrder(t *testing.T) {
	r := newSQLRepo(t)
	ctx := context.Background()

	id1, err := r.Insert(ctx, sample("First", "Health", 1.0))
	require.NoError(t, err)
	id2, err := r.Insert(ctx, sample("Second", "Health", 5.0))
	require.NoError(t, err)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest creation first, regardless of rating
	require.Equal(t, id2, all[0].ID)
	require.Equal(t, id1, all[1].ID)
}
