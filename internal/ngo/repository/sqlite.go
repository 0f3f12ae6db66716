package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngodirectory/go-services/internal/ngo"
)

const selectColumns = `id, name, address, phone, email, website, category,
	description, rating, review_count, is_active, created_at, updated_at`

// SQLRepo implements Repository on a SQLite database through a fixed set of
// prepared statements, one per access pattern.
type SQLRepo struct {
	db *sql.DB

	insert           *sql.Stmt
	replace          *sql.Stmt
	softDelete       *sql.Stmt
	getActive        *sql.Stmt
	listActive       *sql.Stmt
	listByCategory   *sql.Stmt
	search           *sql.Stmt
	searchByCategory *sql.Stmt
	listAll          *sql.Stmt
}

// NewSQLRepo prepares every statement up front so that malformed SQL fails at
// startup rather than on first use.
func NewSQLRepo(db *sql.DB) (*SQLRepo, error) {
	r := &SQLRepo{db: db}
	for _, s := range []struct {
		dst   **sql.Stmt
		query string
	}{
		{&r.insert, `INSERT INTO ngos (name, address, phone, email, website, category,
			description, rating, review_count, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`},
		{&r.replace, `UPDATE ngos SET name = ?, address = ?, phone = ?, email = ?,
			website = ?, category = ?, description = ?, rating = ?, review_count = ?,
			updated_at = ? WHERE id = ?`},
		{&r.softDelete, `UPDATE ngos SET is_active = 0, updated_at = ? WHERE id = ?`},
		{&r.getActive, `SELECT ` + selectColumns + ` FROM ngos WHERE id = ? AND is_active = 1`},
		{&r.listActive, `SELECT ` + selectColumns + ` FROM ngos WHERE is_active = 1
			ORDER BY rating DESC, name ASC`},
		{&r.listByCategory, `SELECT ` + selectColumns + ` FROM ngos WHERE is_active = 1
			AND category = ? ORDER BY rating DESC, name ASC`},
		{&r.search, `SELECT ` + selectColumns + ` FROM ngos WHERE is_active = 1
			AND (name LIKE ? OR description LIKE ? OR address LIKE ?)
			ORDER BY rating DESC, name ASC`},
		{&r.searchByCategory, `SELECT ` + selectColumns + ` FROM ngos WHERE is_active = 1
			AND category = ? AND (name LIKE ? OR description LIKE ? OR address LIKE ?)
			ORDER BY rating DESC, name ASC`},
		{&r.listAll, `SELECT ` + selectColumns + ` FROM ngos
			ORDER BY created_at DESC, id DESC`},
	} {
		stmt, err := db.Prepare(s.query)
		if err != nil {
			return nil, fmt.Errorf("prepare statement: %w", err)
		}
		*s.dst = stmt
	}
	return r, nil
}

func (r *SQLRepo) Insert(ctx context.Context, f ngo.Fields) (int64, error) {
	now := time.Now().UTC()
	res, err := r.insert.ExecContext(ctx, f.Name, f.Address, f.Phone,
		nullable(f.Email), nullable(f.Website), f.Category, f.Description,
		f.Rating, f.ReviewCount, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert organization: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert organization: %w", err)
	}
	return id, nil
}

func (r *SQLRepo) Replace(ctx context.Context, id int64, f ngo.Fields) (bool, error) {
	res, err := r.replace.ExecContext(ctx, f.Name, f.Address, f.Phone,
		nullable(f.Email), nullable(f.Website), f.Category, f.Description,
		f.Rating, f.ReviewCount, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("update organization: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update organization: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res, err := r.softDelete.ExecContext(ctx, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("delete organization: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete organization: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepo) GetActive(ctx context.Context, id int64) (*ngo.NGO, error) {
	rec, err := scanNGO(r.getActive.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return rec, nil
}

func (r *SQLRepo) ListActive(ctx context.Context) ([]ngo.NGO, error) {
	return r.queryMany(ctx, r.listActive)
}

func (r *SQLRepo) ListByCategory(ctx context.Context, category string) ([]ngo.NGO, error) {
	return r.queryMany(ctx, r.listByCategory, category)
}

func (r *SQLRepo) Search(ctx context.Context, term string) ([]ngo.NGO, error) {
	p := likePattern(term)
	return r.queryMany(ctx, r.search, p, p, p)
}

func (r *SQLRepo) SearchByCategory(ctx context.Context, term, category string) ([]ngo.NGO, error) {
	p := likePattern(term)
	return r.queryMany(ctx, r.searchByCategory, category, p, p, p)
}

func (r *SQLRepo) ListAll(ctx context.Context) ([]ngo.NGO, error) {
	return r.queryMany(ctx, r.listAll)
}

// Close releases the prepared statements. The *sql.DB itself belongs to the
// caller.
func (r *SQLRepo) Close() error {
	for _, s := range []*sql.Stmt{r.insert, r.replace, r.softDelete, r.getActive,
		r.listActive, r.listByCategory, r.search, r.searchByCategory, r.listAll} {
		if s != nil {
			_ = s.Close()
		}
	}
	return nil
}

func (r *SQLRepo) queryMany(ctx context.Context, stmt *sql.Stmt, args ...any) ([]ngo.NGO, error) {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}
	defer rows.Close()

	var out []ngo.NGO
	for rows.Next() {
		rec, err := scanNGO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNGO(row rowScanner) (*ngo.NGO, error) {
	var rec ngo.NGO
	var email, website sql.NullString
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Address, &rec.Phone, &email,
		&website, &rec.Category, &rec.Description, &rec.Rating, &rec.ReviewCount,
		&rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if email.Valid {
		rec.Email = &email.String
	}
	if website.Valid {
		rec.Website = &website.String
	}
	return &rec, nil
}

// SQLite LIKE is case-insensitive for ASCII, so the pattern itself needs no
// case folding.
func likePattern(term string) string { return "%" + term + "%" }

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
