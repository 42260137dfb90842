package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cvapi/internal/model"
	"cvapi/internal/repository"
)

const uniqueViolation = "23505"

const cvColumns = `id, owner_id, title, personal_info, education, experience, skills, projects,
		certifications, template_id, customization, photo_key, is_public, slug, version, created_at, updated_at`

// CVPostgres is a PostgreSQL implementation of repository.CVRepository.
// Section data is stored as JSONB columns.
type CVPostgres struct {
	db *sql.DB
}

// NewCVPostgres creates a new CVPostgres repository.
func NewCVPostgres(db *sql.DB) *CVPostgres {
	return &CVPostgres{db: db}
}

var _ repository.CVRepository = (*CVPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCV(row rowScanner) (*model.CV, error) {
	var (
		cv                                                     model.CV
		personal, edu, exp, skills, projects, certs, customize []byte
		photoKey, slug                                         sql.NullString
	)
	if err := row.Scan(
		&cv.ID,
		&cv.OwnerID,
		&cv.Title,
		&personal,
		&edu,
		&exp,
		&skills,
		&projects,
		&certs,
		&cv.TemplateID,
		&customize,
		&photoKey,
		&cv.IsPublic,
		&slug,
		&cv.Version,
		&cv.CreatedAt,
		&cv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"personal_info", personal, &cv.PersonalInfo},
		{"education", edu, &cv.Education},
		{"experience", exp, &cv.Experience},
		{"skills", skills, &cv.Skills},
		{"projects", projects, &cv.Projects},
		{"certifications", certs, &cv.Certifications},
		{"customization", customize, &cv.Customization},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	if photoKey.Valid {
		cv.PhotoKey = photoKey.String
	}
	if slug.Valid {
		s := slug.String
		cv.Slug = &s
	}
	cv.EnsureSequences()
	return &cv, nil
}

// sectionArgs encodes the JSONB columns in insert/update order.
func sectionArgs(cv *model.CV) ([]any, error) {
	c := *cv
	c.EnsureSequences()

	values := []any{c.PersonalInfo, c.Education, c.Experience, c.Skills, c.Projects, c.Certifications, c.Customization}
	out := make([]any, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, string(b))
	}
	return out, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateSlug, pgErr.ConstraintName)
	}
	return err
}

// Create inserts a CV row and its analytics row atomically.
func (r *CVPostgres) Create(ctx context.Context, cv *model.CV) (out *model.CV, err error) {
	sections, err := sectionArgs(cv)
	if err != nil {
		return nil, fmt.Errorf("encode sections: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	q := `
		INSERT INTO cvs (id, owner_id, title, personal_info, education, experience, skills, projects,
			certifications, customization, template_id, photo_key, is_public, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + cvColumns
	args := append([]any{cv.ID, cv.OwnerID, cv.Title}, sections...)
	args = append(args, cv.TemplateID, nullableString(cv.PhotoKey), cv.IsPublic, nullable(cv.Slug))

	out, err = scanCV(tx.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}

	const qAnalytics = `INSERT INTO cv_analytics (cv_id) VALUES ($1)`
	if _, err = tx.ExecContext(ctx, qAnalytics, out.ID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single CV by its ID.
func (r *CVPostgres) FindByID(ctx context.Context, id string) (*model.CV, error) {
	q := `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`
	return scanCV(r.db.QueryRowContext(ctx, q, id))
}

// FindPublicBySlug fetches a published CV by slug.
func (r *CVPostgres) FindPublicBySlug(ctx context.Context, slug string) (*model.CV, error) {
	q := `SELECT ` + cvColumns + ` FROM cvs WHERE slug = $1 AND is_public = true`
	return scanCV(r.db.QueryRowContext(ctx, q, slug))
}

// ListByOwner returns the owner's CVs using LIMIT/OFFSET pagination and a total count.
func (r *CVPostgres) ListByOwner(ctx context.Context, ownerID string, pq repository.PageQuery) (*repository.PageResult[model.CV], error) {
	const qCount = `SELECT COUNT(*) FROM cvs WHERE owner_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, ownerID).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + cvColumns + `
		FROM cvs
		WHERE owner_id = $1
		ORDER BY updated_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, ownerID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CV, 0)
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *cv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.CV]{
		Items: items,
		Total: total,
	}, nil
}

// Update performs a compare-and-swap on version.
func (r *CVPostgres) Update(ctx context.Context, cv *model.CV) (*model.CV, error) {
	sections, err := sectionArgs(cv)
	if err != nil {
		return nil, fmt.Errorf("encode sections: %w", err)
	}

	q := `
		UPDATE cvs SET
			title = $3, personal_info = $4, education = $5, experience = $6, skills = $7,
			projects = $8, certifications = $9, customization = $10, template_id = $11,
			is_public = $12, slug = $13, version = version + 1, updated_at = now()
		WHERE id = $1 AND owner_id = $2 AND version = $14
		RETURNING ` + cvColumns
	args := append([]any{cv.ID, cv.OwnerID, cv.Title}, sections...)
	args = append(args, cv.TemplateID, cv.IsPublic, nullable(cv.Slug), cv.Version)

	out, err := scanCV(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrVersionConflict
		}
		return nil, mapWriteError(err)
	}
	return out, nil
}

// UpdatePhoto replaces the photo key. It bumps version so concurrent editors notice the change.
func (r *CVPostgres) UpdatePhoto(ctx context.Context, id, ownerID string, photoKey *string) (*model.CV, error) {
	q := `
		UPDATE cvs SET photo_key = $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + cvColumns
	return scanCV(r.db.QueryRowContext(ctx, q, id, ownerID, nullable(photoKey)))
}

// Delete removes an owned CV. Analytics rows go with it through the foreign key.
func (r *CVPostgres) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	const q = `DELETE FROM cvs WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
