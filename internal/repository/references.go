package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrSubjectNotFound  = errors.New("subject not found")
)

// ReferencesRepository resolves filter references and builds facet lists.
type ReferencesRepository interface {
	FindCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	FindLocationByID(ctx context.Context, id int64) (*entity.Location, error)
	FindSubjectByID(ctx context.Context, id int64) (*entity.Subject, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListLocationsWithPlaces(ctx context.Context) ([]entity.Location, error)
	ListLocationsWithHotels(ctx context.Context) ([]entity.Location, error)
	ListSubjectsExcept(ctx context.Context, excludeID int64) ([]entity.Subject, error)
}

// PGXReferencesRepository implements ReferencesRepository using pgx.
type PGXReferencesRepository struct {
	pool pgxPool
}

// NewPGXReferencesRepository wires a pgx backed repository.
func NewPGXReferencesRepository(pool *pgxpool.Pool) *PGXReferencesRepository {
	return &PGXReferencesRepository{pool: pool}
}

// FindCategoryByName resolves a category by its unique name.
func (r *PGXReferencesRepository) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	var c entity.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE name = $1`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category by name: %w", err)
	}
	return &c, nil
}

// FindLocationByID resolves a location by id.
func (r *PGXReferencesRepository) FindLocationByID(ctx context.Context, id int64) (*entity.Location, error) {
	var l entity.Location
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM locations WHERE id = $1`, id).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("query location by id: %w", err)
	}
	return &l, nil
}

// FindSubjectByID resolves a subject by id.
func (r *PGXReferencesRepository) FindSubjectByID(ctx context.Context, id int64) (*entity.Subject, error) {
	var s entity.Subject
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM subjects WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("query subject by id: %w", err)
	}
	return &s, nil
}

// ListCategories returns every category.
func (r *PGXReferencesRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return listNamed(ctx, r.pool, "categories", `SELECT id, name FROM categories ORDER BY id`,
		func(id int64, name string) entity.Category { return entity.Category{ID: id, Name: name} })
}

// ListLocationsWithPlaces returns the locations that have at least one place.
func (r *PGXReferencesRepository) ListLocationsWithPlaces(ctx context.Context) ([]entity.Location, error) {
	return listNamed(ctx, r.pool, "place locations", `
        SELECT l.id, l.name FROM locations l
        WHERE EXISTS (SELECT 1 FROM places p WHERE p.location_id = l.id)
        ORDER BY l.id
    `, func(id int64, name string) entity.Location { return entity.Location{ID: id, Name: name} })
}

// ListLocationsWithHotels returns the locations that have at least one hotel.
func (r *PGXReferencesRepository) ListLocationsWithHotels(ctx context.Context) ([]entity.Location, error) {
	return listNamed(ctx, r.pool, "hotel locations", `
        SELECT l.id, l.name FROM locations l
        WHERE EXISTS (SELECT 1 FROM hotels h WHERE h.location_id = l.id)
        ORDER BY l.id
    `, func(id int64, name string) entity.Location { return entity.Location{ID: id, Name: name} })
}

// ListSubjectsExcept returns every subject but excludeID. Zero excludes nothing.
func (r *PGXReferencesRepository) ListSubjectsExcept(ctx context.Context, excludeID int64) ([]entity.Subject, error) {
	return listNamed(ctx, r.pool, "subjects", `SELECT id, name FROM subjects WHERE id <> $1 ORDER BY id`,
		func(id int64, name string) entity.Subject { return entity.Subject{ID: id, Name: name} }, excludeID)
}

func listNamed[T any](ctx context.Context, pool pgxPool, name, query string, build func(id int64, name string) T, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var (
			id    int64
			label string
		)
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		out = append(out, build(id, label))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return out, nil
}
