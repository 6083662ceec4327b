package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// ErrPlaceNotFound is returned when no place has the requested id.
var ErrPlaceNotFound = errors.New("place not found")

// PlacesRepository describes read access to places.
type PlacesRepository interface {
	List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Place, error)
	Count(ctx context.Context, preds []Predicate) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Place, error)
	LinksByPlace(ctx context.Context, placeIDs []int64) (map[int64][]entity.Link, error)
}

// PlaceSearch matches the place name.
func PlaceSearch(term string) Predicate {
	return Search(term, "p.name")
}

// PlaceInCategory keeps places tagged with the named category.
func PlaceInCategory(name string) Predicate {
	return Where(`EXISTS (
            SELECT 1 FROM category_place cp
            JOIN categories c ON c.id = cp.category_id
            WHERE cp.place_id = p.id AND c.name = ?
        )`, name)
}

// PlaceAtLocation keeps places in the location.
func PlaceAtLocation(locationID int64) Predicate {
	return Where("p.location_id = ?", locationID)
}

// PGXPlacesRepository implements PlacesRepository using pgx.
type PGXPlacesRepository struct {
	pool    pgxPool
	listing listing[entity.Place]
}

// NewPGXPlacesRepository wires a pgx backed repository.
func NewPGXPlacesRepository(pool *pgxpool.Pool) *PGXPlacesRepository {
	return newPlacesRepository(pool)
}

func newPlacesRepository(pool pgxPool) *PGXPlacesRepository {
	return &PGXPlacesRepository{
		pool: pool,
		listing: listing[entity.Place]{
			pool:    pool,
			name:    "places",
			from:    "places p",
			columns: "p.id, p.location_id, p.name, p.body",
			order:   "p.id ASC",
			scan:    scanPlace,
		},
	}
}

// List returns one page of places matching every predicate, ordered by id.
func (r *PGXPlacesRepository) List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Place, error) {
	return r.listing.page(ctx, preds, limit, offset)
}

// Count returns how many places match every predicate.
func (r *PGXPlacesRepository) Count(ctx context.Context, preds []Predicate) (int64, error) {
	return r.listing.count(ctx, preds)
}

// FindByID fetches a single place.
func (r *PGXPlacesRepository) FindByID(ctx context.Context, id int64) (*entity.Place, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, location_id, name, body FROM places WHERE id = $1`, id)
	place, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("query place by id: %w", err)
	}
	return &place, nil
}

// LinksByPlace loads the links of every place in placeIDs.
func (r *PGXPlacesRepository) LinksByPlace(ctx context.Context, placeIDs []int64) (map[int64][]entity.Link, error) {
	return groupBy(ctx, r.pool, "links", `
        SELECT place_id, id, title, url
        FROM links
        WHERE place_id = ANY($1)
        ORDER BY place_id, id
    `, func(row pgx.Row) (int64, entity.Link, error) {
		var l entity.Link
		err := row.Scan(&l.PlaceID, &l.ID, &l.Title, &l.URL)
		return l.PlaceID, l, err
	}, placeIDs)
}

func scanPlace(row pgx.Row) (entity.Place, error) {
	var p entity.Place
	err := row.Scan(&p.ID, &p.LocationID, &p.Name, &p.Body)
	return p, err
}
