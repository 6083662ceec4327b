package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// ErrTourNotFound is returned when no tour has the requested id.
var ErrTourNotFound = errors.New("tour not found")

// ToursRepository describes read access to tours and their itinerary.
type ToursRepository interface {
	List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Tour, error)
	Count(ctx context.Context, preds []Predicate) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Tour, error)
	DaysByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Day, error)
	PlacesByDay(ctx context.Context, dayIDs []int64) (map[int64][]entity.Place, error)
	NotesByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Note, error)
	PricesByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Price, error)
}

// PGXToursRepository implements ToursRepository using pgx.
type PGXToursRepository struct {
	pool    pgxPool
	listing listing[entity.Tour]
}

// NewPGXToursRepository wires a pgx backed repository.
func NewPGXToursRepository(pool *pgxpool.Pool) *PGXToursRepository {
	return newToursRepository(pool)
}

func newToursRepository(pool pgxPool) *PGXToursRepository {
	return &PGXToursRepository{
		pool: pool,
		listing: listing[entity.Tour]{
			pool:    pool,
			name:    "tours",
			from:    "tours t",
			columns: "t.id, t.name, t.body, t.map, t.main_image, t.total_days, t.viewed, t.recommended",
			order:   "t.id ASC",
			scan:    scanTour,
		},
	}
}

// List returns one page of tours ordered by id.
func (r *PGXToursRepository) List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Tour, error) {
	return r.listing.page(ctx, preds, limit, offset)
}

// Count returns how many tours match every predicate.
func (r *PGXToursRepository) Count(ctx context.Context, preds []Predicate) (int64, error) {
	return r.listing.count(ctx, preds)
}

// FindByID fetches a single tour.
func (r *PGXToursRepository) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, name, body, map, main_image, total_days, viewed, recommended
        FROM tours
        WHERE id = $1
    `, id)
	tour, err := scanTour(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("query tour by id: %w", err)
	}
	return &tour, nil
}

// DaysByTour loads the days of every tour ordered by day number, each with the
// number of places it visits.
func (r *PGXToursRepository) DaysByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Day, error) {
	return groupBy(ctx, r.pool, "days", `
        SELECT d.tour_id, d.id, d.day_number, d.body,
               (SELECT COUNT(*) FROM day_place dp WHERE dp.day_id = d.id) AS places_count
        FROM days d
        WHERE d.tour_id = ANY($1)
        ORDER BY d.tour_id, d.day_number, d.id
    `, func(row pgx.Row) (int64, entity.Day, error) {
		var d entity.Day
		err := row.Scan(&d.TourID, &d.ID, &d.DayNumber, &d.Body, &d.PlacesCount)
		return d.TourID, d, err
	}, tourIDs)
}

// PlacesByDay loads the places visited on every day in dayIDs.
func (r *PGXToursRepository) PlacesByDay(ctx context.Context, dayIDs []int64) (map[int64][]entity.Place, error) {
	return groupBy(ctx, r.pool, "day places", `
        SELECT dp.day_id, p.id, p.location_id, p.name, p.body
        FROM day_place dp
        JOIN places p ON p.id = dp.place_id
        WHERE dp.day_id = ANY($1)
        ORDER BY dp.day_id, p.id
    `, func(row pgx.Row) (int64, entity.Place, error) {
		var (
			dayID int64
			p     entity.Place
		)
		err := row.Scan(&dayID, &p.ID, &p.LocationID, &p.Name, &p.Body)
		return dayID, p, err
	}, dayIDs)
}

// NotesByTour loads the notes of every tour in tourIDs.
func (r *PGXToursRepository) NotesByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Note, error) {
	return groupBy(ctx, r.pool, "notes", `
        SELECT tour_id, id, body FROM notes WHERE tour_id = ANY($1) ORDER BY tour_id, id
    `, func(row pgx.Row) (int64, entity.Note, error) {
		var n entity.Note
		err := row.Scan(&n.TourID, &n.ID, &n.Body)
		return n.TourID, n, err
	}, tourIDs)
}

// PricesByTour loads the prices of every tour ordered by group size.
func (r *PGXToursRepository) PricesByTour(ctx context.Context, tourIDs []int64) (map[int64][]entity.Price, error) {
	return groupBy(ctx, r.pool, "prices", `
        SELECT tour_id, id, persons, amount FROM prices WHERE tour_id = ANY($1) ORDER BY tour_id, persons, id
    `, func(row pgx.Row) (int64, entity.Price, error) {
		var p entity.Price
		err := row.Scan(&p.TourID, &p.ID, &p.Persons, &p.Amount)
		return p.TourID, p, err
	}, tourIDs)
}

func scanTour(row pgx.Row) (entity.Tour, error) {
	var t entity.Tour
	err := row.Scan(&t.ID, &t.Name, &t.Body, &t.Map, &t.MainImage, &t.TotalDays, &t.Viewed, &t.Recommended)
	return t, err
}
