package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// HotelsRepository describes read access to hotels.
type HotelsRepository interface {
	List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Hotel, error)
	Count(ctx context.Context, preds []Predicate) (int64, error)
	RoomsByHotel(ctx context.Context, hotelIDs []int64) (map[int64][]entity.Room, error)
	HotelsByDay(ctx context.Context, dayIDs []int64) (map[int64][]entity.Hotel, error)
}

// HotelAtLocation keeps hotels in the location.
func HotelAtLocation(locationID int64) Predicate {
	return Where("h.location_id = ?", locationID)
}

const hotelColumns = "h.id, h.location_id, h.name, h.map, h.main_image, h.stars, h.body, h.viewed, h.recommended"

// PGXHotelsRepository implements HotelsRepository using pgx.
type PGXHotelsRepository struct {
	pool    pgxPool
	listing listing[entity.Hotel]
}

// NewPGXHotelsRepository wires a pgx backed repository.
func NewPGXHotelsRepository(pool *pgxpool.Pool) *PGXHotelsRepository {
	return newHotelsRepository(pool)
}

func newHotelsRepository(pool pgxPool) *PGXHotelsRepository {
	return &PGXHotelsRepository{
		pool: pool,
		listing: listing[entity.Hotel]{
			pool:    pool,
			name:    "hotels",
			from:    "hotels h",
			columns: hotelColumns,
			order:   "h.id ASC",
			scan:    scanHotel,
		},
	}
}

// List returns one page of hotels matching every predicate, ordered by id.
func (r *PGXHotelsRepository) List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Hotel, error) {
	return r.listing.page(ctx, preds, limit, offset)
}

// Count returns how many hotels match every predicate.
func (r *PGXHotelsRepository) Count(ctx context.Context, preds []Predicate) (int64, error) {
	return r.listing.count(ctx, preds)
}

// RoomsByHotel loads the rooms of every hotel in hotelIDs.
func (r *PGXHotelsRepository) RoomsByHotel(ctx context.Context, hotelIDs []int64) (map[int64][]entity.Room, error) {
	return groupBy(ctx, r.pool, "rooms", `
        SELECT hotel_id, id, name, capacity, price
        FROM rooms
        WHERE hotel_id = ANY($1)
        ORDER BY hotel_id, id
    `, func(row pgx.Row) (int64, entity.Room, error) {
		var room entity.Room
		err := row.Scan(&room.HotelID, &room.ID, &room.Name, &room.Capacity, &room.Price)
		return room.HotelID, room, err
	}, hotelIDs)
}

// HotelsByDay loads the hotels booked for every tour day in dayIDs.
func (r *PGXHotelsRepository) HotelsByDay(ctx context.Context, dayIDs []int64) (map[int64][]entity.Hotel, error) {
	return groupBy(ctx, r.pool, "day hotels", `
        SELECT dh.day_id, `+hotelColumns+`
        FROM day_hotel dh
        JOIN hotels h ON h.id = dh.hotel_id
        WHERE dh.day_id = ANY($1)
        ORDER BY dh.day_id, h.id
    `, func(row pgx.Row) (int64, entity.Hotel, error) {
		var (
			dayID int64
			h     entity.Hotel
		)
		err := row.Scan(&dayID, &h.ID, &h.LocationID, &h.Name, &h.Map, &h.MainImage, &h.Stars, &h.Body, &h.Viewed, &h.Recommended)
		return dayID, h, err
	}, dayIDs)
}

func scanHotel(row pgx.Row) (entity.Hotel, error) {
	var h entity.Hotel
	err := row.Scan(&h.ID, &h.LocationID, &h.Name, &h.Map, &h.MainImage, &h.Stars, &h.Body, &h.Viewed, &h.Recommended)
	return h, err
}
