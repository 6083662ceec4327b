package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// MediaRepository loads the polymorphic images and texts of any owner type.
type MediaRepository interface {
	Images(ctx context.Context, ownerType string, ownerIDs []int64) (map[int64][]entity.Image, error)
	Texts(ctx context.Context, ownerType string, ownerIDs []int64) (map[int64][]entity.Text, error)
}

// PGXMediaRepository implements MediaRepository using pgx.
type PGXMediaRepository struct {
	pool pgxPool
}

// NewPGXMediaRepository wires a pgx backed repository.
func NewPGXMediaRepository(pool *pgxpool.Pool) *PGXMediaRepository {
	return &PGXMediaRepository{pool: pool}
}

// Images loads the images of every owner in ownerIDs.
func (r *PGXMediaRepository) Images(ctx context.Context, ownerType string, ownerIDs []int64) (map[int64][]entity.Image, error) {
	return groupBy(ctx, r.pool, ownerType+" images", `
        SELECT owner_id, id, owner_type, path
        FROM images
        WHERE owner_type = $1 AND owner_id = ANY($2)
        ORDER BY owner_id, id
    `, func(row pgx.Row) (int64, entity.Image, error) {
		var img entity.Image
		err := row.Scan(&img.OwnerID, &img.ID, &img.OwnerType, &img.Path)
		return img.OwnerID, img, err
	}, ownerType, ownerIDs)
}

// Texts loads the localized texts of every owner in ownerIDs.
func (r *PGXMediaRepository) Texts(ctx context.Context, ownerType string, ownerIDs []int64) (map[int64][]entity.Text, error) {
	return groupBy(ctx, r.pool, ownerType+" texts", `
        SELECT owner_id, id, owner_type, locale, title, body
        FROM texts
        WHERE owner_type = $1 AND owner_id = ANY($2)
        ORDER BY owner_id, id
    `, func(row pgx.Row) (int64, entity.Text, error) {
		var t entity.Text
		err := row.Scan(&t.OwnerID, &t.ID, &t.OwnerType, &t.Locale, &t.Title, &t.Body)
		return t.OwnerID, t, err
	}, ownerType, ownerIDs)
}
