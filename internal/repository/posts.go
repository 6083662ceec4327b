package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// ErrPostNotFound is returned when no post has the requested id.
var ErrPostNotFound = errors.New("post not found")

// PostsRepository describes read access to blog posts.
type PostsRepository interface {
	List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Post, error)
	Count(ctx context.Context, preds []Predicate) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Post, error)
	VideosByPost(ctx context.Context, postIDs []int64) (map[int64][]entity.Video, error)
}

// PostSearch matches the title or the body.
func PostSearch(term string) Predicate {
	return Search(term, "p.title", "p.body")
}

// PostWithSubject keeps posts tagged with the named subject.
func PostWithSubject(name string) Predicate {
	return Where(`EXISTS (
            SELECT 1 FROM post_subject ps
            JOIN subjects s ON s.id = ps.subject_id
            WHERE ps.post_id = p.id AND s.name = ?
        )`, name)
}

// PGXPostsRepository implements PostsRepository using pgx.
type PGXPostsRepository struct {
	pool    pgxPool
	listing listing[entity.Post]
}

// NewPGXPostsRepository wires a pgx backed repository.
func NewPGXPostsRepository(pool *pgxpool.Pool) *PGXPostsRepository {
	return newPostsRepository(pool)
}

func newPostsRepository(pool pgxPool) *PGXPostsRepository {
	return &PGXPostsRepository{
		pool: pool,
		listing: listing[entity.Post]{
			pool:    pool,
			name:    "posts",
			from:    "posts p",
			columns: "p.id, p.title, p.body, p.main_image",
			order:   "p.id ASC",
			scan:    scanPost,
		},
	}
}

// List returns one page of posts matching every predicate, ordered by id.
func (r *PGXPostsRepository) List(ctx context.Context, preds []Predicate, limit, offset int) ([]entity.Post, error) {
	return r.listing.page(ctx, preds, limit, offset)
}

// Count returns how many posts match every predicate.
func (r *PGXPostsRepository) Count(ctx context.Context, preds []Predicate) (int64, error) {
	return r.listing.count(ctx, preds)
}

// FindByID fetches a single post.
func (r *PGXPostsRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, title, body, main_image FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return &post, nil
}

// VideosByPost loads the videos of every post in postIDs.
func (r *PGXPostsRepository) VideosByPost(ctx context.Context, postIDs []int64) (map[int64][]entity.Video, error) {
	return groupBy(ctx, r.pool, "videos", `
        SELECT post_id, id, url
        FROM videos
        WHERE post_id = ANY($1)
        ORDER BY post_id, id
    `, func(row pgx.Row) (int64, entity.Video, error) {
		var v entity.Video
		err := row.Scan(&v.PostID, &v.ID, &v.URL)
		return v.PostID, v, err
	}, postIDs)
}

func scanPost(row pgx.Row) (entity.Post, error) {
	var p entity.Post
	err := row.Scan(&p.ID, &p.Title, &p.Body, &p.MainImage)
	return p, err
}
