package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/loader"
	"github.com/Toylycker/Travel-Agency/internal/metrics"
	"github.com/Toylycker/Travel-Agency/internal/repository"
	"github.com/Toylycker/Travel-Agency/internal/validation"
)

// PostsService serves the blog listing, count and post page.
type PostsService struct {
	posts repository.PostsRepository
	refs  repository.ReferencesRepository
	media media
}

// NewPostsService creates a new instance of PostsService.
func NewPostsService(posts repository.PostsRepository, refs repository.ReferencesRepository, mediaRepo repository.MediaRepository) *PostsService {
	return &PostsService{posts: posts, refs: refs, media: media{repo: mediaRepo}}
}

// The subject arrives as an id but posts are matched on the subject name.
func (s *PostsService) filters(ctx context.Context, c dto.PostCriteria) (filterSet, error) {
	c.Search = strings.TrimSpace(c.Search)
	c.Subject = strings.TrimSpace(c.Subject)
	if err := validation.ValidateStruct(&c); err != nil {
		return filterSet{}, err
	}

	var f filterSet
	if c.Subject != "" {
		id, err := parseReference("subject", c.Subject)
		if err != nil {
			return filterSet{}, err
		}
		subject, err := s.refs.FindSubjectByID(ctx, id)
		if err != nil {
			return filterSet{}, notFound(err, id)
		}
		f.preds = append(f.preds, repository.PostWithSubject(subject.Name))
		f.active.Subject = subject
	}
	if c.Search != "" {
		search := c.Search
		f.preds = append(f.preds, repository.PostSearch(search))
		f.active.Search = &search
	}
	return f, nil
}

// List returns one page of posts with images, texts and videos, and the
// subjects other than the active one.
func (s *PostsService) List(ctx context.Context, c dto.PostCriteria) (*dto.ListingResponse[entity.Post], error) {
	defer metrics.ObserveQuery("posts", "list", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return nil, err
	}

	page := normalizePage(c.Page, dto.PostsPerPage)
	total, err := s.posts.Count(ctx, f.preds)
	if err != nil {
		return nil, err
	}
	items, err := s.posts.List(ctx, f.preds, dto.PostsPerPage, offset(page, dto.PostsPerPage))
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, items); err != nil {
		return nil, err
	}

	var activeID int64
	if f.active.Subject != nil {
		activeID = f.active.Subject.ID
	}
	subjects, err := s.refs.ListSubjectsExcept(ctx, activeID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("filters", len(f.preds)).
		Int64("total", total).
		Int("page", page).
		Msg("posts listed")

	return &dto.ListingResponse[entity.Post]{
		Items:         dto.NewPage(items, page, dto.PostsPerPage, total),
		ActiveFilters: f.active,
		Facets:        dto.Facets{Subjects: owned(subjects)},
		HasResults:    len(items) > 0,
	}, nil
}

// Count returns how many posts match the criteria.
func (s *PostsService) Count(ctx context.Context, c dto.PostCriteria) (int64, error) {
	defer metrics.ObserveQuery("posts", "count", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return 0, err
	}
	return s.posts.Count(ctx, f.preds)
}

// Get returns a post with its texts, images and videos.
func (s *PostsService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	items := []entity.Post{*post}
	if err := s.hydrate(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *PostsService) hydrate(ctx context.Context, items []entity.Post) error {
	ids := make([]int64, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}

	var (
		images map[int64][]entity.Image
		texts  map[int64][]entity.Text
		videos map[int64][]entity.Video
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		images, err = loader.LoadAll(gctx, s.media.images(entity.OwnerPost), ids)
		return err
	})
	g.Go(func() (err error) {
		texts, err = loader.LoadAll(gctx, s.media.texts(entity.OwnerPost), ids)
		return err
	})
	g.Go(func() (err error) {
		videos, err = loader.LoadAll[entity.Video](gctx, s.posts.VideosByPost, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		items[i].Images = images[items[i].ID]
		items[i].Texts = texts[items[i].ID]
		items[i].Videos = videos[items[i].ID]
	}
	return nil
}
