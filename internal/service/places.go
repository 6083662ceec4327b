package service

import (
	"context"
	"strconv"
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

// PlacesService serves the places listing, live count and place page.
type PlacesService struct {
	places repository.PlacesRepository
	refs   repository.ReferencesRepository
	media  media
}

// NewPlacesService creates a new instance of PlacesService.
func NewPlacesService(places repository.PlacesRepository, refs repository.ReferencesRepository, mediaRepo repository.MediaRepository) *PlacesService {
	return &PlacesService{places: places, refs: refs, media: media{repo: mediaRepo}}
}

type filterSet struct {
	preds  []repository.Predicate
	active dto.ActiveFilters
}

// filters validates the criteria and resolves its references. List and Count
// both go through here so their results cannot drift apart.
func (s *PlacesService) filters(ctx context.Context, c dto.PlaceCriteria) (filterSet, error) {
	c.Search = strings.TrimSpace(c.Search)
	c.Category = strings.TrimSpace(c.Category)
	c.Location = strings.TrimSpace(c.Location)
	if err := validation.ValidateStruct(&c); err != nil {
		return filterSet{}, err
	}

	var f filterSet
	if c.Location != "" {
		id, err := parseReference("location", c.Location)
		if err != nil {
			return filterSet{}, err
		}
		location, err := s.refs.FindLocationByID(ctx, id)
		if err != nil {
			return filterSet{}, notFound(err, id)
		}
		f.preds = append(f.preds, repository.PlaceAtLocation(location.ID))
		f.active.Location = location
	}
	if c.Category != "" {
		category, err := s.refs.FindCategoryByName(ctx, c.Category)
		if err != nil {
			return filterSet{}, notFound(err, c.Category)
		}
		f.preds = append(f.preds, repository.PlaceInCategory(category.Name))
		f.active.Category = &category.Name
	}
	if c.Search != "" {
		search := c.Search
		f.preds = append(f.preds, repository.PlaceSearch(search))
		f.active.Search = &search
	}
	return f, nil
}

// List returns one page of places with their images and texts, the echoed
// filters and the category and location facets.
func (s *PlacesService) List(ctx context.Context, c dto.PlaceCriteria) (*dto.ListingResponse[entity.Place], error) {
	defer metrics.ObserveQuery("places", "list", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return nil, err
	}

	page := normalizePage(c.Page, dto.PlacesPerPage)
	total, err := s.places.Count(ctx, f.preds)
	if err != nil {
		return nil, err
	}
	items, err := s.places.List(ctx, f.preds, dto.PlacesPerPage, offset(page, dto.PlacesPerPage))
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, items); err != nil {
		return nil, err
	}

	categories, err := s.refs.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.refs.ListLocationsWithPlaces(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListingResponse[entity.Place]{
		Items:         dto.NewPage(items, page, dto.PlacesPerPage, total),
		ActiveFilters: f.active,
		Facets:        dto.Facets{Categories: owned(categories), Locations: owned(locations)},
		HasResults:    len(items) > 0,
	}
	if count := strings.TrimSpace(c.Count); count != "" {
		resp.ResultCount = &count
	}

	zerolog.Ctx(ctx).Debug().
		Int("filters", len(f.preds)).
		Int64("total", total).
		Int("page", page).
		Msg("places listed")
	return resp, nil
}

// Count returns how many places match the criteria.
func (s *PlacesService) Count(ctx context.Context, c dto.PlaceCriteria) (int64, error) {
	defer metrics.ObserveQuery("places", "count", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return 0, err
	}
	return s.places.Count(ctx, f.preds)
}

// Get returns a place with its texts (each with images), images and links.
func (s *PlacesService) Get(ctx context.Context, id int64) (*entity.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	ids := []int64{place.ID}
	var (
		texts  map[int64][]entity.Text
		images map[int64][]entity.Image
		links  map[int64][]entity.Link
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		texts, err = s.media.textsWithImages(gctx, entity.OwnerPlace, ids)
		return err
	})
	g.Go(func() (err error) {
		images, err = loader.LoadAll(gctx, s.media.images(entity.OwnerPlace), ids)
		return err
	})
	g.Go(func() (err error) {
		links, err = loader.LoadAll[entity.Link](gctx, s.places.LinksByPlace, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	place.Texts = texts[place.ID]
	place.Images = images[place.ID]
	place.Links = links[place.ID]
	return place, nil
}

func (s *PlacesService) hydrate(ctx context.Context, items []entity.Place) error {
	ids := make([]int64, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}

	var (
		images map[int64][]entity.Image
		texts  map[int64][]entity.Text
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		images, err = loader.LoadAll(gctx, s.media.images(entity.OwnerPlace), ids)
		return err
	})
	g.Go(func() (err error) {
		texts, err = loader.LoadAll(gctx, s.media.texts(entity.OwnerPlace), ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		items[i].Images = images[items[i].ID]
		items[i].Texts = texts[items[i].ID]
	}
	return nil
}

// parseReference parses a digits-only reference id that already passed validation.
func parseReference(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.NewError(field, "must be a valid id")
	}
	return id, nil
}
