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

// HotelsService serves the hotels listing and count.
type HotelsService struct {
	hotels repository.HotelsRepository
	refs   repository.ReferencesRepository
	media  media
}

// NewHotelsService creates a new instance of HotelsService.
func NewHotelsService(hotels repository.HotelsRepository, refs repository.ReferencesRepository, mediaRepo repository.MediaRepository) *HotelsService {
	return &HotelsService{hotels: hotels, refs: refs, media: media{repo: mediaRepo}}
}

func (s *HotelsService) filters(ctx context.Context, c dto.HotelCriteria) (filterSet, error) {
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
		f.preds = append(f.preds, repository.HotelAtLocation(location.ID))
		f.active.Location = location
	}
	return f, nil
}

// List returns one page of hotels with images and rooms, and the locations
// that have hotels.
func (s *HotelsService) List(ctx context.Context, c dto.HotelCriteria) (*dto.ListingResponse[entity.Hotel], error) {
	defer metrics.ObserveQuery("hotels", "list", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return nil, err
	}

	page := normalizePage(c.Page, dto.HotelsPerPage)
	total, err := s.hotels.Count(ctx, f.preds)
	if err != nil {
		return nil, err
	}
	items, err := s.hotels.List(ctx, f.preds, dto.HotelsPerPage, offset(page, dto.HotelsPerPage))
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, items); err != nil {
		return nil, err
	}

	locations, err := s.refs.ListLocationsWithHotels(ctx)
	if err != nil {
		return nil, err
	}

	var locationID int64
	if f.active.Location != nil {
		locationID = f.active.Location.ID
	}

	zerolog.Ctx(ctx).Debug().
		Int64("location_id", locationID).
		Int64("total", total).
		Int("page", page).
		Msg("hotels listed")

	return &dto.ListingResponse[entity.Hotel]{
		Items:         dto.NewPage(items, page, dto.HotelsPerPage, total),
		ActiveFilters: f.active,
		Facets:        dto.Facets{Locations: owned(locations)},
		HasResults:    len(items) > 0,
		LocationID:    &locationID,
	}, nil
}

// Count returns how many hotels match the criteria.
func (s *HotelsService) Count(ctx context.Context, c dto.HotelCriteria) (int64, error) {
	defer metrics.ObserveQuery("hotels", "count", time.Now())

	f, err := s.filters(ctx, c)
	if err != nil {
		return 0, err
	}
	return s.hotels.Count(ctx, f.preds)
}

func (s *HotelsService) hydrate(ctx context.Context, items []entity.Hotel) error {
	ids := make([]int64, len(items))
	for i, h := range items {
		ids[i] = h.ID
	}

	var (
		images map[int64][]entity.Image
		rooms  map[int64][]entity.Room
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		images, err = loader.LoadAll(gctx, s.media.images(entity.OwnerHotel), ids)
		return err
	})
	g.Go(func() (err error) {
		rooms, err = loader.LoadAll[entity.Room](gctx, s.hotels.RoomsByHotel, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		items[i].Images = images[items[i].ID]
		items[i].Rooms = rooms[items[i].ID]
	}
	return nil
}
