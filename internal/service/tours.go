package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/loader"
	"github.com/Toylycker/Travel-Agency/internal/metrics"
	"github.com/Toylycker/Travel-Agency/internal/repository"
)

// ToursService serves the tours listing and the tour page.
type ToursService struct {
	tours  repository.ToursRepository
	hotels repository.HotelsRepository
	media  media
}

// NewToursService creates a new instance of ToursService.
func NewToursService(tours repository.ToursRepository, hotels repository.HotelsRepository, mediaRepo repository.MediaRepository) *ToursService {
	return &ToursService{tours: tours, hotels: hotels, media: media{repo: mediaRepo}}
}

// List returns one page of tours, each with its days, their place counts and places.
func (s *ToursService) List(ctx context.Context, page int) (*dto.ListingResponse[entity.Tour], error) {
	defer metrics.ObserveQuery("tours", "list", time.Now())

	page = normalizePage(page, dto.ToursPerPage)
	total, err := s.tours.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	items, err := s.tours.List(ctx, nil, dto.ToursPerPage, offset(page, dto.ToursPerPage))
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(items))
	for i, t := range items {
		ids[i] = t.ID
	}
	days, err := s.days(ctx, ids, false)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Days = days[items[i].ID]
	}

	return &dto.ListingResponse[entity.Tour]{
		Items:      dto.NewPage(items, page, dto.ToursPerPage, total),
		HasResults: len(items) > 0,
	}, nil
}

// Get returns a tour with notes, prices and images, and its days ordered by
// day number with their places and hotels.
func (s *ToursService) Get(ctx context.Context, id int64) (*dto.TourDetail, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	ids := []int64{tour.ID}
	var (
		notes  map[int64][]entity.Note
		prices map[int64][]entity.Price
		images map[int64][]entity.Image
		days   map[int64][]entity.Day
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		notes, err = loader.LoadAll[entity.Note](gctx, s.tours.NotesByTour, ids)
		return err
	})
	g.Go(func() (err error) {
		prices, err = loader.LoadAll[entity.Price](gctx, s.tours.PricesByTour, ids)
		return err
	})
	g.Go(func() (err error) {
		images, err = loader.LoadAll(gctx, s.media.images(entity.OwnerTour), ids)
		return err
	})
	g.Go(func() (err error) {
		days, err = s.days(gctx, ids, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tour.Notes = notes[tour.ID]
	tour.Prices = prices[tour.ID]
	tour.Images = images[tour.ID]
	return &dto.TourDetail{Tour: *tour, Days: days[tour.ID]}, nil
}

// days loads the itinerary of every tour with the places of each day, and the
// hotels too when withHotels is set.
func (s *ToursService) days(ctx context.Context, tourIDs []int64, withHotels bool) (map[int64][]entity.Day, error) {
	days, err := loader.LoadAll[entity.Day](ctx, s.tours.DaysByTour, tourIDs)
	if err != nil {
		return nil, err
	}

	var dayIDs []int64
	for _, tourDays := range days {
		for _, d := range tourDays {
			dayIDs = append(dayIDs, d.ID)
		}
	}

	var (
		places map[int64][]entity.Place
		hotels map[int64][]entity.Hotel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		places, err = loader.LoadAll[entity.Place](gctx, s.tours.PlacesByDay, dayIDs)
		return err
	})
	if withHotels {
		g.Go(func() (err error) {
			hotels, err = loader.LoadAll[entity.Hotel](gctx, s.hotels.HotelsByDay, dayIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for tourID, tourDays := range days {
		for i := range tourDays {
			tourDays[i].Places = places[tourDays[i].ID]
			if withHotels {
				tourDays[i].Hotels = hotels[tourDays[i].ID]
			}
		}
		days[tourID] = tourDays
	}
	return days, nil
}
