package handler

import (
	"context"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
)

type stubPlacesService struct {
	lastCriteria dto.PlaceCriteria
	lastID       int64
	list         *dto.ListingResponse[entity.Place]
	total        int64
	place        *entity.Place
	err          error
}

func (s *stubPlacesService) List(ctx context.Context, c dto.PlaceCriteria) (*dto.ListingResponse[entity.Place], error) {
	s.lastCriteria = c
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubPlacesService) Count(ctx context.Context, c dto.PlaceCriteria) (int64, error) {
	s.lastCriteria = c
	return s.total, s.err
}

func (s *stubPlacesService) Get(ctx context.Context, id int64) (*entity.Place, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.place, nil
}

type stubPostsService struct {
	lastCriteria dto.PostCriteria
	lastID       int64
	list         *dto.ListingResponse[entity.Post]
	total        int64
	post         *entity.Post
	err          error
}

func (s *stubPostsService) List(ctx context.Context, c dto.PostCriteria) (*dto.ListingResponse[entity.Post], error) {
	s.lastCriteria = c
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubPostsService) Count(ctx context.Context, c dto.PostCriteria) (int64, error) {
	s.lastCriteria = c
	return s.total, s.err
}

func (s *stubPostsService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

type stubHotelsService struct {
	lastCriteria dto.HotelCriteria
	list         *dto.ListingResponse[entity.Hotel]
	total        int64
	err          error
}

func (s *stubHotelsService) List(ctx context.Context, c dto.HotelCriteria) (*dto.ListingResponse[entity.Hotel], error) {
	s.lastCriteria = c
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubHotelsService) Count(ctx context.Context, c dto.HotelCriteria) (int64, error) {
	s.lastCriteria = c
	return s.total, s.err
}

type stubToursService struct {
	lastPage int
	lastID   int64
	list     *dto.ListingResponse[entity.Tour]
	detail   *dto.TourDetail
	err      error
}

func (s *stubToursService) List(ctx context.Context, page int) (*dto.ListingResponse[entity.Tour], error) {
	s.lastPage = page
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubToursService) Get(ctx context.Context, id int64) (*dto.TourDetail, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubContactService struct {
	calls int
	last  dto.ContactRequest
	err   error
}

func (s *stubContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ReceivedMessage, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ReceivedMessage{ID: 1, Email: req.Email, Message: req.Message}, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}
