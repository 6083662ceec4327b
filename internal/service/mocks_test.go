package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/repository"
)

// catalogPlace is a place row of the in-memory store with its category names.
type catalogPlace struct {
	place      entity.Place
	categories []string
}

// memPlaces evaluates place predicates against an in-memory catalogue.
type memPlaces struct {
	items      []catalogPlace
	listCalls  int
	countCalls int
	lastOffset int
	err        error
}

func (m *memPlaces) match(preds []repository.Predicate) []entity.Place {
	var out []entity.Place
	for _, item := range m.items {
		ok := true
		for _, p := range preds {
			if !matchPlace(item, p) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item.place)
		}
	}
	return out
}

func matchPlace(item catalogPlace, p repository.Predicate) bool {
	cond, args := p.String(), p.Args()
	switch {
	case strings.Contains(cond, "ILIKE"):
		term := strings.Trim(args[0].(string), "%")
		term = strings.NewReplacer(`\%`, "%", `\_`, "_", `\\`, `\`).Replace(term)
		return strings.Contains(strings.ToLower(item.place.Name), strings.ToLower(term))
	case strings.Contains(cond, "c.name"):
		for _, c := range item.categories {
			if c == args[0] {
				return true
			}
		}
		return false
	case strings.Contains(cond, "location_id"):
		return item.place.LocationID == args[0].(int64)
	}
	return false
}

func (m *memPlaces) List(ctx context.Context, preds []repository.Predicate, limit, offset int) ([]entity.Place, error) {
	m.listCalls++
	m.lastOffset = offset
	if m.err != nil {
		return nil, m.err
	}
	all := m.match(preds)
	if offset >= len(all) {
		return []entity.Place{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]entity.Place(nil), all[offset:end]...), nil
}

func (m *memPlaces) Count(ctx context.Context, preds []repository.Predicate) (int64, error) {
	m.countCalls++
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.match(preds))), nil
}

func (m *memPlaces) FindByID(ctx context.Context, id int64) (*entity.Place, error) {
	for _, item := range m.items {
		if item.place.ID == id {
			p := item.place
			return &p, nil
		}
	}
	return nil, repository.ErrPlaceNotFound
}

func (m *memPlaces) LinksByPlace(ctx context.Context, ids []int64) (map[int64][]entity.Link, error) {
	return map[int64][]entity.Link{1: {{ID: 1, PlaceID: 1, URL: "https://example.com"}}}, nil
}

type mockReferences struct {
	categories []entity.Category
	locations  []entity.Location
	subjects   []entity.Subject
	calls      int
}

func (m *mockReferences) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	m.calls++
	for _, c := range m.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *mockReferences) FindLocationByID(ctx context.Context, id int64) (*entity.Location, error) {
	m.calls++
	for _, l := range m.locations {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, repository.ErrLocationNotFound
}

func (m *mockReferences) FindSubjectByID(ctx context.Context, id int64) (*entity.Subject, error) {
	m.calls++
	for _, s := range m.subjects {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrSubjectNotFound
}

func (m *mockReferences) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return m.categories, nil
}

func (m *mockReferences) ListLocationsWithPlaces(ctx context.Context) ([]entity.Location, error) {
	return m.locations, nil
}

func (m *mockReferences) ListLocationsWithHotels(ctx context.Context) ([]entity.Location, error) {
	return m.locations[:1], nil
}

func (m *mockReferences) ListSubjectsExcept(ctx context.Context, excludeID int64) ([]entity.Subject, error) {
	var out []entity.Subject
	for _, s := range m.subjects {
		if s.ID != excludeID {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockMedia struct {
	mu          sync.Mutex
	imageOwners []string
}

func (m *mockMedia) Images(ctx context.Context, ownerType string, ids []int64) (map[int64][]entity.Image, error) {
	m.mu.Lock()
	m.imageOwners = append(m.imageOwners, ownerType)
	m.mu.Unlock()
	out := make(map[int64][]entity.Image, len(ids))
	for _, id := range ids {
		out[id] = []entity.Image{{ID: id * 10, OwnerType: ownerType, OwnerID: id, Path: "img.jpg"}}
	}
	return out, nil
}

func (m *mockMedia) Texts(ctx context.Context, ownerType string, ids []int64) (map[int64][]entity.Text, error) {
	out := make(map[int64][]entity.Text, len(ids))
	for _, id := range ids {
		out[id] = []entity.Text{{ID: id*100 + 1, OwnerType: ownerType, OwnerID: id, Locale: "en", Body: "text"}}
	}
	return out, nil
}

type mockPosts struct {
	preds []repository.Predicate
	posts []entity.Post
}

func (m *mockPosts) List(ctx context.Context, preds []repository.Predicate, limit, offset int) ([]entity.Post, error) {
	m.preds = preds
	return m.posts, nil
}

func (m *mockPosts) Count(ctx context.Context, preds []repository.Predicate) (int64, error) {
	m.preds = preds
	return int64(len(m.posts)), nil
}

func (m *mockPosts) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrPostNotFound
}

func (m *mockPosts) VideosByPost(ctx context.Context, ids []int64) (map[int64][]entity.Video, error) {
	return map[int64][]entity.Video{}, nil
}

type mockHotels struct {
	preds  []repository.Predicate
	hotels []entity.Hotel
}

func (m *mockHotels) List(ctx context.Context, preds []repository.Predicate, limit, offset int) ([]entity.Hotel, error) {
	m.preds = preds
	return m.hotels, nil
}

func (m *mockHotels) Count(ctx context.Context, preds []repository.Predicate) (int64, error) {
	return int64(len(m.hotels)), nil
}

func (m *mockHotels) RoomsByHotel(ctx context.Context, ids []int64) (map[int64][]entity.Room, error) {
	return map[int64][]entity.Room{1: {{ID: 1, HotelID: 1, Name: "Double", Capacity: 2}}}, nil
}

func (m *mockHotels) HotelsByDay(ctx context.Context, ids []int64) (map[int64][]entity.Hotel, error) {
	out := make(map[int64][]entity.Hotel)
	for _, id := range ids {
		out[id] = []entity.Hotel{{ID: 1, Name: "Seaside Inn"}}
	}
	return out, nil
}

type mockTours struct {
	tours []entity.Tour
	days  map[int64][]entity.Day
}

func (m *mockTours) List(ctx context.Context, preds []repository.Predicate, limit, offset int) ([]entity.Tour, error) {
	if offset >= len(m.tours) {
		return []entity.Tour{}, nil
	}
	end := offset + limit
	if end > len(m.tours) {
		end = len(m.tours)
	}
	return append([]entity.Tour(nil), m.tours[offset:end]...), nil
}

func (m *mockTours) Count(ctx context.Context, preds []repository.Predicate) (int64, error) {
	return int64(len(m.tours)), nil
}

func (m *mockTours) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	for _, t := range m.tours {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, repository.ErrTourNotFound
}

func (m *mockTours) DaysByTour(ctx context.Context, ids []int64) (map[int64][]entity.Day, error) {
	out := make(map[int64][]entity.Day)
	for _, id := range ids {
		out[id] = append([]entity.Day(nil), m.days[id]...)
	}
	return out, nil
}

func (m *mockTours) PlacesByDay(ctx context.Context, ids []int64) (map[int64][]entity.Place, error) {
	out := make(map[int64][]entity.Place)
	for _, id := range ids {
		out[id] = []entity.Place{{ID: id, Name: "Stop"}}
	}
	return out, nil
}

func (m *mockTours) NotesByTour(ctx context.Context, ids []int64) (map[int64][]entity.Note, error) {
	return map[int64][]entity.Note{1: {{ID: 1, TourID: 1, Body: "Bring a hat"}}}, nil
}

func (m *mockTours) PricesByTour(ctx context.Context, ids []int64) (map[int64][]entity.Price, error) {
	return map[int64][]entity.Price{1: {{ID: 1, TourID: 1, Persons: 2, Amount: 900}}}, nil
}

type mockMessages struct {
	inserted []entity.ReceivedMessage
	err      error
}

func (m *mockMessages) Insert(ctx context.Context, msg *entity.ReceivedMessage) error {
	if m.err != nil {
		return m.err
	}
	msg.ID = int64(len(m.inserted) + 1)
	m.inserted = append(m.inserted, *msg)
	return nil
}

var errStore = errors.New("store unavailable")
