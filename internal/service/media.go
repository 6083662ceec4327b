package service

import (
	"context"
	"math"

	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/loader"
	"github.com/Toylycker/Travel-Agency/internal/repository"
)

// media hydrates the polymorphic associations shared by every listing.
type media struct {
	repo repository.MediaRepository
}

func (m media) images(ownerType string) loader.BatchFunc[entity.Image] {
	return func(ctx context.Context, ids []int64) (map[int64][]entity.Image, error) {
		return m.repo.Images(ctx, ownerType, ids)
	}
}

func (m media) texts(ownerType string) loader.BatchFunc[entity.Text] {
	return func(ctx context.Context, ids []int64) (map[int64][]entity.Text, error) {
		return m.repo.Texts(ctx, ownerType, ids)
	}
}

// textsWithImages loads the texts of the owners and the images of each text.
func (m media) textsWithImages(ctx context.Context, ownerType string, ids []int64) (map[int64][]entity.Text, error) {
	texts, err := loader.LoadAll(ctx, m.texts(ownerType), ids)
	if err != nil {
		return nil, err
	}

	var textIDs []int64
	for _, owned := range texts {
		for _, t := range owned {
			textIDs = append(textIDs, t.ID)
		}
	}
	images, err := loader.LoadAll(ctx, m.images(entity.OwnerText), textIDs)
	if err != nil {
		return nil, err
	}
	for owner, owned := range texts {
		for i := range owned {
			owned[i].Images = images[owned[i].ID]
		}
		texts[owner] = owned
	}
	return texts, nil
}

func offset(page, perPage int) int {
	return (page - 1) * perPage
}

// normalizePage maps pages below 1 to 1 and caps the page so its offset
// cannot overflow.
func normalizePage(page, perPage int) int {
	if page < 1 {
		return 1
	}
	if limit := math.MaxInt / perPage; page > limit {
		return limit
	}
	return page
}

// owned marks a facet as present even when it has no options.
func owned[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
