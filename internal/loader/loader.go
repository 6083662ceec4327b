// Package loader batches association lookups so a page of owners is
// hydrated with one store round-trip per association.
package loader

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/graph-gophers/dataloader"
)

// BatchFunc fetches the children of every owner id, grouped by owner id.
type BatchFunc[T any] func(ctx context.Context, ids []int64) (map[int64][]T, error)

// wait only matters when keys trickle in; LoadAll enqueues the whole batch at once.
const wait = 2 * time.Millisecond

// LoadAll resolves the children of ids through a batched loader. Owners with
// no children map to an empty slice.
func LoadAll[T any](ctx context.Context, fetch BatchFunc[T], ids []int64) (map[int64][]T, error) {
	ids = unique(ids)
	out := make(map[int64][]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		results := make([]*dataloader.Result, len(keys))
		parsed := make([]int64, len(keys))
		for i, k := range keys {
			id, err := strconv.ParseInt(k.String(), 10, 64)
			if err != nil {
				for j := range results {
					results[j] = &dataloader.Result{Error: fmt.Errorf("invalid key %q: %w", k.String(), err)}
				}
				return results
			}
			parsed[i] = id
		}

		grouped, err := fetch(ctx, parsed)
		for i, id := range parsed {
			if err != nil {
				results[i] = &dataloader.Result{Error: err}
				continue
			}
			results[i] = &dataloader.Result{Data: grouped[id]}
		}
		return results
	}

	l := dataloader.NewBatchedLoader(batchFn,
		dataloader.WithWait(wait),
		dataloader.WithBatchCapacity(len(ids)),
		dataloader.WithCache(&dataloader.NoCache{}),
	)

	keys := make(dataloader.Keys, len(ids))
	for i, id := range ids {
		keys[i] = dataloader.StringKey(strconv.FormatInt(id, 10))
	}

	values, errs := l.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i, id := range ids {
		children, _ := values[i].([]T)
		if children == nil {
			children = []T{}
		}
		out[id] = children
	}
	return out, nil
}

func unique(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
