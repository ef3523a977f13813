package dsl

import (
	"context"
	"sort"

	dekoda "github.com/reoring/dekoda"
)

// SliceOf applies elem to every element of a sequence-shaped input. Element
// failures aggregate with their index prefixed to each leaf, so one pass
// reports every bad element; under fail-fast the first failing element
// stops the walk. Success preserves input order and an empty sequence
// yields an empty non-nil slice.
func SliceOf[T any](elem dekoda.Decoder[T]) dekoda.Decoder[[]T] {
	return dekoda.DecoderFunc[[]T](func(ctx context.Context, v any) ([]T, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, mismatch("sequence", v)
		}
		out := make([]T, 0, len(arr))
		var iss dekoda.Issues
		for i, ev := range arr {
			t, err := elem.Decode(ctx, ev)
			if err != nil {
				iss = append(iss, dekoda.PrefixIndex(dekoda.EnsureIssues(err), i)...)
				if dekoda.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			out = append(out, t)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	})
}

// MapOf applies elem to every value of a map-shaped input. Keys are walked
// in sorted order so aggregated failures come out deterministically.
func MapOf[T any](elem dekoda.Decoder[T]) dekoda.Decoder[map[string]T] {
	return dekoda.DecoderFunc[map[string]T](func(ctx context.Context, v any) (map[string]T, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch("map", v)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]T, len(m))
		var iss dekoda.Issues
		for _, k := range keys {
			t, err := elem.Decode(ctx, m[k])
			if err != nil {
				iss = append(iss, dekoda.PrefixKey(dekoda.EnsureIssues(err), k)...)
				if dekoda.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			out[k] = t
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	})
}
