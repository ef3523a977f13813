package dsl

import (
	"context"
	"strconv"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/i18n"
)

// Field decodes the named key of a map-shaped input with d. A missing key
// fails with missing_field located at the key; failures of d carry the key
// prepended to their paths. A non-map input fails at the current path, not
// the key's.
func Field[T any](name string, d dekoda.Decoder[T]) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		m, ok := v.(map[string]any)
		if !ok {
			return zero, mismatch("map", v)
		}
		fv, present := m[name]
		if !present {
			return zero, missingField(name)
		}
		t, err := d.Decode(ctx, fv)
		if err != nil {
			return zero, dekoda.PrefixKey(dekoda.EnsureIssues(err), name)
		}
		return t, nil
	})
}

// At drills through a chain of keys before applying d. Equivalent to nesting
// Field calls; every key on the way down is prefixed on the way out.
func At[T any](path []string, d dekoda.Decoder[T]) dekoda.Decoder[T] {
	out := d
	for i := len(path) - 1; i >= 0; i-- {
		out = Field(path[i], out)
	}
	return out
}

// Index decodes element i of a sequence-shaped input with d. An index past
// the end fails with index_out_of_range located at the element; failures of
// d carry the index prepended to their paths.
func Index[T any](i int, d dekoda.Decoder[T]) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		arr, ok := v.([]any)
		if !ok {
			return zero, mismatch("sequence", v)
		}
		if i < 0 || i >= len(arr) {
			return zero, outOfRange(i, len(arr))
		}
		t, err := d.Decode(ctx, arr[i])
		if err != nil {
			return zero, dekoda.PrefixIndex(dekoda.EnsureIssues(err), i)
		}
		return t, nil
	})
}

func missingField(name string) dekoda.Issues {
	return dekoda.Issues{{
		Path:    dekoda.Path{}.Field(name),
		Code:    dekoda.CodeMissingField,
		Message: i18n.T(dekoda.CodeMissingField, map[string]string{"key": name}),
		Params:  map[string]any{"key": name},
		Offset:  -1,
	}}
}

func outOfRange(i, length int) dekoda.Issues {
	return dekoda.Issues{{
		Path:    dekoda.Path{}.Index(i),
		Code:    dekoda.CodeIndexOutOfRange,
		Message: i18n.T(dekoda.CodeIndexOutOfRange, map[string]string{"index": strconv.Itoa(i), "length": strconv.Itoa(length)}),
		Params:  map[string]any{"index": i, "length": length},
		Offset:  -1,
	}}
}
