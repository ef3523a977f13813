package dsl

import (
	"context"
	"sort"
	"strings"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/i18n"
)

// Discriminate decodes a tagged union: it reads the string under key and
// hands the whole map to the variant decoder registered for that value.
// This is AndThen specialized to the common discriminator layout, with
// dedicated issue codes for a missing or unknown tag.
func Discriminate[T any](key string, variants map[string]dekoda.Decoder[T]) dekoda.Decoder[T] {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		m, ok := v.(map[string]any)
		if !ok {
			return zero, mismatch("map", v)
		}
		raw, present := m[key]
		if !present {
			return zero, discriminatorMissing(key)
		}
		tag, ok := raw.(string)
		if !ok {
			return zero, dekoda.PrefixKey(mismatch("string", raw), key)
		}
		d, ok := variants[tag]
		if !ok {
			return zero, discriminatorUnknown(key, tag, names)
		}
		return d.Decode(ctx, v)
	})
}

func discriminatorMissing(key string) dekoda.Issues {
	return dekoda.Issues{{
		Path:    dekoda.Path{}.Field(key),
		Code:    dekoda.CodeDiscriminatorMissing,
		Message: i18n.T(dekoda.CodeDiscriminatorMissing, map[string]string{"key": key}),
		Params:  map[string]any{"key": key},
		Offset:  -1,
	}}
}

func discriminatorUnknown(key, got string, allowed []string) dekoda.Issues {
	return dekoda.Issues{{
		Path:    dekoda.Path{}.Field(key),
		Code:    dekoda.CodeDiscriminatorUnknown,
		Message: i18n.T(dekoda.CodeDiscriminatorUnknown, map[string]string{"value": got}),
		Hint:    "one of: " + strings.Join(allowed, ", "),
		Params:  map[string]any{"key": key, "value": got, "allowed": allowed},
		Offset:  -1,
	}}
}
