package dsl

import (
	"context"

	gojson "github.com/goccy/go-json"

	dekoda "github.com/reoring/dekoda"
)

// Unmarshal bridges a subtree into tag-driven decoding of T. The subtree is
// re-serialized with goccy/go-json and unmarshaled into T, so json struct
// tags and UnmarshalJSON implementations apply as they would under
// encoding/json. Handy for leaf types that already know how to decode
// themselves; for struct assembly with per-field errors prefer Object/Bind.
func Unmarshal[T any]() dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var out T
		raw, err := gojson.Marshal(v)
		if err != nil {
			return out, dekoda.Issues{{
				Code:    dekoda.CodeParseError,
				Message: "re-encode: " + err.Error(),
				Cause:   err,
				Offset:  -1,
			}}
		}
		if err := gojson.Unmarshal(raw, &out); err != nil {
			var zero T
			return zero, dekoda.Issues{{
				Code:    dekoda.CodeTypeMismatch,
				Message: err.Error(),
				Cause:   err,
				Offset:  -1,
			}}
		}
		return out, nil
	})
}
