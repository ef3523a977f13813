package dsl

import (
	"context"
	"encoding/json"

	dekoda "github.com/reoring/dekoda"
)

// AnyDecoder is the erased decoder currency of the Object builder and the
// MapN family.
type AnyDecoder = dekoda.Decoder[any]

// Of erases d's result type so differently typed decoders can share one
// container. The value handed back is the decoded T boxed as any.
func Of[T any](d dekoda.Decoder[T]) AnyDecoder {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) {
		t, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}

// StringOf decodes a string into the named string type T, erased for
// builder use.
func StringOf[T ~string]() AnyDecoder {
	return Of(Map(String(), func(s string) T { return T(s) }))
}

// BoolOf decodes a bool into the named bool type T, erased for builder use.
func BoolOf[T ~bool]() AnyDecoder {
	return Of(Map(Bool(), func(b bool) T { return T(b) }))
}

// NumberOf decodes numeric text into the named string type T, erased for
// builder use.
func NumberOf[T ~string]() AnyDecoder {
	return Of(Map(Number(), func(n json.Number) T { return T(string(n)) }))
}

// FloatOf decodes a number into the named float type T, erased for builder
// use.
func FloatOf[T ~float64]() AnyDecoder {
	return Of(Map(Float64(), func(f float64) T { return T(f) }))
}

// IntOf decodes an integral number into any named signed integer type T
// with range checking, erased for builder use.
func IntOf[T SignedInt]() AnyDecoder { return Of(SignedOf[T]()) }

// UintOf decodes an integral number into any named unsigned integer type T
// with range checking, erased for builder use.
func UintOf[T UnsignedInt]() AnyDecoder { return Of(UnsignedOf[T]()) }
