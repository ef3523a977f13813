package dekoda

import "context"

// Decoder converts one already-parsed tree value into T.
//
// Implementations must be pure: no I/O, no mutation of v, and the same value
// always yields the same result. A Decoder is a stateless value safe for
// concurrent reuse. Failures returned by library decoders are always Issues;
// custom implementations may return any error and Apply will normalize it.
type Decoder[T any] interface {
	Decode(ctx context.Context, v any) (T, error)
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc[T any] func(ctx context.Context, v any) (T, error)

// Decode calls f(ctx, v).
func (f DecoderFunc[T]) Decode(ctx context.Context, v any) (T, error) { return f(ctx, v) }

// Apply runs d against an already-parsed value and normalizes the error
// channel: anything that is not Issues becomes a single custom issue at the
// root. Use DecodeFrom to decode from bytes or readers instead.
func Apply[T any](ctx context.Context, d Decoder[T], v any) (T, error) {
	var zero T
	if d == nil {
		return zero, Issues{Issue{Code: CodeParseError, Message: "nil decoder", Offset: -1}}
	}
	out, err := d.Decode(ctx, v)
	if err != nil {
		return zero, EnsureIssues(err)
	}
	return out, nil
}

// SafeApply applies d and reports success as a bool, discarding issue detail.
func SafeApply[T any](ctx context.Context, d Decoder[T], v any) (T, bool) {
	out, err := Apply(ctx, d, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
