package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

// Map transforms the result of d with fn. fn must be pure; failures of d
// pass through untouched.
func Map[A, B any](d dekoda.Decoder[A], fn func(A) B) dekoda.Decoder[B] {
	return dekoda.DecoderFunc[B](func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(a), nil
	})
}

// AndThen decodes with d, then feeds the result to next to pick the
// follow-up decoder for the same input. A failing d short-circuits with its
// own error; next never runs.
func AndThen[A, B any](d dekoda.Decoder[A], next func(A) dekoda.Decoder[B]) dekoda.Decoder[B] {
	return dekoda.DecoderFunc[B](func(ctx context.Context, v any) (B, error) {
		a, err := d.Decode(ctx, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return dekoda.Apply(ctx, next(a), v)
	})
}

// Succeed ignores the input and yields v.
func Succeed[T any](v T) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, _ any) (T, error) { return v, nil })
}

// Fail ignores the input and fails with a custom issue carrying msg.
func Fail[T any](msg string) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, _ any) (T, error) {
		var zero T
		return zero, dekoda.Issues{{Code: dekoda.CodeCustom, Message: msg, Offset: -1}}
	})
}

// FailWith ignores the input and fails with err. Foreign error values
// surface as one custom issue keeping the original in Cause, so AndThen
// branches can reject with domain errors.
func FailWith[T any](err error) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, _ any) (T, error) {
		var zero T
		return zero, dekoda.EnsureIssues(err)
	})
}

// Refine attaches a named validation to d. When fn rejects a decoded value
// the failure surfaces as a custom issue recording rule, unless fn already
// returned Issues.
func Refine[T any](d dekoda.Decoder[T], rule string, fn func(context.Context, T) error) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		t, err := d.Decode(ctx, v)
		if err != nil {
			var zero T
			return zero, err
		}
		if rerr := fn(ctx, t); rerr != nil {
			var zero T
			if iss, ok := dekoda.AsIssues(rerr); ok {
				return zero, iss
			}
			return zero, dekoda.Issues{{Code: dekoda.CodeCustom, Message: rerr.Error(), Rule: rule, Cause: rerr, Offset: -1}}
		}
		return t, nil
	})
}

// Nullable lifts d into a pointer-producing decoder where null decodes to
// nil.
func Nullable[T any](d dekoda.Decoder[T]) dekoda.Decoder[*T] {
	return dekoda.DecoderFunc[*T](func(ctx context.Context, v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		t, err := d.Decode(ctx, v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	})
}

// NullOr decodes null to fallback and any other input with d.
func NullOr[T any](d dekoda.Decoder[T], fallback T) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		if v == nil {
			return fallback, nil
		}
		return d.Decode(ctx, v)
	})
}
