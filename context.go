package dekoda

import "context"

// ---- Decode-time context options ----

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast decoding
// behavior. DecodeFrom sets it from ParseOpt; aggregating combinators consult
// it to stop after the first issue instead of collecting every failure.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current decode should stop on the first
// issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

// ---- Typed service injection for refinement hooks ----

// serviceKey is a unique key per type parameter T for context storage.
type serviceKey[T any] struct{}

// WithService stores a typed service instance in the context for use by
// refinement hooks that validate against external state.
func WithService[T any](ctx context.Context, svc T) context.Context {
	return context.WithValue(ctx, serviceKey[T]{}, any(svc))
}

// Service retrieves a typed service instance from context.
func Service[T any](ctx context.Context) (T, bool) {
	var zero T
	v := ctx.Value(serviceKey[T]{})
	if v == nil {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	return zero, false
}
