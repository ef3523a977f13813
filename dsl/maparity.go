package dsl

import (
	"context"

	dekoda "github.com/reoring/dekoda"
)

// The fixed-arity MapN family lifts plain functions into decoders. Every
// component decodes the same input value; when any fail, the returned Issues
// hold the union of all component failures with their own paths, not just
// the first. Arities past Map16 are served by the Object builder, which
// keeps the same aggregation contract without a ceiling.

// runAll applies every erased decoder to the same input in declaration
// order. Failures accumulate locally per component before merging, so
// components stay independent and the result is deterministic.
func runAll(ctx context.Context, v any, ds []AnyDecoder) ([]any, dekoda.Issues) {
	vs := make([]any, len(ds))
	var iss dekoda.Issues
	for i, d := range ds {
		dv, err := d.Decode(ctx, v)
		if err != nil {
			iss = append(iss, dekoda.EnsureIssues(err)...)
			if dekoda.IsFailFast(ctx) {
				return vs, iss
			}
			continue
		}
		vs[i] = dv
	}
	return vs, iss
}

// Map2 lifts a two-argument function into a decoder. Both components decode
// the same input; if either fails the error aggregates every leaf instead
// of stopping at the first.
func Map2[A, B, Z any](fn func(A, B) Z, da dekoda.Decoder[A], db dekoda.Decoder[B]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		return fn(a, b), nil
	})
}

// Map3 lifts a three-argument function into a decoder.
func Map3[A, B, C, Z any](fn func(A, B, C) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		return fn(a, b, c), nil
	})
}

// Map4 lifts a four-argument function into a decoder.
func Map4[A, B, C, D, Z any](fn func(A, B, C, D) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		return fn(a, b, c, d), nil
	})
}

// Map5 lifts a five-argument function into a decoder.
func Map5[A, B, C, D, E, Z any](fn func(A, B, C, D, E) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		return fn(a, b, c, d, e), nil
	})
}

// Map6 lifts a six-argument function into a decoder.
func Map6[A, B, C, D, E, F, Z any](fn func(A, B, C, D, E, F) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		return fn(a, b, c, d, e, f), nil
	})
}

// Map7 lifts a seven-argument function into a decoder.
func Map7[A, B, C, D, E, F, G, Z any](fn func(A, B, C, D, E, F, G) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		return fn(a, b, c, d, e, f, g), nil
	})
}

// Map8 lifts an eight-argument function into a decoder.
func Map8[A, B, C, D, E, F, G, H, Z any](fn func(A, B, C, D, E, F, G, H) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		return fn(a, b, c, d, e, f, g, h), nil
	})
}

// Map9 lifts a nine-argument function into a decoder.
func Map9[A, B, C, D, E, F, G, H, I, Z any](fn func(A, B, C, D, E, F, G, H, I) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		return fn(a, b, c, d, e, f, g, h, i), nil
	})
}

// Map10 lifts a ten-argument function into a decoder.
func Map10[A, B, C, D, E, F, G, H, I, J, Z any](fn func(A, B, C, D, E, F, G, H, I, J) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		return fn(a, b, c, d, e, f, g, h, i, j), nil
	})
}

// Map11 lifts an eleven-argument function into a decoder.
func Map11[A, B, C, D, E, F, G, H, I, J, K, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		return fn(a, b, c, d, e, f, g, h, i, j, k), nil
	})
}

// Map12 lifts a twelve-argument function into a decoder.
func Map12[A, B, C, D, E, F, G, H, I, J, K, L, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K, L) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K], dl dekoda.Decoder[L]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk), Of(dl)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		l, _ := vs[11].(L)
		return fn(a, b, c, d, e, f, g, h, i, j, k, l), nil
	})
}

// Map13 lifts a thirteen-argument function into a decoder.
func Map13[A, B, C, D, E, F, G, H, I, J, K, L, M, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K, L, M) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K], dl dekoda.Decoder[L], dm dekoda.Decoder[M]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk), Of(dl), Of(dm)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		l, _ := vs[11].(L)
		m, _ := vs[12].(M)
		return fn(a, b, c, d, e, f, g, h, i, j, k, l, m), nil
	})
}

// Map14 lifts a fourteen-argument function into a decoder.
func Map14[A, B, C, D, E, F, G, H, I, J, K, L, M, N, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K, L, M, N) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K], dl dekoda.Decoder[L], dm dekoda.Decoder[M], dn dekoda.Decoder[N]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk), Of(dl), Of(dm), Of(dn)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		l, _ := vs[11].(L)
		m, _ := vs[12].(M)
		n, _ := vs[13].(N)
		return fn(a, b, c, d, e, f, g, h, i, j, k, l, m, n), nil
	})
}

// Map15 lifts a fifteen-argument function into a decoder.
func Map15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K, L, M, N, O) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K], dl dekoda.Decoder[L], dm dekoda.Decoder[M], dn dekoda.Decoder[N], do dekoda.Decoder[O]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk), Of(dl), Of(dm), Of(dn), Of(do)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		l, _ := vs[11].(L)
		m, _ := vs[12].(M)
		n, _ := vs[13].(N)
		o, _ := vs[14].(O)
		return fn(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o), nil
	})
}

// Map16 lifts a sixteen-argument function into a decoder.
func Map16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Z any](fn func(A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P) Z, da dekoda.Decoder[A], db dekoda.Decoder[B], dc dekoda.Decoder[C], dd dekoda.Decoder[D], de dekoda.Decoder[E], df dekoda.Decoder[F], dg dekoda.Decoder[G], dh dekoda.Decoder[H], di dekoda.Decoder[I], dj dekoda.Decoder[J], dk dekoda.Decoder[K], dl dekoda.Decoder[L], dm dekoda.Decoder[M], dn dekoda.Decoder[N], do dekoda.Decoder[O], dp dekoda.Decoder[P]) dekoda.Decoder[Z] {
	return dekoda.DecoderFunc[Z](func(ctx context.Context, v any) (Z, error) {
		vs, iss := runAll(ctx, v, []AnyDecoder{Of(da), Of(db), Of(dc), Of(dd), Of(de), Of(df), Of(dg), Of(dh), Of(di), Of(dj), Of(dk), Of(dl), Of(dm), Of(dn), Of(do), Of(dp)})
		if len(iss) > 0 {
			var zero Z
			return zero, iss
		}
		a, _ := vs[0].(A)
		b, _ := vs[1].(B)
		c, _ := vs[2].(C)
		d, _ := vs[3].(D)
		e, _ := vs[4].(E)
		f, _ := vs[5].(F)
		g, _ := vs[6].(G)
		h, _ := vs[7].(H)
		i, _ := vs[8].(I)
		j, _ := vs[9].(J)
		k, _ := vs[10].(K)
		l, _ := vs[11].(L)
		m, _ := vs[12].(M)
		n, _ := vs[13].(N)
		o, _ := vs[14].(O)
		p, _ := vs[15].(P)
		return fn(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p), nil
	})
}
