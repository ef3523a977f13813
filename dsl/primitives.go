package dsl

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/i18n"
)

// Value accepts any input and returns it untouched. It anchors AndThen
// chains that need the raw tree before committing to a shape.
func Value() dekoda.Decoder[any] {
	return dekoda.DecoderFunc[any](func(ctx context.Context, v any) (any, error) { return v, nil })
}

// Null succeeds only on null and yields replacement.
func Null[T any](replacement T) dekoda.Decoder[T] {
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		if v == nil {
			return replacement, nil
		}
		var zero T
		return zero, mismatch("null", v)
	})
}

// String succeeds only on strings.
func String() dekoda.Decoder[string] {
	return dekoda.DecoderFunc[string](func(ctx context.Context, v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", mismatch("string", v)
		}
		return s, nil
	})
}

// Bool succeeds only on booleans.
func Bool() dekoda.Decoder[bool] {
	return dekoda.DecoderFunc[bool](func(ctx context.Context, v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, mismatch("bool", v)
		}
		return b, nil
	})
}

// Number succeeds on any numeric input and yields its textual form. Direct
// Go numerics are accepted so decoders also run over hand-built trees.
func Number() dekoda.Decoder[json.Number] {
	return dekoda.DecoderFunc[json.Number](func(ctx context.Context, v any) (json.Number, error) {
		n, ok := numberText(v)
		if !ok {
			return "", mismatch("number", v)
		}
		return n, nil
	})
}

// Float64 succeeds on numeric input representable as float64.
func Float64() dekoda.Decoder[float64] {
	return dekoda.DecoderFunc[float64](func(ctx context.Context, v any) (float64, error) {
		switch t := v.(type) {
		case float64:
			return t, nil
		case float32:
			return float64(t), nil
		case json.Number:
			f, err := strconv.ParseFloat(string(t), 64)
			if err != nil {
				return 0, mismatch("number", v)
			}
			return f, nil
		case int, int8, int16, int32, int64:
			return float64(reflect.ValueOf(t).Int()), nil
		case uint, uint8, uint16, uint32, uint64:
			return float64(reflect.ValueOf(t).Uint()), nil
		default:
			return 0, mismatch("number", v)
		}
	})
}

// SignedInt constrains the signed targets of SignedOf.
type SignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInt constrains the unsigned targets of UnsignedOf.
type UnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedOf decodes an integral number into T. Values outside T's range fail
// with numeric_range instead of truncating; fractional numbers fail with
// type_mismatch. All fixed-width decoding funnels through this one checked
// conversion.
func SignedOf[T SignedInt]() dekoda.Decoder[T] {
	rt := reflect.TypeOf(T(0))
	bits := rt.Bits()
	name := rt.Kind().String()
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		switch t := v.(type) {
		case json.Number:
			i, err := strconv.ParseInt(string(t), 10, bits)
			if err == nil {
				return T(i), nil
			}
			if errors.Is(err, strconv.ErrRange) {
				return zero, numericRange(string(t), name)
			}
			// Not plain decimal; exponents and fractions go the float route.
			f, ferr := strconv.ParseFloat(string(t), 64)
			if ferr != nil {
				return zero, mismatch("number", v)
			}
			return signedFromFloat[T](f, bits, name)
		case float64:
			return signedFromFloat[T](t, bits, name)
		case float32:
			return signedFromFloat[T](float64(t), bits, name)
		case int, int8, int16, int32, int64:
			return signedFromInt[T](reflect.ValueOf(t).Int(), bits, name)
		case uint, uint8, uint16, uint32, uint64:
			u := reflect.ValueOf(t).Uint()
			if u > math.MaxInt64 {
				return zero, numericRange(strconv.FormatUint(u, 10), name)
			}
			return signedFromInt[T](int64(u), bits, name)
		default:
			return zero, mismatch("number", v)
		}
	})
}

// UnsignedOf mirrors SignedOf for unsigned targets; negative input counts as
// out of range, never as a wraparound.
func UnsignedOf[T UnsignedInt]() dekoda.Decoder[T] {
	rt := reflect.TypeOf(T(0))
	bits := rt.Bits()
	name := rt.Kind().String()
	return dekoda.DecoderFunc[T](func(ctx context.Context, v any) (T, error) {
		var zero T
		switch t := v.(type) {
		case json.Number:
			u, err := strconv.ParseUint(string(t), 10, bits)
			if err == nil {
				return T(u), nil
			}
			if errors.Is(err, strconv.ErrRange) {
				return zero, numericRange(string(t), name)
			}
			if i, ierr := strconv.ParseInt(string(t), 10, 64); ierr == nil && i < 0 {
				return zero, numericRange(string(t), name)
			}
			f, ferr := strconv.ParseFloat(string(t), 64)
			if ferr != nil {
				return zero, mismatch("number", v)
			}
			return unsignedFromFloat[T](f, bits, name)
		case float64:
			return unsignedFromFloat[T](t, bits, name)
		case float32:
			return unsignedFromFloat[T](float64(t), bits, name)
		case int, int8, int16, int32, int64:
			i := reflect.ValueOf(t).Int()
			if i < 0 {
				return zero, numericRange(strconv.FormatInt(i, 10), name)
			}
			return unsignedFromUint[T](uint64(i), bits, name)
		case uint, uint8, uint16, uint32, uint64:
			return unsignedFromUint[T](reflect.ValueOf(t).Uint(), bits, name)
		default:
			return zero, mismatch("number", v)
		}
	})
}

// Int decodes into int with range checking.
func Int() dekoda.Decoder[int] { return SignedOf[int]() }

// Int8 decodes into int8 with range checking.
func Int8() dekoda.Decoder[int8] { return SignedOf[int8]() }

// Int16 decodes into int16 with range checking.
func Int16() dekoda.Decoder[int16] { return SignedOf[int16]() }

// Int32 decodes into int32 with range checking.
func Int32() dekoda.Decoder[int32] { return SignedOf[int32]() }

// Int64 decodes into int64 with range checking.
func Int64() dekoda.Decoder[int64] { return SignedOf[int64]() }

// Uint decodes into uint with range checking.
func Uint() dekoda.Decoder[uint] { return UnsignedOf[uint]() }

// Uint8 decodes into uint8 with range checking.
func Uint8() dekoda.Decoder[uint8] { return UnsignedOf[uint8]() }

// Uint16 decodes into uint16 with range checking.
func Uint16() dekoda.Decoder[uint16] { return UnsignedOf[uint16]() }

// Uint32 decodes into uint32 with range checking.
func Uint32() dekoda.Decoder[uint32] { return UnsignedOf[uint32]() }

// Uint64 decodes into uint64 with range checking.
func Uint64() dekoda.Decoder[uint64] { return UnsignedOf[uint64]() }

func signedFromInt[T SignedInt](i int64, bits int, name string) (T, error) {
	if bits < 64 {
		lim := int64(1) << (bits - 1)
		if i < -lim || i >= lim {
			var zero T
			return zero, numericRange(strconv.FormatInt(i, 10), name)
		}
	}
	return T(i), nil
}

func signedFromFloat[T SignedInt](f float64, bits int, name string) (T, error) {
	var zero T
	if math.IsInf(f, 0) {
		return zero, numericRange(formatFloat(f), name)
	}
	if math.IsNaN(f) || math.Trunc(f) != f {
		return zero, fractional(name, f)
	}
	lim := math.Ldexp(1, bits-1)
	if f >= lim || f < -lim {
		return zero, numericRange(formatFloat(f), name)
	}
	return T(int64(f)), nil
}

func unsignedFromUint[T UnsignedInt](u uint64, bits int, name string) (T, error) {
	if bits < 64 && u >= uint64(1)<<bits {
		var zero T
		return zero, numericRange(strconv.FormatUint(u, 10), name)
	}
	return T(u), nil
}

func unsignedFromFloat[T UnsignedInt](f float64, bits int, name string) (T, error) {
	var zero T
	if math.IsInf(f, 0) {
		return zero, numericRange(formatFloat(f), name)
	}
	if math.IsNaN(f) || math.Trunc(f) != f {
		return zero, fractional(name, f)
	}
	if f < 0 {
		return zero, numericRange(formatFloat(f), name)
	}
	lim := math.Ldexp(1, bits)
	if f >= lim {
		return zero, numericRange(formatFloat(f), name)
	}
	return T(uint64(f)), nil
}

func numberText(v any) (json.Number, bool) {
	switch t := v.(type) {
	case json.Number:
		return t, true
	case float64:
		return json.Number(formatFloat(t)), true
	case float32:
		return json.Number(strconv.FormatFloat(float64(t), 'g', -1, 32)), true
	case int, int8, int16, int32, int64:
		return json.Number(strconv.FormatInt(reflect.ValueOf(t).Int(), 10)), true
	case uint, uint8, uint16, uint32, uint64:
		return json.Number(strconv.FormatUint(reflect.ValueOf(t).Uint(), 10)), true
	default:
		return "", false
	}
}

// formatFloat mirrors the canonical JSON-like float formatting.
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func mismatch(expected string, v any) dekoda.Issues {
	actual := dekoda.KindOf(v).String()
	return dekoda.Issues{{
		Code:    dekoda.CodeTypeMismatch,
		Message: i18n.T(dekoda.CodeTypeMismatch, map[string]string{"expected": expected, "actual": actual}),
		Params:  map[string]any{"expected": expected, "actual": actual},
		Offset:  -1,
	}}
}

func numericRange(value, target string) dekoda.Issues {
	return dekoda.Issues{{
		Code:    dekoda.CodeNumericRange,
		Message: i18n.T(dekoda.CodeNumericRange, map[string]string{"value": value, "target": target}),
		Params:  map[string]any{"value": value, "target": target},
		Offset:  -1,
	}}
}

func fractional(target string, f float64) dekoda.Issues {
	return dekoda.Issues{{
		Code:    dekoda.CodeTypeMismatch,
		Message: i18n.T(dekoda.CodeTypeMismatch, map[string]string{"expected": target, "actual": "number"}),
		Hint:    "fractional part not allowed for " + target,
		Params:  map[string]any{"expected": target, "actual": "number", "value": formatFloat(f)},
		Offset:  -1,
	}}
}
