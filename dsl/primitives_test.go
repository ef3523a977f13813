package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	dekoda "github.com/reoring/dekoda"
	g "github.com/reoring/dekoda/dsl"
)

func TestString(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.String(), "hi"); err != nil || got != "hi" {
		t.Fatalf("expected hi, got %q err=%v", got, err)
	}
	_, err := dekoda.Apply(ctx, g.String(), 1)
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != dekoda.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch, got: %v", err)
	}
	if len(iss[0].Path) != 0 {
		t.Fatalf("primitive mismatches report at the root, got %s", iss[0].Path.Pointer())
	}
}

func TestBool(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Bool(), true); err != nil || !got {
		t.Fatalf("expected true, got %v err=%v", got, err)
	}
	_, err := dekoda.Apply(ctx, g.Bool(), "true")
	if !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch, got: %v", err)
	}
}

func TestNull_ReplacesAndRejects(t *testing.T) {
	ctx := context.Background()
	d := g.Null("fallback")
	if got, err := dekoda.Apply(ctx, d, nil); err != nil || got != "fallback" {
		t.Fatalf("expected fallback on null, got %q err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, d, "x"); !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch on non-null, got: %v", err)
	}
}

func TestValue_Passthrough(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"k": json.Number("1")}
	out, err := dekoda.Apply(ctx, g.Value(), in)
	if err != nil {
		t.Fatalf("value decode failed: %v", err)
	}
	if m, ok := out.(map[string]any); !ok || m["k"] != json.Number("1") {
		t.Fatalf("expected passthrough, got %#v", out)
	}
}

func TestNumber_NormalizesNumericInputs(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Number(), json.Number("1.25")); err != nil || got != json.Number("1.25") {
		t.Fatalf("expected 1.25, got %v err=%v", got, err)
	}
	if got, err := dekoda.Apply(ctx, g.Number(), float64(2)); err != nil || got != json.Number("2") {
		t.Fatalf("expected 2, got %v err=%v", got, err)
	}
	if got, err := dekoda.Apply(ctx, g.Number(), int(7)); err != nil || got != json.Number("7") {
		t.Fatalf("expected 7, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Number(), "7"); !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("strings are not numbers: %v", err)
	}
}

func TestFloat64(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Float64(), json.Number("1.5")); err != nil || got != 1.5 {
		t.Fatalf("expected 1.5, got %v err=%v", got, err)
	}
	if got, err := dekoda.Apply(ctx, g.Float64(), float64(2.5)); err != nil || got != 2.5 {
		t.Fatalf("expected 2.5, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Float64(), true); !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch, got: %v", err)
	}
}

func TestInt8_CheckedNarrowing(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Int8(), json.Number("127")); err != nil || got != 127 {
		t.Fatalf("expected 127, got %v err=%v", got, err)
	}
	_, err := dekoda.Apply(ctx, g.Int8(), json.Number("300"))
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != dekoda.CodeNumericRange {
		t.Fatalf("expected numeric_range for 300, got: %v", err)
	}
	if iss[0].Params["target"] != "int8" {
		t.Fatalf("expected target int8, got %v", iss[0].Params)
	}
	if got, err := dekoda.Apply(ctx, g.Int8(), json.Number("-128")); err != nil || got != -128 {
		t.Fatalf("expected -128, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Int8(), json.Number("-129")); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range for -129, got: %v", err)
	}
}

func TestUint8_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Uint8(), json.Number("255")); err != nil || got != 255 {
		t.Fatalf("expected 255, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Uint8(), json.Number("256")); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range for 256, got: %v", err)
	}
	if _, err := dekoda.Apply(ctx, g.Uint8(), json.Number("-1")); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range for -1, got: %v", err)
	}
}

// A fractional number never silently truncates into an integer target.
func TestInt_RejectsFractional(t *testing.T) {
	ctx := context.Background()
	_, err := dekoda.Apply(ctx, g.Int(), json.Number("1.5"))
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != dekoda.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch for fractional, got: %v", err)
	}
	if iss[0].Hint == "" {
		t.Fatalf("expected a hint naming the target type")
	}
	if got, err := dekoda.Apply(ctx, g.Int(), json.Number("2.0")); err != nil || got != 2 {
		t.Fatalf("expected 2.0 to decode as 2, got %v err=%v", got, err)
	}
}

func TestInt64_PreservesPrecision(t *testing.T) {
	ctx := context.Background()
	// Beyond float64's exact integer range; must not round-trip through floats.
	if got, err := dekoda.Apply(ctx, g.Int64(), json.Number("9007199254740993")); err != nil || got != 9007199254740993 {
		t.Fatalf("expected exact value, got %v err=%v", got, err)
	}
}

func TestUint64_FullRange(t *testing.T) {
	ctx := context.Background()
	if got, err := dekoda.Apply(ctx, g.Uint64(), json.Number("18446744073709551615")); err != nil || got != 18446744073709551615 {
		t.Fatalf("expected max uint64, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Uint64(), json.Number("18446744073709551616")); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range past max, got: %v", err)
	}
}

func TestNarrowing_Float64Trees(t *testing.T) {
	ctx := context.Background()
	// Trees materialized under NumberFloat64 carry float64 values.
	if got, err := dekoda.Apply(ctx, g.Int16(), float64(300)); err != nil || got != 300 {
		t.Fatalf("expected 300, got %v err=%v", got, err)
	}
	if _, err := dekoda.Apply(ctx, g.Int8(), float64(300)); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range, got: %v", err)
	}
	if _, err := dekoda.Apply(ctx, g.Uint16(), float64(-1)); !dekoda.IsCode(err, dekoda.CodeNumericRange) {
		t.Fatalf("expected numeric_range for negative, got: %v", err)
	}
	if _, err := dekoda.Apply(ctx, g.Int(), float64(1.5)); !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch for fractional, got: %v", err)
	}
}

type portNumber int16

// SignedOf works for any defined integer type and names the underlying
// width in range errors.
func TestSignedOf_NamedType(t *testing.T) {
	ctx := context.Background()
	d := g.SignedOf[portNumber]()
	if got, err := dekoda.Apply(ctx, d, json.Number("8080")); err != nil || got != 8080 {
		t.Fatalf("expected 8080, got %v err=%v", got, err)
	}
	_, err := dekoda.Apply(ctx, d, json.Number("70000"))
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != dekoda.CodeNumericRange {
		t.Fatalf("expected numeric_range, got: %v", err)
	}
	if iss[0].Params["target"] != "int16" {
		t.Fatalf("expected target int16, got %v", iss[0].Params)
	}
}

func TestNarrowing_NonNumberInput(t *testing.T) {
	ctx := context.Background()
	if _, err := dekoda.Apply(ctx, g.Int32(), "42"); !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch for string input, got: %v", err)
	}
}
