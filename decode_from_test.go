package dekoda_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	dekoda "github.com/reoring/dekoda"
	g "github.com/reoring/dekoda/dsl"
)

func TestDecodeBytes_Object(t *testing.T) {
	ctx := context.Background()
	d := g.Object().
		Field("name", g.StringOf[string]()).
		Field("port", g.IntOf[int]()).
		MustBuild()

	out, err := dekoda.DecodeBytes(ctx, d, []byte(`{"name":"alice","port":8080}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out["name"] != "alice" {
		t.Fatalf("expected name=alice, got %v", out["name"])
	}
	if p, ok := out["port"].(int); !ok || p != 8080 {
		t.Fatalf("expected port=8080, got %v", out["port"])
	}
}

func TestDecodeBytes_SyntaxError(t *testing.T) {
	ctx := context.Background()
	_, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"a":`))
	if !dekoda.IsCode(err, dekoda.CodeParseError) {
		t.Fatalf("expected parse_error, got: %v", err)
	}
}

func TestDecodeFrom_NilSource(t *testing.T) {
	_, err := dekoda.DecodeFrom(context.Background(), g.Value(), nil)
	if !dekoda.IsCode(err, dekoda.CodeParseError) {
		t.Fatalf("expected parse_error for nil source, got: %v", err)
	}
}

func TestDecodeBytes_DuplicateKey_Error(t *testing.T) {
	ctx := context.Background()
	opt := dekoda.ParseOpt{Strictness: dekoda.Strictness{OnDuplicateKey: dekoda.Error}}
	_, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"a":1,"a":2}`), opt)
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dekoda.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key issue, got: %v", err)
	}
	if iss[0].Path.Pointer() != "/a" {
		t.Fatalf("expected path /a, got %s", iss[0].Path.Pointer())
	}
}

func TestDecodeBytes_DuplicateKey_NestedPath(t *testing.T) {
	ctx := context.Background()
	opt := dekoda.ParseOpt{Strictness: dekoda.Strictness{OnDuplicateKey: dekoda.Error}}
	_, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`[{"a":1,"a":2}]`), opt)
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path.Pointer() != "/0/a" {
		t.Fatalf("expected path /0/a, got %s", iss[0].Path.Pointer())
	}
}

// Warn keeps decoding (last key wins) and reports each duplicate through
// the sink.
func TestDecodeBytes_DuplicateKey_Warn(t *testing.T) {
	ctx := context.Background()
	var warned []dekoda.Issue
	opt := dekoda.ParseOpt{
		Strictness: dekoda.Strictness{OnDuplicateKey: dekoda.Warn},
		WarnSink:   func(is dekoda.Issue) { warned = append(warned, is) },
	}
	out, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"a":1,"a":2}`), opt)
	if err != nil {
		t.Fatalf("warn mode should not fail: %v", err)
	}
	m, _ := out.(map[string]any)
	if m["a"] != json.Number("2") {
		t.Fatalf("expected last key to win, got %v", m["a"])
	}
	if len(warned) != 1 || warned[0].Code != dekoda.CodeDuplicateKey {
		t.Fatalf("expected one duplicate warning, got: %v", warned)
	}
	if warned[0].Path.Pointer() != "/a" {
		t.Fatalf("expected warning at /a, got %s", warned[0].Path.Pointer())
	}
}

func TestDecodeBytes_MaxDepth(t *testing.T) {
	ctx := context.Background()
	// depth = 3 for { a: { b: { c: 1 } } }
	_, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"a":{"b":{"c":1}}}`), dekoda.ParseOpt{MaxDepth: 2})
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dekoda.CodeMaxDepth {
		t.Fatalf("expected max_depth, got: %v", err)
	}
	if iss[0].Path.Pointer() != "/a/b" {
		t.Fatalf("expected path /a/b, got %s", iss[0].Path.Pointer())
	}
}

func TestDecodeBytes_MaxBytes(t *testing.T) {
	ctx := context.Background()
	data := append([]byte(`{}`), bytes.Repeat([]byte(" "), 1024)...)
	_, err := dekoda.DecodeBytes(ctx, g.Value(), data, dekoda.ParseOpt{MaxBytes: 2})
	if !dekoda.IsCode(err, dekoda.CodeTruncated) {
		t.Fatalf("expected truncated, got: %v", err)
	}
}

func TestDecodeReader_MaxBytes_Truncated(t *testing.T) {
	ctx := context.Background()
	big := `{"blob":"` + strings.Repeat("x", 512) + `"}`
	_, err := dekoda.DecodeReader(ctx, g.Value(), strings.NewReader(big), dekoda.ParseOpt{MaxBytes: 16})
	if !dekoda.IsCode(err, dekoda.CodeTruncated) {
		t.Fatalf("expected truncated, got: %v", err)
	}
}

func TestDecodeReader_Plain(t *testing.T) {
	ctx := context.Background()
	out, err := dekoda.DecodeReader(ctx, g.Value(), strings.NewReader(`[1,2,3]`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	seq, ok := out.([]any)
	if !ok || len(seq) != 3 {
		t.Fatalf("expected 3 elements, got %v", out)
	}
}

func TestNumberMode_DefaultPreservesPrecision(t *testing.T) {
	ctx := context.Background()
	out, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"n":1.5}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	m, _ := out.(map[string]any)
	if m["n"] != json.Number("1.5") {
		t.Fatalf("expected json.Number by default, got %T %v", m["n"], m["n"])
	}
}

func TestNumberMode_Float64(t *testing.T) {
	ctx := context.Background()
	src := dekoda.WithNumberMode(dekoda.JSONBytes([]byte(`{"n":1.5}`)), dekoda.NumberFloat64)
	out, err := dekoda.DecodeFrom(ctx, g.Value(), src)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	m, _ := out.(map[string]any)
	if f, ok := m["n"].(float64); !ok || f != 1.5 {
		t.Fatalf("expected float64 1.5, got %T %v", m["n"], m["n"])
	}
}

func TestYAMLBytes_Decode(t *testing.T) {
	ctx := context.Background()
	d := g.Object().
		Field("name", g.StringOf[string]()).
		Field("port", g.IntOf[int]()).
		MustBuild()
	yml := []byte("name: alice\nport: 8080\n")
	out, err := dekoda.DecodeFrom(ctx, d, dekoda.YAMLBytes(yml))
	if err != nil {
		t.Fatalf("yaml decode failed: %v", err)
	}
	if out["name"] != "alice" || out["port"] != 8080 {
		t.Fatalf("unexpected values: %v", out)
	}
}

func TestYAMLBytes_MultiDocumentRejected(t *testing.T) {
	ctx := context.Background()
	yml := []byte("a: 1\n---\nb: 2\n")
	_, err := dekoda.DecodeFrom(ctx, g.Value(), dekoda.YAMLBytes(yml))
	if !dekoda.IsCode(err, dekoda.CodeParseError) {
		t.Fatalf("expected parse_error for multi-doc input, got: %v", err)
	}
}

func TestJSONDriver_StdFallback(t *testing.T) {
	dekoda.UseStdJSONDriver()
	t.Cleanup(dekoda.UseDefaultJSONDriver)

	ctx := context.Background()
	out, err := dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("decode with std driver failed: %v", err)
	}
	m, _ := out.(map[string]any)
	if m["ok"] != true {
		t.Fatalf("unexpected value: %v", out)
	}

	// The std decoder reports byte offsets, so syntax failures carry one.
	_, err = dekoda.DecodeBytes(ctx, g.Value(), []byte(`{"a":}`))
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dekoda.CodeParseError {
		t.Fatalf("expected parse_error, got: %v", err)
	}
	if iss[0].Offset < 0 {
		t.Fatalf("expected a byte offset, got %d", iss[0].Offset)
	}
}

func TestDecodeBytes_FailFast(t *testing.T) {
	ctx := context.Background()
	d := g.Object().
		Field("a", g.StringOf[string]()).
		Field("b", g.StringOf[string]()).
		MustBuild()
	_, err := dekoda.DecodeBytes(ctx, d, []byte(`{}`), dekoda.ParseOpt{FailFast: true})
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected a single fail-fast issue, got: %v", err)
	}
}

func TestMaterialize_EmptyArrayNonNil(t *testing.T) {
	v, err := dekoda.Materialize(dekoda.JSONBytes([]byte(`[]`)))
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	seq, ok := v.([]any)
	if !ok || seq == nil || len(seq) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", v)
	}
}
