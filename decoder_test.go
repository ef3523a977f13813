package dekoda_test

import (
	"context"
	"errors"
	"testing"

	dekoda "github.com/reoring/dekoda"
)

func TestApply_NormalizesForeignErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("not a port")
	d := dekoda.DecoderFunc[int](func(ctx context.Context, v any) (int, error) {
		return 0, cause
	})
	_, err := dekoda.Apply(ctx, d, "x")
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected normalized Issues, got: %v", err)
	}
	if iss[0].Code != dekoda.CodeCustom || !errors.Is(iss[0].Cause, cause) {
		t.Fatalf("expected custom issue wrapping the cause, got: %+v", iss[0])
	}
}

func TestApply_PassesIssuesThrough(t *testing.T) {
	ctx := context.Background()
	want := dekoda.Issues{{Path: dekoda.Path{}.Field("x"), Code: dekoda.CodeMissingField}}
	d := dekoda.DecoderFunc[int](func(ctx context.Context, v any) (int, error) {
		return 0, want
	})
	_, err := dekoda.Apply(ctx, d, map[string]any{})
	iss, _ := dekoda.AsIssues(err)
	if len(iss) != 1 || iss[0].Path.Pointer() != "/x" {
		t.Fatalf("expected issues returned untouched, got: %v", iss)
	}
}

func TestApply_NilDecoder(t *testing.T) {
	_, err := dekoda.Apply[int](context.Background(), nil, 1)
	if !dekoda.IsCode(err, dekoda.CodeParseError) {
		t.Fatalf("expected parse_error for nil decoder, got: %v", err)
	}
}

func TestSafeApply(t *testing.T) {
	ctx := context.Background()
	ok := dekoda.DecoderFunc[string](func(ctx context.Context, v any) (string, error) {
		s, _ := v.(string)
		return s, nil
	})
	if got, k := dekoda.SafeApply[string](ctx, ok, "hi"); !k || got != "hi" {
		t.Fatalf("expected success, got %q ok=%v", got, k)
	}
	bad := dekoda.DecoderFunc[string](func(ctx context.Context, v any) (string, error) {
		return "", dekoda.Issues{{Code: dekoda.CodeTypeMismatch}}
	})
	if _, k := dekoda.SafeApply[string](ctx, bad, 1); k {
		t.Fatalf("expected failure to report ok=false")
	}
}

// The same decoder value applied twice to the same tree must produce
// identical results; decoders hold no state between applications.
func TestApply_Deterministic(t *testing.T) {
	ctx := context.Background()
	d := dekoda.DecoderFunc[string](func(ctx context.Context, v any) (string, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", dekoda.Issues{{Code: dekoda.CodeTypeMismatch, Message: "expected string"}}
	})
	v := any("same")
	a1, e1 := dekoda.Apply(ctx, d, v)
	a2, e2 := dekoda.Apply(ctx, d, v)
	if a1 != a2 || (e1 == nil) != (e2 == nil) {
		t.Fatalf("expected identical results, got (%v,%v) and (%v,%v)", a1, e1, a2, e2)
	}
}

func TestContext_FailFastFlag(t *testing.T) {
	ctx := context.Background()
	if dekoda.IsFailFast(ctx) {
		t.Fatalf("fail-fast should default to off")
	}
	ctx = dekoda.WithFailFast(ctx, true)
	if !dekoda.IsFailFast(ctx) {
		t.Fatalf("expected fail-fast on")
	}
}

type quotaService struct{ limit int }

func TestContext_ServiceInjection(t *testing.T) {
	ctx := context.Background()
	if _, ok := dekoda.Service[*quotaService](ctx); ok {
		t.Fatalf("expected no service before injection")
	}
	ctx = dekoda.WithService(ctx, &quotaService{limit: 3})
	svc, ok := dekoda.Service[*quotaService](ctx)
	if !ok || svc.limit != 3 {
		t.Fatalf("expected injected service, got %v ok=%v", svc, ok)
	}
}
