package dsl_test

import (
	"context"
	"testing"
	"time"

	dekoda "github.com/reoring/dekoda"
	g "github.com/reoring/dekoda/dsl"
)

func TestTimeRFC3339_Parses(t *testing.T) {
	ctx := context.Background()
	got, err := dekoda.Apply(ctx, g.TimeRFC3339(), "2024-03-01T12:00:00Z")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTimeRFC3339_KeepsSubsecondPrecision(t *testing.T) {
	ctx := context.Background()
	got, err := dekoda.Apply(ctx, g.TimeRFC3339(), "2024-03-01T12:00:00.123456789Z")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Nanosecond() != 123456789 {
		t.Fatalf("lost precision: %v", got)
	}
}

func TestTimeRFC3339_InvalidFormat(t *testing.T) {
	ctx := context.Background()
	_, err := dekoda.Apply(ctx, g.TimeRFC3339(), "01/03/2024")
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != dekoda.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got: %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected the parse error preserved as cause")
	}
}

func TestTimeRFC3339_NonString(t *testing.T) {
	ctx := context.Background()
	_, err := dekoda.Apply(ctx, g.TimeRFC3339(), 1709294400)
	if !dekoda.IsCode(err, dekoda.CodeTypeMismatch) {
		t.Fatalf("expected type_mismatch, got: %v", err)
	}
}

func TestDuration_Parses(t *testing.T) {
	ctx := context.Background()
	got, err := dekoda.Apply(ctx, g.Duration(), "1h30m")
	if err != nil || got != 90*time.Minute {
		t.Fatalf("got %v err=%v", got, err)
	}
}

func TestDuration_InvalidFormat(t *testing.T) {
	ctx := context.Background()
	_, err := dekoda.Apply(ctx, g.Duration(), "ninety minutes")
	if !dekoda.IsCode(err, dekoda.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got: %v", err)
	}
}

// Format failures inside an object point at the owning key.
func TestTimeRFC3339_InsideObject(t *testing.T) {
	ctx := context.Background()
	d := g.Object().Field("created_at", g.Of(g.TimeRFC3339())).MustBuild()
	_, err := dekoda.Apply(ctx, d, map[string]any{"created_at": "yesterday"})
	iss, ok := dekoda.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path.Pointer() != "/created_at" {
		t.Fatalf("expected failure at /created_at, got: %v", err)
	}
}
