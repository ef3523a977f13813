package dekoda_test

import (
	"encoding/json"
	"testing"

	dekoda "github.com/reoring/dekoda"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		v    any
		want dekoda.Kind
	}{
		{nil, dekoda.KindNull},
		{true, dekoda.KindBool},
		{json.Number("1.5"), dekoda.KindNumber},
		{float64(1.5), dekoda.KindNumber},
		{int(7), dekoda.KindNumber},
		{"s", dekoda.KindString},
		{[]any{1}, dekoda.KindSequence},
		{map[string]any{"k": 1}, dekoda.KindMap},
		{struct{}{}, dekoda.KindInvalid},
	}
	for _, c := range cases {
		if got := dekoda.KindOf(c.v); got != c.want {
			t.Fatalf("KindOf(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	if dekoda.KindSequence.String() != "sequence" {
		t.Fatalf("unexpected name: %s", dekoda.KindSequence.String())
	}
	if dekoda.Kind(99).String() != "invalid" {
		t.Fatalf("out-of-range kinds should render invalid")
	}
}
