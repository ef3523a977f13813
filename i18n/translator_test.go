package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg == "type_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type_mismatch", nil); msg == "type mismatch" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_EmbedsData(t *testing.T) {
	msg := T("type_mismatch", map[string]string{"expected": "string", "actual": "number"})
	if msg != "expected string, got number" {
		t.Fatalf("unexpected message: %q", msg)
	}
	msg = T("missing_field", map[string]string{"key": "id"})
	if msg != "missing field 'id'" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}
