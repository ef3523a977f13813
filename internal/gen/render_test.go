package gen

import (
	"strings"
	"testing"
)

func TestRenderFile_EmitsConstructor(t *testing.T) {
	out, err := RenderFile(File{
		Package: "app",
		Types: []TypeDef{{
			Name: "User",
			Fields: []Field{
				{Key: "id", Expr: "g.StringOf[string]()"},
				{Key: "age", Expr: "g.IntOf[int]()", Optional: true},
			},
		}},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	if !strings.HasPrefix(src, "// Code generated by dekoda derive; DO NOT EDIT.") {
		t.Fatalf("missing generated header:\n%s", src)
	}
	for _, want := range []string{
		"package app",
		"func UserDecoder() dekoda.Decoder[User] {",
		`Field("id", g.StringOf[string]())`,
		`Field("age", g.IntOf[int]()).Opt()`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("missing %q in:\n%s", want, src)
		}
	}
}

func TestRenderFile_ExtraImports(t *testing.T) {
	out, err := RenderFile(File{
		Package: "app",
		Imports: []string{"example.com/app/models"},
		Types: []TypeDef{{
			Name:   "Order",
			Fields: []Field{{Key: "item", Expr: "g.Of(g.Unmarshal[models.Item]())"}},
		}},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), `"example.com/app/models"`) {
		t.Fatalf("missing import in:\n%s", out)
	}
}

func TestRenderFile_RejectsEmptyPackage(t *testing.T) {
	if _, err := RenderFile(File{Types: []TypeDef{{Name: "X"}}}); err == nil {
		t.Fatalf("expected error for empty package")
	}
}

// Output must always be gofmt-clean; a bad expression surfaces as a
// format error rather than an unparseable file on disk.
func TestRenderFile_RejectsMalformedExpr(t *testing.T) {
	_, err := RenderFile(File{
		Package: "app",
		Types:   []TypeDef{{Name: "X", Fields: []Field{{Key: "a", Expr: "g.String((("}}}},
	})
	if err == nil {
		t.Fatalf("expected format error")
	}
}
