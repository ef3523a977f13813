package gen

import (
	"fmt"
	"go/types"
	"reflect"
	"sort"
	"strings"
)

// Analysis is the result of inspecting one struct type: the renderable
// definition plus any imports the rendered expressions reference.
type Analysis struct {
	Def     TypeDef
	Imports []string
}

// AnalyzeStruct maps the exported fields of st onto dsl constructor
// expressions. Keys follow `json` tags the way encoding/json resolves them:
// the tag name wins, "-" excludes the field, ",omitempty" makes it optional.
// Field types with no direct dsl constructor fall back to Unmarshal.
func AnalyzeStruct(name string, st *types.Struct, local *types.Package) (Analysis, error) {
	if st == nil {
		return Analysis{}, fmt.Errorf("%s: nil struct type", name)
	}
	imports := map[string]bool{}
	def := TypeDef{Name: name}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() || f.Anonymous() {
			continue
		}
		key, optional, skip := resolveKey(f.Name(), st.Tag(i))
		if skip {
			continue
		}
		def.Fields = append(def.Fields, Field{
			Key:      key,
			Expr:     fieldExpr(f.Type(), local, imports),
			Optional: optional,
		})
	}
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return Analysis{Def: def, Imports: paths}, nil
}

func resolveKey(fieldName, tag string) (key string, optional, skip bool) {
	j := reflect.StructTag(tag).Get("json")
	if j == "" {
		return fieldName, false, false
	}
	parts := strings.Split(j, ",")
	name := parts[0]
	if name == "-" && len(parts) == 1 {
		return "", false, true
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	if name == "" {
		name = fieldName
	}
	return name, optional, false
}

// fieldExpr renders the erased (AnyDecoder) expression for a field type.
func fieldExpr(t types.Type, local *types.Package, imports map[string]bool) string {
	if expr, ok := wellKnownExpr(t); ok {
		return "g.Of(" + expr + ")"
	}
	if b, ok := t.Underlying().(*types.Basic); ok {
		ts := typeString(t, local, imports)
		switch b.Kind() {
		case types.String:
			return "g.StringOf[" + ts + "]()"
		case types.Bool:
			return "g.BoolOf[" + ts + "]()"
		case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
			return "g.IntOf[" + ts + "]()"
		case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64:
			return "g.UintOf[" + ts + "]()"
		case types.Float64:
			return "g.FloatOf[" + ts + "]()"
		}
	}
	return "g.Of(" + typedExpr(t, local, imports) + ")"
}

// typedExpr renders a Decoder[T] expression for t, used where containers
// need their element type preserved.
func typedExpr(t types.Type, local *types.Package, imports map[string]bool) string {
	if expr, ok := wellKnownExpr(t); ok {
		return expr
	}
	switch u := t.Underlying().(type) {
	case *types.Basic:
		ts := typeString(t, local, imports)
		switch u.Kind() {
		case types.String:
			if ts == "string" {
				return "g.String()"
			}
		case types.Bool:
			if ts == "bool" {
				return "g.Bool()"
			}
		case types.Float64:
			if ts == "float64" {
				return "g.Float64()"
			}
		case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
			return "g.SignedOf[" + ts + "]()"
		case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64:
			return "g.UnsignedOf[" + ts + "]()"
		}
	case *types.Slice:
		return "g.SliceOf(" + typedExpr(u.Elem(), local, imports) + ")"
	case *types.Map:
		if kb, ok := u.Key().Underlying().(*types.Basic); ok && kb.Kind() == types.String {
			return "g.MapOf(" + typedExpr(u.Elem(), local, imports) + ")"
		}
	case *types.Pointer:
		return "g.Nullable(" + typedExpr(u.Elem(), local, imports) + ")"
	}
	return "g.Unmarshal[" + typeString(t, local, imports) + "]()"
}

// wellKnownExpr handles named stdlib types with dedicated decoders.
func wellKnownExpr(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "time" {
		return "", false
	}
	switch obj.Name() {
	case "Time":
		return "g.TimeRFC3339()", true
	case "Duration":
		return "g.Duration()", true
	}
	return "", false
}

// typeString renders t as Go syntax relative to the local package, recording
// any foreign package the rendered name references.
func typeString(t types.Type, local *types.Package, imports map[string]bool) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == nil || (local != nil && p.Path() == local.Path()) {
			return ""
		}
		imports[p.Path()] = true
		return p.Name()
	})
}
