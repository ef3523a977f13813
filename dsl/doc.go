// Package dsl provides the decoder-combinator DSL for dekoda.
//
// Overview
//   - Primitives: String()/Bool()/Number()/Float64() plus checked integer
//     narrowing via Int()/Int8()/.../Uint64() and the generic SignedOf[T]/UnsignedOf[T].
//   - Combinators: Map/Map2..Map16 (all failures aggregated), AndThen
//     (short-circuit chaining), Refine, Succeed/Fail, Nullable/NullOr.
//   - Navigation: Field(name, d) and Index(i, d) attach key/index path
//     segments to inner failures; At(path, d) composes nested Fields.
//   - Containers: SliceOf(d)/MapOf(d) decode homogeneous sequences and maps,
//     collecting every element failure with its position in the path.
//   - Builder API: Object().Field(...).Build() compiles a declaration-ordered
//     object plan (required by default, Opt()/Default(v), UnknownStrict(),
//     Refine); Bind[T] projects the plan onto a struct via json/dekoda tags.
//   - Unions: Discriminate(key, variants) dispatches on a string tag field.
//   - Erasure: AnyDecoder plus Of[T]/StringOf/IntOf/... feed typed decoders
//     into the builder without losing their checks.
//
// Entry points
//   - Object(): start an object builder; chain Field/Opt/Default/UnknownStrict
//     then Build()/MustBuild().
//   - Bind[T](spec): compile the builder into a Decoder[T] for a struct type;
//     MustBind panics on construction errors.
//   - Field(name, d)/At(path, d): decode one field out of an object.
//   - SliceOf(d)/MapOf(d): decode []T / map[string]T.
//   - MapN(fn, d1..dN): combine N decoders into one constructor call,
//     reporting the union of all their failures.
//
// File layout (roles)
//   - primitives.go: Value/Null/String/Bool/Number/Float64 and the checked
//     narrowing family (SignedOf/UnsignedOf and the named shortcuts).
//   - combinators.go: Map/AndThen/Succeed/Fail/Refine/Nullable.
//   - maparity.go: the fixed-arity Map2..Map16 constructors.
//   - field.go: Field/At/Index path navigation.
//   - slice.go: SliceOf/MapOf container decoders.
//   - object.go: objectBuilder/fieldStep, Build/MustBuild and the compiled
//     object plan (unknown handling, defaults, refinements).
//   - bind.go: Bind[T]/MustBind struct projection over a built object plan.
//   - union.go: Discriminate, tag-based union dispatch.
//   - of.go: AnyDecoder erasure helpers (Of/StringOf/BoolOf/IntOf/...).
//   - time.go/unmarshal.go: RFC 3339 and duration decoding, tag-driven
//     Unmarshal[T] bridging.
//
// Design guidelines
//   - Decoders never panic on malformed input; every data-shape problem comes
//     back as dekoda.Issues with a path, a stable code, and a message.
//   - Sibling failures are aggregated (Map2..Map16, SliceOf, the object
//     builder); sequential chains (AndThen) stop at the first failure.
//   - Combinators that add no path segment return inner errors untouched, so
//     paths always reflect where in the document the failure happened.
//   - Construction mistakes (nil decoders, undecodable defaults) surface at
//     Build time, not during Decode.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/reoring/dekoda"
//	    g "github.com/reoring/dekoda/dsl"
//	)
//
//	type User struct {
//	    ID    string `json:"id"`
//	    Email string `json:"email"`
//	    Age   int32  `json:"age"`
//	}
//
//	func main() {
//	    ctx := context.Background()
//	    user := g.MustBind[User](g.Object().
//	        Field("id", g.StringOf[string]()).
//	        Field("email", g.StringOf[string]()).
//	        Field("age", g.IntOf[int32]()).Default(int64(0)))
//
//	    data := []byte(`{"id":"u_1","email":"x@example.com","age":30}`)
//	    u, err := dekoda.DecodeBytes(ctx, user, data)
//	    fmt.Println(u, err)
//	}
//
// Example (aggregated failures)
//
//	point := g.Map2(
//	    func(x, y float64) [2]float64 { return [2]float64{x, y} },
//	    g.Field("x", g.Float64()),
//	    g.Field("y", g.Float64()),
//	)
//	_, err := dekoda.DecodeBytes(ctx, point, []byte(`{"x":"a"}`))
//	// err is Issues with two entries: x (type_mismatch) and y (missing_field).
//
// Example (AndThen: value-dependent decoding)
//
//	versioned := g.AndThen(g.Field("version", g.Int()), func(v int) dekoda.Decoder[Doc] {
//	    switch v {
//	    case 1:
//	        return docV1
//	    case 2:
//	        return docV2
//	    default:
//	        return g.Fail[Doc](fmt.Sprintf("unsupported version %d", v))
//	    }
//	})
//
// Example (Refine: cross-field validation)
//
//	creds := g.Object().
//	    Field("email", g.StringOf[string]()).
//	    Field("confirm", g.StringOf[string]()).
//	    Refine("email==confirm", func(ctx context.Context, m map[string]any) error {
//	        if m["email"] != m["confirm"] {
//	            return fmt.Errorf("confirm must match email")
//	        }
//	        return nil
//	    }).
//	    MustBuild()
//	_, err := dekoda.DecodeBytes(ctx, creds, []byte(`{"email":"a","confirm":"b"}`))
//	_ = err // Issues with code "custom", rule "email==confirm"
//
// Example (unions)
//
//	shape := g.Discriminate("kind", map[string]dekoda.Decoder[Shape]{
//	    "circle": circleDecoder,
//	    "rect":   rectDecoder,
//	})
//	// {"kind":"circle","radius":2} -> circleDecoder decodes the whole object.
//	// An unknown tag fails with discriminator_unknown and lists the variants.
package dsl
