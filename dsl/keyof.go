package dsl

import "reflect"

// KeyOf returns the wire key for a top-level field of S selected by address,
// so builder declarations stay linked to the struct at compile time:
//
//	g.Object().Field(g.KeyOf(func(u *User) *string { return &u.Email }), g.String())
//
// Renaming or removing the field then breaks the build instead of silently
// decoding into nothing. The key follows the same tag resolution as Bind.
// KeyOf panics when the selector does not return the address of a usable
// top-level field; it is meant for decoder construction, not request paths.
func KeyOf[S any, F any](selector func(*S) *F) string {
	if selector == nil {
		panic("dsl.KeyOf: selector must not be nil")
	}
	var zero S
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		panic("dsl.KeyOf: S must be a struct type")
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if !fv.CanAddr() || fv.Addr().Pointer() != fp {
			continue
		}
		key := resolveStructKey(sf)
		if key == "" || key == "-" {
			panic("dsl.KeyOf: selected field is excluded from decoding")
		}
		return key
	}
	panic("dsl.KeyOf: selector must return the address of a top-level field of S")
}
