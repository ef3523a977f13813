package dsl

import (
	"context"
	"reflect"
	"strings"

	dekoda "github.com/reoring/dekoda"
)

// Bind compiles the builder into a decoder producing struct T. Decoded map
// entries land in the struct fields whose resolved key matches: the
// dekoda:"name=..." tag wins over the json tag name, then the Go field
// name; "-" excludes a field.
func Bind[T any](s ObjectSpec) (dekoda.Decoder[T], error) {
	b := s.spec()
	inner, err := b.Build()
	if err != nil {
		return nil, err
	}
	var probe T
	rt := reflect.TypeOf(probe)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, dekoda.Issues{{Code: dekoda.CodeParseError, Message: "Bind[T] requires a struct type", Offset: -1}}
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" || key == "" {
			continue
		}
		idxByKey[key] = i
	}
	fm := make(map[string]int, len(b.fields))
	for k := range b.fields {
		if i, ok := idxByKey[k]; ok {
			fm[k] = i
		}
	}
	return &boundDecoder[T]{inner: inner, rt: rt, fieldIdx: fm}, nil
}

// MustBind is like Bind but panics on construction errors.
func MustBind[T any](s ObjectSpec) dekoda.Decoder[T] {
	d, err := Bind[T](s)
	if err != nil {
		panic(err)
	}
	return d
}

type boundDecoder[T any] struct {
	inner    dekoda.Decoder[map[string]any]
	rt       reflect.Type
	fieldIdx map[string]int // builder key -> struct field index
}

func (d *boundDecoder[T]) Decode(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := d.inner.Decode(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(d.rt).Elem()
	for key, idx := range d.fieldIdx {
		val, ok := m[key]
		if !ok {
			continue // optional field left absent
		}
		fv := rv.Field(idx)
		if !fv.CanSet() {
			continue
		}
		if val == nil {
			switch fv.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
				fv.Set(reflect.Zero(fv.Type()))
			}
			continue
		}
		vv := reflect.ValueOf(val)
		switch {
		case vv.Type().AssignableTo(fv.Type()):
			fv.Set(vv)
		case vv.Type().ConvertibleTo(fv.Type()):
			fv.Set(vv.Convert(fv.Type()))
		default:
			return zero, dekoda.Issues{{
				Path:    dekoda.Path{}.Field(key),
				Code:    dekoda.CodeTypeMismatch,
				Message: "cannot assign decoded " + vv.Type().String() + " to field " + key,
				Offset:  -1,
			}}
		}
	}
	return rv.Interface().(T), nil
}

// resolveStructKey resolves a struct field's external key.
// Priority: dekoda:"name=..." > json tag name > field name; "-" disables.
func resolveStructKey(sf reflect.StructField) string {
	if dt := sf.Tag.Get("dekoda"); dt != "" {
		for _, p := range strings.Split(dt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if name := jt[:i]; name != "" {
				return name
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}
