package dsl

import (
	"context"
	"sort"
	"strconv"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/i18n"
)

// unknownPolicy selects what happens to undeclared input keys.
type unknownPolicy int

const (
	unknownIgnore unknownPolicy = iota
	unknownStrict
)

type objRefine struct {
	rule string
	fn   func(context.Context, map[string]any) error
}

// objectBuilder accumulates the field plan of a record decoder. Unlike the
// fixed-arity MapN family it has no ceiling, while keeping the same
// contract: every failing field is reported, not just the first.
type objectBuilder struct {
	names    []string
	fields   map[string]AnyDecoder
	optional map[string]struct{}
	defaults map[string]any // raw defaults; decoded once at Build
	unknown  unknownPolicy
	refines  []objRefine
}

// Object opens a record decoder builder. Declared fields are required by
// default; undeclared input keys are ignored unless UnknownStrict is set.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]AnyDecoder{},
		optional: map[string]struct{}{},
		defaults: map[string]any{},
	}
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// ObjectSpec is any state of a builder chain, the builder itself or a field
// step, so Bind accepts a chain no matter which call it ends on.
type ObjectSpec interface{ spec() *objectBuilder }

func (b *objectBuilder) spec() *objectBuilder { return b }
func (f *fieldStep) spec() *objectBuilder     { return f.b }

// Field declares a field decoded by d. Redeclaring a name replaces the
// decoder but keeps the original position.
func (b *objectBuilder) Field(name string, d AnyDecoder) *fieldStep {
	if _, seen := b.fields[name]; !seen {
		b.names = append(b.names, name)
	}
	b.fields[name] = d
	return &fieldStep{b: b, name: name}
}

// Opt marks the field optional: a missing key produces no entry and no
// issue.
func (f *fieldStep) Opt() *objectBuilder {
	f.b.optional[f.name] = struct{}{}
	delete(f.b.defaults, f.name)
	return f.b
}

// Default supplies a value used when the key is missing. The default runs
// through the field decoder once at Build, so an incompatible default fails
// construction instead of every decode.
func (f *fieldStep) Default(v any) *objectBuilder {
	f.b.defaults[f.name] = v
	delete(f.b.optional, f.name)
	return f.b
}

// Chaining sugar mirroring the builder-level methods.
func (f *fieldStep) Field(name string, d AnyDecoder) *fieldStep { return f.b.Field(name, d) }
func (f *fieldStep) UnknownStrict() *objectBuilder              { return f.b.UnknownStrict() }
func (f *fieldStep) Refine(rule string, fn func(context.Context, map[string]any) error) *objectBuilder {
	return f.b.Refine(rule, fn)
}
func (f *fieldStep) Build() (dekoda.Decoder[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() dekoda.Decoder[map[string]any]      { return f.b.MustBuild() }

// UnknownStrict makes undeclared input keys fail with unknown_key.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknown = unknownStrict
	return b
}

// UnknownIgnore restores the default leniency toward undeclared keys.
func (b *objectBuilder) UnknownIgnore() *objectBuilder {
	b.unknown = unknownIgnore
	return b
}

// Refine registers a named cross-field check that runs only after every
// field decoded cleanly.
func (b *objectBuilder) Refine(rule string, fn func(context.Context, map[string]any) error) *objectBuilder {
	b.refines = append(b.refines, objRefine{rule: rule, fn: fn})
	return b
}

// Build compiles the plan into a map-producing decoder. Construction
// problems (nil field decoder, rejected default) surface here, never at
// decode time.
func (b *objectBuilder) Build() (dekoda.Decoder[map[string]any], error) {
	plan := &objectPlan{
		names:    append([]string(nil), b.names...),
		fields:   make(map[string]AnyDecoder, len(b.fields)),
		optional: make(map[string]struct{}, len(b.optional)),
		defaults: make(map[string]any, len(b.defaults)),
		unknown:  b.unknown,
		refines:  append([]objRefine(nil), b.refines...),
	}
	ctx := context.Background()
	for _, name := range plan.names {
		d := b.fields[name]
		if d == nil {
			return nil, dekoda.Issues{{Path: dekoda.Path{}.Field(name), Code: dekoda.CodeParseError, Message: "nil decoder for field " + strconv.Quote(name), Offset: -1}}
		}
		plan.fields[name] = d
		if raw, ok := b.defaults[name]; ok {
			dv, err := d.Decode(ctx, raw)
			if err != nil {
				return nil, dekoda.PrefixKey(dekoda.EnsureIssues(err), name)
			}
			plan.defaults[name] = dv
		}
	}
	for name := range b.optional {
		plan.optional[name] = struct{}{}
	}
	return plan, nil
}

// MustBuild panics when Build fails; construction mistakes are programming
// errors, not input errors.
func (b *objectBuilder) MustBuild() dekoda.Decoder[map[string]any] {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// objectPlan is the compiled, immutable decoder. The builder stays usable
// after Build without affecting plans already handed out.
type objectPlan struct {
	names    []string
	fields   map[string]AnyDecoder
	optional map[string]struct{}
	defaults map[string]any
	unknown  unknownPolicy
	refines  []objRefine
}

func (p *objectPlan) Decode(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch("map", v)
	}
	failFast := dekoda.IsFailFast(ctx)
	out := make(map[string]any, len(p.names))
	var iss dekoda.Issues
	for _, name := range p.names {
		fv, present := m[name]
		if !present {
			if dv, ok := p.defaults[name]; ok {
				out[name] = dv
				continue
			}
			if _, ok := p.optional[name]; ok {
				continue
			}
			iss = append(iss, missingField(name)...)
			if failFast {
				return nil, iss
			}
			continue
		}
		dv, err := p.fields[name].Decode(ctx, fv)
		if err != nil {
			iss = append(iss, dekoda.PrefixKey(dekoda.EnsureIssues(err), name)...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[name] = dv
	}
	if p.unknown == unknownStrict {
		var extras []string
		for k := range m {
			if _, ok := p.fields[k]; !ok {
				extras = append(extras, k)
			}
		}
		sort.Strings(extras)
		for _, k := range extras {
			iss = append(iss, unknownKey(k)...)
			if failFast {
				return nil, iss
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	for _, r := range p.refines {
		if err := r.fn(ctx, out); err != nil {
			if sub, ok := dekoda.AsIssues(err); ok {
				iss = append(iss, sub...)
			} else {
				iss = append(iss, dekoda.Issue{Code: dekoda.CodeCustom, Message: err.Error(), Rule: r.rule, Cause: err, Offset: -1})
			}
			if failFast {
				return nil, iss
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func unknownKey(k string) dekoda.Issues {
	return dekoda.Issues{{
		Path:    dekoda.Path{}.Field(k),
		Code:    dekoda.CodeUnknownKey,
		Message: i18n.T(dekoda.CodeUnknownKey, map[string]string{"key": k}),
		Params:  map[string]any{"key": k},
		Offset:  -1,
	}}
}
