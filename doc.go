package dekoda

// Package dekoda provides:
//
// - Composable, type-safe decoders from loosely typed values (Decoder[T], Apply/DecodeFrom)
// - A stable error model via Issues (typed path, code, message) that aggregates across fields
// - Pluggable input sources (encoding/json, goccy/go-json, YAML) with duplicate-key/depth/size enforcement
// - Checked numeric narrowing into every Go integer type
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the decoder DSL under dsl/ and the CLI under cmd/dekoda.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  d := buildDecoder()
//  v, err := dekoda.DecodeBytes(ctx, d, data)
//  v, err := dekoda.DecodeFrom(ctx, d, dekoda.YAMLBytes(doc))
//
//  var iss dekoda.Issues
//  if errors.As(err, &iss) { inspect(iss) }
//
