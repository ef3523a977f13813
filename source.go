package dekoda

import (
	"io"
	"sync"

	eng "github.com/reoring/dekoda/internal/engine"
	gojsonsrc "github.com/reoring/dekoda/source/gojson"
	jsonsrc "github.com/reoring/dekoda/source/json"
	yamlsrc "github.com/reoring/dekoda/source/yaml"
)

// TokenKind enumerates the token kinds produced by source drivers.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token is one element of an input stream. Offset records the byte position
// when the driver knows it (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // key and string tokens
	Number string // numeric text; NumberMode controls interpretation
	Bool   bool
	Offset int64
}

// Source abstracts over input formats and parser implementations. Drivers
// ship for encoding/json, goccy/go-json and YAML; callers may implement
// their own to feed decoders from other formats.
type Source interface {
	NextToken() (Token, error)
	NumberMode() NumberMode
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver turns JSON input into a Source. The process-wide default is
// backed by goccy/go-json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseStdJSONDriver installs the encoding/json-backed driver.
func UseStdJSONDriver() { SetJSONDriver(stdJSONDriver{}) }

// UseDefaultJSONDriver restores the goccy/go-json-backed default.
func UseDefaultJSONDriver() { SetJSONDriver(goJSONDriver{}) }

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: gojsonsrc.NewReader(r), numMode: NumberJSONNumber}
}
func (goJSONDriver) NewBytes(b []byte) Source {
	return &engineSourceAdapter{inner: gojsonsrc.NewBytes(b), numMode: NumberJSONNumber}
}
func (goJSONDriver) Name() string { return "goccy/go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewReader(r), numMode: NumberJSONNumber}
}
func (stdJSONDriver) NewBytes(b []byte) Source {
	return &engineSourceAdapter{inner: jsonsrc.NewBytes(b), numMode: NumberJSONNumber}
}
func (stdJSONDriver) Name() string { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source using the current driver.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source using the current driver.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// YAMLBytes wraps a single YAML document as a Source with JSON-compatible
// tokens.
func YAMLBytes(b []byte) Source {
	return &engineSourceAdapter{inner: yamlsrc.NewBytes(b), numMode: NumberJSONNumber}
}

// YAMLReader reads r fully and behaves like YAMLBytes.
func YAMLReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: yamlsrc.NewReader(r), numMode: NumberJSONNumber}
}

// WithNumberMode wraps a Source and overrides its NumberMode.
func WithNumberMode(s Source, m NumberMode) Source { return &overrideNumberMode{inner: s, mode: m} }

type overrideNumberMode struct {
	inner Source
	mode  NumberMode
}

func (o *overrideNumberMode) NextToken() (Token, error) { return o.inner.NextToken() }
func (o *overrideNumberMode) NumberMode() NumberMode    { return o.mode }
func (o *overrideNumberMode) Location() int64           { return o.inner.Location() }

// engineSourceAdapter lifts an engine token stream into the public Source.
type engineSourceAdapter struct {
	inner   eng.TokenSource
	numMode NumberMode
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *engineSourceAdapter) NumberMode() NumberMode { return s.numMode }
func (s *engineSourceAdapter) Location() int64        { return s.inner.Location() }

// sourceTokenAdapter runs the other direction so user-supplied Sources can
// flow through engine enforcement and tree building.
type sourceTokenAdapter struct {
	inner Source
}

func (a *sourceTokenAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: toEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (a *sourceTokenAdapter) Location() int64 { return a.inner.Location() }

// engineTokens unwraps the adapter when possible to avoid a round-trip per
// token.
func engineTokens(s Source) eng.TokenSource {
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	if om, ok := s.(*overrideNumberMode); ok {
		return engineTokens(om.inner)
	}
	return &sourceTokenAdapter{inner: s}
}

func fromEngineKind(k eng.Kind) TokenKind {
	switch k {
	case eng.KindBeginObject:
		return TokenBeginObject
	case eng.KindEndObject:
		return TokenEndObject
	case eng.KindBeginArray:
		return TokenBeginArray
	case eng.KindEndArray:
		return TokenEndArray
	case eng.KindKey:
		return TokenKey
	case eng.KindString:
		return TokenString
	case eng.KindNumber:
		return TokenNumber
	case eng.KindBool:
		return TokenBool
	default:
		return TokenNull
	}
}

func toEngineKind(k TokenKind) eng.Kind {
	switch k {
	case TokenBeginObject:
		return eng.KindBeginObject
	case TokenEndObject:
		return eng.KindEndObject
	case TokenBeginArray:
		return eng.KindBeginArray
	case TokenEndArray:
		return eng.KindEndArray
	case TokenKey:
		return eng.KindKey
	case TokenString:
		return eng.KindString
	case TokenNumber:
		return eng.KindNumber
	case TokenBool:
		return eng.KindBool
	default:
		return eng.KindNull
	}
}
