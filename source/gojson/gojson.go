// Package gojson adapts goccy/go-json's token stream to the engine
// TokenSource contract. It backs the default JSON driver.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/dekoda/internal/engine"
)

type frame struct {
	object   bool
	awaitKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using
// go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using
// go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.push(frame{object: true, awaitKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case '[':
			s.push(frame{})
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		default: // ']'
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		if s.keyExpected() {
			s.stack[len(s.stack)-1].awaitKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: -1}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	default: // nil
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	}
}

// Location always reports -1; go-json's decoder does not expose byte
// offsets.
func (s *source) Location() int64 { return -1 }

func (s *source) push(f frame) { s.stack = append(s.stack, f) }

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) keyExpected() bool {
	n := len(s.stack)
	return n > 0 && s.stack[n-1].object && s.stack[n-1].awaitKey
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && !top.awaitKey {
			top.awaitKey = true
		}
	}
}
