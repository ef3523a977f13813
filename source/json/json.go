// Package json adapts encoding/json's token stream to the engine TokenSource
// contract. It backs the stdlib JSON driver.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/reoring/dekoda/internal/engine"
)

type frame struct {
	object   bool
	awaitKey bool
}

type source struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(frame{object: true, awaitKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.lastOffset}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.lastOffset}, nil
		case '[':
			s.push(frame{})
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.lastOffset}, nil
		default: // ']'
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.lastOffset}, nil
		}
	case string:
		if s.keyExpected() {
			s.markValuePending()
			return eng.Token{Kind: eng.KindKey, String: v, Offset: s.lastOffset}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: s.lastOffset}, nil
	case json.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case float64:
		// UseNumber makes this unreachable for document input.
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: s.lastOffset}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.lastOffset}, nil
	default: // nil
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: s.lastOffset}, nil
	}
}

func (s *source) Location() int64 { return s.lastOffset }

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

func (s *source) markValuePending() {
	s.stack[len(s.stack)-1].awaitKey = false
}

// valueDone flips the enclosing object back to key position after a value.
func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && !top.awaitKey {
			top.awaitKey = true
		}
	}
}
