package engine

import (
	"encoding/json"
	"io"
	"strconv"
)

// Kind enumerates token kinds produced by input drivers.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token is one streaming token. Numeric values stay as raw text so the
// caller decides how to materialize them. Offset records the byte position
// when known (-1 otherwise).
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal streaming interface input drivers implement.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// NumberConv materializes numeric token text into a tree value.
type NumberConv func(text string) (any, error)

// JSONNumberConv keeps numbers as json.Number.
func JSONNumberConv(text string) (any, error) { return json.Number(text), nil }

// Float64Conv converts numbers to float64.
func Float64Conv(text string) (any, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// BuildTree materializes the next value from src as nested map[string]any /
// []any / scalar values, converting numbers with conv.
func BuildTree(src TokenSource, conv NumberConv) (any, error) {
	if conv == nil {
		conv = JSONNumberConv
	}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return buildValue(src, tok, conv)
}

func buildValue(src TokenSource, tok Token, conv NumberConv) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src, conv)
	case KindBeginArray:
		return buildArray(src, conv)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func buildObject(src TokenSource, conv NumberConv) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := buildValue(src, vt, conv)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func buildArray(src TokenSource, conv NumberConv) (any, error) {
	arr := []any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := buildValue(src, tok, conv)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
