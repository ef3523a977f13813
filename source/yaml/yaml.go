// Package yaml exposes a single YAML document as an engine token stream with
// JSON-compatible kinds, so decoders behave identically across both formats.
// Numeric scalars keep their text form, preserving json.Number semantics.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/dekoda/internal/engine"
)

// NewBytes parses data as one YAML document and returns its token stream.
// Parse failures and multi-document input surface from the first NextToken
// call.
func NewBytes(data []byte) eng.TokenSource {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return &source{err: err}
	}
	return fromDocument(&root, data)
}

// NewReader reads r fully and behaves like NewBytes.
func NewReader(r io.Reader) eng.TokenSource {
	data, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(data)
}

func fromDocument(root *yaml.Node, data []byte) eng.TokenSource {
	// An empty input produces a zero Node; treat it as null.
	if root.Kind == 0 {
		return &source{toks: []eng.Token{{Kind: eng.KindNull, Offset: -1}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return &source{err: errors.New("yaml: expected exactly one document")}
	}
	if hasSecondDocument(data) {
		return &source{err: errors.New("yaml: multiple documents not supported")}
	}
	s := &source{}
	s.err = s.flatten(root.Content[0])
	return s
}

// hasSecondDocument reports whether data contains a second "---" document
// marker; yaml.Unmarshal silently ignores trailing documents.
func hasSecondDocument(data []byte) bool {
	lines := strings.Split(string(data), "\n")
	starts := 0
	for i, ln := range lines {
		t := strings.TrimRight(ln, " \t\r")
		if t == "---" || strings.HasPrefix(t, "--- ") {
			if i == 0 || starts > 0 {
				starts++
				continue
			}
			starts++
		}
		if starts > 1 {
			return true
		}
	}
	return starts > 1
}

type source struct {
	toks []eng.Token
	pos  int
	err  error
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return eng.Token{}, err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

// Location always reports -1; yaml nodes carry line/column, not byte
// offsets.
func (s *source) Location() int64 { return -1 }

func (s *source) emit(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func (s *source) flatten(n *yaml.Node) error {
	switch n.Kind {
	case yaml.AliasNode:
		return s.flatten(n.Alias)
	case yaml.MappingNode:
		s.emit(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			s.emit(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.flatten(n.Content[i+1]); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		s.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.flatten(c); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		return s.scalar(n)
	default:
		return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func (s *source) scalar(n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		s.emit(eng.Token{Kind: eng.KindNull})
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			// YAML 1.1 spellings like "yes"/"off" resolved by the parser.
			var v bool
			if derr := n.Decode(&v); derr != nil {
				return fmt.Errorf("yaml: bad bool %q at line %d", n.Value, n.Line)
			}
			b = v
		}
		s.emit(eng.Token{Kind: eng.KindBool, Bool: b})
	case "!!int":
		s.emit(eng.Token{Kind: eng.KindNumber, Number: normalizeInt(n.Value)})
	case "!!float":
		t, err := normalizeFloat(n.Value)
		if err != nil {
			return fmt.Errorf("yaml: %v at line %d", err, n.Line)
		}
		s.emit(eng.Token{Kind: eng.KindNumber, Number: t})
	default:
		// !!str, !!timestamp, !!binary and custom tags pass through as text.
		s.emit(eng.Token{Kind: eng.KindString, String: n.Value})
	}
	return nil
}

// normalizeInt rewrites YAML integer spellings (hex, octal, underscores)
// into plain decimal text so json.Number parsing downstream succeeds.
func normalizeInt(text string) string {
	clean := strings.ReplaceAll(text, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if u, err := strconv.ParseUint(clean, 0, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	return clean
}

// normalizeFloat keeps decimal float text as-is and rejects YAML specials
// that the JSON value model cannot carry.
func normalizeFloat(text string) (string, error) {
	low := strings.ToLower(strings.TrimPrefix(text, "+"))
	switch low {
	case ".inf", "-.inf", ".nan":
		return "", fmt.Errorf("non-finite float %q not representable", text)
	}
	clean := strings.ReplaceAll(text, "_", "")
	if _, err := strconv.ParseFloat(clean, 64); err != nil {
		return "", fmt.Errorf("bad float %q", text)
	}
	return clean, nil
}
