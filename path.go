package dekoda

import (
	"strconv"
	"strings"
)

// Segment is a single step in a Path: either a map key or a sequence index.
type Segment struct {
	Key     string // Map key when IsIndex is false.
	Index   int    // Sequence index when IsIndex is true.
	IsIndex bool
}

// KeySegment returns a Segment addressing a map key.
func KeySegment(name string) Segment { return Segment{Key: name} }

// IndexSegment returns a Segment addressing a sequence element.
func IndexSegment(i int) Segment { return Segment{Index: i, IsIndex: true} }

// Path locates a value within a decoded tree, root-relative. The zero value
// is the root. Paths behave as immutable values: Field and Index return
// extended copies and never alias the receiver's backing array.
type Path []Segment

// Field returns p extended with a key segment.
func (p Path) Field(name string) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = KeySegment(name)
	return np
}

// Index returns p extended with an index segment.
func (p Path) Index(i int) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = IndexSegment(i)
	return np
}

// pointerEscaper implements the RFC 6901 token escapes.
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as an RFC 6901 JSON Pointer, e.g. /items/2/price.
// The root path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
		} else {
			b.WriteString(pointerEscaper.Replace(s.Key))
		}
	}
	return b.String()
}

// String renders p in dotted/indexed form, e.g. items[2].price. The root
// path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	b := &strings.Builder{}
	for i, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}
