// Package gen renders derived decoder source files for cmd/dekoda.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
)

// Field is one object key in a derived decoder.
type Field struct {
	Key      string // wire name
	Expr     string // dsl constructor expression
	Optional bool   // rendered with Opt()
}

// TypeDef describes one struct a decoder is derived for.
type TypeDef struct {
	Name   string
	Fields []Field
}

// File is a whole generated file.
type File struct {
	Package string
	Imports []string // extra imports beyond dekoda and the dsl
	Types   []TypeDef
}

// RenderFile emits gofmt-formatted source for f. Each TypeDef becomes a
// <Name>Decoder constructor returning dekoda.Decoder[<Name>].
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("render: empty package name")
	}
	var buf bytes.Buffer
	buf.WriteString("// Code generated by dekoda derive; DO NOT EDIT.\n\n")
	buf.WriteString("package " + f.Package + "\n\n")
	buf.WriteString("import (\n")
	buf.WriteString("\tdekoda \"github.com/reoring/dekoda\"\n")
	buf.WriteString("\tg \"github.com/reoring/dekoda/dsl\"\n")
	if len(f.Imports) > 0 {
		buf.WriteString("\n")
		for _, p := range f.Imports {
			buf.WriteString("\t" + strconv.Quote(p) + "\n")
		}
	}
	buf.WriteString(")\n\n")
	for _, td := range f.Types {
		if td.Name == "" {
			return nil, fmt.Errorf("render: type with empty name")
		}
		renderType(&buf, td)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

func renderType(buf *bytes.Buffer, td TypeDef) {
	fmt.Fprintf(buf, "// %sDecoder decodes %s from a decoded document tree.\n", td.Name, td.Name)
	fmt.Fprintf(buf, "func %sDecoder() dekoda.Decoder[%s] {\n", td.Name, td.Name)
	fmt.Fprintf(buf, "\treturn g.MustBind[%s](g.Object()", td.Name)
	for _, fd := range td.Fields {
		fmt.Fprintf(buf, ".\n\t\tField(%s, %s)", strconv.Quote(fd.Key), fd.Expr)
		if fd.Optional {
			buf.WriteString(".Opt()")
		}
	}
	buf.WriteString(")\n}\n\n")
}
