/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// printerAPI encodes string and default values in the printed SDL.
var printerAPI = jsoniter.Config{EscapeHTML: false}.Froze()

// PrintSchema prints the types in schema in GraphQL schema definition language. Types are printed
// in lexical order. Built-in scalars are omitted.
func PrintSchema(schema *Schema) string {
	var b strings.Builder
	FPrintSchema(&b, schema)
	return b.String()
}

// FPrintSchema writes the SDL of schema to out.
func FPrintSchema(out *strings.Builder, schema *Schema) {
	p := &printer{out}

	first := true
	for _, name := range schema.TypeNames() {
		t := schema.Type(name)
		if scalar, ok := t.(*Scalar); ok && IsBuiltinScalar(scalar) {
			continue
		}

		if !first {
			p.WriteString("\n")
		}
		first = false
		p.printType(t)
	}
}

type printer struct {
	*strings.Builder
}

func (p *printer) printType(t Type) {
	switch t := t.(type) {
	case *Scalar:
		p.printDescription(t.Description(), "")
		p.WriteString("scalar ")
		p.WriteString(t.Name())
		p.WriteString("\n")

	case *Object:
		p.printDescription(t.Description(), "")
		p.WriteString("type ")
		p.WriteString(t.Name())
		if len(t.Interfaces()) > 0 {
			p.WriteString(" implements ")
			for i, iface := range t.Interfaces() {
				if i > 0 {
					p.WriteString(" & ")
				}
				p.WriteString(iface.Name())
			}
		}
		p.printFields(t.Fields())

	case *Interface:
		p.printDescription(t.Description(), "")
		p.WriteString("interface ")
		p.WriteString(t.Name())
		p.printFields(t.Fields())
	}
}

func (p *printer) printFields(fields []*Field) {
	p.WriteString(" {\n")
	for i, field := range fields {
		if i > 0 && len(field.Description()) > 0 {
			p.WriteString("\n")
		}
		p.printDescription(field.Description(), "  ")
		p.WriteString("  ")
		p.WriteString(field.Name())
		p.printArgs(field.Args())
		p.WriteString(": ")
		if field.Pending() {
			p.WriteString("?")
		} else {
			p.WriteString(field.Type().String())
		}
		if field.Deprecation().Defined() {
			p.WriteString(" @deprecated")
			if reason := field.Deprecation().Reason; len(reason) > 0 {
				p.WriteString("(reason: ")
				p.printString(reason)
				p.WriteString(")")
			}
		}
		p.WriteString("\n")
	}
	p.WriteString("}\n")
}

func (p *printer) printArgs(args []*Argument) {
	if len(args) == 0 {
		return
	}

	p.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			p.WriteString(", ")
		}
		p.WriteString(arg.Name())
		p.WriteString(": ")
		p.WriteString(arg.Type().String())
		if arg.HasDefaultValue() {
			p.WriteString(" = ")
			value, err := printerAPI.MarshalToString(arg.DefaultValue())
			if err != nil {
				value = "null"
			}
			p.WriteString(value)
		}
	}
	p.WriteString(")")
}

func (p *printer) printDescription(description string, indentation string) {
	if len(description) == 0 {
		return
	}

	p.WriteString(indentation)
	if !strings.Contains(description, "\n") && len(description) < 70 {
		p.printString(description)
		p.WriteString("\n")
		return
	}

	// Print a block string in the indented block form by adding a leading and trailing blank line.
	p.WriteString(`"""`)
	p.WriteString("\n")
	for _, line := range strings.Split(description, "\n") {
		if len(line) > 0 {
			p.WriteString(indentation)
			p.WriteString(strings.Replace(line, `"""`, `\"""`, -1))
		}
		p.WriteString("\n")
	}
	p.WriteString(indentation)
	p.WriteString(`"""`)
	p.WriteString("\n")
}

func (p *printer) printString(s string) {
	value, err := printerAPI.MarshalToString(s)
	if err != nil {
		value = `""`
	}
	p.WriteString(value)
}
