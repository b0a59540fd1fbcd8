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
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// TypeMap keeps track of all named types referenced within the schema.
type TypeMap struct {
	types map[string]Type

	// Fields that stay pending after their Object was visited, in "Type.field" form.
	unresolved []string
}

// Add a type into the map. This is only used by NewSchema to initialize type map incrementally.
// Pending fields of every Object being visited are resolved before the Object's fields are walked.
func (typeMap *TypeMap) add(t Type) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Skip nil type quickly.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		// Map type name to corresponding Type.
		if namedType, ok := t.(TypeWithName); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				typeMap.types[name] = t
			} else {
				if prev != t {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name),
						ErrKindConfiguration)
				}
				// Skip t which has been processed.
				continue
			}
		}

		// Add types referenced by t to stack.
		switch t := t.(type) {
		case *Scalar:
			// Nothing to to.

		case *Object:
			unresolved, err := t.ResolvePendingFields()
			if err != nil {
				return err
			}
			for _, name := range unresolved {
				typeMap.unresolved = append(typeMap.unresolved, t.Name()+"."+name)
			}

			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			stack = appendFieldTypes(stack, t.Fields())

		case *Interface:
			stack = appendFieldTypes(stack, t.Fields())

		case *List:
			stack = append(stack, t.ElementType())

		case *NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t),
				ErrKindConfiguration)
		}
	}

	return nil
}

func appendFieldTypes(stack []Type, fields []*Field) []Type {
	for _, field := range fields {
		if field.Pending() {
			continue
		}
		stack = append(stack, field.Type())
		for _, arg := range field.Args() {
			stack = append(stack, arg.Type())
		}
	}
	return stack
}

// Lookup finds a type with given name.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query is the root operation type for queries.
	Query *Object

	// List of types that are declared in the schema. Types that are not reachable from Query (such
	// as objects only returned through an interface) must be listed here.
	Types []Type
}

// Schema Definition
//
// A GraphQL service’s collective type system capabilities are referred to as that service’s
// “schema”. Creating a Schema finalizes every Object it contains: deferred fields are resolved
// and the set of named types becomes fixed.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query *Object

	// typeMap contains all named type defined in the schema.
	typeMap TypeMap

	// implementations keeps track of all implementations by interface.
	implementations map[*Interface][]*Object
}

// NewSchema initializes a Schema from the given config. It fails with ErrKindResolution if any
// deferred field cannot be resolved.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	const op Op = "graphql.NewSchema"

	if config.Query == nil {
		return nil, NewError("Must provide query type for Schema.", op, ErrKindConfiguration)
	}

	typeMap := TypeMap{
		types: map[string]Type{},
	}

	if err := typeMap.add(config.Query); err != nil {
		return nil, NewError("", err, op)
	}

	for _, t := range config.Types {
		if err := typeMap.add(t); err != nil {
			return nil, NewError("", err, op)
		}
	}

	if len(typeMap.unresolved) > 0 {
		return nil, NewError(
			fmt.Sprintf("Cannot resolve the type of %s.", strings.Join(typeMap.unresolved, ", ")),
			op, ErrKindResolution)
	}

	schema := &Schema{
		query:           config.Query,
		typeMap:         typeMap,
		implementations: map[*Interface][]*Object{},
	}

	for _, name := range schema.TypeNames() {
		if object, ok := typeMap.types[name].(*Object); ok {
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range object.Interfaces() {
				schema.implementations[iface] = append(schema.implementations[iface], object)
			}
		}
	}

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// Query returns the root query type.
func (schema *Schema) Query() *Object {
	return schema.query
}

// TypeMap returns all named types in the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Type finds a named type in the schema.
func (schema *Schema) Type(name string) Type {
	return schema.typeMap.Lookup(name)
}

// TypeNames returns names of all types in the schema in lexical order.
func (schema *Schema) TypeNames() []string {
	names := make([]string, 0, len(schema.typeMap.types))
	for name := range schema.typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PossibleTypes returns the Objects in the schema that implement iface.
func (schema *Schema) PossibleTypes(iface *Interface) []*Object {
	return schema.implementations[iface]
}
