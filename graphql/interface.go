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
	"context"
)

// TypeResolver resolves concrete type of an Interface from given value.
type TypeResolver interface {
	// Resolve returns the Object type that value belongs to.
	Resolve(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error)

// Resolve calls f(ctx, value, info).
func (f TypeResolverFunc) Resolve(ctx context.Context, value interface{}, info ResolveInfo) (*Object, error) {
	return f(ctx, value, info)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = TypeResolverFunc(nil)

// InterfaceConfig provides specification to define a Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// TypeResolver resolves the concrete Object type implementing the defining interface from given
	// value. When it is nil, the possible types are asked in turn with their IsTypeOf.
	TypeResolver TypeResolver

	// Fields in the Interface Type
	Fields Fields
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name         string
	description  string
	typeResolver TypeResolver
	fields       []*Field
	fieldIndex   map[string]int
}

var (
	_ Type                = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindConfiguration)
	}

	fields, fieldIndex, err := buildFields(config.Name, config.Fields)
	if err != nil {
		return nil, err
	}

	for _, field := range fields {
		if field.Pending() {
			return nil, NewError("Interface field "+config.Name+"."+field.Name()+" cannot be deferred.",
				ErrKindConfiguration)
		}
	}

	return &Interface{
		name:         config.Name,
		description:  config.Description,
		typeResolver: config.TypeResolver,
		fields:       fields,
		fieldIndex:   fieldIndex,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// String implements fmt.Stringer.
func (i *Interface) String() string {
	return i.name
}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// TypeResolver returns the resolver that determines the concrete type of values. It may be nil.
func (i *Interface) TypeResolver() TypeResolver {
	return i.typeResolver
}

// Fields returns the fields in the order they were declared.
func (i *Interface) Fields() []*Field {
	return i.fields
}

// Field returns the field with the given name or nil if there's no such field.
func (i *Interface) Field(name string) *Field {
	index, exists := i.fieldIndex[name]
	if !exists {
		return nil
	}
	return i.fields[index]
}
