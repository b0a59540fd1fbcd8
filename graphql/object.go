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

// IsTypeOfFunc determines whether a resolved value belongs to an Object type. It is consulted when
// an abstract type (such as an Interface) needs to find the concrete type of a value.
type IsTypeOfFunc func(value interface{}) (bool, error)

// ObjectConfig provides specification to define a Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces that implemented by the defining Object
	Interfaces []*Interface

	// Fields in the object
	Fields Fields

	// IsTypeOf is optional.
	IsTypeOf IsTypeOfFunc
}

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	interfaces  []*Interface
	fields      []*Field
	fieldIndex  map[string]int
	isTypeOf    IsTypeOfFunc
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from a ObjectConfig. Fields declared with a DeferredFieldFunc
// are left pending and resolved later by NewSchema.
func NewObject(config *ObjectConfig) (*Object, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindConfiguration)
	}

	fields, fieldIndex, err := buildFields(config.Name, config.Fields)
	if err != nil {
		return nil, err
	}

	for _, iface := range config.Interfaces {
		if iface == nil {
			return nil, NewError("Must provide non-nil interface for Object "+config.Name+".",
				ErrKindConfiguration)
		}
	}

	return &Object{
		name:        config.Name,
		description: config.Description,
		interfaces:  config.Interfaces,
		fields:      fields,
		fieldIndex:  fieldIndex,
		isTypeOf:    config.IsTypeOf,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

func buildFields(owner string, configs Fields) ([]*Field, map[string]int, error) {
	fields := make([]*Field, 0, len(configs))
	fieldIndex := make(map[string]int, len(configs))
	for _, config := range configs {
		field, err := newField(owner, config)
		if err != nil {
			return nil, nil, err
		}
		if _, exists := fieldIndex[field.Name()]; exists {
			return nil, nil, NewError("Field "+owner+"."+field.Name()+" is defined more than once.",
				ErrKindConfiguration)
		}
		fieldIndex[field.Name()] = len(fields)
		fields = append(fields, field)
	}
	return fields, fieldIndex, nil
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// Interfaces that the Object implements
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}

// Fields returns the fields in the order they were declared.
func (o *Object) Fields() []*Field {
	return o.fields
}

// Field returns the field with the given name or nil if there's no such field.
func (o *Object) Field(name string) *Field {
	index, exists := o.fieldIndex[name]
	if !exists {
		return nil
	}
	return o.fields[index]
}

// Implements returns true if the object declares iface in its interfaces.
func (o *Object) Implements(iface *Interface) bool {
	for _, i := range o.interfaces {
		if i == iface {
			return true
		}
	}
	return false
}

// IsTypeOf reports whether value is an instance of the Object. It returns false if the Object was
// defined without an IsTypeOfFunc.
func (o *Object) IsTypeOf(value interface{}) (bool, error) {
	if o.isTypeOf == nil {
		return false, nil
	}
	return o.isTypeOf(value)
}

// PendingFields returns names of the fields that have not been resolved.
func (o *Object) PendingFields() []string {
	var names []string
	for _, field := range o.fields {
		if field.Pending() {
			names = append(names, field.Name())
		}
	}
	return names
}

// ResolvePendingFields calls the deferred functions of pending fields. Fields that resolve are
// fixed; the others stay pending and their names are returned.
func (o *Object) ResolvePendingFields() ([]string, error) {
	var unresolved []string
	for _, field := range o.fields {
		ok, err := field.tryResolve(o.name)
		if err != nil {
			return nil, err
		}
		if !ok {
			unresolved = append(unresolved, field.Name())
		}
	}
	return unresolved, nil
}
