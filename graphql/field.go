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

// FieldResolver resolves field value during execution.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Context carries deadlines and cancelation signals.
	//
	// Source is the "source" value. It contains the value that has been resolved by field's enclosing
	// object.
	//
	// Info contains a collection of information about the current execution state.
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f(ctx, source, info).
func (f FieldResolverFunc) Resolve(
	ctx context.Context,
	source interface{},
	info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

//===-----------------------------------------------------------------------------------------===//
// Deferred fields
//===-----------------------------------------------------------------------------------------===//

// FieldResolution is the outcome of a DeferredFieldFunc. It is either Unresolved or carries the
// FieldConfig that the deferred field resolves to.
type FieldResolution struct {
	resolved bool
	field    *FieldConfig
}

// Unresolved indicates that the type a deferred field depends on is not available yet.
var Unresolved = FieldResolution{}

// ResolvedField returns a FieldResolution for the given field definition. A nil config yields
// Unresolved.
func ResolvedField(config *FieldConfig) FieldResolution {
	if config == nil {
		return Unresolved
	}
	return FieldResolution{
		resolved: true,
		field:    config,
	}
}

// Resolved returns true if the deferred field was resolved.
func (r FieldResolution) Resolved() bool {
	return r.resolved
}

// Field returns the resolved field definition or nil when r is Unresolved.
func (r FieldResolution) Field() *FieldConfig {
	return r.field
}

// DeferredFieldFunc produces the definition of a field whose type may not exist at the time the
// enclosing type is defined. It may be called any number of times and must not have side effects.
type DeferredFieldFunc func() FieldResolution

//===-----------------------------------------------------------------------------------------===//
// Field configuration
//===-----------------------------------------------------------------------------------------===//

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type of value yielded by the field. Exactly one of Type and Deferred must be given for a field
	// in ObjectConfig. Type is required for the FieldConfig returned from a DeferredFieldFunc.
	Type Type

	// Deferred makes the field pending until the enclosing schema is finalized.
	Deferred DeferredFieldFunc

	// Argument configuration of the field
	Args []*ArgumentConfig

	// Resolver for resolving field value during execution
	Resolver FieldResolver

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// Fields is a list of field definitions. The order is preserved in the defined type.
type Fields []*FieldConfig

// ArgumentConfig provides definition for defining an argument in a field.
type ArgumentConfig struct {
	// Name of the argument
	Name string

	// Description fo the argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// DefaultValue specified the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}
}

//===-----------------------------------------------------------------------------------------===//
// Field
//===-----------------------------------------------------------------------------------------===//

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field struct {
	name        string
	description string
	ttype       Type
	args        []*Argument
	resolver    FieldResolver
	deprecation *Deprecation

	// Non-nil until the field is resolved
	deferred DeferredFieldFunc
}

func newField(owner string, config *FieldConfig) (*Field, error) {
	if config == nil {
		return nil, NewError("Must provide field definition for "+owner+".", ErrKindConfiguration)
	}

	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for field in "+owner+".", ErrKindConfiguration)
	}

	if config.Type == nil && config.Deferred == nil {
		return nil, NewError("Must provide type for field "+owner+"."+config.Name+".", ErrKindConfiguration)
	} else if config.Type != nil && config.Deferred != nil {
		return nil, NewError(
			"Field "+owner+"."+config.Name+" cannot have both a type and a deferred definition.",
			ErrKindConfiguration)
	}

	field := &Field{
		name:     config.Name,
		deferred: config.Deferred,
	}

	if config.Deferred != nil {
		field.description = config.Description
		field.deprecation = config.Deprecation
		return field, nil
	}

	if err := field.load(owner, config); err != nil {
		return nil, err
	}

	return field, nil
}

// load copies the definition from config into f. The field name is never changed.
func (f *Field) load(owner string, config *FieldConfig) error {
	if config.Type == nil {
		return NewError("Must provide type for field "+owner+"."+f.name+".", ErrKindConfiguration)
	}

	args, err := buildArguments(owner+"."+f.name, config.Args)
	if err != nil {
		return err
	}

	f.ttype = config.Type
	f.args = args
	f.resolver = config.Resolver
	if len(config.Description) > 0 {
		f.description = config.Description
	}
	if config.Deprecation != nil {
		f.deprecation = config.Deprecation
	}
	return nil
}

// tryResolve calls the deferred function of a pending field. It returns false if the field stays
// pending.
func (f *Field) tryResolve(owner string) (bool, error) {
	if f.deferred == nil {
		return true, nil
	}

	resolution := f.deferred()
	if !resolution.Resolved() {
		return false, nil
	}

	if err := f.load(owner, resolution.Field()); err != nil {
		return false, err
	}
	f.deferred = nil
	return true, nil
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field. It is nil while the field is pending.
func (f *Field) Type() Type {
	return f.ttype
}

// Args specifies the definitions of arguments being taken when querying this field.
func (f *Field) Args() []*Argument {
	return f.args
}

// Resolver determines the result value for the field from the value resolved by parent Object.
func (f *Field) Resolver() FieldResolver {
	return f.resolver
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// Pending returns true if the field was defined with a DeferredFieldFunc that has not been
// resolved yet.
func (f *Field) Pending() bool {
	return f.deferred != nil
}

//===-----------------------------------------------------------------------------------------===//
// Argument
//===-----------------------------------------------------------------------------------------===//

func buildArguments(owner string, configs []*ArgumentConfig) ([]*Argument, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	args := make([]*Argument, len(configs))
	for i, config := range configs {
		if len(config.Name) == 0 {
			return nil, NewError("Must provide name for argument in "+owner+".", ErrKindConfiguration)
		}
		if config.Type == nil {
			return nil, NewError("Must provide type for argument "+config.Name+" in "+owner+".",
				ErrKindConfiguration)
		}
		args[i] = &Argument{
			name:         config.Name,
			description:  config.Description,
			ttype:        config.Type,
			defaultValue: config.DefaultValue,
		}
	}

	return args, nil
}

// Argument is accepted in querying a field to further specify the return value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	return arg.defaultValue
}
