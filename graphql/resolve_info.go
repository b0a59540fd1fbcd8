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
	jsoniter "github.com/json-iterator/go"
)

// ArgumentValues contains argument values given to a field.
type ArgumentValues struct {
	values map[string]interface{}
}

// noArgumentValues represents an empty argument values.
var noArgumentValues = ArgumentValues{
	values: map[string]interface{}{},
}

// NoArgumentValues returns an ArgumentValues that doesn't contain any values.
func NoArgumentValues() ArgumentValues {
	return noArgumentValues
}

// NewArgumentValues creates an ArgumentValues from the given values.
func NewArgumentValues(values map[string]interface{}) ArgumentValues {
	if len(values) == 0 {
		return noArgumentValues
	}
	return ArgumentValues{values}
}

// Lookup returns argument value for the given name. The second value is false if the argument was
// not given. A present nil value means the argument was given an explicit null.
func (args ArgumentValues) Lookup(name string) (value interface{}, ok bool) {
	value, ok = args.values[name]
	return
}

// Get returns argument value for the given name. It returns nil if there's no such argument.
func (args ArgumentValues) Get(name string) interface{} {
	return args.values[name]
}

// LookupInt returns the argument as an int. The second value is false if the argument is absent,
// null or not an integer.
func (args ArgumentValues) LookupInt(name string) (int, bool) {
	switch value := args.values[name].(type) {
	case int:
		return value, true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	case float64:
		if float64(int(value)) == value {
			return int(value), true
		}
	}
	return 0, false
}

// LookupString returns the argument as a string. The second value is false if the argument is
// absent, null or not a string.
func (args ArgumentValues) LookupString(name string) (string, bool) {
	value, ok := args.values[name].(string)
	return value, ok
}

// MarshalJSON implements json.Marshaler.
func (args ArgumentValues) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(args.values)
}

// ResolveInfo exposes a collection of information about execution state for resolvers.
type ResolveInfo interface {
	// Schema of the type system that is currently executing
	Schema() *Schema

	// Object is the parent type of the field being resolved.
	Object() *Object

	// Field being resolved
	Field() *Field

	// Args contains argument values given to the field
	Args() ArgumentValues
}

// resolveInfo is a plain ResolveInfo built by NewResolveInfo.
type resolveInfo struct {
	schema *Schema
	object *Object
	field  *Field
	args   ArgumentValues
}

var _ ResolveInfo = (*resolveInfo)(nil)

// NewResolveInfo returns a ResolveInfo for resolving field in object. Execution engines call it
// before invoking a FieldResolver.
func NewResolveInfo(schema *Schema, object *Object, field *Field, args ArgumentValues) ResolveInfo {
	return &resolveInfo{
		schema: schema,
		object: object,
		field:  field,
		args:   args,
	}
}

// Schema implements ResolveInfo.
func (info *resolveInfo) Schema() *Schema {
	return info.schema
}

// Object implements ResolveInfo.
func (info *resolveInfo) Object() *Object {
	return info.object
}

// Field implements ResolveInfo.
func (info *resolveInfo) Field() *Field {
	return info.field
}

// Args implements ResolveInfo.
func (info *resolveInfo) Args() ArgumentValues {
	return info.args
}
