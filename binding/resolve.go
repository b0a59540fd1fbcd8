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

package binding

import (
	"context"
	"reflect"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/iancoleman/strcase"
)

// fieldValue reads the attribute name from source. Sources can be document instances, maps keyed
// by attribute name (including bson.M) or structs whose exported field is the camel case form of
// name.
func fieldValue(source interface{}, name string) interface{} {
	switch source := source.(type) {
	case nil:
		return nil
	case *document.Instance:
		if source == nil {
			return nil
		}
		return source.Get(name)
	case map[string]interface{}:
		return source[name]
	}

	value := reflect.ValueOf(source)
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Map:
		keyType := value.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil
		}
		v := value.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if v.IsValid() && v.CanInterface() {
			return v.Interface()
		}

	case reflect.Struct:
		v := value.FieldByName(strcase.ToCamel(name))
		if v.IsValid() && v.CanInterface() {
			return v.Interface()
		}
	}

	return nil
}

// fieldValueResolver resolves a field to the attribute name of the source value.
func fieldValueResolver(name string) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		return fieldValue(source, name), nil
	})
}

// isIdentifier returns true if value looks like the identifier of a referenced document rather
// than the document itself.
func isIdentifier(value interface{}) bool {
	switch value.(type) {
	case string, int, int32, int64, uint32, uint64:
		return true
	case interface{ Hex() string }:
		return true
	}
	return false
}

// dereference loads the document of t identified by value when a reference was stored as an
// identifier. Other values are returned as they are.
func dereference(ctx context.Context, t *ObjectType, value interface{}) (interface{}, error) {
	if value == nil || !isIdentifier(value) {
		return value, nil
	}
	return t.GetNode(ctx, value)
}

// referenceResolver resolves a reference field and loads the referenced document when only its
// identifier is stored.
func referenceResolver(name string, t *ObjectType) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		return dereference(ctx, t, fieldValue(source, name))
	})
}

// referenceListResolver is like referenceResolver for lists of references.
func referenceListResolver(name string, t *ObjectType) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		value := fieldValue(source, name)
		items, ok := toSlice(value)
		if !ok {
			return value, nil
		}

		result := make([]interface{}, len(items))
		for i, item := range items {
			node, err := dereference(ctx, t, item)
			if err != nil {
				return nil, err
			}
			result[i] = node
		}
		return result, nil
	})
}

// toSlice returns the elements of a slice or an array value.
func toSlice(value interface{}) ([]interface{}, bool) {
	switch value := value.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return value, true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		// Bytes are a scalar rather than a list.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		items := make([]interface{}, v.Len())
		for i := range items {
			items[i] = v.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}
