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
	"fmt"
	"sync"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"go.uber.org/zap"
)

// Converter produces the definition of the GraphQL field that exposes a document field. The
// returned config is named after the document field; callers rename it as needed. registry is
// where the object types of referenced models are looked up.
type Converter func(field *document.Field, registry *Registry) (*graphql.FieldConfig, error)

var (
	convertersMutex sync.RWMutex
	converters      map[document.Kind]Converter
)

func init() {
	converters = map[document.Kind]Converter{}

	scalars := []struct {
		kinds []document.Kind
		t     graphql.Type
	}{
		{
			kinds: []document.Kind{document.KindString, document.KindURL, document.KindEmail},
			t:     graphql.String(),
		},
		{
			kinds: []document.Kind{document.KindInt, document.KindLong, document.KindSequence},
			t:     graphql.Int(),
		},
		{
			kinds: []document.Kind{document.KindFloat, document.KindDecimal},
			t:     graphql.Float(),
		},
		{
			kinds: []document.Kind{document.KindBoolean},
			t:     graphql.Boolean(),
		},
		{
			kinds: []document.Kind{document.KindDateTime, document.KindComplexDateTime},
			t:     graphql.DateTime(),
		},
		{
			kinds: []document.Kind{document.KindObjectID, document.KindUUID},
			t:     graphql.ID(),
		},
		{
			// Binary content is served as base64 text.
			kinds: []document.Kind{document.KindBinary, document.KindFile, document.KindImage},
			t:     graphql.String(),
		},
		{
			kinds: []document.Kind{
				document.KindGeoPoint,
				document.KindPoint,
				document.KindLineString,
				document.KindPolygon,
				document.KindMultiPoint,
				document.KindMultiLineString,
				document.KindMultiPolygon,
				document.KindDict,
				document.KindMap,
				document.KindDynamic,
				document.KindGenericEmbeddedDocument,
				document.KindGenericReference,
				document.KindGenericLazyReference,
			},
			t: graphql.JSONString(),
		},
	}

	for _, s := range scalars {
		for _, kind := range s.kinds {
			converters[kind] = scalarConverter(s.t)
		}
	}

	for _, kind := range []document.Kind{
		document.KindReference,
		document.KindCachedReference,
		document.KindLazyReference,
		document.KindEmbeddedDocument,
	} {
		converters[kind] = convertDocument
	}

	for _, kind := range []document.Kind{
		document.KindList,
		document.KindSortedList,
		document.KindEmbeddedDocumentList,
	} {
		converters[kind] = convertList
	}
}

// RegisterConverter installs the converter for fields of the given kind, replacing the existing
// one.
func RegisterConverter(kind document.Kind, converter Converter) {
	convertersMutex.Lock()
	converters[kind] = converter
	convertersMutex.Unlock()
}

func converterFor(kind document.Kind) Converter {
	convertersMutex.RLock()
	defer convertersMutex.RUnlock()
	return converters[kind]
}

// Convert returns the definition of the GraphQL field that exposes field. Fields that point to
// other models yield a deferred definition that resolves once the target model is bound in
// registry. A nil registry means the global registry.
func Convert(field *document.Field, registry *Registry) (*graphql.FieldConfig, error) {
	const op graphql.Op = "binding.Convert"

	if field == nil {
		return nil, graphql.NewConfigurationError(op, "Must provide document field to convert.")
	}

	converter := converterFor(field.Kind)
	if converter == nil {
		return nil, graphql.NewError(
			fmt.Sprintf("Don't know how to convert the document field %s (%s)", field, field.Kind),
			op, graphql.ErrKindConfiguration)
	}

	return converter(field, registryOrGlobal(registry))
}

// requiredType wraps t in NonNull when field is required.
func requiredType(field *document.Field, t graphql.Type) graphql.Type {
	if FieldIsRequired(field) {
		return graphql.MustNewNonNullOf(t)
	}
	return t
}

func scalarConverter(t graphql.Type) Converter {
	return func(field *document.Field, registry *Registry) (*graphql.FieldConfig, error) {
		return &graphql.FieldConfig{
			Name:        field.Name,
			Description: FieldDescription(field),
			Type:        requiredType(field, t),
			Resolver:    fieldValueResolver(field.Name),
		}, nil
	}
}

func convertDocument(field *document.Field, registry *Registry) (*graphql.FieldConfig, error) {
	return &graphql.FieldConfig{
		Name:        field.Name,
		Description: FieldDescription(field),
		Deferred: func() graphql.FieldResolution {
			t := registry.TypeForDocument(field.Target())
			if t == nil {
				return graphql.Unresolved
			}

			resolver := fieldValueResolver(field.Name)
			if field.Kind != document.KindEmbeddedDocument {
				resolver = referenceResolver(field.Name, t)
			}

			return graphql.ResolvedField(&graphql.FieldConfig{
				Type:     requiredType(field, t.Object()),
				Resolver: resolver,
			})
		},
	}, nil
}

func convertList(field *document.Field, registry *Registry) (*graphql.FieldConfig, error) {
	inner := field.Field

	// A list without inner field holds values of unknown kinds.
	if inner == nil {
		return &graphql.FieldConfig{
			Name:        field.Name,
			Description: FieldDescription(field),
			Type:        requiredType(field, graphql.MustNewListOf(graphql.String())),
			Resolver:    fieldValueResolver(field.Name),
		}, nil
	}

	if FieldIsDocument(inner) {
		return &graphql.FieldConfig{
			Name:        field.Name,
			Description: FieldDescription(field),
			Deferred: func() graphql.FieldResolution {
				return resolveDocumentList(field, registry)
			},
		}, nil
	}

	innerConfig, err := Convert(inner, registry)
	if err != nil {
		return nil, err
	}
	if innerConfig.Type == nil {
		return nil, graphql.NewError(
			fmt.Sprintf("Don't know how to convert the document field %s (%s)", field, field.Kind),
			graphql.Op("binding.Convert"), graphql.ErrKindConfiguration)
	}

	return &graphql.FieldConfig{
		Name:        field.Name,
		Description: FieldDescription(field),
		Type:        requiredType(field, graphql.MustNewListOf(innerConfig.Type)),
		Resolver:    fieldValueResolver(field.Name),
	}, nil
}

func resolveDocumentList(field *document.Field, registry *Registry) graphql.FieldResolution {
	inner := field.Field
	t := registry.TypeForDocument(inner.Target())
	if t == nil {
		return graphql.Unresolved
	}

	if t.Connection() != nil {
		// Stored identifiers are passed through; the connection dereferences only its page.
		config, err := registry.ConnectionFieldFactory()(t, fieldValueResolver(field.Name))
		if err != nil || config == nil {
			registry.Logger().Warn("cannot create connection field",
				zap.Stringer("field", field),
				zap.String("type", t.Name()),
				zap.Error(err))
			return graphql.Unresolved
		}
		return graphql.ResolvedField(config)
	}

	resolver := fieldValueResolver(field.Name)
	if inner.Kind != document.KindEmbeddedDocument {
		resolver = referenceListResolver(field.Name, t)
	}

	return graphql.ResolvedField(&graphql.FieldConfig{
		Type:     requiredType(field, graphql.MustNewListOf(t.Object())),
		Resolver: resolver,
	})
}
