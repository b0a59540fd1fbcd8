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

package main

import (
	"os"

	"github.com/botobag/artemis-mongo/binding"
	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"
)

// binder holds the object types bound from a manifest and the schema built from them.
type binder struct {
	manifest *document.Manifest
	models   []*document.Model
	registry *binding.Registry
	schema   *graphql.Schema

	// Root query field of each connection-enabled type, keyed by type name
	rootFields map[string]*graphql.Field
}

func loadManifestFile(path string, logger *zap.Logger) (*binder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	manifest, err := document.ParseManifest(file)
	if err != nil {
		return nil, err
	}
	return bind(manifest, logger)
}

// bind declares the models in manifest and binds them in a new registry. Models that are not
// embedded implement the Node interface and get a root connection field named "all<Type>".
func bind(manifest *document.Manifest, logger *zap.Logger) (*binder, error) {
	models, err := manifest.Declare(document.NewCatalog())
	if err != nil {
		return nil, err
	}

	registry := binding.NewRegistry()
	registry.SetLogger(logger)

	queryFields := graphql.Fields{binding.NodeField(registry)}
	types := make([]graphql.Type, 0, len(models))
	for _, model := range models {
		config := &binding.ObjectTypeConfig{
			Document: model,
			Registry: registry,
		}
		if !model.Kind().IsEmbedded() {
			config.Interfaces = []*graphql.Interface{relay.NodeInterface()}
		}

		t, err := binding.NewObjectType(config)
		if err != nil {
			return nil, err
		}
		types = append(types, t.Object())

		if t.Connection() != nil {
			field, err := binding.NewConnectionField(t, nil)
			if err != nil {
				return nil, err
			}
			field.Name = rootFieldName(t)
			field.Description = "All documents of " + t.Name()
			queryFields = append(queryFields, field)
		}
	}

	query, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields,
	})
	if err != nil {
		return nil, err
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query: query,
		Types: types,
	})
	if err != nil {
		return nil, err
	}

	rootFields := map[string]*graphql.Field{}
	for _, t := range registry.Types() {
		if field := query.Field(rootFieldName(t)); field != nil {
			rootFields[t.Name()] = field
		}
	}

	logger.Debug("schema built", zap.Int("types", len(schema.TypeNames())))

	return &binder{
		manifest:   manifest,
		models:     models,
		registry:   registry,
		schema:     schema,
		rootFields: rootFields,
	}, nil
}

func rootFieldName(t *binding.ObjectType) string {
	return strcase.ToLowerCamel("all_" + strcase.ToSnake(t.Name()))
}

// PrintSchema returns the SDL of the schema.
func (b *binder) PrintSchema() string {
	return graphql.PrintSchema(b.schema)
}
