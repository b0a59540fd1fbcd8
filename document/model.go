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

package document

import (
	"fmt"
	"strings"

	"github.com/botobag/artemis-mongo/graphql"
)

// DefaultQuerysetAttr is the name of the queryset used when no other is requested.
const DefaultQuerysetAttr = "objects"

// DefaultIDField is the name of the identifier attribute of a model unless configured otherwise.
const DefaultIDField = "id"

// ModelKind classifies models.
type ModelKind uint8

// Enumeration of ModelKind
const (
	ModelDocument ModelKind = iota
	ModelDynamicDocument
	ModelEmbeddedDocument
	ModelDynamicEmbeddedDocument
)

var modelKindNames = [...]string{
	ModelDocument:                "Document",
	ModelDynamicDocument:         "DynamicDocument",
	ModelEmbeddedDocument:        "EmbeddedDocument",
	ModelDynamicEmbeddedDocument: "DynamicEmbeddedDocument",
}

func (k ModelKind) String() string {
	if int(k) < len(modelKindNames) {
		return modelKindNames[k]
	}
	return fmt.Sprintf("ModelKind(%d)", k)
}

// IsEmbedded returns true for models whose documents are stored inside other documents.
func (k ModelKind) IsEmbedded() bool {
	return k == ModelEmbeddedDocument || k == ModelDynamicEmbeddedDocument
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ModelKind) UnmarshalText(text []byte) error {
	for i, name := range modelKindNames {
		if strings.EqualFold(name, string(text)) {
			*k = ModelKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown model kind %q", text)
}

// ModelConfig provides specification to declare a model.
type ModelConfig struct {
	// Name of the model; It must be unique within Catalog.
	Name string

	// Kind of the model
	Kind ModelKind

	// Description documents the model.
	Description string

	// Fields declared on the model in order
	Fields []*Field

	// IDField is the attribute holding the identifier of a document. Default to "id".
	IDField string

	// Querysets maps attribute names to the collections that documents can be queried from.
	Querysets map[string]Queryable

	// Catalog to add the model to; DefaultCatalog() is used when it is nil.
	Catalog *Catalog
}

// Model describes one stored document shape. A model is identified by its pointer.
type Model struct {
	name        string
	kind        ModelKind
	description string
	fields      []*Field
	fieldIndex  map[string]int
	idField     string
	querysets   map[string]Queryable
	catalog     *Catalog
}

func newModelError(model string, format string, a ...interface{}) error {
	return graphql.NewConfigurationError("document.NewModel", "model %s: %s", model, fmt.Sprintf(format, a...))
}

// NewModel declares a model and adds it to the catalog. Fields given in config are attached to the
// new model and must not be modified afterwards.
func NewModel(config *ModelConfig) (*Model, error) {
	if len(config.Name) == 0 {
		return nil, graphql.NewConfigurationError("document.NewModel", "Must provide name for model.")
	}

	catalog := config.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	idField := config.IDField
	if len(idField) == 0 {
		idField = DefaultIDField
	}

	model := &Model{
		name:        config.Name,
		kind:        config.Kind,
		description: config.Description,
		fields:      make([]*Field, 0, len(config.Fields)),
		fieldIndex:  make(map[string]int, len(config.Fields)),
		idField:     idField,
		querysets:   make(map[string]Queryable, len(config.Querysets)),
		catalog:     catalog,
	}

	for _, field := range config.Fields {
		if field == nil || len(field.Name) == 0 {
			return nil, newModelError(config.Name, "field must have a name")
		}
		if _, exists := model.fieldIndex[field.Name]; exists {
			return nil, newModelError(config.Name, "field %s is declared more than once", field.Name)
		}
		if err := field.attach(model, nil); err != nil {
			return nil, err
		}
		model.fieldIndex[field.Name] = len(model.fields)
		model.fields = append(model.fields, field)
	}

	for attr, queryable := range config.Querysets {
		model.querysets[attr] = queryable
	}

	catalog.Add(model)

	return model, nil
}

// MustNewModel is a convenience function equivalent to NewModel but panics on failure instead of
// returning an error.
func MustNewModel(config *ModelConfig) *Model {
	model, err := NewModel(config)
	if err != nil {
		panic(err)
	}
	return model
}

// Name of the model
func (m *Model) Name() string {
	return m.name
}

// Kind of the model
func (m *Model) Kind() ModelKind {
	return m.kind
}

// Description of the model
func (m *Model) Description() string {
	return m.description
}

// Fields returns the declared fields in order.
func (m *Model) Fields() []*Field {
	return m.fields
}

// Field returns the declared field with the given name or nil.
func (m *Model) Field(name string) *Field {
	index, exists := m.fieldIndex[name]
	if !exists {
		return nil
	}
	return m.fields[index]
}

// IDField returns the name of the identifier attribute.
func (m *Model) IDField() string {
	return m.idField
}

// Catalog returns the catalog that the model belongs to.
func (m *Model) Catalog() *Catalog {
	return m.catalog
}

// Queryset returns the collection installed under attr.
func (m *Model) Queryset(attr string) (Queryable, bool) {
	queryable, exists := m.querysets[attr]
	return queryable, exists && queryable != nil
}

// SetQueryset installs a collection under attr. It is meant for wiring models to storage before
// serving queries and is not safe to call concurrently with Queryset.
func (m *Model) SetQueryset(attr string, queryable Queryable) {
	m.querysets[attr] = queryable
}

// String implements fmt.Stringer.
func (m *Model) String() string {
	return m.name
}

// Document is implemented by values that are instances of a model.
type Document interface {
	DocumentModel() *Model
}

// ModelOf returns the model of v. v is either a *Model or a Document.
func ModelOf(v interface{}) (*Model, bool) {
	switch v := v.(type) {
	case *Model:
		return v, v != nil
	case Document:
		model := v.DocumentModel()
		return model, model != nil
	}
	return nil, false
}

// IsDocument returns true if v is a model or an instance of one.
func IsDocument(v interface{}) bool {
	_, ok := ModelOf(v)
	return ok
}
