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
	"errors"
	"io"

	"github.com/botobag/artemis-mongo/graphql"
	"gopkg.in/yaml.v3"
)

// Manifest lists model declarations in YAML, for example:
//
//	models:
//	  - name: Person
//	    collection: people
//	    fields:
//	      - name: name
//	        kind: StringField
//	        required: true
//	      - name: company
//	        kind: ReferenceField
//	        document: Company
//	      - name: tags
//	        kind: ListField
//	        field:
//	          kind: StringField
//	  - name: Company
//	    fields:
//	      - name: name
//	        kind: StringField
//
// Documents are referred to by name, so a model may refer to models listed after it.
type Manifest struct {
	Models []*ModelManifest `yaml:"models"`
}

// ModelManifest declares one model.
type ModelManifest struct {
	Name        string           `yaml:"name"`
	Kind        ModelKind        `yaml:"kind,omitempty"`
	Description string           `yaml:"description,omitempty"`
	IDField     string           `yaml:"id_field,omitempty"`
	Collection  string           `yaml:"collection,omitempty"`
	Fields      []*FieldManifest `yaml:"fields"`
}

// FieldManifest declares one field.
type FieldManifest struct {
	Name        string         `yaml:"name,omitempty"`
	Kind        Kind           `yaml:"kind"`
	Required    bool           `yaml:"required,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Document    string         `yaml:"document,omitempty"`
	Field       *FieldManifest `yaml:"field,omitempty"`
	Choices     []interface{}  `yaml:"choices,omitempty"`
}

// ParseManifest decodes a manifest from r. Unknown keys are rejected.
func ParseManifest(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var manifest Manifest
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return &manifest, nil
		}
		return nil, graphql.NewError("Cannot parse model manifest.", err,
			graphql.Op("document.ParseManifest"), graphql.ErrKindConfiguration)
	}
	return &manifest, nil
}

// LoadManifest decodes a manifest from r and declares its models in catalog (DefaultCatalog() if
// catalog is nil). Models are returned in the order they are listed.
func LoadManifest(r io.Reader, catalog *Catalog) ([]*Model, error) {
	manifest, err := ParseManifest(r)
	if err != nil {
		return nil, err
	}
	return manifest.Declare(catalog)
}

// Declare declares the models listed in the manifest.
func (manifest *Manifest) Declare(catalog *Catalog) ([]*Model, error) {
	models := make([]*Model, 0, len(manifest.Models))
	for _, m := range manifest.Models {
		fields := make([]*Field, len(m.Fields))
		for i, f := range m.Fields {
			fields[i] = f.field()
		}

		model, err := NewModel(&ModelConfig{
			Name:        m.Name,
			Kind:        m.Kind,
			Description: m.Description,
			Fields:      fields,
			IDField:     m.IDField,
			Catalog:     catalog,
		})
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, nil
}

// Collections maps model names to the collection names given in the manifest. Models without a
// collection are omitted.
func (manifest *Manifest) Collections() map[string]string {
	collections := map[string]string{}
	for _, m := range manifest.Models {
		if len(m.Collection) > 0 {
			collections[m.Name] = m.Collection
		}
	}
	return collections
}

func (f *FieldManifest) field() *Field {
	field := &Field{
		Name:         f.Name,
		Kind:         f.Kind,
		Required:     f.Required,
		Description:  f.Description,
		DocumentName: f.Document,
		Choices:      f.Choices,
	}
	if f.Field != nil {
		field.Field = f.Field.field()
	}
	return field
}
