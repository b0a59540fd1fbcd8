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

// Field describes one attribute declared on a model.
type Field struct {
	// Name of the attribute in the model. It is empty for the inner field of a list.
	Name string

	// Kind is the storage type.
	Kind Kind

	// Required is set when a value must be present.
	Required bool

	// Description documents the attribute.
	Description string

	// Field describes the elements of a list kind. A list without an inner field holds untyped
	// values.
	Field *Field

	// Document is the model that a reference or an embedded document points to.
	Document *Model

	// DocumentName names the target model when it cannot be given as Document (because it is
	// declared later or it is the model being declared). The name is looked up in the catalog of the
	// model that the field belongs to.
	DocumentName string

	// Choices restricts the values of the attribute.
	Choices []interface{}

	// Set when the field is attached to a model.
	model   *Model
	parent  *Field
	catalog *Catalog
}

// Model returns the model that declares the field. For the inner field of a list, it is the model
// of the list.
func (f *Field) Model() *Model {
	return f.model
}

// Target returns the model that a reference or an embedded document field points to. It returns
// nil when the field has no target or the named target has not been declared.
func (f *Field) Target() *Model {
	if f.Document != nil {
		return f.Document
	}
	if len(f.DocumentName) == 0 {
		return nil
	}

	catalog := f.catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return catalog.Lookup(f.DocumentName)
}

// TargetName returns the name of the model that the field points to, whether or not the model is
// declared.
func (f *Field) TargetName() string {
	if f.Document != nil {
		return f.Document.Name()
	}
	return f.DocumentName
}

// String names the field with its model (e.g., "Person.company"). The inner field of a list is
// named after the list with a "[]" suffix.
func (f *Field) String() string {
	switch {
	case f.parent != nil:
		return f.parent.String() + "[]"
	case f.model != nil:
		return f.model.Name() + "." + f.Name
	case len(f.Name) > 0:
		return f.Name
	}
	return "<anonymous " + f.Kind.String() + ">"
}

// attach binds f (and its inner fields) to model.
func (f *Field) attach(model *Model, parent *Field) error {
	if f.model != nil && f.model != model {
		return newModelError(model.Name(), "field %s is already declared in model %s", f.Name, f.model.Name())
	}

	if f.Kind == KindInvalid {
		return newModelError(model.Name(), "field %s has no kind", f.describe(parent))
	}

	// An embedded document list without an inner field lists the documents it points to.
	if f.Kind == KindEmbeddedDocumentList && f.Field == nil && (f.Document != nil || len(f.DocumentName) > 0) {
		f.Field = &Field{
			Kind:         KindEmbeddedDocument,
			Document:     f.Document,
			DocumentName: f.DocumentName,
		}
	}

	if f.Kind.IsDocumentKind() && f.Document == nil && len(f.DocumentName) == 0 {
		return newModelError(model.Name(), "field %s must name the document it points to", f.describe(parent))
	}

	if f.Field != nil && !f.Kind.IsListKind() {
		return newModelError(model.Name(), "field %s of kind %s cannot have an inner field",
			f.describe(parent), f.Kind)
	}

	f.model = model
	f.parent = parent
	f.catalog = model.catalog

	if f.Field != nil {
		return f.Field.attach(model, f)
	}
	return nil
}

func (f *Field) describe(parent *Field) string {
	if parent != nil {
		return parent.Name + "[]"
	}
	return f.Name
}
