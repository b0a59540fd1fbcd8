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
)

// Instance is a document of a model with its values keyed by attribute name.
type Instance struct {
	model  *Model
	values map[string]interface{}
}

var _ Document = (*Instance)(nil)

// NewInstance creates a document of model holding values.
func NewInstance(model *Model, values map[string]interface{}) *Instance {
	if values == nil {
		values = map[string]interface{}{}
	}
	return &Instance{
		model:  model,
		values: values,
	}
}

// DocumentModel implements Document.
func (i *Instance) DocumentModel() *Model {
	if i == nil {
		return nil
	}
	return i.model
}

// Lookup returns the value of the named attribute.
func (i *Instance) Lookup(name string) (interface{}, bool) {
	value, exists := i.values[name]
	return value, exists
}

// Get returns the value of the named attribute or nil.
func (i *Instance) Get(name string) interface{} {
	return i.values[name]
}

// Values returns all values of the document.
func (i *Instance) Values() map[string]interface{} {
	return i.values
}

// ID returns the identifier of the document. The model's identifier attribute is looked up first
// and then "_id" where MongoDB keeps it.
func (i *Instance) ID() interface{} {
	if id, exists := i.values[i.model.IDField()]; exists {
		return id
	}
	return i.values["_id"]
}

// String implements fmt.Stringer.
func (i *Instance) String() string {
	return fmt.Sprintf("%s(%v)", i.model.Name(), i.ID())
}

// hexer is implemented by identifiers with a hexadecimal form such as BSON ObjectIDs.
type hexer interface {
	Hex() string
}

// IDString returns the textual form of a document identifier. Identifiers with a hexadecimal form
// use it so that an ObjectID and its hex string compare equal.
func IDString(id interface{}) string {
	switch id := id.(type) {
	case nil:
		return ""
	case string:
		return id
	case hexer:
		return id.Hex()
	case fmt.Stringer:
		return id.String()
	}
	return fmt.Sprint(id)
}

// IDOf returns the identifier of v. v is an Instance or a map with an "id" or "_id" key.
func IDOf(v interface{}) (interface{}, bool) {
	switch v := v.(type) {
	case *Instance:
		id := v.ID()
		return id, id != nil
	case map[string]interface{}:
		if id, exists := v[DefaultIDField]; exists {
			return id, true
		}
		id, exists := v["_id"]
		return id, exists
	case interface{ ID() interface{} }:
		id := v.ID()
		return id, id != nil
	}
	return nil, false
}
