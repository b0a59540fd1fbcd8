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
	"sync"
)

// Catalog maps model names to models. Fields refer to models declared later through the catalog
// of their own model.
type Catalog struct {
	mutex  sync.RWMutex
	models map[string]*Model
	order  []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		models: map[string]*Model{},
	}
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the process-wide catalog used by models declared without one.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Lookup finds a model in the default catalog.
func Lookup(name string) *Model {
	return defaultCatalog.Lookup(name)
}

// Add puts model in the catalog. A model with the same name is replaced.
func (c *Catalog) Add(model *Model) {
	c.mutex.Lock()
	if _, exists := c.models[model.Name()]; !exists {
		c.order = append(c.order, model.Name())
	}
	c.models[model.Name()] = model
	c.mutex.Unlock()
}

// Lookup finds the model with the given name. It returns nil if no such model has been added.
func (c *Catalog) Lookup(name string) *Model {
	c.mutex.RLock()
	model := c.models[name]
	c.mutex.RUnlock()
	return model
}

// Models returns the models in the order their names were first added.
func (c *Catalog) Models() []*Model {
	c.mutex.RLock()
	models := make([]*Model, len(c.order))
	for i, name := range c.order {
		models[i] = c.models[name]
	}
	c.mutex.RUnlock()
	return models
}

// Reset removes all models from the catalog.
func (c *Catalog) Reset() {
	c.mutex.Lock()
	c.models = map[string]*Model{}
	c.order = nil
	c.mutex.Unlock()
}
