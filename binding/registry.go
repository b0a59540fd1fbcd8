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
	"sync"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"go.uber.org/zap"
)

// ConnectionFieldFactory creates the field that exposes a list of documents bound to t. parent
// resolves the list from the enclosing value. NewConnectionField is the default factory.
type ConnectionFieldFactory func(t *ObjectType, parent graphql.FieldResolver) (*graphql.FieldConfig, error)

// Registry maps document models to the object types that expose them. A model is bound to at most
// one object type in a registry.
//
// Registry is not safe for concurrent modification. Types are expected to be registered before the
// schema is built and served.
type Registry struct {
	logger *zap.Logger

	byModel map[*document.Model]*ObjectType
	byName  map[string]*ObjectType

	// Types in the order they were registered
	types []*ObjectType

	connectionFieldFactory ConnectionFieldFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logger:  zap.NewNop(),
		byModel: map[*document.Model]*ObjectType{},
		byName:  map[string]*ObjectType{},
	}
}

// SetLogger sets the logger for registry events. A nil logger discards them.
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

// Logger returns the logger of the registry.
func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// Register binds t to its model. It is an error to register a type built for another registry or
// to bind a model (or a type name) twice. Registering the same type again is a no-op.
func (r *Registry) Register(t *ObjectType) error {
	const op graphql.Op = "binding.Registry.Register"

	if t == nil {
		return graphql.NewConfigurationError(op, "Only object types built by NewObjectType can be registered.")
	}

	if t.Registry() != r {
		return graphql.NewConfigurationError(op,
			"Registry for a document has to match: type %s was built for another registry.", t.Name())
	}

	model := t.Model()
	if existing, exists := r.byModel[model]; exists {
		if existing == t {
			return nil
		}
		return graphql.NewConfigurationError(op,
			"Document %s is already bound to type %s; cannot register %s.",
			model.Name(), existing.Name(), t.Name())
	}

	if existing, exists := r.byName[t.Name()]; exists {
		return graphql.NewConfigurationError(op,
			"Type name %s is already used by the type of document %s.", t.Name(), existing.Model().Name())
	}

	r.byModel[model] = t
	r.byName[t.Name()] = t
	r.types = append(r.types, t)

	r.logger.Debug("type registered",
		zap.String("type", t.Name()),
		zap.String("document", model.Name()))

	return nil
}

// TypeForDocument returns the object type bound to model or nil.
func (r *Registry) TypeForDocument(model *document.Model) *ObjectType {
	if model == nil {
		return nil
	}
	return r.byModel[model]
}

// TypeForName returns the registered object type with the given name or nil.
func (r *Registry) TypeForName(name string) *ObjectType {
	return r.byName[name]
}

// Types returns the registered object types in registration order.
func (r *Registry) Types() []*ObjectType {
	return r.types
}

// ConnectionFieldFactory returns the factory for fields that expose lists of connection-enabled
// types.
func (r *Registry) ConnectionFieldFactory() ConnectionFieldFactory {
	if r.connectionFieldFactory == nil {
		return NewConnectionField
	}
	return r.connectionFieldFactory
}

// SetConnectionFieldFactory replaces the connection field factory. It takes effect on deferred
// fields that have not been resolved yet.
func (r *Registry) SetConnectionFieldFactory(factory ConnectionFieldFactory) {
	r.connectionFieldFactory = factory
}

// ResetConnectionFieldFactory restores NewConnectionField as the connection field factory.
func (r *Registry) ResetConnectionFieldFactory() {
	r.connectionFieldFactory = nil
}

//===-----------------------------------------------------------------------------------------===//
// Global registry
//===-----------------------------------------------------------------------------------------===//

var (
	globalRegistryMutex sync.Mutex
	globalRegistry      *Registry
)

// GlobalRegistry returns the process-wide registry. It is created on first use.
func GlobalRegistry() *Registry {
	globalRegistryMutex.Lock()
	defer globalRegistryMutex.Unlock()
	if globalRegistry == nil {
		globalRegistry = NewRegistry()
	}
	return globalRegistry
}

// ResetGlobalRegistry discards the process-wide registry. The next call to GlobalRegistry creates a
// new one.
func ResetGlobalRegistry() {
	globalRegistryMutex.Lock()
	globalRegistry = nil
	globalRegistryMutex.Unlock()
}

func registryOrGlobal(registry *Registry) *Registry {
	if registry == nil {
		return GlobalRegistry()
	}
	return registry
}
