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
	"errors"
	"fmt"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"
)

// ConnectionMode controls whether an object type comes with a connection type.
type ConnectionMode int

// Enumeration of ConnectionMode
const (
	// ConnectionAuto creates a connection when the type implements the Node interface or a
	// connection config is given.
	ConnectionAuto ConnectionMode = iota

	// ConnectionEnabled always creates a connection.
	ConnectionEnabled

	// ConnectionDisabled never creates a connection.
	ConnectionDisabled
)

// FieldNameFunc returns the exposed name of a document field.
type FieldNameFunc func(name string) string

// ObjectTypeConfig provides specification to bind a document model to an object type.
type ObjectTypeConfig struct {
	// Name of the object type; Default to the name of the model.
	Name string

	// Description of the object type; Default to the description of the model.
	Description string

	// Document is the model to bind. It is either a *document.Model or a value that implements
	// document.Document.
	Document interface{}

	// Registry where the type is registered and referenced models are looked up; Default to the
	// global registry.
	Registry *Registry

	// SkipRegistry leaves the type unregistered.
	SkipRegistry bool

	// Only restricts the exposed document fields to the named ones when it is not empty.
	Only []string

	// Exclude lists the document fields that are not exposed.
	Exclude []string

	// Fields are additional fields on the type. A field replaces the converted document field with
	// the same exposed name.
	Fields graphql.Fields

	// Interfaces implemented by the type
	Interfaces []*graphql.Interface

	// Connection specifies the connection type. Its Node must be left nil.
	Connection *relay.ConnectionConfig

	// ConnectionMode determines whether a connection type is created.
	ConnectionMode ConnectionMode

	// IDField names the attribute holding the document identifier; Default to the identifier
	// attribute of the model.
	IDField string

	// FieldName maps document field names to exposed names; Default to lower camel case.
	FieldName FieldNameFunc

	// KeepFieldNames exposes document fields under their declared names.
	KeepFieldNames bool

	// Logger receives debug events of the binding; Default to the logger of the registry.
	Logger *zap.Logger
}

// ObjectType is an object type bound to a document model.
type ObjectType struct {
	object     *graphql.Object
	model      *document.Model
	registry   *Registry
	connection *relay.Connection
	idField    string
	logger     *zap.Logger
}

// NewObjectType converts the fields of the model given in config and defines an object type for
// them. Unless SkipRegistry is set, the type is registered.
func NewObjectType(config *ObjectTypeConfig) (*ObjectType, error) {
	const op graphql.Op = "binding.NewObjectType"

	model, ok := document.ModelOf(config.Document)
	if !ok {
		return nil, graphql.NewConfigurationError(op,
			"You need to pass a valid document model in ObjectTypeConfig for %s, received %v.",
			config.Name, config.Document)
	}

	registry := registryOrGlobal(config.Registry)

	logger := config.Logger
	if logger == nil {
		logger = registry.Logger()
	}

	name := config.Name
	if len(name) == 0 {
		name = model.Name()
	}

	description := config.Description
	if len(description) == 0 {
		description = model.Description()
	}

	idField := config.IDField
	if len(idField) == 0 {
		idField = model.IDField()
	}

	t := &ObjectType{
		model:    model,
		registry: registry,
		idField:  idField,
		logger:   logger.With(zap.String("type", name), zap.String("document", model.Name())),
	}

	isNode := false
	for _, iface := range config.Interfaces {
		if relay.IsNodeInterface(iface) {
			isNode = true
		}
	}

	fields, err := t.buildFields(config, isNode)
	if err != nil {
		return nil, graphql.NewError("", err, op)
	}

	object, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        name,
		Description: description,
		Interfaces:  config.Interfaces,
		Fields:      fields,
		IsTypeOf:    t.IsTypeOf,
	})
	if err != nil {
		return nil, graphql.NewError("", err, op)
	}
	t.object = object

	useConnection := false
	switch config.ConnectionMode {
	case ConnectionAuto:
		useConnection = isNode || config.Connection != nil
	case ConnectionEnabled:
		useConnection = true
	case ConnectionDisabled:
		if config.Connection != nil {
			return nil, graphql.NewConfigurationError(op,
				"Connection of %s is specified but connections are disabled.", name)
		}
	}

	if useConnection {
		var connectionConfig relay.ConnectionConfig
		if config.Connection != nil {
			if config.Connection.Node != nil {
				return nil, graphql.NewConfigurationError(op,
					"The connection of %s must have %s as node type, received %s.",
					name, name, config.Connection.Node.Name())
			}
			connectionConfig = *config.Connection
		}
		connectionConfig.Node = object

		connection, err := relay.NewConnection(&connectionConfig)
		if err != nil {
			return nil, graphql.NewError("", err, op)
		}
		t.connection = connection
		t.logger.Debug("connection created", zap.String("connection", connection.Name()))
	}

	if !config.SkipRegistry {
		if err := registry.Register(t); err != nil {
			return nil, graphql.NewError("", err, op)
		}
	}

	return t, nil
}

// MustNewObjectType is a convenience function equivalent to NewObjectType but panics on failure
// instead of returning an error.
func MustNewObjectType(config *ObjectTypeConfig) *ObjectType {
	t, err := NewObjectType(config)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *ObjectType) buildFields(config *ObjectTypeConfig, isNode bool) (graphql.Fields, error) {
	fieldName := config.FieldName
	if fieldName == nil {
		if config.KeepFieldNames {
			fieldName = func(name string) string { return name }
		} else {
			fieldName = strcase.ToLowerCamel
		}
	}

	only := stringSet(config.Only)
	exclude := stringSet(config.Exclude)

	var fields graphql.Fields
	if isNode {
		fields = append(fields, relay.GlobalIDField(t.nameOf(config), t.fetchID))
	}

	for _, field := range t.model.Fields() {
		if (len(only) > 0 && !only[field.Name]) || exclude[field.Name] {
			t.logger.Debug("field skipped", zap.String("field", field.Name))
			continue
		}

		fieldConfig, err := Convert(field, t.registry)
		if err != nil {
			return nil, err
		}
		fieldConfig.Name = fieldName(field.Name)

		if isNode && fieldConfig.Name == "id" {
			t.logger.Debug("field replaced by global ID", zap.String("field", field.Name))
			continue
		}

		t.logger.Debug("field converted",
			zap.String("field", field.Name),
			zap.String("name", fieldConfig.Name),
			zap.Stringer("kind", field.Kind),
			zap.Bool("deferred", fieldConfig.Deferred != nil))
		fields = append(fields, fieldConfig)
	}

	for _, extra := range config.Fields {
		replaced := false
		if extra != nil {
			for i, field := range fields {
				if field.Name == extra.Name {
					fields[i] = extra
					replaced = true
					break
				}
			}
		}
		if !replaced {
			fields = append(fields, extra)
		}
	}

	return fields, nil
}

func (t *ObjectType) nameOf(config *ObjectTypeConfig) string {
	if len(config.Name) > 0 {
		return config.Name
	}
	return t.model.Name()
}

// fetchID returns the identifier of the document resolved by the enclosing field.
func (t *ObjectType) fetchID(ctx context.Context, source interface{}, info graphql.ResolveInfo) (string, error) {
	id := fieldValue(source, t.idField)
	if id == nil {
		id, _ = document.IDOf(source)
	}
	return document.IDString(id), nil
}

func stringSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Name of the object type
func (t *ObjectType) Name() string {
	return t.object.Name()
}

// Object returns the object type.
func (t *ObjectType) Object() *graphql.Object {
	return t.object
}

// Model returns the bound model.
func (t *ObjectType) Model() *document.Model {
	return t.model
}

// Registry returns the registry that the type was built for.
func (t *ObjectType) Registry() *Registry {
	return t.registry
}

// Connection returns the connection type or nil if the type doesn't have one.
func (t *ObjectType) Connection() *relay.Connection {
	return t.connection
}

// IDField returns the name of the identifier attribute.
func (t *ObjectType) IDField() string {
	return t.idField
}

// IsTypeOf reports whether value is a document of the bound model. It fails for values that are not
// documents.
func (t *ObjectType) IsTypeOf(value interface{}) (bool, error) {
	model, ok := document.ModelOf(value)
	if !ok {
		return false, graphql.NewError(fmt.Sprintf("Received incompatible instance %v.", value),
			graphql.Op("binding.ObjectType.IsTypeOf"))
	}
	return model == t.model, nil
}

// GetQuery returns the default collection of the bound model.
func (t *ObjectType) GetQuery(ctx context.Context) (document.Queryable, error) {
	return t.query(ctx, document.DefaultQuerysetAttr)
}

func (t *ObjectType) query(ctx context.Context, attr string) (document.Queryable, error) {
	if len(attr) == 0 {
		attr = document.DefaultQuerysetAttr
	}
	if _, ok := t.model.Queryset(attr); !ok {
		if _, ok := QueryableFrom(ctx, t.model); ok {
			t.logger.Debug("queryable taken from context", zap.String("attr", attr))
		}
	}
	return GetQuery(ctx, t.model, attr)
}

// GetNode returns the document identified by id or nil if there's no such document.
func (t *ObjectType) GetNode(ctx context.Context, id interface{}) (interface{}, error) {
	query, err := t.GetQuery(ctx)
	if err != nil {
		return nil, err
	}

	node, err := query.Get(ctx, id)
	if errors.Is(err, document.DoesNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return node, nil
}
