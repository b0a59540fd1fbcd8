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

package relay

import (
	"context"
	"strings"

	"github.com/botobag/artemis-mongo/graphql"
)

// Edge is an item in a connection along with its cursor.
type Edge struct {
	Node   interface{} `json:"node"`
	Cursor string      `json:"cursor"`
}

// ConnectionConfig provides specification to define a connection type.
type ConnectionConfig struct {
	// Name of the connection type; When it is empty, the name is derived from the name of Node by
	// appending "Connection".
	Name string

	// Description for the connection type
	Description string

	// Node is the type of the objects in the connection.
	Node *graphql.Object

	// EdgeFields are additional fields defined on the edge type.
	EdgeFields graphql.Fields

	// ConnectionFields are additional fields defined on the connection type.
	ConnectionFields graphql.Fields
}

// Connection is an object type that wraps a page of Node objects. The edge type is named after the
// connection with the "Connection" suffix replaced by "Edge" (e.g., PersonConnection and
// PersonEdge).
type Connection struct {
	object *graphql.Object
	edge   *graphql.Object
	node   *graphql.Object
}

// NewConnection defines a connection type.
func NewConnection(config *ConnectionConfig) (*Connection, error) {
	const op graphql.Op = "relay.NewConnection"

	if config.Node == nil {
		return nil, graphql.NewError("Must provide node type for connection.", op, graphql.ErrKindConfiguration)
	}

	name := config.Name
	if len(name) == 0 {
		name = config.Node.Name() + "Connection"
	}
	baseName := strings.TrimSuffix(name, "Connection")

	edgeFields := graphql.Fields{
		{
			Name:        "node",
			Description: "The item at the end of the edge",
			Type:        config.Node,
			Resolver: edgeFieldResolver(func(edge *Edge) interface{} {
				return edge.Node
			}),
		},
		{
			Name:        "cursor",
			Description: "A cursor for use in pagination",
			Type:        graphql.MustNewNonNullOf(graphql.String()),
			Resolver: edgeFieldResolver(func(edge *Edge) interface{} {
				return edge.Cursor
			}),
		},
	}
	edgeFields = append(edgeFields, config.EdgeFields...)

	edge, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        baseName + "Edge",
		Description: "A Relay edge containing a `" + baseName + "` and its cursor.",
		Fields:      edgeFields,
	})
	if err != nil {
		return nil, graphql.NewError("", err, op)
	}

	connectionFields := graphql.Fields{
		{
			Name:        "pageInfo",
			Description: "Pagination data for this connection.",
			Type:        graphql.MustNewNonNullOf(PageInfoType()),
			Resolver: connectionFieldResolver(func(result *ConnectionResult) interface{} {
				return &result.PageInfo
			}),
		},
		{
			Name:        "edges",
			Description: "Contains the nodes in this connection.",
			Type:        graphql.MustNewNonNullOf(graphql.MustNewListOf(edge)),
			Resolver: connectionFieldResolver(func(result *ConnectionResult) interface{} {
				return result.Edges
			}),
		},
	}
	connectionFields = append(connectionFields, config.ConnectionFields...)

	object, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        name,
		Description: config.Description,
		Fields:      connectionFields,
	})
	if err != nil {
		return nil, graphql.NewError("", err, op)
	}

	return &Connection{
		object: object,
		edge:   edge,
		node:   config.Node,
	}, nil
}

// MustNewConnection is a convenience function equivalent to NewConnection but panics on failure
// instead of returning an error.
func MustNewConnection(config *ConnectionConfig) *Connection {
	c, err := NewConnection(config)
	if err != nil {
		panic(err)
	}
	return c
}

// Name of the connection type
func (c *Connection) Name() string {
	return c.object.Name()
}

// Object returns the connection object type.
func (c *Connection) Object() *graphql.Object {
	return c.object
}

// Edge returns the edge object type.
func (c *Connection) Edge() *graphql.Object {
	return c.edge
}

// Node returns the type of the objects in the connection.
func (c *Connection) Node() *graphql.Object {
	return c.node
}

// ConnectionArgs returns the argument definitions for a field that returns a connection.
func ConnectionArgs() []*graphql.ArgumentConfig {
	return []*graphql.ArgumentConfig{
		{Name: "before", Type: graphql.String()},
		{Name: "after", Type: graphql.String()},
		{Name: "first", Type: graphql.Int()},
		{Name: "last", Type: graphql.Int()},
	}
}

func edgeFieldResolver(getter func(edge *Edge) interface{}) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		edge, ok := source.(*Edge)
		if !ok {
			return nil, graphql.NewError("Edge field resolved on an unexpected value.", graphql.ErrKindInternal)
		}
		return getter(edge), nil
	})
}

func connectionFieldResolver(getter func(result *ConnectionResult) interface{}) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		result, ok := source.(*ConnectionResult)
		if !ok {
			return nil, graphql.NewError("Connection field resolved on an unexpected value.", graphql.ErrKindInternal)
		}
		return getter(result), nil
	})
}
