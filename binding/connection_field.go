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
	"fmt"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
)

// QuerysetAttrArg is the argument of a connection field that selects the queryset of the model to
// page through.
const QuerysetAttrArg = "querysetAttr"

// NewConnectionField returns the definition of a field that pages through documents of t. The
// field is unnamed; callers set Name before adding it to an object.
//
// On resolution, parent (if any) is called to obtain the list from the enclosing value. When it
// yields nil, the queryset of the model selected by the querysetAttr argument is used.
func NewConnectionField(t *ObjectType, parent graphql.FieldResolver) (*graphql.FieldConfig, error) {
	const op graphql.Op = "binding.NewConnectionField"

	if t == nil {
		return nil, graphql.NewConfigurationError(op, "Must provide object type for connection field.")
	}

	connection := t.Connection()
	if connection == nil {
		return nil, graphql.NewConfigurationError(op, "The type %s doesn't have a connection.", t.Name())
	}

	args := append(relay.ConnectionArgs(), &graphql.ArgumentConfig{
		Name:        QuerysetAttrArg,
		Description: "Name of the queryset to read the documents from",
		Type:        graphql.String(),
	})

	return &graphql.FieldConfig{
		Type: connection.Object(),
		Args: args,
		Resolver: &connectionResolver{
			t:      t,
			parent: parent,
		},
	}, nil
}

// connectionResolver resolves a connection field to a *relay.ConnectionResult.
type connectionResolver struct {
	t      *ObjectType
	parent graphql.FieldResolver
}

var _ graphql.FieldResolver = (*connectionResolver)(nil)

// Resolve implements graphql.FieldResolver.
func (r *connectionResolver) Resolve(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	values := graphql.NoArgumentValues()
	if info != nil {
		values = info.Args()
	}

	args, err := relay.ArgsFrom(values)
	if err != nil {
		return nil, err
	}

	var iterable interface{}
	if r.parent != nil {
		iterable, err = r.parent.Resolve(ctx, source, info)
		if err != nil {
			return nil, err
		}
	}

	if iterable == nil {
		attr, _ := values.LookupString(QuerysetAttrArg)
		queryable, err := r.t.query(ctx, attr)
		if err != nil {
			return nil, err
		}
		iterable = queryable
	}

	var (
		result *relay.ConnectionResult
		length int
	)
	switch iterable := iterable.(type) {
	case document.Queryable:
		length, err = iterable.Count(ctx)
		if err != nil {
			return nil, err
		}

		window, err := relay.ComputeWindow(args, length)
		if err != nil {
			return nil, err
		}

		// Only the documents in the page are loaded.
		items, err := iterable.Slice(ctx, window.Start, window.Len())
		if err != nil {
			return nil, err
		}
		result = relay.NewConnectionResult(window, items)

	default:
		items, ok := toSlice(iterable)
		if !ok {
			return nil, graphql.NewError(
				fmt.Sprintf("Connection of %s resolved to %T which is neither a list nor a queryable.",
					r.t.Name(), iterable),
				graphql.Op("binding.NewConnectionField"), graphql.ErrKindInternal)
		}
		length = len(items)

		window, err := relay.ComputeWindow(args, length)
		if err != nil {
			return nil, err
		}
		result = relay.NewConnectionResult(window, items[window.Start:window.End])
	}

	for _, edge := range result.Edges {
		node, err := dereference(ctx, r.t, edge.Node)
		if err != nil {
			return nil, err
		}
		edge.Node = node
	}

	result.Iterable = iterable
	result.Length = length

	return result, nil
}
