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

	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
)

// NodeField returns the definition of the "node" root field which refetches an object of any type
// in registry by its global ID. A nil registry means the global registry.
func NodeField(registry *Registry) *graphql.FieldConfig {
	return &graphql.FieldConfig{
		Name:        "node",
		Description: "Fetches an object given its ID",
		Type:        relay.NodeInterface(),
		Args: []*graphql.ArgumentConfig{
			{
				Name:        "id",
				Description: "The ID of an object",
				Type:        graphql.MustNewNonNullOf(graphql.ID()),
			},
		},
		Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			id, _ := info.Args().LookupString("id")
			return ResolveNode(ctx, registryOrGlobal(registry), id)
		}),
	}
}

// ResolveNode returns the document identified by globalID. It returns nil when the type named in
// the ID is not registered or the document doesn't exist.
func ResolveNode(ctx context.Context, registry *Registry, globalID string) (interface{}, error) {
	id, err := relay.FromGlobalID(globalID)
	if err != nil {
		return nil, err
	}

	t := registryOrGlobal(registry).TypeForName(id.Type)
	if t == nil {
		return nil, nil
	}

	return t.GetNode(ctx, id.ID)
}
