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

	"github.com/botobag/artemis-mongo/graphql"
)

// PageInfo contains information about the page fetched from a connection.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor,omitempty"`
	EndCursor       string `json:"endCursor,omitempty"`
}

// pageInfoFieldResolver resolves a field on *PageInfo with getter.
func pageInfoFieldResolver(getter func(pageInfo *PageInfo) interface{}) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		switch source := source.(type) {
		case *PageInfo:
			return getter(source), nil
		case PageInfo:
			return getter(&source), nil
		}
		return nil, graphql.NewError("PageInfo field resolved on an unexpected value.", graphql.ErrKindInternal)
	})
}

// nullableCursor maps an empty cursor to null.
func nullableCursor(cursor string) interface{} {
	if len(cursor) == 0 {
		return nil
	}
	return cursor
}

var pageInfoTypeInstance = graphql.MustNewObject(&graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Information about pagination in a connection.",
	Fields: graphql.Fields{
		{
			Name:        "hasNextPage",
			Description: "When paginating forwards, are there more items?",
			Type:        graphql.MustNewNonNullOf(graphql.Boolean()),
			Resolver: pageInfoFieldResolver(func(pageInfo *PageInfo) interface{} {
				return pageInfo.HasNextPage
			}),
		},
		{
			Name:        "hasPreviousPage",
			Description: "When paginating backwards, are there more items?",
			Type:        graphql.MustNewNonNullOf(graphql.Boolean()),
			Resolver: pageInfoFieldResolver(func(pageInfo *PageInfo) interface{} {
				return pageInfo.HasPreviousPage
			}),
		},
		{
			Name:        "startCursor",
			Description: "When paginating backwards, the cursor to continue.",
			Type:        graphql.String(),
			Resolver: pageInfoFieldResolver(func(pageInfo *PageInfo) interface{} {
				return nullableCursor(pageInfo.StartCursor)
			}),
		},
		{
			Name:        "endCursor",
			Description: "When paginating forwards, the cursor to continue.",
			Type:        graphql.String(),
			Resolver: pageInfoFieldResolver(func(pageInfo *PageInfo) interface{} {
				return nullableCursor(pageInfo.EndCursor)
			}),
		},
	},
})

// PageInfoType returns the PageInfo object type shared by all connections.
func PageInfoType() *graphql.Object {
	return pageInfoTypeInstance
}
