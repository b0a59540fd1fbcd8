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
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/botobag/artemis-mongo/graphql"
)

var nodeInterfaceInstance = graphql.MustNewInterface(&graphql.InterfaceConfig{
	Name:        "Node",
	Description: "An object with an ID",
	Fields: graphql.Fields{
		{
			Name:        "id",
			Description: "The ID of the object.",
			Type:        graphql.MustNewNonNullOf(graphql.ID()),
		},
	},
})

// NodeInterface returns the Node interface. Object types that implement it can be refetched by
// their global ID.
func NodeInterface() *graphql.Interface {
	return nodeInterfaceInstance
}

// IsNodeInterface returns true if iface is the Node interface.
func IsNodeInterface(iface *graphql.Interface) bool {
	return iface == nodeInterfaceInstance
}

// GlobalID identifies an object across all types in a schema.
type GlobalID struct {
	// Type is the name of the object type.
	Type string

	// ID is the identifier of the object within its type.
	ID string
}

// String returns the opaque encoding of id.
func (id GlobalID) String() string {
	return ToGlobalID(id.Type, id.ID)
}

// ToGlobalID takes a type name and an ID specific to that type name, and returns a "global ID" that
// is unique among all types.
func ToGlobalID(typeName string, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + id))
}

// FromGlobalID takes the "global ID" created by ToGlobalID, and returns the type name and ID used
// to create it.
func FromGlobalID(globalID string) (GlobalID, error) {
	decoded, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return GlobalID{}, graphql.NewError("Invalid global ID "+strconv.Quote(globalID)+".", err,
			graphql.ErrKindCoercion)
	}

	s := string(decoded)
	sep := strings.IndexByte(s, ':')
	if sep <= 0 {
		return GlobalID{}, graphql.NewError("Invalid global ID "+strconv.Quote(globalID)+".",
			graphql.ErrKindCoercion)
	}

	return GlobalID{
		Type: s[:sep],
		ID:   s[sep+1:],
	}, nil
}

// IDFetcher returns the global ID of the object resolved by the enclosing field.
type IDFetcher func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (string, error)

// GlobalIDField returns the definition of an "id" field that resolves to the global ID of source.
// The type part of the global ID is the name of typeName.
func GlobalIDField(typeName string, fetcher IDFetcher) *graphql.FieldConfig {
	return &graphql.FieldConfig{
		Name:        "id",
		Description: "The ID of an object",
		Type:        graphql.MustNewNonNullOf(graphql.ID()),
		Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			id, err := fetcher(ctx, source, info)
			if err != nil {
				return nil, err
			}
			return ToGlobalID(typeName, id), nil
		}),
	}
}
