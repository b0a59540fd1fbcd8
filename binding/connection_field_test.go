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

package binding_test

import (
	"context"

	"github.com/botobag/artemis-mongo/binding"
	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
	"github.com/botobag/artemis-mongo/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// recordingQueryable records the pages requested from a SliceQueryable.
type recordingQueryable struct {
	*document.SliceQueryable
	slices [][2]int
}

func (q *recordingQueryable) Slice(ctx context.Context, offset int, limit int) ([]interface{}, error) {
	q.slices = append(q.slices, [2]int{offset, limit})
	return q.SliceQueryable.Slice(ctx, offset, limit)
}

var _ = Describe("ConnectionField", func() {
	var (
		registry   *binding.Registry
		person     *document.Model
		personType *binding.ObjectType
		people     []interface{}
		queryable  *recordingQueryable
	)

	BeforeEach(func() {
		registry = binding.NewRegistry()
		person = document.MustNewModel(&document.ModelConfig{
			Name: "Person",
			Fields: []*document.Field{
				{Name: "name", Kind: document.KindString},
			},
			Catalog: document.NewCatalog(),
		})
		personType = binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document:   person,
			Registry:   registry,
			Interfaces: []*graphql.Interface{relay.NodeInterface()},
		})
		people = newInstances(person, 10)
		queryable = &recordingQueryable{
			SliceQueryable: document.NewSliceQueryable(people...),
		}
		person.SetQueryset(document.DefaultQuerysetAttr, queryable)
	})

	// resolve calls the resolver of the connection field with args.
	resolve := func(parent graphql.FieldResolver, args map[string]interface{}) (*relay.ConnectionResult, error) {
		config, err := binding.NewConnectionField(personType, parent)
		Expect(err).ShouldNot(HaveOccurred())

		info := graphql.NewResolveInfo(nil, nil, nil, graphql.NewArgumentValues(args))
		value, err := config.Resolver.Resolve(context.Background(), nil, info)
		if err != nil {
			return nil, err
		}
		return value.(*relay.ConnectionResult), nil
	}

	nodesOf := func(result *relay.ConnectionResult) []interface{} {
		nodes := make([]interface{}, len(result.Edges))
		for i, edge := range result.Edges {
			nodes[i] = edge.Node
		}
		return nodes
	}

	It("defines a field of the connection type", func() {
		config, err := binding.NewConnectionField(personType, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Type).Should(Equal(personType.Connection().Object()))
		Expect(config.Args).Should(HaveLen(5))
		Expect(config.Args[4].Name).Should(Equal(binding.QuerysetAttrArg))
	})

	It("rejects types without connection", func() {
		plain := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Name:     "PlainPerson",
			Document: person,
			Registry: binding.NewRegistry(),
		})
		_, err := binding.NewConnectionField(plain, nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("The type PlainPerson doesn't have a connection."),
			testutil.KindIs(graphql.ErrKindConfiguration),
		))
	})

	It("pages forward from the start", func() {
		result, err := resolve(nil, map[string]interface{}{"first": 3})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(idsOf(nodesOf(result))).Should(Equal([]string{"0", "1", "2"}))
		Expect(result.PageInfo.HasNextPage).Should(BeTrue())
		Expect(result.PageInfo.HasPreviousPage).Should(BeFalse())
		Expect(result.PageInfo.StartCursor).Should(Equal(relay.OffsetToCursor(0)))
		Expect(result.PageInfo.EndCursor).Should(Equal(relay.OffsetToCursor(2)))
		Expect(result.Length).Should(Equal(10))
		Expect(result.Iterable).Should(BeIdenticalTo(queryable))

		// Only the page is loaded.
		Expect(queryable.slices).Should(Equal([][2]int{{0, 3}}))
	})

	It("pages forward after a cursor", func() {
		result, err := resolve(nil, map[string]interface{}{
			"first": 3,
			"after": relay.OffsetToCursor(2),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(idsOf(nodesOf(result))).Should(Equal([]string{"3", "4", "5"}))
		Expect(result.Edges[0].Cursor).Should(Equal(relay.OffsetToCursor(3)))
		Expect(result.PageInfo.HasNextPage).Should(BeTrue())
		Expect(queryable.slices).Should(Equal([][2]int{{3, 3}}))
	})

	It("pages backward from the end", func() {
		result, err := resolve(nil, map[string]interface{}{"last": 2})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(idsOf(nodesOf(result))).Should(Equal([]string{"8", "9"}))
		Expect(result.PageInfo.HasPreviousPage).Should(BeTrue())
		Expect(result.PageInfo.HasNextPage).Should(BeFalse())
	})

	It("returns all documents without arguments", func() {
		result, err := resolve(nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Edges).Should(HaveLen(10))
		Expect(result.PageInfo.HasNextPage).Should(BeFalse())
		Expect(result.PageInfo.HasPreviousPage).Should(BeFalse())
	})

	It("returns an empty page past the end", func() {
		result, err := resolve(nil, map[string]interface{}{
			"first": 5,
			"after": relay.OffsetToCursor(9),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Edges).Should(BeEmpty())
		Expect(result.PageInfo.HasNextPage).Should(BeFalse())
		Expect(result.PageInfo.StartCursor).Should(BeEmpty())
	})

	It("reads the queryset selected by argument", func() {
		archived := document.NewSliceQueryable(people[5:]...)
		person.SetQueryset("archived", archived)

		result, err := resolve(nil, map[string]interface{}{
			"first":                 2,
			binding.QuerysetAttrArg: "archived",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(idsOf(nodesOf(result))).Should(Equal([]string{"5", "6"}))
		Expect(result.Length).Should(Equal(5))
	})

	It("slices the list resolved by the parent", func() {
		parent := graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			return []interface{}{people[7], people[3], people[1]}, nil
		})

		result, err := resolve(parent, map[string]interface{}{"first": 2})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(idsOf(nodesOf(result))).Should(Equal([]string{"7", "3"}))
		Expect(result.Length).Should(Equal(3))
		Expect(result.PageInfo.HasNextPage).Should(BeTrue())
		Expect(queryable.slices).Should(BeEmpty())
	})

	It("loads documents listed by identifier", func() {
		parent := graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			return []string{"4", "2"}, nil
		})

		result, err := resolve(parent, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(nodesOf(result)).Should(Equal([]interface{}{people[4], people[2]}))
	})

	It("falls back to the queryset when the parent yields nothing", func() {
		parent := graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			return nil, nil
		})

		result, err := resolve(parent, map[string]interface{}{"first": 1})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Length).Should(Equal(10))
	})

	It("fails on values that cannot be paged", func() {
		parent := graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
			return 42, nil
		})

		_, err := resolve(parent, nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindInternal),
		))
	})

	It("rejects negative page sizes", func() {
		_, err := resolve(nil, map[string]interface{}{"first": -1})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Argument 'first' must be a non-negative integer."),
			testutil.KindIs(graphql.ErrKindCoercion),
		))
	})

	It("requires a queryset when there's nothing to page", func() {
		person.SetQueryset(document.DefaultQuerysetAttr, nil)

		_, err := resolve(nil, nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("A queryset in the document is required for querying."),
		))
	})
})
