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

package graphql_test

import (
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schema", func() {
	var (
		types         map[string]*graphql.Object
		nodeInterface *graphql.Interface
	)

	// deferredTo returns a DeferredFieldFunc that looks up the named object from types.
	deferredTo := func(name string) graphql.DeferredFieldFunc {
		return func() graphql.FieldResolution {
			t, exists := types[name]
			if !exists {
				return graphql.Unresolved
			}
			return graphql.ResolvedField(&graphql.FieldConfig{
				Type: t,
			})
		}
	}

	BeforeEach(func() {
		types = map[string]*graphql.Object{}
		nodeInterface = graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Node",
			Fields: graphql.Fields{
				{Name: "id", Type: graphql.MustNewNonNullOf(graphql.ID())},
			},
		})
	})

	It("resolves mutually referencing objects", func() {
		types["Person"] = graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "Person",
			Interfaces: []*graphql.Interface{nodeInterface},
			Fields: graphql.Fields{
				{Name: "id", Type: graphql.MustNewNonNullOf(graphql.ID())},
				{Name: "company", Deferred: deferredTo("Company")},
			},
		})
		// Company is defined after Person refers to it.
		types["Company"] = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Company",
			Fields: graphql.Fields{
				{Name: "ceo", Deferred: deferredTo("Person")},
				{Name: "founded", Type: graphql.DateTime()},
			},
		})

		query := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				{Name: "person", Type: types["Person"]},
			},
		})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(schema.Query()).Should(Equal(query))
		Expect(schema.Type("Company")).Should(Equal(types["Company"]))
		Expect(schema.Type("DateTime")).Should(Equal(graphql.DateTime()))
		Expect(schema.Type("Node")).Should(Equal(nodeInterface))
		Expect(schema.TypeNames()).Should(Equal([]string{
			"Company", "DateTime", "ID", "Node", "Person", "Query",
		}))
		Expect(schema.PossibleTypes(nodeInterface)).Should(Equal([]*graphql.Object{types["Person"]}))
		Expect(types["Person"].Field("company").Type()).Should(Equal(types["Company"]))
		Expect(types["Company"].Field("ceo").Type()).Should(Equal(types["Person"]))
	})

	It("fails on fields that remain unresolved", func() {
		person := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			Fields: graphql.Fields{
				{Name: "company", Deferred: deferredTo("Company")},
			},
		})

		_, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "person", Type: person},
				},
			}),
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Cannot resolve the type of Person.company."),
			testutil.KindIs(graphql.ErrKindResolution),
			testutil.OpIs("graphql.NewSchema"),
		))
		Expect(graphql.IsErrKind(err, graphql.ErrKindResolution)).Should(BeTrue())
	})

	It("includes additional types", func() {
		orphan := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Orphan",
			Fields: graphql.Fields{
				{Name: "value", Type: graphql.JSONString()},
			},
		})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "hello", Type: graphql.String()},
				},
			}),
			Types: []graphql.Type{orphan},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.Type("Orphan")).Should(Equal(orphan))
		Expect(schema.Type("JSONString")).Should(Equal(graphql.JSONString()))
	})

	It("rejects types with duplicate names", func() {
		a := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:   "Same",
			Fields: graphql.Fields{{Name: "a", Type: graphql.String()}},
		})
		b := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:   "Same",
			Fields: graphql.Fields{{Name: "b", Type: graphql.String()}},
		})

		_, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "a", Type: a},
					{Name: "b", Type: b},
				},
			}),
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(
			"Schema must contain unique named types but contains multiple types named Same."))
	})

	It("requires a query type", func() {
		_, err := graphql.NewSchema(&graphql.SchemaConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide query type for Schema."),
		))
	})
})
