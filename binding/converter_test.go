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

// countingQueryable counts the documents looked up by identifier.
type countingQueryable struct {
	*document.SliceQueryable
	gets int
}

func (q *countingQueryable) Get(ctx context.Context, id interface{}) (interface{}, error) {
	q.gets++
	return q.SliceQueryable.Get(ctx, id)
}

var _ = Describe("Convert", func() {
	var (
		catalog  *document.Catalog
		registry *binding.Registry
	)

	BeforeEach(func() {
		catalog = document.NewCatalog()
		registry = binding.NewRegistry()
	})

	// declare attaches fields to a new model in catalog.
	declare := func(name string, fields ...*document.Field) *document.Model {
		return document.MustNewModel(&document.ModelConfig{
			Name:    name,
			Fields:  fields,
			Catalog: catalog,
		})
	}

	scalarKinds := []struct {
		kind     document.Kind
		expected graphql.Type
	}{
		{document.KindString, graphql.String()},
		{document.KindURL, graphql.String()},
		{document.KindEmail, graphql.String()},
		{document.KindInt, graphql.Int()},
		{document.KindLong, graphql.Int()},
		{document.KindSequence, graphql.Int()},
		{document.KindFloat, graphql.Float()},
		{document.KindDecimal, graphql.Float()},
		{document.KindBoolean, graphql.Boolean()},
		{document.KindDateTime, graphql.DateTime()},
		{document.KindComplexDateTime, graphql.DateTime()},
		{document.KindObjectID, graphql.ID()},
		{document.KindUUID, graphql.ID()},
		{document.KindBinary, graphql.String()},
		{document.KindFile, graphql.String()},
		{document.KindImage, graphql.String()},
		{document.KindGeoPoint, graphql.JSONString()},
		{document.KindPoint, graphql.JSONString()},
		{document.KindLineString, graphql.JSONString()},
		{document.KindPolygon, graphql.JSONString()},
		{document.KindMultiPoint, graphql.JSONString()},
		{document.KindMultiLineString, graphql.JSONString()},
		{document.KindMultiPolygon, graphql.JSONString()},
		{document.KindDict, graphql.JSONString()},
		{document.KindMap, graphql.JSONString()},
		{document.KindDynamic, graphql.JSONString()},
		{document.KindGenericReference, graphql.JSONString()},
		{document.KindGenericLazyReference, graphql.JSONString()},
		{document.KindGenericEmbeddedDocument, graphql.JSONString()},
	}

	for _, s := range scalarKinds {
		kind, expected := s.kind, s.expected

		It("converts "+kind.String()+" to "+expected.String(), func() {
			field := &document.Field{Name: "value", Kind: kind, Description: "A value"}
			declare("Sample", field)

			config, err := binding.Convert(field, registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Name).Should(Equal("value"))
			Expect(config.Description).Should(Equal("A value"))
			Expect(config.Type).Should(Equal(expected))
			Expect(config.Deferred).Should(BeNil())
		})

		It("wraps required "+kind.String()+" in NonNull", func() {
			field := &document.Field{Name: "value", Kind: kind, Required: true}
			declare("Sample", field)

			config, err := binding.Convert(field, registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Description).Should(BeEmpty())
			Expect(config.Type).Should(BeAssignableToTypeOf(&graphql.NonNull{}))
			Expect(config.Type.(*graphql.NonNull).InnerType()).Should(Equal(expected))
		})
	}

	It("rejects unknown kinds", func() {
		_, err := binding.Convert(&document.Field{Name: "weird"}, registry)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Don't know how to convert the document field weird (Invalid)"),
			testutil.KindIs(graphql.ErrKindConfiguration),
		))

		_, err = binding.Convert(&document.Field{Name: "weird", Kind: document.Kind(200)}, registry)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring("Kind(200)"),
		))
	})

	It("accepts converters for additional kinds", func() {
		kind := document.Kind(201)
		binding.RegisterConverter(kind, func(field *document.Field, registry *binding.Registry) (*graphql.FieldConfig, error) {
			return &graphql.FieldConfig{
				Name: field.Name,
				Type: graphql.Boolean(),
			}, nil
		})
		defer binding.RegisterConverter(kind, nil)

		config, err := binding.Convert(&document.Field{Name: "flag", Kind: kind}, registry)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config.Type).Should(Equal(graphql.Boolean()))
	})

	Describe("lists", func() {
		It("converts the inner field", func() {
			inner := &document.Field{Kind: document.KindInt, Required: true}
			field := &document.Field{Name: "scores", Kind: document.KindList, Field: inner}
			declare("Sample", field)

			innerConfig, err := binding.Convert(inner, registry)
			Expect(err).ShouldNot(HaveOccurred())

			config, err := binding.Convert(field, registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Type).Should(BeAssignableToTypeOf(&graphql.List{}))
			Expect(config.Type.(*graphql.List).ElementType()).Should(Equal(innerConfig.Type))
			Expect(config.Type.String()).Should(Equal("[Int!]"))
		})

		It("holds strings when there's no inner field", func() {
			field := &document.Field{Name: "tags", Kind: document.KindSortedList, Required: true}
			declare("Sample", field)

			config, err := binding.Convert(field, registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Type.String()).Should(Equal("[String]!"))
		})

		It("fails when the inner field cannot be converted", func() {
			field := &document.Field{
				Name:  "values",
				Kind:  document.KindList,
				Field: &document.Field{Kind: document.Kind(202)},
			}

			_, err := binding.Convert(field, registry)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindConfiguration),
			))
		})
	})

	Describe("document fields", func() {
		var (
			person  *document.Model
			company *document.Model
		)

		BeforeEach(func() {
			person = declare("Person",
				&document.Field{Name: "name", Kind: document.KindString},
				&document.Field{
					Name:         "company",
					Kind:         document.KindReference,
					DocumentName: "Company",
					Description:  "Employer",
					Required:     true,
				},
				&document.Field{
					Name:  "friends",
					Kind:  document.KindList,
					Field: &document.Field{Kind: document.KindReference, DocumentName: "Person"},
				},
			)
			company = declare("Company",
				&document.Field{Name: "name", Kind: document.KindString},
			)
		})

		It("stays unresolved until the target model is bound", func() {
			config, err := binding.Convert(person.Field("company"), registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Name).Should(Equal("company"))
			Expect(config.Description).Should(Equal("Employer"))
			Expect(config.Type).Should(BeNil())
			Expect(config.Deferred).ShouldNot(BeNil())
			Expect(config.Deferred().Resolved()).Should(BeFalse())

			companyType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document: company,
				Registry: registry,
			})

			resolution := config.Deferred()
			Expect(resolution.Resolved()).Should(BeTrue())
			Expect(resolution.Field().Type).Should(Equal(graphql.MustNewNonNullOf(companyType.Object())))

			// Resolution can be repeated.
			again := config.Deferred()
			Expect(again.Resolved()).Should(BeTrue())
			Expect(again.Field().Type.String()).Should(Equal(resolution.Field().Type.String()))
		})

		It("ignores bindings in other registries", func() {
			config, err := binding.Convert(person.Field("company"), registry)
			Expect(err).ShouldNot(HaveOccurred())

			binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document: company,
				Registry: binding.NewRegistry(),
			})
			Expect(config.Deferred().Resolved()).Should(BeFalse())
		})

		It("dereferences stored identifiers", func() {
			acme := document.NewInstance(company, map[string]interface{}{"id": "acme", "name": "ACME"})
			company.SetQueryset(document.DefaultQuerysetAttr, document.NewSliceQueryable(acme))
			binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document: company,
				Registry: registry,
			})

			config, err := binding.Convert(person.Field("company"), registry)
			Expect(err).ShouldNot(HaveOccurred())
			resolver := config.Deferred().Field().Resolver

			alice := document.NewInstance(person, map[string]interface{}{"company": "acme"})
			Expect(resolver.Resolve(context.Background(), alice, nil)).Should(Equal(acme))

			bob := document.NewInstance(person, map[string]interface{}{"company": acme})
			Expect(resolver.Resolve(context.Background(), bob, nil)).Should(Equal(acme))

			carol := document.NewInstance(person, map[string]interface{}{"company": "unknown"})
			Expect(resolver.Resolve(context.Background(), carol, nil)).Should(BeNil())
		})

		It("converts lists of documents to lists of the bound type", func() {
			config, err := binding.Convert(person.Field("friends"), registry)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(config.Deferred().Resolved()).Should(BeFalse())

			binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document:       person,
				Registry:       registry,
				ConnectionMode: binding.ConnectionDisabled,
			})

			resolution := config.Deferred()
			Expect(resolution.Resolved()).Should(BeTrue())
			Expect(resolution.Field().Type.String()).Should(Equal("[Person]"))
			Expect(resolution.Field().Args).Should(BeEmpty())
		})

		It("converts lists of documents to connections of the bound type", func() {
			config, err := binding.Convert(person.Field("friends"), registry)
			Expect(err).ShouldNot(HaveOccurred())

			personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document:       person,
				Registry:       registry,
				ConnectionMode: binding.ConnectionEnabled,
			})

			resolution := config.Deferred()
			Expect(resolution.Resolved()).Should(BeTrue())
			Expect(resolution.Field().Type).Should(Equal(personType.Connection().Object()))

			var argNames []string
			for _, arg := range resolution.Field().Args {
				argNames = append(argNames, arg.Name)
			}
			Expect(argNames).Should(Equal([]string{"before", "after", "first", "last", "querysetAttr"}))
		})

		It("loads only the referenced documents of the requested page", func() {
			people := newInstances(person, 100)
			queryable := &countingQueryable{SliceQueryable: document.NewSliceQueryable(people...)}
			person.SetQueryset(document.DefaultQuerysetAttr, queryable)

			binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document:       person,
				Registry:       registry,
				ConnectionMode: binding.ConnectionEnabled,
			})

			config, err := binding.Convert(person.Field("friends"), registry)
			Expect(err).ShouldNot(HaveOccurred())
			resolution := config.Deferred()
			Expect(resolution.Resolved()).Should(BeTrue())

			alice := document.NewInstance(person, map[string]interface{}{"friends": idsOf(people)})
			info := graphql.NewResolveInfo(nil, nil, nil, graphql.NewArgumentValues(map[string]interface{}{
				"first": 1,
			}))
			value, err := resolution.Field().Resolver.Resolve(context.Background(), alice, info)
			Expect(err).ShouldNot(HaveOccurred())

			result := value.(*relay.ConnectionResult)
			Expect(result.Edges).Should(HaveLen(1))
			Expect(result.Edges[0].Node).Should(Equal(people[0]))
			Expect(result.Length).Should(Equal(100))
			Expect(queryable.gets).Should(Equal(1))
		})

		It("creates connection fields with the factory of the registry", func() {
			var created *binding.ObjectType
			registry.SetConnectionFieldFactory(func(t *binding.ObjectType, parent graphql.FieldResolver) (*graphql.FieldConfig, error) {
				created = t
				return &graphql.FieldConfig{
					Type: t.Connection().Object(),
					Args: relay.ConnectionArgs(),
				}, nil
			})

			config, err := binding.Convert(person.Field("friends"), registry)
			Expect(err).ShouldNot(HaveOccurred())

			personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document:       person,
				Registry:       registry,
				ConnectionMode: binding.ConnectionEnabled,
			})

			resolution := config.Deferred()
			Expect(resolution.Resolved()).Should(BeTrue())
			Expect(resolution.Field().Args).Should(HaveLen(4))
			Expect(created).Should(Equal(personType))

			registry.ResetConnectionFieldFactory()
			Expect(config.Deferred().Field().Args).Should(HaveLen(5))
		})
	})
})
