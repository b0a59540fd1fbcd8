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
	"github.com/botobag/artemis-mongo/binding"
	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var (
		catalog  *document.Catalog
		person   *document.Model
		registry *binding.Registry
	)

	BeforeEach(func() {
		catalog = document.NewCatalog()
		person = document.MustNewModel(&document.ModelConfig{
			Name: "Person",
			Fields: []*document.Field{
				{Name: "name", Kind: document.KindString},
			},
			Catalog: catalog,
		})
		registry = binding.NewRegistry()
	})

	AfterEach(func() {
		binding.ResetGlobalRegistry()
	})

	It("returns nil for unbound models", func() {
		Expect(registry.TypeForDocument(person)).Should(BeNil())
		Expect(registry.TypeForDocument(nil)).Should(BeNil())
		Expect(registry.TypeForName("Person")).Should(BeNil())
		Expect(registry.Types()).Should(BeEmpty())
	})

	It("registers object types on creation", func() {
		personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document: person,
			Registry: registry,
		})
		Expect(registry.TypeForDocument(person)).Should(Equal(personType))
		Expect(registry.TypeForName("Person")).Should(Equal(personType))
		Expect(registry.Types()).Should(Equal([]*binding.ObjectType{personType}))
	})

	It("rejects binding a model twice", func() {
		binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document: person,
			Registry: registry,
		})

		_, err := binding.NewObjectType(&binding.ObjectTypeConfig{
			Name:     "Human",
			Document: person,
			Registry: registry,
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindConfiguration),
			testutil.WrapErrorMatching(testutil.MatchGraphQLError(
				testutil.MessageEqual("Document Person is already bound to type Person; cannot register Human."),
				testutil.OpIs("binding.Registry.Register"),
			)),
		))
	})

	It("rejects duplicated type names", func() {
		binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document: person,
			Registry: registry,
		})

		robot := document.MustNewModel(&document.ModelConfig{
			Name:    "Robot",
			Catalog: catalog,
		})
		_, err := binding.NewObjectType(&binding.ObjectTypeConfig{
			Name:     "Person",
			Document: robot,
			Registry: registry,
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindConfiguration),
		))
		Expect(registry.TypeForDocument(robot)).Should(BeNil())
	})

	It("ignores registering the same type again", func() {
		personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document:     person,
			Registry:     registry,
			SkipRegistry: true,
		})
		Expect(registry.TypeForDocument(person)).Should(BeNil())

		Expect(registry.Register(personType)).Should(Succeed())
		Expect(registry.Register(personType)).Should(Succeed())
		Expect(registry.Types()).Should(HaveLen(1))
	})

	It("rejects types built for another registry", func() {
		personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document:     person,
			Registry:     binding.NewRegistry(),
			SkipRegistry: true,
		})

		err := registry.Register(personType)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring("Registry for a document has to match"),
			testutil.KindIs(graphql.ErrKindConfiguration),
		))
		Expect(registry.Register(nil)).ShouldNot(Succeed())
	})

	It("keeps registries independent", func() {
		other := binding.NewRegistry()
		personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document: person,
			Registry: registry,
		})
		Expect(other.TypeForDocument(person)).Should(BeNil())

		otherType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
			Document: person,
			Registry: other,
		})
		Expect(other.TypeForDocument(person)).Should(Equal(otherType))
		Expect(registry.TypeForDocument(person)).Should(BeIdenticalTo(personType))
	})

	Describe("global registry", func() {
		It("is shared until reset", func() {
			global := binding.GlobalRegistry()
			Expect(binding.GlobalRegistry()).Should(BeIdenticalTo(global))

			binding.ResetGlobalRegistry()
			Expect(binding.GlobalRegistry()).ShouldNot(BeIdenticalTo(global))
		})

		It("is used when no registry is given", func() {
			personType := binding.MustNewObjectType(&binding.ObjectTypeConfig{
				Document: person,
			})
			Expect(personType.Registry()).Should(BeIdenticalTo(binding.GlobalRegistry()))
			Expect(binding.GlobalRegistry().TypeForDocument(person)).Should(BeIdenticalTo(personType))

			binding.ResetGlobalRegistry()
			Expect(binding.GlobalRegistry().TypeForDocument(person)).Should(BeNil())
		})
	})
})
