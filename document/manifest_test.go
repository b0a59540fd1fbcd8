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

package document_test

import (
	"strings"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const testManifest = `
models:
  - name: Person
    collection: people
    description: A person
    fields:
      - name: name
        kind: StringField
        required: true
        description: Full name
      - name: company
        kind: reference
        document: Company
      - name: tags
        kind: ListField
        field:
          kind: StringField
      - name: size
        kind: StringField
        choices: [S, M, L]
  - name: Company
    kind: Document
    id_field: code
    fields:
      - name: code
        kind: StringField
  - name: Address
    kind: EmbeddedDocument
    fields:
      - name: street
        kind: StringField
`

var _ = Describe("Manifest", func() {
	It("declares models", func() {
		catalog := document.NewCatalog()
		models, err := document.LoadManifest(strings.NewReader(testManifest), catalog)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(models).Should(HaveLen(3))

		person, company, address := models[0], models[1], models[2]
		Expect(person.Name()).Should(Equal("Person"))
		Expect(person.Description()).Should(Equal("A person"))
		Expect(person.Field("name").Required).Should(BeTrue())
		Expect(person.Field("name").Description).Should(Equal("Full name"))
		Expect(person.Field("company").Kind).Should(Equal(document.KindReference))
		Expect(person.Field("company").Target()).Should(Equal(company))
		Expect(person.Field("tags").Field.Kind).Should(Equal(document.KindString))
		Expect(person.Field("size").Choices).Should(Equal([]interface{}{"S", "M", "L"}))
		Expect(company.IDField()).Should(Equal("code"))
		Expect(address.Kind()).Should(Equal(document.ModelEmbeddedDocument))
		Expect(catalog.Lookup("Address")).Should(Equal(address))
	})

	It("reports collections", func() {
		manifest, err := document.ParseManifest(strings.NewReader(testManifest))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(manifest.Collections()).Should(Equal(map[string]string{"Person": "people"}))
	})

	It("rejects unknown kinds and keys", func() {
		_, err := document.ParseManifest(strings.NewReader(`
models:
  - name: Person
    fields:
      - name: blob
        kind: BlobField
`))
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsErrKind(err, graphql.ErrKindConfiguration)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring(`unknown field kind "BlobField"`))

		_, err = document.ParseManifest(strings.NewReader(`
models:
  - name: Person
    colour: blue
`))
		Expect(err).Should(HaveOccurred())
	})

	It("accepts an empty manifest", func() {
		models, err := document.LoadManifest(strings.NewReader(""), document.NewCatalog())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(models).Should(BeEmpty())
	})
})
