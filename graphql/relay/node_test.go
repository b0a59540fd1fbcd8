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

package relay_test

import (
	"context"

	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
	"github.com/botobag/artemis-mongo/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Node", func() {
	It("round trips global IDs", func() {
		globalID := relay.ToGlobalID("Person", "5c8f0d9a")
		Expect(globalID).Should(Equal("UGVyc29uOjVjOGYwZDlh"))

		id, err := relay.FromGlobalID(globalID)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(id).Should(Equal(relay.GlobalID{Type: "Person", ID: "5c8f0d9a"}))
		Expect(id.String()).Should(Equal(globalID))
	})

	It("keeps colons in the ID part", func() {
		id, err := relay.FromGlobalID(relay.ToGlobalID("Doc", "a:b"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(id).Should(Equal(relay.GlobalID{Type: "Doc", ID: "a:b"}))
	})

	It("rejects malformed global IDs", func() {
		_, err := relay.FromGlobalID("!!!")
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Invalid global ID "!!!".`),
			testutil.KindIs(graphql.ErrKindCoercion),
		))

		// "nocolon"
		_, err = relay.FromGlobalID("bm9jb2xvbg==")
		Expect(err).Should(HaveOccurred())
	})

	It("defines the Node interface", func() {
		node := relay.NodeInterface()
		Expect(node.Name()).Should(Equal("Node"))
		Expect(node.Field("id").Type().String()).Should(Equal("ID!"))
		Expect(relay.IsNodeInterface(node)).Should(BeTrue())
		Expect(relay.IsNodeInterface(graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Node",
		}))).Should(BeFalse())
	})

	It("builds a global ID field", func() {
		config := relay.GlobalIDField("Person", func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (string, error) {
			return source.(string), nil
		})
		Expect(config.Name).Should(Equal("id"))
		Expect(config.Type.String()).Should(Equal("ID!"))

		value, err := config.Resolver.Resolve(context.Background(), "42", nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(relay.ToGlobalID("Person", "42")))
	})
})

var _ = Describe("Cursor", func() {
	It("round trips offsets", func() {
		for _, offset := range []int{0, 1, 9, 10, 12345} {
			Expect(relay.CursorToOffset(relay.OffsetToCursor(offset))).Should(Equal(offset))
		}
		Expect(relay.OffsetToCursor(0)).Should(Equal("YXJyYXljb25uZWN0aW9uOjA="))
	})

	It("falls back to the default on invalid cursors", func() {
		Expect(relay.OffsetWithDefault("", 7)).Should(Equal(7))
		Expect(relay.OffsetWithDefault("garbage", 7)).Should(Equal(7))
		// "arrayconnection:x"
		Expect(relay.OffsetWithDefault("YXJyYXljb25uZWN0aW9uOng=", 7)).Should(Equal(7))
		Expect(relay.OffsetWithDefault(relay.OffsetToCursor(3), 7)).Should(Equal(3))
	})
})
