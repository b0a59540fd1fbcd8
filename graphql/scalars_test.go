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
	"math"
	"time"

	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

func MatchCoercionError(message string) types.GomegaMatcher {
	return testutil.MatchGraphQLError(
		testutil.MessageEqual(message),
		testutil.KindIs(graphql.ErrKindCoercion),
	)
}

type hexID string

func (id hexID) Hex() string {
	return "hex:" + string(id)
}

type mongoTime struct {
	t time.Time
}

func (m mongoTime) Time() time.Time {
	return m.t
}

var _ = Describe("Scalars", func() {
	It("serializes output as Int", func() {
		Expect(graphql.Int().CoerceResultValue(1)).Should(Equal(1))
		Expect(graphql.Int().CoerceResultValue(int64(123))).Should(Equal(123))
		Expect(graphql.Int().CoerceResultValue(uint8(7))).Should(Equal(7))
		Expect(graphql.Int().CoerceResultValue(-1)).Should(Equal(-1))
		Expect(graphql.Int().CoerceResultValue(1e5)).Should(Equal(100000))
		Expect(graphql.Int().CoerceResultValue("42")).Should(Equal(42))
		Expect(graphql.Int().CoerceResultValue(false)).Should(Equal(0))
		Expect(graphql.Int().CoerceResultValue(true)).Should(Equal(1))

		var err error
		_, err = graphql.Int().CoerceResultValue(0.1)
		Expect(err).Should(MatchCoercionError("Int cannot represent 0.1: not an integer"))

		_, err = graphql.Int().CoerceResultValue("-1.1")
		Expect(err).Should(MatchCoercionError("Int cannot represent \"-1.1\": not an integer"))

		_, err = graphql.Int().CoerceResultValue(9876504321)
		Expect(err).Should(MatchCoercionError("Int cannot represent 9876504321: value too large for 32-bit signed integer"))

		_, err = graphql.Int().CoerceResultValue(-9876504321)
		Expect(err).Should(MatchCoercionError("Int cannot represent -9876504321: value too small for 32-bit signed integer"))

		_, err = graphql.Int().CoerceResultValue(math.NaN())
		Expect(err).Should(MatchCoercionError("Int cannot represent NaN: not an integer"))

		_, err = graphql.Int().CoerceResultValue([]int{5})
		Expect(err).Should(MatchCoercionError("Int cannot represent [5]: not an integer"))
	})

	It("serializes output as Float", func() {
		Expect(graphql.Float().CoerceResultValue(1)).Should(Equal(1.0))
		Expect(graphql.Float().CoerceResultValue("123.5")).Should(Equal(123.5))
		Expect(graphql.Float().CoerceResultValue(-1.1)).Should(Equal(-1.1))
		Expect(graphql.Float().CoerceResultValue(true)).Should(Equal(1.0))

		var err error
		_, err = graphql.Float().CoerceResultValue(math.Inf(1))
		Expect(err).Should(MatchCoercionError("Float cannot represent +Inf: not a numeric value"))

		_, err = graphql.Float().CoerceResultValue("NaN")
		Expect(err).Should(MatchCoercionError("Float cannot represent \"NaN\": not a numeric value"))

		_, err = graphql.Float().CoerceResultValue("one")
		Expect(err).Should(MatchCoercionError("Float cannot represent \"one\": not a numeric value"))
	})

	It("serializes output as String", func() {
		Expect(graphql.String().CoerceResultValue("string")).Should(Equal("string"))
		Expect(graphql.String().CoerceResultValue(1)).Should(Equal("1"))
		Expect(graphql.String().CoerceResultValue(uint(100))).Should(Equal("100"))
		Expect(graphql.String().CoerceResultValue(-1.1)).Should(Equal("-1.1"))
		Expect(graphql.String().CoerceResultValue(true)).Should(Equal("true"))
		Expect(graphql.String().CoerceResultValue([]byte("hi"))).Should(Equal("aGk="))

		_, err := graphql.String().CoerceResultValue([]int{1})
		Expect(err).Should(MatchCoercionError("String cannot represent [1]: unsupported value"))
	})

	It("serializes output as Boolean", func() {
		Expect(graphql.Boolean().CoerceResultValue(true)).Should(Equal(true))
		Expect(graphql.Boolean().CoerceResultValue(0)).Should(Equal(false))
		Expect(graphql.Boolean().CoerceResultValue(uint(3))).Should(Equal(true))

		_, err := graphql.Boolean().CoerceResultValue("true")
		Expect(err).Should(MatchCoercionError("Boolean cannot represent \"true\": not a boolean value"))
	})

	It("serializes output as ID", func() {
		Expect(graphql.ID().CoerceResultValue("string")).Should(Equal("string"))
		Expect(graphql.ID().CoerceResultValue(123)).Should(Equal("123"))
		Expect(graphql.ID().CoerceResultValue(hexID("5c"))).Should(Equal("hex:5c"))

		_, err := graphql.ID().CoerceResultValue(1.5)
		Expect(err).Should(MatchCoercionError("ID cannot represent 1.5: unsupported value"))
	})

	It("serializes output as DateTime", func() {
		t := time.Date(2019, time.March, 4, 5, 6, 7, 0, time.UTC)
		Expect(graphql.DateTime().CoerceResultValue(t)).Should(Equal("2019-03-04T05:06:07Z"))
		Expect(graphql.DateTime().CoerceResultValue(&t)).Should(Equal("2019-03-04T05:06:07Z"))
		Expect(graphql.DateTime().CoerceResultValue(mongoTime{t})).Should(Equal("2019-03-04T05:06:07Z"))
		Expect(graphql.DateTime().CoerceResultValue("2019-03-04T05:06:07Z")).Should(Equal("2019-03-04T05:06:07Z"))

		_, err := graphql.DateTime().CoerceResultValue("yesterday")
		Expect(err).Should(MatchCoercionError("DateTime cannot represent \"yesterday\": not a time value"))
	})

	It("serializes output as JSONString", func() {
		Expect(graphql.JSONString().CoerceResultValue(map[string]interface{}{
			"type":        "Point",
			"coordinates": []float64{1.5, 2},
		})).Should(MatchJSON(`{"type":"Point","coordinates":[1.5,2]}`))
		Expect(graphql.JSONString().CoerceResultValue("text")).Should(Equal(`"text"`))
		Expect(graphql.JSONString().CoerceResultValue(nil)).Should(Equal("null"))

		_, err := graphql.JSONString().CoerceResultValue(make(chan int))
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("JSONString cannot represent chan int"),
			testutil.KindIs(graphql.ErrKindCoercion),
		))
	})

	It("tells built-in scalars", func() {
		Expect(graphql.IsBuiltinScalar(graphql.Int())).Should(BeTrue())
		Expect(graphql.IsBuiltinScalar(graphql.ID())).Should(BeTrue())
		Expect(graphql.IsBuiltinScalar(graphql.DateTime())).Should(BeFalse())
		Expect(graphql.IsBuiltinScalar(graphql.JSONString())).Should(BeFalse())
	})

	It("rejects scalar without a name", func() {
		_, err := graphql.NewScalar(&graphql.ScalarConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Scalar."),
			testutil.KindIs(graphql.ErrKindConfiguration),
		))
	})
})
