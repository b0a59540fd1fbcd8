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

package graphql

// NonNull Type Modifier
//
// A non-null is a kind of type marker, a wrapping type which points to another type. Non-null types
// enforce that their values are never null and can ensure an error is raised if this ever occurs
// during a request. It is useful for fields which you can make a strong guarantee on non-nullability,
// for example usually the id field of a database row will never be null.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	elementType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOf defines a NonNull type wrapping elementType.
func NewNonNullOf(elementType Type) (*NonNull, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for NonNull.", ErrKindConfiguration)
	} else if !IsNullableType(elementType) {
		return nil, NewError("Expected a nullable type for NonNull but got an "+elementType.String()+".",
			ErrKindConfiguration)
	}
	return &NonNull{elementType}, nil
}

// MustNewNonNullOf is a convenience function equivalent to NewNonNullOf but panics on failure
// instead of returning an error.
func MustNewNonNullOf(elementType Type) *NonNull {
	nonNull, err := NewNonNullOf(elementType)
	if err != nil {
		panic(err)
	}
	return nonNull
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// String implements fmt.Stringer.
func (n *NonNull) String() string {
	return n.elementType.String() + "!"
}

// InnerType indicates the type of the element wrapped in this non-null type.
func (n *NonNull) InnerType() Type {
	return n.elementType
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.elementType
}
