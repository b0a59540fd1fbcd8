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

// List Type Modifier
//
// A list is a kind of type marker, a wrapping type which points to another type. Lists are often
// created within the context of defining the fields of an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List struct {
	elementType Type
}

var (
	_ Type         = (*List)(nil)
	_ WrappingType = (*List)(nil)
)

// NewListOf defines a List type whose elements are of elementType.
func NewListOf(elementType Type) (*List, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for List.", ErrKindConfiguration)
	}
	return &List{elementType}, nil
}

// MustNewListOf is a convenience function equivalent to NewListOf but panics on failure instead of
// returning an error.
func MustNewListOf(elementType Type) *List {
	list, err := NewListOf(elementType)
	if err != nil {
		panic(err)
	}
	return list
}

// graphqlType implements Type.
func (*List) graphqlType() {}

// String implements fmt.Stringer.
func (l *List) String() string {
	return "[" + l.elementType.String() + "]"
}

// ElementType indicates the type of the elements in the list.
func (l *List) ElementType() Type {
	return l.elementType
}

// UnwrappedType implements WrappingType.
func (l *List) UnwrappedType() Type {
	return l.elementType
}
