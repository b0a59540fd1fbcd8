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

package binding

import (
	"github.com/botobag/artemis-mongo/document"
)

// FieldIsRequired returns true if a value must be present for the field.
func FieldIsRequired(field *document.Field) bool {
	return field != nil && field.Required
}

// FieldIsNullable returns true if the field may be absent.
func FieldIsNullable(field *document.Field) bool {
	return !FieldIsRequired(field)
}

// FieldDescription returns the description of the field or an empty string.
func FieldDescription(field *document.Field) string {
	if field == nil {
		return ""
	}
	return field.Description
}

// FieldIsDocument returns true if the field holds a reference to or an embedded copy of another
// document.
func FieldIsDocument(field *document.Field) bool {
	return field != nil && field.Kind.IsDocumentKind()
}

// FieldIsDocumentList returns true if the field is a list whose elements are documents.
func FieldIsDocumentList(field *document.Field) bool {
	if field == nil || !field.Kind.IsListKind() {
		return false
	}
	return FieldIsDocument(field.Field)
}
