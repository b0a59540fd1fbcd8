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

package document

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Kind -linecomment

// Kind is the storage type of a document field.
type Kind uint8

// Enumeration of Kind
const (
	KindInvalid                 Kind = iota // Invalid
	KindString                              // StringField
	KindURL                                 // URLField
	KindEmail                               // EmailField
	KindInt                                 // IntField
	KindLong                                // LongField
	KindSequence                            // SequenceField
	KindFloat                               // FloatField
	KindDecimal                             // DecimalField
	KindBoolean                             // BooleanField
	KindDateTime                            // DateTimeField
	KindComplexDateTime                     // ComplexDateTimeField
	KindObjectID                            // ObjectIdField
	KindUUID                                // UUIDField
	KindBinary                              // BinaryField
	KindFile                                // FileField
	KindImage                               // ImageField
	KindGeoPoint                            // GeoPointField
	KindPoint                               // PointField
	KindLineString                          // LineStringField
	KindPolygon                             // PolygonField
	KindMultiPoint                          // MultiPointField
	KindMultiLineString                     // MultiLineStringField
	KindMultiPolygon                        // MultiPolygonField
	KindDict                                // DictField
	KindMap                                 // MapField
	KindDynamic                             // DynamicField
	KindList                                // ListField
	KindSortedList                          // SortedListField
	KindEmbeddedDocumentList                // EmbeddedDocumentListField
	KindEmbeddedDocument                    // EmbeddedDocumentField
	KindGenericEmbeddedDocument             // GenericEmbeddedDocumentField
	KindReference                           // ReferenceField
	KindCachedReference                     // CachedReferenceField
	KindLazyReference                       // LazyReferenceField
	KindGenericReference                    // GenericReferenceField
	KindGenericLazyReference                // GenericLazyReferenceField
)

// numKinds is the number of kinds including KindInvalid.
const numKinds = int(KindGenericLazyReference) + 1

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := KindInvalid + 1; int(k) < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the Kind with the given name. Names are matched case-insensitively and the
// "Field" suffix is optional, so "ReferenceField", "reference" and "Reference" are the same kind.
func ParseKind(name string) (Kind, bool) {
	normalized := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "Field"))
	normalized = strings.TrimSuffix(normalized, "field")
	for k := KindInvalid + 1; int(k) < numKinds; k++ {
		if strings.ToLower(strings.TrimSuffix(k.String(), "Field")) == normalized {
			return k, true
		}
	}
	return KindInvalid, false
}

// IsDocumentKind returns true for kinds that point to a document of a known model.
func (k Kind) IsDocumentKind() bool {
	switch k {
	case KindReference, KindCachedReference, KindLazyReference, KindEmbeddedDocument:
		return true
	}
	return false
}

// IsListKind returns true for kinds that hold a sequence of values described by an inner field.
func (k Kind) IsListKind() bool {
	switch k {
	case KindList, KindSortedList, KindEmbeddedDocumentList:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown field kind %q", text)
	}
	*k = kind
	return nil
}
