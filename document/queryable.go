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
	"context"
)

// doesNotExist is defined to serve as type for DoesNotExist.
type doesNotExist int

// Error implements Go's error inteface for "doesNotExist".
func (doesNotExist) Error() string {
	return "document does not exist"
}

var _ error = doesNotExist(0)

// DoesNotExist is returned by Queryable.Get when no document has the requested identifier.
const DoesNotExist doesNotExist = 0

// Queryable is a collection of documents that can be counted and read in pages.
type Queryable interface {
	// Count returns the number of documents in the collection.
	Count(ctx context.Context) (int, error)

	// Slice returns at most limit documents starting from the offset-th one.
	Slice(ctx context.Context, offset int, limit int) ([]interface{}, error)

	// Get returns the document with the given identifier. It returns DoesNotExist when there's no
	// such document.
	Get(ctx context.Context, id interface{}) (interface{}, error)
}

// SliceQueryable serves documents held in memory.
type SliceQueryable struct {
	items []interface{}
}

var _ Queryable = (*SliceQueryable)(nil)

// NewSliceQueryable creates a Queryable over items. Items are matched by identifier with IDOf.
func NewSliceQueryable(items ...interface{}) *SliceQueryable {
	return &SliceQueryable{items}
}

// Items returns all documents in the collection.
func (q *SliceQueryable) Items() []interface{} {
	return q.items
}

// Count implements Queryable.
func (q *SliceQueryable) Count(ctx context.Context) (int, error) {
	return len(q.items), nil
}

// Slice implements Queryable.
func (q *SliceQueryable) Slice(ctx context.Context, offset int, limit int) ([]interface{}, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(q.items) || limit <= 0 {
		return []interface{}{}, nil
	}
	if remaining := len(q.items) - offset; limit > remaining {
		limit = remaining
	}
	return q.items[offset : offset+limit], nil
}

// Get implements Queryable.
func (q *SliceQueryable) Get(ctx context.Context, id interface{}) (interface{}, error) {
	want := IDString(id)
	for _, item := range q.items {
		if itemID, ok := IDOf(item); ok && IDString(itemID) == want {
			return item, nil
		}
	}
	return nil, DoesNotExist
}
