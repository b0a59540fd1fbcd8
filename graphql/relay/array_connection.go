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

package relay

import (
	"fmt"

	"github.com/botobag/artemis-mongo/graphql"
)

// Args contains the pagination arguments given to a connection field. A nil First or Last and an
// empty After or Before mean the argument was not given.
type Args struct {
	First  *int
	Last   *int
	After  string
	Before string
}

// ArgsFrom extracts pagination arguments from the argument values of a connection field.
func ArgsFrom(values graphql.ArgumentValues) (Args, error) {
	var args Args

	for _, name := range []string{"first", "last"} {
		value, exists := values.Lookup(name)
		if !exists || value == nil {
			continue
		}
		n, ok := values.LookupInt(name)
		if !ok {
			return Args{}, graphql.NewError(
				fmt.Sprintf("Argument '%s' must be an integer but got %v.", name, value),
				graphql.ErrKindCoercion)
		}
		if name == "first" {
			args.First = &n
		} else {
			args.Last = &n
		}
	}

	args.After, _ = values.LookupString("after")
	args.Before, _ = values.LookupString("before")

	return args, nil
}

// Window describes the positions of a sequence covered by a page: items in [Start, End).
type Window struct {
	Start           int
	End             int
	HasPreviousPage bool
	HasNextPage     bool
}

// Len returns the number of items in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// ComputeWindow applies args to a sequence of the given length.
func ComputeWindow(args Args, length int) (Window, error) {
	if args.First != nil && *args.First < 0 {
		return Window{}, graphql.NewError("Argument 'first' must be a non-negative integer.",
			graphql.ErrKindCoercion)
	}
	if args.Last != nil && *args.Last < 0 {
		return Window{}, graphql.NewError("Argument 'last' must be a non-negative integer.",
			graphql.ErrKindCoercion)
	}

	// Offsets decoded from cursors are client-supplied and may lie anywhere in the int range.
	beforeOffset := min(max(OffsetWithDefault(args.Before, length), 0), length)
	afterOffset := min(max(OffsetWithDefault(args.After, -1), -1), length)

	start := min(afterOffset+1, length)
	end := beforeOffset

	if args.First != nil && *args.First < end-start {
		end = start + *args.First
	}
	if args.Last != nil && *args.Last < end-start {
		start = end - *args.Last
	}

	// start may pass end when cursors cross.
	if end < start {
		end = start
	}

	lowerBound := 0
	if len(args.After) > 0 {
		lowerBound = afterOffset + 1
	}
	upperBound := length
	if len(args.Before) > 0 {
		upperBound = beforeOffset
	}

	return Window{
		Start:           start,
		End:             end,
		HasPreviousPage: args.Last != nil && start > lowerBound,
		HasNextPage:     args.First != nil && end < upperBound,
	}, nil
}

// ConnectionResult is the value resolved for a connection field.
type ConnectionResult struct {
	Edges    []*Edge  `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`

	// Iterable is the sequence the page was cut from.
	Iterable interface{} `json:"-"`

	// Length is the total number of items in Iterable.
	Length int `json:"-"`
}

// NewConnectionResult builds the result for window from the items it covers. items[i] is the item
// at position window.Start+i of the sequence.
func NewConnectionResult(window Window, items []interface{}) *ConnectionResult {
	edges := make([]*Edge, len(items))
	for i, item := range items {
		edges[i] = &Edge{
			Node:   item,
			Cursor: OffsetToCursor(window.Start + i),
		}
	}

	result := &ConnectionResult{
		Edges: edges,
		PageInfo: PageInfo{
			HasPreviousPage: window.HasPreviousPage,
			HasNextPage:     window.HasNextPage,
		},
	}
	if len(edges) > 0 {
		result.PageInfo.StartCursor = edges[0].Cursor
		result.PageInfo.EndCursor = edges[len(edges)-1].Cursor
	}

	return result
}

// ConnectionFromSlice returns the page of items selected by args.
func ConnectionFromSlice(items []interface{}, args Args) (*ConnectionResult, error) {
	window, err := ComputeWindow(args, len(items))
	if err != nil {
		return nil, err
	}

	result := NewConnectionResult(window, items[window.Start:window.End])
	result.Iterable = items
	result.Length = len(items)
	return result, nil
}
