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

// Package relay implements the Relay server conventions on top of package graphql: the Node
// interface with opaque global identifiers, and cursor connections for paginating lists.
//
// Connections are computed over a sequence whose length is known in advance. ComputeWindow works
// out which positions of the sequence a page covers from the standard pagination arguments
// (first, after, last and before), so callers backed by a database only have to fetch that window.
//
// Cursors encode the position of an item in the sequence. They are opaque to clients but stable:
// OffsetToCursor and CursorToOffset round trip exactly, and a larger offset always produces a
// cursor that decodes to a larger offset.
//
// Reference: https://relay.dev/graphql/connections.htm
package relay
