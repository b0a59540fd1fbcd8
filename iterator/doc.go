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

// Package iterator defines the end-of-iteration sentinel shared by the document iterators in this
// module.
//
// An iterable resource returns an iterator whose only method is Next. Next returns the next element
// or Done when there are no more elements:
//
//	iter, err := collection.Documents(ctx)
//	if err != nil {
//		return err
//	}
//	defer iter.Close(ctx)
//	for {
//		doc, err := iter.Next(ctx)
//		if iterator.IsDone(err) {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(doc)
//	}
//
// The convention follows the Iterator Guidelines of the Google Cloud Client Libraries for Go [0].
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
