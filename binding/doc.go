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

// Package binding exposes document models as GraphQL object types.
//
// Every field declared on a model is converted to a GraphQL field according to its storage kind.
// Fields that point to other models (references, embedded documents and lists of them) are
// deferred: they resolve to the object type bound to the target model once that binding exists,
// which allows self-referential and forward-referenced relationships. The object types are kept in
// a Registry keyed by model.
//
// Lists of documents whose object type has a Relay connection are exposed as connection fields that
// page through a Queryable collection with first/after/last/before arguments.
package binding
