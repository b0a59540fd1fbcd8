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

// Package graphql provides the GraphQL type system that document models are exposed through. It
// covers the subset of GraphQL needed to describe a schema: scalars, objects, interfaces, lists and
// non-null wrappers, together with the field resolvers attached to them.
//
// # Two-Phase Type Construction
//
// A field whose type depends on a type that may not exist yet (for example, two document models
// that reference each other) is declared with a DeferredFieldFunc instead of a Type. NewObject
// accepts such fields and leaves them pending. The function is called again when the schema is
// finalized by NewSchema, at which point every type is expected to have been defined. A deferred
// field that still cannot be resolved at that moment fails schema construction with an error of
// kind ErrKindResolution.
//
// Pending state is explicit: a deferred function reports its outcome with FieldResolution, and
// Unresolved is a distinct value rather than a nil FieldConfig.
//
// Once a pending field is resolved, the result is stored in the Object and the deferred function is
// never called again for that object. The set of field names in an Object is fixed when NewObject
// returns.
package graphql
