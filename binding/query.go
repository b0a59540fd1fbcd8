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
	"context"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
)

// queryableKey is the context key for the queryable of a model.
type queryableKey struct {
	model *document.Model
}

// WithQueryable returns a copy of ctx carrying queryable as the collection of model. GetQuery falls
// back to it when the model has no queryset installed.
func WithQueryable(ctx context.Context, model *document.Model, queryable document.Queryable) context.Context {
	return context.WithValue(ctx, queryableKey{model}, queryable)
}

// QueryableFrom returns the queryable of model carried by ctx.
func QueryableFrom(ctx context.Context, model *document.Model) (document.Queryable, bool) {
	if ctx == nil {
		return nil, false
	}
	queryable, ok := ctx.Value(queryableKey{model}).(document.Queryable)
	return queryable, ok && queryable != nil
}

// GetQuery returns the collection of model installed under attr (document.DefaultQuerysetAttr when
// empty) or the one carried by ctx.
func GetQuery(ctx context.Context, model *document.Model, attr string) (document.Queryable, error) {
	if len(attr) == 0 {
		attr = document.DefaultQuerysetAttr
	}

	if model != nil {
		if queryable, ok := model.Queryset(attr); ok {
			return queryable, nil
		}
		if queryable, ok := QueryableFrom(ctx, model); ok {
			return queryable, nil
		}
	}

	return nil, graphql.NewConfigurationError("binding.GetQuery",
		"A queryset in the document is required for querying.")
}
