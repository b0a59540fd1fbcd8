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

package mongostore

import (
	"context"
	"errors"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/iterator"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Config specifies a Collection.
type Config struct {
	// Collection to read documents from
	Collection *mongo.Collection

	// Model of the documents in the collection
	Model *document.Model

	// Filter selects the documents that belong to the queryable. All documents are selected when it
	// is nil.
	Filter interface{}

	// Sort orders the documents; Default to ascending "_id" so that pages are stable.
	Sort interface{}

	// Logger receives debug events for every query. Default to a no-op logger.
	Logger *zap.Logger
}

// Collection is a document.Queryable backed by a MongoDB collection.
type Collection struct {
	coll   *mongo.Collection
	model  *document.Model
	filter interface{}
	sort   interface{}
	logger *zap.Logger
}

var _ document.Queryable = (*Collection)(nil)

// New creates a Collection from config.
func New(config *Config) (*Collection, error) {
	const op graphql.Op = "mongostore.New"

	if config.Collection == nil {
		return nil, graphql.NewError("Must provide a MongoDB collection.", op, graphql.ErrKindConfiguration)
	}
	if config.Model == nil {
		return nil, graphql.NewError("Must provide the model of the collection.", op, graphql.ErrKindConfiguration)
	}

	filter := config.Filter
	if filter == nil {
		filter = bson.D{}
	}

	sort := config.Sort
	if sort == nil {
		sort = bson.D{{Key: "_id", Value: 1}}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collection{
		coll:   config.Collection,
		model:  config.Model,
		filter: filter,
		sort:   sort,
		logger: logger.With(zap.String("collection", config.Collection.Name()), zap.String("model", config.Model.Name())),
	}, nil
}

// MustNew is a convenience function equivalent to New but panics on failure instead of returning an
// error.
func MustNew(config *Config) *Collection {
	c, err := New(config)
	if err != nil {
		panic(err)
	}
	return c
}

// Install creates a Collection from config and installs it as the default queryset of the model.
func Install(config *Config) (*Collection, error) {
	c, err := New(config)
	if err != nil {
		return nil, err
	}
	config.Model.SetQueryset(document.DefaultQuerysetAttr, c)
	return c, nil
}

// Model returns the model of the documents in the collection.
func (c *Collection) Model() *document.Model {
	return c.model
}

// Count implements document.Queryable.
func (c *Collection) Count(ctx context.Context) (int, error) {
	n, err := c.coll.CountDocuments(ctx, c.filter)
	if err != nil {
		return 0, graphql.NewError("Cannot count documents.", err, graphql.Op("mongostore.Count"))
	}
	c.logger.Debug("counted documents", zap.Int64("count", n))
	return int(n), nil
}

// Slice implements document.Queryable.
func (c *Collection) Slice(ctx context.Context, offset int, limit int) ([]interface{}, error) {
	// A zero limit asks the server for every document.
	if limit <= 0 {
		return []interface{}{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	opts := options.Find().
		SetSort(c.sort).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := c.coll.Find(ctx, c.filter, opts)
	if err != nil {
		return nil, graphql.NewError("Cannot find documents.", err, graphql.Op("mongostore.Slice"))
	}

	iter := c.newDocumentIterator(cursor)
	defer func() {
		if err := iter.Close(ctx); err != nil {
			c.logger.Warn("cannot close cursor", zap.Error(err))
		}
	}()

	items := make([]interface{}, 0, limit)
	for len(items) < limit {
		instance, err := iter.Next(ctx)
		if iterator.IsDone(err) {
			break
		} else if err != nil {
			return nil, graphql.NewError("Cannot read documents.", err, graphql.Op("mongostore.Slice"))
		}
		items = append(items, instance)
	}

	c.logger.Debug("sliced documents",
		zap.Int("offset", offset),
		zap.Int("limit", limit),
		zap.Int("returned", len(items)))
	return items, nil
}

// Get implements document.Queryable. Hexadecimal strings of 24 digits are matched as ObjectIDs.
func (c *Collection) Get(ctx context.Context, id interface{}) (interface{}, error) {
	var raw bson.M
	err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: normalizeID(id)}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.logger.Debug("document not found", zap.Any("id", id))
		return nil, document.DoesNotExist
	} else if err != nil {
		return nil, graphql.NewError("Cannot get document.", err, graphql.Op("mongostore.Get"))
	}
	return c.instanceOf(raw), nil
}

// Documents returns an iterator over all documents in the collection in sort order.
func (c *Collection) Documents(ctx context.Context) (*DocumentIterator, error) {
	cursor, err := c.coll.Find(ctx, c.filter, options.Find().SetSort(c.sort))
	if err != nil {
		return nil, graphql.NewError("Cannot find documents.", err, graphql.Op("mongostore.Documents"))
	}
	return c.newDocumentIterator(cursor), nil
}

func (c *Collection) instanceOf(raw bson.M) *document.Instance {
	values := make(map[string]interface{}, len(raw)+1)
	for k, v := range raw {
		values[k] = plainValue(v)
	}
	if id, exists := raw["_id"]; exists {
		if _, exists := values[c.model.IDField()]; !exists {
			values[c.model.IDField()] = id
		}
	}
	return document.NewInstance(c.model, values)
}

// plainValue unwraps BSON carriers that the type system cannot serialize on its own.
func plainValue(value interface{}) interface{} {
	switch value := value.(type) {
	case primitive.Binary:
		return value.Data
	case primitive.A:
		values := make([]interface{}, len(value))
		for i, v := range value {
			values[i] = plainValue(v)
		}
		return values
	}
	return value
}

func normalizeID(id interface{}) interface{} {
	if s, ok := id.(string); ok && primitive.IsValidObjectID(s) {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid
		}
	}
	return id
}

// DocumentIterator iterates over documents read from a cursor.
type DocumentIterator struct {
	collection *Collection
	cursor     *mongo.Cursor
}

func (c *Collection) newDocumentIterator(cursor *mongo.Cursor) *DocumentIterator {
	return &DocumentIterator{
		collection: c,
		cursor:     cursor,
	}
}

// Next returns the next document in the iteration. It returns iterator.Done when there's no more
// document.
func (iter *DocumentIterator) Next(ctx context.Context) (*document.Instance, error) {
	if !iter.cursor.Next(ctx) {
		if err := iter.cursor.Err(); err != nil {
			return nil, err
		}
		return nil, iterator.Done
	}

	var raw bson.M
	if err := iter.cursor.Decode(&raw); err != nil {
		return nil, err
	}
	return iter.collection.instanceOf(raw), nil
}

// Close releases the cursor.
func (iter *DocumentIterator) Close(ctx context.Context) error {
	return iter.cursor.Close(ctx)
}
