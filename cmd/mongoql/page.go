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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/botobag/artemis-mongo/document"
	"github.com/botobag/artemis-mongo/document/mongostore"
	"github.com/botobag/artemis-mongo/graphql"
	"github.com/botobag/artemis-mongo/graphql/relay"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func pageCommand() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "Print a page of documents of a type read from MongoDB",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mongo-uri",
				Usage:   "MongoDB connection URI",
				Value:   "mongodb://localhost:27017",
				Sources: cli.EnvVars("MONGODB_URI"),
			},
			&cli.StringFlag{
				Name:     "database",
				Aliases:  []string{"d"},
				Usage:    "Database holding the collections listed in the manifest",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "Object type to page through",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "first",
				Usage: "Number of documents after the cursor",
			},
			&cli.IntFlag{
				Name:  "last",
				Usage: "Number of documents before the cursor",
			},
			&cli.StringFlag{
				Name:  "after",
				Usage: "Cursor to page forward from",
			},
			&cli.StringFlag{
				Name:  "before",
				Usage: "Cursor to page backward from",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd.Bool("verbose"))
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			b, err := loadManifestFile(cmd.String("manifest"), logger)
			if err != nil {
				return err
			}

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cmd.String("mongo-uri")))
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Disconnect(ctx); err != nil {
					logger.Warn("cannot disconnect from MongoDB", zap.Error(err))
				}
			}()

			if err := b.installCollections(client.Database(cmd.String("database")), logger); err != nil {
				return err
			}

			args := map[string]interface{}{}
			for _, name := range []string{"first", "last"} {
				if cmd.IsSet(name) {
					args[name] = cmd.Int(name)
				}
			}
			for _, name := range []string{"after", "before"} {
				if cmd.IsSet(name) {
					args[name] = cmd.String(name)
				}
			}

			result, err := b.page(ctx, cmd.String("type"), args)
			if err != nil {
				return err
			}
			return writePage(os.Stdout, result)
		},
	}
}

// installCollections installs the collections named in the manifest as the default queryset of
// their models.
func (b *binder) installCollections(db *mongo.Database, logger *zap.Logger) error {
	collections := b.manifest.Collections()
	for _, model := range b.models {
		name, exists := collections[model.Name()]
		if !exists {
			continue
		}
		if _, err := mongostore.Install(&mongostore.Config{
			Collection: db.Collection(name),
			Model:      model,
			Logger:     logger,
		}); err != nil {
			return err
		}
	}
	return nil
}

// page resolves the root connection field of the named type with args.
func (b *binder) page(ctx context.Context, typeName string, args map[string]interface{}) (*relay.ConnectionResult, error) {
	field, exists := b.rootFields[typeName]
	if !exists {
		return nil, graphql.NewConfigurationError("mongoql.page", "Type %s cannot be paged.", typeName)
	}

	info := graphql.NewResolveInfo(b.schema, b.schema.Query(), field, graphql.NewArgumentValues(args))
	value, err := field.Resolver().Resolve(ctx, nil, info)
	if err != nil {
		return nil, err
	}

	result, ok := value.(*relay.ConnectionResult)
	if !ok {
		return nil, graphql.NewError(fmt.Sprintf("Connection of %s resolved to %T.", typeName, value),
			graphql.Op("mongoql.page"), graphql.ErrKindInternal)
	}
	return result, nil
}

type pageEdge struct {
	Cursor string      `json:"cursor"`
	Node   interface{} `json:"node"`
}

type pageOutput struct {
	Edges      []pageEdge     `json:"edges"`
	PageInfo   relay.PageInfo `json:"pageInfo"`
	TotalCount int            `json:"totalCount"`
}

// writePage writes result as indented JSON. Documents are written as their attribute values.
func writePage(w io.Writer, result *relay.ConnectionResult) error {
	output := pageOutput{
		Edges:      make([]pageEdge, len(result.Edges)),
		PageInfo:   result.PageInfo,
		TotalCount: result.Length,
	}
	for i, edge := range result.Edges {
		node := edge.Node
		if instance, ok := node.(*document.Instance); ok {
			node = instance.Values()
		}
		output.Edges[i] = pageEdge{
			Cursor: edge.Cursor,
			Node:   node,
		}
	}

	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
