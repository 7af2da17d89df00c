/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package liststore stores published status list documents in mongo.
package liststore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credentio/vce/pkg/service/statuslist"
	"github.com/credentio/vce/pkg/storage/mongodb"
)

const collectionName = "status_list_document"

type mongoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ListURL   string             `bson:"listUrl"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Document  []byte             `bson:"document"`
}

// Store stores published status list documents in mongo, keyed by list URL.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates a new instance of Store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "listUrl", Value: -1}},
				Options: options.Index().SetUnique(true),
			},
		})

	return err
}

// Upsert stores the document under the list URL, replacing any previous
// version.
func (s *Store) Upsert(ctx context.Context, listURL string, doc []byte) error {
	_, err := s.mongoClient.Database().Collection(collectionName).ReplaceOne(ctx,
		bson.M{"listUrl": listURL},
		&mongoDocument{
			ListURL:   listURL,
			UpdatedAt: time.Now().UTC(),
			Document:  doc,
		},
		options.Replace().SetUpsert(true))

	return err
}

// Get returns the document stored under the list URL.
func (s *Store) Get(ctx context.Context, listURL string) ([]byte, error) {
	var doc mongoDocument

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctx, bson.M{"listUrl": listURL}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, statuslist.ErrDataNotFound
		}

		return nil, err
	}

	return doc.Document, nil
}
