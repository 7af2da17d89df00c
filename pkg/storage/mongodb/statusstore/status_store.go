/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statusstore stores the status list allocation state in mongo.
package statusstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credentio/vce/pkg/service/statuslist"
	"github.com/credentio/vce/pkg/storage/mongodb"
)

const (
	collectionName = "status_list_state"

	// stateKey is the fixed document key. One deployment owns one list; the
	// service serializes writers, so no compare-and-swap is needed here.
	stateKey = "state"
)

type mongoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Key       string             `bson:"key"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Payload   []byte             `bson:"payload"`
}

// Store stores the single status list state document in mongo.
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
				Keys:    bson.D{{Key: "key", Value: -1}},
				Options: options.Index().SetUnique(true),
			},
		})

	return err
}

// Get returns the stored list state.
func (s *Store) Get(ctx context.Context) (*statuslist.ListState, error) {
	var doc mongoDocument

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctx, bson.M{"key": stateKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, statuslist.ErrDataNotFound
		}

		return nil, err
	}

	var state statuslist.ListState

	if err = json.Unmarshal(doc.Payload, &state); err != nil {
		return nil, fmt.Errorf("unmarshal list state: %w", err)
	}

	return &state, nil
}

// Put replaces the stored list state.
func (s *Store) Put(ctx context.Context, state *statuslist.ListState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal list state: %w", err)
	}

	_, err = s.mongoClient.Database().Collection(collectionName).ReplaceOne(ctx,
		bson.M{"key": stateKey},
		&mongoDocument{
			Key:       stateKey,
			UpdatedAt: state.UpdatedAt,
			Payload:   payload,
		},
		options.Replace().SetUpsert(true))

	return err
}
