/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package requeststore stores presentation requests in mongo.
package requeststore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credentio/vce/pkg/service/verification"
	"github.com/credentio/vce/pkg/storage/mongodb"
)

const collectionName = "presentation_request"

type mongoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RequestID string             `bson:"requestId"`
	State     string             `bson:"state"`
	Verified  bool               `bson:"verified"`
	ExpireAt  time.Time          `bson:"expireAt"`
	Payload   []byte             `bson:"payload"`
}

// Store stores presentation requests in mongo, keyed by state.
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
				Keys:    bson.D{{Key: "state", Value: -1}},
				Options: options.Index().SetUnique(true),
			},
			{ // ttl index, runs about once a minute; reads still check expireAt
				Keys:    bson.D{{Key: "expireAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		})

	return err
}

// Create stores the request and returns it with a generated ID.
func (s *Store) Create(ctx context.Context, data *verification.RequestData) (*verification.PresentationRequest, error) {
	request := &verification.PresentationRequest{
		ID:          verification.RequestID(uuid.NewString()),
		RequestData: *data,
	}

	doc, err := toDocument(request)
	if err != nil {
		return nil, err
	}

	_, err = s.mongoClient.Database().Collection(collectionName).InsertOne(ctx, doc)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key error collection") {
			return nil, fmt.Errorf("request with state already exists: %w", verification.ErrDataNotFound)
		}

		return nil, err
	}

	return request, nil
}

// GetByState returns the request stored under the state value. Expired
// records read as absent.
func (s *Store) GetByState(ctx context.Context, state string) (*verification.PresentationRequest, error) {
	var doc mongoDocument

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctx, bson.M{"state": state}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, verification.ErrDataNotFound
		}

		return nil, err
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, verification.ErrDataNotFound
	}

	return fromDocument(&doc)
}

// Update replaces the stored request only while its verified flag still
// matches the expected value. The flag filter makes the write a
// compare-and-swap: concurrent verifications have exactly one winner.
func (s *Store) Update(ctx context.Context, request *verification.PresentationRequest, expected bool) error {
	doc, err := toDocument(request)
	if err != nil {
		return err
	}

	result, err := s.mongoClient.Database().Collection(collectionName).UpdateOne(ctx,
		bson.M{
			"requestId": string(request.ID),
			"state":     request.State,
			"verified":  expected,
			"expireAt":  bson.M{"$gt": time.Now().UTC()},
		},
		bson.M{"$set": bson.M{
			"verified": doc.Verified,
			"payload":  doc.Payload,
		}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return verification.ErrDataNotFound
	}

	return nil
}

func toDocument(request *verification.PresentationRequest) (*mongoDocument, error) {
	payload, err := json.Marshal(request.RequestData)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	return &mongoDocument{
		RequestID: string(request.ID),
		State:     request.State,
		Verified:  request.Verified,
		ExpireAt:  request.ExpiresAt,
		Payload:   payload,
	}, nil
}

func fromDocument(doc *mongoDocument) (*verification.PresentationRequest, error) {
	request := &verification.PresentationRequest{
		ID: verification.RequestID(doc.RequestID),
	}

	if err := json.Unmarshal(doc.Payload, &request.RequestData); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}

	return request, nil
}
