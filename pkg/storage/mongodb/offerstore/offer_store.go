/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package offerstore stores credential offers in mongo.
package offerstore

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

	"github.com/credentio/vce/pkg/service/issuance"
	"github.com/credentio/vce/pkg/storage/mongodb"
)

const collectionName = "credential_offer"

// mongoDocument carries the offer as raw JSON so the claim set keeps its
// insertion order; the indexed fields exist for lookup and the guarded update
// filters only.
type mongoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OfferID     string             `bson:"offerId"`
	PreAuthCode string             `bson:"preAuthCode"`
	State       int32              `bson:"state"`
	ExpireAt    time.Time          `bson:"expireAt"`
	Payload     []byte             `bson:"payload"`
}

// Store stores credential offers in mongo, keyed by pre-authorized code.
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
				Keys:    bson.D{{Key: "preAuthCode", Value: -1}},
				Options: options.Index().SetUnique(true),
			},
			{ // ttl index, runs about once a minute; reads still check expireAt
				Keys:    bson.D{{Key: "expireAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		})

	return err
}

// Create stores the offer and returns it with a generated ID.
func (s *Store) Create(ctx context.Context, data *issuance.OfferData) (*issuance.Offer, error) {
	offer := &issuance.Offer{
		ID:        issuance.OfferID(uuid.NewString()),
		OfferData: *data,
	}

	doc, err := toDocument(offer)
	if err != nil {
		return nil, err
	}

	_, err = s.mongoClient.Database().Collection(collectionName).InsertOne(ctx, doc)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key error collection") {
			return nil, fmt.Errorf("offer with code already exists: %w", issuance.ErrDataNotFound)
		}

		return nil, err
	}

	return offer, nil
}

// FindByCode returns the offer stored under the pre-authorized code. Expired
// records read as absent.
func (s *Store) FindByCode(ctx context.Context, preAuthCode string) (*issuance.Offer, error) {
	var doc mongoDocument

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctx, bson.M{"preAuthCode": preAuthCode}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, issuance.ErrDataNotFound
		}

		return nil, err
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, issuance.ErrDataNotFound
	}

	return fromDocument(&doc)
}

// Update replaces the stored offer only while it is still in the expected
// state. The state filter makes the write a compare-and-swap: concurrent
// transitions have exactly one winner, the rest read data-not-found.
func (s *Store) Update(ctx context.Context, offer *issuance.Offer, expected issuance.OfferState) error {
	doc, err := toDocument(offer)
	if err != nil {
		return err
	}

	result, err := s.mongoClient.Database().Collection(collectionName).UpdateOne(ctx,
		bson.M{
			"offerId":     string(offer.ID),
			"preAuthCode": offer.PreAuthCode,
			"state":       int32(expected),
			"expireAt":    bson.M{"$gt": time.Now().UTC()},
		},
		bson.M{"$set": bson.M{
			"state":    doc.State,
			"expireAt": doc.ExpireAt,
			"payload":  doc.Payload,
		}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return issuance.ErrDataNotFound
	}

	return nil
}

func toDocument(offer *issuance.Offer) (*mongoDocument, error) {
	payload, err := json.Marshal(offer.OfferData)
	if err != nil {
		return nil, fmt.Errorf("marshal offer: %w", err)
	}

	return &mongoDocument{
		OfferID:     string(offer.ID),
		PreAuthCode: offer.PreAuthCode,
		State:       int32(offer.State),
		ExpireAt:    offer.ExpiresAt,
		Payload:     payload,
	}, nil
}

func fromDocument(doc *mongoDocument) (*issuance.Offer, error) {
	offer := &issuance.Offer{
		ID: issuance.OfferID(doc.OfferID),
	}

	if err := json.Unmarshal(doc.Payload, &offer.OfferData); err != nil {
		return nil, fmt.Errorf("unmarshal offer: %w", err)
	}

	return offer, nil
}
