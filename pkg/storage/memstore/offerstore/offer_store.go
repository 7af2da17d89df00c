/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package offerstore stores credential offers in process memory.
package offerstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/credentio/vce/pkg/service/issuance"
)

// Store keeps offers in memory, keyed by pre-authorized code. Expired records
// are dropped lazily on lookup.
type Store struct {
	mutex  sync.Mutex
	offers map[string]*issuance.Offer
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		offers: make(map[string]*issuance.Offer),
	}
}

// Create stores the offer and returns it with a generated ID.
func (s *Store) Create(_ context.Context, data *issuance.OfferData) (*issuance.Offer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.offers[data.PreAuthCode]; ok {
		return nil, issuance.ErrDataNotFound
	}

	offer := &issuance.Offer{
		ID:        issuance.OfferID(uuid.NewString()),
		OfferData: *data,
	}

	clone, err := copyOffer(offer)
	if err != nil {
		return nil, err
	}

	s.offers[offer.PreAuthCode] = clone

	return offer, nil
}

// FindByCode returns the offer stored under the pre-authorized code.
func (s *Store) FindByCode(_ context.Context, preAuthCode string) (*issuance.Offer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	offer, ok := s.offers[preAuthCode]
	if !ok {
		return nil, issuance.ErrDataNotFound
	}

	if offer.ExpiresAt.Before(time.Now().UTC()) {
		delete(s.offers, preAuthCode)

		return nil, issuance.ErrDataNotFound
	}

	return copyOffer(offer)
}

// Update replaces the stored offer only while it is still in the expected
// state, so concurrent transitions have exactly one winner.
func (s *Store) Update(_ context.Context, offer *issuance.Offer, expected issuance.OfferState) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.offers[offer.PreAuthCode]
	if !ok || current.ID != offer.ID {
		return issuance.ErrDataNotFound
	}

	if current.ExpiresAt.Before(time.Now().UTC()) {
		delete(s.offers, offer.PreAuthCode)

		return issuance.ErrDataNotFound
	}

	if current.State != expected {
		return issuance.ErrDataNotFound
	}

	clone, err := copyOffer(offer)
	if err != nil {
		return err
	}

	s.offers[offer.PreAuthCode] = clone

	return nil
}

// copyOffer clones the record so callers cannot mutate stored state in place.
// Interior pointers are shared; the flow never mutates claim sets after they
// are stored.
func copyOffer(offer *issuance.Offer) (*issuance.Offer, error) {
	var clone issuance.Offer

	if err := copier.Copy(&clone, offer); err != nil {
		return nil, err
	}

	return &clone, nil
}
