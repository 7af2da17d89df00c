/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statuslist manages the revocation status list: index allocation,
// bit updates and publication of the signed list credential.
package statuslist

//go:generate mockgen -destination statuslist_service_mocks_test.go -self_package mocks -package statuslist_test -source=statuslist_service.go -mock_names stateStore=MockStateStore,listStore=MockListStore,eventService=MockEventService,credentialSigner=MockCredentialSigner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/google/uuid"

	"github.com/credentio/vce/internal/logfields"
	"github.com/credentio/vce/internal/pkg/log"
	vcapi "github.com/credentio/vce/pkg/doc/vc"
	"github.com/credentio/vce/pkg/doc/vc/bitstring"
	"github.com/credentio/vce/pkg/doc/vc/statustype"
	"github.com/credentio/vce/pkg/event/spi"
)

var logger = log.New("statuslist-service")

const (
	defaultListSize = 100_000

	eventSource = "source://vce/credentialstatus"
)

type stateStore interface {
	// Get returns the persisted allocation state. ErrDataNotFound when no
	// list has been initialized yet.
	Get(ctx context.Context) (*ListState, error)
	Put(ctx context.Context, state *ListState) error
}

type listStore interface {
	// Upsert publishes the signed status list document under the list URL.
	Upsert(ctx context.Context, listURL string, doc []byte) error
	Get(ctx context.Context, listURL string) ([]byte, error)
}

type eventService interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

type credentialSigner interface {
	Sign(ctx context.Context, payload []byte) (string, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	StateStore   stateStore
	ListStore    listStore
	EventService eventService
	Signer       credentialSigner

	IssuerID string
	// ListURL is the public URL the signed list document is published under.
	// Status entries embedded in issued credentials point at it.
	ListURL    string
	ListSize   int
	EventTopic string
}

// Service manages a single fixed-capacity status list.
type Service struct {
	stateStore stateStore
	listStore  listStore
	eventSvc   eventService
	signer     credentialSigner

	issuerID   string
	listURL    string
	listSize   int
	eventTopic string

	// mutex serializes allocate and revoke so each read-check-write sequence
	// is atomic.
	mutex sync.Mutex
}

// NewService returns a new Service instance.
func NewService(config *Config) *Service {
	s := &Service{
		stateStore: config.StateStore,
		listStore:  config.ListStore,
		eventSvc:   config.EventService,
		signer:     config.Signer,
		issuerID:   config.IssuerID,
		listURL:    config.ListURL,
		listSize:   config.ListSize,
		eventTopic: config.EventTopic,
	}

	if s.listSize == 0 {
		s.listSize = defaultListSize
	}

	if s.eventTopic == "" {
		s.eventTopic = spi.CredentialStatusEventTopic
	}

	return s
}

// AllocateEntry assigns the next free index to the credential id and returns
// the status entry to embed into the issued credential. A credential id can
// hold at most one entry.
func (s *Service) AllocateEntry(ctx context.Context, credentialID string) (*vcapi.TypedID, error) {
	if credentialID == "" {
		return nil, fmt.Errorf("%w: credential id is required", ErrInvalidRequest)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.loadOrInitState(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := state.Entries[credentialID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCredentialID, credentialID)
	}

	if state.NextIndex >= state.ListSize {
		return nil, ErrListFull
	}

	index := state.NextIndex
	state.NextIndex++
	state.Entries[credentialID] = index
	state.UpdatedAt = time.Now().UTC()

	if err = s.stateStore.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("store list state: %w", err)
	}

	if err = s.sendEvent(ctx, spi.CredentialStatusEntryAllocated, &EventPayload{
		CredentialID: credentialID,
		ListURL:      state.ListURL,
		Index:        index,
	}); err != nil {
		return nil, err
	}

	logger.Info("allocated status entry", logfields.WithCredentialID(credentialID),
		logfields.WithStatusListIndex(index))

	return statustype.NewEntry(index, state.ListURL), nil
}

// Revoke sets the status bit of the credential id and returns true. A never
// allocated id returns false without error: there is nothing to revoke.
// Revocation is monotonic, repeat calls keep returning true.
func (s *Service) Revoke(ctx context.Context, credentialID string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.stateStore.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("load list state: %w", err)
	}

	index, ok := state.Entries[credentialID]
	if !ok {
		return false, nil
	}

	bits, err := bitstring.DecodeBits(state.EncodedList)
	if err != nil {
		return false, fmt.Errorf("decode status list: %w", err)
	}

	revoked, err := bits.Get(index)
	if err != nil {
		return false, fmt.Errorf("read status bit: %w", err)
	}

	if revoked {
		return true, nil
	}

	if err = bits.Set(index, true); err != nil {
		return false, fmt.Errorf("set status bit: %w", err)
	}

	encoded, err := bits.EncodeBits()
	if err != nil {
		return false, fmt.Errorf("encode status list: %w", err)
	}

	state.EncodedList = encoded
	state.UpdatedAt = time.Now().UTC()

	// Publish before persisting so a failed run never leaves a revocation
	// recorded but unpublished.
	if err = s.publish(ctx, state); err != nil {
		return false, err
	}

	if err = s.stateStore.Put(ctx, state); err != nil {
		return false, fmt.Errorf("store list state: %w", err)
	}

	if err = s.sendEvent(ctx, spi.CredentialStatusUpdated, &EventPayload{
		CredentialID: credentialID,
		ListURL:      state.ListURL,
		Index:        index,
		Revoked:      true,
	}); err != nil {
		return false, err
	}

	logger.Info("revoked credential", logfields.WithCredentialID(credentialID),
		logfields.WithStatusListIndex(index))

	return true, nil
}

// CheckStatus reads the status bit of the credential id. A never allocated id
// reads false.
func (s *Service) CheckStatus(ctx context.Context, credentialID string) (bool, error) {
	state, err := s.stateStore.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("load list state: %w", err)
	}

	index, ok := state.Entries[credentialID]
	if !ok {
		return false, nil
	}

	return readBit(state, index)
}

// CheckStatusAtIndex reads the status bit at the given index. Indexes at or
// beyond the allocation cursor read false: an un-issued index is implicitly
// valid.
func (s *Service) CheckStatusAtIndex(ctx context.Context, index int) (bool, error) {
	state, err := s.stateStore.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("load list state: %w", err)
	}

	if index < 0 || index >= state.NextIndex {
		return false, nil
	}

	return readBit(state, index)
}

// EncodedList returns the current encoding of the bit vector.
func (s *Service) EncodedList(ctx context.Context) (string, error) {
	state, err := s.stateStore.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return "", ErrDataNotFound
		}

		return "", fmt.Errorf("load list state: %w", err)
	}

	return state.EncodedList, nil
}

// ListCredential returns the published signed status list document.
func (s *Service) ListCredential(ctx context.Context) ([]byte, error) {
	doc, err := s.listStore.Get(ctx, s.listURL)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			return nil, ErrDataNotFound
		}

		return nil, fmt.Errorf("load list credential: %w", err)
	}

	return doc, nil
}

// loadOrInitState loads the allocation state, creating and publishing a fresh
// empty list on first use so the list URL serves a document before any
// credential points at it.
func (s *Service) loadOrInitState(ctx context.Context) (*ListState, error) {
	state, err := s.stateStore.Get(ctx)
	if err == nil {
		return state, nil
	}

	if !errors.Is(err, ErrDataNotFound) {
		return nil, fmt.Errorf("load list state: %w", err)
	}

	encoded, err := bitstring.NewBitString(s.listSize).EncodeBits()
	if err != nil {
		return nil, fmt.Errorf("encode empty status list: %w", err)
	}

	state = &ListState{
		ListURL:     s.listURL,
		ListSize:    s.listSize,
		NextIndex:   0,
		Entries:     make(map[string]int),
		EncodedList: encoded,
		UpdatedAt:   time.Now().UTC(),
	}

	if err = s.publish(ctx, state); err != nil {
		return nil, err
	}

	if err = s.stateStore.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("store list state: %w", err)
	}

	logger.Info("initialized status list", logfields.WithStatusListURL(state.ListURL))

	return state, nil
}

type listCredentialClaims struct {
	jwt.Claims
	Credential *vcapi.Credential `json:"vc"`
}

// publish signs the list credential wrapping the current encoding and upserts
// it under the list URL.
func (s *Service) publish(ctx context.Context, state *ListState) error {
	credential, err := statustype.CreateListCredential(state.ListURL, s.issuerID, state.EncodedList, time.Now())
	if err != nil {
		return fmt.Errorf("create list credential: %w", err)
	}

	payload, err := json.Marshal(listCredentialClaims{
		Claims: jwt.Claims{
			Issuer:   s.issuerID,
			ID:       state.ListURL,
			IssuedAt: jwt.NewNumericDate(*credential.Issued),
		},
		Credential: credential,
	})
	if err != nil {
		return fmt.Errorf("marshal list credential claims: %w", err)
	}

	doc, err := s.signer.Sign(ctx, payload)
	if err != nil {
		return fmt.Errorf("sign list credential: %w", err)
	}

	if err = s.listStore.Upsert(ctx, state.ListURL, []byte(doc)); err != nil {
		return fmt.Errorf("publish list credential: %w", err)
	}

	return nil
}

func readBit(state *ListState, index int) (bool, error) {
	bits, err := bitstring.DecodeBits(state.EncodedList)
	if err != nil {
		return false, fmt.Errorf("decode status list: %w", err)
	}

	revoked, err := bits.Get(index)
	if err != nil {
		return false, fmt.Errorf("read status bit: %w", err)
	}

	return revoked, nil
}

func (s *Service) sendEvent(ctx context.Context, eventType spi.EventType, ep *EventPayload) error {
	payload, err := json.Marshal(ep)
	if err != nil {
		return err
	}

	event := spi.NewEventWithPayload(uuid.NewString(), eventSource, eventType, payload)
	event.TransactionID = ep.CredentialID

	return s.eventSvc.Publish(ctx, s.eventTopic, event)
}
