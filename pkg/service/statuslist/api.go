/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"context"
	"time"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// ListState is the persisted allocation state of the status list: the
// allocation cursor, the credential-to-index assignments and the encoded bit
// vector. Indexes are handed out monotonically and never reused.
type ListState struct {
	ListURL     string         `json:"listUrl"`
	ListSize    int            `json:"listSize"`
	NextIndex   int            `json:"nextIndex"`
	Entries     map[string]int `json:"entries"`
	EncodedList string         `json:"encodedList"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// StateStore stores the status list allocation state.
type StateStore stateStore

// ListStore stores the published status list document.
type ListStore listStore

// ServiceInterface defines the status list operations.
type ServiceInterface interface {
	AllocateEntry(ctx context.Context, credentialID string) (*vcapi.TypedID, error)
	Revoke(ctx context.Context, credentialID string) (bool, error)
	CheckStatus(ctx context.Context, credentialID string) (bool, error)
	CheckStatusAtIndex(ctx context.Context, index int) (bool, error)
	EncodedList(ctx context.Context) (string, error)
	ListCredential(ctx context.Context) ([]byte, error)
}

// EventPayload is the body attached to status lifecycle events.
type EventPayload struct {
	CredentialID string `json:"credentialId,omitempty"`
	ListURL      string `json:"listUrl,omitempty"`
	Index        int    `json:"index"`
	Revoked      bool   `json:"revoked"`
}
