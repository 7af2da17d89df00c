/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// Spec: https://w3c-ccg.github.io/vc-status-list-2021/#statuslist2021credential
const (
	// StatusList2021VCType is the type of the published status list credential.
	StatusList2021VCType = "StatusList2021Credential"
	// StatusList2021VCSubjectType is the subject type of the status list credential.
	StatusList2021VCSubjectType = "StatusList2021"
	// StatusList2021EntryType is the type of the status entry embedded in issued credentials.
	StatusList2021EntryType = "StatusList2021Entry"
	// StatusListIndex identifies the bit position of the status value of the VC.
	StatusListIndex = "statusListIndex"
	// StatusListCredential stores the link to the status list VC.
	StatusListCredential = "statusListCredential"
	// StatusPurpose field of the status entry. Only "revocation" is supported.
	StatusPurpose = "statusPurpose"
	// StatusPurposeRevocation is the supported status purpose.
	StatusPurposeRevocation = "revocation"
	// StatusList2021Context for StatusList2021.
	StatusList2021Context = "https://w3id.org/vc/status-list/2021/v1"

	encodedListField = "encodedList"
	subjectTypeField = "type"
)

// NewEntry returns the status entry placed into issued credentials. The entry
// points at the bit allocated for the credential on the published list.
func NewEntry(index int, listURL string) *vcapi.TypedID {
	return &vcapi.TypedID{
		ID:   uuid.New().URN(),
		Type: StatusList2021EntryType,
		CustomFields: map[string]interface{}{
			StatusPurpose:        StatusPurposeRevocation,
			StatusListIndex:      strconv.Itoa(index),
			StatusListCredential: listURL,
		},
	}
}

// ValidateEntry checks that the status entry carries everything a revocation
// check needs.
func ValidateEntry(entry *vcapi.TypedID) error {
	if entry == nil {
		return fmt.Errorf("vc status not exist")
	}

	if entry.Type != StatusList2021EntryType {
		return fmt.Errorf("vc status %s not supported", entry.Type)
	}

	if entry.CustomFields[StatusListIndex] == nil {
		return fmt.Errorf("statusListIndex field not exist in vc status")
	}

	if entry.CustomFields[StatusListCredential] == nil {
		return fmt.Errorf("statusListCredential field not exist in vc status")
	}

	if entry.CustomFields[StatusPurpose] == nil {
		return fmt.Errorf("statusPurpose field not exist in vc status")
	}

	return nil
}

// EntryIndex returns the bit position referenced by the status entry.
func EntryIndex(entry *vcapi.TypedID) (int, error) {
	raw, ok := entry.CustomFields[StatusListIndex].(string)
	if !ok {
		return -1, fmt.Errorf("failed to cast statusListIndex")
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return -1, fmt.Errorf("unable to get statusListIndex: %w", err)
	}

	return index, nil
}

// EntryListURL returns the URL of the published status list credential.
func EntryListURL(entry *vcapi.TypedID) (string, error) {
	listURL, ok := entry.CustomFields[StatusListCredential].(string)
	if !ok {
		return "", fmt.Errorf("failed to cast URI of statusListCredential")
	}

	return listURL, nil
}

// CreateListCredential builds the published status list credential wrapping
// the encoded bit vector.
func CreateListCredential(listURL, issuerID, encodedList string, now time.Time) (*vcapi.Credential, error) {
	claims := vcapi.NewClaimSet()

	if err := claims.Set(subjectTypeField, vcapi.StringClaim(StatusList2021VCSubjectType)); err != nil {
		return nil, err
	}

	if err := claims.Set(StatusPurpose, vcapi.StringClaim(StatusPurposeRevocation)); err != nil {
		return nil, err
	}

	if err := claims.Set(encodedListField, vcapi.StringClaim(encodedList)); err != nil {
		return nil, err
	}

	issued := now.UTC()

	return &vcapi.Credential{
		Context: []string{vcapi.ContextV1, StatusList2021Context},
		ID:      listURL,
		Types:   []string{vcapi.VCType, StatusList2021VCType},
		Issuer:  issuerID,
		Issued:  &issued,
		Subject: vcapi.Subject{
			ID:     listURL + "#list",
			Claims: claims,
		},
	}, nil
}

// ParseListCredential extracts the encoded bit vector from a published status
// list credential document.
func ParseListCredential(doc []byte) (string, error) {
	var credential vcapi.Credential

	if err := json.Unmarshal(doc, &credential); err != nil {
		return "", fmt.Errorf("parse status list credential: %w", err)
	}

	var isStatusList bool

	for _, typ := range credential.Types {
		if typ == StatusList2021VCType {
			isStatusList = true
		}
	}

	if !isStatusList {
		return "", fmt.Errorf("credential is not a %s", StatusList2021VCType)
	}

	encoded, ok := credential.Subject.Claims.Get(encodedListField)
	if !ok || encoded.Kind != vcapi.ClaimKindString || encoded.Str == "" {
		return "", fmt.Errorf("status list credential has no encodedList")
	}

	return encoded.Str, nil
}
