/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package presentation implements the presentation definition model and the
// holder-submitted presentation envelope.
package presentation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// Filter constrains a matched field to an exact value.
type Filter struct {
	Const string `json:"const"`
}

// Field is a single field constraint inside an input descriptor. Path is a
// gjson path evaluated against the credential JSON, e.g.
// "credentialSubject.degree".
type Field struct {
	Path   string  `json:"path"`
	Filter *Filter `json:"filter,omitempty"`
}

// InputDescriptor describes one required credential: a credential type the
// holder must present plus the fields it must carry.
type InputDescriptor struct {
	ID             string   `json:"id"`
	CredentialType string   `json:"credential_type"`
	Fields         []*Field `json:"fields,omitempty"`
}

// Definition is an ordered list of input descriptors a verifier requires a
// presentation to satisfy.
type Definition struct {
	ID               string             `json:"id"`
	Purpose          string             `json:"purpose,omitempty"`
	InputDescriptors []*InputDescriptor `json:"input_descriptors"`
}

// Validate checks the definition structure.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return errors.New("definition id is required")
	}

	if len(d.InputDescriptors) == 0 {
		return errors.New("definition must have at least one input descriptor")
	}

	ids := make(map[string]struct{}, len(d.InputDescriptors))

	for _, descriptor := range d.InputDescriptors {
		if descriptor.ID == "" {
			return errors.New("input descriptor id is required")
		}

		if _, ok := ids[descriptor.ID]; ok {
			return fmt.Errorf("duplicate input descriptor id %q", descriptor.ID)
		}

		ids[descriptor.ID] = struct{}{}

		if descriptor.CredentialType == "" {
			return fmt.Errorf("input descriptor %q: credential type is required", descriptor.ID)
		}

		for _, field := range descriptor.Fields {
			if field == nil || field.Path == "" {
				return fmt.Errorf("input descriptor %q: field path is required", descriptor.ID)
			}
		}
	}

	return nil
}

// Match checks that every input descriptor is satisfied by at least one of
// the given credentials. A descriptor is satisfied when the credential types
// contain the descriptor's credential type, every field path resolves in the
// credential JSON and exact-value filters hold.
func (d *Definition) Match(credentials ...*vcapi.Credential) error {
	docs := make([][]byte, len(credentials))

	for i, credential := range credentials {
		doc, err := json.Marshal(credential)
		if err != nil {
			return fmt.Errorf("marshal credential for matching: %w", err)
		}

		docs[i] = doc
	}

	for _, descriptor := range d.InputDescriptors {
		if !descriptorMatches(descriptor, credentials, docs) {
			return fmt.Errorf("no credential satisfies input descriptor %q (type %s)",
				descriptor.ID, descriptor.CredentialType)
		}
	}

	return nil
}

func descriptorMatches(descriptor *InputDescriptor, credentials []*vcapi.Credential, docs [][]byte) bool {
	for i, credential := range credentials {
		if !lo.Contains(credential.Types, descriptor.CredentialType) {
			continue
		}

		if fieldsMatch(descriptor.Fields, docs[i]) {
			return true
		}
	}

	return false
}

func fieldsMatch(fields []*Field, doc []byte) bool {
	for _, field := range fields {
		result := gjson.GetBytes(doc, field.Path)
		if !result.Exists() {
			return false
		}

		if field.Filter != nil && result.String() != field.Filter.Const {
			return false
		}
	}

	return true
}
