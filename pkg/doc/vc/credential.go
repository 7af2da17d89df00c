/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// ContextV1 is the base credentials context.
const ContextV1 = "https://www.w3.org/2018/credentials/v1"

// VCType is the base credential type.
const VCType = "VerifiableCredential"

// TypedID defines a typed identifier with optional custom fields, such as a
// credential status reference.
type TypedID struct {
	ID   string
	Type string

	CustomFields map[string]interface{}
}

// MarshalJSON flattens the custom fields next to id and type.
func (t *TypedID) MarshalJSON() ([]byte, error) {
	all := make(map[string]interface{}, len(t.CustomFields)+2)

	for k, v := range t.CustomFields {
		all[k] = v
	}

	all["id"] = t.ID
	all["type"] = t.Type

	return json.Marshal(all)
}

// UnmarshalJSON lifts id and type and keeps the remaining fields as custom.
func (t *TypedID) UnmarshalJSON(data []byte) error {
	all := make(map[string]interface{})

	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("decode typed id: %w", err)
	}

	if id, ok := all["id"].(string); ok {
		t.ID = id
	}

	if typ, ok := all["type"].(string); ok {
		t.Type = typ
	}

	delete(all, "id")
	delete(all, "type")

	if len(all) > 0 {
		t.CustomFields = all
	}

	return nil
}

// StringField returns the named custom field as a string.
func (t *TypedID) StringField(name string) string {
	if t == nil || t.CustomFields == nil {
		return ""
	}

	v, _ := t.CustomFields[name].(string)

	return v
}

// Subject is the credential subject: an optional holder identifier plus the
// ordered claims.
type Subject struct {
	ID     string
	Claims *ClaimSet
}

// Credential is the compact credential document exchanged by the issuance and
// verification flows.
type Credential struct {
	Context []string
	ID      string
	Types   []string
	Issuer  string
	Subject Subject
	Issued  *time.Time
	Expired *time.Time
	Status  *TypedID
}

// Validate checks the structural invariants of the credential.
func (c *Credential) Validate() error {
	if c.ID == "" {
		return errors.New("credential id is required")
	}

	if !lo.Contains(c.Types, VCType) {
		return fmt.Errorf("credential type must include %s", VCType)
	}

	if c.Issuer == "" {
		return errors.New("credential issuer is required")
	}

	return nil
}

type rawCredential struct {
	Context []string        `json:"@context,omitempty"`
	ID      string          `json:"id,omitempty"`
	Types   []string        `json:"type,omitempty"`
	Issuer  string          `json:"issuer,omitempty"`
	Issued  string          `json:"issuanceDate,omitempty"`
	Expired string          `json:"expirationDate,omitempty"`
	Subject json.RawMessage `json:"credentialSubject,omitempty"`
	Status  *TypedID        `json:"credentialStatus,omitempty"`
}

// MarshalJSON encodes the credential in its wire form. Subject claims keep
// their insertion order.
func (c *Credential) MarshalJSON() ([]byte, error) {
	raw := &rawCredential{
		Context: c.Context,
		ID:      c.ID,
		Types:   c.Types,
		Issuer:  c.Issuer,
		Status:  c.Status,
	}

	if c.Issued != nil {
		raw.Issued = c.Issued.UTC().Format(time.RFC3339)
	}

	if c.Expired != nil {
		raw.Expired = c.Expired.UTC().Format(time.RFC3339)
	}

	subject, err := marshalSubject(c.Subject)
	if err != nil {
		return nil, err
	}

	raw.Subject = subject

	return json.Marshal(raw)
}

// UnmarshalJSON decodes the credential from its wire form.
func (c *Credential) UnmarshalJSON(data []byte) error {
	raw := &rawCredential{}

	if err := json.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("decode credential: %w", err)
	}

	c.Context = raw.Context
	c.ID = raw.ID
	c.Types = raw.Types
	c.Issuer = raw.Issuer
	c.Status = raw.Status

	if raw.Issued != "" {
		issued, err := time.Parse(time.RFC3339, raw.Issued)
		if err != nil {
			return fmt.Errorf("decode credential issuance date: %w", err)
		}

		c.Issued = &issued
	}

	if raw.Expired != "" {
		expired, err := time.Parse(time.RFC3339, raw.Expired)
		if err != nil {
			return fmt.Errorf("decode credential expiration date: %w", err)
		}

		c.Expired = &expired
	}

	if len(raw.Subject) > 0 {
		subject, err := unmarshalSubject(raw.Subject)
		if err != nil {
			return err
		}

		c.Subject = subject
	}

	return nil
}

func marshalSubject(subject Subject) (json.RawMessage, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	if subject.ID != "" {
		id, err := json.Marshal(subject.ID)
		if err != nil {
			return nil, err
		}

		buf.WriteString(`"id":`)
		buf.Write(id)
	}

	if subject.Claims != nil {
		for _, claim := range subject.Claims.Claims() {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}

			name, err := json.Marshal(claim.Name)
			if err != nil {
				return nil, err
			}

			value, err := claim.Value.marshal()
			if err != nil {
				return nil, fmt.Errorf("marshal subject claim %q: %w", claim.Name, err)
			}

			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func unmarshalSubject(data []byte) (Subject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Subject{}, fmt.Errorf("decode credential subject: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Subject{}, errors.New("decode credential subject: expected JSON object")
	}

	subject := Subject{Claims: NewClaimSet()}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Subject{}, fmt.Errorf("decode credential subject: %w", err)
		}

		name, ok := keyTok.(string)
		if !ok {
			return Subject{}, errors.New("decode credential subject: invalid field name")
		}

		valTok, err := dec.Token()
		if err != nil {
			return Subject{}, fmt.Errorf("decode credential subject: %w", err)
		}

		if name == "id" {
			id, ok := valTok.(string)
			if !ok {
				return Subject{}, errors.New("decode credential subject: id must be a string")
			}

			subject.ID = id

			continue
		}

		value, err := tagToken(valTok)
		if err != nil {
			return Subject{}, fmt.Errorf("subject claim %q: %w", name, err)
		}

		if err = subject.Claims.Set(name, value); err != nil {
			return Subject{}, err
		}
	}

	if _, err = dec.Token(); err != nil {
		return Subject{}, fmt.Errorf("decode credential subject: %w", err)
	}

	return subject, nil
}
