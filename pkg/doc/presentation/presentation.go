/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"

	vcapi "github.com/credentio/vce/pkg/doc/vc"
)

// VPType is the required type of a verifiable presentation.
const VPType = "VerifiablePresentation"

// Presentation is a holder-submitted bundle of credentials, decoded from the
// "vp" claim of a presentation token.
type Presentation struct {
	Context     []string
	ID          string
	Types       []string
	Credentials []*vcapi.Credential
	Holder      string
}

type rawPresentation struct {
	Context    stringOrArray   `json:"@context,omitempty"`
	ID         string          `json:"id,omitempty"`
	Type       stringOrArray   `json:"type,omitempty"`
	Credential json.RawMessage `json:"verifiableCredential,omitempty"`
	Holder     string          `json:"holder,omitempty"`
}

type tokenPayload struct {
	Issuer       string           `json:"iss,omitempty"`
	Presentation *rawPresentation `json:"vp,omitempty"`
}

// ParseTokenPayload decodes the presentation from a verified token payload.
// The holder is taken from the vp's holder field, falling back to the token
// issuer.
func ParseTokenPayload(payload []byte) (*Presentation, error) {
	var claims tokenPayload

	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal token payload: %w", err)
	}

	if claims.Presentation == nil {
		return nil, errors.New("token payload has no vp claim")
	}

	raw := claims.Presentation

	credentials, err := decodeCredentials(raw.Credential)
	if err != nil {
		return nil, err
	}

	holder := raw.Holder
	if holder == "" {
		holder = claims.Issuer
	}

	vp := &Presentation{
		Context:     raw.Context,
		ID:          raw.ID,
		Types:       raw.Type,
		Credentials: credentials,
		Holder:      holder,
	}

	if err = vp.validate(); err != nil {
		return nil, err
	}

	return vp, nil
}

// MarshalJSON converts the presentation to its JSON object form.
func (vp *Presentation) MarshalJSON() ([]byte, error) {
	credentials := make([]json.RawMessage, len(vp.Credentials))

	for i, credential := range vp.Credentials {
		doc, err := json.Marshal(credential)
		if err != nil {
			return nil, fmt.Errorf("marshal credential: %w", err)
		}

		credentials[i] = doc
	}

	credential, err := json.Marshal(credentials)
	if err != nil {
		return nil, err
	}

	return json.Marshal(&rawPresentation{
		Context:    vp.Context,
		ID:         vp.ID,
		Type:       vp.Types,
		Credential: credential,
		Holder:     vp.Holder,
	})
}

func (vp *Presentation) validate() error {
	if !lo.Contains(vp.Types, VPType) {
		return fmt.Errorf("presentation type must include %s", VPType)
	}

	if len(vp.Credentials) == 0 {
		return errors.New("presentation has no credentials")
	}

	return nil
}

// decodeCredentials accepts either a single credential object or an array of
// credential objects, matching what wallets put into the vp claim.
func decodeCredentials(raw json.RawMessage) ([]*vcapi.Credential, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var docs []json.RawMessage

	if err := json.Unmarshal(raw, &docs); err != nil {
		docs = []json.RawMessage{raw}
	}

	credentials := make([]*vcapi.Credential, len(docs))

	for i, doc := range docs {
		credential := &vcapi.Credential{}

		if err := json.Unmarshal(doc, credential); err != nil {
			return nil, fmt.Errorf("unmarshal credential at index %d: %w", i, err)
		}

		credentials[i] = credential
	}

	return credentials, nil
}

type stringOrArray []string

func (s *stringOrArray) UnmarshalJSON(data []byte) error {
	var single string

	if err := json.Unmarshal(data, &single); err == nil {
		*s = stringOrArray{single}

		return nil
	}

	var multiple []string

	if err := json.Unmarshal(data, &multiple); err != nil {
		return errors.New("value must be a string or an array of strings")
	}

	*s = multiple

	return nil
}

func (s stringOrArray) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}

	return json.Marshal([]string(s))
}
