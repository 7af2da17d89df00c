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
	"strconv"
	"time"
)

// ClaimKind defines the kind of a claim value.
type ClaimKind int

// Claim value kinds. Claim values are scalar; nested structures are rejected
// at the decoding boundary.
const (
	ClaimKindString ClaimKind = iota + 1
	ClaimKindNumber
	ClaimKindBoolean
	ClaimKindDate
)

// ClaimValue is a tagged claim value.
type ClaimValue struct {
	Kind ClaimKind
	Str  string
	Num  float64
	Bool bool
	Date time.Time
}

// StringClaim returns a string claim value.
func StringClaim(v string) ClaimValue {
	return ClaimValue{Kind: ClaimKindString, Str: v}
}

// NumberClaim returns a number claim value.
func NumberClaim(v float64) ClaimValue {
	return ClaimValue{Kind: ClaimKindNumber, Num: v}
}

// BooleanClaim returns a boolean claim value.
func BooleanClaim(v bool) ClaimValue {
	return ClaimValue{Kind: ClaimKindBoolean, Bool: v}
}

// DateClaim returns a date claim value.
func DateClaim(v time.Time) ClaimValue {
	return ClaimValue{Kind: ClaimKindDate, Date: v}
}

// Equal reports whether two claim values have the same kind and content.
func (v ClaimValue) Equal(other ClaimValue) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case ClaimKindString:
		return v.Str == other.Str
	case ClaimKindNumber:
		return v.Num == other.Num
	case ClaimKindBoolean:
		return v.Bool == other.Bool
	case ClaimKindDate:
		return v.Date.Equal(other.Date)
	default:
		return false
	}
}

// String returns the claim value rendered as a string.
func (v ClaimValue) String() string {
	switch v.Kind {
	case ClaimKindString:
		return v.Str
	case ClaimKindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ClaimKindBoolean:
		return strconv.FormatBool(v.Bool)
	case ClaimKindDate:
		return v.Date.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

func (v ClaimValue) marshal() ([]byte, error) {
	switch v.Kind {
	case ClaimKindString:
		return json.Marshal(v.Str)
	case ClaimKindNumber:
		return json.Marshal(v.Num)
	case ClaimKindBoolean:
		return json.Marshal(v.Bool)
	case ClaimKindDate:
		return json.Marshal(v.Date.UTC().Format(time.RFC3339))
	default:
		return nil, fmt.Errorf("unsupported claim kind %d", v.Kind)
	}
}

// Claim is a single named claim.
type Claim struct {
	Name  string
	Value ClaimValue
}

// ClaimSet is an ordered mapping from claim name to tagged value. Insertion
// order is preserved through JSON encode and decode.
type ClaimSet struct {
	claims []Claim
	index  map[string]int
}

// NewClaimSet returns an empty claim set.
func NewClaimSet() *ClaimSet {
	return &ClaimSet{index: make(map[string]int)}
}

// Set adds the claim or overwrites an existing one in place.
func (cs *ClaimSet) Set(name string, value ClaimValue) error {
	if name == "" {
		return errors.New("claim name is empty")
	}

	if cs.index == nil {
		cs.index = make(map[string]int)
	}

	if i, ok := cs.index[name]; ok {
		cs.claims[i].Value = value

		return nil
	}

	cs.index[name] = len(cs.claims)
	cs.claims = append(cs.claims, Claim{Name: name, Value: value})

	return nil
}

// Get returns the value of the named claim.
func (cs *ClaimSet) Get(name string) (ClaimValue, bool) {
	if cs == nil || cs.index == nil {
		return ClaimValue{}, false
	}

	i, ok := cs.index[name]
	if !ok {
		return ClaimValue{}, false
	}

	return cs.claims[i].Value, true
}

// Names returns the claim names in insertion order.
func (cs *ClaimSet) Names() []string {
	if cs == nil {
		return nil
	}

	names := make([]string, len(cs.claims))
	for i, c := range cs.claims {
		names[i] = c.Name
	}

	return names
}

// Claims returns the claims in insertion order.
func (cs *ClaimSet) Claims() []Claim {
	if cs == nil {
		return nil
	}

	claims := make([]Claim, len(cs.claims))
	copy(claims, cs.claims)

	return claims
}

// Len returns the number of claims.
func (cs *ClaimSet) Len() int {
	if cs == nil {
		return 0
	}

	return len(cs.claims)
}

// MarshalJSON encodes the claim set as a JSON object preserving insertion order.
func (cs *ClaimSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, c := range cs.claims {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')

		value, err := c.Value.marshal()
		if err != nil {
			return nil, fmt.Errorf("marshal claim %q: %w", c.Name, err)
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the claim set, tagging each value.
// Strings that parse as RFC 3339 timestamps decode as dates. Nested objects,
// arrays and nulls are rejected.
func (cs *ClaimSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode claims: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("decode claims: expected JSON object")
	}

	cs.claims = nil
	cs.index = make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode claims: %w", err)
		}

		name, ok := keyTok.(string)
		if !ok || name == "" {
			return errors.New("decode claims: empty claim name")
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode claims: %w", err)
		}

		value, err := tagToken(valTok)
		if err != nil {
			return fmt.Errorf("claim %q: %w", name, err)
		}

		if err = cs.Set(name, value); err != nil {
			return err
		}
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("decode claims: %w", err)
	}

	return nil
}

func tagToken(tok json.Token) (ClaimValue, error) {
	switch v := tok.(type) {
	case string:
		if date, err := time.Parse(time.RFC3339, v); err == nil {
			return DateClaim(date), nil
		}

		return StringClaim(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return ClaimValue{}, fmt.Errorf("invalid number: %w", err)
		}

		return NumberClaim(f), nil
	case bool:
		return BooleanClaim(v), nil
	case json.Delim:
		return ClaimValue{}, errors.New("nested claim values are not supported")
	default:
		return ClaimValue{}, errors.New("claim value must be a string, number, boolean or date")
	}
}
