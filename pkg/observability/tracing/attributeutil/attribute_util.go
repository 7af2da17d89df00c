/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package attributeutil builds span attributes with sensitive values redacted.
package attributeutil

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redactedValue = "[REDACTED]"

// JSON returns attribute with the value marshaled to JSON. Value can be redacted using WithRedacted option.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if gjson.GetBytes(b, path).Exists() {
			b, _ = sjson.SetBytes(b, path, redactedValue)
		}
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(b)),
	}
}

// FormParams returns attribute with value represented as form params. Value can be redacted using WithRedacted option.
func FormParams(key string, params map[string][]string, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	var buf strings.Builder

	for k, v := range params {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}

		for _, r := range op.redacted {
			if r == k {
				v = []string{redactedValue}
				break
			}
		}

		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(strings.Join(v, "&"))
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(buf.String()),
	}
}

type options struct {
	redacted []string
}

// Opt configures attribute building.
type Opt func(*options)

// WithRedacted marks the field at path as redacted.
func WithRedacted(path string) Opt {
	return func(op *options) {
		op.redacted = append(op.redacted, path)
	}
}
