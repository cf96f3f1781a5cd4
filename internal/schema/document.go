// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Canonical schema.org values for FAQ page documents
const (
	ContextURL   = "https://schema.org"
	TypeFAQPage  = "FAQPage"
	TypeQuestion = "Question"
	TypeAnswer   = "Answer"
)

// Document represents an untyped FAQPage JSON-LD document as decoded from
// JSON. It is read-only to the validators; all field access goes through
// shape-tagged Values so checks never panic on malformed input.
type Document map[string]any

// Kind identifies the runtime shape of a document value
type Kind int

const (
	// Missing means the key was not present in the document
	Missing Kind = iota
	// String is a JSON string value
	String
	// Mapping is a JSON object
	Mapping
	// Sequence is a JSON array
	Sequence
	// Other is any remaining JSON shape (number, bool, null)
	Other
)

// Value is a shape-tagged view of a single document field
type Value struct {
	Kind Kind
	raw  any
}

// ValueOf wraps an already-extracted raw value, e.g. a mainEntity element
func ValueOf(raw any) Value {
	switch raw.(type) {
	case string:
		return Value{Kind: String, raw: raw}
	case map[string]any:
		return Value{Kind: Mapping, raw: raw}
	case []any:
		return Value{Kind: Sequence, raw: raw}
	default:
		return Value{Kind: Other, raw: raw}
	}
}

// Field looks up a key on the document. JSON-LD keywords may appear with or
// without the @ prefix; both spellings are accepted for @-prefixed keys.
func (d Document) Field(key string) Value {
	if raw, ok := d[key]; ok {
		return ValueOf(raw)
	}
	if strings.HasPrefix(key, "@") {
		if raw, ok := d[strings.TrimPrefix(key, "@")]; ok {
			return ValueOf(raw)
		}
	}
	return Value{Kind: Missing}
}

// Present reports whether the field existed in the document
func (v Value) Present() bool {
	return v.Kind != Missing
}

// AsString returns the value as a string if it has string shape
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsSequence returns the value as a slice if it has array shape
func (v Value) AsSequence() ([]any, bool) {
	seq, ok := v.raw.([]any)
	return seq, ok
}

// AsMapping returns the value as a Document if it has object shape
func (v Value) AsMapping() (Document, bool) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Entities returns the mainEntity list. The second result is false when the
// field is absent or not an array.
func (d Document) Entities() ([]any, bool) {
	return d.Field("mainEntity").AsSequence()
}

// EntityCount returns the number of mainEntity entries, 0 when the field is
// absent or malformed.
func (d Document) EntityCount() int {
	entities, ok := d.Entities()
	if !ok {
		return 0
	}
	return len(entities)
}

// QuestionText returns the question text of a mainEntity element where
// available: the element must be an object with a string name field.
func QuestionText(entity any) (string, bool) {
	m, ok := ValueOf(entity).AsMapping()
	if !ok {
		return "", false
	}
	return m.Field("name").AsString()
}

// AnswerText returns the accepted answer text of a mainEntity element where
// available, guarding every access on the way down.
func AnswerText(entity any) (string, bool) {
	m, ok := ValueOf(entity).AsMapping()
	if !ok {
		return "", false
	}
	answer, ok := m.Field("acceptedAnswer").AsMapping()
	if !ok {
		return "", false
	}
	return answer.Field("text").AsString()
}

// ParseDocument decodes a JSON-LD document from raw bytes
func ParseDocument(data []byte) (Document, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("error parsing document: %w", err)
	}

	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a JSON object")
	}

	return Document(m), nil
}
