// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"@context": "https://schema.org", "@type": "FAQPage"}`))
	require.NoError(t, err)
	assert.Equal(t, "FAQPage", doc["@type"])
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"@type": `))
	assert.Error(t, err)
}

func TestParseDocumentNonObjectRoot(t *testing.T) {
	_, err := ParseDocument([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)

	_, err = ParseDocument([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestFieldAtPrefixFallback(t *testing.T) {
	doc := Document{"context": "https://schema.org"}

	value := doc.Field("@context")
	assert.True(t, value.Present())

	s, ok := value.AsString()
	assert.True(t, ok)
	assert.Equal(t, "https://schema.org", s)
}

func TestFieldPrefersExactKey(t *testing.T) {
	doc := Document{"@type": "FAQPage", "type": "shadowed"}

	s, ok := doc.Field("@type").AsString()
	assert.True(t, ok)
	assert.Equal(t, "FAQPage", s)
}

func TestFieldMissing(t *testing.T) {
	doc := Document{}
	value := doc.Field("@context")
	assert.False(t, value.Present())
	assert.Equal(t, Missing, value.Kind)

	_, ok := value.AsString()
	assert.False(t, ok)
}

func TestValueOfKinds(t *testing.T) {
	assert.Equal(t, String, ValueOf("text").Kind)
	assert.Equal(t, Mapping, ValueOf(map[string]any{}).Kind)
	assert.Equal(t, Sequence, ValueOf([]any{}).Kind)
	assert.Equal(t, Other, ValueOf(42.0).Kind)
	assert.Equal(t, Other, ValueOf(nil).Kind)
	assert.Equal(t, Other, ValueOf(true).Kind)
}

func TestEntities(t *testing.T) {
	doc := Document{"mainEntity": []any{map[string]any{"name": "Q1"}}}

	entities, ok := doc.Entities()
	assert.True(t, ok)
	assert.Len(t, entities, 1)
	assert.Equal(t, 1, doc.EntityCount())
}

func TestEntitiesMalformed(t *testing.T) {
	absent := Document{}
	_, ok := absent.Entities()
	assert.False(t, ok)
	assert.Equal(t, 0, absent.EntityCount())

	wrongShape := Document{"mainEntity": "not a list"}
	_, ok = wrongShape.Entities()
	assert.False(t, ok)
	assert.Equal(t, 0, wrongShape.EntityCount())
}

func TestQuestionText(t *testing.T) {
	text, ok := QuestionText(map[string]any{"name": "What is this?"})
	assert.True(t, ok)
	assert.Equal(t, "What is this?", text)

	_, ok = QuestionText("not an object")
	assert.False(t, ok)

	_, ok = QuestionText(map[string]any{"name": 42.0})
	assert.False(t, ok)
}

func TestAnswerText(t *testing.T) {
	entity := map[string]any{
		"acceptedAnswer": map[string]any{"text": "An answer."},
	}
	text, ok := AnswerText(entity)
	assert.True(t, ok)
	assert.Equal(t, "An answer.", text)

	_, ok = AnswerText(map[string]any{"acceptedAnswer": "flat"})
	assert.False(t, ok)

	_, ok = AnswerText(nil)
	assert.False(t, ok)
}
