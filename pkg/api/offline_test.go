// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSynthesizeAnswer_QuadraticMath verifies the canonical mathematics
// match: a quadratic question gets the quadratic formula explanation at
// high confidence.
func TestSynthesizeAnswer_QuadraticMath(t *testing.T) {
	text, confidence := synthesizeAnswer(SubjectMathematics, "How do I solve a quadratic equation?")
	assert.Contains(t, text, "quadratic formula")
	assert.Equal(t, 0.9, confidence)
}

// TestSynthesizeAnswer_Deterministic verifies repeated calls with the
// same inputs produce identical output.
func TestSynthesizeAnswer_Deterministic(t *testing.T) {
	queries := []struct {
		subject Subject
		query   string
	}{
		{SubjectMathematics, "solve x² - 5x + 6 = 0 with the quadratic method"},
		{SubjectPhysics, "state ohm's law"},
		{SubjectChemistry, "how do I calculate molarity"},
		{Subject(""), "what is the meaning of life"},
	}
	for _, q := range queries {
		text1, conf1 := synthesizeAnswer(q.subject, q.query)
		text2, conf2 := synthesizeAnswer(q.subject, q.query)
		assert.Equal(t, text1, text2, "text must be stable for %q", q.query)
		assert.Equal(t, conf1, conf2, "confidence must be stable for %q", q.query)
	}
}

// TestSynthesizeAnswer_CaseInsensitive verifies keyword matching ignores
// query casing.
func TestSynthesizeAnswer_CaseInsensitive(t *testing.T) {
	lower, _ := synthesizeAnswer(SubjectMathematics, "quadratic roots")
	upper, _ := synthesizeAnswer(SubjectMathematics, "QUADRATIC ROOTS")
	assert.Equal(t, lower, upper)
}

// TestSynthesizeAnswer_GenericFallback verifies unmatched queries get
// the generic answer at reduced confidence.
func TestSynthesizeAnswer_GenericFallback(t *testing.T) {
	text, confidence := synthesizeAnswer(SubjectMathematics, "tell me about the French Revolution")
	assert.Equal(t, genericOfflineAnswer, text)
	assert.Equal(t, genericOfflineConfidence, confidence)
}

// TestSynthesizeAnswer_UnknownSubjectSearchesAll verifies an invalid or
// empty subject widens matching to every table instead of failing.
func TestSynthesizeAnswer_UnknownSubjectSearchesAll(t *testing.T) {
	text, confidence := synthesizeAnswer(Subject(""), "solve this quadratic")
	assert.Contains(t, text, "quadratic formula")
	assert.Equal(t, 0.9, confidence)
}

// TestSynthesizeAnswer_SubjectScoping verifies the subject selects which
// table is searched: a physics query does not match mathematics entries.
func TestSynthesizeAnswer_SubjectScoping(t *testing.T) {
	mathText, _ := synthesizeAnswer(SubjectMathematics, "quadratic")
	physText, _ := synthesizeAnswer(SubjectPhysics, "quadratic")
	assert.NotEqual(t, mathText, physText)
	assert.Equal(t, genericOfflineAnswer, physText)
}

// TestOfflineLibrary_EveryEntryUsable is a sanity sweep over the whole
// table: every entry has keywords, text, and an in-range confidence,
// and each keyword actually triggers its subject's table.
func TestOfflineLibrary_EveryEntryUsable(t *testing.T) {
	for subject, entries := range offlineLibrary {
		for _, entry := range entries {
			assert.NotEmpty(t, entry.keywords, "subject %s has an entry with no keywords", subject)
			assert.NotEmpty(t, entry.text, "subject %s has an entry with no text", subject)
			assert.Greater(t, entry.confidence, genericOfflineConfidence,
				"keyword matches must outrank the generic fallback")
			assert.LessOrEqual(t, entry.confidence, 1.0)

			for _, kw := range entry.keywords {
				text, conf := synthesizeAnswer(subject, "please explain "+kw+" to me")
				assert.NotEqual(t, genericOfflineAnswer, text,
					"keyword %q for %s fell through to the generic answer", kw, subject)
				assert.Greater(t, conf, genericOfflineConfidence)
			}
		}
	}
}

// TestSynthesizeAnswer_ShortKeywordWordBoundary verifies short keywords
// match as whole words wherever they sit in the query, including at the
// very end, and never fire inside longer words.
func TestSynthesizeAnswer_ShortKeywordWordBoundary(t *testing.T) {
	for _, query := range []string{"what is pH", "what is ph?", "explain pH values to me"} {
		text, confidence := synthesizeAnswer(SubjectChemistry, query)
		assert.Contains(t, text, "hydrogen ion", "query %q should hit the pH entry", query)
		assert.Equal(t, 0.85, confidence)
	}

	// "graph" contains "ph" but must not trigger the chemistry entry.
	text, _ := synthesizeAnswer(SubjectChemistry, "draw a graph of the results")
	assert.Equal(t, genericOfflineAnswer, text)
}

// TestSynthesizeAnswer_FirstHitWins verifies ordered matching: when a
// query contains keywords from two entries, the earlier entry answers.
func TestSynthesizeAnswer_FirstHitWins(t *testing.T) {
	text, _ := synthesizeAnswer(SubjectMathematics, "quadratic derivative")
	assert.True(t, strings.Contains(text, "quadratic formula"),
		"the first matching entry in table order must win")
}
