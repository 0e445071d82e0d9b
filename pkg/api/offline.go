// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: offline.go holds the offline answer synthesizer used when
// the remote RAG pipeline is unreachable. Unlike the mock payloads, this
// path computes a response: a deterministic keyword classifier over the
// requested subject and question text selects from a small library of
// canned explanatory answers.
//
// Determinism is part of the contract. The same (subject, query) pair
// always selects the same answer and confidence; matching is first-hit
// over an ordered table with no randomness, so tests and repeated user
// queries agree.
package api

import (
	"strings"
	"unicode"
)

// cannedAnswer is one entry in the offline library.
type cannedAnswer struct {
	// keywords trigger this answer when any of them appears in the
	// lowercased query. Order within the per-subject list decides ties.
	keywords []string

	// text is the explanatory answer returned verbatim.
	text string

	// confidence reflects how specific the keyword match is. Generic
	// fallbacks sit well below keyword hits.
	confidence float64
}

// offlineLibrary maps each subject to its ordered answer table.
var offlineLibrary = map[Subject][]cannedAnswer{
	SubjectMathematics: {
		{
			keywords:   []string{"quadratic"},
			confidence: 0.9,
			text: "For a quadratic equation ax² + bx + c = 0, use the quadratic formula: " +
				"x = (-b ± √(b² - 4ac)) / 2a. The discriminant b² - 4ac tells you the nature " +
				"of the roots: positive means two distinct real roots, zero means one repeated " +
				"real root, negative means two complex conjugate roots.",
		},
		{
			keywords:   []string{"derivative", "differentiat"},
			confidence: 0.9,
			text: "To differentiate a polynomial, apply the power rule term by term: " +
				"d/dx(xⁿ) = n·xⁿ⁻¹. For example, if f(x) = x³ + 2x² - 5x + 7 then " +
				"f'(x) = 3x² + 4x - 5. Constants vanish, and the derivative of a sum is the " +
				"sum of the derivatives.",
		},
		{
			keywords:   []string{"integral", "integrat"},
			confidence: 0.9,
			text: "Integration reverses differentiation. For a definite integral, find an " +
				"antiderivative and evaluate at the bounds: ∫(2x + 3)dx from 0 to 2 gives " +
				"[x² + 3x] from 0 to 2 = (4 + 6) - 0 = 10. Remember the constant of " +
				"integration for indefinite integrals.",
		},
		{
			keywords:   []string{"matrix", "determinant", "inverse"},
			confidence: 0.85,
			text: "For a 2×2 matrix A = [[a, b], [c, d]], the determinant is ad - bc, and " +
				"the inverse is A⁻¹ = (1/det(A))·[[d, -b], [-c, a]], which exists only when " +
				"the determinant is non-zero.",
		},
	},
	SubjectPhysics: {
		{
			keywords:   []string{"ohm", "resistance", "circuit"},
			confidence: 0.9,
			text: "Ohm's law states that the current through a conductor is directly " +
				"proportional to the voltage across it, provided temperature remains " +
				"constant: V = IR, where V is voltage, I is current, and R is resistance. " +
				"Verify it with a battery, ammeter, voltmeter, and rheostat in series.",
		},
		{
			keywords:   []string{"photoelectric"},
			confidence: 0.9,
			text: "In the photoelectric effect, light of sufficient frequency ejects " +
				"electrons from a metal surface. Einstein's equation: hν = φ + KEmax, where " +
				"hν is the photon energy, φ is the work function, and KEmax is the maximum " +
				"kinetic energy of the emitted electrons.",
		},
		{
			keywords:   []string{"newton", "force", "acceleration"},
			confidence: 0.85,
			text: "Newton's second law relates force, mass, and acceleration: F = ma. For " +
				"kinematics problems, differentiate position for velocity and velocity for " +
				"acceleration; for example v = 3t² + 2t gives a = dv/dt = 6t + 2.",
		},
	},
	SubjectChemistry: {
		{
			keywords:   []string{"molarity", "molality", "concentration"},
			confidence: 0.9,
			text: "Molarity is moles of solute per litre of solution; molality is moles per " +
				"kilogram of solvent. Example: 4 g NaOH (molar mass 40) in 250 mL gives " +
				"0.1 mol / 0.25 L = 0.4 M.",
		},
		{
			keywords:   []string{"ph", "acid", "base"},
			confidence: 0.85,
			text: "pH measures hydrogen ion concentration: pH = -log[H⁺]. A 0.01 M strong " +
				"acid like HCl fully dissociates, so [H⁺] = 10⁻² M and pH = 2. Values below " +
				"7 are acidic, above 7 basic.",
		},
		{
			keywords:   []string{"sn1", "sn2", "mechanism"},
			confidence: 0.85,
			text: "SN1 is a two-step unimolecular substitution through a carbocation " +
				"intermediate (rate = k[substrate]); SN2 is a one-step bimolecular backside " +
				"attack (rate = k[substrate][nucleophile]). Tertiary substrates favor SN1, " +
				"primary favor SN2.",
		},
	},
	SubjectBiology: {
		{
			keywords:   []string{"dna", "double helix"},
			confidence: 0.9,
			text: "DNA is a double helix of two antiparallel polynucleotide chains with a " +
				"sugar-phosphate backbone. Bases pair by hydrogen bonds: A with T (two " +
				"bonds), G with C (three bonds). DNA stores genetic information and templates " +
				"replication and protein synthesis.",
		},
		{
			keywords:   []string{"photosynthesis"},
			confidence: 0.9,
			text: "Photosynthesis is how green plants synthesize glucose from CO₂ and water " +
				"using light energy: 6CO₂ + 6H₂O + light → C₆H₁₂O₆ + 6O₂. It occurs in " +
				"chloroplasts, split into light-dependent and light-independent reactions.",
		},
	},
}

// genericOfflineAnswer applies when no keyword matches.
const genericOfflineAnswer = "I can't reach the tutoring service right now, so here is some " +
	"general guidance: break the problem into smaller parts, write down what is given and " +
	"what is asked, and check your textbook's worked examples for this chapter. Ask again " +
	"when you're back online for a full answer with sources."

const genericOfflineConfidence = 0.5

// synthesizeAnswer classifies the query and returns the canned answer
// text and confidence.
//
// # Description
//
// Lowercases the query, walks the subject's ordered table, and returns
// the first entry with a keyword substring hit. An unknown or empty
// subject searches all subjects in the stable Subjects() order. No
// match yields the generic fallback.
//
// # Inputs
//
//   - subject: requested subject, may be empty
//   - query: the student's question text
//
// # Outputs
//
//   - string: answer text
//   - float64: confidence in [0, 1]
func synthesizeAnswer(subject Subject, query string) (string, float64) {
	q := strings.ToLower(query)
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	subjects := []Subject{subject}
	if !subject.Valid() {
		subjects = Subjects()
	}
	for _, s := range subjects {
		for _, entry := range offlineLibrary[s] {
			for _, kw := range entry.keywords {
				if keywordHits(q, words, kw) {
					return entry.text, entry.confidence
				}
			}
		}
	}
	return genericOfflineAnswer, genericOfflineConfidence
}

// keywordHits reports whether kw matches the query. Keywords of three
// characters or fewer ("ph", "dna", "ohm") only match as whole words so
// fragments inside longer words like "graph" or "phase" never trigger
// them; longer keywords match as plain substrings.
func keywordHits(q string, words []string, kw string) bool {
	if len(kw) > 3 {
		return strings.Contains(q, kw)
	}
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}
