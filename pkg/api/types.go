// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

// Subject identifies a curriculum subject. Values match the backend's
// enum exactly; they appear in paths, query strings, and payloads.
type Subject string

const (
	SubjectMathematics Subject = "mathematics"
	SubjectPhysics     Subject = "physics"
	SubjectChemistry   Subject = "chemistry"
	SubjectBiology     Subject = "biology"
)

// Subjects lists all known subjects in a stable order.
func Subjects() []Subject {
	return []Subject{SubjectMathematics, SubjectPhysics, SubjectChemistry, SubjectBiology}
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	switch s {
	case SubjectMathematics, SubjectPhysics, SubjectChemistry, SubjectBiology:
		return true
	}
	return false
}

// Source is one retrieval citation attached to an answer.
type Source struct {
	// Source names the cited document or chunk.
	Source string `json:"source"`

	// Score is the retrieval relevance, when the backend reports one.
	Score float64 `json:"score,omitempty"`
}
