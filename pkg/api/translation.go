// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: translation.go wraps the multilingual support endpoints.
// The backend surfaces an uninitialized translation service as a 503;
// that still propagates here because these operations are not in the
// fallback tables.
package api

import (
	"context"
	"net/http"
)

// Translation is a single translated text.
type Translation struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language,omitempty"`
}

// TranslateParams are the inputs for Translate. SourceLanguage empty
// means auto-detect.
type TranslateParams struct {
	Text           string `validate:"required"`
	TargetLanguage string `validate:"required"`
	SourceLanguage string
}

// Translate translates one text to the target language.
func (c *Client) Translate(ctx context.Context, p TranslateParams) (*Translation, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"text":            p.Text,
		"target_language": p.TargetLanguage,
	}
	if p.SourceLanguage != "" {
		body["source_language"] = p.SourceLanguage
	}
	var out Translation
	if err := c.sendJSON(ctx, http.MethodPost, "/translation/translate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchTranslation is the result of translating several texts at once.
type BatchTranslation struct {
	OriginalTexts   []string `json:"original_texts"`
	TranslatedTexts []string `json:"translated_texts"`
	TargetLanguage  string   `json:"target_language"`
	SourceLanguage  string   `json:"source_language,omitempty"`
}

// TranslateBatchParams are the inputs for TranslateBatch.
type TranslateBatchParams struct {
	Texts          []string `validate:"required,min=1,max=50,dive,required"`
	TargetLanguage string   `validate:"required"`
	SourceLanguage string
}

// TranslateBatch translates several texts in one call, preserving
// order.
func (c *Client) TranslateBatch(ctx context.Context, p TranslateBatchParams) (*BatchTranslation, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	body := map[string]any{
		"texts":           p.Texts,
		"target_language": p.TargetLanguage,
	}
	if p.SourceLanguage != "" {
		body["source_language"] = p.SourceLanguage
	}
	var out BatchTranslation
	if err := c.sendJSON(ctx, http.MethodPost, "/translation/translate/batch", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetectedLanguage is a language-detection result.
type DetectedLanguage struct {
	Text       string  `json:"text"`
	Language   string  `json:"detected_language"`
	Confidence float64 `json:"confidence"`
}

// DetectLanguage detects the language of a text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*DetectedLanguage, error) {
	path := newQuery().
		addString("text", text).
		path("/translation/detect")
	var out DetectedLanguage
	if err := c.sendJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupportedLanguages lists the languages the backend can translate.
type SupportedLanguages struct {
	Languages []string `json:"languages"`
}

// ListLanguages fetches the supported language list.
func (c *Client) ListLanguages(ctx context.Context) (*SupportedLanguages, error) {
	var out SupportedLanguages
	if err := c.getJSON(ctx, "/translation/languages", &out); err != nil {
		return nil, err
	}
	if out.Languages == nil {
		out.Languages = []string{}
	}
	return &out, nil
}
