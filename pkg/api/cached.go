// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/Schoolhouse/pkg/localstore"
)

// loadList reads the record list stored under key. A missing key is an
// empty list, never an error: offline readers must work on first use.
func loadList[T any](s localstore.Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read local list %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode local list %s: %w", key, err)
	}
	return items, nil
}

// saveList writes the record list under key, replacing any previous
// value.
func saveList[T any](s localstore.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode local list %s: %w", key, err)
	}
	if err := s.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write local list %s: %w", key, err)
	}
	return nil
}

// prependRecord inserts record at the head of the list under key, so
// degraded reads see newest-first ordering like the backend's.
func prependRecord[T any](s localstore.Store, key string, record T) error {
	items, err := loadList[T](s, key)
	if err != nil {
		return err
	}
	items = append([]T{record}, items...)
	return saveList(s, key, items)
}

// paginate applies offset/limit slicing and returns the page plus the
// pre-slice total.
func paginate[T any](items []T, offset, limit int) ([]T, int) {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		return []T{}, total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return items[offset:end], total
}
