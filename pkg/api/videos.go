// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package api: videos.go wraps the curated-video lookup endpoints. The
// catalog lives only on the backend, so every operation propagates
// failures. Curation itself is an admin operation and is not exposed
// here.
package api

import (
	"context"
	"time"
)

// Video is one curated educational video.
type Video struct {
	ID              string           `json:"id"`
	YouTubeID       string           `json:"youtube_id"`
	Title           string           `json:"title"`
	Transcript      string           `json:"transcript,omitempty"`
	Timestamps      []map[string]any `json:"timestamps,omitempty"`
	TopicIDs        []string         `json:"topic_ids"`
	Subject         Subject          `json:"subject,omitempty"`
	DurationSeconds int              `json:"duration_seconds,omitempty"`
	ChannelName     string           `json:"channel_name,omitempty"`
	Metadata        map[string]any   `json:"metadata,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// GetVideosByTopic fetches videos covering a topic. Limit defaults
// server-side to 10.
func (c *Client) GetVideosByTopic(ctx context.Context, topicID string, limit *int) ([]Video, error) {
	path := newQuery().
		addInt("limit", limit).
		path("/videos/topic/" + pathEscape(topicID))
	var out []Video
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Video{}
	}
	return out, nil
}

// GetVideosBySubject fetches videos for a whole subject. Limit defaults
// server-side to 20.
func (c *Client) GetVideosBySubject(ctx context.Context, subject Subject, limit *int) ([]Video, error) {
	path := newQuery().
		addInt("limit", limit).
		path("/videos/subject/" + pathEscape(string(subject)))
	var out []Video
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Video{}
	}
	return out, nil
}

// GetVideo fetches one video by its catalog id.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	var out Video
	if err := c.getJSON(ctx, "/videos/"+pathEscape(videoID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVideoByYouTubeID fetches one video by its YouTube id.
func (c *Client) GetVideoByYouTubeID(ctx context.Context, youtubeID string) (*Video, error) {
	var out Video
	if err := c.getJSON(ctx, "/videos/youtube/"+pathEscape(youtubeID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
