// Package models provides core data structures shared by the chapter and QPF pipelines.
package models

import (
	"fmt"
	"strings"
)

// MenuSentinelKey is the raw metadata key that ends the fixed chapter-position
// fields of a menu track. Every key after it is a chapter entry.
const MenuSentinelKey = "chapters_pos_end"

// Field is one raw key/value pair of a metadata track, kept in extractor order.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MediaInfo is the subset of container metadata the pipelines need.
//
// It is produced by a metadata extractor (mediainfo or ffprobe) and treated
// as a read-only snapshot afterwards.
//
// Menu holds the fields of the first menu/chapter track in the order the
// extractor reported them, or nil when the container has no menu track.
type MediaInfo struct {
	Path       string  `json:"path"`
	DurationMs float64 `json:"duration_ms"`
	MenuCount  int     `json:"menu_count"`
	VideoCount int     `json:"video_count"`
	FrameRate  string  `json:"frame_rate"`
	Menu       []Field `json:"menu"`
}

// HasMenu reports whether the extractor found at least one menu stream with fields.
func (m *MediaInfo) HasMenu() bool {
	return m.MenuCount > 0 && len(m.Menu) > 0
}

// HasVideo reports whether the container has a video track.
func (m *MediaInfo) HasVideo() bool {
	return m.VideoCount > 0
}

// Validate checks that the metadata can drive chapter synthesis.
//
// Returns an error if:
//   - Path is empty or whitespace-only
//   - DurationMs is not positive
//   - MenuCount or VideoCount is negative
func (m *MediaInfo) Validate() error {
	if strings.TrimSpace(m.Path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if m.DurationMs <= 0 {
		return fmt.Errorf("duration must be greater than 0")
	}

	if m.MenuCount < 0 || m.VideoCount < 0 {
		return fmt.Errorf("stream counts cannot be negative")
	}

	return nil
}
