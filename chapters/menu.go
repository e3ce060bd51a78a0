// Package chapters classifies the chapter markers of a media file and
// normalizes them into a chapter text file, synthesizing evenly spaced
// chapters when the existing ones are missing or not wanted.
package chapters

import (
	"fmt"

	"autoqpf/internal/timecode"
	"autoqpf/models"
)

// ParseMenu turns the raw fields of a menu track into chapter entries.
//
// Every field after models.MenuSentinelKey is a chapter: its key is the
// offset and its value the label. Order is preserved. A menu without the
// sentinel returns models.ErrChapterIndex.
func ParseMenu(fields []models.Field) ([]models.ChapterEntry, error) {
	start := -1
	for i, f := range fields {
		if f.Key == models.MenuSentinelKey {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("menu has %d fields: %w", len(fields), models.ErrChapterIndex)
	}

	entries := make([]models.ChapterEntry, 0, len(fields)-start)
	for _, f := range fields[start:] {
		entries = append(entries, models.ChapterEntry{
			Key:      f.Key,
			Timecode: timecode.FromKey(f.Key),
			Label:    f.Value,
		})
	}
	return entries, nil
}
