package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the chapter and QPF pipelines. Match them with errors.Is.
var (
	// ErrNoChapterData means there was no chapter track, the chapter list
	// was empty, or a chapter file produced no timecodes.
	ErrNoChapterData = errors.New("no chapter data")

	// ErrImproperChapterFile means a chapter text file line did not split
	// into exactly two '='-delimited parts.
	ErrImproperChapterFile = errors.New("improper or corrupt chapter file")

	// ErrChapterIndex means the menu sentinel key is absent from the metadata.
	ErrChapterIndex = errors.New("cannot find the position of " + MenuSentinelKey)
)

// ChapterFileError describes a malformed line of a chapter text file.
type ChapterFileError struct {
	Path   string
	Line   int // 1-based
	Reason string
}

func (e *ChapterFileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, ErrImproperChapterFile, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.Path, e.Line, ErrImproperChapterFile, e.Reason)
}

func (e *ChapterFileError) Unwrap() error {
	return ErrImproperChapterFile
}
