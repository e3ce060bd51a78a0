// Package qpf converts chapter timecodes into QPF keyframe files: one
// "<frame> K" line per chapter, for encoders that force keyframes at
// listed frame numbers.
package qpf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"autoqpf/chapters"
	"autoqpf/internal/timecode"
	"autoqpf/models"
	"autoqpf/ogm"
)

// Extension is the suffix of QPF files.
const Extension = ".qpf"

// ReadTimecodesFromText reads the chapter timecodes of an OGM chapter text file.
func ReadTimecodesFromText(path string) ([]string, error) {
	return ogm.ReadFile(path)
}

// ReadTimecodesFromMedia returns the chapter timecodes embedded in a media file.
//
// It needs at least one menu stream with chapter entries; otherwise it
// returns models.ErrNoChapterData. A menu without the sentinel key returns
// models.ErrChapterIndex.
func ReadTimecodesFromMedia(info *models.MediaInfo) ([]string, error) {
	if info == nil || !info.HasMenu() {
		return nil, fmt.Errorf("input file has no chapter track: %w", models.ErrNoChapterData)
	}

	entries, err := chapters.ParseMenu(info.Menu)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("input file has an empty chapter track: %w", models.ErrNoChapterData)
	}

	timecodes := make([]string, len(entries))
	for i, e := range entries {
		timecodes[i] = e.Timecode
	}
	return timecodes, nil
}

// FramePositions converts every timecode to a frame number at fps.
func FramePositions(timecodes []string, fps float64) ([]int, error) {
	frames := make([]int, len(timecodes))
	for i, tc := range timecodes {
		frame, err := timecode.FramePosition(tc, fps)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", i+1, err)
		}
		frames[i] = frame
	}
	return frames, nil
}

// Write writes frames in QPF format.
func Write(w io.Writer, frames []int) error {
	bw := bufio.NewWriter(w)
	for _, frame := range frames {
		if _, err := fmt.Fprintf(bw, "%d K\n", frame); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes frames to path.
func WriteFile(path string, frames []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create qpf file: %w", err)
	}

	if err := Write(f, frames); err != nil {
		f.Close()
		return fmt.Errorf("failed to write qpf file: %w", err)
	}
	return f.Close()
}

// AutoOutput derives the QPF path for an input by replacing its extension.
//
//	AutoOutput("/movies/movie.mkv") // "/movies/movie.qpf"
func AutoOutput(input string) string {
	return trimExt(input) + Extension
}

// ChapterOutput derives the path of the intermediate chapter file written
// while generating chapters for a media input.
//
//	ChapterOutput("/movies/movie.mkv") // "/movies/movie_chapters.txt"
func ChapterOutput(input string) string {
	return trimExt(input) + "_chapters" + TextExtension
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
