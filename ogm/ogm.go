// Package ogm reads and writes OGM-style chapter text files.
//
// Each chapter takes two lines, numbered from 1 and zero-padded to two digits:
//
//	CHAPTER01=00:00:00.000
//	CHAPTER01NAME=Chapter 01
package ogm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"autoqpf/models"
)

// Write writes chapters in OGM format.
func Write(w io.Writer, chapters []models.Chapter) error {
	bw := bufio.NewWriter(w)
	for i, ch := range chapters {
		num := fmt.Sprintf("%02d", i+1)
		if _, err := fmt.Fprintf(bw, "CHAPTER%s=%s\nCHAPTER%sNAME=%s\n", num, ch.Timecode, num, ch.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes chapters to path and returns the path once the file exists.
func WriteFile(path string, chapters []models.Chapter) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chapter file: %w", err)
	}

	if err := Write(f, chapters); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write chapter file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close chapter file: %w", err)
	}

	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("chapter file %s was not created", path)
	}
	return path, nil
}

// ReadTimecodes returns the timecode of every chapter line.
//
// Chapter lines are the even-indexed lines (0, 2, 4, ...). Each is split
// once on '='; any other number of parts is reported as a
// *models.ChapterFileError.
func ReadTimecodes(r io.Reader) ([]string, error) {
	return readTimecodes(r, "")
}

// ReadFile opens path and returns its chapter timecodes.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chapter file: %w", err)
	}
	defer f.Close()

	return readTimecodes(f, path)
}

func readTimecodes(r io.Reader, path string) ([]string, error) {
	var timecodes []string

	scanner := bufio.NewScanner(r)
	for num := 0; scanner.Scan(); num++ {
		if num%2 != 0 {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			return nil, &models.ChapterFileError{
				Path:   path,
				Line:   num + 1,
				Reason: fmt.Sprintf("expected KEY=VALUE, got %q", line),
			}
		}
		timecodes = append(timecodes, parts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chapter file: %w", err)
	}

	return timecodes, nil
}
