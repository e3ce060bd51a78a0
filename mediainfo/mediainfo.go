// Package mediainfo extracts chapter-relevant metadata from media files
// using the mediainfo command-line tool.
package mediainfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"autoqpf/models"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "mediainfo"

// Prober runs mediainfo and decodes its JSON report.
type Prober struct {
	Binary string
	Logger zerolog.Logger
}

// NewProber creates a Prober for the given binary (DefaultBinary if empty).
func NewProber(binary string, logger zerolog.Logger) *Prober {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &Prober{Binary: binary, Logger: logger}
}

// Probe analyzes a media file with `mediainfo --Full --Output=JSON`.
//
// --Full is required: only the full report carries the Chapters_Pos_Begin
// and Chapters_Pos_End fields that delimit the chapter entries of a menu track.
//
// Example:
//
//	info, err := mediainfo.NewProber("", zerolog.Nop()).Probe(ctx, "movie.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Menus: %d, fps: %s\n", info.MenuCount, info.FrameRate)
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*models.MediaInfo, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	args := []string{"--Full", "--Output=JSON", sourcePath}
	p.Logger.Debug().Str("binary", p.Binary).Strs("args", args).Msg("running mediainfo")

	cmd := exec.CommandContext(ctx, p.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("mediainfo failed: %w (output: %s)", err, strings.TrimSpace(stderr.String()))
	}

	info, err := Decode(bytes.NewReader(output))
	if err != nil {
		return nil, err
	}
	info.Path = sourcePath

	p.Logger.Debug().
		Float64("duration_ms", info.DurationMs).
		Int("menus", info.MenuCount).
		Int("videos", info.VideoCount).
		Str("frame_rate", info.FrameRate).
		Msg("mediainfo report decoded")
	return info, nil
}

type report struct {
	Media *struct {
		Ref    string            `json:"@ref"`
		Tracks []json.RawMessage `json:"track"`
	} `json:"media"`
}

// Decode reads a mediainfo JSON report.
//
// Track fields are kept in report order, keys lowercased. Nested objects
// such as a menu's "extra" block are flattened in place, with their keys'
// leading underscore removed, so chapter offsets follow chapters_pos_end.
func Decode(r io.Reader) (*models.MediaInfo, error) {
	var rep report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to parse mediainfo JSON output: %w", err)
	}
	if rep.Media == nil {
		return nil, fmt.Errorf("mediainfo report has no media section")
	}

	info := &models.MediaInfo{Path: rep.Media.Ref}
	menus, videos := 0, 0
	var menuCount, videoCount string

	for i, raw := range rep.Media.Tracks {
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse track %d: %w", i, err)
		}

		switch lookup(fields, "@type") {
		case "General":
			menuCount = lookup(fields, "menucount")
			videoCount = lookup(fields, "videocount")
			if d := lookup(fields, "duration"); d != "" {
				seconds, err := strconv.ParseFloat(d, 64)
				if err != nil {
					return nil, fmt.Errorf("failed to parse duration '%s': %w", d, err)
				}
				info.DurationMs = seconds * 1000
			}
		case "Video":
			if videos == 0 {
				info.FrameRate = lookup(fields, "framerate")
			}
			videos++
		case "Menu":
			if menus == 0 {
				info.Menu = fields
			}
			menus++
		}
	}

	info.MenuCount = countOr(menuCount, menus)
	info.VideoCount = countOr(videoCount, videos)
	return info, nil
}

// countOr prefers the count reported by the General track.
func countOr(reported string, counted int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(reported)); err == nil {
		return n
	}
	return counted
}

func lookup(fields []models.Field, key string) string {
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// decodeFields walks a track object token by token; a map would lose the
// field order the chapter entries depend on.
func decodeFields(raw json.RawMessage) ([]models.Field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected track object, got %v", tok)
	}

	var fields []models.Field
	if err := readObject(dec, &fields, false); err != nil {
		return nil, err
	}
	return fields, nil
}

func readObject(dec *json.Decoder, fields *[]models.Field, nested bool) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		key = strings.ToLower(key)
		if nested {
			key = strings.TrimPrefix(key, "_")
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				if err := readObject(dec, fields, true); err != nil {
					return err
				}
			case '[':
				if err := skipArray(dec); err != nil {
					return err
				}
			}
		case string:
			*fields = append(*fields, models.Field{Key: key, Value: v})
		case json.Number:
			*fields = append(*fields, models.Field{Key: key, Value: v.String()})
		case bool:
			*fields = append(*fields, models.Field{Key: key, Value: strconv.FormatBool(v)})
		case nil:
			*fields = append(*fields, models.Field{Key: key})
		}
	}

	// closing '}'
	_, err := dec.Token()
	return err
}

func skipArray(dec *json.Decoder) error {
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}
