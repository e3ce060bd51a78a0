// Package timecode converts between chapter offset keys, seconds, canonical
// HH:MM:SS.mmm timecodes and frame positions.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Zero is the timecode of the first chapter of every synthesized chapter list.
const Zero = "00:00:00.000"

// FromKey converts a raw menu offset key to a canonical timecode.
//
// The last three characters are the milliseconds; the rest has its
// underscores mapped to colons. A leading underscore (as emitted in
// mediainfo JSON) and a separator before the millisecond group are dropped.
//
// Example:
//
//	FromKey("00_04_30_000")  // "00:04:30.000"
//	FromKey("_01_02_03456")  // "01:02:03.456"
func FromKey(key string) string {
	key = strings.TrimPrefix(key, "_")
	if len(key) <= 3 {
		return key
	}

	head := strings.TrimRight(key[:len(key)-3], "_:.")
	ms := key[len(key)-3:]
	return strings.ReplaceAll(head, "_", ":") + "." + ms
}

// FromSeconds formats an offset in seconds as a timecode.
//
// The offset is rendered the way a duration prints (H:MM:SS) with the
// milliseconds truncated, then every colon-separated component is
// left-padded to two characters. Hours are not carried into days, so
// offsets of 100 hours or more keep all of their hour digits.
//
// Example:
//
//	FromSeconds(270)     // "00:04:30.000"
//	FromSeconds(3661.5)  // "01:01:01.500"
func FromSeconds(seconds float64) string {
	micros := int64(math.RoundToEven(seconds * 1e6))
	if micros < 0 {
		micros = 0
	}

	hours := micros / 3_600_000_000
	minutes := (micros / 60_000_000) % 60
	secs := (micros / 1_000_000) % 60
	millis := (micros / 1000) % 1000

	formatted := fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, secs, millis)
	return padComponents(formatted)
}

// padComponents left-pads each colon-separated component to at least two characters.
func padComponents(tc string) string {
	parts := strings.Split(tc, ":")
	for i, part := range parts {
		for len(part) < 2 {
			part = "0" + part
		}
		parts[i] = part
	}
	return strings.Join(parts, ":")
}

// Seconds parses an HH:MM:SS.mmm timecode into total seconds.
func Seconds(tc string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(tc), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timecode %q: expected HH:MM:SS.mmm", tc)
	}

	var values [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timecode %q: %w", tc, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("invalid timecode %q: negative component", tc)
		}
		values[i] = v
	}

	return values[0]*3600 + values[1]*60 + values[2], nil
}

// FramePosition converts a timecode to the nearest frame number at fps.
//
// Ties round to even.
func FramePosition(tc string, fps float64) (int, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return 0, fmt.Errorf("fps must be positive, got %v", fps)
	}

	seconds, err := Seconds(tc)
	if err != nil {
		return 0, err
	}

	return int(math.RoundToEven(seconds * fps)), nil
}

// ParseFPS parses a frame rate as reported by a metadata extractor.
//
// Accepts a rational ("24000/1001"), a decimal ("23.976") or an integer ("24").
func ParseFPS(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("frame rate is empty")
	}

	var fps float64
	switch {
	case strings.Contains(s, "/"):
		num, den, _ := strings.Cut(s, "/")
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid frame rate %q: zero denominator", s)
		}
		fps = n / d
	case strings.Contains(s, "."):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		fps = f
	default:
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		fps = float64(i)
	}

	if fps <= 0 {
		return 0, fmt.Errorf("frame rate must be positive, got %q", s)
	}
	return fps, nil
}
