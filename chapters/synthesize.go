package chapters

import (
	"fmt"
	"math"

	"autoqpf/internal/timecode"
	"autoqpf/models"
)

// Synthesize spaces chapters evenly over a runtime.
//
// chunkPercent is the gap between chapters as a percentage of the runtime:
// 5.0 yields floor(100/5.0) = 20 chapters, one every 5%. The first chapter
// is always at 00:00:00.000 and chapter i starts (i-1) gaps later.
//
// Example:
//
//	tcs, _ := Synthesize(5_400_000, 5.0) // 90 minutes
//	// tcs[0] == "00:00:00.000", tcs[1] == "00:04:30.000", len(tcs) == 20
func Synthesize(durationMs, chunkPercent float64) ([]string, error) {
	if durationMs <= 0 {
		return nil, fmt.Errorf("duration must be greater than 0, got %.3f ms", durationMs)
	}
	if chunkPercent <= 0 || chunkPercent > 100 {
		return nil, fmt.Errorf("chunk percent must be in (0, 100], got %.3f", chunkPercent)
	}

	interval := (durationMs / 1000) * (chunkPercent / 100)
	count := int(math.Floor(100 / chunkPercent))

	timecodes := make([]string, 0, count)
	timecodes = append(timecodes, timecode.Zero)
	for i := 2; i <= count; i++ {
		timecodes = append(timecodes, timecode.FromSeconds(float64(i-1)*interval))
	}
	return timecodes, nil
}

// NumberedChapters names each timecode with a "Chapter NN" placeholder.
func NumberedChapters(timecodes []string) []models.Chapter {
	chapters := make([]models.Chapter, len(timecodes))
	for i, tc := range timecodes {
		chapters[i] = models.Chapter{Timecode: tc, Name: placeholderName(i + 1)}
	}
	return chapters
}
