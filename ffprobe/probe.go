// Package ffprobe extracts chapter-relevant metadata from media files
// using the ffprobe command-line tool.
package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"autoqpf/internal/timecode"
	"autoqpf/models"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "ffprobe"

// Chapter represents a chapter marker in a media file.
type Chapter struct {
	ID        int64             `json:"id"`
	TimeBase  string            `json:"time_base"`
	Start     int64             `json:"start"`
	StartTime string            `json:"start_time"`
	End       int64             `json:"end"`
	EndTime   string            `json:"end_time"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// Title returns the chapter's title tag, or "" if it has none.
func (c Chapter) Title() string {
	return c.Tags["title"]
}

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	RFrameRate   string `json:"r_frame_rate,omitempty"`
	AvgFrameRate string `json:"avg_frame_rate,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// FrameRate returns the stream's frame rate as ffprobe reports it
// ("24000/1001"), preferring r_frame_rate over avg_frame_rate.
func (s Stream) FrameRate() string {
	for _, rate := range []string{s.RFrameRate, s.AvgFrameRate} {
		if rate != "" && rate != "0/0" {
			return rate
		}
	}
	return ""
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
}

// ProbeResult holds the metadata ffprobe reported for a media file.
type ProbeResult struct {
	Chapters []Chapter `json:"chapters"`
	Streams  []Stream  `json:"streams"`
	Format   Format    `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", pr.Format.Duration, err)
	}

	return duration, nil
}

// HasChapters returns true if the media file contains chapter markers.
func (pr *ProbeResult) HasChapters() bool {
	return len(pr.Chapters) > 0
}

// GetVideoStreams returns all video streams from the media file.
func (pr *ProbeResult) GetVideoStreams() []Stream {
	var videoStreams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == "video" {
			videoStreams = append(videoStreams, stream)
		}
	}
	return videoStreams
}

// MenuFields renders the chapters as a menu track in the field layout
// mediainfo uses: the position fields, then one "HH_MM_SS_mmm" = title
// field per chapter.
func (pr *ProbeResult) MenuFields() ([]models.Field, error) {
	if !pr.HasChapters() {
		return nil, nil
	}

	fields := []models.Field{
		{Key: "chapters_pos_begin", Value: "0"},
		{Key: models.MenuSentinelKey, Value: strconv.Itoa(len(pr.Chapters))},
	}
	for i, ch := range pr.Chapters {
		start, err := strconv.ParseFloat(ch.StartTime, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_time for chapter %d: %w", i+1, err)
		}
		key := strings.NewReplacer(":", "_", ".", "_").Replace(timecode.FromSeconds(start))
		fields = append(fields, models.Field{Key: key, Value: ch.Title()})
	}
	return fields, nil
}

// MediaInfo converts the result into the extractor-neutral model.
func (pr *ProbeResult) MediaInfo(sourcePath string) (*models.MediaInfo, error) {
	info := &models.MediaInfo{Path: sourcePath}

	if pr.Format.Duration != "" {
		seconds, err := pr.GetDuration()
		if err != nil {
			return nil, err
		}
		info.DurationMs = seconds * 1000
	}

	videos := pr.GetVideoStreams()
	info.VideoCount = len(videos)
	if len(videos) > 0 {
		info.FrameRate = videos[0].FrameRate()
	}

	menu, err := pr.MenuFields()
	if err != nil {
		return nil, err
	}
	if menu != nil {
		info.MenuCount = 1
		info.Menu = menu
	}
	return info, nil
}

// Parse decodes ffprobe's JSON output.
func Parse(data []byte) (*ProbeResult, error) {
	var result ProbeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}
	return &result, nil
}

// Prober runs ffprobe.
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

// Run analyzes a media file and returns ffprobe's raw result.
//
// Example:
//
//	result, err := ffprobe.NewProber("", zerolog.Nop()).Run(ctx, "/path/to/video.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Has chapters: %v\n", result.HasChapters())
func (p *Prober) Run(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	// -v quiet: suppress verbose output
	// -print_format json: output in JSON format
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_chapters",
		"-show_streams",
		"-show_format",
		sourcePath,
	}
	p.Logger.Debug().Str("binary", p.Binary).Strs("args", args).Msg("running ffprobe")

	cmd := exec.CommandContext(ctx, p.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w (output: %s)", err, strings.TrimSpace(stderr.String()))
	}

	return Parse(output)
}

// Probe analyzes a media file and returns its extractor-neutral metadata.
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*models.MediaInfo, error) {
	result, err := p.Run(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	info, err := result.MediaInfo(sourcePath)
	if err != nil {
		return nil, err
	}

	p.Logger.Debug().
		Float64("duration_ms", info.DurationMs).
		Int("chapters", len(result.Chapters)).
		Str("frame_rate", info.FrameRate).
		Msg("ffprobe report decoded")
	return info, nil
}
