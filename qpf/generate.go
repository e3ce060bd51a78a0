package qpf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"autoqpf/chapters"
	"autoqpf/internal/timecode"
	"autoqpf/models"
)

// TextExtension marks an input as an OGM chapter text file rather than a media file.
const TextExtension = ".txt"

// DefaultFPS is used when the frame rate is neither given nor detected.
const DefaultFPS = 23.976

// Prober extracts metadata from a media file.
//
// This interface decouples the converter from a specific extractor
// (mediainfo, ffprobe), so tests can supply fixed metadata.
type Prober interface {
	Probe(ctx context.Context, sourcePath string) (*models.MediaInfo, error)
}

// Options configures a Generator.
type Options struct {
	// Output is the QPF path; empty derives it from the input (see AutoOutput).
	Output string

	WriteToDisk      bool
	FPS              float64
	AutoDetectFPS    bool
	GenerateChapters bool
	Chapters         chapters.Options
	Logger           zerolog.Logger
}

// DefaultOptions returns the defaults: write to disk at 23.976 fps,
// auto-detect the frame rate and generate chapters.
func DefaultOptions() Options {
	return Options{
		WriteToDisk:      true,
		FPS:              DefaultFPS,
		AutoDetectFPS:    true,
		GenerateChapters: true,
		Chapters:         chapters.DefaultOptions(),
		Logger:           zerolog.Nop(),
	}
}

// Result is the outcome of a conversion.
//
// Path is empty when nothing was written to disk. ChapterFile is set when
// an intermediate chapter file was generated for a media input.
type Result struct {
	Path        string
	ChapterFile string
	FPS         float64
	Timecodes   []string
	Frames      []int
}

// Generator turns a media file or a chapter text file into a QPF file.
type Generator struct {
	prober Prober
	opts   Options
}

// NewGenerator creates a Generator. prober may be nil when only chapter
// text files will be converted.
func NewGenerator(prober Prober, opts Options) *Generator {
	return &Generator{prober: prober, opts: opts}
}

// Generate converts input into frame positions.
//
// A ".txt" input is read as a chapter file and the configured fps is used
// as-is. Any other input is probed: its video frame rate replaces the
// configured fps when auto-detection is on and detection succeeds, and its
// chapters are either normalized through a generated chapter file or read
// straight from the menu track.
func (g *Generator) Generate(ctx context.Context, input string) (Result, error) {
	if strings.TrimSpace(input) == "" {
		return Result{}, fmt.Errorf("input path cannot be empty")
	}
	log := g.opts.Logger.With().Str("input", input).Logger()

	result := Result{FPS: g.opts.FPS}
	var err error

	if strings.EqualFold(filepath.Ext(input), TextExtension) {
		log.Debug().Msg("reading chapter text file")
		result.Timecodes, err = ReadTimecodesFromText(input)
		if err != nil {
			return Result{}, err
		}
	} else {
		if err := g.fromMedia(ctx, input, &result, log); err != nil {
			return Result{}, err
		}
	}

	if len(result.Timecodes) == 0 {
		return Result{}, fmt.Errorf("could not detect chapter data from input: %w", models.ErrNoChapterData)
	}

	result.Frames, err = FramePositions(result.Timecodes, result.FPS)
	if err != nil {
		return Result{}, err
	}

	if !g.opts.WriteToDisk {
		return result, nil
	}

	output := g.opts.Output
	if output == "" {
		output = AutoOutput(input)
	}
	if err := WriteFile(output, result.Frames); err != nil {
		return Result{}, err
	}
	result.Path = output

	log.Debug().Str("output", output).Int("frames", len(result.Frames)).Float64("fps", result.FPS).Msg("qpf written")
	return result, nil
}

func (g *Generator) fromMedia(ctx context.Context, input string, result *Result, log zerolog.Logger) error {
	if g.prober == nil {
		return fmt.Errorf("no metadata prober configured for media input %s", input)
	}

	info, err := g.prober.Probe(ctx, input)
	if err != nil {
		return fmt.Errorf("media analysis failed: %w", err)
	}

	if g.opts.AutoDetectFPS && info.HasVideo() {
		if fps, err := timecode.ParseFPS(info.FrameRate); err == nil {
			log.Debug().Str("frame_rate", info.FrameRate).Float64("fps", fps).Msg("frame rate detected")
			result.FPS = fps
		} else {
			log.Debug().Err(err).Float64("fps", result.FPS).Msg("frame rate not detected, keeping configured fps")
		}
	}

	if !g.opts.GenerateChapters {
		result.Timecodes, err = ReadTimecodesFromMedia(info)
		return err
	}

	chapterPath := ChapterOutput(input)
	generated, err := chapters.NewGenerator(g.opts.Chapters).GenerateOGM(info, chapterPath)
	if err != nil {
		return fmt.Errorf("chapter generation failed: %w", err)
	}
	log.Debug().
		Str("variant", generated.Variant.String()).
		Str("action", string(generated.Action)).
		Str("chapter_file", generated.Path).
		Msg("chapter file generated")

	result.ChapterFile = generated.Path
	result.Timecodes, err = ReadTimecodesFromText(generated.Path)
	return err
}
