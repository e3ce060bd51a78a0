package chapters

import (
	"fmt"

	"github.com/rs/zerolog"

	"autoqpf/models"
	"autoqpf/ogm"
)

// DefaultChunkPercent spaces synthesized chapters every 5% of the runtime.
const DefaultChunkPercent = 5.0

// Action records how a chapter file was produced.
type Action string

const (
	ActionExtracted   Action = "extracted"
	ActionSynthesized Action = "synthesized"
)

// Options controls which detected variants are kept as-is.
type Options struct {
	ChunkPercent    float64
	ExtractTagged   bool
	ExtractNamed    bool
	ExtractNumbered bool
	Logger          zerolog.Logger
}

// DefaultOptions accepts every variant and synthesizes every 5%.
func DefaultOptions() Options {
	return Options{
		ChunkPercent:    DefaultChunkPercent,
		ExtractTagged:   true,
		ExtractNamed:    true,
		ExtractNumbered: true,
		Logger:          zerolog.Nop(),
	}
}

// accepts reports whether the options keep chapters of kind k.
func (o Options) accepts(k Kind) bool {
	switch k {
	case Named:
		return o.ExtractNamed
	case Numbered:
		return o.ExtractNumbered
	case Tagged:
		return o.ExtractTagged
	default:
		return false
	}
}

// Result describes a written chapter file.
type Result struct {
	Path     string
	Variant  Kind
	Action   Action
	Chapters []models.Chapter
}

// Generator writes a normalized chapter file for a media file.
type Generator struct {
	opts Options
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// GenerateOGM detects the chapters of info and writes them to outputPath,
// either as extracted or as synthesized chapters.
//
//	detected   accepted   action
//	none       -          synthesize
//	named      yes / no   extract / synthesize
//	numbered   yes / no   extract (synthesize if malformed) / synthesize
//	tagged     yes / no   extract / synthesize
//
// A menu track without the sentinel key returns models.ErrChapterIndex.
func (g *Generator) GenerateOGM(info *models.MediaInfo, outputPath string) (Result, error) {
	if info == nil {
		return Result{}, fmt.Errorf("media info cannot be nil")
	}
	log := g.opts.Logger.With().Str("input", info.Path).Logger()

	var variant Variant
	if info.HasMenu() {
		entries, err := ParseMenu(info.Menu)
		if err != nil {
			return Result{}, err
		}
		variant = Classify(entries)
	}

	log.Debug().
		Str("variant", variant.Kind.String()).
		Int("entries", len(variant.Entries)).
		Str("start_num", variant.StartNum).
		Str("end_num", variant.EndNum).
		Msg("chapters classified")

	if g.opts.accepts(variant.Kind) {
		chapters, ok := Extract(variant)
		if ok {
			path, err := WriteExtracted(chapters, outputPath)
			if err != nil {
				return Result{}, err
			}
			log.Debug().Str("output", path).Int("chapters", len(chapters)).Msg("chapters extracted")
			return Result{Path: path, Variant: variant.Kind, Action: ActionExtracted, Chapters: chapters}, nil
		}
		log.Warn().Str("variant", variant.Kind.String()).Msg("numbered chapters are malformed, synthesizing instead")
	}

	timecodes, err := Synthesize(info.DurationMs, g.opts.ChunkPercent)
	if err != nil {
		return Result{}, fmt.Errorf("failed to synthesize chapters: %w", err)
	}
	chapters := NumberedChapters(timecodes)
	path, err := WriteSynthesized(timecodes, outputPath)
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("output", path).
		Int("chapters", len(chapters)).
		Float64("chunk_percent", g.opts.ChunkPercent).
		Msg("chapters synthesized")
	return Result{Path: path, Variant: variant.Kind, Action: ActionSynthesized, Chapters: chapters}, nil
}

// WriteSynthesized writes timecodes with "Chapter NN" names to outputPath.
// It returns outputPath once the file exists.
func WriteSynthesized(timecodes []string, outputPath string) (string, error) {
	return ogm.WriteFile(outputPath, NumberedChapters(timecodes))
}

// WriteExtracted writes extracted chapters to outputPath.
// It returns outputPath once the file exists.
func WriteExtracted(chapters []models.Chapter, outputPath string) (string, error) {
	return ogm.WriteFile(outputPath, chapters)
}
