package config

import (
	"github.com/rs/zerolog"

	"autoqpf/chapters"
	"autoqpf/qpf"
)

// ChapterOptions converts the chapter settings into chapters.Options.
func (c *Config) ChapterOptions(logger zerolog.Logger) chapters.Options {
	return chapters.Options{
		ChunkPercent:    c.Chapters.ChunkPercent,
		ExtractTagged:   c.Chapters.ExtractTagged,
		ExtractNamed:    c.Chapters.ExtractNamed,
		ExtractNumbered: c.Chapters.ExtractNumbered,
		Logger:          logger,
	}
}

// QPFOptions converts the configuration into qpf.Options.
func (c *Config) QPFOptions(logger zerolog.Logger) qpf.Options {
	return qpf.Options{
		Output:           c.Output,
		WriteToDisk:      c.WriteToDisk,
		FPS:              c.FPS,
		AutoDetectFPS:    c.AutoDetectFPS,
		GenerateChapters: c.GenerateChapters,
		Chapters:         c.ChapterOptions(logger),
		Logger:           logger,
	}
}

// Level returns the effective log level. Verbose forces debug.
func (c *Config) Level() zerolog.Level {
	if c.Verbose {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
