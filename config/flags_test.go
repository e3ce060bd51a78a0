package config

import (
	"testing"
)

func TestMergeFromFlags_InputFlag(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-input", "movie.mkv", "-output", "movie.qpf"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Input != "movie.mkv" {
		t.Errorf("Expected input 'movie.mkv', got '%s'", cfg.Input)
	}
	if cfg.Output != "movie.qpf" {
		t.Errorf("Expected output 'movie.qpf', got '%s'", cfg.Output)
	}
}

func TestMergeFromFlags_PositionalInput(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-fps", "25", "movie.mkv"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Input != "movie.mkv" {
		t.Errorf("Expected positional input 'movie.mkv', got '%s'", cfg.Input)
	}
}

func TestMergeFromFlags_InputFlagWinsOverPositional(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-input", "a.mkv", "b.mkv"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Input != "a.mkv" {
		t.Errorf("Expected input 'a.mkv', got '%s'", cfg.Input)
	}
}

func TestMergeFromFlags_MissingInput(t *testing.T) {
	// MergeFromFlags doesn't validate, but input should remain empty
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-fps", "25"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for missing input, got nil")
	}
}

func TestMergeFromFlags_AllFlags(t *testing.T) {
	args := []string{
		"-input", "flag_input.mkv",
		"-output", "flag_output.qpf",
		"-fps", "29.97",
		"-no-auto-fps",
		"-no-generate",
		"-no-write",
		"-chunk-percent", "10",
		"-no-tagged",
		"-no-named",
		"-no-numbered",
		"-backend", "ffprobe",
		"-mediainfo", "/opt/mediainfo",
		"-ffprobe", "/opt/ffprobe",
		"-log-level", "warn",
		"-verbose",
	}

	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags(args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Input != "flag_input.mkv" {
		t.Errorf("Expected input 'flag_input.mkv', got '%s'", cfg.Input)
	}
	if cfg.Output != "flag_output.qpf" {
		t.Errorf("Expected output 'flag_output.qpf', got '%s'", cfg.Output)
	}
	if cfg.FPS != 29.97 {
		t.Errorf("Expected fps 29.97, got %v", cfg.FPS)
	}
	if cfg.AutoDetectFPS {
		t.Error("Expected auto-detect fps false")
	}
	if cfg.GenerateChapters {
		t.Error("Expected generate chapters false")
	}
	if cfg.WriteToDisk {
		t.Error("Expected write to disk false")
	}
	if cfg.Chapters.ChunkPercent != 10 {
		t.Errorf("Expected chunk percent 10, got %v", cfg.Chapters.ChunkPercent)
	}
	if cfg.Chapters.ExtractTagged || cfg.Chapters.ExtractNamed || cfg.Chapters.ExtractNumbered {
		t.Errorf("Expected every variant disabled, got %+v", cfg.Chapters)
	}
	if cfg.Probe.Backend != "ffprobe" {
		t.Errorf("Expected backend 'ffprobe', got '%s'", cfg.Probe.Backend)
	}
	if cfg.Probe.MediaInfoBin != "/opt/mediainfo" {
		t.Errorf("Expected mediainfo '/opt/mediainfo', got '%s'", cfg.Probe.MediaInfoBin)
	}
	if cfg.Probe.FFprobeBin != "/opt/ffprobe" {
		t.Errorf("Expected ffprobe '/opt/ffprobe', got '%s'", cfg.Probe.FFprobeBin)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.LogLevel)
	}
	if !cfg.Verbose {
		t.Error("Expected verbose true")
	}
}

func TestMergeFromFlags_BoolPairs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		autoFPS  bool
		generate bool
	}{
		{"no flags keeps config", []string{}, false, false},
		{"enable both", []string{"-auto-fps", "-generate"}, true, true},
		{"disable wins over enable", []string{"-auto-fps", "-no-auto-fps", "-generate", "-no-generate"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AutoDetectFPS = false
			cfg.GenerateChapters = false

			if err := cfg.MergeFromFlags(tt.args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.AutoDetectFPS != tt.autoFPS {
				t.Errorf("Expected auto-detect fps %v, got %v", tt.autoFPS, cfg.AutoDetectFPS)
			}
			if cfg.GenerateChapters != tt.generate {
				t.Errorf("Expected generate chapters %v, got %v", tt.generate, cfg.GenerateChapters)
			}
		})
	}
}

func TestMergeFromFlags_DryRun(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-dry-run", "movie.mkv"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.DryRun {
		t.Error("Expected dry run to be true")
	}
}

func TestMergeFromFlags_PartialOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chapters.ChunkPercent = 20
	cfg.Probe.Backend = "ffprobe"

	if err := cfg.MergeFromFlags([]string{"-fps", "50", "movie.mkv"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.FPS != 50 {
		t.Errorf("Expected fps 50, got %v", cfg.FPS)
	}
	if cfg.Chapters.ChunkPercent != 20 {
		t.Errorf("Expected chunk percent 20 (unchanged), got %v", cfg.Chapters.ChunkPercent)
	}
	if cfg.Probe.Backend != "ffprobe" {
		t.Errorf("Expected backend 'ffprobe' (unchanged), got '%s'", cfg.Probe.Backend)
	}
}

func TestMergeFromFlags_UnknownFlag(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.MergeFromFlags([]string{"-workers", "8"}); err == nil {
		t.Fatal("Expected error for unknown flag")
	}
}
