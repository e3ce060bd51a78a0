package config

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Check defaults
	if cfg.FPS != 23.976 {
		t.Errorf("Expected fps 23.976, got %v", cfg.FPS)
	}
	if !cfg.AutoDetectFPS {
		t.Error("Expected auto-detect fps to be true")
	}
	if !cfg.GenerateChapters {
		t.Error("Expected generate chapters to be true")
	}
	if !cfg.WriteToDisk {
		t.Error("Expected write to disk to be true")
	}
	if cfg.Chapters.ChunkPercent != 5.0 {
		t.Errorf("Expected chunk percent 5.0, got %v", cfg.Chapters.ChunkPercent)
	}
	if !cfg.Chapters.ExtractTagged || !cfg.Chapters.ExtractNamed || !cfg.Chapters.ExtractNumbered {
		t.Errorf("Expected every chapter variant to be extracted, got %+v", cfg.Chapters)
	}
	if cfg.Probe.Backend != "mediainfo" {
		t.Errorf("Expected backend 'mediainfo', got %s", cfg.Probe.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *Config
		expectError bool
		errorText   string
	}{
		{
			name: "valid config",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempFile(t)
				return cfg
			},
			expectError: false,
		},
		{
			name: "missing input",
			config: func() *Config {
				return DefaultConfig()
			},
			expectError: true,
			errorText:   "input file is required",
		},
		{
			name: "nonexistent input",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = "/nonexistent/movie.mkv"
				return cfg
			},
			expectError: true,
			errorText:   "input file does not exist",
		},
		{
			name: "zero fps",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempFile(t)
				cfg.FPS = 0
				return cfg
			},
			expectError: true,
			errorText:   "fps must be positive",
		},
		{
			name: "chunk percent above 100",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempFile(t)
				cfg.Chapters.ChunkPercent = 150
				return cfg
			},
			expectError: true,
			errorText:   "chunk percent",
		},
		{
			name: "invalid backend",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempFile(t)
				cfg.Probe.Backend = "exiftool"
				return cfg
			},
			expectError: true,
			errorText:   "invalid backend",
		},
		{
			name: "invalid log level",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Input = createTempFile(t)
				cfg.LogLevel = "loud"
				return cfg
			},
			expectError: true,
			errorText:   "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config()
			err := cfg.Validate()

			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.expectError && err != nil && tt.errorText != "" {
				if !strings.Contains(err.Error(), tt.errorText) {
					t.Errorf("Expected error to contain '%s', got '%s'", tt.errorText, err.Error())
				}
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = -1
	cfg.Probe.Backend = "none"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"input file is required", "fps must be positive", "invalid backend"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to contain '%s', got '%s'", want, err.Error())
		}
	}
}

func TestProbeConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      ProbeConfig
		expectError bool
	}{
		{"mediainfo", ProbeConfig{Backend: "mediainfo", MediaInfoBin: "mediainfo"}, false},
		{"ffprobe", ProbeConfig{Backend: "ffprobe", FFprobeBin: "/usr/bin/ffprobe"}, false},
		{"mediainfo without binary", ProbeConfig{Backend: "mediainfo"}, true},
		{"ffprobe without binary", ProbeConfig{Backend: "ffprobe", MediaInfoBin: "mediainfo"}, true},
		{"unknown backend", ProbeConfig{Backend: "", MediaInfoBin: "mediainfo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestIsValidBackend(t *testing.T) {
	tests := []struct {
		backend string
		valid   bool
	}{
		{"mediainfo", true},
		{"ffprobe", true},
		{"MediaInfo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidBackend(tt.backend); got != tt.valid {
			t.Errorf("IsValidBackend(%q) = %v; want %v", tt.backend, got, tt.valid)
		}
	}
}

func TestConfigCopy(t *testing.T) {
	original := DefaultConfig()
	original.Input = "movie.mkv"
	original.Chapters.ChunkPercent = 10

	copy := original.Copy()
	copy.Input = "other.mkv"
	copy.Chapters.ChunkPercent = 20
	copy.Probe.Backend = "ffprobe"

	if original.Input != "movie.mkv" {
		t.Errorf("Original input was modified: %s", original.Input)
	}
	if original.Chapters.ChunkPercent != 10 {
		t.Errorf("Original chunk percent was modified: %v", original.Chapters.ChunkPercent)
	}
	if original.Probe.Backend != "mediainfo" {
		t.Errorf("Original backend was modified: %s", original.Probe.Backend)
	}
}

func TestQPFOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "out.qpf"
	cfg.FPS = 25
	cfg.AutoDetectFPS = false
	cfg.WriteToDisk = false
	cfg.Chapters.ChunkPercent = 10
	cfg.Chapters.ExtractNamed = false

	opts := cfg.QPFOptions(zerolog.Nop())

	if opts.Output != "out.qpf" || opts.FPS != 25 || opts.AutoDetectFPS || opts.WriteToDisk || !opts.GenerateChapters {
		t.Errorf("Unexpected qpf options: %+v", opts)
	}
	if opts.Chapters.ChunkPercent != 10 || opts.Chapters.ExtractNamed || !opts.Chapters.ExtractTagged {
		t.Errorf("Unexpected chapter options: %+v", opts.Chapters)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		verbose  bool
		expected zerolog.Level
	}{
		{"default", "info", false, zerolog.InfoLevel},
		{"warn", "warn", false, zerolog.WarnLevel},
		{"verbose overrides", "error", true, zerolog.DebugLevel},
		{"empty falls back", "", false, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = tt.logLevel
			cfg.Verbose = tt.verbose
			if got := cfg.Level(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// Helper functions

func createTempFile(t *testing.T) string {
	f, err := os.CreateTemp("", "test-*.mkv")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}
