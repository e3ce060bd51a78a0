package config

import (
	"autoqpf/chapters"
	"autoqpf/qpf"
)

// Config holds all autoqpf configuration options
type Config struct {
	// Required fields
	Input  string `yaml:"input"`  // media file or OGM chapter text file
	Output string `yaml:"output"` // empty = derive <input>.qpf

	// Conversion settings
	FPS              float64 `yaml:"fps"`               // used when detection is off or fails
	AutoDetectFPS    bool    `yaml:"auto_detect_fps"`   // read frame rate from the video track
	GenerateChapters bool    `yaml:"generate_chapters"` // normalize chapters before converting
	WriteToDisk      bool    `yaml:"write_to_disk"`     // false = print frames only

	// Chapter settings
	Chapters ChaptersConfig `yaml:"chapters"`

	// Metadata extractor settings
	Probe ProbeConfig `yaml:"probe"`

	// Behavioral flags
	LogLevel string `yaml:"log_level"` // zerolog level name
	Verbose  bool   `yaml:"verbose"`   // Show detailed logs (forces debug)
	DryRun   bool   `yaml:"dry_run"`   // Show config without converting
}

// ChaptersConfig holds chapter normalization settings
type ChaptersConfig struct {
	ChunkPercent    float64 `yaml:"chunk_percent"`    // synthesized chapter spacing, % of runtime
	ExtractTagged   bool    `yaml:"extract_tagged"`   // keep chapters named by timecode
	ExtractNamed    bool    `yaml:"extract_named"`    // keep chapters with descriptive names
	ExtractNumbered bool    `yaml:"extract_numbered"` // keep "Chapter NN" chapters
}

// ProbeConfig holds metadata extractor settings
type ProbeConfig struct {
	Backend      string `yaml:"backend"`       // "mediainfo" or "ffprobe"
	MediaInfoBin string `yaml:"mediainfo_bin"` // path or name of the mediainfo binary
	FFprobeBin   string `yaml:"ffprobe_bin"`   // path or name of the ffprobe binary
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Input:  "",
		Output: "",

		// Conversion defaults
		FPS:              qpf.DefaultFPS,
		AutoDetectFPS:    true,
		GenerateChapters: true,
		WriteToDisk:      true,

		// Chapter defaults (keep everything, synthesize every 5%)
		Chapters: ChaptersConfig{
			ChunkPercent:    chapters.DefaultChunkPercent,
			ExtractTagged:   true,
			ExtractNamed:    true,
			ExtractNumbered: true,
		},

		Probe: ProbeConfig{
			Backend:      BackendMediaInfo,
			MediaInfoBin: "mediainfo",
			FFprobeBin:   "ffprobe",
		},

		// Behavioral defaults
		LogLevel: "info",
		Verbose:  false,
		DryRun:   false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Chapters = c.Chapters
	copy.Probe = c.Probe
	return &copy
}

const (
	BackendMediaInfo = "mediainfo"
	BackendFFprobe   = "ffprobe"
)

// BackendValues returns valid metadata extractor backends
func BackendValues() []string {
	return []string{BackendMediaInfo, BackendFFprobe}
}

// IsValidBackend checks if backend is valid
func IsValidBackend(backend string) bool {
	for _, valid := range BackendValues() {
		if backend == valid {
			return true
		}
	}
	return false
}
