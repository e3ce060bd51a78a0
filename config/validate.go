package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input file is required")
	} else {
		// Check if input file exists
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input file does not exist: %s", c.Input))
		}
	}

	if c.FPS <= 0 || math.IsNaN(c.FPS) || math.IsInf(c.FPS, 0) {
		errors = append(errors, fmt.Sprintf("fps must be positive, got %v", c.FPS))
	}

	if err := c.Chapters.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("chapters config: %v", err))
	}

	if err := c.Probe.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("probe config: %v", err))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if chapter configuration is valid
func (cc *ChaptersConfig) Validate() error {
	if cc.ChunkPercent <= 0 || cc.ChunkPercent > 100 {
		return fmt.Errorf("chunk percent must be in (0, 100], got %v", cc.ChunkPercent)
	}
	return nil
}

// Validate checks if probe configuration is valid
func (pc *ProbeConfig) Validate() error {
	var errors []string

	if !IsValidBackend(pc.Backend) {
		errors = append(errors, fmt.Sprintf("invalid backend '%s', must be one of: %s",
			pc.Backend, strings.Join(BackendValues(), ", ")))
	}

	switch pc.Backend {
	case BackendMediaInfo:
		if pc.MediaInfoBin == "" {
			errors = append(errors, "mediainfo binary is required")
		}
	case BackendFFprobe:
		if pc.FFprobeBin == "" {
			errors = append(errors, "ffprobe binary is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
