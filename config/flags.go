package config

import (
	"flag"
	"fmt"
	"os"
)

// MergeFromFlags parses command-line flags and overrides config values.
// The first positional argument is taken as the input when -input is not set.
func (c *Config) MergeFromFlags(args []string) error {
	// Define flags
	fs := flag.NewFlagSet("autoqpf", flag.ContinueOnError)
	fs.Usage = printUsage

	// Required fields
	input := fs.String("input", "", "Input media file or chapter text file (required)")
	output := fs.String("output", "", "Output QPF path (default: <input>.qpf)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Conversion settings
	fps := fs.Float64("fps", -1, "Frame rate used when not detected (default: from config)")
	autoFPS := fs.Bool("auto-fps", false, "Detect the frame rate from the video track")
	noAutoFPS := fs.Bool("no-auto-fps", false, "Always use -fps")
	generate := fs.Bool("generate", false, "Normalize chapters into <input>_chapters.txt first")
	noGenerate := fs.Bool("no-generate", false, "Read chapters straight from the menu track")
	noWrite := fs.Bool("no-write", false, "Do not write the QPF file, print frames only")

	// Chapter settings
	chunkPercent := fs.Float64("chunk-percent", -1, "Synthesized chapter spacing in % of runtime (default: from config)")
	noTagged := fs.Bool("no-tagged", false, "Synthesize instead of keeping timecode-named chapters")
	noNamed := fs.Bool("no-named", false, "Synthesize instead of keeping named chapters")
	noNumbered := fs.Bool("no-numbered", false, "Synthesize instead of keeping numbered chapters")

	// Probe settings
	backend := fs.String("backend", "", "Metadata extractor: mediainfo, ffprobe (default: from config)")
	mediainfoBin := fs.String("mediainfo", "", "Path to the mediainfo binary (default: from config)")
	ffprobeBin := fs.String("ffprobe", "", "Path to the ffprobe binary (default: from config)")

	// Behavioral flags
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default: from config)")
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Show configuration without converting")

	// Parse flags
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.Input = *input
	} else if fs.NArg() > 0 {
		c.Input = fs.Arg(0)
	}
	if *output != "" {
		c.Output = *output
	}

	// Conversion settings (-1 means not set)
	if *fps > 0 {
		c.FPS = *fps
	}
	if *autoFPS {
		c.AutoDetectFPS = true
	}
	if *noAutoFPS {
		c.AutoDetectFPS = false
	}
	if *generate {
		c.GenerateChapters = true
	}
	if *noGenerate {
		c.GenerateChapters = false
	}
	if *noWrite {
		c.WriteToDisk = false
	}

	// Chapter settings
	if *chunkPercent > 0 {
		c.Chapters.ChunkPercent = *chunkPercent
	}
	if *noTagged {
		c.Chapters.ExtractTagged = false
	}
	if *noNamed {
		c.Chapters.ExtractNamed = false
	}
	if *noNumbered {
		c.Chapters.ExtractNumbered = false
	}

	// Probe settings
	if *backend != "" {
		c.Probe.Backend = *backend
	}
	if *mediainfoBin != "" {
		c.Probe.MediaInfoBin = *mediainfoBin
	}
	if *ffprobeBin != "" {
		c.Probe.FFprobeBin = *ffprobeBin
	}

	// Behavioral flags
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `autoqpf - Chapter keyframe (QPF) generator

USAGE:
  autoqpf [OPTIONS] FILE
  autoqpf -input FILE [OPTIONS]

INPUT:
  -input string
        Media file (mkv, mp4, ...) or OGM chapter text file (.txt)
  -output string
        Output QPF path (default: input with .qpf extension)

CONFIGURATION:
  -config string
        Path to config file (default: search ./autoqpf.yaml, ~/.autoqpf/config.yaml, /etc/autoqpf/config.yaml)

CONVERSION:
  -fps float
        Frame rate used when not detected (default: 23.976)
  --auto-fps / --no-auto-fps
        Detect the frame rate from the video track (default: on)
  --generate / --no-generate
        Normalize chapters into <input>_chapters.txt before converting (default: on)
  --no-write
        Print frame positions without writing the QPF file

CHAPTERS:
  -chunk-percent float
        Spacing of synthesized chapters in percent of runtime (default: 5)
  --no-tagged
        Synthesize instead of keeping chapters named by timecode
  --no-named
        Synthesize instead of keeping chapters with descriptive names
  --no-numbered
        Synthesize instead of keeping "Chapter NN" chapters

METADATA:
  -backend string
        Metadata extractor: mediainfo, ffprobe (default: mediainfo)
  -mediainfo string
        Path to the mediainfo binary (default: mediainfo)
  -ffprobe string
        Path to the ffprobe binary (default: ffprobe)

BEHAVIORAL FLAGS:
  -log-level string
        Log level: debug, info, warn, error (default: info)
  --verbose
        Enable verbose logging
  --dry-run
        Show effective configuration without converting

EXAMPLES:
  # Generate movie.qpf from the chapters of movie.mkv
  autoqpf movie.mkv

  # Convert an existing chapter file at 25 fps
  autoqpf -fps 25 chapters.txt

  # Synthesize a chapter every 10%% using ffprobe
  autoqpf -backend ffprobe -chunk-percent 10 --no-named --no-numbered movie.mkv

  # Show effective configuration
  autoqpf --dry-run movie.mkv

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./autoqpf.yaml
    2. ~/.autoqpf/config.yaml
    3. /etc/autoqpf/config.yaml

  Priority: CLI flags > Config file > Defaults

`)
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Input:          %s\n", c.Input)
	if c.Output != "" {
		fmt.Printf("Output:         %s\n", c.Output)
	} else {
		fmt.Printf("Output:         (auto)\n")
	}
	fmt.Printf("FPS:            %.3f\n", c.FPS)
	fmt.Printf("Auto FPS:       %v\n", c.AutoDetectFPS)
	fmt.Printf("Generate:       %v\n", c.GenerateChapters)
	fmt.Printf("Write to Disk:  %v\n", c.WriteToDisk)

	fmt.Println("\nChapter Settings:")
	fmt.Printf("  Chunk:        %.2f%%\n", c.Chapters.ChunkPercent)
	fmt.Printf("  Tagged:       %v\n", c.Chapters.ExtractTagged)
	fmt.Printf("  Named:        %v\n", c.Chapters.ExtractNamed)
	fmt.Printf("  Numbered:     %v\n", c.Chapters.ExtractNumbered)

	fmt.Println("\nMetadata:")
	fmt.Printf("  Backend:      %s\n", c.Probe.Backend)
	fmt.Printf("  mediainfo:    %s\n", c.Probe.MediaInfoBin)
	fmt.Printf("  ffprobe:      %s\n", c.Probe.FFprobeBin)

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Log Level:    %s\n", c.LogLevel)
	fmt.Printf("  Verbose:      %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
