package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"autoqpf/config"
	"autoqpf/ffprobe"
	"autoqpf/mediainfo"
	"autoqpf/qpf"
)

func main() {
	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println("\n✓ Configuration is valid. No files will be written.")
		return
	}

	logger := newLogger(cfg)

	// Step 3: Cancel the metadata extractor on Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Step 4: Run the conversion
	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			fmt.Println("\n⚠️  Cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "\n❌ Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a console logger on stderr at the configured level.
func newLogger(cfg *config.Config) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
}

// newProber returns the metadata extractor selected in the config.
func newProber(cfg *config.Config, logger zerolog.Logger) qpf.Prober {
	switch cfg.Probe.Backend {
	case config.BackendFFprobe:
		return ffprobe.NewProber(cfg.Probe.FFprobeBin, logger)
	default:
		return mediainfo.NewProber(cfg.Probe.MediaInfoBin, logger)
	}
}

// run converts the configured input and prints a summary.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	startTime := time.Now()

	fmt.Println("╔════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                        AUTOQPF                                 ║")
	fmt.Println("╚════════════════════════════════════════════════════════════════╝")
	fmt.Printf("Input:   %s\n", cfg.Input)
	if strings.EqualFold(filepath.Ext(cfg.Input), qpf.TextExtension) {
		fmt.Println("Source:  chapter text file")
	} else {
		fmt.Printf("Source:  media file (%s)\n", cfg.Probe.Backend)
	}
	fmt.Println()

	generator := qpf.NewGenerator(newProber(cfg, logger), cfg.QPFOptions(logger))
	result, err := generator.Generate(ctx, cfg.Input)
	if err != nil {
		return err
	}

	if !cfg.WriteToDisk {
		for _, frame := range result.Frames {
			fmt.Printf("%d K\n", frame)
		}
		fmt.Println()
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                     ✅ SUCCESS!")
	fmt.Println("═══════════════════════════════════════════════════════════")
	if result.ChapterFile != "" {
		fmt.Printf("  Chapters:    %s\n", result.ChapterFile)
	}
	if result.Path != "" {
		fmt.Printf("  Output:      %s\n", result.Path)
	}
	fmt.Printf("  Keyframes:   %d\n", len(result.Frames))
	fmt.Printf("  FPS:         %.3f\n", result.FPS)
	fmt.Printf("  Total time:  %.2fs\n", time.Since(startTime).Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")

	return nil
}
