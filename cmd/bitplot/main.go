// Package main provides the CLI entry point for bitplot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/bitplot/pkg/adapters/filesink"
	"github.com/user/bitplot/pkg/adapters/ggrenderer"
	"github.com/user/bitplot/pkg/adapters/h264decoder"
	"github.com/user/bitplot/pkg/adapters/logger"
	"github.com/user/bitplot/pkg/adapters/mp4demuxer"
	"github.com/user/bitplot/pkg/adapters/nullsink"
	"github.com/user/bitplot/pkg/adapters/osfilesystem"
	"github.com/user/bitplot/pkg/config"
	"github.com/user/bitplot/pkg/orchestrator"
	"github.com/user/bitplot/pkg/ports"
	"github.com/user/bitplot/pkg/stages/extract"
	"github.com/user/bitplot/pkg/stages/render"
	"github.com/user/bitplot/pkg/stages/transform"
	"github.com/user/bitplot/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Graph   GraphCmd   `cmd:"" default:"withargs" help:"Plot per-frame bitrate of a video as a chart image."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// GraphCmd defines the graph subcommand.
type GraphCmd struct {
	// Required arguments
	Input  string `short:"i" required:"" help:"Input video file path."`
	Output string `short:"o" required:"" help:"Output chart image path (.png, .jpg)."`

	// Chart options
	Size *string `short:"s" help:"Chart canvas size as WIDTH:HEIGHT (default: 1920:1080)."`
	Bpp  *bool   `help:"Normalize frame sizes to bits per pixel."`
	Font *string `help:"Path to a TTF font file for chart labels."`

	// Decoding options
	FFmpegPath *string `help:"Path to ffmpeg executable (falls back to PATH lookup)."`

	// Summary options
	Summary *string `help:"Output execution summary to file (Markdown format)."`

	// Config file
	Config string `short:"c" help:"Path to YAML configuration file."`

	// Debug options
	Debug    *bool   `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error; default: info)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("bitplot"),
		kong.Description("Visualize per-frame bitrate of a video as a line chart."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the graph command.
func (cmd *GraphCmd) Run() error {
	fs := osfilesystem.New()

	// Build config from file and CLI overrides
	cfg, err := cmd.buildConfig(fs)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	renderer := ggrenderer.New()
	demuxer := mp4demuxer.New()

	decoder := h264decoder.New()
	if cfg.FFmpegPath != "" {
		decoder.SetFFmpegPath(cfg.FFmpegPath)
	}
	if err := decoder.Init(); err != nil {
		return fmt.Errorf("initialize decoder: %w", err)
	}
	defer decoder.Close()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	extractStage := extract.New(demuxer, decoder, log)
	transformStage := transform.NewStage()
	renderStage := render.NewStage(renderer, fs, sink, log)

	// Create orchestrator
	orch := orchestrator.New(
		extractStage,
		transformStage,
		renderStage,
		sink,
		log,
	)

	// Run pipeline
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Input, cmd.Output))
	if err != nil {
		return err
	}

	// Write summary if requested
	if cfg.SummaryPath != "" {
		if err := writeSummary(cfg.SummaryPath, result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cfg.SummaryPath))
		}
	}

	return nil
}

// buildConfig loads the optional config file and applies CLI overrides.
func (cmd *GraphCmd) buildConfig(fs ports.FileSystem) (config.Config, error) {
	cfg := config.Defaults()

	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config, fs)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Size != nil {
		w, h, err := parseSize(*cmd.Size)
		if err != nil {
			return cfg, err
		}
		cfg.CanvasWidth = w
		cfg.CanvasHeight = h
	}
	if cmd.Bpp != nil {
		cfg.PerPixel = *cmd.Bpp
	}
	if cmd.Font != nil {
		cfg.FontPath = *cmd.Font
	}
	if cmd.FFmpegPath != nil {
		cfg.FFmpegPath = *cmd.FFmpegPath
	}
	if cmd.Summary != nil {
		cfg.SummaryPath = *cmd.Summary
	}
	if cmd.Debug != nil {
		cfg.Debug = *cmd.Debug
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}
	if cmd.LogLevel != nil {
		switch *cmd.LogLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = *cmd.LogLevel
		default:
			return cfg, fmt.Errorf("invalid log level %q: expected debug, info, warn or error", *cmd.LogLevel)
		}
	}

	return cfg, nil
}

// parseSize parses a "WIDTH:HEIGHT" string.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTH:HEIGHT", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: width must be a positive integer", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: height must be a positive integer", s)
	}
	return w, h, nil
}

// writeSummary writes a Markdown summary of the run.
func writeSummary(path string, result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithInput(summarizer.InputInfo{
			Path:           result.InputPath,
			Width:          result.VideoWidth,
			Height:         result.VideoHeight,
			FrameCount:     result.FrameCount,
			PacketsRead:    result.PacketsRead,
			PacketsSkipped: result.PacketsSkipped,
		}).
		WithSeries(summarizer.SeriesInfo{
			Unit: result.UnitLabel,
			Max:  result.MaxValue,
			Mean: result.MeanValue,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:     result.OutputPath,
			Width:    result.CanvasWidth,
			Height:   result.CanvasHeight,
			Format:   result.Format,
			FileSize: result.FileSize,
		}).
		Build()

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
	return writer.Write(path, summary)
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("bitplot version %s", version))
	return nil
}
