package main

import (
	"testing"

	"github.com/user/bitplot/pkg/mocks"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestBuildConfig_Defaults(t *testing.T) {
	cmd := &GraphCmd{}

	cfg, err := cmd.buildConfig(mocks.NewFileSystem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CanvasWidth != 1920 || cfg.CanvasHeight != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.LogLevel)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected debug dir './debug', got %q", cfg.DebugDir)
	}
}

func TestBuildConfig_FlagsOverrideConfigFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("bitplot.yaml", []byte("log_level: debug\ndebug: true\ndebug_dir: /tmp/debug\nper_pixel: true\n"))

	// Explicitly passing the default value must still win over the
	// config file
	cmd := &GraphCmd{
		Config:   "bitplot.yaml",
		LogLevel: stringPtr("info"),
		Debug:    boolPtr(false),
		DebugDir: stringPtr("./debug"),
		Bpp:      boolPtr(false),
	}

	cfg, err := cmd.buildConfig(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected flag to override log level, got %q", cfg.LogLevel)
	}
	if cfg.Debug {
		t.Error("expected flag to override debug")
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected flag to override debug dir, got %q", cfg.DebugDir)
	}
	if cfg.PerPixel {
		t.Error("expected flag to override per-pixel")
	}
}

func TestBuildConfig_UnsetFlagsKeepConfigFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("bitplot.yaml", []byte("log_level: debug\ndebug_dir: /tmp/debug\n"))

	cmd := &GraphCmd{Config: "bitplot.yaml"}

	cfg, err := cmd.buildConfig(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected config file log level, got %q", cfg.LogLevel)
	}
	if cfg.DebugDir != "/tmp/debug" {
		t.Errorf("expected config file debug dir, got %q", cfg.DebugDir)
	}
}

func TestBuildConfig_InvalidLogLevel(t *testing.T) {
	cmd := &GraphCmd{LogLevel: stringPtr("verbose")}

	if _, err := cmd.buildConfig(mocks.NewFileSystem()); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("1920:1080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", w, h)
	}
}

func TestParseSize_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"1920",
		"1920x1080",
		"1920:1080:60",
		"abc:1080",
		"1920:abc",
		"0:1080",
		"-1920:1080",
		"1920:0",
	}
	for _, s := range invalid {
		if _, _, err := parseSize(s); err == nil {
			t.Errorf("parseSize(%q): expected error", s)
		}
	}
}
