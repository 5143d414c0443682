// Package main is the stamper command: a small terminal editor with chord
// triggered timestamps, plus a one-shot mode that prints the stamps.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/ionut-t/stamper/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	file       string
	print      bool
	copy       bool
	at         string
	init       bool
	version    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.version {
		fmt.Printf("stamper %s (%s)\n", version, commit)
		return 0
	}

	loader := config.NewLoader(opts.configPath)

	if opts.init {
		if err := initConfig(loader.Path()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", loader.Path())
		return 0
	}

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	if opts.print || opts.copy {
		return runPrint(cfg, opts, logger)
	}

	if err := runEditor(loader, opts.file, logger); err != nil {
		logger.Error("editor exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default "+config.ConfigPath()+")")
	flag.StringVar(&opts.file, "file", "", "File to edit")
	flag.BoolVar(&opts.print, "print", false, "Print every binding's stamp and exit")
	flag.BoolVar(&opts.copy, "copy", false, "Copy the first binding's stamp to the clipboard and exit")
	flag.StringVar(&opts.at, "at", "", "Reference time for -print, RFC 3339 (default now)")
	flag.BoolVar(&opts.init, "init", false, "Write the default configuration file and exit")
	flag.BoolVar(&opts.version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stamper - insert timestamps with a key chord\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stamper [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stamper -file notes.md        Edit notes.md\n")
		fmt.Fprintf(os.Stderr, "  stamper -print                Print all stamps for now\n")
		fmt.Fprintf(os.Stderr, "  stamper -print -at 2024-03-10T09:00:00Z\n")
		fmt.Fprintf(os.Stderr, "  stamper -copy                 Copy the first stamp\n")
	}

	flag.Parse()

	if opts.file == "" && flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}

	return opts
}

func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return config.Save(config.DefaultConfig(), path)
}

// newLogger logs to the configured file; the terminal belongs to the editor.
func newLogger(cfg *config.Config) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, opts)).With("pid", os.Getpid())
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }
}

func runPrint(cfg *config.Config, opts options, logger *slog.Logger) int {
	ref := time.Now()
	if opts.at != "" {
		t, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -at: %v\n", err)
			return 1
		}
		ref = t
	}

	first, err := printStamps(os.Stdout, cfg, ref, opts.print)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.copy {
		if err := clipboard.WriteAll(first); err != nil {
			logger.Error("clipboard write failed", "err", err)
			fmt.Fprintf(os.Stderr, "Error: copy to clipboard: %v\n", err)
			return 1
		}
		logger.Info("stamp copied", "text", first)
	}

	return 0
}
