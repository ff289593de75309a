// ABOUTME: CLI entry point for gridview, a full-screen text and image viewer
// ABOUTME: Wires config, file logging, the process terminal and the diff renderer

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mauromedda/gridterm/internal/config"
	"github.com/mauromedda/gridterm/internal/log"
	"github.com/mauromedda/gridterm/pkg/image"
	"github.com/mauromedda/gridterm/pkg/render"
	"github.com/mauromedda/gridterm/pkg/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func main() {
	args, err := parseFlags(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("gridview %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and shows args.path until
// the user quits.
func run(args cliArgs) error {
	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, args)
	if err != nil {
		return err
	}
	defer closeLog()

	v, err := loadView(args)
	if err != nil {
		return err
	}
	v.wrap = cfg.WrapEnabled()
	if args.wrapSet {
		v.wrap = args.wrap
	}
	// Validated at load time.
	v.textStyle, _ = cfg.TextStyle.Style()
	v.statusStyle, _ = cfg.StatusStyle.Style()
	mode, _ := config.ParseColorMode(cfg.ColorMode)

	pt := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(pt)

	renderer, err := render.Setup(terminal.NewOutput(pt, mode))
	if err != nil {
		return fmt.Errorf("setting up terminal: %w", err)
	}
	defer func() {
		if err := renderer.Teardown(); err != nil {
			log.Warn("gridview: restoring terminal: %v", err)
		}
	}()
	log.Info("gridview: showing %s (color mode %s)", args.path, mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a := &app{renderer: renderer, events: terminal.NewEventReader(pt), view: v}

	if err := a.serve(ctx, pt); err != nil {
		log.Error("gridview: %v", err)
		return err
	}
	log.Info("gridview: done")
	return nil
}

func loadSettings(args cliArgs) (*config.Settings, error) {
	if args.config != "" {
		return config.LoadFile(args.config)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging sends log output to a file for the session, since the
// screen belongs to the renderer.
func setupLogging(cfg *config.Settings, args cliArgs) (func(), error) {
	level, _ := log.ParseLevel(cfg.LogLevel)
	if args.debug {
		level = log.LevelDebug
	}
	log.SetLevel(level)

	path := cfg.LogFile
	if args.logFile != "" {
		path = args.logFile
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

func loadView(args cliArgs) (*view, error) {
	name := filepath.Base(args.path)
	if args.image || imageExts[strings.ToLower(filepath.Ext(args.path))] {
		img, err := image.Load(args.path)
		if err != nil {
			return nil, err
		}
		return newImageView(name, img), nil
	}

	data, err := os.ReadFile(args.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args.path, err)
	}
	return newTextView(name, string(data)), nil
}
