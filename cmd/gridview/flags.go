// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -wrap, -log, -debug, -image and -version

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	config  string
	wrap    bool
	wrapSet bool
	logFile string
	debug   bool
	image   bool
	version bool
	path    string
}

func parseFlags(name string, argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] FILE\n\n", name)
		fs.PrintDefaults()
	}

	fs.StringVar(&args.config, "config", "", "Config file (default: ~/.gridterm and ./.gridterm merged)")
	fs.BoolVar(&args.wrap, "wrap", true, "Wrap long lines at the right edge")
	fs.StringVar(&args.logFile, "log", "", "Log file (default from config)")
	fs.BoolVar(&args.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&args.image, "image", false, "Treat FILE as an image regardless of extension")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "wrap" {
			args.wrapSet = true
		}
	})

	if args.version {
		return args, nil
	}
	switch fs.NArg() {
	case 1:
		args.path = fs.Arg(0)
	case 0:
		fs.Usage()
		return args, fmt.Errorf("missing FILE argument")
	default:
		fs.Usage()
		return args, fmt.Errorf("expected one FILE argument, got %d", fs.NArg())
	}
	return args, nil
}
