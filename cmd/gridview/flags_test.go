// ABOUTME: Tests for gridview command-line parsing
// ABOUTME: Checks the explicit -wrap tracking and positional argument rules

package main

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags("gridview", []string{"-wrap=false", "-debug", "-log", "/tmp/g.log", "notes.txt"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() unexpected error: %v", err)
	}
	if args.wrap || !args.wrapSet {
		t.Errorf("wrap = %v (set %v), want explicitly false", args.wrap, args.wrapSet)
	}
	if !args.debug || args.logFile != "/tmp/g.log" || args.path != "notes.txt" {
		t.Errorf("parseFlags() = %+v", args)
	}

	args, err = parseFlags("gridview", []string{"pic.bin"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if args.wrapSet || !args.wrap {
		t.Error("wrap should default to true and be marked unset")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags("gridview", nil, io.Discard); err == nil {
		t.Error("missing FILE should fail")
	}
	if _, err := parseFlags("gridview", []string{"a", "b"}, io.Discard); err == nil {
		t.Error("two files should fail")
	}
	if _, err := parseFlags("gridview", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
	if args, err := parseFlags("gridview", []string{"-version"}, io.Discard); err != nil || !args.version {
		t.Errorf("-version = (%+v, %v), want version without FILE", args, err)
	}
}
