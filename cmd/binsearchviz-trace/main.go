// Command binsearchviz-trace runs one search without a presenter and
// prints every animation frame.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"binsearchviz/internal/arraygen"
	"binsearchviz/internal/config"
	"binsearchviz/internal/domain"
	"binsearchviz/internal/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("binsearchviz-trace", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.BindFlags(fs)
	key := fs.IntP("key", "k", 0, "key to search for")
	quiet := fs.BoolP("quiet", "q", false, "print only the outcome")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *key <= 0 || *key > search.MaxKey {
		fmt.Fprintf(stderr, "Error: --key must be in [1, %d]\n", search.MaxKey)
		return 1
	}

	cfg := config.DefaultConfig()
	if flags.ConfigPath != "" {
		loaded, err := config.NewConfigService(flags.ConfigPath).LoadFromPath(flags.ConfigPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	cfg, err := flags.Overlay(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctrl := search.NewController(
		arraygen.New(cfg.Array.Size, cfg.Array.MaxValue, cfg.Array.Seed),
		search.WithInclusiveBounds(cfg.Search.InclusiveBounds),
	)
	for _, r := range strconv.Itoa(*key) {
		ctrl.Digit(int(r - '0'))
	}
	if !ctrl.ConfirmSearch() {
		fmt.Fprintln(stderr, "Error: search could not be started")
		return 1
	}

	if !*quiet {
		fmt.Fprintf(stdout, "sequence: %v\n", ctrl.Snapshot().Sequence)
	}
	for f := range ctrl.Frames() {
		if !*quiet {
			fmt.Fprintf(stdout, "%-9s left=%d right=%d mid=%d\n", f.Kind, f.Left, f.Right, f.Mid)
		}
	}

	res := ctrl.LastResult()
	if res.Outcome == domain.OutcomeFound {
		fmt.Fprintf(stdout, "found %d at index %d after %d frames\n", res.Key, res.Index, res.Frames)
	} else {
		fmt.Fprintf(stdout, "%d not found after %d frames\n", res.Key, res.Frames)
	}
	return 0
}
