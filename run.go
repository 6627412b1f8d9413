// Package aoc holds the helpers shared by the Advent of Code 2023 puzzle
// programs: input paths and lines, parsing, math, grids, samples, and the
// program runner.
package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Puzzle is one part of one day, runnable as a program.
type Puzzle struct {
	Day  int
	Part int

	// Source is the Go source declaring Solve. Its doc comments hold the
	// samples.
	Source []byte
	// Func is the name of the solve function within Source.
	Func  string
	Solve func(lines []string) (int, error)

	// Answer formats the result, e.g. "The sum is %d".
	Answer string
}

// ErrSampleMismatch is returned when a solver disagrees with its sample.
var ErrSampleMismatch = errors.New("sample answer mismatch")

// Main runs p as the program's command and exits non-zero on failure.
func Main(p Puzzle) {
	if err := p.Command(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal().Err(err).Msgf("day %d part %d", p.Day, p.Part)
	}
}

// Command returns the command running p. With no flags it reads
// inputs/<day>/input.txt and prints the answer to stdout.
func (p Puzzle) Command(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		inputPath  string
		sample     bool
		debug      bool
	)
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("day%dp%d", p.Day, p.Part),
		Short:         fmt.Sprintf("Solve Advent of Code 2023, day %d part %d", p.Day, p.Part),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.Debug = cfg.Debug || debug
			SetupLogging(stderr, cfg.Debug)

			if sample {
				return p.runSample(stdout)
			}
			return p.run(stdout, Or(inputPath, cfg.InputPath(p.Day, "")))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	fl := cmd.Flags()
	fl.StringVar(&configPath, "config", DefaultConfigFile, "config file")
	fl.StringVar(&inputPath, "input", "", "input file (default inputs/<day>/input.txt)")
	fl.BoolVar(&sample, "sample", false, "only run the sample from the solver's doc comment")
	fl.BoolVar(&debug, "debug", false, "debug logging")
	return cmd
}

func (p Puzzle) run(stdout io.Writer, path string) error {
	r, err := ReadLines(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("opening input")
		fmt.Fprintln(stdout, "File cannot be found")
		return nil
	}
	lines, err := r.Collect()
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("lines", len(lines)).Msg("read input")

	t0 := time.Now()
	got, err := p.Solve(lines)
	if err != nil {
		return err
	}
	log.Debug().Dur("took", time.Since(t0).Round(time.Microsecond)).Msg("solved")
	fmt.Fprintf(stdout, p.Answer+"\n", got)
	return nil
}

func (p Puzzle) runSample(stdout io.Writer) error {
	s, err := SampleFor(p.Source, p.Func)
	if err != nil {
		return err
	}
	t0 := time.Now()
	got, err := p.Solve(s.Lines())
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	if fmt.Sprint(got) != s.Want {
		fmt.Fprintf(stdout, "part %d: %v ❌; want %v\n", p.Part, got, s.Want)
		return ErrSampleMismatch
	}
	fmt.Fprintf(stdout, "part %d sample: %v ✅ (%v)\n", p.Part, got, time.Since(t0).Round(time.Microsecond))
	return nil
}
