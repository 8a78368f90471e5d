// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/config"
	"github.com/katalvlaran/nwalign/fasta"
	"github.com/katalvlaran/nwalign/metrics"
	"github.com/katalvlaran/nwalign/nw"
)

// errVerify is returned by --verify when the rescored alignment disagrees
// with the matrix score.
var errVerify = errors.New("pwa: rescored alignment does not match best score")

type alignFlags struct {
	mode        string
	matrix      string
	match       int
	mismatch    int
	gap         int
	gapChar     string
	workers     int
	metricsFile string
	pretty      bool
	showPath    bool
	verify      bool
}

func newAlignCmd(g *globalFlags) *cobra.Command {
	f := &alignFlags{}
	cmd := &cobra.Command{
		Use:   "align [file]",
		Short: "Align the first two records of a FASTA file (stdin when omitted or '-')",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.mode, "mode", "m", "", "alignment mode: nucleotide or protein")
	fl.StringVar(&f.matrix, "matrix", "", "substitution matrix for protein mode")
	fl.IntVar(&f.match, "match", 0, "score for identical symbols (nucleotide mode)")
	fl.IntVar(&f.mismatch, "mismatch", 0, "score for differing symbols (nucleotide mode)")
	fl.IntVar(&f.gap, "gap", 0, "score per gap (indel)")
	fl.StringVar(&f.gapChar, "gap-char", "", "gap marker in the aligned output")
	fl.IntVarP(&f.workers, "workers", "w", 0, "goroutines for anti-diagonal fill (1 = sequential)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	fl.BoolVar(&f.pretty, "pretty", false, "print the score matrix as a table")
	fl.BoolVar(&f.showPath, "path", false, "print the traced move path (D=diagonal, U=up, L=left)")
	fl.BoolVar(&f.verify, "verify", false, "rescore the rendered alignment and check it against the best score")

	return cmd
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, g *globalFlags, f *alignFlags) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("matrix") {
		cfg.Matrix = f.matrix
	}
	if fl.Changed("match") {
		cfg.Scoring.Match = f.match
	}
	if fl.Changed("mismatch") {
		cfg.Scoring.Mismatch = f.mismatch
	}
	if fl.Changed("gap") {
		cfg.Scoring.Gap = f.gap
	}
	if fl.Changed("gap-char") {
		cfg.GapChar = f.gapChar
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runAlign(cmd *cobra.Command, args []string, g *globalFlags, f *alignFlags) error {
	cfg, err := loadConfig(cmd, g, f)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("run_id", uuid.NewString())

	records, source, err := readRecords(cmd, args)
	if err != nil {
		return err
	}
	a, b, extra, err := fasta.Pair(records)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if extra > 0 {
		log.Warn("only the first two records are aligned", "source", source, "ignored", extra)
	}

	scorer, err := cfg.Scorer()
	if err != nil {
		return err
	}
	al, err := nw.New([]byte(a.Sequence), []byte(b.Sequence), scorer, cfg.Options()...)
	if err != nil {
		return err
	}
	log.Debug("aligning",
		"mode", cfg.Mode, "a", a.Header, "len_a", len(a.Sequence),
		"b", b.Header, "len_b", len(b.Sequence), "workers", cfg.Workers)

	rec := metrics.NewRecorder()
	start := time.Now()
	alignErr := al.Align()
	elapsed := time.Since(start)

	var score int
	if alignErr == nil {
		if score, err = al.BestScore(); err != nil {
			return err
		}
	}
	rec.Observe(cfg.Mode, al.Cells(), elapsed, score, alignErr)
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error("writing metrics", "path", cfg.MetricsFile, "err", err)
		}
	}
	if alignErr != nil {
		return alignErr
	}
	log.Info("aligned", "score", score, "cells", al.Cells(), "elapsed", elapsed)

	pair, err := al.AlignedPair()
	if err != nil {
		return err
	}
	if f.verify {
		got, err := nw.Rescore(pair, scorer, al.GapChar())
		if err != nil {
			return err
		}
		if got != score {
			return fmt.Errorf("%w: rescored %d, matrix %d", errVerify, got, score)
		}
		log.Debug("verified", "score", got)
	}

	out := cmd.OutOrStdout()
	if f.pretty {
		scores, err := al.Scores()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderScores(scores, a.Sequence, b.Sequence))
	}
	fmt.Fprintln(out, pair.A)
	fmt.Fprintln(out, pair.B)
	fmt.Fprintf(out, "score: %d\n", score)
	if f.showPath {
		path, err := al.TracedPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path: %s\n", nw.PathString(path))
	}

	return nil
}

// readRecords parses FASTA from the file named in args, or from stdin.
func readRecords(cmd *cobra.Command, args []string) ([]fasta.Record, string, error) {
	var (
		r      io.Reader = cmd.InOrStdin()
		source           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return nil, "", err
		}
		defer fh.Close()
		r, source = fh, args[0]
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", source, err)
	}
	records, err := fasta.ParseString(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", source, err)
	}

	return records, source, nil
}
