// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jmh2html converts JMH JSON results to a styled HTML report.
//
// Usage:
//
//	jmh2html <input_dir> <output_dir>
//
// Jmh2html searches input_dir and all of its subdirectories for the
// first file whose name ends in ".json", visiting directory entries
// in lexical order, and reads it as the output of a JMH run with
// "-rf json". The file may hold either an array of benchmark results
// or an object with a "benchmarks" array.
//
// The report is written to output_dir/index.html, creating output_dir
// if necessary and replacing any existing report. It shows one table
// row per benchmark with its parameters, mode, score, unit and score
// error.
//
// If input_dir holds no JSON file, jmh2html writes a placeholder page
// saying so and exits successfully. If the JSON file cannot be
// parsed, it exits with status 1 and leaves output_dir/index.html
// unchanged.
package main

import (
	"io"
	"os"

	"github.com/cryptoarena/jmhreport/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var exit = os.Exit // replaced during testing

func main() {
	if err := jmh2html(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		exit(1)
	}
}

// jmh2html runs the command with args. Progress and usage go to
// stdout and errors go to stderr.
func jmh2html(stdout, stderr io.Writer, args []string) error {
	cmd := &cobra.Command{
		Use:   "jmh2html <input_dir> <output_dir>",
		Short: "Convert JMH JSON results to a styled HTML report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid; later failures aren't usage errors.
			cmd.SilenceUsage = true

			log := newLogger(cmd.OutOrStdout())
			defer log.Sync()
			_, err := report.Generate(args[0], args[1], log)
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		// cobra reads os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

// newLogger returns a logger that writes bare progress lines to w.
func newLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = zapcore.OmitKey
	cfg.LevelKey = zapcore.OmitKey
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zapcore.InfoLevel)
	return zap.New(core)
}
