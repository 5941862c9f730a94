// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cryptoarena/jmhreport/jmhfmt"
	"go.uber.org/zap"
)

// OutputName is the name of the file Generate writes.
const OutputName = "index.html"

// A Summary describes the outcome of a successful Generate.
type Summary struct {
	// Source is the result file that was rendered, or "" if none
	// was found.
	Source string

	// Output is the path of the written report.
	Output string

	// Rows is the number of benchmarks in the report.
	Rows int

	// Placeholder is set if no result file was found and the
	// placeholder document was written instead.
	Placeholder bool
}

// Generate finds the first JMH result file under inputDir and writes
// its HTML report to OutputName in outputDir, creating outputDir if
// necessary. If there is no result file, it writes the placeholder
// document instead; this is not an error.
//
// If the result file cannot be parsed, Generate returns a
// *jmhfmt.SyntaxError or *jmhfmt.ShapeError and leaves outputDir
// untouched. The report itself is replaced atomically, so it is never
// observed partially written.
//
// Progress is logged to log, which may be nil.
func Generate(inputDir, outputDir string, log *zap.Logger) (*Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	out := filepath.Join(outputDir, OutputName)

	src, ok := jmhfmt.LocateDir(inputDir)
	if !ok {
		log.Info("no JSON file found", zap.String("dir", inputDir))
		if err := writeFile(out, []byte(Placeholder())); err != nil {
			return nil, err
		}
		log.Info("generated placeholder report", zap.String("output", out))
		return &Summary{Output: out, Placeholder: true}, nil
	}
	log.Info("found JMH JSON", zap.String("file", src))

	set, err := jmhfmt.ReadFile(src)
	if err != nil {
		return nil, err
	}
	rows := FormatRows(set)
	var buf bytes.Buffer
	FormatHTML(&buf, rows)
	if err := writeFile(out, buf.Bytes()); err != nil {
		return nil, err
	}
	log.Info("generated JMH HTML report",
		zap.Int("benchmarks", len(rows)),
		zap.String("output", out))
	return &Summary{Source: src, Output: out, Rows: len(rows)}, nil
}

// writeFile writes data to name by way of a temporary file in the
// same directory, so that name either keeps its old content or has
// all of data.
func writeFile(name string, data []byte) (err error) {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+OutputName+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	// CreateTemp uses mode 0600.
	if err := os.Chmod(tmp, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, name); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
