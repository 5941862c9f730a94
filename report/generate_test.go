// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cryptoarena/jmhreport/jmhfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, OutputName))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func newObserver() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func TestGenerate(t *testing.T) {
	in, out := t.TempDir(), filepath.Join(t.TempDir(), "site", "jmh")
	src := writeInput(t, in, "build/results/jmh/results.json", scenarioA)
	writeInput(t, in, "build/results/jmh/notes.txt", "not json")

	log, logs := newObserver()
	sum, err := Generate(in, out, log)
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{Source: src, Output: filepath.Join(out, OutputName), Rows: 1}
	if *sum != want {
		t.Errorf("got summary %+v, want %+v", *sum, want)
	}
	if got, want := readOutput(t, out), Render(FormatRows(parse(t, scenarioA))); got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if n := logs.FilterMessage("found JMH JSON").FilterField(zap.String("file", src)).Len(); n != 1 {
		t.Errorf("got %d \"found\" log entries, want 1", n)
	}
	if n := logs.FilterMessage("generated JMH HTML report").FilterField(zap.Int("benchmarks", 1)).Len(); n != 1 {
		t.Errorf("got %d \"generated\" log entries, want 1", n)
	}
}

func TestGeneratePlaceholder(t *testing.T) {
	for _, test := range []struct {
		name  string
		input func(t *testing.T) string
	}{
		{"empty", func(t *testing.T) string { return t.TempDir() }},
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") }},
		{"no json", func(t *testing.T) string {
			dir := t.TempDir()
			writeInput(t, dir, "a/b/results.csv", "x,y\n")
			return dir
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			out := t.TempDir()
			log, logs := newObserver()
			sum, err := Generate(test.input(t), out, log)
			if err != nil {
				t.Fatal(err)
			}
			if !sum.Placeholder || sum.Source != "" || sum.Rows != 0 {
				t.Errorf("got summary %+v, want placeholder", *sum)
			}
			if got := readOutput(t, out); got != Placeholder() {
				t.Errorf("got report %s, want placeholder", got)
			}
			if logs.FilterMessage("no JSON file found").Len() != 1 {
				t.Errorf("missing \"no JSON file found\" log entry")
			}
		})
	}
}

func TestGenerateShapeError(t *testing.T) {
	in := t.TempDir()
	writeInput(t, in, "results.json", `"just a string"`)
	out := filepath.Join(t.TempDir(), "out")

	_, err := Generate(in, out, nil)
	var serr *jmhfmt.ShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *jmhfmt.ShapeError", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output directory was created on failure")
	}
}

func TestGenerateKeepsOldReport(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeInput(t, in, "results.json", `[{"benchmark": }]`)
	const old = "previous report"
	writeInput(t, out, OutputName, old)

	_, err := Generate(in, out, nil)
	var serr *jmhfmt.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *jmhfmt.SyntaxError", err)
	}
	if got := readOutput(t, out); got != old {
		t.Errorf("report was modified on failure: %s", got)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeInput(t, in, "results.json", `{"benchmarks": [{"benchmark": "A", "params": {"b": "1", "a": "2"}}, {"benchmark": "B"}]}`)
	writeInput(t, out, OutputName, "stale")

	if _, err := Generate(in, out, nil); err != nil {
		t.Fatal(err)
	}
	first := readOutput(t, out)
	if _, err := Generate(in, out, nil); err != nil {
		t.Fatal(err)
	}
	if second := readOutput(t, out); second != first {
		t.Errorf("second run differs from first")
	}

	// Only the report remains; no temporary files.
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != OutputName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("got output files %v, want [%s]", names, OutputName)
	}
	info, err := os.Stat(filepath.Join(out, OutputName))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("got mode %v, want 0644", perm)
	}
}
