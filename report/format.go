// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders JMH results as a self-contained HTML page.
package report

import (
	"strconv"
	"strings"

	"github.com/cryptoarena/jmhreport/jmhfmt"
	"github.com/google/safehtml"
)

// A Row is one display-ready table row. Every field is already
// escaped, so the renderer inserts them verbatim.
type Row struct {
	Name   safehtml.HTML
	Params safehtml.HTML
	Mode   safehtml.HTML
	Score  safehtml.HTML
	Unit   safehtml.HTML
	Error  safehtml.HTML
}

// FormatRows formats each record of set, in order.
func FormatRows(set jmhfmt.ResultSet) []Row {
	rows := make([]Row, len(set))
	for i, rec := range set {
		rows[i] = FormatRow(rec)
	}
	return rows
}

// FormatRow formats a single record.
func FormatRow(rec jmhfmt.Record) Row {
	return Row{
		Name:   safehtml.HTMLEscaped(rec.Name()),
		Params: FormatParams(rec.Params()),
		Mode:   safehtml.HTMLEscaped(rec.Mode()),
		Score:  safehtml.HTMLEscaped(FormatScore(rec.Score())),
		Unit:   safehtml.HTMLEscaped(rec.ScoreUnit()),
		Error:  safehtml.HTMLEscaped(FormatError(rec.ScoreError())),
	}
}

// FormatParams joins params as "key=value" pairs separated by ", ",
// or returns "-" if there are none. Parameter names and values come
// from arbitrary benchmark code, so the result is always escaped.
func FormatParams(params []jmhfmt.Param) safehtml.HTML {
	if len(params) == 0 {
		return safehtml.HTMLEscaped("-")
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return safehtml.HTMLEscaped(b.String())
}

// FormatScore formats x with exactly two decimal places.
func FormatScore(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// FormatError formats a score error as "± x", or "-" if x is 0,
// which means the error was not reported.
func FormatError(x float64) string {
	if x == 0 {
		return "-"
	}
	return "± " + FormatScore(x)
}
