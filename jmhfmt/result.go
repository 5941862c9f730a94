// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhfmt reads the JSON result files written by the Java
// Microbenchmark Harness (JMH) with "-rf json".
//
// A result file is either an array of benchmark records or an object
// whose "benchmarks" member holds that array. Records are read
// leniently: every accessor on Record is total, returning a
// documented default when a field is missing or has an unexpected
// type, so a well-formed file never fails because of its contents.
package jmhfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// A ResultSet is the ordered sequence of records in a result file.
type ResultSet []Record

// A Record is a single JMH benchmark result.
//
// The zero Record behaves like an empty JSON object.
type Record struct {
	raw gjson.Result
}

// NewRecord returns the Record for raw JSON value v. A v that is not
// a JSON object yields a Record with every field defaulted.
func NewRecord(v gjson.Result) Record {
	return Record{v}
}

// A Param is a single benchmark parameter. Value is the parameter's
// display form: strings appear verbatim and everything else as its
// compact JSON text.
type Param struct {
	Key   string
	Value string
}

// Name returns the fully-qualified benchmark method name, or "".
func (r Record) Name() string {
	return stringField(r.raw, "benchmark")
}

// Mode returns the benchmark mode, such as "thrpt" or "avgt", or "".
func (r Record) Mode() string {
	return stringField(r.raw, "mode")
}

// Params returns the benchmark parameters in the order they appear
// in the input. It returns nil if there are none.
//
// A repeated name keeps the position of its first occurrence and the
// value of its last.
func (r Record) Params() []Param {
	obj := member(r.raw, "params")
	if !obj.IsObject() {
		return nil
	}
	var params []Param
	pos := make(map[string]int)
	obj.ForEach(func(key, value gjson.Result) bool {
		p := Param{key.String(), display(value)}
		if i, ok := pos[p.Key]; ok {
			params[i] = p
		} else {
			pos[p.Key] = len(params)
			params = append(params, p)
		}
		return true
	})
	return params
}

// Score returns the primary metric's score, or 0.
func (r Record) Score() float64 {
	return numberField(member(r.raw, "primaryMetric"), "score")
}

// ScoreError returns the primary metric's error, or 0 if it was not
// reported. JMH writes "NaN" when it cannot compute the error; that
// also reads as 0.
func (r Record) ScoreError() float64 {
	return numberField(member(r.raw, "primaryMetric"), "scoreError")
}

// ScoreUnit returns the unit of the primary metric, such as "ops/s", or "".
func (r Record) ScoreUnit() string {
	return stringField(member(r.raw, "primaryMetric"), "scoreUnit")
}

// member returns member key of obj, or a non-existent Result if obj
// is not an object or has no such member. If key is repeated, the
// last occurrence wins.
//
// Keys are matched literally; gjson path syntax is not interpreted.
func member(obj gjson.Result, key string) gjson.Result {
	var v gjson.Result
	if !obj.IsObject() {
		return v
	}
	obj.ForEach(func(k, value gjson.Result) bool {
		if k.String() == key {
			v = value
		}
		return true
	})
	return v
}

func stringField(obj gjson.Result, key string) string {
	v := member(obj, key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// numberField returns member key as a finite float64. Numeric strings
// are accepted. Anything else, including NaN and infinities, is 0.
func numberField(obj gjson.Result, key string) float64 {
	v := member(obj, key)
	var s string
	switch v.Type {
	case gjson.Number:
		s = v.Raw
	case gjson.String:
		s = strings.TrimSpace(v.Str)
	default:
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// display returns the display form of v: a string as is, and any
// other value as its JSON text without insignificant white space.
func display(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.JSON:
		return string(pretty.Ugly([]byte(v.Raw)))
	}
	return v.Raw
}
