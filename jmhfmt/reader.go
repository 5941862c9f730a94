// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// A SyntaxError reports a result file that is not valid JSON.
type SyntaxError struct {
	FileName string
	Line     int // 0 if unknown
	Err      error
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.FileName, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.FileName, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// A ShapeError reports a result file whose top-level value is valid
// JSON but neither an array nor an object.
type ShapeError struct {
	FileName string
	Kind     string // JSON type of the top-level value, as returned by Kind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: top-level value is %s, want array or object", e.FileName, e.Kind)
}

// A Shape classifies the top-level value of a result file.
type Shape int

const (
	ShapeInvalid Shape = iota // neither of the below
	ShapeArray                // [record, ...]
	ShapeObject               // {"benchmarks": [record, ...], ...}
)

// ShapeOf classifies v.
func ShapeOf(v gjson.Result) Shape {
	switch {
	case v.IsArray():
		return ShapeArray
	case v.IsObject():
		return ShapeObject
	}
	return ShapeInvalid
}

// Kind returns a short description of v's JSON type, for use in
// error messages.
func Kind(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.JSON:
		if v.IsArray() {
			return "array"
		}
		return "object"
	}
	return "null"
}

// Records returns the records held by the top-level value v.
//
// For an object, the records are its "benchmarks" member. A missing
// or non-array member yields an empty ResultSet. If v is neither an
// array nor an object, Records returns a *ShapeError with an empty
// FileName.
func Records(v gjson.Result) (ResultSet, error) {
	var raw []gjson.Result
	switch ShapeOf(v) {
	case ShapeArray:
		raw = v.Array()
	case ShapeObject:
		if b := member(v, "benchmarks"); b.IsArray() {
			raw = b.Array()
		}
	default:
		return nil, &ShapeError{Kind: Kind(v)}
	}
	set := make(ResultSet, len(raw))
	for i, rec := range raw {
		set[i] = NewRecord(rec)
	}
	return set, nil
}

var errInvalid = errors.New("invalid JSON")

// Parse reads a JMH result file from r. fileName is used in error
// messages; it is purely diagnostic.
//
// Malformed JSON is reported as a *SyntaxError and a top-level value
// of the wrong type as a *ShapeError.
func Parse(r io.Reader, fileName string) (ResultSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(fileName, data)
	}
	set, err := Records(gjson.ParseBytes(data))
	if err, ok := err.(*ShapeError); ok {
		err.FileName = fileName
		return nil, err
	}
	return set, err
}

// syntaxError describes why data is not valid JSON. gjson only reports
// validity, so the position comes from encoding/json.
func syntaxError(fileName string, data []byte) *SyntaxError {
	serr := &SyntaxError{FileName: fileName, Err: errInvalid}
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err == nil {
		return serr
	}
	serr.Err = err
	if jerr, ok := err.(*json.SyntaxError); ok {
		serr.Line = lineOf(data, jerr.Offset)
	}
	return serr
}

// ReadFile parses the JMH result file name.
func ReadFile(name string) (ResultSet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, name)
}

// lineOf returns the 1-based line containing byte offset off of data.
func lineOf(data []byte, off int64) int {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	if off < 0 {
		off = 0
	}
	return 1 + bytes.Count(data[:off], []byte("\n"))
}
