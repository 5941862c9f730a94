// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jmhfmt

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is the file name suffix of a JMH result file.
const Suffix = ".json"

// Locate returns the name of the first file in fsys whose name ends
// in suffix, and whether there was one.
//
// The tree is walked depth-first in lexical order, as by fs.WalkDir:
// the entries of each directory are visited sorted by name, and a
// subdirectory is searched completely before its next sibling. The
// result is therefore the same on every file system.
//
// Directories that cannot be read are skipped. In particular, a
// missing root behaves like an empty one.
func Locate(fsys fs.FS, suffix string) (name string, ok bool) {
	fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			name, ok = path, true
			return fs.SkipAll
		}
		return nil
	})
	return name, ok
}

// LocateDir is like Locate with Suffix, but searches the operating
// system directory dir and returns an operating system path.
func LocateDir(dir string) (path string, ok bool) {
	if dir == "" {
		return "", false
	}
	name, ok := Locate(os.DirFS(dir), Suffix)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, filepath.FromSlash(name)), true
}
