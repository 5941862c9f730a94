// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual test
// output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a human-readable description of the differences between want and got.
// If the "diff" command is available, it returns the output of unified diff on want and got.
// If the result is non-empty, the strings differ or the diff command failed.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}
	dir, err := os.MkdirTemp("", "jmhreport_diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)

	for name, data := range map[string]string{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0666); err != nil {
			return err.Error()
		}
	}

	cmd := exec.Command("diff", "-u", "want", "got")
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't match.
		// Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, []byte(err.Error())...)
	}
	return string(data)
}
