// Copyright 2026 The Crypto Arena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"

	"github.com/google/safehtml/template"
)

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>JMH Benchmark Results - Crypto Arena</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); min-height: 100vh; color: #fff; padding: 40px 20px; }
    .container { max-width: 1200px; margin: 0 auto; }
    h1 { font-size: 2rem; margin-bottom: 8px; }
    .subtitle { color: #8892b0; margin-bottom: 30px; }
    .back-link { color: #007bff; text-decoration: none; display: inline-block; margin-bottom: 20px; }
    .back-link:hover { text-decoration: underline; }
    table { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.05); border-radius: 12px; overflow: hidden; }
    th, td { padding: 14px 16px; text-align: left; border-bottom: 1px solid rgba(255,255,255,0.1); }
    th { background: rgba(255,255,255,0.1); font-weight: 600; color: #ccd6f6; }
    tr:hover { background: rgba(255,255,255,0.03); }
    .score { font-weight: bold; color: #64ffda; }
    .error { color: #8892b0; font-size: 0.9em; }
    .mode { background: rgba(100,255,218,0.1); padding: 4px 8px; border-radius: 4px; font-size: 0.85em; }
    footer { margin-top: 40px; text-align: center; color: #8892b0; font-size: 0.85rem; }
  </style>
</head>
<body>
  <div class="container">
    <a href="../" class="back-link">← Back to Reports</a>
    <h1>⚡ JMH Benchmark Results</h1>
    <p class="subtitle">Java Microbenchmark Harness performance measurements</p>
    <table>
      <thead>
        <tr>
          <th>Benchmark</th>
          <th>Parameters</th>
          <th>Mode</th>
          <th>Score</th>
          <th>Unit</th>
          <th>Error</th>
        </tr>
      </thead>
      <tbody>
{{range .Rows}}        <tr>
          <td>{{.Name}}</td>
          <td>{{.Params}}</td>
          <td><span class="mode">{{.Mode}}</span></td>
          <td class="score">{{.Score}}</td>
          <td>{{.Unit}}</td>
          <td class="error">{{.Error}}</td>
        </tr>
{{end}}      </tbody>
    </table>
    <footer>
      <p>Generated from JMH results • {{.Count}} benchmark(s) executed</p>
    </footer>
  </div>
</body>
</html>
`

const placeholderHTML = `<html><body><h1>No JMH Results</h1><p>No benchmark JSON results available.</p></body></html>`

var (
	reportTemplate      = template.Must(template.New("report").Parse(reportHTML))
	placeholderTemplate = template.Must(template.New("placeholder").Parse(placeholderHTML))
)

// FormatHTML appends a complete HTML document showing rows to buf.
func FormatHTML(buf *bytes.Buffer, rows []Row) {
	data := struct {
		Rows  []Row
		Count int
	}{rows, len(rows)}
	mustExecute(reportTemplate, buf, data)
}

// Render returns the HTML document showing rows.
func Render(rows []Row) string {
	var buf bytes.Buffer
	FormatHTML(&buf, rows)
	return buf.String()
}

// Placeholder returns the document written when there are no results.
func Placeholder() string {
	var buf bytes.Buffer
	mustExecute(placeholderTemplate, &buf, nil)
	return buf.String()
}

func mustExecute(t *template.Template, buf *bytes.Buffer, data any) {
	if err := t.Execute(buf, data); err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
