// types.go
package main

import "time"

// Table is a spreadsheet loaded without header interpretation. Columns are
// addressed by position; Headers stays nil for every loader in this program.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Width returns the widest row length, which is the table's column count.
func (t Table) Width() int {
	w := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Head returns up to n leading rows, padded to the table width for display.
func (t Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	width := t.Width()
	head := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, width)
		copy(row, t.Rows[i])
		head[i] = row
	}
	return head
}

// LabelCount is one entry of a FrequencyCount.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// NetResult is the difference between the counts of a fixed label pair.
type NetResult struct {
	Name  string `json:"name"`
	In    string `json:"in"`
	Out   string `json:"out"`
	Value int    `json:"value"`
}

// Calculation is the output of a single tally over one Table.
type Calculation struct {
	Column int
	Counts FrequencyCount
	Nets   []NetResult
}

// Report bundles everything rendered for one upload.
type Report struct {
	ID         string
	FileName   string
	FileSize   int64
	UploadTime time.Time
	Rows       int
	Columns    int
	Preview    [][]string
	Nets       []NetResult
	Counts     []LabelCount
}

type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"errorKind,omitempty"`
}

type tallyPayload struct {
	ID       string       `json:"id"`
	FileName string       `json:"fileName"`
	Rows     int          `json:"rows"`
	Columns  int          `json:"columns"`
	Nets     []NetResult  `json:"nets"`
	Counts   []LabelCount `json:"counts"`
}
