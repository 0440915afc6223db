// calculations.go
package main

import "sort"

// The tallied column is spreadsheet column B.
const (
	TargetColumnName  = "B"
	TargetColumnIndex = 1
)

type netPair struct {
	Name string
	In   string
	Out  string
}

var netPairs = []netPair{
	{Name: "W_Net", In: "W_In", Out: "W_Off"},
	{Name: "Painting_Net", In: "Painting_In", Out: "Painting_Out"},
	{Name: "PBS_Net", In: "PBS_IN", Out: "PBS_Off"},
}

// LookupKind tags how LocateColumn resolved a column.
type LookupKind int

const (
	NotFound LookupKind = iota
	FoundByName
	FoundByIndex
)

// String names the lookup path for log and error output.
func (k LookupKind) String() string {
	switch k {
	case FoundByName:
		return "name"
	case FoundByIndex:
		return "index"
	default:
		return "not found"
	}
}

// ColumnLookup is the result of LocateColumn; Index is -1 when NotFound.
type ColumnLookup struct {
	Kind  LookupKind
	Index int
}

// LocateColumn resolves a column by header name first and by position
// second. Tables loaded without headers only ever take the positional path.
func LocateColumn(t Table, name string, fallback int) ColumnLookup {
	for i, h := range t.Headers {
		if h == name {
			return ColumnLookup{Kind: FoundByName, Index: i}
		}
	}
	if fallback >= 0 && fallback < t.Width() {
		return ColumnLookup{Kind: FoundByIndex, Index: fallback}
	}
	return ColumnLookup{Kind: NotFound, Index: -1}
}

// FrequencyCount maps each distinct label of a column to its occurrences.
type FrequencyCount struct {
	counts map[string]int
	order  []string
}

// CountOccurrences tallies column col of every row by exact string
// equality. A row too short to reach col counts as the empty label.
func CountOccurrences(t Table, col int) FrequencyCount {
	fc := FrequencyCount{counts: make(map[string]int)}
	for _, row := range t.Rows {
		label := ""
		if col < len(row) {
			label = row[col]
		}
		if _, seen := fc.counts[label]; !seen {
			fc.order = append(fc.order, label)
		}
		fc.counts[label]++
	}
	return fc
}

// Count returns the occurrences of label, zero when it never appeared.
func (fc FrequencyCount) Count(label string) int { return fc.counts[label] }

func (fc FrequencyCount) Len() int { return len(fc.order) }

// Total is the sum of all counts.
func (fc FrequencyCount) Total() int {
	n := 0
	for _, c := range fc.counts {
		n += c
	}
	return n
}

// Entries lists labels by descending count; ties keep first-seen order.
func (fc FrequencyCount) Entries() []LabelCount {
	out := make([]LabelCount, len(fc.order))
	for i, label := range fc.order {
		out[i] = LabelCount{Label: label, Count: fc.counts[label]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// NetResults subtracts the out-label count from the in-label count for
// every fixed pair.
func NetResults(fc FrequencyCount) []NetResult {
	nets := make([]NetResult, len(netPairs))
	for i, p := range netPairs {
		nets[i] = NetResult{
			Name:  p.Name,
			In:    p.In,
			Out:   p.Out,
			Value: fc.Count(p.In) - fc.Count(p.Out),
		}
	}
	return nets
}

// Calculate tallies column B of t and derives the net results. An empty
// table yields zero nets; a table with rows but no column B is a
// StructuralError.
func Calculate(t Table) (Calculation, error) {
	if len(t.Rows) == 0 {
		fc := CountOccurrences(t, TargetColumnIndex)
		return Calculation{Column: TargetColumnIndex, Counts: fc, Nets: NetResults(fc)}, nil
	}
	lookup := LocateColumn(t, TargetColumnName, TargetColumnIndex)
	if lookup.Kind == NotFound {
		return Calculation{}, &StructuralError{
			Column:  TargetColumnName,
			Index:   TargetColumnIndex,
			Columns: t.Width(),
		}
	}
	fc := CountOccurrences(t, lookup.Index)
	return Calculation{Column: lookup.Index, Counts: fc, Nets: NetResults(fc)}, nil
}
