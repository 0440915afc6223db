package main

import (
	"errors"
	"reflect"
	"testing"
)

// columnB builds a two-column table whose second column holds labels.
func columnB(labels ...string) Table {
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{"row", l}
	}
	return Table{Rows: rows}
}

func netValues(nets []NetResult) map[string]int {
	out := make(map[string]int, len(nets))
	for _, n := range nets {
		out[n.Name] = n.Value
	}
	return out
}

func TestCalculate_Scenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		table  Table
		counts map[string]int
		nets   map[string]int
	}{
		{
			name:   "mixed W and painting",
			table:  columnB("W_In", "W_In", "W_Off", "Painting_In"),
			counts: map[string]int{"W_In": 2, "W_Off": 1, "Painting_In": 1},
			nets:   map[string]int{"W_Net": 1, "Painting_Net": 1, "PBS_Net": 0},
		},
		{
			name:   "pbs only",
			table:  columnB("PBS_IN", "PBS_IN", "PBS_IN", "PBS_Off"),
			counts: map[string]int{"PBS_IN": 3, "PBS_Off": 1},
			nets:   map[string]int{"W_Net": 0, "Painting_Net": 0, "PBS_Net": 2},
		},
		{
			name:   "empty table",
			table:  Table{},
			counts: map[string]int{},
			nets:   map[string]int{"W_Net": 0, "Painting_Net": 0, "PBS_Net": 0},
		},
		{
			name:   "case sensitive",
			table:  columnB("w_in", "W_Off"),
			counts: map[string]int{"w_in": 1, "W_Off": 1},
			nets:   map[string]int{"W_Net": -1, "Painting_Net": 0, "PBS_Net": 0},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calc, err := Calculate(tc.table)
			if err != nil {
				t.Fatalf("Calculate: %v", err)
			}
			got := make(map[string]int)
			for _, e := range calc.Counts.Entries() {
				got[e.Label] = e.Count
			}
			if !reflect.DeepEqual(got, tc.counts) {
				t.Fatalf("counts want=%v got=%v", tc.counts, got)
			}
			if nets := netValues(calc.Nets); !reflect.DeepEqual(nets, tc.nets) {
				t.Fatalf("nets want=%v got=%v", tc.nets, nets)
			}
		})
	}
}

func TestCalculate_SingleColumnIsStructuralError(t *testing.T) {
	t.Parallel()

	calc, err := Calculate(Table{Rows: [][]string{{"W_In"}, {"W_Off"}}})
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
	if se.Columns != 1 || se.Column != "B" {
		t.Fatalf("unexpected error detail: %+v", se)
	}
	if calc.Nets != nil {
		t.Fatalf("expected no nets, got %v", calc.Nets)
	}
}

func TestCalculate_NetResultOrder(t *testing.T) {
	t.Parallel()

	calc, err := Calculate(columnB("W_In"))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	want := []string{"W_Net", "Painting_Net", "PBS_Net"}
	for i, n := range calc.Nets {
		if n.Name != want[i] {
			t.Fatalf("net %d want=%s got=%s", i, want[i], n.Name)
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	t.Parallel()

	table := columnB("Painting_Out", "W_In", "PBS_IN", "Painting_Out", "x", "W_In")
	first, err := Calculate(table)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Calculate(table)
		if err != nil {
			t.Fatalf("Calculate: %v", err)
		}
		if !reflect.DeepEqual(first.Nets, again.Nets) {
			t.Fatalf("nets changed: %v vs %v", first.Nets, again.Nets)
		}
		if !reflect.DeepEqual(first.Counts.Entries(), again.Counts.Entries()) {
			t.Fatalf("counts changed: %v vs %v", first.Counts.Entries(), again.Counts.Entries())
		}
	}
}

func TestCountOccurrences_SumEqualsRows(t *testing.T) {
	t.Parallel()

	table := Table{Rows: [][]string{
		{"a", "W_In"},
		{"b"},
		{"c", "W_In", "extra"},
		{},
		{"d", ""},
	}}
	fc := CountOccurrences(table, 1)
	if fc.Total() != len(table.Rows) {
		t.Fatalf("total want=%d got=%d", len(table.Rows), fc.Total())
	}
	if fc.Count("") != 3 {
		t.Fatalf("blank count want=3 got=%d", fc.Count(""))
	}
}

func TestCountOccurrences_EntriesOrder(t *testing.T) {
	t.Parallel()

	fc := CountOccurrences(columnB("b", "a", "c", "a", "c", "a"), 1)
	want := []LabelCount{{"a", 3}, {"c", 2}, {"b", 1}}
	if got := fc.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries want=%v got=%v", want, got)
	}

	tie := CountOccurrences(columnB("z", "y", "x"), 1)
	wantTie := []LabelCount{{"z", 1}, {"y", 1}, {"x", 1}}
	if got := tie.Entries(); !reflect.DeepEqual(got, wantTie) {
		t.Fatalf("tie entries want=%v got=%v", wantTie, got)
	}
}

func TestNetResults_ZeroWhenPairAbsent(t *testing.T) {
	t.Parallel()

	fc := CountOccurrences(columnB("unrelated", "labels", "W_Off"), 1)
	nets := netValues(NetResults(fc))
	if nets["Painting_Net"] != 0 || nets["PBS_Net"] != 0 {
		t.Fatalf("absent pairs should be zero: %v", nets)
	}
	if nets["W_Net"] != -1 {
		t.Fatalf("W_Net want=-1 got=%d", nets["W_Net"])
	}
}

func TestLocateColumn(t *testing.T) {
	t.Parallel()

	headerless := columnB("W_In")
	if got := LocateColumn(headerless, "B", 1); got.Kind != FoundByIndex || got.Index != 1 {
		t.Fatalf("headerless lookup: %+v", got)
	}

	named := Table{Headers: []string{"A", "C", "B"}, Rows: [][]string{{"1", "2", "3"}}}
	if got := LocateColumn(named, "B", 1); got.Kind != FoundByName || got.Index != 2 {
		t.Fatalf("named lookup: %+v", got)
	}

	narrow := Table{Rows: [][]string{{"only"}}}
	if got := LocateColumn(narrow, "B", 1); got.Kind != NotFound {
		t.Fatalf("narrow lookup: %+v (%s)", got, got.Kind)
	}
}

func TestTableHead_PadsToWidth(t *testing.T) {
	t.Parallel()

	table := Table{Rows: [][]string{{"a"}, {"b", "c", "d"}, {"e", "f"}}}
	head := table.Head(2)
	if len(head) != 2 {
		t.Fatalf("head rows want=2 got=%d", len(head))
	}
	if !reflect.DeepEqual(head[0], []string{"a", "", ""}) {
		t.Fatalf("unexpected padded row: %q", head[0])
	}
	if len(table.Head(10)) != 3 {
		t.Fatalf("head should cap at row count")
	}
}
