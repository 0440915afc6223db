// processing.go
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	zipMagic  = []byte("PK\x03\x04")
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

// LoadTable reads the first sheet of a spreadsheet without treating any row
// as a header. The format is chosen from the content; filename only decides
// whether unrecognised content may be read as CSV.
func LoadTable(r io.Reader, filename string) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, &LoadError{Err: err}
	}
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return processExcel(data)
	case bytes.HasPrefix(data, ole2Magic):
		return processLegacyExcel(data)
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return processCSV(data)
	default:
		return Table{}, &LoadError{Err: ErrUnknownFormat}
	}
}

func processExcel(data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, &LoadError{Format: "xlsx", Err: err}
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, &LoadError{Format: "xlsx", Err: fmt.Errorf("no sheets")}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, &LoadError{Format: "xlsx", Err: err}
	}
	return Table{Rows: trimEmptyRows(rows)}, nil
}

func processLegacyExcel(data []byte) (t Table, err error) {
	// The BIFF decoder panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			t, err = Table{}, &LoadError{Format: "xls", Err: fmt.Errorf("corrupt workbook: %v", r)}
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return Table{}, &LoadError{Format: "xls", Err: err}
	}
	if wb.NumSheets() == 0 {
		return Table{}, &LoadError{Format: "xls", Err: fmt.Errorf("no sheets")}
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Table{}, &LoadError{Format: "xls", Err: fmt.Errorf("no sheets")}
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := range cells {
			cells[c] = row.Col(c)
		}
		rows = append(rows, trimEmptyCells(cells))
	}
	return Table{Rows: trimEmptyRows(rows)}, nil
}

func processCSV(data []byte) (Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return Table{}, &LoadError{Format: "csv", Err: err}
		}
		data = decoded
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, &LoadError{Format: "csv", Err: err}
	}
	for i, row := range rows {
		rows[i] = trimEmptyCells(row)
	}
	return Table{Rows: trimEmptyRows(rows)}, nil
}

// trimEmptyCells drops trailing blank cells, matching excelize's GetRows.
func trimEmptyCells(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}

func trimEmptyRows(rows [][]string) [][]string {
	n := len(rows)
	for n > 0 && len(rows[n-1]) == 0 {
		n--
	}
	return rows[:n]
}
