// Package export renders lists of records as CSV, printable HTML or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column describes one output field of a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

func headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

func values[T any](cols []Column[T], row T) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Value(row)
	}
	return out
}

// WriteCSV writes a header line followed by one line per row. Fields
// containing commas, quotes or newlines are quoted.
func WriteCSV[T any](w io.Writer, cols []Column[T], rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(cols)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(values(cols, r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Document carries the page-level parts of an HTML export.
type Document struct {
	Title       string
	GeneratedAt time.Time
	// Summary lines are printed under the title, e.g. "Pending: 4".
	Summary []string
}

type field struct {
	Label string
	Value string
}

type htmlPage struct {
	Document
	Generated string
	Total     int
	Records   [][]field
}

var page = template.Must(template.New("export").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 24px; }
.record { border: 1px solid #ccc; padding: 8px 12px; margin-bottom: 12px; page-break-inside: avoid; }
.record dt { font-weight: bold; float: left; clear: left; width: 160px; }
.record dd { margin-left: 170px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated: {{.Generated}}</p>
<p>Total records: {{.Total}}</p>
{{range .Summary}}<p>{{.}}</p>
{{end}}{{range $i, $rec := .Records}}<div class="record">
<h3>#{{inc $i}}</h3>
<dl>
{{range $rec}}<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{end}}</dl>
</div>
{{end}}</body>
</html>
`))

// WriteHTML renders a static printable page with one block per row.
func WriteHTML[T any](w io.Writer, doc Document, cols []Column[T], rows []T) error {
	p := htmlPage{
		Document:  doc,
		Generated: doc.GeneratedAt.Format("2006-01-02 15:04"),
		Total:     len(rows),
		Records:   make([][]field, 0, len(rows)),
	}
	for _, r := range rows {
		rec := make([]field, len(cols))
		for i, c := range cols {
			rec[i] = field{Label: c.Header, Value: c.Value(r)}
		}
		p.Records = append(p.Records, rec)
	}
	return page.Execute(w, p)
}

// WriteXLSX writes a single-sheet workbook: a header row then one row per record.
func WriteXLSX[T any](w io.Writer, sheet string, cols []Column[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	setRow := func(rowNo int, cells []string) error {
		for i, v := range cells {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNo)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := setRow(1, headers(cols)); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(i+2, values(cols, r)); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}
