package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/talkincode/backoffice/pkg/tableview"
)

// Format export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts csv or xlsx, empty means csv
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Ext() string {
	return "." + string(f)
}

// Export writes the sorted and filtered collection to w and returns the row count
func (r *Resource[T]) Export(ctx context.Context, w io.Writer, format Format, q tableview.Query) (int, error) {
	rows, err := r.Query(ctx, q)
	if err != nil {
		return 0, err
	}
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return 0, errors.Wrapf(err, "marshal %s", r.API.Plural)
	}
	switch format {
	case FormatXLSX:
		err = writeXLSX(w, r.Label, data)
	default:
		_, err = w.Write(data)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "write %s export", r.API.Plural)
	}
	return len(rows), nil
}

// writeXLSX copies csv records into a single sheet workbook
func writeXLSX(w io.Writer, sheet string, data []byte) error {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return err
	}
	if sheet == "" {
		sheet = "Export"
	}
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	for i := range records {
		f.SetSheetRow(sheet, excelize.ToAlphaString(0)+strconv.Itoa(i+1), &records[i])
	}
	return f.Write(w)
}
