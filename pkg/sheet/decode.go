package sheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rashika27/frameview/pkg/errors"
)

// Row maps a normalized column name to the raw cell value. Number formats
// are not applied, so a numeric cell reads as its stored number.
type Row map[string]string

// Get returns the cell under column, matched with [NormalizeHeader].
func (r Row) Get(column string) string {
	return r[NormalizeHeader(column)]
}

// Sheet is one decoded worksheet.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Workbook holds decoded sheets in workbook order.
type Workbook struct {
	Sheets []Sheet
}

// NormalizeHeader lowercases s and strips all whitespace.
func NormalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// Decode reads an xlsx workbook from r.
func Decode(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileRead, err, "could not read spreadsheet")
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileRead, err, "could not read sheet %q", name)
		}
		wb.Sheets = append(wb.Sheets, toSheet(name, rows))
	}
	return wb, nil
}

// DecodeFile opens path and decodes it with [Decode].
func DecodeFile(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileRead, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// toSheet keys every row after the header by the header's columns. The
// header is the first row with a non-blank cell; blank rows are dropped.
func toSheet(name string, cells [][]string) Sheet {
	s := Sheet{Name: name}
	for len(cells) > 0 && isBlank(cells[0]) {
		cells = cells[1:]
	}
	if len(cells) == 0 {
		return s
	}

	for _, h := range cells[0] {
		s.Headers = append(s.Headers, strings.TrimSpace(h))
	}

	for _, rec := range cells[1:] {
		row := make(Row, len(s.Headers))
		blank := true
		for i, h := range s.Headers {
			if h == "" || i >= len(rec) {
				continue
			}
			v := strings.TrimSpace(rec[i])
			if v != "" {
				blank = false
			}
			row[NormalizeHeader(h)] = v
		}
		if !blank {
			s.Rows = append(s.Rows, row)
		}
	}
	return s
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (s Sheet) String() string {
	return fmt.Sprintf("%s (%d rows)", s.Name, len(s.Rows))
}
