package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/foundx/foundx/internal/encoding"
	"github.com/foundx/foundx/internal/fund"
)

// Parser reads CSV statement exports and produces expense params. It
// auto-detects which export format is being used by matching column
// headers against known profiles, so files with preamble rows above
// the header still parse.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]fund.CreateExpenseParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found: expected Date/Description with Amount or Debit/Credit columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expenses from data rows using the matched
// profile. Credit rows and rows without a parseable date or amount
// (footers, totals) are skipped rather than failing the import.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]fund.CreateExpenseParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	categoryIdx := -1
	if p.CategoryCol != "" {
		if i, ok := cols[p.CategoryCol]; ok {
			categoryIdx = i
		}
	}

	var expenses []fund.CreateExpenseParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, ok := parseSpend(p, cols, row)
		if !ok {
			continue
		}

		expenses = append(expenses, fund.CreateExpenseParams{
			Title:         desc,
			Amount:        amount,
			Category:      rowCategory(row, categoryIdx),
			Date:          date,
			PaymentMethod: p.PaymentMethod,
		})
	}

	return expenses, nil
}

// rowCategory maps the raw category cell onto the known set, falling
// back to Miscellaneous for anything unrecognized.
func rowCategory(row []string, idx int) fund.ExpenseCategory {
	if idx >= 0 {
		if c := fund.ExpenseCategory(cellValue(row, idx)); fund.ValidCategory(c) {
			return c
		}
	}

	return fund.CategoryMiscellaneous
}

// parseDate tries the date layouts seen across statement exports.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{"2006-01-02", "02-01-2006", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
