// Package importer reads bulk tabular input and reconciles it against the
// property directory and the monthly record set.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"mrossi/rendiconti/internal/logging"
	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/monthutils"
	"mrossi/rendiconti/internal/rowerror"
)

// Header is the canonical import header. When the first line does not carry
// all of these columns, cells are read positionally in this same order.
var Header = []string{
	"property", "ownerType", "commissionPct", "year", "month",
	"airbnb", "pulizie", "altreSpese",
}

// Row is one parsed, validated import row. Month is already resolved to a
// zero-based index; OwnerToken keeps the raw owner cell because an empty
// token must not overwrite an existing property's tax category.
type Row struct {
	Property      string
	OwnerToken    string
	CommissionPct decimal.Decimal
	Year          int
	Month         int
	Airbnb        decimal.Decimal
	Pulizie       decimal.Decimal
	AltreSpese    decimal.Decimal
}

// ParseRows reads comma-separated rows from r. Rows with an empty property
// name or an unparseable year are dropped, never aborting the batch; every
// dropped row and every month fallback is reported as a diagnostic.
func ParseRows(r io.Reader, logger logging.Logger) ([]Row, []rowerror.Diagnostic, error) {
	if logger == nil {
		logger = logging.New("info", "text")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV input: %w", err)
		}
		raw = append(raw, record)
	}
	if len(raw) == 0 {
		return nil, nil, nil
	}

	columns, start := detectHeader(raw[0])
	if start == 1 {
		logger.Debug("Detected canonical import header")
	} else {
		logger.Debug("No header detected, reading columns positionally")
	}

	var rows []Row
	var diags []rowerror.Diagnostic
	for i := start; i < len(raw); i++ {
		line := i + 1
		cells := newCellReader(raw[i], columns)

		property := cells.get("property", 0)
		if property == "" {
			diags = append(diags, rowerror.Diagnostic{
				Line: line, Reason: rowerror.ReasonEmptyProperty, Dropped: true,
			})
			continue
		}

		yearCell := cells.get("year", 3)
		year, err := parseYear(yearCell)
		if err != nil {
			diags = append(diags, rowerror.Diagnostic{
				Line: line, Reason: rowerror.ReasonBadYear, Value: yearCell, Dropped: true,
			})
			continue
		}

		monthCell := cells.get("month", 4)
		month, ok := monthutils.Resolve(monthCell)
		if !ok {
			// Behavior preserved from the monthly form's lenient parsing:
			// the row is kept with a January default, but observably so.
			diags = append(diags, rowerror.Diagnostic{
				Line: line, Reason: rowerror.ReasonUnknownMonth, Value: monthCell,
			})
		}

		rows = append(rows, Row{
			Property:      property,
			OwnerToken:    cells.get("ownerType", 1),
			CommissionPct: models.ParseAmount(cells.get("commissionPct", 2)),
			Year:          year,
			Month:         month,
			Airbnb:        models.ParseAmount(cells.get("airbnb", 5)),
			Pulizie:       models.ParseAmount(cells.get("pulizie", 6)),
			AltreSpese:    models.ParseAmount(cells.get("altreSpese", 7)),
		})
	}

	logger.Info("Parsed import rows",
		logging.F("accepted", len(rows)),
		logging.F("diagnostics", len(diags)))
	return rows, diags, nil
}

// detectHeader reports the column index map and the first data line. The
// header is honored only when every canonical column name is present.
func detectHeader(first []string) (map[string]int, int) {
	columns := make(map[string]int, len(first))
	for i, name := range first {
		columns[trimmed(name)] = i
	}
	for _, required := range Header {
		if _, found := columns[required]; !found {
			return nil, 0
		}
	}
	return columns, 1
}

type cellReader struct {
	cells   []string
	columns map[string]int
}

func newCellReader(cells []string, columns map[string]int) cellReader {
	return cellReader{cells: cells, columns: columns}
}

// get returns the trimmed cell for a named column, falling back to the
// positional index when no header was detected. Missing cells are empty.
func (c cellReader) get(name string, fallback int) string {
	idx := fallback
	if c.columns != nil {
		mapped, found := c.columns[name]
		if !found {
			return ""
		}
		idx = mapped
	}
	if idx < 0 || idx >= len(c.cells) {
		return ""
	}
	return trimmed(c.cells[idx])
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("year %q is not an integer: %w", s, err)
	}
	return year, nil
}
