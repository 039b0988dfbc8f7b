// Package report renders the structured output consumed by document and
// dashboard renderers: the single-month statement and the annual table.
// PDF and image rendering happen outside this tool; this package produces
// the data those renderers consume.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"mrossi/rendiconti/internal/annual"
	"mrossi/rendiconti/internal/logging"
	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/monthutils"
	"mrossi/rendiconti/internal/statement"
)

// Line item labels, shared by the statement and the annual table.
const (
	labelAirbnb    = "AIRBNB"
	labelPulizie   = "Pulizie"
	labelAltre     = "Altre spese"
	labelLocazione = "Corrispettivo Locazione"
	labelComm      = "Commissione PM"
	labelIVA       = "IVA 22%"
	labelNetto     = "Corrispettivo netto"
	labelRit       = "Ritenuta 21%"
	labelBonifico  = "Netto corrisposto"
)

var delimiter = ','

// SetDelimiter sets the column separator used by the CSV renderers.
func SetDelimiter(d rune) {
	delimiter = d
}

// Generator renders statements and annual tables.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	return &Generator{log: logger}
}

// Statement bundles everything a single-record report consumer receives:
// the record, its resolved property, the derived figures and the branding.
type Statement struct {
	Brand      models.Brand           `json:"brand"`
	Property   models.Property        `json:"property"`
	MonthLabel string                 `json:"monthLabel"`
	Year       int                    `json:"year"`
	Record     models.MonthlyRecord   `json:"record"`
	Result     models.StatementResult `json:"result"`
}

// BuildStatement derives the statement report for one record.
func BuildStatement(record models.MonthlyRecord, property models.Property, brand models.Brand) Statement {
	label := ""
	if record.Month >= 0 && record.Month < len(monthutils.Names) {
		label = monthutils.Names[record.Month]
	}
	return Statement{
		Brand:      brand,
		Property:   property,
		MonthLabel: label,
		Year:       record.Year,
		Record:     record,
		Result:     statement.ComputeRecord(record, property),
	}
}

// RenderStatement writes a statement in the requested format, "json" or
// "csv".
func (g *Generator) RenderStatement(w io.Writer, s Statement, format string) error {
	switch format {
	case "json":
		return g.renderStatementJSON(w, s)
	case "csv":
		return g.renderStatementCSV(w, s)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderStatementJSON(w io.Writer, s Statement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		g.log.WithError(err).Error("Failed to encode statement report")
		return fmt.Errorf("failed to encode statement report: %w", err)
	}
	return nil
}

// statementRow is one voce/importo line of the CSV statement.
type statementRow struct {
	Voce    string `csv:"voce"`
	Importo string `csv:"importo"`
}

func (g *Generator) renderStatementCSV(w io.Writer, s Statement) error {
	rows := []statementRow{
		{Voce: "Immobile", Importo: s.Property.Name},
		{Voce: "Mese", Importo: fmt.Sprintf("%s %d", s.MonthLabel, s.Year)},
		{Voce: labelAirbnb, Importo: models.FormatAmount(s.Record.Airbnb)},
		{Voce: labelPulizie, Importo: models.FormatAmount(s.Record.Pulizie)},
		{Voce: labelAltre, Importo: models.FormatAmount(s.Record.AltreSpese)},
		{Voce: labelLocazione, Importo: models.FormatAmount(s.Result.Locazione)},
		{Voce: labelComm, Importo: models.FormatAmount(s.Result.Comm)},
		{Voce: labelIVA, Importo: models.FormatAmount(s.Result.IVA)},
		{Voce: labelNetto, Importo: models.FormatAmount(s.Result.Netto)},
		{Voce: labelRit, Importo: models.FormatAmount(s.Result.Rit)},
		{Voce: "Netto da bonificare", Importo: models.FormatAmount(s.Result.Bonifico)},
	}
	if s.Record.Notes != "" {
		rows = append(rows, statementRow{Voce: "NOTE", Importo: s.Record.Notes})
	}

	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		g.log.WithError(err).Error("Failed to write statement CSV")
		return fmt.Errorf("failed to write statement CSV: %w", err)
	}
	return nil
}

// RenderAnnualCSV writes the 9-line-item annual table: one row per voce,
// twelve month columns in calendar order, and a trailing TOT column equal
// to the sum of the displayed months.
func (g *Generator) RenderAnnualCSV(w io.Writer, table annual.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	header := append([]string{"Voce"}, table.MonthLabels()...)
	header = append(header, "TOT")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write annual table header: %w", err)
	}

	total := table.Total()
	lines := []struct {
		label string
		pick  func(annual.Bucket) string
	}{
		{labelAirbnb, func(b annual.Bucket) string { return models.FormatAmount(b.Airbnb) }},
		{labelPulizie, func(b annual.Bucket) string { return models.FormatAmount(b.Pulizie) }},
		{labelAltre, func(b annual.Bucket) string { return models.FormatAmount(b.Altre) }},
		{labelLocazione, func(b annual.Bucket) string { return models.FormatAmount(b.Locazione) }},
		{labelComm, func(b annual.Bucket) string { return models.FormatAmount(b.Comm) }},
		{labelIVA, func(b annual.Bucket) string { return models.FormatAmount(b.IVA) }},
		{labelNetto, func(b annual.Bucket) string { return models.FormatAmount(b.Netto) }},
		{labelRit, func(b annual.Bucket) string { return models.FormatAmount(b.Rit) }},
		{labelBonifico, func(b annual.Bucket) string { return models.FormatAmount(b.Bonifico) }},
	}

	for _, line := range lines {
		row := make([]string, 0, 14)
		row = append(row, line.label)
		for _, bucket := range table.Buckets {
			row = append(row, line.pick(bucket))
		}
		row = append(row, line.pick(total))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write annual table row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush annual table: %w", err)
	}

	g.log.Info("Rendered annual table",
		logging.F("year", table.Year),
		logging.F("property", table.PropertyID))
	return nil
}
