package importer

import (
	"io"

	"mrossi/rendiconti/internal/logging"
	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/rowerror"
)

// Result carries the reconciled snapshots and the batch outcome. Imported
// counts accepted rows; rows dropped during parsing are only visible through
// the diagnostics.
type Result struct {
	Properties  []models.Property
	Records     []models.MonthlyRecord
	Imported    int
	Dropped     int
	Diagnostics []rowerror.Diagnostic
}

// Reconcile upserts parsed rows onto the given snapshots and returns the
// updated ones. The input slices are not mutated.
//
// The merge runs in two phases, both in row order. Phase one upserts every
// property; phase two upserts every record. Completing all property upserts
// first lets a single batch introduce a brand-new property and its first
// months in any row order.
func Reconcile(rows []Row, properties []models.Property, records []models.MonthlyRecord, logger logging.Logger) Result {
	if logger == nil {
		logger = logging.New("info", "text")
	}

	props := make([]models.Property, len(properties))
	copy(props, properties)
	recs := make([]models.MonthlyRecord, len(records))
	copy(recs, records)

	// Normalized-name index; property names are unique case-insensitively.
	byName := make(map[string]int, len(props))
	for i, p := range props {
		byName[models.NameKey(p.Name)] = i
	}

	for _, row := range rows {
		key := models.NameKey(row.Property)
		i, exists := byName[key]
		if !exists {
			p := models.NewProperty(row.Property, models.ParseOwnerType(row.OwnerToken), row.CommissionPct)
			props = append(props, p)
			byName[key] = len(props) - 1
			logger.Info("Created property from import row",
				logging.F("name", p.Name),
				logging.F("ownerType", p.OwnerType))
			continue
		}
		// A zero or missing commission never erases an existing one.
		if row.CommissionPct.IsPositive() {
			props[i].CommissionPct = row.CommissionPct
		}
		if row.OwnerToken != "" {
			props[i].OwnerType = models.ParseOwnerType(row.OwnerToken)
		}
	}

	byKey := make(map[models.NaturalKey]int, len(recs))
	for i, r := range recs {
		byKey[r.Key()] = i
	}

	for _, row := range rows {
		i, exists := byName[models.NameKey(row.Property)]
		if !exists {
			continue
		}
		record := models.NewMonthlyRecord(props[i].ID, row.Year, row.Month,
			row.Airbnb, row.Pulizie, row.AltreSpese)

		// Wholesale replacement on natural-key collision, no field merging.
		if j, found := byKey[record.Key()]; found {
			recs[j] = record
		} else {
			recs = append(recs, record)
			byKey[record.Key()] = len(recs) - 1
		}
	}

	logger.Info("Reconciled import batch",
		logging.F("rows", len(rows)),
		logging.F("properties", len(props)),
		logging.F("records", len(recs)))

	return Result{
		Properties: props,
		Records:    recs,
		Imported:   len(rows),
	}
}

// Import parses rows from r and reconciles them in one step, attaching the
// parse diagnostics to the result.
func Import(r io.Reader, properties []models.Property, records []models.MonthlyRecord, logger logging.Logger) (Result, error) {
	rows, diags, err := ParseRows(r, logger)
	if err != nil {
		return Result{}, err
	}

	result := Reconcile(rows, properties, records, logger)
	result.Diagnostics = diags
	for _, d := range diags {
		if d.Dropped {
			result.Dropped++
		}
	}
	return result, nil
}
