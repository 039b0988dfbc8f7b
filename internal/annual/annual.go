// Package annual folds monthly records into the twelve-bucket-plus-total
// dashboard table, per property or across all properties.
package annual

import (
	"github.com/shopspring/decimal"

	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/monthutils"
	"mrossi/rendiconti/internal/statement"
)

// Bucket accumulates every financial line item for one calendar month.
type Bucket struct {
	Airbnb    decimal.Decimal
	Pulizie   decimal.Decimal
	Altre     decimal.Decimal
	Locazione decimal.Decimal
	Comm      decimal.Decimal
	IVA       decimal.Decimal
	Netto     decimal.Decimal
	Rit       decimal.Decimal
	Bonifico  decimal.Decimal
}

func (b Bucket) add(other Bucket) Bucket {
	return Bucket{
		Airbnb:    b.Airbnb.Add(other.Airbnb),
		Pulizie:   b.Pulizie.Add(other.Pulizie),
		Altre:     b.Altre.Add(other.Altre),
		Locazione: b.Locazione.Add(other.Locazione),
		Comm:      b.Comm.Add(other.Comm),
		IVA:       b.IVA.Add(other.IVA),
		Netto:     b.Netto.Add(other.Netto),
		Rit:       b.Rit.Add(other.Rit),
		Bonifico:  b.Bonifico.Add(other.Bonifico),
	}
}

// Table is the aggregated annual view: one bucket per calendar month.
// PropertyID is empty when the table spans all properties.
type Table struct {
	Year       int
	PropertyID string
	Buckets    [12]Bucket
}

// Aggregate filters records by year (and by property when propertyID is
// non-empty), derives each record's statement via its owning property and
// sums every line item into the bucket of the record's month.
//
// A record whose property no longer exists is skipped: property deletion
// cascades to its records, so an orphan contributes nothing. A year with no
// matching records yields an all-zero table.
func Aggregate(records []models.MonthlyRecord, properties []models.Property, year int, propertyID string) Table {
	index := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		index[p.ID] = p
	}

	table := Table{Year: year, PropertyID: propertyID}
	for i := range table.Buckets {
		table.Buckets[i] = zeroBucket()
	}

	for _, r := range records {
		if r.Year != year {
			continue
		}
		if propertyID != "" && r.PropertyID != propertyID {
			continue
		}
		property, found := index[r.PropertyID]
		if !found {
			continue
		}
		if r.Month < 0 || r.Month > 11 {
			continue
		}

		calc := statement.ComputeRecord(r, property)
		table.Buckets[r.Month] = table.Buckets[r.Month].add(Bucket{
			Airbnb:    r.Airbnb,
			Pulizie:   r.Pulizie,
			Altre:     r.AltreSpese,
			Locazione: calc.Locazione,
			Comm:      calc.Comm,
			IVA:       calc.IVA,
			Netto:     calc.Netto,
			Rit:       calc.Rit,
			Bonifico:  calc.Bonifico,
		})
	}

	return table
}

// Total sums the twelve monthly buckets. The grand total is always the sum
// of the displayed months, never recomputed from the raw records.
func (t Table) Total() Bucket {
	total := zeroBucket()
	for _, b := range t.Buckets {
		total = total.add(b)
	}
	return total
}

// BonificoSeries returns the final payable amount per month in calendar
// order, the dataset consumed by the dashboard chart.
func (t Table) BonificoSeries() [12]decimal.Decimal {
	var series [12]decimal.Decimal
	for i, b := range t.Buckets {
		series[i] = b.Bonifico
	}
	return series
}

// MonthLabels returns the month labels correlated with the bucket order.
func (t Table) MonthLabels() []string {
	return monthutils.Labels()
}

func zeroBucket() Bucket {
	return Bucket{
		Airbnb:    decimal.Zero,
		Pulizie:   decimal.Zero,
		Altre:     decimal.Zero,
		Locazione: decimal.Zero,
		Comm:      decimal.Zero,
		IVA:       decimal.Zero,
		Netto:     decimal.Zero,
		Rit:       decimal.Zero,
		Bonifico:  decimal.Zero,
	}
}
