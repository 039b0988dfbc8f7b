// Package statement derives the financial breakdown of a single month from
// its raw figures and the owning property's commission parameters.
package statement

import (
	"github.com/shopspring/decimal"

	"mrossi/rendiconti/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)

	// IVARate is the value-added-tax rate applied to the management commission.
	IVARate = decimal.NewFromFloat(0.22)
	// RitenutaRate is the withholding-tax rate applied for individual owners.
	RitenutaRate = decimal.NewFromFloat(0.21)
)

// Compute derives the full statement breakdown from one month's raw figures.
//
// The caller normalizes missing or unparseable inputs to zero beforehand.
// No intermediate rounding occurs; amounts are rounded only at display time.
// Locazione, netto and bonifico may be negative when expenses exceed income,
// and must stay negative so that loss months surface during reconciliation.
// The commission and the withholding are clamped at zero instead.
func Compute(airbnb, pulizie, altreSpese, commissionPct decimal.Decimal, owner models.OwnerType) models.StatementResult {
	locazione := airbnb.Sub(pulizie).Sub(altreSpese)

	comm := locazione.Mul(commissionPct).Div(hundred)
	if comm.IsNegative() {
		comm = decimal.Zero
	}

	iva := comm.Mul(IVARate)
	netto := locazione.Sub(comm).Sub(iva)

	rit := decimal.Zero
	if owner == models.OwnerIndividual {
		rit = locazione.Mul(RitenutaRate)
		if rit.IsNegative() {
			rit = decimal.Zero
		}
	}

	return models.StatementResult{
		Locazione: locazione,
		Comm:      comm,
		IVA:       iva,
		Netto:     netto,
		Rit:       rit,
		Bonifico:  netto.Sub(rit),
	}
}

// ComputeRecord derives the breakdown for a stored record using its owning
// property's commission and tax category.
func ComputeRecord(record models.MonthlyRecord, property models.Property) models.StatementResult {
	return Compute(record.Airbnb, record.Pulizie, record.AltreSpese, property.CommissionPct, property.OwnerType)
}
