package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrossi/rendiconti/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertDec(t *testing.T, expected string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(t, expected).Equal(got),
		"%s: expected %s, got %s", field, expected, got.String())
}

func TestCompute_IndividualOwner(t *testing.T) {
	res := Compute(dec(t, "2234.81"), dec(t, "247"), decimal.Zero, dec(t, "25"), models.OwnerIndividual)

	assertDec(t, "1987.81", res.Locazione, "locazione")
	assertDec(t, "496.9525", res.Comm, "comm")
	assertDec(t, "109.32955", res.IVA, "iva")
	assertDec(t, "1381.52795", res.Netto, "netto")
	assertDec(t, "417.4401", res.Rit, "rit")
	assertDec(t, "964.08785", res.Bonifico, "bonifico")
}

func TestCompute_CompanyOwnerHasNoWithholding(t *testing.T) {
	res := Compute(dec(t, "2234.81"), dec(t, "247"), decimal.Zero, dec(t, "25"), models.OwnerCompany)

	assertDec(t, "0", res.Rit, "rit")
	assertDec(t, "1381.52795", res.Netto, "netto")
	assert.True(t, res.Bonifico.Equal(res.Netto), "bonifico should equal netto for company owners")
}

func TestCompute_NegativeMonthKeepsLossVisible(t *testing.T) {
	// Expenses exceed income: locazione, netto and bonifico stay negative.
	res := Compute(dec(t, "100"), dec(t, "150"), dec(t, "30"), dec(t, "25"), models.OwnerIndividual)

	assertDec(t, "-80", res.Locazione, "locazione")
	assertDec(t, "0", res.Comm, "comm")
	assertDec(t, "0", res.IVA, "iva")
	assertDec(t, "-80", res.Netto, "netto")
	assertDec(t, "0", res.Rit, "rit")
	assertDec(t, "-80", res.Bonifico, "bonifico")
}

func TestCompute_CommissionNeverNegative(t *testing.T) {
	rates := []string{"0", "10", "25", "100", "250"}
	for _, rate := range rates {
		res := Compute(dec(t, "50"), dec(t, "200"), decimal.Zero, dec(t, rate), models.OwnerCompany)
		assert.True(t, res.Comm.IsZero(),
			"commission for negative locazione at %s%% should be zero, got %s", rate, res.Comm)
	}
}

func TestCompute_ZeroInputs(t *testing.T) {
	res := Compute(decimal.Zero, decimal.Zero, decimal.Zero, dec(t, "25"), models.OwnerIndividual)

	assertDec(t, "0", res.Locazione, "locazione")
	assertDec(t, "0", res.Bonifico, "bonifico")
}

func TestCompute_OtherExpensesReduceLocazione(t *testing.T) {
	res := Compute(dec(t, "1000"), dec(t, "100"), dec(t, "50"), dec(t, "20"), models.OwnerCompany)

	assertDec(t, "850", res.Locazione, "locazione")
	assertDec(t, "170", res.Comm, "comm")
	assertDec(t, "37.4", res.IVA, "iva")
	assertDec(t, "642.6", res.Netto, "netto")
	assertDec(t, "642.6", res.Bonifico, "bonifico")
}

func TestComputeRecord_UsesPropertyParameters(t *testing.T) {
	property := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))
	record := models.NewMonthlyRecord(property.ID, 2025, 2, dec(t, "2234.81"), dec(t, "247"), decimal.Zero)

	res := ComputeRecord(record, property)
	assertDec(t, "964.08785", res.Bonifico, "bonifico")
}
