package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrossi/rendiconti/internal/models"
)

func TestReconcile_CreatesPropertyAndRecordInOneBatch(t *testing.T) {
	rows := []Row{
		{Property: "Nuova Casa", OwnerToken: "Societa", CommissionPct: dec(t, "15"),
			Year: 2025, Month: 4, Airbnb: dec(t, "800"), Pulizie: dec(t, "80")},
	}

	result := Reconcile(rows, nil, nil, nil)

	require.Len(t, result.Properties, 1)
	p := result.Properties[0]
	assert.Equal(t, "Nuova Casa", p.Name)
	assert.Equal(t, models.OwnerCompany, p.OwnerType)
	assert.True(t, dec(t, "15").Equal(p.CommissionPct))
	assert.NotEmpty(t, p.ID)

	require.Len(t, result.Records, 1)
	r := result.Records[0]
	assert.Equal(t, p.ID, r.PropertyID)
	assert.Equal(t, 2025, r.Year)
	assert.Equal(t, 4, r.Month)
	assert.Equal(t, 1, result.Imported)
}

func TestReconcile_ZeroCommissionNeverErasesExisting(t *testing.T) {
	existing := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))

	rows := []Row{
		{Property: "Casa", OwnerToken: "PF", CommissionPct: decimal.Zero,
			Year: 2025, Month: 2, Airbnb: dec(t, "100"), Pulizie: dec(t, "10")},
	}

	result := Reconcile(rows, []models.Property{existing}, nil, nil)

	require.Len(t, result.Properties, 1)
	assert.True(t, dec(t, "25").Equal(result.Properties[0].CommissionPct),
		"zero commission in the row must not erase the stored 25%%")

	require.Len(t, result.Records, 1)
	assert.Equal(t, existing.ID, result.Records[0].PropertyID)
	assert.Equal(t, 2, result.Records[0].Month)
	assert.True(t, dec(t, "100").Equal(result.Records[0].Airbnb))
}

func TestReconcile_PositiveCommissionOverwrites(t *testing.T) {
	existing := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))

	rows := []Row{
		{Property: "casa", OwnerToken: "Societa", CommissionPct: dec(t, "30"), Year: 2025, Month: 0},
	}

	result := Reconcile(rows, []models.Property{existing}, nil, nil)

	require.Len(t, result.Properties, 1)
	p := result.Properties[0]
	assert.True(t, dec(t, "30").Equal(p.CommissionPct))
	assert.Equal(t, models.OwnerCompany, p.OwnerType)
	assert.Equal(t, "Casa", p.Name, "the stored display name is kept on case-insensitive match")
}

func TestReconcile_NegativeCommissionCreatesPropertyAtZero(t *testing.T) {
	rows := []Row{
		{Property: "Casa", OwnerToken: "PF", CommissionPct: dec(t, "-5"), Year: 2025, Month: 0},
	}

	result := Reconcile(rows, nil, nil, nil)

	require.Len(t, result.Properties, 1)
	assert.True(t, result.Properties[0].CommissionPct.IsZero(),
		"a negative commission cell must not create a negative rate")
}

func TestReconcile_EmptyOwnerTokenKeepsExistingType(t *testing.T) {
	existing := models.NewProperty("Casa", models.OwnerCompany, dec(t, "25"))

	rows := []Row{
		{Property: "Casa", OwnerToken: "", Year: 2025, Month: 0},
	}

	result := Reconcile(rows, []models.Property{existing}, nil, nil)
	assert.Equal(t, models.OwnerCompany, result.Properties[0].OwnerType)
}

func TestReconcile_DuplicateKeyInBatchLastRowWins(t *testing.T) {
	rows := []Row{
		{Property: "Casa", Year: 2025, Month: 3, Airbnb: dec(t, "100"), Pulizie: dec(t, "10")},
		{Property: "Casa", Year: 2025, Month: 3, Airbnb: dec(t, "999"), Pulizie: dec(t, "99")},
	}

	result := Reconcile(rows, nil, nil, nil)

	require.Len(t, result.Records, 1, "second row must replace the first wholesale")
	assert.True(t, dec(t, "999").Equal(result.Records[0].Airbnb))
	assert.True(t, dec(t, "99").Equal(result.Records[0].Pulizie))
	assert.Equal(t, 2, result.Imported)
}

func TestReconcile_ReplacesStoredRecordWholesale(t *testing.T) {
	property := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))
	stored := models.NewMonthlyRecord(property.ID, 2025, 3, dec(t, "100"), dec(t, "10"), dec(t, "5"))
	stored.Notes = "old notes"

	rows := []Row{
		{Property: "Casa", Year: 2025, Month: 3, Airbnb: dec(t, "500")},
	}

	result := Reconcile(rows, []models.Property{property}, []models.MonthlyRecord{stored}, nil)

	require.Len(t, result.Records, 1)
	r := result.Records[0]
	assert.True(t, dec(t, "500").Equal(r.Airbnb))
	assert.True(t, r.Pulizie.IsZero(), "replacement is wholesale, not field-by-field")
	assert.True(t, r.AltreSpese.IsZero())
	assert.Empty(t, r.Notes)
	assert.NotEqual(t, stored.ID, r.ID, "the replacement carries a fresh identifier")
}

func TestReconcile_Idempotent(t *testing.T) {
	input := `property,ownerType,commissionPct,year,month,airbnb,pulizie,altreSpese
Casa,PF,25,2025,3,100,10,0
Villa,Societa,20,2025,4,200,20,5`

	rows, _, err := ParseRows(strings.NewReader(input), nil)
	require.NoError(t, err)

	first := Reconcile(rows, nil, nil, nil)
	second := Reconcile(rows, first.Properties, first.Records, nil)

	require.Len(t, second.Properties, len(first.Properties))
	require.Len(t, second.Records, len(first.Records))
	for i := range first.Properties {
		assert.Equal(t, first.Properties[i].ID, second.Properties[i].ID)
		assert.True(t, first.Properties[i].CommissionPct.Equal(second.Properties[i].CommissionPct))
		assert.Equal(t, first.Properties[i].OwnerType, second.Properties[i].OwnerType)
	}
	for i := range first.Records {
		assert.Equal(t, first.Records[i].Key(), second.Records[i].Key())
		assert.True(t, first.Records[i].Airbnb.Equal(second.Records[i].Airbnb))
	}
}

func TestReconcile_NaturalKeyUniqueness(t *testing.T) {
	input := `property,ownerType,commissionPct,year,month,airbnb,pulizie,altreSpese
Casa,PF,25,2025,3,100,10,0
Casa,PF,25,2025,3,200,20,0
Casa,PF,25,2025,4,300,30,0
Villa,PF,10,2025,3,400,40,0`

	rows, _, err := ParseRows(strings.NewReader(input), nil)
	require.NoError(t, err)

	result := Reconcile(rows, nil, nil, nil)

	seen := make(map[models.NaturalKey]bool)
	for _, r := range result.Records {
		assert.False(t, seen[r.Key()], "duplicate natural key %v", r.Key())
		seen[r.Key()] = true
	}
	assert.Len(t, result.Records, 3)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	property := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))
	properties := []models.Property{property}
	record := models.NewMonthlyRecord(property.ID, 2025, 0, dec(t, "100"), decimal.Zero, decimal.Zero)
	records := []models.MonthlyRecord{record}

	rows := []Row{
		{Property: "Casa", OwnerToken: "Societa", CommissionPct: dec(t, "50"),
			Year: 2025, Month: 0, Airbnb: dec(t, "999")},
	}

	_ = Reconcile(rows, properties, records, nil)

	assert.True(t, dec(t, "25").Equal(properties[0].CommissionPct), "input snapshot must stay untouched")
	assert.Equal(t, models.OwnerIndividual, properties[0].OwnerType)
	assert.True(t, dec(t, "100").Equal(records[0].Airbnb))
}

func TestImport_EndToEnd(t *testing.T) {
	input := `property,ownerType,commissionPct,year,month,airbnb,pulizie,altreSpese
Casa,PF,25,2025,March,100,10,0
,PF,25,2025,3,100,10,0`

	result, err := Import(strings.NewReader(input), nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Dropped)
	require.Len(t, result.Diagnostics, 2)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Records[0].Month, "unresolved month defaults to January")
}
