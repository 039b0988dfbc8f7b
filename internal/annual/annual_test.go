package annual

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

func testFixtures(t *testing.T) ([]models.Property, []models.MonthlyRecord) {
	t.Helper()
	casa := models.NewProperty("Casa", models.OwnerIndividual, dec(t, "25"))
	villa := models.NewProperty("Villa", models.OwnerCompany, dec(t, "20"))

	records := []models.MonthlyRecord{
		models.NewMonthlyRecord(casa.ID, 2025, 0, dec(t, "1000"), dec(t, "100"), decimal.Zero),
		models.NewMonthlyRecord(casa.ID, 2025, 1, dec(t, "2000"), dec(t, "200"), dec(t, "50")),
		models.NewMonthlyRecord(villa.ID, 2025, 0, dec(t, "500"), dec(t, "50"), decimal.Zero),
		models.NewMonthlyRecord(casa.ID, 2024, 0, dec(t, "9999"), decimal.Zero, decimal.Zero),
	}
	return []models.Property{casa, villa}, records
}

func TestAggregate_EmptyYearYieldsAllZeros(t *testing.T) {
	properties, records := testFixtures(t)

	table := Aggregate(records, properties, 2020, "")

	total := table.Total()
	assert.True(t, total.Airbnb.IsZero())
	assert.True(t, total.Bonifico.IsZero())
	for _, b := range table.Buckets {
		assert.True(t, b.Airbnb.IsZero())
		assert.True(t, b.Locazione.IsZero())
	}
}

func TestAggregate_SumsByMonth(t *testing.T) {
	properties, records := testFixtures(t)

	table := Aggregate(records, properties, 2025, "")

	// January carries both Casa and Villa.
	jan := table.Buckets[0]
	assert.True(t, dec(t, "1500").Equal(jan.Airbnb), "january airbnb: %s", jan.Airbnb)
	assert.True(t, dec(t, "150").Equal(jan.Pulizie), "january pulizie: %s", jan.Pulizie)
	// Casa: 900 locazione, Villa: 450 locazione.
	assert.True(t, dec(t, "1350").Equal(jan.Locazione), "january locazione: %s", jan.Locazione)

	feb := table.Buckets[1]
	assert.True(t, dec(t, "2000").Equal(feb.Airbnb), "february airbnb: %s", feb.Airbnb)

	// 2024 record must not leak into 2025.
	for i := 2; i < 12; i++ {
		assert.True(t, table.Buckets[i].Airbnb.IsZero(), "month %d should be empty", i)
	}
}

func TestAggregate_PropertyFilter(t *testing.T) {
	properties, records := testFixtures(t)
	villaID := properties[1].ID

	table := Aggregate(records, properties, 2025, villaID)

	jan := table.Buckets[0]
	assert.True(t, dec(t, "500").Equal(jan.Airbnb), "january airbnb: %s", jan.Airbnb)
	assert.True(t, table.Buckets[1].Airbnb.IsZero(), "february should be empty for villa")
	// Villa is company-owned: no withholding anywhere.
	assert.True(t, table.Total().Rit.IsZero())
}

func TestAggregate_TotalEqualsSumOfBuckets(t *testing.T) {
	properties, records := testFixtures(t)

	table := Aggregate(records, properties, 2025, "")

	total := table.Total()
	sum := decimal.Zero
	for _, b := range table.Buckets {
		sum = sum.Add(b.Bonifico)
	}
	assert.True(t, sum.Equal(total.Bonifico),
		"grand total %s should equal the sum of monthly buckets %s", total.Bonifico, sum)
}

func TestAggregate_OrphanRecordContributesNothing(t *testing.T) {
	properties, records := testFixtures(t)
	orphan := models.NewMonthlyRecord("deleted-property", 2025, 0, dec(t, "777"), decimal.Zero, decimal.Zero)
	records = append(records, orphan)

	table := Aggregate(records, properties, 2025, "")

	assert.True(t, dec(t, "1500").Equal(table.Buckets[0].Airbnb),
		"orphan record should be skipped, got %s", table.Buckets[0].Airbnb)
}

func TestAggregate_AccumulatesSameMonth(t *testing.T) {
	casa := models.NewProperty("Casa", models.OwnerCompany, decimal.Zero)
	records := []models.MonthlyRecord{
		models.NewMonthlyRecord(casa.ID, 2025, 5, dec(t, "100"), decimal.Zero, decimal.Zero),
	}
	other := models.NewProperty("Altra", models.OwnerCompany, decimal.Zero)
	records = append(records,
		models.NewMonthlyRecord(other.ID, 2025, 5, dec(t, "200"), decimal.Zero, decimal.Zero))

	table := Aggregate(records, []models.Property{casa, other}, 2025, "")

	assert.True(t, dec(t, "300").Equal(table.Buckets[5].Airbnb))
}

func TestBonificoSeries(t *testing.T) {
	properties, records := testFixtures(t)

	table := Aggregate(records, properties, 2025, "")
	series := table.BonificoSeries()

	assert.True(t, series[0].Equal(table.Buckets[0].Bonifico))
	assert.True(t, series[11].IsZero())
}

func TestMonthLabels(t *testing.T) {
	table := Table{}
	labels := table.MonthLabels()
	assert.Len(t, labels, 12)
	assert.Equal(t, "Gennaio", labels[0])
}
