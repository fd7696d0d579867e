package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellersuite/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestAggregate_PlaceOfSupplyWithoutHyphen(t *testing.T) {
	records := []domain.NormalizedRecord{
		{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 1000},
		{PlaceOfSupply: "06", Rate: intPtr(18), TaxableValue: 500},
	}

	rows := Aggregate(records)

	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0].StateCode)
	assert.Equal(t, "Unknown", rows[0].StateName)
	assert.Equal(t, 500.0, rows[0].TaxableValue)
	assert.Equal(t, "06", rows[1].StateCode)
}

func TestAggregate_GroupsByStateAndRate(t *testing.T) {
	records := []domain.NormalizedRecord{
		{PlaceOfSupply: "27-Maharashtra", Rate: intPtr(5), TaxableValue: 200},
		{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 1000},
		{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 500},
	}

	rows := Aggregate(records)

	assert.Equal(t, []domain.AggregatedSummaryRow{
		{Type: "OE", StateCode: "06", StateName: "Haryana", Rate: 18, TaxableValue: 1500},
		{Type: "OE", StateCode: "27", StateName: "Maharashtra", Rate: 5, TaxableValue: 200},
	}, rows)
}

func TestAggregate_DerivesRateFromComponents(t *testing.T) {
	records := []domain.NormalizedRecord{
		{InvoiceDate: "09/05/2025", PlaceOfSupply: "06-Haryana", CGSTRate: 9, SGSTRate: 9, TaxableValue: 100},
		{InvoiceDate: "09/05/2025", PlaceOfSupply: "06-Haryana", CGSTRate: 9.99, SGSTRate: 9.99, TaxableValue: 50},
		{InvoiceDate: "10/05/2025", PlaceOfSupply: "06-Haryana", IGSTRate: 18, TaxableValue: 25},
		{InvoiceDate: "10/05/2025", PlaceOfSupply: "29-Karnataka", TaxableValue: 10},
	}

	rows := Aggregate(records)

	require.Len(t, rows, 3)
	assert.Equal(t, 9, rows[0].Rate)
	assert.Equal(t, 150.0, rows[0].TaxableValue)
	assert.Equal(t, 18, rows[1].Rate)
	assert.Equal(t, 25.0, rows[1].TaxableValue)
	assert.Equal(t, "29", rows[2].StateCode)
	assert.Equal(t, 0, rows[2].Rate)
}

func TestAggregate_UnknownState(t *testing.T) {
	rows := Aggregate([]domain.NormalizedRecord{
		{PlaceOfSupply: "99-Atlantis", Rate: intPtr(12), TaxableValue: 10},
		{PlaceOfSupply: "", Rate: intPtr(12), TaxableValue: 5},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "-Unknown", rows[0].PlaceOfSupply())
	assert.Equal(t, "99-Unknown", rows[1].PlaceOfSupply())
}

func TestAggregate_SumPreservedAtFullPrecision(t *testing.T) {
	var records []domain.NormalizedRecord
	var want float64
	for i := 0; i < 300; i++ {
		v := 0.105 + float64(i%7)*0.333
		records = append(records, domain.NormalizedRecord{PlaceOfSupply: "33-Tamil Nadu", Rate: intPtr(12), TaxableValue: v})
		want += v
	}

	rows := Aggregate(records)

	require.Len(t, rows, 1)
	assert.InDelta(t, want, rows[0].TaxableValue, 0.005)
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []domain.NormalizedRecord{
		{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 1000},
		{PlaceOfSupply: "27-Maharashtra", Rate: intPtr(5), TaxableValue: 200},
		{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 500},
	}

	assert.Equal(t, Aggregate(records), Aggregate(records))
}

func TestAggregate_Empty(t *testing.T) {
	rows := Aggregate(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
