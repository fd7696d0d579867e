package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellersuite/internal/domain"
)

func TestBuildAggregatedOutput(t *testing.T) {
	table := BuildAggregatedOutput([]domain.AggregatedSummaryRow{
		{Type: "OE", StateCode: "06", StateName: "Haryana", Rate: 18, TaxableValue: 1500},
		{Type: "OE", StateCode: "27", StateName: "Maharashtra", Rate: 5, TaxableValue: 200.456},
	})

	assert.Equal(t, AggregatedColumns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"OE", "06-Haryana", "18", "", "1500.00", "", ""}, table.Rows[0])
	assert.Equal(t, "200.46", table.Rows[1][4])
	assert.Equal(t, 1700.46, table.TotalTaxableValue)
}

func TestBuildDetailedOutput(t *testing.T) {
	table := BuildDetailedOutput([]domain.NormalizedRecord{{
		InvoiceDate:  "09/05/2025",
		InvoiceNo:    "INV-001",
		HSNCode:      "6109",
		ProductName:  "Cotton T-Shirt",
		Quantity:     2,
		TaxableValue: 1000,
		CGSTRate:     9,
		SGSTRate:     9,
		CGSTAmount:   90,
		SGSTAmount:   90,
		TotalAmount:  1180,
	}})

	assert.Len(t, table.Columns, 13)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{
		"09/05/2025", "INV-001", "6109", "Cotton T-Shirt", "2", "1000.00",
		"9", "90.00", "9", "90.00", "0", "0.00", "1180.00",
	}, table.Rows[0])
	assert.Equal(t, 1000.0, table.TotalTaxableValue)
}

func TestBuildB2BOutput(t *testing.T) {
	table := BuildB2BOutput([]domain.B2BRecord{{
		BuyerGSTIN:    "27AAACB1234F1Z5",
		InvoiceNo:     "INV-100",
		InvoiceDate:   "9-May-25",
		InvoiceValue:  1180,
		PlaceOfSupply: "27-Maharashtra",
		StateCode:     "27",
		ReverseCharge: "N",
		InvoiceType:   "Regular B2B",
		Rate:          18,
		TaxableValue:  1000,
	}})

	assert.Equal(t, "GSTIN/UIN of Recipient", table.Columns[0])
	assert.Equal(t, "Cess Amount", table.Columns[12])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{
		"27AAACB1234F1Z5", "", "INV-100", "9-May-25", "1180.00", "27-Maharashtra",
		"N", "", "Regular B2B", "", "18", "1000.00", "0",
	}, table.Rows[0])
	assert.Equal(t, 1000.0, table.TotalTaxableValue)
}

func TestBuildOutput_Empty(t *testing.T) {
	assert.Empty(t, BuildAggregatedOutput(nil).Rows)
	assert.Empty(t, BuildDetailedOutput(nil).Rows)
	assert.Zero(t, BuildB2BOutput(nil).TotalTaxableValue)
}

func TestIsAggregatedOnly(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.NormalizedRecord
		want    bool
	}{
		{"aggregated source", []domain.NormalizedRecord{{PlaceOfSupply: "06-Haryana", Rate: intPtr(18), TaxableValue: 1}}, true},
		{"detailed source", []domain.NormalizedRecord{{InvoiceDate: "09/05/2025", PlaceOfSupply: "06-Haryana", TaxableValue: 1}}, false},
		{"mixed", []domain.NormalizedRecord{
			{PlaceOfSupply: "06-Haryana", Rate: intPtr(18)},
			{InvoiceDate: "09/05/2025"},
		}, false},
		{"no explicit rate", []domain.NormalizedRecord{{PlaceOfSupply: "06-Haryana", TaxableValue: 1}}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAggregatedOnly(tt.records))
		})
	}
}
