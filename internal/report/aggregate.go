// Package report turns normalized records into the GSTR-1 B2CS summary and the fixed output
// tables written as CSV.
package report

import (
	"sort"

	"sellersuite/internal/domain"
	"sellersuite/internal/gst"
)

// summaryType is the B2CS supply type for e-commerce operator sales.
const summaryType = "OE"

type bucketKey struct {
	stateCode string
	rate      int
}

// Aggregate sums taxable value per (state code, rate) bucket. Sums run at full precision and are
// rounded to 2dp only when emitted. Rows come out ordered by state code, then rate.
func Aggregate(records []domain.NormalizedRecord) []domain.AggregatedSummaryRow {
	sums := make(map[bucketKey]float64)
	for i := range records {
		r := &records[i]
		key := bucketKey{
			stateCode: gst.StateCode(r.PlaceOfSupply),
			rate:      gst.ResolveRate(r.Rate, r.CGSTRate, r.IGSTRate),
		}
		sums[key] += r.TaxableValue
	}

	keys := make([]bucketKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].stateCode != keys[j].stateCode {
			return keys[i].stateCode < keys[j].stateCode
		}
		return keys[i].rate < keys[j].rate
	})

	rows := make([]domain.AggregatedSummaryRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, domain.AggregatedSummaryRow{
			Type:         summaryType,
			StateCode:    k.stateCode,
			StateName:    gst.StateName(k.stateCode),
			Rate:         k.rate,
			TaxableValue: gst.Round2(sums[k]),
		})
	}
	return rows
}
