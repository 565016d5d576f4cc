// Package cashflow provides analytics over monthly cash-flow vectors: cost
// spreading and viability-style summary metrics for an acquisition schedule.
package cashflow

import (
	"math"

	"github.com/brixaurea/land-schedule/pkg/constants"
)

// Summary holds aggregate metrics for a monthly outflow vector.
type Summary struct {
	TotalOutflow float64 `json:"totalOutflow"`
	PresentValue float64 `json:"presentValue"`
	PeakMonth    int     `json:"peakMonth"`
	PeakOutflow  float64 `json:"peakOutflow"`
	Months       int     `json:"months"`
}

// Metrics computes summary metrics over a monthly flow vector where index 0 is
// month 0. The present value discounts each month's flow at the given nominal
// annual rate pro-rated monthly.
func Metrics(flows []float64, annualDiscountRatePercent float64) Summary {
	var summary Summary
	if len(flows) == 0 {
		return summary
	}

	monthlyRate := annualDiscountRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	summary.Months = len(flows)
	for month, flow := range flows {
		summary.TotalOutflow += flow
		summary.PresentValue += flow / math.Pow(1.00+monthlyRate, float64(month))
		if flow > summary.PeakOutflow {
			summary.PeakOutflow = flow
			summary.PeakMonth = month
		}
	}

	return summary
}

// SCurve distributes a total amount over the given number of months using a
// logistic curve, the usual shape for construction-style cost ramp-up and
// ramp-down. The deltas are normalized so the returned slice sums exactly to
// the total. Durations below one month collapse to a single full payment.
func SCurve(total float64, durationMonths int) []float64 {
	if durationMonths <= 1 {
		return []float64{total}
	}

	// Sample the logistic function over [-5, 5] and take month-over-month
	// deltas of the cumulative curve.
	cumulative := make([]float64, durationMonths)
	step := 10.0 / float64(durationMonths-1)
	for i := range cumulative {
		x := -5.0 + float64(i)*step
		cumulative[i] = 1.0 / (1.0 + math.Exp(-x))
	}

	deltas := make([]float64, durationMonths)
	deltaSum := 0.0
	previous := 0.0
	for i, value := range cumulative {
		deltas[i] = value - previous
		deltaSum += deltas[i]
		previous = value
	}

	spread := make([]float64, durationMonths)
	for i, delta := range deltas {
		spread[i] = total * delta / deltaSum
	}
	return spread
}
