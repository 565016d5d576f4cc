package amortization

import (
	"math"
	"testing"
)

func TestPeriodicityMonths(t *testing.T) {
	tests := []struct {
		name        string
		periodicity Periodicity
		expected    int
	}{
		{name: "Monthly", periodicity: Monthly, expected: 1},
		{name: "Bimonthly", periodicity: Bimonthly, expected: 2},
		{name: "Quarterly", periodicity: Quarterly, expected: 3},
		{name: "Semiannual", periodicity: Semiannual, expected: 6},
		{name: "Annual", periodicity: Annual, expected: 12},
		{name: "Empty defaults to monthly", periodicity: "", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.periodicity.Months(); got != tt.expected {
				t.Errorf("Months() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestPeriodCount(t *testing.T) {
	tests := []struct {
		name        string
		termMonths  int
		periodicity Periodicity
		expected    int
	}{
		{name: "24 months monthly", termMonths: 24, periodicity: Monthly, expected: 24},
		{name: "24 months quarterly", termMonths: 24, periodicity: Quarterly, expected: 8},
		{name: "Partial period rounds up", termMonths: 25, periodicity: Quarterly, expected: 9},
		{name: "Term shorter than period", termMonths: 2, periodicity: Semiannual, expected: 1},
		{name: "Annual over five years", termMonths: 60, periodicity: Annual, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := Note{TermMonths: tt.termMonths, Periodicity: tt.periodicity}
			if got := note.PeriodCount(); got != tt.expected {
				t.Errorf("PeriodCount() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestPeriodRate(t *testing.T) {
	tests := []struct {
		name        string
		annualRate  float64
		periodicity Periodicity
		expected    float64
	}{
		{name: "6% monthly", annualRate: 6.0, periodicity: Monthly, expected: 0.005},
		{name: "6% quarterly", annualRate: 6.0, periodicity: Quarterly, expected: 0.015},
		{name: "12% annual", annualRate: 12.0, periodicity: Annual, expected: 0.12},
		{name: "Zero rate", annualRate: 0.0, periodicity: Monthly, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := Note{AnnualRatePercent: tt.annualRate, Periodicity: tt.periodicity}
			if got := note.PeriodRate(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("PeriodRate() = %.6f, expected %.6f", got, tt.expected)
			}
		})
	}
}

func TestPeriodPayment(t *testing.T) {
	tests := []struct {
		name          string
		note          Note
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name: "Amortized 900k at 6% over 24 months",
			note: Note{
				Principal:         900000,
				AnnualRatePercent: 6.0,
				TermMonths:        24,
				StartMonthOffset:  1,
				Periodicity:       Monthly,
				Policy:            Amortized,
			},
			expectedRange: []float64{39800, 39950}, // Around $39,889
		},
		{
			name: "Interest-only 900k at 6% monthly",
			note: Note{
				Principal:         900000,
				AnnualRatePercent: 6.0,
				TermMonths:        24,
				StartMonthOffset:  1,
				Periodicity:       Monthly,
				Policy:            InterestOnly,
			},
			expectedRange: []float64{4500, 4500}, // Exactly 900000 * 0.005
		},
		{
			name: "Zero rate straight line",
			note: Note{
				Principal:        120000,
				TermMonths:       24,
				StartMonthOffset: 1,
				Periodicity:      Monthly,
				Policy:           Amortized,
			},
			expectedRange: []float64{5000, 5000}, // Exactly 120000 / 24
		},
		{
			name: "Zero rate interest-only is also straight line",
			note: Note{
				Principal:        120000,
				TermMonths:       24,
				StartMonthOffset: 1,
				Periodicity:      Monthly,
				Policy:           InterestOnly,
			},
			expectedRange: []float64{5000, 5000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.note.PeriodPayment()
			if result < tt.expectedRange[0]-0.01 || result > tt.expectedRange[1]+0.01 {
				t.Errorf("PeriodPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestSchedulePrincipalConservation(t *testing.T) {
	tests := []struct {
		name string
		note Note
	}{
		{
			name: "Amortized monthly",
			note: Note{Principal: 900000, AnnualRatePercent: 6.0, TermMonths: 24,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: Amortized},
		},
		{
			name: "Amortized quarterly with partial period",
			note: Note{Principal: 500000, AnnualRatePercent: 8.5, TermMonths: 25,
				StartMonthOffset: 2, Periodicity: Quarterly, Policy: Amortized},
		},
		{
			name: "Interest-only with balloon",
			note: Note{Principal: 750000, AnnualRatePercent: 7.0, TermMonths: 36,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: InterestOnly},
		},
		{
			name: "Zero rate",
			note: Note{Principal: 120000, TermMonths: 24,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: Amortized},
		},
		{
			name: "Annual periodicity",
			note: Note{Principal: 2000000, AnnualRatePercent: 5.0, TermMonths: 60,
				StartMonthOffset: 3, Periodicity: Annual, Policy: Amortized},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installments := tt.note.Schedule()
			if len(installments) != tt.note.PeriodCount() {
				t.Fatalf("Schedule() returned %d installments, expected %d",
					len(installments), tt.note.PeriodCount())
			}

			totalPrincipal := 0.0
			for _, installment := range installments {
				totalPrincipal += installment.Principal
			}
			if math.Abs(totalPrincipal-tt.note.Principal) > 0.01 {
				t.Errorf("sum of principal components = %.2f, expected %.2f",
					totalPrincipal, tt.note.Principal)
			}

			final := installments[len(installments)-1]
			if math.Abs(final.RemainingPrincipal) > 0.01 {
				t.Errorf("final remaining principal = %.2f, expected 0", final.RemainingPrincipal)
			}
		})
	}
}

func TestScheduleInterestOnlyBalloon(t *testing.T) {
	note := Note{
		Principal:         900000,
		AnnualRatePercent: 6.0,
		TermMonths:        24,
		StartMonthOffset:  1,
		Periodicity:       Monthly,
		Policy:            InterestOnly,
	}

	installments := note.Schedule()
	if len(installments) != 24 {
		t.Fatalf("expected 24 installments, got %d", len(installments))
	}

	for i, installment := range installments[:23] {
		if installment.Principal != 0 {
			t.Errorf("installment %d principal = %.2f, expected 0 before balloon", i+1, installment.Principal)
		}
		if math.Abs(installment.Interest-4500) > 0.01 {
			t.Errorf("installment %d interest = %.2f, expected 4500.00", i+1, installment.Interest)
		}
		if installment.Balloon {
			t.Errorf("installment %d marked as balloon", i+1)
		}
	}

	final := installments[23]
	if !final.Balloon {
		t.Error("final installment not marked as balloon")
	}
	if math.Abs(final.Principal-900000) > 0.01 {
		t.Errorf("balloon principal = %.2f, expected 900000.00", final.Principal)
	}
	if math.Abs(final.Payment-904500) > 0.01 {
		t.Errorf("balloon payment = %.2f, expected 904500.00", final.Payment)
	}
}

func TestScheduleZeroRateStraightLine(t *testing.T) {
	for _, policy := range []Policy{Amortized, InterestOnly} {
		note := Note{
			Principal:        120000,
			TermMonths:       24,
			StartMonthOffset: 1,
			Periodicity:      Monthly,
			Policy:           policy,
		}

		for i, installment := range note.Schedule() {
			if math.Abs(installment.Payment-5000) > 0.01 {
				t.Errorf("%s installment %d payment = %.2f, expected 5000.00", policy, i+1, installment.Payment)
			}
			if installment.Interest != 0 {
				t.Errorf("%s installment %d interest = %.2f, expected 0", policy, i+1, installment.Interest)
			}
		}
	}
}

func TestScheduleMonthSpacing(t *testing.T) {
	note := Note{
		Principal:         600000,
		AnnualRatePercent: 6.0,
		TermMonths:        12,
		StartMonthOffset:  2,
		Periodicity:       Quarterly,
		Policy:            Amortized,
	}

	installments := note.Schedule()
	expectedMonths := []int{2, 5, 8, 11}
	if len(installments) != len(expectedMonths) {
		t.Fatalf("expected %d installments, got %d", len(expectedMonths), len(installments))
	}
	for i, installment := range installments {
		if installment.Month != expectedMonths[i] {
			t.Errorf("installment %d at month %d, expected %d", i+1, installment.Month, expectedMonths[i])
		}
	}
}

func TestSummaryMatchesScheduleTotals(t *testing.T) {
	tests := []struct {
		name string
		note Note
	}{
		{
			name: "Amortized",
			note: Note{Principal: 900000, AnnualRatePercent: 6.0, TermMonths: 24,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: Amortized},
		},
		{
			name: "Interest-only",
			note: Note{Principal: 900000, AnnualRatePercent: 6.0, TermMonths: 24,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: InterestOnly},
		},
		{
			name: "Zero rate",
			note: Note{Principal: 450000, TermMonths: 18,
				StartMonthOffset: 1, Periodicity: Monthly, Policy: Amortized},
		},
		{
			name: "Semiannual interest-only",
			note: Note{Principal: 1200000, AnnualRatePercent: 9.0, TermMonths: 48,
				StartMonthOffset: 6, Periodicity: Semiannual, Policy: InterestOnly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := tt.note.Summary()

			totalPaid := 0.0
			for _, installment := range tt.note.Schedule() {
				totalPaid += installment.Payment
			}

			if math.Abs(summary.Payment-totalPaid) > 0.01 {
				t.Errorf("Summary().Payment = %.2f, sum of detail payments = %.2f", summary.Payment, totalPaid)
			}
			if math.Abs(summary.Principal-tt.note.Principal) > 0.01 {
				t.Errorf("Summary().Principal = %.2f, expected %.2f", summary.Principal, tt.note.Principal)
			}
			if math.Abs(summary.Principal+summary.Interest-summary.Payment) > 0.01 {
				t.Errorf("breakdown does not reconcile: %.2f + %.2f != %.2f",
					summary.Principal, summary.Interest, summary.Payment)
			}
			if summary.Month != tt.note.StartMonthOffset {
				t.Errorf("Summary().Month = %d, expected %d", summary.Month, tt.note.StartMonthOffset)
			}
		})
	}
}

func TestSummaryInterestOnlyExactTotals(t *testing.T) {
	note := Note{
		Principal:         900000,
		AnnualRatePercent: 6.0,
		TermMonths:        24,
		StartMonthOffset:  1,
		Periodicity:       Monthly,
		Policy:            InterestOnly,
	}

	summary := note.Summary()
	if math.Abs(summary.Interest-108000) > 0.01 {
		t.Errorf("Summary().Interest = %.2f, expected 108000.00", summary.Interest)
	}
	if math.Abs(summary.Payment-1008000) > 0.01 {
		t.Errorf("Summary().Payment = %.2f, expected 1008000.00", summary.Payment)
	}
}

func TestScheduleAmortizedProgression(t *testing.T) {
	note := Note{
		Principal:         900000,
		AnnualRatePercent: 6.0,
		TermMonths:        24,
		StartMonthOffset:  1,
		Periodicity:       Monthly,
		Policy:            Amortized,
	}

	installments := note.Schedule()
	for i := 1; i < len(installments); i++ {
		if installments[i].Interest >= installments[i-1].Interest {
			t.Errorf("interest did not decrease at installment %d: %.2f >= %.2f",
				i+1, installments[i].Interest, installments[i-1].Interest)
		}
		if installments[i].Principal <= installments[i-1].Principal {
			t.Errorf("principal did not increase at installment %d: %.2f <= %.2f",
				i+1, installments[i].Principal, installments[i-1].Principal)
		}
		if installments[i].RemainingPrincipal >= installments[i-1].RemainingPrincipal {
			t.Errorf("balance did not decrease at installment %d", i+1)
		}
	}
}
