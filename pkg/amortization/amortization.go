// Package amortization computes payment schedules for a single seller-financing
// note. It is a leaf package: it trusts its inputs and has no error channel, so
// zero-term or zero-principal notes must be filtered out by the caller.
package amortization

import (
	"math"

	"github.com/brixaurea/land-schedule/pkg/constants"
	"github.com/brixaurea/land-schedule/pkg/mathutil"
)

// Periodicity is the cadence at which note payments occur.
type Periodicity string

const (
	Monthly    Periodicity = "monthly"
	Bimonthly  Periodicity = "bimonthly"
	Quarterly  Periodicity = "quarterly"
	Semiannual Periodicity = "semiannual"
	Annual     Periodicity = "annual"
)

// Months returns the number of months covered by one payment period.
// Unrecognized periodicities fall back to monthly.
func (p Periodicity) Months() int {
	switch p {
	case Bimonthly:
		return 2
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Annual:
		return 12
	default:
		return 1
	}
}

// Policy selects how note principal is repaid over the term.
type Policy string

const (
	// Amortized is a level-payment (Price table) note; interest and principal
	// proportions shift each period while the payment stays constant.
	Amortized Policy = "amortized"

	// InterestOnly pays interest each period with the full principal due as a
	// balloon alongside the final interest payment.
	InterestOnly Policy = "interest_only"
)

// Note describes the terms of one seller-financing note.
type Note struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
	StartMonthOffset  int
	Periodicity       Periodicity
	Policy            Policy
}

// Installment holds the values for a single note payment.
type Installment struct {
	Sequence           int // 1-based period index
	Month              int // month index since day 0
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
	Balloon            bool
}

// PeriodCount returns the number of payment periods, rounding partial periods up.
func (n Note) PeriodCount() int {
	return mathutil.CeilDiv(n.TermMonths, n.Periodicity.Months())
}

// PeriodRate is the nominal annual rate pro-rated to the period length.
// This is simple pro-ration, not a compounded equivalent.
func (n Note) PeriodRate() float64 {
	annualRate := n.AnnualRatePercent / constants.PercentageMultiplier
	return annualRate * float64(n.Periodicity.Months()) / constants.MonthsPerYear
}

// PeriodPayment returns the constant per-period payment. For interest-only
// notes this excludes the terminal balloon; for zero-rate notes of either
// policy it is a straight-line principal return.
func (n Note) PeriodPayment() float64 {
	periods := n.PeriodCount()
	periodRate := n.PeriodRate()

	if n.AnnualRatePercent == 0 || periodRate == 0 {
		return n.Principal / float64(periods)
	}

	if n.Policy == InterestOnly {
		return n.Principal * periodRate
	}

	power := math.Pow(1.00+periodRate, float64(periods))
	return n.Principal * periodRate * power / (power - 1.00)
}

// Schedule generates one Installment per payment period with a full
// principal/interest breakdown and balance roll-forward. Rounding happens only
// at presentation time; intermediate balances keep full precision.
func (n Note) Schedule() []Installment {
	periods := n.PeriodCount()
	periodMonths := n.Periodicity.Months()
	periodRate := n.PeriodRate()
	periodPayment := n.PeriodPayment()
	interestOnly := n.Policy == InterestOnly && n.AnnualRatePercent > 0

	installments := make([]Installment, 0, periods)
	balance := n.Principal
	for i := 0; i < periods; i++ {
		installment := Installment{
			Sequence: i + 1,
			Month:    n.StartMonthOffset + i*periodMonths,
			Payment:  periodPayment,
		}

		switch {
		case n.AnnualRatePercent == 0 || periodRate == 0:
			installment.Principal = periodPayment
		case interestOnly:
			installment.Interest = periodPayment
			if i == periods-1 {
				// Balloon: the full outstanding balance is due with the
				// final interest payment.
				installment.Principal = balance
				installment.Payment += balance
				installment.Balloon = true
			}
		default:
			installment.Interest = balance * periodRate
			installment.Principal = periodPayment - installment.Interest
		}

		balance -= installment.Principal
		if i == periods-1 && mathutil.IsZero(balance) {
			// Absorb machine error on the terminal balance.
			balance = 0.00
		}
		installment.RemainingPrincipal = balance
		installments = append(installments, installment)
	}

	return installments
}

// Summary aggregates the entire note into a single installment placed at the
// start month: total payments, with the breakdown carrying the original
// principal and all interest paid over the term.
func (n Note) Summary() Installment {
	periods := n.PeriodCount()
	periodPayment := n.PeriodPayment()

	summary := Installment{
		Sequence:  1,
		Month:     n.StartMonthOffset,
		Principal: n.Principal,
	}

	if n.Policy == InterestOnly && n.AnnualRatePercent > 0 {
		summary.Interest = periodPayment * float64(periods)
		summary.Payment = summary.Interest + n.Principal
	} else {
		summary.Payment = periodPayment * float64(periods)
		summary.Interest = summary.Payment - n.Principal
	}

	return summary
}
