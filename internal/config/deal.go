package config

import (
	"fmt"

	"github.com/brixaurea/land-schedule/internal/schedule"
	"github.com/brixaurea/land-schedule/pkg/amortization"
	"github.com/brixaurea/land-schedule/pkg/constants"
	"github.com/brixaurea/land-schedule/pkg/mathutil"
	"github.com/brixaurea/land-schedule/pkg/validation"
)

// Deal indicates a land deal and its parameters.
type Deal struct {
	Name                     string
	LandValue                float64
	EarnestMoneyDeposit      float64
	PursuitBudget            float64
	DueDiligenceDays         int
	ClosingPeriodDays        int
	AcquisitionMethod        string
	SellerFinancing          SellerFinancing
	BrokerCommissionPercent  float64
	BrokerCommission         float64
	ClosingCosts             float64
	DemolitionCost           float64
	DemolitionDurationMonths int
	DetailMode               bool
}

// SellerFinancing holds the note terms; meaningful only when the acquisition
// method is seller_financing.
type SellerFinancing struct {
	Rate             float64
	Months           int
	StartMonthOffset int
	Periodicity      string
	Amortization     string
}

// normalize applies the same defaulting the original deal form performs: the
// broker commission amount is derived from the percent when only the percent
// is given, and financing terms fall back to their defaults.
func (d *Deal) normalize() {
	if d.BrokerCommission == 0 && d.BrokerCommissionPercent > 0 {
		d.BrokerCommission = mathutil.ApplyPercentage(d.LandValue, d.BrokerCommissionPercent)
	}
	if d.SellerFinancing.StartMonthOffset < constants.DefaultStartMonthOffset {
		d.SellerFinancing.StartMonthOffset = constants.DefaultStartMonthOffset
	}
	if d.SellerFinancing.Periodicity == "" {
		d.SellerFinancing.Periodicity = string(amortization.Monthly)
	}
	if d.SellerFinancing.Amortization == "" {
		d.SellerFinancing.Amortization = string(amortization.Amortized)
	}
}

// ScheduleParameters converts the deal into engine parameters. Unknown enum
// values are rejected here so the trusting engine never sees them.
func (d *Deal) ScheduleParameters() (schedule.Parameters, error) {
	method, err := parseMethod(d.AcquisitionMethod)
	if err != nil {
		return schedule.Parameters{}, err
	}

	periodicity, err := parsePeriodicity(d.SellerFinancing.Periodicity)
	if err != nil {
		return schedule.Parameters{}, err
	}

	policy, err := parsePolicy(d.SellerFinancing.Amortization)
	if err != nil {
		return schedule.Parameters{}, err
	}

	return schedule.Parameters{
		LandValue:           d.LandValue,
		EarnestMoneyDeposit: d.EarnestMoneyDeposit,
		PursuitBudget:       d.PursuitBudget,
		DueDiligenceDays:    d.DueDiligenceDays,
		ClosingPeriodDays:   d.ClosingPeriodDays,
		AcquisitionMethod:   method,
		SellerFinancing: amortization.Note{
			AnnualRatePercent: d.SellerFinancing.Rate,
			TermMonths:        d.SellerFinancing.Months,
			StartMonthOffset:  d.SellerFinancing.StartMonthOffset,
			Periodicity:       periodicity,
			Policy:            policy,
		},
		BrokerCommission:         d.BrokerCommission,
		ClosingCosts:             d.ClosingCosts,
		DemolitionCost:           d.DemolitionCost,
		DemolitionDurationMonths: d.DemolitionDurationMonths,
		DetailMode:               d.DetailMode,
	}, nil
}

// validationInfo converts the deal to the validation package's view of it.
func (d *Deal) validationInfo() validation.DealInfo {
	return validation.DealInfo{
		Name:                d.Name,
		LandValue:           d.LandValue,
		EarnestMoneyDeposit: d.EarnestMoneyDeposit,
		PursuitBudget:       d.PursuitBudget,
		DueDiligenceDays:    d.DueDiligenceDays,
		ClosingPeriodDays:   d.ClosingPeriodDays,
		AcquisitionMethod:   d.AcquisitionMethod,
		FinancingRate:       d.SellerFinancing.Rate,
		FinancingMonths:     d.SellerFinancing.Months,
		StartMonthOffset:    d.SellerFinancing.StartMonthOffset,
		Periodicity:         d.SellerFinancing.Periodicity,
		Amortization:        d.SellerFinancing.Amortization,
		BrokerCommission:    d.BrokerCommission,
		ClosingCosts:        d.ClosingCosts,
		DemolitionCost:      d.DemolitionCost,
	}
}

func parseMethod(value string) (schedule.Method, error) {
	switch schedule.Method(value) {
	case schedule.Cash, schedule.SellerFinancing, schedule.OptionAgreement,
		schedule.JVUnitSwap, schedule.JVRevenueShare, schedule.GroundLease:
		return schedule.Method(value), nil
	case "":
		return schedule.Cash, nil
	default:
		return "", fmt.Errorf("unknown acquisition method %q", value)
	}
}

func parsePeriodicity(value string) (amortization.Periodicity, error) {
	switch amortization.Periodicity(value) {
	case amortization.Monthly, amortization.Bimonthly, amortization.Quarterly,
		amortization.Semiannual, amortization.Annual:
		return amortization.Periodicity(value), nil
	case "":
		return amortization.Monthly, nil
	default:
		return "", fmt.Errorf("unknown periodicity %q", value)
	}
}

func parsePolicy(value string) (amortization.Policy, error) {
	switch amortization.Policy(value) {
	case amortization.Amortized, amortization.InterestOnly:
		return amortization.Policy(value), nil
	case "":
		return amortization.Amortized, nil
	default:
		return "", fmt.Errorf("unknown amortization policy %q", value)
	}
}
