// Package validation provides deal parameter validation utilities. The
// schedule engine itself is a trusting pure function, so every check that
// protects it from nonsensical output lives here, at the call site.
package validation

import "fmt"

// KnownAcquisitionMethods lists the supported acquisition methods.
var KnownAcquisitionMethods = []string{
	"cash", "seller_financing", "option_agreement",
	"jv_unit_swap", "jv_revenue_share", "ground_lease",
}

// KnownPeriodicities lists the supported payment cadences.
var KnownPeriodicities = []string{"monthly", "bimonthly", "quarterly", "semiannual", "annual"}

// KnownAmortizations lists the supported amortization policies.
var KnownAmortizations = []string{"amortized", "interest_only"}

// DealInfo carries the subset of deal parameters needed for validation.
type DealInfo struct {
	Name                string
	LandValue           float64
	EarnestMoneyDeposit float64
	PursuitBudget       float64
	DueDiligenceDays    int
	ClosingPeriodDays   int
	AcquisitionMethod   string
	FinancingRate       float64
	FinancingMonths     int
	StartMonthOffset    int
	Periodicity         string
	Amortization        string
	BrokerCommission    float64
	ClosingCosts        float64
	DemolitionCost      float64
}

// ValidateDeal checks one deal's parameters and returns human-readable
// warnings. Warnings do not block schedule computation; the engine will
// compute whatever the numbers imply.
func ValidateDeal(deal DealInfo) []string {
	var warnings []string

	label := deal.Name
	if label == "" {
		label = "(unnamed)"
	}

	if deal.LandValue <= 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has non-positive land value (%.2f)", label, deal.LandValue))
	}
	if deal.EarnestMoneyDeposit < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has negative earnest money deposit (%.2f)", label, deal.EarnestMoneyDeposit))
	}
	if deal.EarnestMoneyDeposit > deal.LandValue {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' deposit exceeds land value (%.2f > %.2f) - financed principal will be negative",
			label, deal.EarnestMoneyDeposit, deal.LandValue))
	}
	if deal.DueDiligenceDays < 0 || deal.ClosingPeriodDays < 0 {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has a negative timeline (dueDiligenceDays=%d, closingPeriodDays=%d)",
			label, deal.DueDiligenceDays, deal.ClosingPeriodDays))
	}

	for _, check := range []struct {
		field string
		value float64
	}{
		{"pursuitBudget", deal.PursuitBudget},
		{"brokerCommission", deal.BrokerCommission},
		{"closingCosts", deal.ClosingCosts},
		{"demolitionCost", deal.DemolitionCost},
	} {
		if check.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has negative %s (%.2f)", label, check.field, check.value))
		}
	}

	if deal.AcquisitionMethod != "" && !contains(KnownAcquisitionMethods, deal.AcquisitionMethod) {
		warnings = append(warnings, fmt.Sprintf("Deal '%s' has unknown acquisition method '%s'", label, deal.AcquisitionMethod))
	}

	if deal.AcquisitionMethod == "seller_financing" {
		if deal.FinancingMonths <= 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' uses seller financing with a zero-month term - no financing events will be emitted", label))
		}
		if deal.FinancingRate < 0 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has negative financing rate (%.2f)", label, deal.FinancingRate))
		}
		if deal.StartMonthOffset < 1 {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has financing start month offset below 1 (%d) - the default of 1 will be used",
				label, deal.StartMonthOffset))
		}
		if deal.Periodicity != "" && !contains(KnownPeriodicities, deal.Periodicity) {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has unknown periodicity '%s'", label, deal.Periodicity))
		}
		if deal.Amortization != "" && !contains(KnownAmortizations, deal.Amortization) {
			warnings = append(warnings, fmt.Sprintf("Deal '%s' has unknown amortization policy '%s'", label, deal.Amortization))
		}
	}

	return warnings
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
