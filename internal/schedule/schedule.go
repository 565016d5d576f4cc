// Package schedule defines the data structures for a land acquisition payment
// schedule and includes the functions for computing it. Building a schedule is
// a pure computation: identical parameters always produce an identical
// schedule, so callers may recompute on every parameter change.
package schedule

import (
	"fmt"
	"sort"

	"github.com/brixaurea/land-schedule/pkg/amortization"
	"github.com/brixaurea/land-schedule/pkg/cashflow"
	"github.com/brixaurea/land-schedule/pkg/constants"
	"github.com/brixaurea/land-schedule/pkg/mathutil"
	"go.uber.org/zap"
)

// Method is the structure under which the land is acquired.
type Method string

const (
	Cash            Method = "cash"
	SellerFinancing Method = "seller_financing"
	OptionAgreement Method = "option_agreement"
	JVUnitSwap      Method = "jv_unit_swap"
	JVRevenueShare  Method = "jv_revenue_share"
	GroundLease     Method = "ground_lease"
)

// Category classifies a schedule event by the kind of cost it represents.
type Category string

const (
	CategoryDeposit Category = "deposit"
	CategorySoft    Category = "soft"
	CategoryCapital Category = "capital"
	CategoryDebt    Category = "debt"
	CategoryHard    Category = "hard"
	CategoryNote    Category = "note"
)

// Breakdown is the principal/interest split carried by financing events.
type Breakdown struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// Event is a single projected cash-flow row.
type Event struct {
	Month       int        `json:"month"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    Category   `json:"category"`
	Breakdown   *Breakdown `json:"breakdown,omitempty"`
}

// Schedule is the ordered list of projected events plus their total.
type Schedule struct {
	Events    []Event `json:"events"`
	TotalCost float64 `json:"totalCost"`
}

// Parameters holds the deal terms a schedule is derived from. The builder
// trusts these values; validation happens in the configuration layer before a
// schedule is requested.
type Parameters struct {
	LandValue                float64
	EarnestMoneyDeposit      float64
	PursuitBudget            float64
	DueDiligenceDays         int
	ClosingPeriodDays        int
	AcquisitionMethod        Method
	SellerFinancing          amortization.Note
	BrokerCommission         float64
	ClosingCosts             float64
	DemolitionCost           float64
	DemolitionDurationMonths int
	DetailMode               bool
}

// ClosingMonth derives the month index at which closing-contingent costs land.
// Partial months round up so a 31-day timeline does not appear to close within
// the first month.
func ClosingMonth(dueDiligenceDays, closingPeriodDays int) int {
	daysToClose := dueDiligenceDays + closingPeriodDays
	if daysToClose < 0 {
		daysToClose = 0
	}
	return mathutil.CeilDiv(daysToClose, constants.DaysPerMonth)
}

// Compute assembles the full ordered payment schedule for one deal.
func Compute(logger *zap.Logger, params Parameters) Schedule {
	if logger == nil {
		logger = zap.NewNop()
	}

	var events []Event

	// Month-0 events.
	if params.EarnestMoneyDeposit > 0 {
		events = append(events, Event{
			Month:       0,
			Description: "Earnest Money Deposit (EMD)",
			Amount:      params.EarnestMoneyDeposit,
			Category:    CategoryDeposit,
		})
	}
	if params.PursuitBudget > 0 {
		events = append(events, Event{
			Month:       0,
			Description: "Pursuit Costs (Due Diligence)",
			Amount:      params.PursuitBudget,
			Category:    CategorySoft,
		})
	}

	closingMonth := ClosingMonth(params.DueDiligenceDays, params.ClosingPeriodDays)

	// Closing-contingent soft costs.
	if params.BrokerCommission > 0 {
		events = append(events, Event{
			Month:       closingMonth,
			Description: "Brokerage Fee",
			Amount:      params.BrokerCommission,
			Category:    CategorySoft,
		})
	}
	if params.ClosingCosts > 0 {
		events = append(events, Event{
			Month:       closingMonth,
			Description: "Closing Costs & Taxes",
			Amount:      params.ClosingCosts,
			Category:    CategorySoft,
		})
	}

	// The amount still owed after the deposit, regardless of method.
	acquisitionPrincipal := params.LandValue - params.EarnestMoneyDeposit

	switch params.AcquisitionMethod {
	case Cash:
		if acquisitionPrincipal > 0 {
			events = append(events, Event{
				Month:       closingMonth,
				Description: "Closing Payment (Principal)",
				Amount:      acquisitionPrincipal,
				Category:    CategoryCapital,
			})
		}
	case JVUnitSwap:
		events = append(events, Event{
			Month:       closingMonth,
			Description: "Physical Swap: Payment in Units (No initial outlay)",
			Amount:      0,
			Category:    CategoryNote,
		})
	case JVRevenueShare:
		events = append(events, Event{
			Month:       closingMonth,
			Description: "Financial Swap: % of Sellout (Future flow)",
			Amount:      0,
			Category:    CategoryNote,
		})
	}

	// Seller-financing installments. The remaining principal is fully deferred
	// to the note; no cash-at-closing event beyond the deposit.
	if params.AcquisitionMethod == SellerFinancing &&
		params.SellerFinancing.TermMonths > 0 && acquisitionPrincipal > 0 {
		note := params.SellerFinancing
		note.Principal = acquisitionPrincipal
		if note.StartMonthOffset < constants.DefaultStartMonthOffset {
			note.StartMonthOffset = constants.DefaultStartMonthOffset
		}
		logger.Debug(fmt.Sprintf("financing %.2f over %d months", note.Principal, note.TermMonths),
			zap.String("op", "schedule.Compute"),
		)
		events = append(events, financingEvents(note, params.DetailMode)...)
	}

	// Demolition lands the month after closing, optionally spread over an
	// S-curve when a duration is configured.
	if params.DemolitionCost > 0 {
		events = append(events, demolitionEvents(params.DemolitionCost, closingMonth+1, params.DemolitionDurationMonths)...)
	}

	// Stable sort keeps insertion order on month ties so deposit and soft-cost
	// rows stay ahead of capital and debt rows.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Month < events[j].Month
	})

	schedule := Schedule{Events: events}
	for _, event := range events {
		schedule.TotalCost += event.Amount
	}
	return schedule
}

// financingEvents renders the note either as one aggregated row or as one row
// per payment period.
func financingEvents(note amortization.Note, detail bool) []Event {
	if !detail {
		summary := note.Summary()
		periodicity := note.Periodicity
		if periodicity == "" {
			periodicity = amortization.Monthly
		}
		return []Event{{
			Month: summary.Month,
			Description: fmt.Sprintf("Seller Financing Installment (%dx %s) - Total",
				note.PeriodCount(), periodicity),
			Amount:   summary.Payment,
			Category: CategoryDebt,
			Breakdown: &Breakdown{
				Principal: summary.Principal,
				Interest:  summary.Interest,
			},
		}}
	}

	installments := note.Schedule()
	events := make([]Event, 0, len(installments))
	for _, installment := range installments {
		description := fmt.Sprintf("Seller Financing Installment (%d/%d)",
			installment.Sequence, note.PeriodCount())
		if installment.Balloon {
			description += " - Balloon (Final)"
		}
		events = append(events, Event{
			Month:       installment.Month,
			Description: description,
			Amount:      installment.Payment,
			Category:    CategoryDebt,
			Breakdown: &Breakdown{
				Principal: installment.Principal,
				Interest:  installment.Interest,
			},
		})
	}
	return events
}

func demolitionEvents(cost float64, startMonth, durationMonths int) []Event {
	spread := cashflow.SCurve(cost, durationMonths)
	if len(spread) == 1 {
		return []Event{{
			Month:       startMonth,
			Description: "Demolition & Site Prep",
			Amount:      cost,
			Category:    CategoryHard,
		}}
	}

	events := make([]Event, 0, len(spread))
	for i, amount := range spread {
		events = append(events, Event{
			Month:       startMonth + i,
			Description: fmt.Sprintf("Demolition & Site Prep (%d/%d)", i+1, len(spread)),
			Amount:      amount,
			Category:    CategoryHard,
		})
	}
	return events
}

// MonthlyFlows expands the schedule into a dense per-month outflow vector
// where index 0 is month 0.
func (s Schedule) MonthlyFlows() []float64 {
	if len(s.Events) == 0 {
		return nil
	}

	maxMonth := 0
	for _, event := range s.Events {
		if event.Month > maxMonth {
			maxMonth = event.Month
		}
	}

	flows := make([]float64, maxMonth+1)
	for _, event := range s.Events {
		flows[event.Month] += event.Amount
	}
	return flows
}
