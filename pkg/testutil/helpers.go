// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/brixaurea/land-schedule/internal/schedule"
)

// EventsByCategory filters a schedule's events down to one category.
func EventsByCategory(s schedule.Schedule, category schedule.Category) []schedule.Event {
	var matched []schedule.Event
	for _, event := range s.Events {
		if event.Category == category {
			matched = append(matched, event)
		}
	}
	return matched
}

// SumAmounts totals the amounts of a slice of events.
func SumAmounts(events []schedule.Event) float64 {
	total := 0.0
	for _, event := range events {
		total += event.Amount
	}
	return total
}

// SumPrincipal totals the principal components across events that carry a
// breakdown.
func SumPrincipal(events []schedule.Event) float64 {
	total := 0.0
	for _, event := range events {
		if event.Breakdown != nil {
			total += event.Breakdown.Principal
		}
	}
	return total
}
