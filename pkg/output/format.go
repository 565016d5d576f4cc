// Package output provides utilities for formatting and displaying computed
// payment schedules. It renders whatever the schedule builder returned and
// performs no numeric derivation of its own beyond echoing totals.
package output

import (
	"fmt"
	"strings"

	"github.com/brixaurea/land-schedule/internal/schedule"
	"github.com/brixaurea/land-schedule/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []schedule.Projection) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Payment schedule for deal %s ---\n", result.Name)
		fmt.Printf("Month | Description                                        | Amount\n")
		fmt.Printf("_____ | __________________________________________________ | ______\n")
		for _, event := range result.Schedule.Events {
			_, _ = p.Printf("%5d | %-50s | %s\n", event.Month, event.Description, format.Currency(event.Amount))
			if event.Breakdown != nil {
				_, _ = p.Printf("      |   principal %s / interest %s\n",
					format.Currency(event.Breakdown.Principal), format.Currency(event.Breakdown.Interest))
			}
		}
		_, _ = p.Printf("Total Land Cost: %s\n", format.Currency(result.Schedule.TotalCost))
		_, _ = p.Printf("Present value: %s (peak outflow %s in month %d)\n",
			format.Currency(result.Metrics.PresentValue),
			format.Currency(result.Metrics.PeakOutflow), result.Metrics.PeakMonth)
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []schedule.Projection) {
	fmt.Print(CsvString(results))
}

// CsvString renders the schedules in comma-separated value format and returns
// the result as a string.
func CsvString(results []schedule.Projection) string {
	var builder strings.Builder
	builder.WriteString(`"deal","month","description","category","amount","principal","interest"` + "\n")
	for _, result := range results {
		for _, event := range result.Schedule.Events {
			principal := ""
			interest := ""
			if event.Breakdown != nil {
				principal = fmt.Sprintf("%.2f", event.Breakdown.Principal)
				interest = fmt.Sprintf("%.2f", event.Breakdown.Interest)
			}
			builder.WriteString(fmt.Sprintf(`"%s","%d","%s","%s","%.2f","%s","%s"`+"\n",
				result.Name, event.Month, escapeQuotes(event.Description), event.Category,
				event.Amount, principal, interest))
		}
		builder.WriteString(fmt.Sprintf(`"%s","","Total Land Cost","","%.2f","",""`+"\n",
			result.Name, result.Schedule.TotalCost))
	}
	return builder.String()
}

func escapeQuotes(value string) string {
	return strings.ReplaceAll(value, `"`, `""`)
}
