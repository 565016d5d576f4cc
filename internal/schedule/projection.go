package schedule

import (
	"github.com/brixaurea/land-schedule/pkg/cashflow"
	"github.com/brixaurea/land-schedule/pkg/constants"
	"go.uber.org/zap"
)

// Projection bundles a named deal's computed schedule with its cash-flow
// metrics, ready for rendering.
type Projection struct {
	Name     string           `json:"name"`
	Schedule Schedule         `json:"schedule"`
	Metrics  cashflow.Summary `json:"metrics"`
}

// Project computes the schedule for one named deal and derives its summary
// metrics. A non-positive discount rate falls back to the default.
func Project(logger *zap.Logger, name string, params Parameters, discountRatePercent float64) Projection {
	if discountRatePercent <= 0 {
		discountRatePercent = constants.DefaultDiscountRatePercent
	}

	computed := Compute(logger, params)
	return Projection{
		Name:     name,
		Schedule: computed,
		Metrics:  cashflow.Metrics(computed.MonthlyFlows(), discountRatePercent),
	}
}
