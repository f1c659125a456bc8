package calculator

import (
	"math"

	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

// ValidationError is a locally detected input problem. It never reaches the
// network.
type ValidationError struct {
	Field   ui.ElementID
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid " + string(e.Field) + ": " + e.Message
}

// Validate reports the first violated rule: income, then risk level, then
// CCF percentage.
func Validate(req model.CalculationRequest) error {
	if !isFinite(req.MonthlyIncome) || req.MonthlyIncome <= 0 {
		return &ValidationError{Field: ui.IncomeInput, Message: model.MsgInvalidIncome}
	}

	if req.ARL && !req.RiskLevel.IsPresent() {
		return &ValidationError{Field: ui.RiskLevelInput, Message: model.MsgSelectRiskLevel}
	}

	if req.CCF {
		pct, ok := req.CCFPercentage.Get()
		if !ok || !isFinite(pct) {
			return &ValidationError{Field: ui.CCFPercentageInput, Message: model.MsgSelectPercentage}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
