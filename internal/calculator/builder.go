package calculator

import (
	"math"
	"strconv"
	"strings"

	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

// ReadForm snapshots the form inputs.
func ReadForm(s ui.Surface) model.FormState {
	return model.FormState{
		Income:        s.Value(ui.IncomeInput),
		ARL:           s.Checked(ui.ARLCheckbox),
		RiskLevel:     s.Value(ui.RiskLevelInput),
		CCF:           s.Checked(ui.CCFCheckbox),
		CCFPercentage: s.Value(ui.CCFPercentageInput),
	}
}

// BuildRequest turns form state into a request. Optional fields are present
// only when their checkbox is on and the input is non-empty. Unparseable
// numbers become NaN so the validator can reject them.
func BuildRequest(f model.FormState) model.CalculationRequest {
	req := model.CalculationRequest{
		MonthlyIncome: parseDecimal(f.Income),
		ARL:           f.ARL,
		CCF:           f.CCF,
	}

	if f.ARL {
		if level := strings.TrimSpace(f.RiskLevel); level != "" {
			req.RiskLevel = model.Some(level)
		}
	}

	if f.CCF {
		if pct := strings.TrimSpace(f.CCFPercentage); pct != "" {
			req.CCFPercentage = model.Some(parseDecimal(pct))
		}
	}

	return req
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
