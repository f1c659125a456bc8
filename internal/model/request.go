package model

import (
	json "github.com/goccy/go-json"
)

// FormState is the raw input of the calculator form as read from the page.
type FormState struct {
	Income        string
	ARL           bool
	RiskLevel     string
	CCF           bool
	CCFPercentage string
}

// CalculationRequest is the payload sent to the quote endpoint. A NaN
// MonthlyIncome marks input that could not be parsed.
type CalculationRequest struct {
	MonthlyIncome float64
	ARL           bool
	CCF           bool
	RiskLevel     Optional[string]
	CCFPercentage Optional[float64]
}

type calculationRequestWire struct {
	MonthlyIncome *float64 `json:"ingresosMensual"`
	ARL           *bool    `json:"aporteARL"`
	CCF           *bool    `json:"aportaCCF"`
	RiskLevel     *string  `json:"nivelRiesgo,omitempty"`
	CCFPercentage *float64 `json:"porcentajeCCF,omitempty"`
}

// MarshalJSON omits absent optional fields.
func (r CalculationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(calculationRequestWire{
		MonthlyIncome: &r.MonthlyIncome,
		ARL:           &r.ARL,
		CCF:           &r.CCF,
		RiskLevel:     r.RiskLevel.ptr(),
		CCFPercentage: r.CCFPercentage.ptr(),
	})
}

func (r *CalculationRequest) UnmarshalJSON(data []byte) error {
	req, err := DecodeCalculationRequest(data)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

// DecodeCalculationRequest parses a request body. The income and both flags
// are required; a missing one yields a *MissingFieldError.
func DecodeCalculationRequest(data []byte) (CalculationRequest, error) {
	var w calculationRequestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return CalculationRequest{}, err
	}
	if err := requireFields(
		field{"ingresosMensual", w.MonthlyIncome != nil},
		field{"aporteARL", w.ARL != nil},
		field{"aportaCCF", w.CCF != nil},
	); err != nil {
		return CalculationRequest{}, err
	}
	return CalculationRequest{
		MonthlyIncome: *w.MonthlyIncome,
		ARL:           *w.ARL,
		CCF:           *w.CCF,
		RiskLevel:     fromPtr(w.RiskLevel),
		CCFPercentage: fromPtr(w.CCFPercentage),
	}, nil
}
