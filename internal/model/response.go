package model

import (
	json "github.com/goccy/go-json"
)

// CalculationResult is the breakdown returned by the quote endpoint.
type CalculationResult struct {
	IBC        float64
	Health     float64
	Pension    float64
	Solidarity float64
	ARL        Optional[float64]
	CCF        Optional[float64]
	Total      float64
}

type calculationResultWire struct {
	IBC        *float64 `json:"ibc"`
	Health     *float64 `json:"salud"`
	Pension    *float64 `json:"pension"`
	Solidarity *float64 `json:"fsp"`
	ARL        *float64 `json:"arl,omitempty"`
	CCF        *float64 `json:"ccf,omitempty"`
	Total      *float64 `json:"total"`
}

func (r CalculationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(calculationResultWire{
		IBC:        &r.IBC,
		Health:     &r.Health,
		Pension:    &r.Pension,
		Solidarity: &r.Solidarity,
		ARL:        r.ARL.ptr(),
		CCF:        r.CCF.ptr(),
		Total:      &r.Total,
	})
}

func (r *CalculationResult) UnmarshalJSON(data []byte) error {
	res, err := DecodeCalculationResult(data)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// DecodeCalculationResult parses a quote breakdown. Every mandatory amount
// must be present, so an empty object or a bare null is a *MissingFieldError.
func DecodeCalculationResult(data []byte) (CalculationResult, error) {
	var w calculationResultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return CalculationResult{}, err
	}
	if err := requireFields(
		field{"ibc", w.IBC != nil},
		field{"salud", w.Health != nil},
		field{"pension", w.Pension != nil},
		field{"fsp", w.Solidarity != nil},
		field{"total", w.Total != nil},
	); err != nil {
		return CalculationResult{}, err
	}
	return CalculationResult{
		IBC:        *w.IBC,
		Health:     *w.Health,
		Pension:    *w.Pension,
		Solidarity: *w.Solidarity,
		ARL:        fromPtr(w.ARL),
		CCF:        fromPtr(w.CCF),
		Total:      *w.Total,
	}, nil
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
