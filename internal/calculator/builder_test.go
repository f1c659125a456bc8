package calculator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name string
		form model.FormState
		want model.CalculationRequest
	}{
		{
			name: "mandatory only",
			form: model.FormState{Income: "2000000"},
			want: model.CalculationRequest{MonthlyIncome: 2000000},
		},
		{
			name: "all options",
			form: model.FormState{Income: "3000000", ARL: true, RiskLevel: "I", CCF: true, CCFPercentage: "2"},
			want: model.CalculationRequest{
				MonthlyIncome: 3000000,
				ARL:           true,
				RiskLevel:     model.Some("I"),
				CCF:           true,
				CCFPercentage: model.Some(2.0),
			},
		},
		{
			name: "values ignored when flags are off",
			form: model.FormState{Income: "1500000.5", RiskLevel: "II", CCFPercentage: "0.6"},
			want: model.CalculationRequest{MonthlyIncome: 1500000.5},
		},
		{
			name: "flag on with empty value is absent",
			form: model.FormState{Income: " 100 ", ARL: true, RiskLevel: "  ", CCF: true},
			want: model.CalculationRequest{MonthlyIncome: 100, ARL: true, CCF: true},
		},
		{
			name: "zero percentage stays present",
			form: model.FormState{Income: "100", CCF: true, CCFPercentage: "0"},
			want: model.CalculationRequest{MonthlyIncome: 100, CCF: true, CCFPercentage: model.Some(0.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRequest(tt.form)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("BuildRequest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRequestUnparseableNumbers(t *testing.T) {
	req := BuildRequest(model.FormState{Income: "dos millones", CCF: true, CCFPercentage: "2%"})

	assert.True(t, math.IsNaN(req.MonthlyIncome))
	pct, ok := req.CCFPercentage.Get()
	require.True(t, ok)
	assert.True(t, math.IsNaN(pct))
}

func TestBuildRequestIsIdempotent(t *testing.T) {
	forms := []model.FormState{
		{Income: "abc", ARL: true},
		{Income: "3000000", ARL: true, RiskLevel: "IV", CCF: true, CCFPercentage: "0.6"},
	}

	for _, f := range forms {
		first, second := BuildRequest(f), BuildRequest(f)
		if diff := cmp.Diff(first, second, cmpopts.EquateNaNs()); diff != "" {
			t.Fatalf("rebuild differs (-first +second):\n%s", diff)
		}
	}
}

func TestReadForm(t *testing.T) {
	page := ui.NewPage()
	page.SetValue(ui.IncomeInput, "2500000")
	page.SetChecked(ui.ARLCheckbox, true)
	page.SetValue(ui.RiskLevelInput, "II")
	page.SetValue(ui.CCFPercentageInput, "2")

	got := ReadForm(page)

	assert.Equal(t, model.FormState{
		Income:        "2500000",
		ARL:           true,
		RiskLevel:     "II",
		CCFPercentage: "2",
	}, got)
}
