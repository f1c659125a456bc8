package pricing

import (
	"github.com/shopspring/decimal"

	"slas-calculator/internal/model"
)

// Contribution is one line of the breakdown. Validate runs for every line
// before any Apply; Apply records the line in res and returns its amount.
type Contribution interface {
	Validate(req model.CalculationRequest) error
	Apply(ibc decimal.Decimal, req model.CalculationRequest, res *model.CalculationResult) decimal.Decimal
}

// defaultContributions is ordered: validation stops at the first failure.
func defaultContributions() []Contribution {
	return []Contribution{
		healthContribution{},
		pensionContribution{},
		solidarityContribution{},
		compensationFundContribution{},
		occupationalRiskContribution{},
	}
}
