package pricing

import (
	"github.com/shopspring/decimal"

	"slas-calculator/internal/model"
)

type healthContribution struct{}

func (healthContribution) Validate(model.CalculationRequest) error { return nil }

func (healthContribution) Apply(ibc decimal.Decimal, _ model.CalculationRequest, res *model.CalculationResult) decimal.Decimal {
	amount := ibc.Mul(healthRate).Round(0)
	res.Health = amount.InexactFloat64()
	return amount
}

type pensionContribution struct{}

func (pensionContribution) Validate(model.CalculationRequest) error { return nil }

func (pensionContribution) Apply(ibc decimal.Decimal, _ model.CalculationRequest, res *model.CalculationResult) decimal.Decimal {
	amount := ibc.Mul(pensionRate).Round(0)
	res.Pension = amount.InexactFloat64()
	return amount
}

// solidarityContribution is the FSP, banded by IBC expressed in SMMLV. The
// product is not rounded again.
type solidarityContribution struct{}

func (solidarityContribution) Validate(model.CalculationRequest) error { return nil }

func (solidarityContribution) Apply(ibc decimal.Decimal, _ model.CalculationRequest, res *model.CalculationResult) decimal.Decimal {
	rate := solidarityRate(ibc.Div(smmlv))
	amount := ibc.Round(0).Mul(rate)
	res.Solidarity = amount.InexactFloat64()
	return amount
}
