package pricing

import (
	"github.com/shopspring/decimal"

	"slas-calculator/internal/model"
)

// compensationFundContribution is the voluntary CCF line, 0.6% or 2% of IBC.
type compensationFundContribution struct{}

func (compensationFundContribution) Validate(req model.CalculationRequest) error {
	pct, present := req.CCFPercentage.Get()

	if req.CCF && !present {
		return invalidData("Si aporta a CCF, debe especificar porcentaje (0.6 o 2.0)")
	}

	if present && !req.CCF {
		return invalidData("No puede enviar porcentaje si aportaCCF es false")
	}

	if present {
		p := decimal.NewFromFloat(pct)
		if !p.Equal(ccfLow) && !p.Equal(ccfHigh) {
			return invalidData("Porcentaje CCF debe ser 0.6 o 2.0, recibido: %v", pct)
		}
	}

	return nil
}

func (compensationFundContribution) Apply(ibc decimal.Decimal, req model.CalculationRequest, res *model.CalculationResult) decimal.Decimal {
	if !req.CCF {
		return decimal.Zero
	}
	pct, _ := req.CCFPercentage.Get()

	amount := ibc.Mul(decimal.NewFromFloat(pct)).Div(hundred).Round(0)
	res.CCF = model.Some(amount.InexactFloat64())
	return amount
}
