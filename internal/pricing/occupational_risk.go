package pricing

import (
	"github.com/shopspring/decimal"

	"slas-calculator/internal/model"
)

// occupationalRiskContribution is the voluntary ARL line.
type occupationalRiskContribution struct{}

func (occupationalRiskContribution) Validate(req model.CalculationRequest) error {
	level, present := req.RiskLevel.Get()

	if req.ARL && !present {
		return invalidData("Si aporta a ARL, debe especificar nivel de riesgo")
	}

	if present && !req.ARL {
		return invalidData("No puede enviar nivel de riesgo si aporteARL es false")
	}

	if present {
		if _, ok := ParseRiskLevel(level); !ok {
			return invalidData("Nivel de riesgo desconocido: %s", level)
		}
	}

	return nil
}

func (occupationalRiskContribution) Apply(ibc decimal.Decimal, req model.CalculationRequest, res *model.CalculationResult) decimal.Decimal {
	if !req.ARL {
		return decimal.Zero
	}
	name, _ := req.RiskLevel.Get()
	level, _ := ParseRiskLevel(name)

	amount := ibc.Mul(level.Percent()).Div(hundred).Round(0)
	res.ARL = model.Some(amount.InexactFloat64())
	return amount
}
