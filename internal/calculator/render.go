package calculator

import (
	"slas-calculator/internal/format"
	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

// Render writes a result into the page. The ARL and CCF rows appear only when
// the request asked for them and the amount is positive.
func (c *Controller) Render(res model.CalculationResult, req model.CalculationRequest) {
	c.setAmount(ui.IBCValue, res.IBC)
	c.setAmount(ui.HealthValue, res.Health)
	c.setAmount(ui.PensionValue, res.Pension)
	c.setAmount(ui.SolidarityValue, res.Solidarity)

	c.renderOptional(req.ARL, res.ARL, ui.ARLRow, ui.ARLValue)
	c.renderOptional(req.CCF, res.CCF, ui.CCFRow, ui.CCFValue)

	c.setAmount(ui.TotalValue, res.Total)

	c.ui.SetVisible(ui.Results, true)
	c.ui.ScrollIntoView(ui.Results)
}

func (c *Controller) renderOptional(requested bool, amount model.Optional[float64], row, slot ui.ElementID) {
	v, ok := amount.Get()
	if !requested || !ok || v <= 0 {
		c.ui.SetVisible(row, false)
		return
	}
	c.setAmount(slot, v)
	c.ui.SetVisible(row, true)
}

func (c *Controller) setAmount(id ui.ElementID, v float64) {
	c.ui.SetText(id, format.CurrencyOr(v, format.Placeholder))
}
