package calculator

import "slas-calculator/internal/ui"

// ToggleRiskLevel follows the ARL checkbox: shows the risk-level group and
// requires it when checked; hides, un-requires and clears it otherwise.
func (c *Controller) ToggleRiskLevel() {
	c.toggleDependent(ui.ARLCheckbox, ui.RiskLevelGroup, ui.RiskLevelInput)
}

// ToggleCCFPercentage is ToggleRiskLevel for the CCF checkbox.
func (c *Controller) ToggleCCFPercentage() {
	c.toggleDependent(ui.CCFCheckbox, ui.CCFPercentageGroup, ui.CCFPercentageInput)
}

func (c *Controller) toggleDependent(flag, group, input ui.ElementID) {
	if c.ui.Checked(flag) {
		c.ui.SetVisible(group, true)
		c.ui.SetRequired(input, true)
		return
	}
	c.hideDependent(group, input)
}

// hideDependent never leaves a value behind for a hidden field.
func (c *Controller) hideDependent(group, input ui.ElementID) {
	c.ui.SetVisible(group, false)
	c.ui.SetRequired(input, false)
	c.ui.SetValue(input, "")
}
