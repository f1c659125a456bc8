// Package ui describes the page the calculator controller drives. Hosts
// implement Surface over a real DOM; Page is the in-memory implementation.
package ui

// ElementID is the id attribute of an element in the calculator page.
type ElementID string

// Inputs.
const (
	IncomeInput        ElementID = "ingresosMensual"
	ARLCheckbox        ElementID = "aporteARL"
	CCFCheckbox        ElementID = "aportaCCF"
	RiskLevelInput     ElementID = "nivelRiesgo"
	CCFPercentageInput ElementID = "porcentajeCCF"
	SubmitButton       ElementID = "submitBtn"
)

// Containers and indicators.
const (
	RiskLevelGroup     ElementID = "nivelRiesgoGroup"
	CCFPercentageGroup ElementID = "porcentajeCCFGroup"
	Loading            ElementID = "loading"
	ErrorMessage       ElementID = "errorMessage"
	Results            ElementID = "results"
	ARLRow             ElementID = "arlResult"
	CCFRow             ElementID = "ccfResult"
)

// Result value slots.
const (
	IBCValue        ElementID = "ibcValue"
	HealthValue     ElementID = "saludValue"
	PensionValue    ElementID = "pensionValue"
	SolidarityValue ElementID = "fspValue"
	ARLValue        ElementID = "arlValue"
	CCFValue        ElementID = "ccfValue"
	TotalValue      ElementID = "totalValue"
)

// Elements lists every element the controller reads or writes.
var Elements = []ElementID{
	IncomeInput, ARLCheckbox, CCFCheckbox, RiskLevelInput, CCFPercentageInput, SubmitButton,
	RiskLevelGroup, CCFPercentageGroup, Loading, ErrorMessage, Results, ARLRow, CCFRow,
	IBCValue, HealthValue, PensionValue, SolidarityValue, ARLValue, CCFValue, TotalValue,
}

// Surface is the read/write view of the page. The controller owns no markup;
// it only reads input values and writes text, visibility and flags.
type Surface interface {
	Value(id ElementID) string
	SetValue(id ElementID, v string)
	Checked(id ElementID) bool
	SetChecked(id ElementID, checked bool)
	Visible(id ElementID) bool
	SetVisible(id ElementID, visible bool)
	SetRequired(id ElementID, required bool)
	SetText(id ElementID, text string)
	SetEnabled(id ElementID, enabled bool)
	ScrollIntoView(id ElementID)
}

// Initially hidden elements, matching the page's stylesheet.
var hiddenOnLoad = map[ElementID]bool{
	RiskLevelGroup:     true,
	CCFPercentageGroup: true,
	Loading:            true,
	ErrorMessage:       true,
	Results:            true,
	ARLRow:             true,
	CCFRow:             true,
}

// HiddenOnLoad reports whether id starts hidden when the page loads.
func HiddenOnLoad(id ElementID) bool {
	return hiddenOnLoad[id]
}
