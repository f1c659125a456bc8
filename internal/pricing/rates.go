package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// 2025 minimum monthly wage (SMMLV) and the IBC bounds derived from it.
var (
	smmlv  = decimal.NewFromInt(1_423_500)
	minIBC = smmlv
	maxIBC = decimal.NewFromInt(35_587_500) // 25 SMMLV
)

var (
	ibcShare    = decimal.RequireFromString("0.40")
	healthRate  = decimal.RequireFromString("0.125")
	pensionRate = decimal.RequireFromString("0.16")
	hundred     = decimal.NewFromInt(100)
)

// CCF percentages a worker may choose.
var (
	ccfLow  = decimal.RequireFromString("0.6")
	ccfHigh = decimal.RequireFromString("2.0")
)

// solidarityBands maps IBC in SMMLV (upper bound, inclusive) to the FSP rate.
var solidarityBands = []struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(4), decimal.Zero},
	{decimal.NewFromInt(16), decimal.RequireFromString("0.01")},
	{decimal.NewFromInt(17), decimal.RequireFromString("0.012")},
	{decimal.NewFromInt(18), decimal.RequireFromString("0.014")},
	{decimal.NewFromInt(19), decimal.RequireFromString("0.016")},
	{decimal.NewFromInt(20), decimal.RequireFromString("0.018")},
}

var solidarityTopRate = decimal.RequireFromString("0.02")

func solidarityRate(ibcInSMMLV decimal.Decimal) decimal.Decimal {
	for _, b := range solidarityBands {
		if ibcInSMMLV.LessThanOrEqual(b.upTo) {
			return b.rate
		}
	}
	return solidarityTopRate
}

// RiskLevel is an occupational-risk class, I (lowest) to V.
type RiskLevel int

const (
	RiskI RiskLevel = iota + 1
	RiskII
	RiskIII
	RiskIV
	RiskV
)

// riskPercent is the ARL percentage of IBC per level.
var riskPercent = map[RiskLevel]decimal.Decimal{
	RiskI:   decimal.RequireFromString("0.522"),
	RiskII:  decimal.RequireFromString("1.044"),
	RiskIII: decimal.RequireFromString("2.436"),
	RiskIV:  decimal.RequireFromString("4.350"),
	RiskV:   decimal.RequireFromString("6.960"),
}

var riskNames = map[string]RiskLevel{
	"I": RiskI, "II": RiskII, "III": RiskIII, "IV": RiskIV, "V": RiskV,
}

// ParseRiskLevel accepts "I".."V" and "NIVEL_I".."NIVEL_V", any case.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "NIVEL_")
	level, ok := riskNames[s]
	return level, ok
}

func (l RiskLevel) Percent() decimal.Decimal {
	return riskPercent[l]
}

// BaseContribution is the IBC: 40% of income, rounded, held between 1 and
// 25 SMMLV.
func BaseContribution(income decimal.Decimal) decimal.Decimal {
	ibc := income.Mul(ibcShare)
	if ibc.LessThan(minIBC) {
		return smmlv
	}
	if ibc.GreaterThan(maxIBC) {
		return maxIBC
	}
	return ibc.Round(0)
}
