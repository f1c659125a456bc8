// Package pricing computes the social-security contribution breakdown for an
// independent worker: IBC, health, pension, FSP and the optional ARL and CCF.
package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"slas-calculator/internal/model"
)

// Quotation is a computed breakdown plus its calculation metadata.
type Quotation struct {
	CalculationID string
	StartedAt     time.Time
	Duration      time.Duration
	Result        model.CalculationResult
}

type Engine struct {
	lines  []Contribution
	logger *zap.Logger
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		lines:  defaultContributions(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Quote validates req and prices it. Validation errors are *InvalidDataError;
// only the first violated rule is reported.
func (e *Engine) Quote(req model.CalculationRequest) (*Quotation, error) {
	start := time.Now()

	if !(req.MonthlyIncome > 0) {
		return nil, invalidData("El ingreso debe ser mayor a cero. Recibido: %v", req.MonthlyIncome)
	}

	for _, line := range e.lines {
		if err := line.Validate(req); err != nil {
			return nil, err
		}
	}

	ibc := BaseContribution(decimal.NewFromFloat(req.MonthlyIncome))
	res := model.CalculationResult{IBC: ibc.InexactFloat64()}

	total := decimal.Zero
	for _, line := range e.lines {
		total = total.Add(line.Apply(ibc, req, &res))
	}
	res.Total = total.InexactFloat64()

	q := &Quotation{
		CalculationID: uuid.New().String(),
		StartedAt:     start.UTC(),
		Duration:      time.Since(start),
		Result:        res,
	}
	e.logger.Debug("quotation computed",
		zap.String("calculation_id", q.CalculationID),
		zap.Float64("ibc", res.IBC),
		zap.Float64("total", res.Total))

	return q, nil
}
