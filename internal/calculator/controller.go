// Package calculator is the controller behind the contribution calculator
// form: dependent-field visibility, request building and validation, the
// submit lifecycle and result rendering.
package calculator

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

// Quoter is the remote procedure that prices a request.
type Quoter interface {
	Quote(ctx context.Context, req model.CalculationRequest) (model.CalculationResult, error)
}

// SubmitEvent is the host's form-submit event.
type SubmitEvent interface {
	PreventDefault()
}

type Controller struct {
	ui     ui.Surface
	quoter Quoter
	logger *zap.Logger

	inFlight atomic.Bool
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(surface ui.Surface, quoter Quoter, opts ...Option) *Controller {
	c := &Controller{
		ui:     surface,
		quoter: quoter,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset returns the page to its load state after the host reset the form.
// The busy indicator and submit control belong to an in-flight attempt and
// are left for it to restore.
func (c *Controller) Reset() {
	c.clearMessages()
	c.hideDependent(ui.RiskLevelGroup, ui.RiskLevelInput)
	c.hideDependent(ui.CCFPercentageGroup, ui.CCFPercentageInput)
	if c.inFlight.Load() {
		return
	}
	c.ui.SetVisible(ui.Loading, false)
	c.ui.SetEnabled(ui.SubmitButton, true)
}

// clearMessages hides the error banner and the results panel.
func (c *Controller) clearMessages() {
	c.ui.SetVisible(ui.ErrorMessage, false)
	c.ui.SetText(ui.ErrorMessage, "")
	c.ui.SetVisible(ui.Results, false)
}

func (c *Controller) showError(message string) {
	c.ui.SetText(ui.ErrorMessage, message)
	c.ui.SetVisible(ui.ErrorMessage, true)
	c.ui.ScrollIntoView(ui.ErrorMessage)
}
