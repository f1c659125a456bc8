package calculator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slas-calculator/internal/model"
	"slas-calculator/internal/quoteclient"
	"slas-calculator/internal/ui"
)

// State is where a submission attempt ended up.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSuccess
	StateFailed
	// StateBusy: rejected because another attempt was still in flight.
	StateBusy
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	case StateBusy:
		return "busy"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Submit runs one submission attempt. ev may be nil when the host has already
// suppressed the default form navigation.
//
// The returned error is a *ValidationError, or wraps a
// *quoteclient.RemoteRejection or *quoteclient.TransportFailure; the page
// already shows the matching message when Submit returns. There is no retry.
func (c *Controller) Submit(ctx context.Context, ev SubmitEvent) (State, error) {
	if ev != nil {
		ev.PreventDefault()
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug("submit ignored, attempt in flight")
		return StateBusy, ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	log := c.logger.With(zap.String("attempt_id", uuid.NewString()))
	c.clearMessages()

	log.Debug("submission state", zap.Stringer("state", StateValidating))
	req := BuildRequest(ReadForm(c.ui))
	if err := Validate(req); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.showError(verr.Message)
		}
		log.Info("submission rejected locally", zap.Error(err))
		return StateInvalid, err
	}

	return c.submit(ctx, log, req)
}

func (c *Controller) submit(ctx context.Context, log *zap.Logger, req model.CalculationRequest) (State, error) {
	log.Debug("submission state", zap.Stringer("state", StateSubmitting))
	c.ui.SetVisible(ui.Loading, true)
	c.ui.SetEnabled(ui.SubmitButton, false)
	defer func() {
		c.ui.SetVisible(ui.Loading, false)
		c.ui.SetEnabled(ui.SubmitButton, true)
	}()

	res, err := c.quoter.Quote(ctx, req)
	if err != nil {
		c.showError(failureMessage(err))
		log.Warn("quote failed", zap.Error(err))
		return StateFailed, fmt.Errorf("quote contributions: %w", err)
	}

	c.Render(res, req)
	log.Info("quote rendered", zap.Float64("total", res.Total))
	return StateSuccess, nil
}

// failureMessage prefers the collaborator's own message.
func failureMessage(err error) string {
	var rej *quoteclient.RemoteRejection
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return model.MsgQuoteFailed
}
