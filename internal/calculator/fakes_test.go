package calculator

import (
	"context"
	"sync"

	"slas-calculator/internal/model"
	"slas-calculator/internal/ui"
)

type fakeQuoter struct {
	mu     sync.Mutex
	calls  []model.CalculationRequest
	result model.CalculationResult
	err    error
	// during runs inside the call, while the request is in flight
	during func()
}

func (f *fakeQuoter) Quote(_ context.Context, req model.CalculationRequest) (model.CalculationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	during := f.during
	f.mu.Unlock()

	if during != nil {
		during()
	}
	return f.result, f.err
}

func (f *fakeQuoter) Calls() []model.CalculationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.CalculationRequest(nil), f.calls...)
}

// spyPage records every time the busy indicator is shown.
type spyPage struct {
	*ui.Page

	mu           sync.Mutex
	loadingShown int
}

func newSpyPage() *spyPage {
	return &spyPage{Page: ui.NewPage()}
}

func (p *spyPage) SetVisible(id ui.ElementID, visible bool) {
	if id == ui.Loading && visible {
		p.mu.Lock()
		p.loadingShown++
		p.mu.Unlock()
	}
	p.Page.SetVisible(id, visible)
}

func (p *spyPage) LoadingShown() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadingShown
}

type fakeEvent struct {
	prevented int
}

func (e *fakeEvent) PreventDefault() { e.prevented++ }
