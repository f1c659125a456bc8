package calculator

import (
	"context"
	"errors"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"slas-calculator/internal/model"
	"slas-calculator/internal/quoteclient"
	"slas-calculator/internal/ui"
)

type SubmitSuite struct {
	suite.Suite

	page   *spyPage
	quoter *fakeQuoter
	ctrl   *Controller
}

func TestSubmitSuite(t *testing.T) {
	suite.Run(t, new(SubmitSuite))
}

func (s *SubmitSuite) SetupTest() {
	s.page = newSpyPage()
	s.quoter = &fakeQuoter{}
	s.ctrl = New(s.page, s.quoter)
}

func (s *SubmitSuite) fill(income string, riskLevel string, ccfPercentage string) {
	s.page.SetValue(ui.IncomeInput, income)
	if riskLevel != "" {
		s.page.SetChecked(ui.ARLCheckbox, true)
		s.ctrl.ToggleRiskLevel()
		s.page.SetValue(ui.RiskLevelInput, riskLevel)
	}
	if ccfPercentage != "" {
		s.page.SetChecked(ui.CCFCheckbox, true)
		s.ctrl.ToggleCCFPercentage()
		s.page.SetValue(ui.CCFPercentageInput, ccfPercentage)
	}
}

func (s *SubmitSuite) text(id ui.ElementID) string {
	return s.page.Element(id).Text
}

func (s *SubmitSuite) TestMandatoryOnlyQuote() {
	s.fill("2000000", "", "")
	s.quoter.result = model.CalculationResult{
		IBC: 2000000, Health: 170000, Pension: 160000, Solidarity: 0, Total: 330000,
	}
	ev := &fakeEvent{}

	state, err := s.ctrl.Submit(context.Background(), ev)

	s.Require().NoError(err)
	s.Equal(StateSuccess, state)
	s.Equal(1, ev.prevented)

	calls := s.quoter.Calls()
	s.Require().Len(calls, 1)
	payload, err := json.Marshal(calls[0])
	s.Require().NoError(err)
	s.JSONEq(`{"ingresosMensual":2000000,"aporteARL":false,"aportaCCF":false}`, string(payload))

	s.Equal("$ 2.000.000", s.text(ui.IBCValue))
	s.Equal("$ 170.000", s.text(ui.HealthValue))
	s.Equal("$ 160.000", s.text(ui.PensionValue))
	s.Equal("$ 0", s.text(ui.SolidarityValue))
	s.Equal("$ 330.000", s.text(ui.TotalValue))
	s.False(s.page.Visible(ui.ARLRow))
	s.False(s.page.Visible(ui.CCFRow))
	s.True(s.page.Visible(ui.Results))
	s.False(s.page.Visible(ui.ErrorMessage))
	s.False(s.page.Visible(ui.Loading))
	s.Equal(1, s.page.LoadingShown())
}

func (s *SubmitSuite) TestOptionalLinesQuote() {
	s.fill("3000000", "I", "2")
	s.quoter.result = model.CalculationResult{
		IBC: 1423500, Health: 177938, Pension: 227760, Solidarity: 0,
		ARL: model.Some(17370.0), CCF: model.Some(60000.0), Total: 483068,
	}

	state, err := s.ctrl.Submit(context.Background(), &fakeEvent{})

	s.Require().NoError(err)
	s.Equal(StateSuccess, state)

	want := model.CalculationRequest{
		MonthlyIncome: 3000000,
		ARL:           true,
		RiskLevel:     model.Some("I"),
		CCF:           true,
		CCFPercentage: model.Some(2.0),
	}
	calls := s.quoter.Calls()
	s.Require().Len(calls, 1)
	if diff := cmp.Diff(want, calls[0]); diff != "" {
		s.Failf("request mismatch", "(-want +got):\n%s", diff)
	}
	payload, err := json.Marshal(calls[0])
	s.Require().NoError(err)
	s.Contains(string(payload), `"nivelRiesgo":"I"`)
	s.Contains(string(payload), `"porcentajeCCF":2`)

	s.True(s.page.Visible(ui.ARLRow))
	s.True(s.page.Visible(ui.CCFRow))
	s.Equal("$ 17.370", s.text(ui.ARLValue))
	s.Equal("$ 60.000", s.text(ui.CCFValue))
	s.Equal("$ 483.068", s.text(ui.TotalValue))
}

func (s *SubmitSuite) TestInvalidIncomeNeverCallsOut() {
	s.fill("0", "", "")

	state, err := s.ctrl.Submit(context.Background(), &fakeEvent{})

	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(StateInvalid, state)
	s.Empty(s.quoter.Calls())
	s.Equal(0, s.page.LoadingShown())
	s.True(s.page.Visible(ui.ErrorMessage))
	s.Equal(model.MsgInvalidIncome, s.text(ui.ErrorMessage))
	s.False(s.page.Visible(ui.Results))
}

func (s *SubmitSuite) TestMissingRiskLevel() {
	s.fill("2000000", "", "")
	s.page.SetChecked(ui.ARLCheckbox, true)
	s.ctrl.ToggleRiskLevel()

	state, _ := s.ctrl.Submit(context.Background(), nil)

	s.Equal(StateInvalid, state)
	s.Equal(model.MsgSelectRiskLevel, s.text(ui.ErrorMessage))
	s.Empty(s.quoter.Calls())
}

func (s *SubmitSuite) TestRemoteRejectionMessageShown() {
	s.fill("2000000", "", "")
	s.quoter.err = &quoteclient.RemoteRejection{Status: 400, Message: "límite excedido"}

	state, err := s.ctrl.Submit(context.Background(), &fakeEvent{})

	var rej *quoteclient.RemoteRejection
	s.Require().ErrorAs(err, &rej)
	s.Equal(StateFailed, state)
	s.True(s.page.Visible(ui.ErrorMessage))
	s.Equal("límite excedido", s.text(ui.ErrorMessage))
	s.False(s.page.Visible(ui.Results))
	s.False(s.page.Visible(ui.Loading))
	s.True(s.page.Element(ui.SubmitButton).Enabled)
	s.Equal(1, s.page.LoadingShown())
}

func (s *SubmitSuite) TestFailuresWithoutMessageAreGeneric() {
	failures := []error{
		&quoteclient.RemoteRejection{Status: 500},
		&quoteclient.TransportFailure{Err: errors.New("connection reset")},
		errors.New("unexpected"),
	}

	for _, failure := range failures {
		s.SetupTest()
		s.fill("2000000", "", "")
		s.quoter.err = failure

		state, err := s.ctrl.Submit(context.Background(), nil)

		s.ErrorIs(err, failure)
		s.Equal(StateFailed, state)
		s.Equal(model.MsgQuoteFailed, s.text(ui.ErrorMessage))
		s.False(s.page.Visible(ui.Loading))
	}
}

func (s *SubmitSuite) TestBusyIndicatorDuringQuote() {
	s.fill("2000000", "", "")
	s.quoter.during = func() {
		s.True(s.page.Visible(ui.Loading))
		s.False(s.page.Element(ui.SubmitButton).Enabled)
	}

	_, err := s.ctrl.Submit(context.Background(), nil)

	s.Require().NoError(err)
	s.False(s.page.Visible(ui.Loading))
	s.True(s.page.Element(ui.SubmitButton).Enabled)
}

func (s *SubmitSuite) TestOverlappingSubmitIsRejected() {
	s.fill("2000000", "", "")
	entered := make(chan struct{})
	release := make(chan struct{})
	s.quoter.during = func() {
		close(entered)
		<-release
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var firstState State
	go func() {
		defer wg.Done()
		firstState, _ = s.ctrl.Submit(context.Background(), nil)
	}()
	<-entered

	ev := &fakeEvent{}
	state, err := s.ctrl.Submit(context.Background(), ev)
	s.ErrorIs(err, ErrSubmitInFlight)
	s.Equal(StateBusy, state)
	s.Equal(1, ev.prevented)
	s.True(s.page.Visible(ui.Loading), "rejected submit must not touch the page")

	close(release)
	wg.Wait()

	s.Equal(StateSuccess, firstState)
	s.Len(s.quoter.Calls(), 1)
	s.False(s.page.Visible(ui.Loading))
}

func (s *SubmitSuite) TestResetDuringQuoteKeepsBusyState() {
	s.fill("2000000", "", "")
	s.quoter.during = func() {
		s.ctrl.Reset()
		s.True(s.page.Visible(ui.Loading))
		s.False(s.page.Element(ui.SubmitButton).Enabled)
	}

	state, err := s.ctrl.Submit(context.Background(), nil)

	s.Require().NoError(err)
	s.Equal(StateSuccess, state)
	s.False(s.page.Visible(ui.Loading))
	s.True(s.page.Element(ui.SubmitButton).Enabled)
}

func (s *SubmitSuite) TestNewAttemptClearsPreviousOutcome() {
	s.fill("2000000", "", "")
	s.quoter.result = model.CalculationResult{Total: 1}
	_, err := s.ctrl.Submit(context.Background(), nil)
	s.Require().NoError(err)
	s.Require().True(s.page.Visible(ui.Results))

	s.page.SetValue(ui.IncomeInput, "")
	state, _ := s.ctrl.Submit(context.Background(), nil)

	s.Equal(StateInvalid, state)
	s.False(s.page.Visible(ui.Results))
	s.True(s.page.Visible(ui.ErrorMessage))

	s.page.SetValue(ui.IncomeInput, "2000000")
	state, _ = s.ctrl.Submit(context.Background(), nil)

	s.Equal(StateSuccess, state)
	s.False(s.page.Visible(ui.ErrorMessage))
	s.Empty(s.text(ui.ErrorMessage))
}

func TestStateString(t *testing.T) {
	if StateSubmitting.String() != "submitting" || State(42).String() != "State(42)" {
		t.Fatalf("unexpected state names: %s, %s", StateSubmitting, State(42))
	}
}
