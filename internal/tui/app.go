package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/carbonsense/internal/habits"
	"github.com/rshade/carbonsense/internal/logging"
	"github.com/rshade/carbonsense/internal/navigation"
	"github.com/rshade/carbonsense/internal/report"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	appDefaultWidth  = 80
	appDefaultHeight = 24

	// maxContentWidth caps how wide the views grow on large terminals.
	maxContentWidth = 100
)

// AppModel is the Bubble Tea model for the whole calculator.
type AppModel struct {
	ctx    context.Context
	logger zerolog.Logger

	state  navigation.State
	draft  habits.Draft
	focus  habits.Field
	report *report.Report

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewAppModel returns a model on the home screen. The logger and trace ID
// are taken from ctx.
func NewAppModel(ctx context.Context) *AppModel {
	logger := logging.ComponentLogger(*logging.FromContext(ctx), "tui")

	return &AppModel{
		ctx:    ctx,
		logger: logger,
		state:  navigation.New(),
		draft:  habits.NewDraft(),
		focus:  habits.FieldChargesPerDay,
		keys:   newKeyMap(),
		help:   help.New(),
		width:  appDefaultWidth,
		height: appDefaultHeight,
	}
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	m.logger.Debug().Ctx(m.ctx).Str("screen", m.state.Screen().String()).Msg("calculator started")
	return nil
}

// Update implements tea.Model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes a key press to the handler of the current screen.
func (m *AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Debug().Ctx(m.ctx).Str("screen", m.state.Screen().String()).Msg("quit")
		return m, tea.Quit
	}

	switch m.state.Screen() {
	case navigation.ScreenHome:
		if key.Matches(msg, m.keys.Start) {
			m.apply(navigation.StartCalculation{})
		}

	case navigation.ScreenInput:
		m.handleInputKey(msg)

	case navigation.ScreenResults:
		switch {
		case key.Matches(msg, m.keys.TryAgain):
			m.apply(navigation.TryAgain{})
		case key.Matches(msg, m.keys.Home), key.Matches(msg, m.keys.LearnMore):
			m.apply(navigation.BackToHome{})
		}
	}

	return m, nil
}

func (m *AppModel) handleInputKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.focus > habits.FieldChargesPerDay {
			m.focus--
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus < habits.NumFields-1 {
			m.focus++
		}
	case key.Matches(msg, m.keys.Decrease):
		m.draft = m.draft.Adjust(m.focus, -1)
	case key.Matches(msg, m.keys.Increase):
		m.draft = m.draft.Adjust(m.focus, 1)
	case key.Matches(msg, m.keys.Submit):
		m.apply(navigation.SubmitHabits(m.draft.Submit()))
	case key.Matches(msg, m.keys.Back):
		m.apply(navigation.Back{})
	}
}

// apply runs a navigation event and refreshes the screen-local state.
func (m *AppModel) apply(e navigation.Event) {
	from := m.state.Screen()
	next, changed := navigation.Apply(m.state, e)
	if !changed {
		m.logger.Debug().Ctx(m.ctx).
			Str("screen", from.String()).
			Str("event", e.String()).
			Msg("event ignored")
		return
	}
	m.state = next
	to := next.Screen()

	m.logger.Debug().Ctx(m.ctx).
		Str("from", from.String()).
		Str("to", to.String()).
		Str("event", e.String()).
		Msg("screen transition")

	switch to {
	case navigation.ScreenInput:
		m.draft = habits.NewDraft()
		m.focus = habits.FieldChargesPerDay
		m.report = nil
	case navigation.ScreenResults:
		if h, ok := next.Habits(); ok {
			r := report.Compute(h)
			m.report = &r
			m.logger.Debug().Ctx(m.ctx).
				Str("habits", report.Summary(h)).
				Float64("daily_grams", r.DailyEmissionGrams).
				Float64("comparison_percent", r.ComparisonPercent).
				Bool("optimal_range", r.IsOptimalRange).
				Bool("overcharging", r.IsOvercharging).
				Msg("report computed")
		}
	case navigation.ScreenHome:
		m.report = nil
	}
}

// View implements tea.Model.
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	width := min(m.width, maxContentWidth)
	var body string
	switch m.state.Screen() {
	case navigation.ScreenHome:
		body = renderHome(width)
	case navigation.ScreenInput:
		body = renderInput(m.draft, m.focus, width)
	case navigation.ScreenResults:
		if m.report != nil {
			body = renderResults(*m.report, width)
		}
	}

	return renderFrame(m.state.Screen(), body, m.help.View(screenHelp{keys: m.keys, screen: m.state.Screen()}), width)
}

// Screen returns the screen currently shown.
func (m *AppModel) Screen() navigation.Screen {
	return m.state.Screen()
}

// Draft returns the form's working copy.
func (m *AppModel) Draft() habits.Draft {
	return m.draft
}

// Report returns the report shown on the results screen, if any.
func (m *AppModel) Report() (report.Report, bool) {
	if m.report == nil {
		return report.Report{}, false
	}
	return *m.report, true
}
