// Package navigation implements the three-screen flow of the calculator as a
// pure state machine.
//
// State is a value: Apply never mutates its argument, it returns the next
// state. Events that do not apply to the current screen are silent no-ops.
package navigation

import (
	"fmt"

	"github.com/rshade/carbonsense/internal/habits"
)

// Screen identifies one of the three screens.
type Screen int

const (
	// ScreenHome is the landing screen with the awareness content.
	ScreenHome Screen = iota
	// ScreenInput is the charging habits form.
	ScreenInput
	// ScreenResults is the emission report.
	ScreenResults
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenInput:
		return "input"
	case ScreenResults:
		return "results"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Step returns the 1-based position of the screen in the progress indicator.
func (s Screen) Step() int {
	return int(s) + 1
}

// StepLabel returns the progress indicator caption for the screen.
func (s Screen) StepLabel() string {
	switch s {
	case ScreenHome:
		return "Awareness"
	case ScreenInput:
		return "Your Habits"
	case ScreenResults:
		return "Results"
	default:
		return ""
	}
}

// Screens lists the screens in flow order.
//
//nolint:gochecknoglobals // Fixed screen order for the progress indicator.
var Screens = []Screen{ScreenHome, ScreenInput, ScreenResults}

// State is the current screen plus the submitted payload, if any.
type State struct {
	screen Screen
	habits *habits.ChargingHabits
}

// New returns the initial state: the Home screen with no payload.
func New() State {
	return State{screen: ScreenHome}
}

// Screen returns the screen to render. A Results state without a payload is
// reported as Input so a report is never rendered without data.
func (s State) Screen() Screen {
	if s.screen == ScreenResults && s.habits == nil {
		return ScreenInput
	}
	return s.screen
}

// Habits returns the submitted payload and whether one is held.
func (s State) Habits() (habits.ChargingHabits, bool) {
	if s.habits == nil {
		return habits.ChargingHabits{}, false
	}
	return *s.habits, true
}

// Event is a user action that may move the state machine.
type Event interface {
	fmt.Stringer
	isEvent()
}

// StartCalculation moves Home to Input.
type StartCalculation struct{}

// Submit moves Input to Results, storing Habits. A nil Habits is ignored.
type Submit struct {
	Habits *habits.ChargingHabits
}

// Back moves Input to Home.
type Back struct{}

// TryAgain moves Results to Input and clears the payload.
type TryAgain struct{}

// BackToHome moves Input or Results to Home and clears the payload.
type BackToHome struct{}

func (StartCalculation) isEvent() {}
func (Submit) isEvent()           {}
func (Back) isEvent()             {}
func (TryAgain) isEvent()         {}
func (BackToHome) isEvent()       {}

func (StartCalculation) String() string { return "start-calculation" }
func (Submit) String() string           { return "submit" }
func (Back) String() string             { return "back" }
func (TryAgain) String() string         { return "try-again" }
func (BackToHome) String() string       { return "back-to-home" }

// SubmitHabits builds a Submit event holding a copy of h.
func SubmitHabits(h habits.ChargingHabits) Submit {
	return Submit{Habits: &h}
}

// Apply returns the state that follows s when e occurs, and whether a
// transition happened. Unhandled events return s unchanged and false.
func Apply(s State, e Event) (State, bool) {
	switch s.Screen() {
	case ScreenHome:
		if _, ok := e.(StartCalculation); ok {
			return State{screen: ScreenInput}, true
		}

	case ScreenInput:
		switch ev := e.(type) {
		case Submit:
			if ev.Habits == nil {
				return s, false
			}
			payload := *ev.Habits
			return State{screen: ScreenResults, habits: &payload}, true
		case Back, BackToHome:
			return State{screen: ScreenHome}, true
		}

	case ScreenResults:
		switch e.(type) {
		case TryAgain:
			return State{screen: ScreenInput}, true
		case BackToHome:
			return State{screen: ScreenHome}, true
		}
	}

	return s, false
}
