package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonsense/internal/habits"
)

func allEvents() []Event {
	return []Event{
		StartCalculation{},
		SubmitHabits(habits.Defaults()),
		Back{},
		TryAgain{},
		BackToHome{},
	}
}

func resultsState(t *testing.T) State {
	t.Helper()
	s, ok := Apply(New(), StartCalculation{})
	require.True(t, ok)
	s, ok = Apply(s, SubmitHabits(habits.Defaults()))
	require.True(t, ok)
	require.Equal(t, ScreenResults, s.Screen())
	return s
}

func TestNew(t *testing.T) {
	s := New()

	assert.Equal(t, ScreenHome, s.Screen())
	_, ok := s.Habits()
	assert.False(t, ok)
}

func TestApply_FromHome(t *testing.T) {
	for _, e := range allEvents() {
		t.Run(e.String(), func(t *testing.T) {
			next, changed := Apply(New(), e)
			if _, isStart := e.(StartCalculation); isStart {
				assert.True(t, changed)
				assert.Equal(t, ScreenInput, next.Screen())
				return
			}
			assert.False(t, changed)
			assert.Equal(t, ScreenHome, next.Screen())
		})
	}
}

func TestApply_FromInput(t *testing.T) {
	input, _ := Apply(New(), StartCalculation{})

	t.Run("submit stores payload and shows results", func(t *testing.T) {
		h := habits.Defaults()
		h.ChargesPerDay = 3

		next, changed := Apply(input, SubmitHabits(h))

		require.True(t, changed)
		assert.Equal(t, ScreenResults, next.Screen())
		got, ok := next.Habits()
		require.True(t, ok)
		assert.Equal(t, h, got)
	})

	t.Run("submit without payload is ignored", func(t *testing.T) {
		next, changed := Apply(input, Submit{})

		assert.False(t, changed)
		assert.Equal(t, ScreenInput, next.Screen())
	})

	t.Run("back returns home", func(t *testing.T) {
		next, changed := Apply(input, Back{})

		assert.True(t, changed)
		assert.Equal(t, ScreenHome, next.Screen())
	})

	t.Run("back to home returns home", func(t *testing.T) {
		next, changed := Apply(input, BackToHome{})

		assert.True(t, changed)
		assert.Equal(t, ScreenHome, next.Screen())
	})

	t.Run("start and try again are ignored", func(t *testing.T) {
		for _, e := range []Event{StartCalculation{}, TryAgain{}} {
			next, changed := Apply(input, e)
			assert.False(t, changed, e.String())
			assert.Equal(t, input, next)
		}
	})
}

func TestApply_FromResults(t *testing.T) {
	t.Run("try again clears payload and shows input", func(t *testing.T) {
		next, changed := Apply(resultsState(t), TryAgain{})

		assert.True(t, changed)
		assert.Equal(t, ScreenInput, next.Screen())
		_, ok := next.Habits()
		assert.False(t, ok)
	})

	t.Run("back to home clears payload", func(t *testing.T) {
		next, changed := Apply(resultsState(t), BackToHome{})

		assert.True(t, changed)
		assert.Equal(t, ScreenHome, next.Screen())
		_, ok := next.Habits()
		assert.False(t, ok)
	})

	t.Run("other events are ignored", func(t *testing.T) {
		s := resultsState(t)
		for _, e := range []Event{StartCalculation{}, SubmitHabits(habits.Defaults()), Back{}} {
			next, changed := Apply(s, e)
			assert.False(t, changed, e.String())
			assert.Equal(t, ScreenResults, next.Screen())
		}
	})
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := resultsState(t)
	before, _ := s.Habits()

	_, _ = Apply(s, TryAgain{})

	after, ok := s.Habits()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, ScreenResults, s.Screen())
}

func TestSubmit_CopiesPayload(t *testing.T) {
	h := habits.Defaults()
	input, _ := Apply(New(), StartCalculation{})
	next, _ := Apply(input, SubmitHabits(h))

	h.ChargesPerDay = 5

	got, _ := next.Habits()
	assert.Equal(t, 1, got.ChargesPerDay)
}

func TestState_ResultsWithoutPayloadFallsBack(t *testing.T) {
	s := State{screen: ScreenResults}

	assert.Equal(t, ScreenInput, s.Screen())

	next, changed := Apply(s, TryAgain{})
	assert.False(t, changed, "a payload-less results state behaves as input")
	assert.Equal(t, ScreenInput, next.Screen())
}

func TestScreen_Labels(t *testing.T) {
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "results", ScreenResults.String())
	assert.Equal(t, 1, ScreenHome.Step())
	assert.Equal(t, 3, ScreenResults.Step())
	assert.Equal(t, "Your Habits", ScreenInput.StepLabel())
	assert.Equal(t, "Screen(7)", Screen(7).String())
}
