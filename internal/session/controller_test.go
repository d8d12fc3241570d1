package session

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasad1624/acronym-flashcard-generator/internal/cards"
)

func scenarioDeck() cards.Deck {
	return cards.NewDeck(
		cards.Card{ID: 1, Acronym: "ACR1", Meaning: "Meaning One"},
		cards.Card{ID: 2, Acronym: "ACR2", Meaning: ""},
	)
}

func numberedDeck(n int) cards.Deck {
	list := make([]cards.Card, n)
	for i := range list {
		list[i] = cards.Card{ID: i + 1, Acronym: string(rune('A' + i)), Meaning: "meaning"}
	}
	return cards.NewDeck(list...)
}

func ids(list []cards.Card) []int {
	out := make([]int, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func startedController(t *testing.T, deck cards.Deck) *Controller {
	t.Helper()

	c := NewController()
	require.NoError(t, c.Start(deck, false))
	return c
}

func TestEndToEndScenario(t *testing.T) {
	c := startedController(t, scenarioDeck())

	assert.Equal(t, View{
		DisplayText:  "ACR1",
		SubText:      RevealPrompt,
		ProgressText: "1 / 2",
	}, c.CurrentView())

	c.Reveal()
	assert.Equal(t, "Meaning One", c.CurrentView().SubText)

	c.Next()
	assert.Equal(t, 1, c.Cursor())
	assert.False(t, c.Revealed())
	view := c.CurrentView()
	assert.Equal(t, "ACR2", view.DisplayText)
	assert.Equal(t, RevealPrompt, view.SubText)
	assert.Equal(t, "2 / 2", view.ProgressText)

	c.Reveal()
	assert.Equal(t, NoMeaningText, c.CurrentView().SubText)

	c.Next()
	assert.Equal(t, Finished, c.State())
	assert.Equal(t, View{
		DisplayText:  FinishedText,
		SubText:      FinishedSubText,
		ProgressText: "",
		Finished:     true,
	}, c.CurrentView())
}

func TestStartWithoutShuffleKeepsDeckOrder(t *testing.T) {
	deck := numberedDeck(8)
	c := startedController(t, deck)

	assert.Equal(t, deck.Cards(), c.Order())
	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.Revealed())
	assert.Equal(t, Browsing, c.State())
}

func TestStartWithShuffleIsPermutation(t *testing.T) {
	deck := numberedDeck(10)
	c := NewController(WithRand(rand.New(rand.NewPCG(1, 2))))

	require.NoError(t, c.Start(deck, true))

	got := ids(c.Order())
	sort.Ints(got)
	assert.Equal(t, ids(deck.Cards()), got)
}

func TestStartWithShuffleVariesFirstCard(t *testing.T) {
	deck := numberedDeck(10)
	c := NewController()

	firsts := map[int]bool{}
	for i := 0; i < 50; i++ {
		require.NoError(t, c.Start(deck, true))
		firsts[c.Order()[0].ID] = true
	}

	assert.Greater(t, len(firsts), 1, "expected shuffled sessions to start on different cards")
}

func TestStartDoesNotMutateDeck(t *testing.T) {
	deck := numberedDeck(6)
	before := deck.Cards()
	c := NewController(WithRand(rand.New(rand.NewPCG(7, 7))))

	require.NoError(t, c.Start(deck, true))

	assert.Equal(t, before, deck.Cards())
}

func TestStartRejectsEmptyDeck(t *testing.T) {
	c := NewController()

	err := c.Start(cards.NewDeck(), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cards.ErrEmptyDeck))
	assert.Equal(t, Finished, c.State())
	assert.Equal(t, 0, c.Rounds())
}

func TestControllerBeforeStartReportsFinished(t *testing.T) {
	c := NewController()

	c.Next()
	c.Previous()
	c.Reveal()

	assert.True(t, c.CurrentView().Finished)
}

func TestRevealIsIdempotent(t *testing.T) {
	c := startedController(t, scenarioDeck())

	c.Reveal()
	first := c.CurrentView().SubText
	c.Reveal()

	assert.True(t, c.Revealed())
	assert.Equal(t, first, c.CurrentView().SubText)
	assert.Equal(t, 0, c.Cursor())
}

func TestRevealPlaceholderForBlankMeaning(t *testing.T) {
	c := startedController(t, cards.NewDeck(cards.Card{ID: 1, Acronym: "X", Meaning: "   "}))

	c.Reveal()
	assert.Equal(t, NoMeaningText, c.CurrentView().SubText)
}

func TestPreviousWrapsFromFirstCard(t *testing.T) {
	c := startedController(t, numberedDeck(4))
	c.Reveal()

	c.Previous()

	assert.Equal(t, 3, c.Cursor())
	assert.False(t, c.Revealed())
	assert.Equal(t, Browsing, c.State())
	assert.Equal(t, "4 / 4", c.CurrentView().ProgressText)
}

func TestPreviousStepsBack(t *testing.T) {
	c := startedController(t, numberedDeck(4))
	c.Next()
	c.Next()
	c.Reveal()

	c.Previous()

	assert.Equal(t, 1, c.Cursor())
	assert.False(t, c.Revealed())
}

func TestNextAtLastCardFinishes(t *testing.T) {
	c := startedController(t, numberedDeck(3))
	c.Next()
	c.Next()
	require.Equal(t, 2, c.Cursor())

	c.Next()
	assert.Equal(t, Finished, c.State())

	view := c.CurrentView()
	c.Next()
	c.Previous()
	c.Reveal()

	assert.Equal(t, Finished, c.State())
	assert.Equal(t, view, c.CurrentView())
	assert.False(t, c.Revealed())
}

func TestNextResetsReveal(t *testing.T) {
	c := startedController(t, numberedDeck(3))
	c.Reveal()

	c.Next()

	assert.False(t, c.Revealed())
	assert.Equal(t, RevealPrompt, c.CurrentView().SubText)
}

func TestSingleCardDeck(t *testing.T) {
	c := startedController(t, cards.NewDeck(cards.Card{ID: 1, Acronym: "ONE"}))

	c.Previous()
	assert.Equal(t, 0, c.Cursor())
	assert.Equal(t, "1 / 1", c.CurrentView().ProgressText)

	c.Next()
	assert.Equal(t, Finished, c.State())
}

func TestRestartAfterFinish(t *testing.T) {
	deck := scenarioDeck()
	c := startedController(t, deck)
	firstID := c.SessionID()
	c.Next()
	c.Next()
	require.Equal(t, Finished, c.State())

	require.NoError(t, c.Start(deck, true))

	assert.Equal(t, Browsing, c.State())
	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.Revealed())
	assert.Equal(t, 2, c.Rounds())
	assert.NotEqual(t, firstID, c.SessionID())
	assert.Len(t, c.Order(), 2)
}

func TestStartMidSessionResets(t *testing.T) {
	deck := numberedDeck(5)
	c := startedController(t, deck)
	c.Next()
	c.Next()
	c.Reveal()

	require.NoError(t, c.Start(deck, false))

	assert.Equal(t, 0, c.Cursor())
	assert.False(t, c.Revealed())
	assert.Equal(t, "1 / 5", c.CurrentView().ProgressText)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "browsing", Browsing.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "unknown", State(9).String())
}
