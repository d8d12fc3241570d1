// Package session runs one pass through a deck: start, reveal, step forward
// and back, finish, restart.
//
// The controller is driven from a single UI event loop and takes no locks.
package session

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/prasad1624/acronym-flashcard-generator/internal/cards"
	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
)

type State int

const (
	Browsing State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Controller owns the card order, cursor and reveal/finished flags of the
// current session.
type Controller struct {
	logger logger.Logger
	rng    *rand.Rand

	order    []cards.Card
	cursor   int
	revealed bool
	finished bool

	sessionID string
	rounds    int
}

type Option func(*Controller)

// WithRand replaces the shuffle source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *Controller) {
		c.logger = log
	}
}

// NewController returns a controller with no session. Until Start succeeds
// it reports the finished view.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		logger:   logger.NoOp{},
		finished: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new session over a copy of deck, shuffled when randomize is
// set. It is the only call accepted once the session has finished.
func (c *Controller) Start(deck cards.Deck, randomize bool) error {
	if deck.IsEmpty() {
		return fmt.Errorf("start session: %w", cards.ErrEmptyDeck)
	}

	order := deck.Cards()
	if randomize {
		c.shuffle(order)
	}

	c.order = order
	c.cursor = 0
	c.revealed = false
	c.finished = false
	c.sessionID = uuid.NewString()
	c.rounds++

	c.logger.Info("Session", "session started", map[string]interface{}{
		"session_id": c.sessionID,
		"round":      c.rounds,
		"cards":      len(order),
		"randomized": randomize,
	})
	return nil
}

// shuffle is Fisher-Yates; every permutation is equally likely.
func (c *Controller) shuffle(order []cards.Card) {
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if c.rng != nil {
		c.rng.Shuffle(len(order), swap)
		return
	}
	rand.Shuffle(len(order), swap)
}

func (c *Controller) Reveal() {
	if c.finished {
		return
	}
	c.revealed = true
	c.logger.Debug("Session", "card revealed", c.fields())
}

// Next advances the cursor. Stepping past the last card ends the session.
func (c *Controller) Next() {
	if c.finished {
		return
	}

	c.cursor++
	if c.cursor >= len(c.order) {
		c.finished = true
		c.revealed = false
		c.logger.Info("Session", "session finished", map[string]interface{}{
			"session_id": c.sessionID,
			"cards":      len(c.order),
		})
		return
	}

	c.revealed = false
	c.logger.Debug("Session", "moved to next card", c.fields())
}

// Previous steps back, wrapping from the first card to the last.
func (c *Controller) Previous() {
	if c.finished {
		return
	}

	c.cursor--
	if c.cursor < 0 {
		c.cursor = len(c.order) - 1
	}
	c.revealed = false
	c.logger.Debug("Session", "moved to previous card", c.fields())
}

func (c *Controller) CurrentView() View {
	if c.finished {
		return finishedView()
	}

	card := c.order[c.cursor]
	sub := RevealPrompt
	if c.revealed {
		sub = card.Meaning
		if strings.TrimSpace(sub) == "" {
			sub = NoMeaningText
		}
	}

	return View{
		DisplayText:  card.Acronym,
		SubText:      sub,
		ProgressText: fmt.Sprintf("%d / %d", c.cursor+1, len(c.order)),
	}
}

func (c *Controller) State() State {
	if c.finished {
		return Finished
	}
	return Browsing
}

func (c *Controller) Cursor() int {
	return c.cursor
}

func (c *Controller) Revealed() bool {
	return c.revealed
}

// Order returns a copy of the current session order.
func (c *Controller) Order() []cards.Card {
	return append([]cards.Card(nil), c.order...)
}

// SessionID identifies the current round in log lines. Every successful Start
// issues a new one; it is empty until the first Start.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Rounds counts successful calls to Start.
func (c *Controller) Rounds() int {
	return c.rounds
}

func (c *Controller) fields() map[string]interface{} {
	return map[string]interface{}{
		"session_id": c.sessionID,
		"cursor":     c.cursor,
		"card_id":    c.order[c.cursor].ID,
	}
}

func (c *Controller) Shutdown() {
	c.logger.Info("Session", "controller shutdown", map[string]interface{}{
		"session_id": c.sessionID,
		"rounds":     c.rounds,
		"state":      c.State().String(),
	})
}
