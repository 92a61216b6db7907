package card

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/grader"
)

var ErrUnknownOption = errors.New("option is not one of the question's options")

// State is the answering state of a card. Reveal is tracked separately.
type State string

const (
	StateUnanswered State = "unanswered"
	StateCorrect    State = "answered-correct"
	StateIncorrect  State = "answered-incorrect"
)

// Mark is how an option is displayed.
type Mark string

const (
	MarkNone      Mark = ""
	MarkCorrect   Mark = "correct"   // selected and right
	MarkIncorrect Mark = "incorrect" // selected and wrong
	MarkAnswer    Mark = "answer"    // the answer, shown by reveal
)

// Card is the per-question view-model: shuffled option order, selection,
// correctness and reveal. It is not safe for concurrent use; the session
// controller serializes access.
type Card struct {
	key      uuid.UUID
	q        question.Question
	grader   grader.Grader
	options  []string
	selected *string
	revealed bool
}

// New builds a card in the unanswered state with a fresh option order.
func New(q question.Question, g grader.Grader) *Card {
	if g == nil {
		g = grader.Exact{}
	}
	c := &Card{grader: g}
	c.reset(q)
	return c
}

func (c *Card) reset(q question.Question) {
	c.key = q.ContentKey()
	c.q = q.Clone()
	c.options = shuffleOptions(q.Options)
	c.selected = nil
	c.revealed = false
}

// Sync points the card at q. Transient state is cleared and the options
// reshuffled only when the content key changed; annotation edits keep the
// card as it is. Reports whether a reset happened.
func (c *Card) Sync(q question.Question) bool {
	if q.ContentKey() == c.key {
		return false
	}
	c.reset(q)
	return true
}

// Select records option as the user's choice. It is a no-op while the answer
// is revealed. Re-selecting the same option grades it again.
func (c *Card) Select(option string) (State, error) {
	if c.revealed {
		return c.State(), nil
	}
	if !c.q.HasOption(option) {
		return c.State(), ErrUnknownOption
	}
	c.selected = &option
	return c.State(), nil
}

// ToggleReveal flips reveal and returns the new value. Selection and
// correctness are left alone.
func (c *Card) ToggleReveal() bool {
	c.revealed = !c.revealed
	return c.revealed
}

func (c *Card) State() State {
	if c.selected == nil {
		return StateUnanswered
	}
	if c.grader.Grade(*c.selected, c.q.Answer) {
		return StateCorrect
	}
	return StateIncorrect
}

// OptionView is one option as displayed.
type OptionView struct {
	Text string
	Mark Mark
}

// View is a read-only rendering of the card.
type View struct {
	Options  []OptionView
	State    State
	Revealed bool
	Selected *string
	Answer   *string // only set while revealed
}

func (c *Card) View() View {
	v := View{
		Options:  make([]OptionView, len(c.options)),
		State:    c.State(),
		Revealed: c.revealed,
	}
	if c.selected != nil {
		s := *c.selected
		v.Selected = &s
	}
	if c.revealed {
		a := c.q.Answer
		v.Answer = &a
	}
	for i, opt := range c.options {
		v.Options[i] = OptionView{Text: opt, Mark: c.markFor(opt)}
	}
	return v
}

func (c *Card) markFor(opt string) Mark {
	isAnswer := c.grader.Grade(opt, c.q.Answer)
	switch {
	case c.selected != nil && *c.selected == opt:
		if isAnswer {
			return MarkCorrect
		}
		return MarkIncorrect
	case c.revealed && isAnswer:
		return MarkAnswer
	}
	return MarkNone
}

// shuffleOptions returns a random permutation of options, leaving the
// source slice untouched.
func shuffleOptions(options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
