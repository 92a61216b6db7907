// internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quadflash/backend/internal/domain/card"
	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/grader"
	"github.com/quadflash/backend/internal/ingest"
	"github.com/quadflash/backend/internal/worker"
)

var (
	ErrSaveInProgress  = errors.New("a save is already in progress")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrNotPracticing   = errors.New("no question set is loaded")
)

// ViewMode is the screen the session is on.
type ViewMode string

const (
	ModeInput    ViewMode = "input"
	ModePractice ViewMode = "practice"
)

// ResetPrompt is the question put to the user before a reset.
const ResetPrompt = "Are you sure you want to clear current data and upload new file?"

// Confirmer answers a blocking yes/no prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// SessionState is the observable top-level state.
type SessionState struct {
	Mode     ViewMode
	Tab      question.Tab
	IsSaving bool
	// Unsaved is true while an edit has not reached storage yet, or the
	// last save failed.
	Unsaved bool
	Counts  question.Counts
}

// CardSnapshot is a card as seen from the practice view. Index is the
// record's position in the full list, whatever the active tab.
type CardSnapshot struct {
	Index    int
	Question question.Question
	View     card.View
}

type saveOutcome struct {
	ok    bool
	flush chan struct{}
}

// SessionController owns the question list, the view mode, the filter tab
// and the per-card view-models. Every mutation goes through its methods so
// persistence stays in one place. It is safe for concurrent use.
type SessionController struct {
	persist *Persistence
	grader  grader.Grader
	logger  *slog.Logger

	mu             sync.Mutex
	questions      []question.Question
	cards          []*card.Card
	mode           ViewMode
	tab            question.Tab
	saving         bool
	lastSaveFailed bool

	// Background saves run one at a time on a single worker. queued is
	// set while a save is waiting to take its snapshot; further edits ride
	// along with it.
	saves   *worker.Pool[saveOutcome]
	queued  atomic.Bool
	seq     atomic.Uint64
	drained chan struct{}
}

// NewSessionController creates an empty controller in input mode.
func NewSessionController(p *Persistence, g grader.Grader, logger *slog.Logger) *SessionController {
	if g == nil {
		g = grader.Exact{}
	}
	c := &SessionController{
		persist: p,
		grader:  g,
		logger:  logger,
		mode:    ModeInput,
		tab:     question.TabAll,
		saves:   worker.NewPool[saveOutcome](1, 1),
		drained: make(chan struct{}),
	}
	go c.drainSaves()
	return c
}

// ============================================================================
// Lifecycle
// ============================================================================

// LoadInitial installs the stored question list, if there is a non-empty
// one, and switches to practice mode.
func (c *SessionController) LoadInitial(ctx context.Context) {
	questions := c.persist.Load(ctx)
	if len(questions) == 0 {
		c.logger.Info("no prior session")
		return
	}

	c.mu.Lock()
	c.install(questions)
	c.mu.Unlock()

	c.logger.Info("resumed session", "count", len(questions))
}

// Close waits for queued saves to reach storage and stops the save worker.
func (c *SessionController) Close() {
	c.saves.Close()
	<-c.drained
}

// Flush blocks until every save scheduled before the call has finished.
func (c *SessionController) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if !c.saves.Submit("flush", func() saveOutcome { return saveOutcome{ok: true, flush: done} }) {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ============================================================================
// Ingestion
// ============================================================================

// Ingest replaces the whole question set, switches to practice mode and
// saves. IsSaving is true until the save finishes; a second Ingest during
// that window fails with ErrSaveInProgress. Storage failures do not fail
// the ingestion.
func (c *SessionController) Ingest(ctx context.Context, questions []question.Question) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return ErrSaveInProgress
	}
	c.saving = true
	c.mu.Unlock()

	incoming := question.CloneAll(questions)
	if incoming == nil {
		incoming = []question.Question{}
	}
	if len(incoming) == 0 {
		c.logger.Warn("ingested an empty question set")
	}

	installed := false
	ok := c.persist.SaveFunc(ctx, func() ([]question.Question, bool) {
		c.mu.Lock()
		c.install(incoming)
		c.mu.Unlock()
		installed = true
		return incoming, true
	})

	c.mu.Lock()
	if !installed {
		c.install(incoming)
	}
	c.saving = false
	c.lastSaveFailed = !ok
	c.mu.Unlock()

	if !installed {
		// The write never happened; retry in the background.
		c.scheduleSave()
	}

	c.logger.Info("ingested questions", "count", len(incoming), "saved", ok)
	return nil
}

// IngestRaw validates raw text and ingests it. Validation errors leave the
// session untouched.
func (c *SessionController) IngestRaw(ctx context.Context, raw []byte) (ingest.Result, error) {
	res, err := ingest.Parse(raw)
	if err != nil {
		c.logger.Info("ingestion rejected", "error", err)
		return res, err
	}
	for _, w := range res.Warnings {
		c.logger.Warn("ingestion warning", "warning", w)
	}
	return res, c.Ingest(ctx, res.Questions)
}

// IngestValue validates an already-decoded structure, such as a dropped
// file parsed by the client, and ingests it.
func (c *SessionController) IngestValue(ctx context.Context, v any) (ingest.Result, error) {
	res, err := ingest.ValidateValue(v)
	if err != nil {
		c.logger.Info("ingestion rejected", "error", err)
		return res, err
	}
	for _, w := range res.Warnings {
		c.logger.Warn("ingestion warning", "warning", w)
	}
	return res, c.Ingest(ctx, res.Questions)
}

// IngestSample ingests the bundled demo set.
func (c *SessionController) IngestSample(ctx context.Context) error {
	return c.Ingest(ctx, ingest.Sample())
}

// install must be called with c.mu held. Cards whose content is unchanged
// at the same position keep their state.
func (c *SessionController) install(questions []question.Question) {
	cards := make([]*card.Card, len(questions))
	for i, q := range questions {
		if i < len(c.cards) {
			c.cards[i].Sync(q)
			cards[i] = c.cards[i]
			continue
		}
		cards[i] = card.New(q, c.grader)
	}
	c.questions = questions
	c.cards = cards
	c.mode = ModePractice
	c.tab = question.TabAll
}

// ============================================================================
// Annotations
// ============================================================================

// ToggleFlag flips a flag on the record at index and re-saves the list.
// The card's transient state is left alone.
func (c *SessionController) ToggleFlag(index int, flag question.Flag) (question.Question, error) {
	c.mu.Lock()
	if err := c.checkIndex(index); err != nil {
		c.mu.Unlock()
		return question.Question{}, err
	}
	q := &c.questions[index]
	if err := q.Toggle(flag); err != nil {
		c.mu.Unlock()
		return question.Question{}, err
	}
	c.cards[index].Sync(*q)
	out := q.Clone()
	c.mu.Unlock()

	c.scheduleSave()
	return out, nil
}

// UpdateNote sets the note on the record at index, verbatim, and re-saves
// the list.
func (c *SessionController) UpdateNote(index int, text string) (question.Question, error) {
	c.mu.Lock()
	if err := c.checkIndex(index); err != nil {
		c.mu.Unlock()
		return question.Question{}, err
	}
	c.questions[index].Note = text
	c.cards[index].Sync(c.questions[index])
	out := c.questions[index].Clone()
	c.mu.Unlock()

	c.scheduleSave()
	return out, nil
}

// ============================================================================
// Practice view
// ============================================================================

// SetFilterTab changes the active tab. Nothing is persisted.
func (c *SessionController) SetFilterTab(tab question.Tab) error {
	if _, err := question.ParseTab(string(tab)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModePractice {
		return ErrNotPracticing
	}
	c.tab = tab
	return nil
}

// Visible returns the cards shown under the active tab, in list order.
func (c *SessionController) Visible() []CardSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := question.Filter(c.questions, c.tab)
	out := make([]CardSnapshot, len(visible))
	for i, item := range visible {
		out[i] = c.snapshot(item.Index)
	}
	return out
}

// Card returns the card at index.
func (c *SessionController) Card(index int) (CardSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return CardSnapshot{}, err
	}
	return c.snapshot(index), nil
}

// SelectOption records an answer attempt on the card at index.
func (c *SessionController) SelectOption(index int, option string) (CardSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return CardSnapshot{}, err
	}
	if _, err := c.cards[index].Select(option); err != nil {
		return CardSnapshot{}, err
	}
	return c.snapshot(index), nil
}

// ToggleReveal flips answer reveal on the card at index.
func (c *SessionController) ToggleReveal(index int) (CardSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return CardSnapshot{}, err
	}
	c.cards[index].ToggleReveal()
	return c.snapshot(index), nil
}

// ============================================================================
// Reset and state
// ============================================================================

// Reset asks confirm before clearing storage and the in-memory list and
// returning to input mode with the "all" tab. A declined prompt changes
// nothing and reports false.
func (c *SessionController) Reset(ctx context.Context, confirm Confirmer) (bool, error) {
	c.mu.Lock()
	saving := c.saving
	c.mu.Unlock()
	if saving {
		return false, ErrSaveInProgress
	}

	if confirm == nil || !confirm.Confirm(ResetPrompt) {
		return false, nil
	}

	c.mu.Lock()
	c.questions = nil
	c.cards = nil
	c.mode = ModeInput
	c.tab = question.TabAll
	c.lastSaveFailed = false
	c.mu.Unlock()

	c.persist.Clear(ctx)
	c.logger.Info("session reset")
	return true, nil
}

func (c *SessionController) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SessionState{
		Mode:     c.mode,
		Tab:      c.tab,
		IsSaving: c.saving,
		Unsaved:  c.lastSaveFailed || c.queued.Load(),
		Counts:   question.Count(c.questions),
	}
}

// SavedAt reports when the question list last reached storage.
func (c *SessionController) SavedAt(ctx context.Context) (time.Time, bool) {
	return c.persist.SavedAt(ctx)
}

// Questions returns a copy of the full list in ingestion order.
func (c *SessionController) Questions() []question.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return question.CloneAll(c.questions)
}

// checkIndex must be called with c.mu held.
func (c *SessionController) checkIndex(index int) error {
	if index < 0 || index >= len(c.questions) {
		return ErrIndexOutOfRange
	}
	return nil
}

// snapshot must be called with c.mu held.
func (c *SessionController) snapshot(index int) CardSnapshot {
	return CardSnapshot{
		Index:    index,
		Question: c.questions[index].Clone(),
		View:     c.cards[index].View(),
	}
}

// ============================================================================
// Background saves
// ============================================================================

// scheduleSave queues a fire-and-forget save of the full list. The save
// reads the list when it writes, not when it is queued.
func (c *SessionController) scheduleSave() {
	if !c.queued.CompareAndSwap(false, true) {
		return
	}
	id := fmt.Sprintf("save-%d", c.seq.Add(1))
	if !c.saves.Submit(id, c.backgroundSave) {
		c.queued.Store(false)
	}
}

// backgroundSave runs on the save worker. It uses context.Background
// because it outlives the request that triggered it.
func (c *SessionController) backgroundSave() saveOutcome {
	ok := c.persist.SaveFunc(context.Background(), func() ([]question.Question, bool) {
		c.queued.Store(false)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.mode != ModePractice {
			return nil, false
		}
		return question.CloneAll(c.questions), true
	})
	return saveOutcome{ok: ok}
}

func (c *SessionController) drainSaves() {
	defer close(c.drained)
	for r := range c.saves.Results() {
		if r.Output.flush != nil {
			close(r.Output.flush)
			continue
		}
		c.mu.Lock()
		c.lastSaveFailed = !r.Output.ok
		c.mu.Unlock()
		if !r.Output.ok {
			c.logger.Warn("background save failed", "job_id", r.JobID)
		}
	}
}
