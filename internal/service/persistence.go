// internal/service/persistence.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/store"
)

// DefaultStorageKey is the fixed key of the storage record.
const DefaultStorageKey = "quadflash_data"

// Persistence saves, loads and clears the question list under one key.
// Saves wait out an artificial latency before writing; failures are logged
// and reported as false, never returned as errors.
type Persistence struct {
	store   store.Store
	key     string
	latency time.Duration
	logger  *slog.Logger

	// writeMu orders writes and clears so a snapshot taken under it is
	// never overwritten by an older one.
	writeMu sync.Mutex
}

// NewPersistence creates a Persistence over s.
func NewPersistence(s store.Store, key string, latency time.Duration, logger *slog.Logger) *Persistence {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Persistence{
		store:   s,
		key:     key,
		latency: latency,
		logger:  logger,
	}
}

// Save serializes questions under the storage key after the save latency.
func (p *Persistence) Save(ctx context.Context, questions []question.Question) bool {
	snapshot := question.CloneAll(questions)
	return p.SaveFunc(ctx, func() ([]question.Question, bool) {
		return snapshot, true
	})
}

// SaveFunc waits out the latency, then calls snapshot while holding the
// write lock and persists what it returns. snapshot reads state at write
// time, so the latest of several queued saves always wins. Returning false
// from snapshot skips the write and counts as success.
func (p *Persistence) SaveFunc(ctx context.Context, snapshot func() ([]question.Question, bool)) bool {
	start := time.Now()

	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.logger.Error("save aborted", "key", p.key, "error", ctx.Err())
			return false
		case <-timer.C:
		}
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	questions, ok := snapshot()
	if !ok {
		p.logger.Debug("save skipped", "key", p.key)
		return true
	}
	if questions == nil {
		questions = []question.Question{}
	}

	data, err := json.Marshal(questions)
	if err != nil {
		p.logger.Error("failed to serialize questions", "key", p.key, "error", err)
		return false
	}
	if err := p.store.Put(ctx, p.key, data); err != nil {
		p.logger.Error("failed to save to storage", "key", p.key, "error", err)
		return false
	}

	p.logger.Debug("saved questions",
		"key", p.key,
		"count", len(questions),
		"elapsed", time.Since(start),
	)
	return true
}

// Load reads the storage record. Absence and unreadable content both yield
// nil, meaning no prior session.
func (p *Persistence) Load(ctx context.Context) []question.Question {
	data, err := p.store.Get(ctx, p.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		p.logger.Error("failed to load from storage", "key", p.key, "error", err)
		return nil
	}

	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		p.logger.Error("failed to parse stored questions", "key", p.key, "error", err)
		return nil
	}
	return questions
}

// timestamped is implemented by stores that record write times.
type timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

// SavedAt reports when the storage record was last written. It reports
// false when the record is absent or the store keeps no timestamps.
func (p *Persistence) SavedAt(ctx context.Context) (time.Time, bool) {
	ts, ok := p.store.(timestamped)
	if !ok {
		return time.Time{}, false
	}
	at, err := ts.UpdatedAt(ctx, p.key)
	if errors.Is(err, store.ErrNotFound) {
		return time.Time{}, false
	}
	if err != nil {
		p.logger.Error("failed to read save time", "key", p.key, "error", err)
		return time.Time{}, false
	}
	return at, true
}

// Clear removes the storage record. Clearing an absent record is a no-op.
func (p *Persistence) Clear(ctx context.Context) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := p.store.Delete(ctx, p.key); err != nil {
		p.logger.Error("failed to clear storage", "key", p.key, "error", err)
	}
}
