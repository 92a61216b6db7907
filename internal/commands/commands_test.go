package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quadflash/backend/internal/commands"
	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/grader"
	"github.com/quadflash/backend/internal/ingest"
	"github.com/quadflash/backend/internal/service"
	"github.com/quadflash/backend/internal/store"
)

func newSession(t *testing.T, dbPath string) *service.SessionController {
	t.Helper()
	s, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := service.NewSessionController(service.NewPersistence(s, "", 0, logger), grader.Exact{}, logger)
	t.Cleanup(func() {
		c.Close()
		s.Close()
	})
	c.LoadInitial(context.Background())
	return c
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestImport_PersistsAcrossSessions(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quadflash.db")
	ctx := context.Background()

	first := newSession(t, db)
	path := writeFile(t, `{"question": "Q1", "options": ["A", "B"], "answer": "A"}`)
	if _, err := commands.Import(ctx, first, path); err != nil {
		t.Fatalf("import: %v", err)
	}

	second := newSession(t, db)
	got := second.Questions()
	if len(got) != 1 || got[0].Question != "Q1" {
		t.Errorf("expected imported question to be stored, got %+v", got)
	}
}

func TestImport_ReturnsWarnings(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))
	path := writeFile(t, `[{"question": "Q1", "options": ["A", "B"], "answer": "C"}]`)

	res, err := commands.Import(context.Background(), c, path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", res.Warnings)
	}
}

func TestImport_InvalidLeavesStoreEmpty(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))
	path := writeFile(t, `{"question": "Q1"}`)

	_, err := commands.Import(context.Background(), c, path)
	if !errors.Is(err, ingest.ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if c.Questions() != nil {
		t.Error("expected nothing loaded")
	}
}

func TestImport_MissingFile(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))

	_, err := commands.Import(context.Background(), c, filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestExport_MatchesImportFormat(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))
	if err := c.IngestSample(context.Background()); err != nil {
		t.Fatalf("ingest sample: %v", err)
	}

	var buf bytes.Buffer
	if err := commands.Export(c, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	res, err := ingest.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("exported data does not re-import: %v", err)
	}
	if len(res.Questions) != len(ingest.Sample()) {
		t.Errorf("expected %d questions, got %d", len(ingest.Sample()), len(res.Questions))
	}

	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw[0]["question"]; !ok {
		t.Errorf("expected question key in %v", raw[0])
	}
}

func TestExport_NothingLoaded(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))

	if err := commands.Export(c, io.Discard); !errors.Is(err, commands.ErrNothingLoaded) {
		t.Errorf("expected ErrNothingLoaded, got %v", err)
	}
}

func TestShow_ListsFlags(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))
	if err := c.IngestSample(context.Background()); err != nil {
		t.Fatalf("ingest sample: %v", err)
	}
	if _, err := c.ToggleFlag(0, question.FlagDoubt); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var buf bytes.Buffer
	if err := commands.Show(context.Background(), c, &buf); err != nil {
		t.Fatalf("show: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ingest.Sample()[0].Question) {
		t.Errorf("expected first question in output:\n%s", out)
	}
	if !strings.Contains(out, "1 doubt") {
		t.Errorf("expected doubt count in output:\n%s", out)
	}
	if !strings.Contains(out, "last saved ") {
		t.Errorf("expected save time in output:\n%s", out)
	}
}

func TestReset_Declined(t *testing.T) {
	c := newSession(t, filepath.Join(t.TempDir(), "quadflash.db"))
	ctx := context.Background()
	if err := c.IngestSample(ctx); err != nil {
		t.Fatalf("ingest sample: %v", err)
	}

	ok, err := commands.Reset(ctx, c, service.ConfirmFunc(func(string) bool { return false }))
	if err != nil || ok {
		t.Fatalf("expected declined reset, got %v %v", ok, err)
	}
	if c.Questions() == nil {
		t.Error("expected questions kept")
	}
}

func TestReset_ClearsStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "quadflash.db")
	ctx := context.Background()
	c := newSession(t, db)
	if err := c.IngestSample(ctx); err != nil {
		t.Fatalf("ingest sample: %v", err)
	}

	ok, err := commands.Reset(ctx, c, service.ConfirmFunc(func(string) bool { return true }))
	if err != nil || !ok {
		t.Fatalf("expected reset, got %v %v", ok, err)
	}
	if newSession(t, db).Questions() != nil {
		t.Error("expected store cleared")
	}
}
