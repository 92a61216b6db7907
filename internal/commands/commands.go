// Package commands holds the maintenance operations behind quadflash-ctl.
// They drive the same session controller the HTTP server uses, so imports
// and resets go through validation and persistence exactly once.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/quadflash/backend/internal/domain/question"
	"github.com/quadflash/backend/internal/ingest"
	"github.com/quadflash/backend/internal/service"
)

var ErrNothingLoaded = errors.New("no question set is stored")

// Import validates the JSON file at path and makes it the stored set.
func Import(ctx context.Context, s *service.SessionController, path string) (ingest.Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	res, err := s.IngestRaw(ctx, raw)
	if err != nil {
		return res, fmt.Errorf("import %s: %w", path, err)
	}
	if err := s.Flush(ctx); err != nil {
		return res, fmt.Errorf("flush saves: %w", err)
	}
	if s.State().Unsaved {
		return res, errors.New("questions were validated but could not be saved")
	}
	return res, nil
}

// Export writes the stored set as indented JSON, in the format Import reads.
func Export(s *service.SessionController, w io.Writer) error {
	questions := s.Questions()
	if questions == nil {
		return ErrNothingLoaded
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(questions)
}

// Show renders the stored set as a table with flags and notes, followed by
// the counts and the last save time.
func Show(ctx context.Context, s *service.SessionController, w io.Writer) error {
	questions := s.Questions()
	if questions == nil {
		return ErrNothingLoaded
	}

	data := pterm.TableData{{"#", "Question", "Options", "Doubt", "Important", "Note"}}
	for i, q := range questions {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			q.Question,
			strconv.Itoa(len(q.Options)),
			mark(q.IsDoubt),
			mark(q.IsImportant),
			q.Note,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	counts := question.Count(questions)
	if _, err := fmt.Fprintf(w, "%s\n%d questions, %d doubt, %d important\n",
		table, counts.All, counts.Doubt, counts.Important); err != nil {
		return err
	}
	if at, ok := s.SavedAt(ctx); ok {
		_, err = fmt.Fprintf(w, "last saved %s\n", at.Local().Format(time.DateTime))
	}
	return err
}

// Reset clears the stored set after confirm agrees.
func Reset(ctx context.Context, s *service.SessionController, confirm service.Confirmer) (bool, error) {
	return s.Reset(ctx, confirm)
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
