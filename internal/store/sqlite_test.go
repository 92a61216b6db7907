package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/quadflash/backend/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGet_Missing(t *testing.T) {
	s := openStore(t)

	_, err := s.Get(context.Background(), "quadflash_data")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPutGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "k", []byte(`[2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[2]` {
		t.Errorf("expected latest value, got %s", got)
	}

	if _, err := s.UpdatedAt(ctx, "k"); err != nil {
		t.Errorf("updated_at: %v", err)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	s.Put(ctx, "k", []byte(`[]`))
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("expected second delete to succeed, got %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put(ctx, "k", []byte(`["kept"]`))
	s.Close()

	s, err = store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != `["kept"]` {
		t.Errorf("expected value to survive reopen, got %s, %v", got, err)
	}
}
