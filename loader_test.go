package deals

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/deals/date"
)

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "deals.json"))
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want an empty ledger", l.Len())
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "deals.json")
	s := NewFileStore(path)
	want := NewLedger(sampleDeals()...)
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}
	for i, d := range got.Deals() {
		if !d.Equal(want.Deals()[i]) {
			t.Errorf("deal %d = %+v, want %+v", i, d, want.Deals()[i])
		}
	}

	// no temporary file left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory contains %d entries, want only the ledger", len(entries))
	}
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.json")
	if err := os.WriteFile(path, []byte(`[{"date":`), 0644); err != nil {
		t.Fatal(err)
	}

	strict := &FileStore{Path: path, Strict: true}
	if _, err := strict.Load(); !errors.Is(err, ErrPersistence) {
		t.Errorf("strict Load() error = %v, want ErrPersistence", err)
	}

	lenient := NewFileStore(path)
	l, err := lenient.Load()
	if err != nil {
		t.Fatalf("lenient Load() error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("lenient Load() should start with an empty ledger")
	}

	// saving over the unreadable file keeps a backup.
	l.Append(NewDeal(date.New(2024, 7, 21), 1, "QR", D(100), D(0), D(1), []string{"#1"}))
	if err := lenient.Save(l); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup not found: %v", err)
	}
	if string(backup) != `[{"date":` {
		t.Errorf("backup = %q", backup)
	}
	if l, err := strict.Load(); err != nil || l.Len() != 1 {
		t.Errorf("Load() after Save = %v, %v", l, err)
	}
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	// the ledger path is a directory, it cannot be replaced by a file.
	path := filepath.Join(dir, "deals.json")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "keep"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	s := &FileStore{Path: path, Strict: true}
	err := s.Save(NewLedger())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("Save() error = %v, want ErrPersistence", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Save() left %d entries in the directory, want 1", len(entries))
	}
}
