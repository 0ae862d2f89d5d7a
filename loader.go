package deals

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Store persists a whole ledger at once.
type Store interface {
	// Load returns the persisted ledger, an empty one if nothing was persisted yet.
	Load() (*Ledger, error)
	// Save replaces the persisted ledger, atomically.
	Save(*Ledger) error
}

// FileStore persists the ledger in a single JSON file.
type FileStore struct {
	Path string
	// Strict makes Load fail on an unreadable file. Otherwise an unreadable
	// file is logged and treated as an empty ledger.
	Strict bool

	unreadable atomic.Bool // the last Load fell back to an empty ledger
}

// NewFileStore returns a lenient FileStore for the given path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads the ledger file. A missing file is an empty ledger.
func (s *FileStore) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.unreadable.Store(false)
		return NewLedger(), nil
	}
	if err == nil {
		s.unreadable.Store(false)
		var l *Ledger
		l, err = DecodeLedger(bytes.NewReader(data))
		if err == nil {
			return l, nil
		}
	}
	if s.Strict {
		return nil, fmt.Errorf("%w: could not load ledger file %q: %w", ErrPersistence, s.Path, err)
	}
	log.Printf("warning, ledger file %q is unreadable, starting with an empty ledger: %v", s.Path, err)
	s.unreadable.Store(true)
	return NewLedger(), nil
}

// Save writes the ledger to a temporary file next to Path and renames it
// over Path, so that the file is either fully replaced or left untouched.
//
// If the last Load could not read the file, it is kept as Path+".bak"
// before being replaced.
func (s *FileStore) Save(l *Ledger) (err error) {
	dir := filepath.Dir(s.Path)
	if s.unreadable.Load() {
		if err := os.Rename(s.Path, s.Path+".bak"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: could not keep unreadable ledger %q: %w", ErrPersistence, s.Path, err)
		}
		log.Printf("warning, unreadable ledger file kept as %q", s.Path+".bak")
		s.unreadable.Store(false)
	}
	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrPersistence, s.Path, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("%w: error opening ledger file %q for writing: %w", ErrPersistence, s.Path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: could not sync ledger file %q: %w", ErrPersistence, f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: could not close ledger file %q: %w", ErrPersistence, f.Name(), err)
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := os.Rename(f.Name(), s.Path); err != nil {
		return fmt.Errorf("%w: could not replace ledger file %q: %w", ErrPersistence, s.Path, err)
	}
	return nil
}
