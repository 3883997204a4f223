package networth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultLedgerFile is the stored asset file name.
const DefaultLedgerFile = "assets.json"

// LoadLedger reads the whole asset tree from path. A missing file is
// not an error: it loads as a seeded empty ledger, exactly as if the
// tool were run for the first time.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the whole asset tree to path. The file is written
// to a temporary sibling first and renamed into place, so a crash
// mid-write never leaves a truncated store behind.
func SaveLedger(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for %q: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("cannot create temp file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot encode ledger to %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
