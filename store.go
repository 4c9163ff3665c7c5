package kassa

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// File names of the four independently persisted records.
const (
	salesFile    = "sales.jsonl"
	expensesFile = "expenses.jsonl"
	shiftsFile   = "shifts.jsonl"
	stateFile    = "state.json"
)

// FileStore persists the ledger as four independent records inside a data
// directory. Each record fails or loads on its own, so one corrupt file
// never takes the others down with it.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created
// lazily on the first flush.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the data directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

// Load reads the persisted records and builds a ledger backed by this
// store. A missing record is a normal first run and yields its empty
// default. A corrupt record also degrades to the empty default, but the
// failure is logged so the data loss is visible; the remaining records
// still load.
func (s *FileStore) Load() *Ledger {
	l := NewLedger()
	l.SetFlusher(s)

	loadRecord(s.dir, salesFile, func(r io.Reader) error {
		sales, err := DecodeSales(r)
		if err != nil {
			return err
		}
		l.sales = sales
		return nil
	})
	loadRecord(s.dir, expensesFile, func(r io.Reader) error {
		expenses, err := DecodeExpenses(r)
		if err != nil {
			return err
		}
		l.expenses = expenses
		return nil
	})
	loadRecord(s.dir, shiftsFile, func(r io.Reader) error {
		reports, err := DecodeReports(r)
		if err != nil {
			return err
		}
		l.reports = reports
		return nil
	})
	loadRecord(s.dir, stateFile, func(r io.Reader) error {
		start, err := DecodeState(r)
		if err != nil {
			return err
		}
		l.shiftStart = start
		return nil
	})
	return l
}

// loadRecord opens one record file and hands it to decode. Absence is
// silent; any other failure is logged and the record keeps its default.
func loadRecord(dir, name string, decode func(io.Reader) error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: cannot open %s, falling back to empty: %v", name, err)
		}
		return
	}
	defer f.Close()
	if err := decode(f); err != nil {
		log.Printf("warning: cannot read %s, falling back to empty: %v", name, err)
	}
}

// Flush implements Flusher. Every record is written even when an earlier
// one fails; the failures are joined so the caller sees all of them.
func (s *FileStore) Flush(l *Ledger) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	return errors.Join(
		s.writeRecord(salesFile, func(w io.Writer) error { return EncodeSales(w, l.sales) }),
		s.writeRecord(expensesFile, func(w io.Writer) error { return EncodeExpenses(w, l.expenses) }),
		s.writeRecord(shiftsFile, func(w io.Writer) error { return EncodeReports(w, l.reports) }),
		s.writeRecord(stateFile, func(w io.Writer) error { return EncodeState(w, l.shiftStart) }),
	)
}

// writeRecord writes one record to a temporary file and renames it into
// place, so a failed write never truncates the previous data.
func (s *FileStore) writeRecord(name string, encode func(io.Writer) error) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", name, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not close %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace %s: %w", name, err)
	}
	return nil
}
