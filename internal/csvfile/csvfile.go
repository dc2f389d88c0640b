// Package csvfile holds the flat-file plumbing shared by the ledger and the
// category registry: header-indexed reads, full rewrites and appends.
//
// Files are read and written without locking. A single process owning the
// data directory is assumed.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	enc "github.com/MrJamesThe3rd/gillpay/internal/encoding"
)

// Table is a decoded CSV file: the header and every following record.
type Table struct {
	Header  []string
	Records [][]string
}

// Index maps trimmed header names to their column position.
type Index map[string]int

// Index returns the column positions of the header.
func (t Table) Index() Index {
	idx := make(Index, len(t.Header))

	for i, name := range t.Header {
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; name != "" && !dup {
			idx[name] = i
		}
	}

	return idx
}

// Cell returns the value of column name in rec, and whether the column exists
// in this file and the record is long enough to hold it.
func (idx Index) Cell(rec []string, name string) (string, bool) {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return "", false
	}

	return rec[i], true
}

// Read loads a CSV file. A missing file returns an error matching
// os.ErrNotExist. Blank lines are skipped and records may vary in length.
func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	utf8r, err := enc.NewUTF8Reader(f)
	if err != nil {
		return Table{}, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return Table{}, nil
	}

	return Table{Header: rows[0], Records: rows[1:]}, nil
}

// Exists reports whether path is present.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Create writes a new file holding header and rows, creating parent
// directories as needed. An existing file is left untouched and reported as
// created=false.
func Create(path string, header []string, rows [][]string) (bool, error) {
	ok, err := Exists(path)
	if err != nil {
		return false, err
	}

	if ok {
		return false, nil
	}

	if err := Write(path, header, rows); err != nil {
		return false, err
	}

	return true, nil
}

// Write replaces the file at path with header followed by rows.
func Write(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := writeRows(f, append([][]string{header}, rows...)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Append adds rows to the end of an existing file.
func Append(path string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}

	if err := writeRows(f, rows); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
