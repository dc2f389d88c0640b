// Package store keeps the category registry in a CSV file with the header
// type,name,is_active. Rows are archived, never removed.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/csvfile"
)

const (
	columnType   = "type"
	columnName   = "name"
	columnActive = "is_active"
)

var header = []string{columnType, columnName, columnActive}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Initialize writes seed when the registry file does not exist yet and
// reports whether it did. An existing file is never re-seeded.
func (s *Store) Initialize(seed category.Seed) (bool, error) {
	created, err := csvfile.Create(s.path, header, toRecords(seed.Rows()))
	if err != nil {
		return false, fmt.Errorf("initializing categories: %w", err)
	}

	return created, nil
}

// Load returns every registry row in file order. A missing file holds no rows.
func (s *Store) Load() ([]category.Category, error) {
	table, err := csvfile.Read(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []category.Category{}, nil
		}

		return nil, fmt.Errorf("loading categories: %w", err)
	}

	idx := table.Index()
	title := cases.Title(language.Und)
	rows := make([]category.Category, 0, len(table.Records))

	for _, rec := range table.Records {
		typ, _ := idx.Cell(rec, columnType)
		name, _ := idx.Cell(rec, columnName)

		// A blank or absent flag reads as active.
		active := true
		if v, ok := idx.Cell(rec, columnActive); ok {
			v = strings.TrimSpace(v)
			active = v == "" || v == "1"
		}

		rows = append(rows, category.Category{
			Type:   category.Type(title.String(strings.TrimSpace(typ))),
			Name:   strings.TrimSpace(name),
			Active: active,
		})
	}

	return rows, nil
}

// Save rewrites the registry with rows.
func (s *Store) Save(rows []category.Category) error {
	if err := csvfile.Write(s.path, header, toRecords(rows)); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	return nil
}

func toRecords(rows []category.Category) [][]string {
	out := make([][]string, len(rows))

	for i, r := range rows {
		active := "0"
		if r.Active {
			active = "1"
		}

		out[i] = []string{string(r.Type), r.Name, active}
	}

	return out
}
