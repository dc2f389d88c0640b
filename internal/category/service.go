package category

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	Load() ([]Category, error)
	Save(rows []Category) error
}

// Service manages category names per type. Every mutation loads the whole
// registry, changes it in memory and saves it back; a failed rule check never
// reaches Save.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// fold returns the case-folded form used for every name comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

func sameName(a, b string) bool {
	return fold(a) == fold(b)
}

// ListNames returns the unique names for t, sorted case-insensitively. Names
// differing only in case collapse to the first one in sorted order.
func (s *Service) ListNames(t Type, includeInactive bool) ([]string, error) {
	rows, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	var names []string

	for _, r := range rows {
		if r.Type != t {
			continue
		}

		if !r.Active && !includeInactive {
			continue
		}

		names = append(names, r.Name)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return fold(names[i]) < fold(names[j])
	})

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		k := fold(n)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, n)
	}

	return out, nil
}

// Options returns the selectable names for t with Other always present and last.
func (s *Service) Options(t Type) ([]string, error) {
	names, err := s.ListNames(t, false)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(names)+1)

	for _, n := range names {
		if IsReserved(n) {
			continue
		}

		out = append(out, n)
	}

	return append(out, Other), nil
}

// Add creates a new active category, or reactivates an archived one with the
// same name (keeping its original casing).
func (s *Service) Add(t Type, name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrEmptyName
	}

	if IsReserved(n) {
		return ErrReservedName
	}

	rows, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	reactivated := false

	for i := range rows {
		if rows[i].Type != t || !sameName(rows[i].Name, n) {
			continue
		}

		if rows[i].Active {
			return fmt.Errorf("category %q: %w", n, ErrDuplicate)
		}

		rows[i].Active = true
		reactivated = true
	}

	if !reactivated {
		rows = append(rows, Category{Type: t, Name: n, Active: true})
	}

	if err := s.repo.Save(rows); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	return nil
}

// Rename changes every row of t named oldName to newName.
func (s *Service) Rename(t Type, oldName, newName string) error {
	o := strings.TrimSpace(oldName)
	n := strings.TrimSpace(newName)

	if o == "" || n == "" {
		return fmt.Errorf("both old and new names are required: %w", ErrEmptyName)
	}

	if IsReserved(o) || IsReserved(n) {
		return fmt.Errorf("cannot rename to or from 'Other': %w", ErrReservedName)
	}

	rows, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	for _, r := range rows {
		if r.Type == t && r.Active && sameName(r.Name, n) {
			return fmt.Errorf("category %q: %w", n, ErrDuplicate)
		}
	}

	changed := false

	for i := range rows {
		if rows[i].Type == t && sameName(rows[i].Name, o) {
			rows[i].Name = n
			changed = true
		}
	}

	if !changed {
		return fmt.Errorf("category %q: %w", o, ErrNotFound)
	}

	if err := s.repo.Save(rows); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	return nil
}

// Delete archives every row of t named name. Unknown names are a no-op.
func (s *Service) Delete(t Type, name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil
	}

	if IsReserved(n) {
		return fmt.Errorf("cannot delete 'Other': %w", ErrReservedName)
	}

	rows, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	for i := range rows {
		if rows[i].Type == t && sameName(rows[i].Name, n) {
			rows[i].Active = false
		}
	}

	if err := s.repo.Save(rows); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	return nil
}
