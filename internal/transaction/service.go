package transaction

import (
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	LoadAll() ([]Transaction, error)
	Append(tx Transaction) error
	AppendMany(txs []Transaction) error
	FilterByColumn(column, value string) ([]Transaction, error)
	FilterByDateRange(r DateRange) ([]Transaction, error)
	IsDuplicate(tx Transaction) (bool, error)
}

type Service struct {
	repo      Repository
	validator *Validator
}

func NewService(repo Repository, categories Categories) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(categories),
	}
}

// Check normalizes and validates d, and reports whether an equivalent
// transaction is already in the ledger. Nothing is written.
func (s *Service) Check(d Draft) (Transaction, bool, error) {
	tx, err := s.validator.Validate(NormalizeDraft(d))
	if err != nil {
		return Transaction{}, false, err
	}

	dup, err := s.repo.IsDuplicate(tx)
	if err != nil {
		return Transaction{}, false, fmt.Errorf("checking duplicates: %w", err)
	}

	return tx, dup, nil
}

// Post validates d and appends it. A duplicate is refused with ErrDuplicate
// unless allowDuplicate is set; the caller decides whether to ask and retry.
func (s *Service) Post(d Draft, allowDuplicate bool) (Transaction, error) {
	tx, dup, err := s.Check(d)
	if err != nil {
		return Transaction{}, err
	}

	if dup && !allowDuplicate {
		return tx, fmt.Errorf("%w: %s %s %s on %s", ErrDuplicate, tx.Kind, tx.Category, FormatAmount(tx.Amount), tx.Date)
	}

	if err := s.repo.Append(tx); err != nil {
		return Transaction{}, fmt.Errorf("saving transaction: %w", err)
	}

	return tx, nil
}

// List returns the ledger rows matching filter, in file order.
func (s *Service) List(filter ListFilter) ([]Transaction, error) {
	var (
		txs []Transaction
		err error
	)

	if filter.Range.IsZero() {
		txs, err = s.repo.LoadAll()
	} else {
		txs, err = s.repo.FilterByDateRange(filter.Range)
	}

	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	out := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		if filter.Kind != nil && tx.Kind.Normalize() != filter.Kind.Normalize() {
			continue
		}

		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}

		out = append(out, tx)
	}

	return out, nil
}

// ListBy returns the rows whose column equals value.
func (s *Service) ListBy(column, value string) ([]Transaction, error) {
	return s.repo.FilterByColumn(column, value)
}

// Rejection is an imported draft that failed validation.
type Rejection struct {
	Draft Draft
	Err   error
}

type ImportResult struct {
	Imported   []Transaction
	Duplicates []Transaction
	Rejected   []Rejection
}

// Import validates every draft and appends the valid ones that are not
// already in the ledger or earlier in the same batch. Duplicates and
// rejections are returned for the caller to review; see ImportDuplicates.
func (s *Service) Import(drafts []Draft) (*ImportResult, error) {
	result := &ImportResult{}
	if len(drafts) == 0 {
		return result, nil
	}

	existing, err := s.repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	seen := make(map[DuplicateKey]struct{}, len(existing)+len(drafts))
	for _, tx := range existing {
		seen[KeyOf(tx)] = struct{}{}
	}

	var fresh []Transaction

	for _, d := range drafts {
		tx, err := s.validator.Validate(NormalizeDraft(d))
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Draft: d, Err: err})
			continue
		}

		k := KeyOf(tx)
		if _, dup := seen[k]; dup {
			result.Duplicates = append(result.Duplicates, tx)
			continue
		}

		seen[k] = struct{}{}
		fresh = append(fresh, tx)
	}

	if len(fresh) > 0 {
		if err := s.repo.AppendMany(fresh); err != nil {
			return nil, fmt.Errorf("saving transactions: %w", err)
		}
	}

	result.Imported = fresh

	return result, nil
}

// ImportDuplicates appends duplicates the user chose to keep.
func (s *Service) ImportDuplicates(txs []Transaction) error {
	if err := s.repo.AppendMany(txs); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	return nil
}
