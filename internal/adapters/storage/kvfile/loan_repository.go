package kvfile

import (
	"context"
	"fmt"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
)

const loansKey = "loans"

// LoanRepository implements the loan repository over the kvfile store.
type LoanRepository struct {
	store *Store
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(store *Store) *LoanRepository {
	return &LoanRepository{store: store}
}

var _ portsrepo.LoanRepositoryFacade = (*LoanRepository)(nil)

func (r *LoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	loans, err := readCollection[domain.Loan](ctx, r.store, loansKey)
	if err != nil {
		return err
	}
	loans = append([]domain.Loan{loan}, loans...)
	return writeCollection(ctx, r.store, loansKey, loans)
}

func (r *LoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loans, err := readCollection[domain.Loan](ctx, r.store, loansKey)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID == loanID {
			return &loans[i], nil
		}
	}
	return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
}

func (r *LoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	return readCollection[domain.Loan](ctx, r.store, loansKey)
}

func (r *LoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	loans, err := readCollection[domain.Loan](ctx, r.store, loansKey)
	if err != nil {
		return err
	}
	for i := range loans {
		if loans[i].ID == loan.ID {
			loans[i] = loan
			return writeCollection(ctx, r.store, loansKey, loans)
		}
	}
	return fmt.Errorf("loan %s: %w", loan.ID, apperrors.ErrNotFound)
}
