package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// loanService implements the LoanSvcFacade interface.
type loanService struct {
	BaseService
	loanRepo   portsrepo.LoanRepositoryFacade
	walletRepo portsrepo.WalletReader
}

// NewLoanService creates a new loan service. The wallet reader resolves the
// optional, purely informational wallet linkage.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, walletRepo portsrepo.WalletReader) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo, walletRepo: walletRepo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("loan name is required: %w", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown loan type %q: %w", req.Type, apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("date must be %s: %w", domain.DateLayout, apperrors.ErrValidation)
	}

	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Invalid loan amount", slog.String("raw_amount", req.Amount))
		return nil, err
	}

	loan := domain.Loan{
		ID:        uuid.NewString(),
		Name:      name,
		Amount:    amount,
		Note:      strings.TrimSpace(req.Note),
		Date:      req.Date,
		Type:      req.Type,
		Status:    domain.LoanActive,
		CreatedAt: time.Now(),
	}

	// Wallet linkage is informational only; no balance adjustment occurs
	// for loans.
	if req.WalletID != nil && *req.WalletID != "" {
		wallet, err := s.walletRepo.FindWalletByID(ctx, *req.WalletID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to resolve wallet for loan", slog.String("wallet_id", *req.WalletID))
			}
			return nil, err
		}
		loan.Account = wallet.Name
		loan.AccountID = wallet.ID
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("loan_id", loan.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan created successfully",
		slog.String("loan_id", loan.ID),
		slog.String("type", string(loan.Type)))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan", slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, err
	}
	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].CreatedAt.After(loans[j].CreatedAt)
	})
	return loans, nil
}

// MarkLoanPaid transitions a loan from active to paid. Paid is terminal;
// marking an already paid loan fails.
func (s *loanService) MarkLoanPaid(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load loan for settlement", slog.String("loan_id", loanID))
		}
		return nil, err
	}

	if loan.Status == domain.LoanPaid {
		return nil, fmt.Errorf("loan %s is already paid: %w", loanID, apperrors.ErrValidation)
	}

	loan.Status = domain.LoanPaid
	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to mark loan paid", slog.String("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan marked paid", slog.String("loan_id", loanID))
	return loan, nil
}

func (s *loanService) Totals(loans []domain.Loan) portssvc.LoanTotals {
	totals := portssvc.LoanTotals{Get: decimal.Zero, Give: decimal.Zero}
	for _, l := range loans {
		if l.Status == domain.LoanPaid {
			continue
		}
		switch l.Type {
		case domain.LoanGet:
			totals.Get = totals.Get.Add(l.Amount)
		case domain.LoanGive:
			totals.Give = totals.Give.Add(l.Amount)
		}
	}
	return totals
}
