package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewTransactionService creates a new transaction service. It takes the
// wallet repository directly because transaction creation and the paired
// balance adjustment form one logical operation.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, walletRepo portsrepo.WalletRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, walletRepo: walletRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a transaction and adjusts the referenced
// wallet's balance. The wallet collection is persisted first, then the
// ledger; the two writes are not atomic, so an interruption in between
// diverges balance and ledger permanently. Accepted for a single-user,
// single-device, foreground-only app; a reload is the only refresh.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("transaction title is required: %w", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("date must be %s: %w", domain.DateLayout, apperrors.ErrValidation)
	}

	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Invalid transaction amount", slog.String("raw_amount", req.Amount))
		return nil, err
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, req.WalletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve wallet", slog.String("wallet_id", req.WalletID))
		}
		return nil, err
	}

	// No validation beyond this point; everything below performs side effects.
	if req.Type == domain.Expense && amount.GreaterThan(wallet.Balance) {
		s.LogDebug(ctx, "Expense exceeds wallet balance",
			slog.String("wallet_id", wallet.ID),
			slog.String("amount", amount.String()),
			slog.String("balance", wallet.Balance.String()))
		return nil, fmt.Errorf("expense %s exceeds wallet balance %s: %w", amount, wallet.Balance, apperrors.ErrInsufficientBalance)
	}

	if req.Type == domain.Income {
		wallet.Balance = wallet.Balance.Add(amount)
	} else {
		wallet.Balance = wallet.Balance.Sub(amount)
	}

	txn := domain.Transaction{
		ID:        uuid.NewString(),
		Name:      title,
		Amount:    amount,
		Category:  strings.TrimSpace(req.Category),
		Account:   wallet.Name,
		AccountID: wallet.ID,
		Date:      req.Date,
		Type:      req.Type,
		CreatedAt: time.Now(),
	}

	// Wallet first, ledger second. A crash between the two writes leaves the
	// balance moved with no record of why.
	if _, err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to persist wallet balance adjustment",
			slog.String("wallet_id", wallet.ID))
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction after balance adjustment; state has diverged",
			slog.String("wallet_id", wallet.ID),
			slog.String("transaction_id", txn.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.ID),
		slog.String("wallet_id", wallet.ID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", txnID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the month's transactions in insertion-recency
// order, newest first. The stored collection is already newest-first, so
// filtering preserves the order.
func (s *transactionService) ListTransactions(ctx context.Context, filter portssvc.ListTransactionsFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.InMonth(filter.Month, filter.Year) {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		filtered = append(filtered, t)
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.Int("count", len(filtered)),
		slog.Int("month", int(filter.Month)),
		slog.Int("year", filter.Year))
	return filtered, nil
}

// DeleteTransaction removes the ledger record only. The balance adjustment
// from creation is deliberately not reversed: the balance reflects money
// movements that happened, the ledger merely describes them.
func (s *transactionService) DeleteTransaction(ctx context.Context, txnID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, txnID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", txnID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted, balance left untouched", slog.String("transaction_id", txnID))
	return nil
}

func (s *transactionService) Totals(txns []domain.Transaction) portssvc.TransactionTotals {
	totals := portssvc.TransactionTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case domain.Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	return totals
}
