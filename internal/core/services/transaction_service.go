package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/projectfinanceai/finance_tracker_app/internal/apperrors"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountSvc      portssvc.AccountSvcFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
		accountSvc:      accountSvc,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateTransactionInput rejects non-positive amounts, unknown types and
// categories that do not belong to the transaction's type. All failures are
// validation errors; nothing has touched the store yet.
func validateTransactionInput(amount decimal.Decimal, txnType domain.TransactionType, category domain.Category) error {
	if err := accounting.ValidateAmount(amount); err != nil {
		return apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}
	if !txnType.IsValid() {
		return apperrors.NewAppError(400, "invalid transaction type: "+string(txnType), apperrors.ErrValidation)
	}
	if !category.IsValid() {
		return apperrors.NewAppError(400, "unknown category: "+string(category), apperrors.ErrValidation)
	}
	if !category.MatchesType(txnType) {
		return apperrors.NewAppError(400, "category "+string(category)+" does not belong to type "+string(txnType), apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateTransactionInput(req.Amount, req.TransactionType, req.Category); err != nil {
		s.LogError(ctx, err, "Transaction creation rejected",
			slog.String("account_id", accountID))
		return nil, err
	}

	// Resolves the account and enforces ownership; a missing or foreign
	// account surfaces as NotFound before anything is written.
	if _, err := s.accountSvc.GetAccountByID(ctx, accountID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository applies the balance effect and writes the record in one
	// atomic unit against the locked account row.
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", accountID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	if transactionID == "" {
		return nil, apperrors.NewAppError(400, "transaction ID is required", apperrors.ErrValidation)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	// Ownership is checked through the owning account.
	if _, err := s.accountSvc.GetAccountByID(ctx, txn.AccountID, userID); err != nil {
		return nil, err
	}

	return txn, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, accountID, userID); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("account_id", accountID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) ListRecentTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListRecentTransactionsByUser(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions",
			slog.String("user_id", userID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateTransactionInput(req.Amount, req.TransactionType, req.Category); err != nil {
		s.LogError(ctx, err, "Transaction update rejected",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	previous, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := *previous
	next.Amount = req.Amount
	next.TransactionType = req.TransactionType
	next.Category = req.Category
	next.TransactionDate = req.TransactionDate
	next.Description = req.Description
	next.LastUpdatedAt = now
	next.LastUpdatedBy = userID
	// next.AccountID stays previous.AccountID; transactions never move
	// between accounts.

	// The repository reverses the previous effect and applies the new one on
	// the locked balance, in that order, then overwrites the record.
	if err := s.transactionRepo.UpdateTransaction(ctx, next, *previous); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID),
		slog.String("account_id", next.AccountID))
	return &next, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	txn, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return err
	}

	txn.LastUpdatedBy = userID
	if err := s.transactionRepo.DeleteTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID),
		slog.String("account_id", txn.AccountID))
	return nil
}

func (s *transactionService) SumExpensesByCategoryForMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error) {
	total, err := s.transactionRepo.SumExpensesByCategoryAndMonth(ctx, userID, category, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum category spending",
			slog.String("user_id", userID),
			slog.String("category", string(category)))
		return decimal.Zero, err
	}
	return total, nil
}

func (s *transactionService) TotalsForPeriod(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error) {
	income, err := s.transactionRepo.SumAmountByTypeForPeriod(ctx, userID, domain.Income, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum income for period",
			slog.String("user_id", userID))
		return domain.PeriodTotals{}, err
	}
	expense, err := s.transactionRepo.SumAmountByTypeForPeriod(ctx, userID, domain.Expense, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expenses for period",
			slog.String("user_id", userID))
		return domain.PeriodTotals{}, err
	}
	return domain.PeriodTotals{Income: income, Expense: expense}, nil
}

func (s *transactionService) SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error) {
	spending, err := s.transactionRepo.SpendingByCategoryForMonth(ctx, userID, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate category spending",
			slog.String("user_id", userID),
			slog.String("month", month.String()))
		return nil, err
	}
	if spending == nil {
		return []domain.CategorySpend{}, nil
	}
	return spending, nil
}
