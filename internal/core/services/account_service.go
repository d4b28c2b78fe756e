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
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if userID == "" {
		err := apperrors.NewAppError(400, "owner is required to create an account", apperrors.ErrValidation)
		s.LogError(ctx, err, "Missing owner on account creation")
		return nil, err
	}
	if !req.AccountType.IsValid() {
		err := apperrors.NewAppError(400, "invalid account type: "+string(req.AccountType), apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid account type", slog.String("account_type", string(req.AccountType)))
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		Balance:     req.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Accounts owned by someone else are reported as missing rather than
	// forbidden, to avoid leaking their existence.
	if account.UserID != userID {
		s.LogDebug(ctx, "Account found but owned by a different user",
			slog.String("account_id", accountID),
			slog.String("requesting_user", userID))
		return nil, apperrors.ErrNotFound
	}

	return account, nil
}

func (s *accountService) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("user_id", userID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("user_id", userID))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	now := time.Now()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	// The balance is never written here; it only moves through transaction
	// mutations against the ledger.
	if err := s.accountRepo.UpdateAccountDetails(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}
