package services

import (
	"context"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
)

// AccountSvcFacade defines the account operations exposed to callers.
// The userID parameter is always a resolved owner identifier supplied by the
// caller; the core never performs identity lookup itself.
type AccountSvcFacade interface {
	// CreateAccount creates a new account with its initial balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves an account. Accounts owned by other users are
	// reported as not found.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by the user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// UpdateAccount updates name/description. The balance is not reachable
	// from here; it only moves through transaction mutations.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
}
