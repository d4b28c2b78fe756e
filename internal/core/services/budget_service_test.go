package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/projectfinanceai/finance_tracker_app/internal/apperrors"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ExistsByUserCategoryMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (bool, error) {
	args := m.Called(ctx, userID, category, month)
	return args.Bool(0), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetAmount(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock TransactionAggregator ---
type MockTransactionAggregator struct {
	mock.Mock
}

var _ portssvc.TransactionAggregator = (*MockTransactionAggregator)(nil)

func (m *MockTransactionAggregator) SumExpensesByCategoryForMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, category, month)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionAggregator) TotalsForPeriod(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(domain.PeriodTotals), args.Error(1)
}

func (m *MockTransactionAggregator) SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

// --- Test Suite Setup ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockAggregator *MockTransactionAggregator
	service        portssvc.BudgetSvcFacade
	userID         string
	month          domain.BudgetMonth
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockAggregator = new(MockTransactionAggregator)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockAggregator)

	suite.userID = uuid.NewString()
	suite.month = domain.BudgetMonth{Year: 2025, Month: time.March}
}

func (suite *BudgetServiceTestSuite) budget(category domain.Category, amount int64) domain.Budget {
	return domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      suite.userID,
		Category:    category,
		BudgetMonth: suite.month,
		Amount:      decimal.NewFromInt(amount),
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "2025-03",
		Amount:      decimal.NewFromInt(500),
	}

	suite.mockBudgetRepo.On("ExistsByUserCategoryMonth", ctx, suite.userID, domain.Groceries, suite.month).Return(false, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.NotEmpty(budget.BudgetID)
	suite.Equal(domain.Groceries, budget.Category)
	suite.Equal(suite.month, budget.BudgetMonth)
	suite.True(budget.Amount.Equal(decimal.NewFromInt(500)))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateConflicts() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "2025-03",
		Amount:      decimal.NewFromInt(500),
	}

	suite.mockBudgetRepo.On("ExistsByUserCategoryMonth", ctx, suite.userID, domain.Groceries, suite.month).Return(true, nil).Once()

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SameCategoryDifferentMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "2025-04",
		Amount:      decimal.NewFromInt(500),
	}
	april := domain.BudgetMonth{Year: 2025, Month: time.April}

	// A budget for the same category in another month is a different triple.
	suite.mockBudgetRepo.On("ExistsByUserCategoryMonth", ctx, suite.userID, domain.Groceries, april).Return(false, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(april, budget.BudgetMonth)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_IncomeCategoryRejected() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Salary,
		BudgetMonth: "2025-03",
		Amount:      decimal.NewFromInt(500),
	}

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InvalidMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "March 2025",
		Amount:      decimal.NewFromInt(500),
	}

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "2025-03",
		Amount:      decimal.Zero,
	}

	_, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_MissingOwner() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:    domain.Groceries,
		BudgetMonth: "2025-03",
		Amount:      decimal.NewFromInt(500),
	}

	_, err := suite.service.CreateBudget(ctx, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_LimitOnly() {
	ctx := context.Background()
	existing := suite.budget(domain.Dining, 300)

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, existing.BudgetID).Return(&existing, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudgetAmount", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	updated, err := suite.service.UpdateBudget(ctx, existing.BudgetID, dto.UpdateBudgetRequest{
		Amount: decimal.NewFromInt(450),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(450)))
	// Category and month are identity and survive the update untouched.
	suite.Equal(domain.Dining, updated.Category)
	suite.Equal(suite.month, updated.BudgetMonth)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ForeignOwnerHidden() {
	ctx := context.Background()
	existing := suite.budget(domain.Dining, 300)
	otherUser := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, existing.BudgetID).Return(&existing, nil).Once()

	_, err := suite.service.UpdateBudget(ctx, existing.BudgetID, dto.UpdateBudgetRequest{
		Amount: decimal.NewFromInt(450),
	}, otherUser)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpdateBudgetAmount", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_Success() {
	ctx := context.Background()
	existing := suite.budget(domain.Travel, 800)

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, existing.BudgetID).Return(&existing, nil).Once()
	suite.mockBudgetRepo.On("DeleteBudget", ctx, existing.BudgetID).Return(nil).Once()

	err := suite.service.DeleteBudget(ctx, existing.BudgetID, suite.userID)

	suite.Require().NoError(err)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetBudgetSummaries_Arithmetic() {
	ctx := context.Background()
	within := suite.budget(domain.Groceries, 500)
	exceeded := suite.budget(domain.Dining, 500)

	suite.mockBudgetRepo.On("ListBudgetsByUserAndMonth", ctx, suite.userID, suite.month).Return([]domain.Budget{exceeded, within}, nil).Once()
	suite.mockAggregator.On("SumExpensesByCategoryForMonth", ctx, suite.userID, domain.Groceries, suite.month).Return(decimal.NewFromInt(450), nil).Once()
	suite.mockAggregator.On("SumExpensesByCategoryForMonth", ctx, suite.userID, domain.Dining, suite.month).Return(decimal.NewFromInt(520), nil).Once()

	summaries, err := suite.service.GetBudgetSummaries(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)

	// Results come back in canonical category order: Groceries before Dining.
	suite.Equal(domain.Groceries, summaries[0].Budget.Category)
	suite.True(summaries[0].SpentAmount.Equal(decimal.NewFromInt(450)))
	suite.True(summaries[0].Remaining.Equal(decimal.NewFromInt(50)))
	suite.InDelta(90.0, summaries[0].UsagePercent, 0.0001)
	suite.False(summaries[0].Exceeded)

	suite.Equal(domain.Dining, summaries[1].Budget.Category)
	suite.True(summaries[1].Remaining.Equal(decimal.NewFromInt(-20)))
	suite.InDelta(104.0, summaries[1].UsagePercent, 0.0001)
	suite.True(summaries[1].Exceeded)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetSummaries_NoBudgets() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("ListBudgetsByUserAndMonth", ctx, suite.userID, suite.month).Return([]domain.Budget{}, nil).Once()

	summaries, err := suite.service.GetBudgetSummaries(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Empty(summaries)
	suite.mockAggregator.AssertNotCalled(suite.T(), "SumExpensesByCategoryForMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetAvailableCategories() {
	ctx := context.Background()
	taken := []domain.Budget{
		suite.budget(domain.Groceries, 500),
		suite.budget(domain.Travel, 800),
	}

	suite.mockBudgetRepo.On("ListBudgetsByUserAndMonth", ctx, suite.userID, suite.month).Return(taken, nil).Once()

	available, err := suite.service.GetAvailableCategories(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Len(available, len(domain.ExpenseCategories())-2)
	suite.NotContains(available, domain.Groceries)
	suite.NotContains(available, domain.Travel)
	// Canonical order is preserved: Dining is the first remaining category.
	suite.Equal(domain.Dining, available[0])
}

func (suite *BudgetServiceTestSuite) TestListBudgetsByUser_MonthDescThenCategory() {
	ctx := context.Background()
	february := domain.BudgetMonth{Year: 2025, Month: time.February}

	marchDining := suite.budget(domain.Dining, 300)
	marchGroceries := suite.budget(domain.Groceries, 500)
	februaryTravel := suite.budget(domain.Travel, 800)
	februaryTravel.BudgetMonth = february
	februaryGroceries := suite.budget(domain.Groceries, 400)
	februaryGroceries.BudgetMonth = february

	// The repository guarantees month descending only; rows within a month
	// may come back in any order.
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, suite.userID).Return([]domain.Budget{
		marchDining, marchGroceries, februaryTravel, februaryGroceries,
	}, nil).Once()

	budgets, err := suite.service.ListBudgetsByUser(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(budgets, 4)
	suite.Equal(marchGroceries.BudgetID, budgets[0].BudgetID)
	suite.Equal(marchDining.BudgetID, budgets[1].BudgetID)
	suite.Equal(februaryGroceries.BudgetID, budgets[2].BudgetID)
	suite.Equal(februaryTravel.BudgetID, budgets[3].BudgetID)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetByID_EmptyID() {
	ctx := context.Background()

	_, err := suite.service.GetBudgetByID(ctx, "", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "FindBudgetByID", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetByID_ForeignOwnerHidden() {
	ctx := context.Background()
	existing := suite.budget(domain.Housing, 1200)
	otherUser := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, existing.BudgetID).Return(&existing, nil).Once()

	_, err := suite.service.GetBudgetByID(ctx, existing.BudgetID, otherUser)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
