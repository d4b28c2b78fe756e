package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) SumExpensesByCategoryForMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, category, month)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionService) TotalsForPeriod(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(domain.PeriodTotals), args.Error(1)
}

func (m *MockTransactionService) SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, accountID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) ListRecentTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func (m *MockBudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) GetBudgetByID(ctx context.Context, budgetID string, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, budgetID string, userID string) error {
	args := m.Called(ctx, budgetID, userID)
	return args.Error(0)
}

func (m *MockBudgetService) GetBudgetSummaries(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.BudgetSummary, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetSummary), args.Error(1)
}

func (m *MockBudgetService) GetAvailableCategories(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Category, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountSvc     *MockAccountService
	mockTransactionSvc *MockTransactionService
	mockBudgetSvc      *MockBudgetService
	service            portssvc.ReportingService
	userID             string
	month              domain.BudgetMonth
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockTransactionSvc = new(MockTransactionService)
	suite.mockBudgetSvc = new(MockBudgetService)
	suite.service = services.NewReportingService(suite.mockAccountSvc, suite.mockTransactionSvc, suite.mockBudgetSvc)

	suite.userID = uuid.NewString()
	suite.month = domain.BudgetMonth{Year: 2025, Month: time.March}
}

func (suite *ReportingServiceTestSuite) spend(category domain.Category, amount int64) domain.CategorySpend {
	return domain.CategorySpend{Category: category, Spent: decimal.NewFromInt(amount)}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetDashboardOverview_Assembles() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(1200)},
		{AccountID: uuid.NewString(), UserID: suite.userID, Balance: decimal.NewFromInt(-200)},
	}
	totals := domain.PeriodTotals{
		Income:  decimal.NewFromInt(3000),
		Expense: decimal.NewFromInt(1800),
	}
	summaries := []domain.BudgetSummary{{}}
	spending := []domain.CategorySpend{
		suite.spend(domain.Groceries, 450),
		suite.spend(domain.Dining, 120),
	}
	recent := []domain.Transaction{{TransactionID: uuid.NewString()}}

	suite.mockAccountSvc.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockTransactionSvc.On("TotalsForPeriod", ctx, suite.userID, suite.month.Start(), suite.month.End()).Return(totals, nil).Once()
	suite.mockBudgetSvc.On("GetBudgetSummaries", ctx, suite.userID, suite.month).Return(summaries, nil).Once()
	suite.mockTransactionSvc.On("SpendingByCategoryForMonth", ctx, suite.userID, suite.month).Return(spending, nil).Once()
	suite.mockTransactionSvc.On("ListRecentTransactionsByUser", ctx, suite.userID, 5).Return(recent, nil).Once()

	overview, err := suite.service.GetDashboardOverview(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.True(overview.NetWorth.Equal(decimal.NewFromInt(1000)))
	suite.True(overview.MonthlyIncome.Equal(decimal.NewFromInt(3000)))
	suite.True(overview.MonthlyExpenses.Equal(decimal.NewFromInt(1800)))
	suite.True(overview.MonthlyNet.Equal(decimal.NewFromInt(1200)))
	suite.Len(overview.BudgetSummaries, 1)
	suite.Len(overview.CategorySpending, 2)
	suite.Len(overview.RecentTransactions, 1)
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockTransactionSvc.AssertExpectations(suite.T())
	suite.mockBudgetSvc.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardOverview_TopSpendingCategoriesOnly() {
	ctx := context.Background()

	suite.mockAccountSvc.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()
	suite.mockTransactionSvc.On("TotalsForPeriod", ctx, suite.userID, suite.month.Start(), suite.month.End()).Return(domain.PeriodTotals{}, nil).Once()
	suite.mockBudgetSvc.On("GetBudgetSummaries", ctx, suite.userID, suite.month).Return([]domain.BudgetSummary{}, nil).Once()
	suite.mockTransactionSvc.On("ListRecentTransactionsByUser", ctx, suite.userID, 5).Return([]domain.Transaction{}, nil).Once()

	// Seven spending categories; the dashboard keeps the five largest and
	// presents them in canonical category order.
	suite.mockTransactionSvc.On("SpendingByCategoryForMonth", ctx, suite.userID, suite.month).Return([]domain.CategorySpend{
		suite.spend(domain.Groceries, 120),
		suite.spend(domain.Dining, 80),
		suite.spend(domain.Transportation, 30),
		suite.spend(domain.Housing, 900),
		suite.spend(domain.Utilities, 60),
		suite.spend(domain.Healthcare, 45),
		suite.spend(domain.Entertainment, 15),
	}, nil).Once()

	overview, err := suite.service.GetDashboardOverview(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Require().Len(overview.CategorySpending, 5)
	want := []domain.Category{domain.Groceries, domain.Dining, domain.Housing, domain.Utilities, domain.Healthcare}
	got := make([]domain.Category, 0, len(overview.CategorySpending))
	for _, spend := range overview.CategorySpending {
		got = append(got, spend.Category)
	}
	suite.Equal(want, got)
	suite.NotContains(got, domain.Transportation)
	suite.NotContains(got, domain.Entertainment)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
