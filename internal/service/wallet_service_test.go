package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/internal/service/mocks"
	"github.com/fsdevblog/tubecash/pkg/uow"
	uowmocks "github.com/fsdevblog/tubecash/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockAccountRepo     *mocks.MockAccountRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockPlanRepo        *mocks.MockPlanRepository
	mockPublisher       *mocks.MockSettlementPublisher
	service             *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockPlanRepo = mocks.NewMockPlanRepository(s.mockCtrl)
	s.mockPublisher = mocks.NewMockSettlementPublisher(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	var err error
	s.service, err = NewWalletService(s.mockUOW, s.mockPublisher, DepositAccounts{
		domain.MethodBkash: "01700000001",
		domain.MethodNagad: "01700000002",
	})
	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletServiceTestSuite) TestSubmitDeposit() {
	created := domain.Transaction{
		ID:        1,
		AccountID: 123,
		Type:      domain.TransactionDeposit,
		Status:    domain.StatusPending,
		Amount:    1000,
		Method:    domain.MethodBkash,
		Reference: "TRX-1",
		CreatedAt: time.Now(),
	}

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.PendingTransaction) (*domain.Transaction, error) {
			s.EqualValues(123, record.AccountID)
			s.Equal(domain.TransactionDeposit, record.Type)
			s.EqualValues(1000, record.Amount)
			s.Equal("01700000001", record.AccountNumber)
			s.Equal("TRX-1", record.Reference)
			return &created, nil
		})
	s.mockPublisher.EXPECT().TransactionSubmitted(gomock.Any(), &created).Return(nil)

	result, err := s.service.SubmitDeposit(s.T().Context(), 123, domain.MethodBkash, 1000, "TRX-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, result.Status)
}

func (s *WalletServiceTestSuite) TestSubmitDeposit_DuplicateReference() {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, err := s.service.SubmitDeposit(s.T().Context(), 123, domain.MethodBkash, 1000, "TRX-1")

	var rejErr *domain.RejectedError
	s.Require().ErrorAs(err, &rejErr)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *WalletServiceTestSuite) TestSubmitDeposit_Validation() {
	// до стора такие заявки не доходят: Create не ожидается вовсе
	cases := []struct {
		name      string
		method    domain.PaymentMethod
		amount    int64
		reference string
		wantField string
	}{
		{name: "below minimum", method: domain.MethodBkash, amount: MinDepositAmount - 1, reference: "TRX-1", wantField: "amount"},
		{name: "unknown method", method: "paypal", amount: 1000, reference: "TRX-1", wantField: "method"},
		{name: "missing reference", method: domain.MethodBkash, amount: 1000, reference: "", wantField: "reference"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.SubmitDeposit(s.T().Context(), 123, t.method, t.amount, t.reference)
			var valErr *domain.ValidationError
			s.Require().ErrorAs(err, &valErr)
			s.Equal(t.wantField, valErr.Field)
		})
	}
}

func (s *WalletServiceTestSuite) TestSubmitWithdraw() {
	account := domain.Account{ID: 123, Balance: 1000}
	created := domain.Transaction{
		ID:        2,
		AccountID: account.ID,
		Type:      domain.TransactionWithdraw,
		Status:    domain.StatusPending,
		Amount:    500,
	}

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), account.ID).Return(&account, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.PendingTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionWithdraw, record.Type)
			s.EqualValues(500, record.Amount)
			s.Equal("01811111111", record.AccountNumber)
			return &created, nil
		})
	s.mockPublisher.EXPECT().TransactionSubmitted(gomock.Any(), &created).Return(nil)

	result, err := s.service.SubmitWithdraw(s.T().Context(), account.ID, domain.MethodBkash, "01811111111", 500)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, result.Status)
}

func (s *WalletServiceTestSuite) TestSubmitWithdraw_ValidationOrder() {
	// баланс нужен только последней проверке
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), int64(123)).
		Return(&domain.Account{ID: 123, Balance: 1000}, nil)

	cases := []struct {
		name          string
		accountNumber string
		amount        int64
		wantField     string
		wantReason    string
	}{
		{name: "missing amount wins over missing number", accountNumber: "", amount: 0, wantField: "amount", wantReason: "is required"},
		{name: "missing account number", accountNumber: "", amount: 500, wantField: "account_number", wantReason: "is required"},
		{name: "below minimum", accountNumber: "01811111111", amount: MinWithdrawAmount - 1, wantField: "amount", wantReason: "is below the withdraw minimum"},
		{name: "exceeds balance", accountNumber: "01811111111", amount: 1001, wantField: "amount", wantReason: "exceeds available balance"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.SubmitWithdraw(s.T().Context(), 123, domain.MethodBkash, t.accountNumber, t.amount)
			var valErr *domain.ValidationError
			s.Require().ErrorAs(err, &valErr)
			s.Equal(t.wantField, valErr.Field)
			s.Equal(t.wantReason, valErr.Reason)
		})
	}
}

func (s *WalletServiceTestSuite) TestSubmitWithdraw_UnknownMethod() {
	_, err := s.service.SubmitWithdraw(s.T().Context(), 123, "paypal", "01811111111", 500)

	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
	s.Equal("method", valErr.Field)
}

func (s *WalletServiceTestSuite) TestStatement() {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := []domain.Transaction{
		{ID: 1, CreatedAt: base, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 500},
		{ID: 2, CreatedAt: base.Add(time.Hour), Type: domain.TransactionWithdraw, Status: domain.StatusApproved, Amount: 200},
		{ID: 3, CreatedAt: base.Add(2 * time.Hour), Type: domain.TransactionEarning, Status: domain.StatusPending, Amount: 50},
	}

	s.mockTransactionRepo.EXPECT().
		GetByAccountID(gomock.Any(), int64(123), defaultStatementLimit).
		Return(stored, nil)

	transactions, summary, err := s.service.Statement(s.T().Context(), 123, domain.CategoryIncome, 0)
	s.Require().NoError(err)

	// фильтр отображения не влияет на итоги
	s.EqualValues(500, summary.TotalIncome)
	s.EqualValues(200, summary.TotalExpense)

	s.Require().Len(transactions, 2)
	s.EqualValues(3, transactions[0].ID)
	s.EqualValues(1, transactions[1].ID)
}

func (s *WalletServiceTestSuite) TestStatement_UnknownCategory() {
	_, _, err := s.service.Statement(s.T().Context(), 123, "bonuses", 0)

	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
	s.Equal("category", valErr.Field)
}

func (s *WalletServiceTestSuite) setupEarningTX() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PlanRepoName)).
		Return(s.mockPlanRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
}

func (s *WalletServiceTestSuite) TestClaimEarning() {
	s.setupEarningTX()

	account := domain.Account{ID: 123, PlanName: "Free"}
	plan := domain.Plan{ID: 1, Name: "Free", VideosPerDay: 5, EarningPerVideo: 10, Active: true}
	created := domain.Transaction{
		ID:        3,
		AccountID: account.ID,
		Type:      domain.TransactionEarning,
		Status:    domain.StatusPending,
		Amount:    plan.EarningPerVideo,
	}

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), account.ID).Return(&account, nil)
	s.mockPlanRepo.EXPECT().FindByName(gomock.Any(), "Free").Return(&plan, nil)
	s.mockTransactionRepo.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CountTransactions) (int64, error) {
			s.Equal(account.ID, args.AccountID)
			s.Equal(domain.TransactionEarning, args.Type)
			return 4, nil
		})
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.PendingTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionEarning, record.Type)
			s.EqualValues(10, record.Amount)
			return &created, nil
		})
	s.mockPublisher.EXPECT().TransactionSubmitted(gomock.Any(), &created).Return(nil)

	result, err := s.service.ClaimEarning(s.T().Context(), account.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, result.Status)
}

func (s *WalletServiceTestSuite) TestClaimEarning_DailyLimitReached() {
	s.setupEarningTX()

	account := domain.Account{ID: 123, PlanName: "Free"}
	plan := domain.Plan{ID: 1, Name: "Free", VideosPerDay: 5, EarningPerVideo: 10, Active: true}

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), account.ID).Return(&account, nil)
	s.mockPlanRepo.EXPECT().FindByName(gomock.Any(), "Free").Return(&plan, nil)
	s.mockTransactionRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(5), nil)

	_, err := s.service.ClaimEarning(s.T().Context(), account.ID)

	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
	s.Equal("earnings", valErr.Field)
}
