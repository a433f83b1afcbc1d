package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/logger"
	"github.com/fsdevblog/tubecash/internal/service"
	"github.com/fsdevblog/tubecash/internal/transport/api/mocks"
	"github.com/fsdevblog/tubecash/internal/transport/api/testutils"
	"github.com/fsdevblog/tubecash/internal/transport/api/tokens"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	mockWalletService  *mocks.MockWalletServicer
	jwtSecret          []byte
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockWalletService = mocks.NewMockWalletServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		WalletService:  s.mockWalletService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *WalletHandlerTestSuite) authHeader(userID int64) func(*testutils.RequestOptions) {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}

func (s *WalletHandlerTestSuite) TestShow() {
	var userID int64 = 1

	s.mockAccountService.EXPECT().GetByID(gomock.Any(), userID).
		Return(&domain.Account{ID: userID, Balance: 1500, ReferralCode: "AAAA000000", PlanName: "Free"}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletRoute,
	}, s.authHeader(userID))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body WalletResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.EqualValues(1500, body.Balance)
	s.Equal("Free", body.PlanName)
}

func (s *WalletHandlerTestSuite) TestShow_Unauthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletRoute,
	})
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *WalletHandlerTestSuite) TestDeposit() {
	var userID int64 = 1
	created := domain.Transaction{
		ID:        10,
		AccountID: userID,
		Type:      domain.TransactionDeposit,
		Status:    domain.StatusPending,
		Amount:    1000,
		Method:    domain.MethodBkash,
		Reference: "TRX-1",
		CreatedAt: time.Now(),
	}

	// Валидная заявка
	s.mockWalletService.EXPECT().
		SubmitDeposit(gomock.Any(), userID, domain.MethodBkash, int64(1000), "TRX-1").
		Return(&created, nil)
	// Сумма ниже минимума - сервис возвращает ошибку валидации
	s.mockWalletService.EXPECT().
		SubmitDeposit(gomock.Any(), userID, domain.MethodBkash, int64(100), "TRX-2").
		Return(nil, domain.NewValidationError("amount", "is below the deposit minimum"))
	// Повторный референс отклонен стором
	s.mockWalletService.EXPECT().
		SubmitDeposit(gomock.Any(), userID, domain.MethodBkash, int64(1000), "TRX-DUP").
		Return(nil, domain.NewRejectedError("duplicate payment reference", domain.ErrDuplicateKey))

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "accepted", payload: `{"method":"bkash","amount":1000,"reference":"TRX-1"}`, wantStatus: http.StatusAccepted},
		{name: "below minimum", payload: `{"method":"bkash","amount":100,"reference":"TRX-2"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "duplicate reference", payload: `{"method":"bkash","amount":1000,"reference":"TRX-DUP"}`, wantStatus: http.StatusConflict},
		{name: "malformed json", payload: `{"method":`, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + DepositRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, s.authHeader(userID), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestDepositMethods() {
	var userID int64 = 1

	s.mockWalletService.EXPECT().DepositAccounts().Return(service.DepositAccounts{
		domain.MethodBkash:  "01700000001",
		domain.MethodRocket: "01700000003",
	})

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + DepositMethodsRoute,
	}, s.authHeader(userID))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []struct {
		Method           string `json:"method"`
		ReceivingAccount string `json:"receiving_account"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	// порядок методов фиксирован независимо от порядка итерации map
	s.Require().Len(body, 2)
	s.Equal("bkash", body[0].Method)
	s.Equal("rocket", body[1].Method)
}

func (s *WalletHandlerTestSuite) TestWithdraw() {
	var userID int64 = 1
	created := domain.Transaction{
		ID:        11,
		AccountID: userID,
		Type:      domain.TransactionWithdraw,
		Status:    domain.StatusPending,
		Amount:    500,
		CreatedAt: time.Now(),
	}

	s.mockWalletService.EXPECT().
		SubmitWithdraw(gomock.Any(), userID, domain.MethodNagad, "01811111111", int64(500)).
		Return(&created, nil)
	s.mockWalletService.EXPECT().
		SubmitWithdraw(gomock.Any(), userID, domain.MethodNagad, "01811111111", int64(5000)).
		Return(nil, domain.NewValidationError("amount", "exceeds available balance"))

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "accepted", payload: `{"method":"nagad","account_number":"01811111111","amount":500}`, wantStatus: http.StatusAccepted},
		{name: "exceeds balance", payload: `{"method":"nagad","account_number":"01811111111","amount":5000}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + WithdrawRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, s.authHeader(userID), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestStatement() {
	var userID int64 = 1
	transactions := []domain.Transaction{
		{ID: 2, Type: domain.TransactionEarning, Status: domain.StatusPending, Amount: 50, CreatedAt: time.Now()},
		{ID: 1, Type: domain.TransactionDeposit, Status: domain.StatusApproved, Amount: 500, CreatedAt: time.Now().Add(-time.Hour)},
	}

	s.mockWalletService.EXPECT().
		Statement(gomock.Any(), userID, domain.CategoryAll, uint(0)).
		Return(transactions, service.LedgerSummary{TotalIncome: 500}, nil)
	s.mockWalletService.EXPECT().
		Statement(gomock.Any(), userID, domain.Category("bonuses"), uint(0)).
		Return(nil, service.LedgerSummary{}, domain.NewValidationError("category", "is not a known category"))

	s.Run("default category", func() {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    RouteGroup + TransactionsRoute,
		}, s.authHeader(userID))
		s.Require().NoError(err)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		s.Require().Equal(http.StatusOK, res.StatusCode)

		var body StatementResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Len(body.Transactions, 2)
		s.EqualValues(500, body.TotalIncome)
		s.Zero(body.TotalExpense)
	})

	s.Run("unknown category", func() {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    RouteGroup + TransactionsRoute + "?category=bonuses",
		}, s.authHeader(userID))
		s.Require().NoError(err)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	})

	s.Run("limit is not a number", func() {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodGet,
			URL:    RouteGroup + TransactionsRoute + "?limit=ten",
		}, s.authHeader(userID))
		s.Require().NoError(err)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	})
}

func (s *WalletHandlerTestSuite) TestClaimEarning() {
	var userID int64 = 1
	created := domain.Transaction{
		ID:        12,
		AccountID: userID,
		Type:      domain.TransactionEarning,
		Status:    domain.StatusPending,
		Amount:    10,
		CreatedAt: time.Now(),
	}

	s.mockWalletService.EXPECT().ClaimEarning(gomock.Any(), userID).Return(&created, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + EarningsRoute,
	}, s.authHeader(userID))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusAccepted, res.StatusCode)

	var body TransactionResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("earning", body.Type)
	s.Equal("pending", body.Status)
}

func (s *WalletHandlerTestSuite) TestClaimEarning_DailyLimit() {
	var userID int64 = 1

	s.mockWalletService.EXPECT().ClaimEarning(gomock.Any(), userID).
		Return(nil, domain.NewValidationError("earnings", "daily video limit reached"))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + EarningsRoute,
	}, s.authHeader(userID))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}
