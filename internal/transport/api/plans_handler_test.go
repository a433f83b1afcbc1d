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

type PlansHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	mockPlanService    *mocks.MockPlanServicer
	jwtSecret          []byte
}

func TestPlansHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlansHandlerTestSuite))
}

func (s *PlansHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockPlanService = mocks.NewMockPlanServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		PlanService:    s.mockPlanService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *PlansHandlerTestSuite) authHeader(userID int64) func(*testutils.RequestOptions) {
	token, err := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}

func (s *PlansHandlerTestSuite) TestIndex() {
	var userID int64 = 1

	s.mockAccountService.EXPECT().GetByID(gomock.Any(), userID).
		Return(&domain.Account{ID: userID, PlanName: "Silver"}, nil)
	s.mockPlanService.EXPECT().ListForAccount(gomock.Any(), "Silver").
		Return([]service.PlanListItem{
			{Plan: domain.Plan{ID: 1, Name: "Free", SortOrder: 0, Active: true}},
			{Plan: domain.Plan{ID: 2, Name: "Silver", Price: 5000, SortOrder: 1, Active: true}, Current: true},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PlansRoute,
	}, s.authHeader(userID))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []PlanResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Equal("Free", body[0].Name)
	s.False(body[0].Current)
	s.Equal("Silver", body[1].Name)
	s.True(body[1].Current)
}

func (s *PlansHandlerTestSuite) TestSelect() {
	var userID int64 = 1
	created := domain.Transaction{
		ID:        20,
		AccountID: userID,
		Type:      domain.TransactionPackagePurchase,
		Status:    domain.StatusPending,
		Amount:    5000,
		Note:      "Silver",
		CreatedAt: time.Now(),
	}

	s.mockPlanService.EXPECT().SelectPlan(gomock.Any(), userID, int64(2)).Return(&created, nil)
	s.mockPlanService.EXPECT().SelectPlan(gomock.Any(), userID, int64(99)).
		Return(nil, domain.NewValidationError("plan", "is not available"))

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "accepted", payload: `{"plan_id":2}`, wantStatus: http.StatusAccepted},
		{name: "unknown plan", payload: `{"plan_id":99}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PlanSelectRoute,
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

func (s *PlansHandlerTestSuite) TestSelect_Unauthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + PlanSelectRoute,
		Body:   bytes.NewReader([]byte(`{"plan_id":2}`)),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
