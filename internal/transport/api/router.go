package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tubecash/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	RegisterRoute       = "/user/register"
	LoginRoute          = "/user/login"
	WalletRoute         = "/user/wallet"
	TransactionsRoute   = "/user/transactions"
	DepositRoute        = "/user/wallet/deposit"
	DepositMethodsRoute = "/user/wallet/deposit/methods"
	WithdrawRoute       = "/user/wallet/withdraw"
	EarningsRoute       = "/user/earnings"
	PlansRoute          = "/user/plans"
	PlanSelectRoute     = "/user/plans/select"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	AccountService AccountServicer
	WalletService  WalletServicer
	PlanService    PlanServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AccountService)
	walletHandler := NewWalletHandler(args.AccountService, args.WalletService)
	plansHandler := NewPlansHandler(args.AccountService, args.PlanService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(WalletRoute, walletHandler.Show)
	api.GET(TransactionsRoute, walletHandler.Statement)
	api.GET(DepositMethodsRoute, walletHandler.DepositMethods)
	api.POST(DepositRoute, walletHandler.Deposit)
	api.POST(WithdrawRoute, walletHandler.Withdraw)
	api.POST(EarningsRoute, walletHandler.ClaimEarning)

	api.GET(PlansRoute, plansHandler.Index)
	api.POST(PlanSelectRoute, plansHandler.Select)
	return r
}
