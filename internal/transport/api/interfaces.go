package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/service"
)

// AccountServicer интерфейс исключительно для моков.
type AccountServicer interface {
	Register(ctx context.Context, args service.RegisterAccountArgs) (*domain.Account, string, error)
	Login(ctx context.Context, args service.LoginAccountArgs) (*domain.Account, string, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

type WalletServicer interface {
	DepositAccounts() service.DepositAccounts
	SubmitDeposit(
		ctx context.Context,
		accountID int64,
		method domain.PaymentMethod,
		amount int64,
		reference string,
	) (*domain.Transaction, error)
	SubmitWithdraw(
		ctx context.Context,
		accountID int64,
		method domain.PaymentMethod,
		accountNumber string,
		amount int64,
	) (*domain.Transaction, error)
	Statement(
		ctx context.Context,
		accountID int64,
		category domain.Category,
		limit uint,
	) ([]domain.Transaction, service.LedgerSummary, error)
	ClaimEarning(ctx context.Context, accountID int64) (*domain.Transaction, error)
}

type PlanServicer interface {
	ListForAccount(ctx context.Context, accountPlanName string) ([]service.PlanListItem, error)
	SelectPlan(ctx context.Context, accountID, planID int64) (*domain.Transaction, error)
}
