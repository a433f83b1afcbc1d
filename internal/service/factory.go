package service

import (
	"fmt"

	"github.com/fsdevblog/tubecash/pkg/uow"
)

type AppServices struct {
	AccountService *AccountService
	WalletService  *WalletService
	PlanService    *PlanService
}

type FactoryArgs struct {
	JWTSecret       []byte
	Hasher          PasswordHasher
	Publisher       SettlementPublisher
	DepositAccounts DepositAccounts
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	accountService, accountServiceErr := NewAccountService(
		unitOfWork, args.JWTSecret, args.Hasher, args.Publisher)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(
		unitOfWork, args.Publisher, args.DepositAccounts)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	planService, planServiceErr := NewPlanService(unitOfWork, args.Publisher)
	if planServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", planServiceErr.Error())
	}

	return &AppServices{
		AccountService: accountService,
		WalletService:  walletService,
		PlanService:    planService,
	}, nil
}
