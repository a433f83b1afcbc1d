package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

type PlanService struct {
	uow             uow.UOW
	planRepo        PlanRepository
	transactionRepo TransactionRepository
	publisher       SettlementPublisher
}

func NewPlanService(u uow.UOW, publisher SettlementPublisher) (*PlanService, error) {
	planRepo, planRepoErr := uow.GetRepositoryAs[PlanRepository](
		u, uow.RepositoryName(repoargs.PlanRepoName))
	if planRepoErr != nil {
		return nil, planRepoErr
	}
	transactionRepo, transactionRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &PlanService{
		uow:             u,
		planRepo:        planRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}, nil
}

// PlanListItem тариф каталога с вычисленным признаком текущего тарифа аккаунта.
type PlanListItem struct {
	domain.Plan
	Current bool
}

// ListForAccount возвращает активные тарифы по возрастанию sort_order. Текущим
// помечается тариф с точным (чувствительным к регистру) совпадением имени с тарифом
// аккаунта; при дубликатах имен выигрывает первый по sort_order, так что текущим
// не бывает помечено больше одного тарифа.
func (s *PlanService) ListForAccount(ctx context.Context, accountPlanName string) ([]PlanListItem, error) {
	plans, err := s.planRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}

	items := make([]PlanListItem, len(plans))
	marked := false
	for i, plan := range plans {
		current := !marked && plan.Name == accountPlanName
		if current {
			marked = true
		}
		items[i] = PlanListItem{Plan: plan, Current: current}
	}
	return items, nil
}

// SelectPlan логирует выбор тарифа как pending транзакцию package_purchase.
// Сам тариф аккаунта здесь не меняется: заявку актуирует внешний процесс.
func (s *PlanService) SelectPlan(ctx context.Context, accountID, planID int64) (*domain.Transaction, error) {
	plan, planErr := s.planRepo.FindByID(ctx, planID)
	if planErr != nil {
		if errors.Is(planErr, domain.ErrRecordNotFound) {
			return nil, domain.NewValidationError("plan", "is not available")
		}
		return nil, fmt.Errorf("selecting plan: %w", planErr)
	}
	if !plan.Active {
		return nil, domain.NewValidationError("plan", "is not available")
	}
	if plan.Price <= 0 {
		return nil, domain.NewValidationError("plan", "is not purchasable")
	}

	record, recordErr := domain.NewPendingTransaction(domain.PendingTransactionArgs{
		AccountID: accountID,
		Type:      domain.TransactionPackagePurchase,
		Amount:    plan.Price,
		Note:      plan.Name,
	})
	if recordErr != nil {
		return nil, recordErr
	}

	created, createErr := s.transactionRepo.Create(ctx, *record)
	if createErr != nil {
		return nil, fmt.Errorf("selecting plan: %w", createErr)
	}

	_ = s.publisher.TransactionSubmitted(ctx, created)
	return created, nil
}
