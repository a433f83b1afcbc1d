package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

const defaultStatementLimit uint = 100

type WalletService struct {
	uow             uow.UOW
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	publisher       SettlementPublisher
	depositAccounts DepositAccounts
}

func NewWalletService(
	u uow.UOW,
	publisher SettlementPublisher,
	depositAccounts DepositAccounts,
) (*WalletService, error) {
	accountRepo, accountRepoErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr
	}
	transactionRepo, transactionRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &WalletService{
		uow:             u,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
		depositAccounts: depositAccounts,
	}, nil
}

// DepositAccounts реквизиты приема платежей для показа пользователю.
func (s *WalletService) DepositAccounts() DepositAccounts {
	return s.depositAccounts
}

// SubmitDeposit проводит заявку на пополнение через DepositFlow и записывает ровно одну
// pending транзакцию типа deposit. Дубликат референса платежа отклоняется стором
// и возвращается как *domain.RejectedError - повторять такую отправку автоматически нельзя.
// Баланс аккаунта не меняется: его изменит только внешний сеттлмент.
func (s *WalletService) SubmitDeposit(
	ctx context.Context,
	accountID int64,
	method domain.PaymentMethod,
	amount int64,
	reference string,
) (*domain.Transaction, error) {
	flow := NewDepositFlow(s.depositAccounts)
	if err := flow.SelectMethod(method, amount); err != nil {
		return nil, err
	}
	record, recordErr := flow.Submit(accountID, reference)
	if recordErr != nil {
		return nil, recordErr
	}

	created, createErr := s.transactionRepo.Create(ctx, *record)
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, domain.NewRejectedError("duplicate payment reference", createErr)
		}
		return nil, fmt.Errorf("submitting deposit: %w", createErr)
	}

	_ = s.publisher.TransactionSubmitted(ctx, created)
	return created, nil
}

// SubmitWithdraw валидирует заявку на вывод в фиксированном порядке: наличие суммы
// и реквизита, минимум, достаточность баланса. Возвращается только первая ошибка.
// При успехе создается одна pending транзакция типа withdraw; баланс не декрементится -
// отображаемый баланс всегда равен последнему засеттленному значению.
func (s *WalletService) SubmitWithdraw(
	ctx context.Context,
	accountID int64,
	method domain.PaymentMethod,
	accountNumber string,
	amount int64,
) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "is required")
	}
	if accountNumber == "" {
		return nil, domain.NewValidationError("account_number", "is required")
	}
	if !method.Valid() {
		return nil, domain.NewValidationError("method", "is not supported")
	}
	if amount < MinWithdrawAmount {
		return nil, domain.NewValidationError("amount", "is below the withdraw minimum")
	}

	account, accountErr := s.accountRepo.FindByID(ctx, accountID)
	if accountErr != nil {
		return nil, fmt.Errorf("submitting withdraw: %w", accountErr)
	}
	if amount > account.Balance {
		return nil, domain.NewValidationError("amount", "exceeds available balance")
	}

	record, recordErr := domain.NewPendingTransaction(domain.PendingTransactionArgs{
		AccountID:     accountID,
		Type:          domain.TransactionWithdraw,
		Amount:        amount,
		Method:        method,
		AccountNumber: accountNumber,
	})
	if recordErr != nil {
		return nil, recordErr
	}

	created, createErr := s.transactionRepo.Create(ctx, *record)
	if createErr != nil {
		return nil, fmt.Errorf("submitting withdraw: %w", createErr)
	}

	_ = s.publisher.TransactionSubmitted(ctx, created)
	return created, nil
}

// Statement возвращает выписку по выбранной категории и агрегаты. Агрегаты всегда
// считаются по всему полученному набору: фильтр отображения на итоги не влияет.
func (s *WalletService) Statement(
	ctx context.Context,
	accountID int64,
	category domain.Category,
	limit uint,
) ([]domain.Transaction, LedgerSummary, error) {
	if !category.Valid() {
		return nil, LedgerSummary{}, domain.NewValidationError("category", "is not a known category")
	}
	if limit == 0 {
		limit = defaultStatementLimit
	}

	transactions, err := s.transactionRepo.GetByAccountID(ctx, accountID, limit)
	if err != nil {
		return nil, LedgerSummary{}, fmt.Errorf("loading statement: %w", err)
	}

	return FilterByCategory(transactions, category), Summarize(transactions), nil
}

// ClaimEarning начисляет награду за просмотр видео: одна pending транзакция типа
// earning на сумму из тарифа аккаунта. Дневной лимит тарифа проверяется и запись
// создается внутри одной транзакции БД, чтобы лимит нельзя было перешагнуть
// конкурентными заявками.
func (s *WalletService) ClaimEarning(ctx context.Context, accountID int64) (*domain.Transaction, error) {
	var created *domain.Transaction

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		planRepo, planRepoErr := uow.GetAs[PlanRepository](
			tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planRepoErr != nil {
			return planRepoErr //nolint:wrapcheck
		}

		account, accountErr := accountRepo.FindByID(c, accountID)
		if accountErr != nil {
			return accountErr //nolint:wrapcheck
		}

		plan, planErr := planRepo.FindByName(c, account.PlanName)
		if planErr != nil {
			if errors.Is(planErr, domain.ErrRecordNotFound) {
				return domain.NewValidationError("plan", "is not available")
			}
			return planErr //nolint:wrapcheck
		}

		claimed, claimedErr := transactionRepo.Count(c, repoargs.CountTransactions{
			AccountID: accountID,
			Type:      domain.TransactionEarning,
			Since:     startOfDayUTC(time.Now()),
		})
		if claimedErr != nil {
			return claimedErr //nolint:wrapcheck
		}
		if claimed >= int64(plan.VideosPerDay) {
			return domain.NewValidationError("earnings", "daily video limit reached")
		}

		record, recordErr := domain.NewPendingTransaction(domain.PendingTransactionArgs{
			AccountID: accountID,
			Type:      domain.TransactionEarning,
			Amount:    plan.EarningPerVideo,
			Note:      "video reward (" + plan.Name + ")",
		})
		if recordErr != nil {
			return recordErr
		}

		var createErr error
		created, createErr = transactionRepo.Create(c, *record)
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		var valErr *domain.ValidationError
		if errors.As(txErr, &valErr) {
			return nil, txErr
		}
		return nil, fmt.Errorf("claiming earning: %w", txErr)
	}

	_ = s.publisher.TransactionSubmitted(ctx, created)
	return created, nil
}

// startOfDayUTC дневной лимит просмотров считается от полуночи UTC.
func startOfDayUTC(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
