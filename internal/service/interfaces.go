package service

import (
	"context"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, record domain.PendingTransaction) (*domain.Transaction, error)
	GetByAccountID(ctx context.Context, accountID int64, limit uint) ([]domain.Transaction, error)
	Count(ctx context.Context, args repoargs.CountTransactions) (int64, error)
}

type PlanRepository interface {
	GetActive(ctx context.Context) ([]domain.Plan, error)
	FindByID(ctx context.Context, id int64) (*domain.Plan, error)
	FindByName(ctx context.Context, name string) (*domain.Plan, error)
}

// SettlementPublisher отдает принятую pending транзакцию внешнему процессу сеттлмента.
// Публикация наблюдательная: запись в леджере уже есть, фид может отставать.
type SettlementPublisher interface {
	TransactionSubmitted(ctx context.Context, transaction *domain.Transaction) error
}
