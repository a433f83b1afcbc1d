package pgrepo

import (
	"context"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

const accountColumns = `id, created_at, updated_at, username, password, balance, referral_code, plan_name`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (username, password, referral_code, plan_name)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns

	account, err := r.scanAccount(r.db.QueryRow(ctx, query,
		args.Username, args.Password, args.ReferralCode, args.PlanName))
	if err != nil {
		return nil, convertErr(err, "creating account `%s`", args.Username)
	}
	return account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding account by id %d", id)
	}
	return account, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, convertErr(err, "finding account by username `%s`", username)
	}
	return account, nil
}

func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE referral_code = $1`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, convertErr(err, "finding account by referral code `%s`", code)
	}
	return account, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *AccountRepository) scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.Username,
		&account.Password,
		&account.Balance,
		&account.ReferralCode,
		&account.PlanName,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &account, nil
}
