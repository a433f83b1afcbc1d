package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/internal/transport/api/tokens"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// DefaultPlanName тариф, назначаемый аккаунту при регистрации.
const DefaultPlanName = "Free"

// ReferralBonusAmount бонус рефереру за регистрацию по его коду, в минорных единицах.
const ReferralBonusAmount int64 = 100

const referralCodeLength = 10

type AccountService struct {
	uow            uow.UOW
	accountRepo    AccountRepository
	publisher      SettlementPublisher
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewAccountService(
	u uow.UOW,
	jwtTokenSecret []byte,
	psswd PasswordHasher,
	publisher SettlementPublisher,
) (*AccountService, error) {
	accountRepo, accountRepoErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr
	}
	return &AccountService{
		uow:            u,
		accountRepo:    accountRepo,
		publisher:      publisher,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterAccountArgs struct {
	Username     string
	Password     string
	ReferralCode string
}

// Register создает аккаунт с уникальным реферальным кодом и стартовым тарифом,
// после чего выдает jwt токен. Если указан реферальный код существующего аккаунта,
// в той же транзакции БД рефереру создается pending транзакция referral_bonus;
// неизвестный код молча игнорируется, регистрацию он не ломает.
func (s *AccountService) Register(
	ctx context.Context,
	args RegisterAccountArgs,
) (*domain.Account, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering account: %s", hashErr.Error())
	}

	var account *domain.Account
	var token string
	var bonus *domain.Transaction

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		var createErr error
		account, createErr = accountRepo.Create(c, repoargs.CreateAccount{
			Username:     args.Username,
			Password:     password,
			ReferralCode: newReferralCode(),
			PlanName:     DefaultPlanName,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		var bonusErr error
		bonus, bonusErr = s.createReferralBonus(c, tx, args.ReferralCode)
		if bonusErr != nil {
			return bonusErr
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(account.ID, JWTTokenExpire, s.jwtTokenSecret)
		return tokenErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering account: %w", txErr)
	}

	if bonus != nil {
		_ = s.publisher.TransactionSubmitted(ctx, bonus)
	}
	return account, token, nil
}

// createReferralBonus начисляет pending бонус владельцу реферального кода.
// Пустой или неизвестный код - не ошибка, бонуса просто нет.
func (s *AccountService) createReferralBonus(
	ctx context.Context,
	tx uow.TX,
	referralCode string,
) (*domain.Transaction, error) {
	if referralCode == "" {
		return nil, nil //nolint:nilnil
	}

	accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
		tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr //nolint:wrapcheck
	}

	referrer, referrerErr := accountRepo.FindByReferralCode(ctx, referralCode)
	if referrerErr != nil {
		if errors.Is(referrerErr, domain.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, referrerErr //nolint:wrapcheck
	}

	transactionRepo, transactionRepoErr := uow.GetAs[TransactionRepository](
		tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr //nolint:wrapcheck
	}

	record, recordErr := domain.NewPendingTransaction(domain.PendingTransactionArgs{
		AccountID: referrer.ID,
		Type:      domain.TransactionReferralBonus,
		Amount:    ReferralBonusAmount,
		Note:      "referral signup bonus",
	})
	if recordErr != nil {
		return nil, recordErr
	}
	return transactionRepo.Create(ctx, *record) //nolint:wrapcheck
}

type LoginAccountArgs struct {
	Username string
	Password string
}

// Login аутентификация по паре логин/пароль. Возвращает аккаунт и jwt токен.
func (s *AccountService) Login(
	ctx context.Context,
	args LoginAccountArgs,
) (*domain.Account, string, error) {
	account, findErr := s.accountRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, account.Password) {
		return nil, "", fmt.Errorf("logging in: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(account.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in: %s", tokenErr.Error())
	}
	return account, token, nil
}

// GetByID возвращает аккаунт. Баланс в нем - последнее засеттленное значение
// из стора аккаунтов, клиентская сторона его никогда не пересчитывает.
func (s *AccountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:referralCodeLength])
}
