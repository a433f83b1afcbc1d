package domain

import (
	"time"
)

// Account аккаунт пользователя. Balance хранится в минорных единицах валюты и
// изменяется исключительно внешним процессом сеттлмента (никогда клиентскими флоу).
type Account struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Password     string
	Balance      int64
	ReferralCode string
	PlanName     string
}

// Transaction запись леджера. После создания Type, Amount и AccountID неизменяемы;
// Status переводится из pending только внешним процессом сеттлмента.
type Transaction struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AccountID     int64
	Type          TransactionType
	Status        TransactionStatus
	Amount        int64
	Method        PaymentMethod
	AccountNumber string
	Reference     string
	Note          string
}

// Plan тариф из каталога. Каталог редактируется только внешним админским процессом,
// сервис его исключительно читает.
type Plan struct {
	ID              int64
	Name            string
	Price           int64
	VideosPerDay    int32
	EarningPerVideo int64
	MonthlyEarning  int64
	Features        []string
	Active          bool
	SortOrder       int32
}

// PendingTransaction подготовленная к отправке в леджер запись. Единственный способ
// её получить - конструктор NewPendingTransaction, гарантирующий валидность суммы и типа.
type PendingTransaction struct {
	AccountID     int64
	Type          TransactionType
	Amount        int64
	Method        PaymentMethod
	AccountNumber string
	Reference     string
	Note          string
}

type PendingTransactionArgs struct {
	AccountID     int64
	Type          TransactionType
	Amount        int64
	Method        PaymentMethod
	AccountNumber string
	Reference     string
	Note          string
}

// NewPendingTransaction создает pending запись леджера. Возвращает *ValidationError
// если сумма не положительная или тип не входит в перечисление.
func NewPendingTransaction(args PendingTransactionArgs) (*PendingTransaction, error) {
	if args.AccountID <= 0 {
		return nil, NewValidationError("account", "is required")
	}
	if !args.Type.Valid() {
		return nil, NewValidationError("type", "is not a known transaction type")
	}
	if args.Amount <= 0 {
		return nil, NewValidationError("amount", "must be positive")
	}
	return &PendingTransaction{
		AccountID:     args.AccountID,
		Type:          args.Type,
		Amount:        args.Amount,
		Method:        args.Method,
		AccountNumber: args.AccountNumber,
		Reference:     args.Reference,
		Note:          args.Note,
	}, nil
}
