package service

import (
	"errors"

	"github.com/fsdevblog/tubecash/internal/domain"
)

// Минимальные суммы операций в минорных единицах.
const (
	MinDepositAmount  int64 = 500
	MinWithdrawAmount int64 = 500
)

// DepositAccounts реквизиты приема платежей: метод -> номер счета, на который
// пользователь переводит деньги.
type DepositAccounts map[domain.PaymentMethod]string

type DepositFlowState int

const (
	DepositStateSelectingMethod DepositFlowState = iota
	DepositStateAwaitingProof
)

var ErrFlowState = errors.New("deposit flow: transition not allowed from current state")

// DepositFlow машина состояний пополнения: SelectingMethod -> AwaitingProof -> submit.
// Переход вперед возможен только с валидным методом и суммой не ниже минимума,
// так что до шага подтверждения заведомо некорректное пополнение не доходит.
// После успешного Submit флоу сбрасывается в начальное состояние и пригоден
// для следующего пополнения без остаточного состояния.
type DepositFlow struct {
	state    DepositFlowState
	method   domain.PaymentMethod
	amount   int64
	accounts DepositAccounts
}

func NewDepositFlow(accounts DepositAccounts) *DepositFlow {
	return &DepositFlow{accounts: accounts}
}

func (f *DepositFlow) State() DepositFlowState {
	return f.state
}

func (f *DepositFlow) Amount() int64 {
	return f.amount
}

// SelectMethod переход SelectingMethod -> AwaitingProof. Блокируется при неизвестном
// методе или сумме ниже MinDepositAmount; состояние при этом не меняется.
func (f *DepositFlow) SelectMethod(method domain.PaymentMethod, amount int64) error {
	if f.state != DepositStateSelectingMethod {
		return ErrFlowState
	}
	if _, ok := f.accounts[method]; !ok || !method.Valid() {
		return domain.NewValidationError("method", "is not supported")
	}
	if amount < MinDepositAmount {
		return domain.NewValidationError("amount", "is below the deposit minimum")
	}
	f.method = method
	f.amount = amount
	f.state = DepositStateAwaitingProof
	return nil
}

// ReceivingAccount реквизит выбранного метода для копирования пользователем.
// Чистое чтение, состояние не меняет.
func (f *DepositFlow) ReceivingAccount() (string, error) {
	if f.state != DepositStateAwaitingProof {
		return "", ErrFlowState
	}
	return f.accounts[f.method], nil
}

// Back возврат к выбору метода. Введенная сумма сохраняется.
func (f *DepositFlow) Back() {
	f.state = DepositStateSelectingMethod
}

// Submit завершающий переход: по сумме и референсу платежа строит одну pending
// запись типа deposit и сбрасывает флоу. Без суммы или референса возвращает
// *domain.ValidationError, оставаясь в AwaitingProof.
func (f *DepositFlow) Submit(accountID int64, reference string) (*domain.PendingTransaction, error) {
	if f.state != DepositStateAwaitingProof {
		return nil, ErrFlowState
	}
	if f.amount <= 0 {
		return nil, domain.NewValidationError("amount", "is required")
	}
	if reference == "" {
		return nil, domain.NewValidationError("reference", "is required")
	}

	record, err := domain.NewPendingTransaction(domain.PendingTransactionArgs{
		AccountID:     accountID,
		Type:          domain.TransactionDeposit,
		Amount:        f.amount,
		Method:        f.method,
		AccountNumber: f.accounts[f.method],
		Reference:     reference,
	})
	if err != nil {
		return nil, err
	}
	f.reset()
	return record, nil
}

func (f *DepositFlow) reset() {
	f.state = DepositStateSelectingMethod
	f.method = ""
	f.amount = 0
}
