package domain

type TransactionType string

const (
	TransactionDeposit         TransactionType = "deposit"
	TransactionWithdraw        TransactionType = "withdraw"
	TransactionEarning         TransactionType = "earning"
	TransactionReferralBonus   TransactionType = "referral_bonus"
	TransactionPackagePurchase TransactionType = "package_purchase"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdraw, TransactionEarning,
		TransactionReferralBonus, TransactionPackagePurchase:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

type PaymentMethod string

const (
	MethodBkash  PaymentMethod = "bkash"
	MethodNagad  PaymentMethod = "nagad"
	MethodRocket PaymentMethod = "rocket"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodBkash, MethodNagad, MethodRocket:
		return true
	}
	return false
}

// Category категория отображения транзакции в выписке.
type Category string

const (
	CategoryAll     Category = "all"
	CategoryIncome  Category = "income"
	CategoryExpense Category = "expense"
	// CategoryOther отдельная корзина для неизвестных типов: транзакция с типом вне
	// перечисления не должна ни пропасть из выписки, ни попасть в доходы.
	CategoryOther Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryIncome, CategoryExpense, CategoryOther:
		return true
	}
	return false
}

// CategoryOf возвращает категорию отображения для типа транзакции.
func CategoryOf(t TransactionType) Category {
	switch t {
	case TransactionDeposit, TransactionEarning, TransactionReferralBonus:
		return CategoryIncome
	case TransactionWithdraw, TransactionPackagePurchase:
		return CategoryExpense
	default:
		return CategoryOther
	}
}
