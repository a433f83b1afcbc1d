package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tubecash/internal/domain"
)

type WalletHandler struct {
	accountService AccountServicer
	walletService  WalletServicer
}

func NewWalletHandler(accountService AccountServicer, walletService WalletServicer) *WalletHandler {
	return &WalletHandler{
		accountService: accountService,
		walletService:  walletService,
	}
}

type WalletResponse struct {
	Balance      int64  `json:"balance"`
	ReferralCode string `json:"referral_code"`
	PlanName     string `json:"plan"`
}

// Show GET RouteGroup + WalletRoute. Баланс берется из стора аккаунтов как есть:
// pending транзакции его не двигают до сеттлмента.
func (h *WalletHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accountService.GetByID(ctx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &WalletResponse{
		Balance:      account.Balance,
		ReferralCode: account.ReferralCode,
		PlanName:     account.PlanName,
	})
}

type DepositParams struct {
	Method    string `json:"method"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

// Deposit POST RouteGroup + DepositRoute. Заявка на пополнение: метод, сумма и
// референс платежа, подтвержденного во внешней платежной системе.
func (h *WalletHandler) Deposit(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletService.SubmitDeposit(
		ctx, currentUserID, domain.PaymentMethod(params.Method), params.Amount, params.Reference)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(*transaction))
}

// DepositMethods GET RouteGroup + DepositMethodsRoute. Реквизиты приема платежей
// по методам - чистое чтение, доступное до подтверждения перевода.
func (h *WalletHandler) DepositMethods(c *gin.Context) {
	accounts := h.walletService.DepositAccounts()

	type methodResponse struct {
		Method           string `json:"method"`
		ReceivingAccount string `json:"receiving_account"`
	}
	response := make([]methodResponse, 0, len(accounts))
	for _, method := range []domain.PaymentMethod{domain.MethodBkash, domain.MethodNagad, domain.MethodRocket} {
		if account, ok := accounts[method]; ok {
			response = append(response, methodResponse{
				Method:           string(method),
				ReceivingAccount: account,
			})
		}
	}

	c.JSON(http.StatusOK, response)
}

type WithdrawParams struct {
	Method        string `json:"method"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
}

// Withdraw POST RouteGroup + WithdrawRoute. Заявка на вывод. Баланс в ответах
// не меняется до сеттлмента заявки.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletService.SubmitWithdraw(
		ctx, currentUserID, domain.PaymentMethod(params.Method), params.AccountNumber, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(*transaction))
}

type StatementResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  int64                 `json:"total_income"`
	TotalExpense int64                 `json:"total_expense"`
}

// Statement GET RouteGroup + TransactionsRoute. Категория задается query параметром
// category (all по умолчанию); итоги считаются по всей выписке независимо от категории.
func (h *WalletHandler) Statement(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	category := domain.Category(c.DefaultQuery("category", string(domain.CategoryAll)))

	var limit uint
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, parseErr := strconv.ParseUint(rawLimit, 10, 32)
		if parseErr != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "limit is not a number"})
			return
		}
		limit = uint(parsed)
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, summary, err := h.walletService.Statement(ctx, currentUserID, category, limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := StatementResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
	}
	for i, transaction := range transactions {
		response.Transactions[i] = newTransactionResponse(transaction)
	}

	c.JSON(http.StatusOK, response)
}

// ClaimEarning POST RouteGroup + EarningsRoute. Награда за просмотр видео в рамках
// дневного лимита тарифа.
func (h *WalletHandler) ClaimEarning(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletService.ClaimEarning(ctx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(*transaction))
}
