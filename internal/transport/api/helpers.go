package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего аккаунта. ID устанавливается
// в middlewares.AuthRequired. Если значения нет или ошибка утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDValue, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDValue.(int64)
	if !ok {
		return 0
	}
	return userID
}

// abortWithServiceError единая раскладка ошибок сервисного слоя по http статусам:
// валидация - 422, отклонение стором - 409, нет записи - 404, недоступный стор - 503.
// Сбой границы не затирает последнее показанное клиенту состояние: он только
// сигнализируется статусом, без частичной записи.
func abortWithServiceError(c *gin.Context, err error) {
	var valErr *domain.ValidationError
	var rejErr *domain.RejectedError

	switch {
	case errors.As(err, &valErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErr.Error()})
	case errors.As(err, &rejErr):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": rejErr.Error()})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrUnknown):
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

type TransactionResponse struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Reference     string `json:"reference,omitempty"`
	Note          string `json:"note,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func newTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		Status:        string(t.Status),
		Amount:        t.Amount,
		Method:        string(t.Method),
		AccountNumber: t.AccountNumber,
		Reference:     t.Reference,
		Note:          t.Note,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
