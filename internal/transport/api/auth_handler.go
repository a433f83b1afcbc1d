package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/service"
)

type AuthHandler struct {
	accountService AccountServicer
}

func NewAuthHandler(accountService AccountServicer) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

type RegisterParams struct {
	Username     string `binding:"required,min=1,max=30"  json:"login"`
	Password     string `binding:"required,min=6,max=255" json:"password"`
	ReferralCode string `binding:"omitempty,max=16"       json:"referral_code"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует аккаунт и аутентифицирует его.
// Реферальный код опционален: валидный код начисляет бонус его владельцу.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, createErr := h.accountService.Register(ctx, service.RegisterAccountArgs{
		Username:     params.Username,
		Password:     params.Password,
		ReferralCode: params.ReferralCode,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("account with this login already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.AbortWithStatus(http.StatusOK)
}

type LoginParams struct {
	Username string `binding:"required,min=1,max=30"  json:"login"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

type AccountResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"login"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, token, err := h.accountService.Login(ctx, service.LoginAccountArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"account": AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		ReferralCode: account.ReferralCode,
		CreatedAt:    account.CreatedAt,
	}})
}
