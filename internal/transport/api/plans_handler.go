package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlansHandler struct {
	accountService AccountServicer
	planService    PlanServicer
}

func NewPlansHandler(accountService AccountServicer, planService PlanServicer) *PlansHandler {
	return &PlansHandler{
		accountService: accountService,
		planService:    planService,
	}
}

type PlanResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	VideosPerDay    int32    `json:"videos_per_day"`
	EarningPerVideo int64    `json:"earning_per_video"`
	MonthlyEarning  int64    `json:"monthly_earning"`
	Features        []string `json:"features"`
	Current         bool     `json:"current"`
}

// Index GET RouteGroup + PlansRoute. Активные тарифы по возрастанию sort_order,
// текущий тариф аккаунта помечен.
func (h *PlansHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, accountErr := h.accountService.GetByID(ctx, currentUserID)
	if accountErr != nil {
		abortWithServiceError(c, accountErr)
		return
	}

	plans, plansErr := h.planService.ListForAccount(ctx, account.PlanName)
	if plansErr != nil {
		abortWithServiceError(c, plansErr)
		return
	}

	response := make([]PlanResponse, len(plans))
	for i, plan := range plans {
		response[i] = PlanResponse{
			ID:              plan.ID,
			Name:            plan.Name,
			Price:           plan.Price,
			VideosPerDay:    plan.VideosPerDay,
			EarningPerVideo: plan.EarningPerVideo,
			MonthlyEarning:  plan.MonthlyEarning,
			Features:        plan.Features,
			Current:         plan.Current,
		}
	}

	c.JSON(http.StatusOK, response)
}

type SelectPlanParams struct {
	PlanID int64 `json:"plan_id"`
}

// Select POST RouteGroup + PlanSelectRoute. Выбор тарифа логируется как pending
// package_purchase; тариф аккаунта сменит внешний процесс после сеттлмента.
func (h *PlansHandler) Select(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params SelectPlanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.planService.SelectPlan(ctx, currentUserID, params.PlanID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(*transaction))
}
