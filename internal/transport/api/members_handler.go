package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
	"github.com/fsdevblog/club-loyal/internal/service"
)

const defaultTransactionsLimit uint = 50

type MembersHandler struct {
	rewardSvs RewardServicer
	ledgerSvs LedgerServicer
}

func NewMembersHandler(rewardSvs RewardServicer, ledgerSvs LedgerServicer) *MembersHandler {
	return &MembersHandler{
		rewardSvs: rewardSvs,
		ledgerSvs: ledgerSvs,
	}
}

type BalanceResponse struct {
	MemberID int64 `json:"memberId"`
	Balance  int64 `json:"balance"`
}

// Balance GET RouteGroup + MemberBalanceRoute.
func (h *MembersHandler) Balance(c *gin.Context) {
	summary, ok := h.summary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{MemberID: summary.MemberID, Balance: summary.Balance})
}

type SummaryResponse struct {
	MemberID         int64 `json:"memberId"`
	TotalEarned      int64 `json:"totalEarned"`
	TotalSpent       int64 `json:"totalSpent"`
	Balance          int64 `json:"balance"`
	TransactionCount int64 `json:"transactionCount"`
}

// Summary GET RouteGroup + MemberSummaryRoute.
func (h *MembersHandler) Summary(c *gin.Context) {
	summary, ok := h.summary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{
		MemberID:         summary.MemberID,
		TotalEarned:      summary.TotalEarned,
		TotalSpent:       summary.TotalSpent,
		Balance:          summary.Balance,
		TransactionCount: summary.TransactionCount,
	})
}

func (h *MembersHandler) summary(c *gin.Context) (*domain.PointsSummary, bool) {
	var uri MemberURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return nil, false
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.ledgerSvs.Summary(reqCtx, uri.MemberID)
	if err != nil {
		abortWithServiceError(c, err)
		return nil, false
	}
	return summary, true
}

type TransactionsQuery struct {
	Kind   string     `binding:"omitempty,oneof=earned spent" form:"kind"`
	From   *time.Time `form:"from"`
	To     *time.Time `form:"to"`
	Limit  uint       `binding:"omitempty,max=500"            form:"limit"`
	Offset uint       `form:"offset"`
}

// Transactions GET RouteGroup + MemberTransactionsRoute. Записи участника, новые первыми.
func (h *MembersHandler) Transactions(c *gin.Context) {
	var uri MemberURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var query TransactionsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	filter := repoargs.ListFilter{
		From:   query.From,
		To:     query.To,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultTransactionsLimit
	}
	if query.Kind != "" {
		kind := domain.TransactionKind(query.Kind)
		filter.Kind = &kind
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledgerSvs.List(reqCtx, uri.MemberID, filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionsResponse(transactions))
}

type EarnParams struct {
	domain.References
	Amount      int64      `binding:"required,gt=0"            json:"amount"`
	Description string     `binding:"required,max_bytes=512"   json:"description"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// Earn POST RouteGroup + MemberEarnRoute. Ручное начисление баллов.
func (h *MembersHandler) Earn(c *gin.Context) {
	var uri MemberURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var params EarnParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.rewardSvs.Earn(reqCtx, service.EarnArgs{
		MemberID:    uri.MemberID,
		Amount:      params.Amount,
		Description: params.Description,
		Refs:        params.References,
		ExpiresAt:   params.ExpiresAt,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

type SpendParams struct {
	domain.References
	Amount      int64  `binding:"required,gt=0"          json:"amount"`
	Description string `binding:"required,max_bytes=512" json:"description"`
}

// Spend POST RouteGroup + MemberSpendRoute. При недостатке баллов отвечает 402.
func (h *MembersHandler) Spend(c *gin.Context) {
	var uri MemberURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var params SpendParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.rewardSvs.Spend(reqCtx, service.SpendArgs{
		MemberID:    uri.MemberID,
		Amount:      params.Amount,
		Description: params.Description,
		Refs:        params.References,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

type ActivitiesParams struct {
	Events []domain.ActivityEvent `binding:"required,min=1,max=100" json:"events"`
}

type ActivityResultResponse struct {
	Kind        domain.ActivityKind    `json:"kind"`
	Status      service.ActivityStatus `json:"status"`
	Transaction *TransactionResponse   `json:"transaction,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

type ActivitiesResponse struct {
	Created []TransactionResponse    `json:"created"`
	Results []ActivityResultResponse `json:"results"`
}

// Activities POST RouteGroup + MemberActivitiesRoute. Пакетная обработка активностей, итог по каждому событию
// возвращается в results в порядке запроса.
func (h *MembersHandler) Activities(c *gin.Context) {
	var uri MemberURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var params ActivitiesParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout*time.Duration(len(params.Events)))
	defer cancel()

	results := h.rewardSvs.ProcessMultipleActivities(reqCtx, uri.MemberID, params.Events)

	response := ActivitiesResponse{
		Created: newTransactionsResponse(results.Created()),
		Results: make([]ActivityResultResponse, len(results)),
	}
	for i, result := range results {
		item := ActivityResultResponse{
			Kind:        result.Event.Kind,
			Status:      result.Status,
			Transaction: newTransactionResponse(result.Transaction),
		}
		switch {
		case result.Status == service.ActivityFailed:
			_ = c.Error(result.Err).SetType(gin.ErrorTypePrivate)
			item.Error = "internal error"
		case result.Err != nil:
			item.Error = result.Err.Error()
		}
		response.Results[i] = item
	}

	status := http.StatusOK
	if results.HasFailed() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, response)
}

type ActivityURIParams struct {
	MemberID int64  `binding:"required,gt=0"              uri:"memberID"`
	Kind     string `binding:"required,activity_kind"     uri:"kind"`
}

type ActivityParams struct {
	RelatedID   *int64 `json:"relatedId"`
	IsWinner    bool   `json:"isWinner"`
	NewMemberID *int64 `json:"newMemberId"`
}

// Activity POST RouteGroup + MemberActivityRoute. Одно правило начисления. Повторная награда - 409.
func (h *MembersHandler) Activity(c *gin.Context) {
	var uri ActivityURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	var params ActivityParams
	// у дня рождения и ежемесячного бонуса тела может не быть.
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.rewardSvs.AwardActivity(reqCtx, uri.MemberID, domain.ActivityEvent{
		Kind:        domain.ActivityKind(uri.Kind),
		RelatedID:   params.RelatedID,
		IsWinner:    params.IsWinner,
		NewMemberID: params.NewMemberID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}
