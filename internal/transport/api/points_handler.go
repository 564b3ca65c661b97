package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultExpiringDays   = 30
	defaultTopMembersSize = 10
)

type PointsHandler struct {
	ledgerSvs LedgerServicer
}

func NewPointsHandler(ledgerSvs LedgerServicer) *PointsHandler {
	return &PointsHandler{ledgerSvs: ledgerSvs}
}

type ExpiringQuery struct {
	Days *int `binding:"omitempty,min=0,max=365" form:"days"`
}

type ExpiringPointsResponse struct {
	MemberID      int64                 `json:"memberId"`
	Amount        int64                 `json:"amount"`
	NearestExpiry time.Time             `json:"nearestExpiry"`
	Transactions  []TransactionResponse `json:"transactions"`
}

// Expiring GET RouteGroup + PointsExpiringRoute. Участники, у которых баллы сгорают в ближайшие days дней.
func (h *PointsHandler) Expiring(c *gin.Context) {
	var query ExpiringQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	days := defaultExpiringDays
	if query.Days != nil {
		days = *query.Days
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	members, err := h.ledgerSvs.MembersWithExpiringPoints(reqCtx, days)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]ExpiringPointsResponse, len(members))
	for i, m := range members {
		response[i] = ExpiringPointsResponse{
			MemberID:      m.MemberID,
			Amount:        m.Amount,
			NearestExpiry: m.NearestExpiry,
			Transactions:  newTransactionsResponse(m.Transactions),
		}
	}
	c.JSON(http.StatusOK, response)
}

// Expired GET RouteGroup + PointsExpiredRoute.
func (h *PointsHandler) Expired(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledgerSvs.ExpiredTransactions(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionsResponse(transactions))
}

type TopQuery struct {
	Limit uint `binding:"omitempty,max=100" form:"limit"`
}

type MemberBalanceResponse struct {
	MemberID int64 `json:"memberId"`
	Balance  int64 `json:"balance"`
}

// Top GET RouteGroup + PointsTopRoute. Участники с наибольшим балансом.
func (h *PointsHandler) Top(c *gin.Context) {
	var query TopQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultTopMembersSize
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.ledgerSvs.TopMembersByBalance(reqCtx, query.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]MemberBalanceResponse, len(balances))
	for i, b := range balances {
		response[i] = MemberBalanceResponse{MemberID: b.MemberID, Balance: b.Balance}
	}
	c.JSON(http.StatusOK, response)
}
