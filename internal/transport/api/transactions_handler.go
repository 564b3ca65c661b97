package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/club-loyal/internal/repository/repoargs"
)

type TransactionsHandler struct {
	ledgerSvs LedgerServicer
}

func NewTransactionsHandler(ledgerSvs LedgerServicer) *TransactionsHandler {
	return &TransactionsHandler{ledgerSvs: ledgerSvs}
}

// Show GET RouteGroup + TransactionRoute.
func (h *TransactionsHandler) Show(c *gin.Context) {
	var uri IDURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.ledgerSvs.Get(reqCtx, uri.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(transaction))
}

// TransactionUpdateParams правка метаданных. Вид и сумму записи изменить нельзя.
type TransactionUpdateParams struct {
	Description    *string    `binding:"omitempty,max_bytes=512" json:"description"`
	OrderID        *int64     `json:"orderId"`
	BookingID      *int64     `json:"bookingId"`
	ExpiresAt      *time.Time `binding:"excluded_with=ClearExpiresAt" json:"expiresAt"`
	ClearExpiresAt bool       `json:"clearExpiresAt"`
}

// Update PATCH RouteGroup + TransactionRoute. Только для администратора.
func (h *TransactionsHandler) Update(c *gin.Context) {
	var uri IDURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	var params TransactionUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.ledgerSvs.Update(reqCtx, uri.ID, repoargs.PointsTransactionUpdate{
		Description:    params.Description,
		OrderID:        params.OrderID,
		BookingID:      params.BookingID,
		ExpiresAt:      params.ExpiresAt,
		ClearExpiresAt: params.ClearExpiresAt,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(transaction))
}

// Delete DELETE RouteGroup + TransactionRoute. Только для администратора.
func (h *TransactionsHandler) Delete(c *gin.Context) {
	var uri IDURIParams
	if bindErr := c.ShouldBindUri(&uri); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.ledgerSvs.Delete(reqCtx, uri.ID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
