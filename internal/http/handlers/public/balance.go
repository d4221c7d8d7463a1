package public

import (
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TopUpRequest balance top up request
type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
	Remark string `json:"remark"`
}

var topUpErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidAmount, code: response.CodeBadRequest, key: "error.invalid_amount"},
	{target: service.ErrTopUpBelowMinimum, code: response.CodeBadRequest, key: "error.topup_below_minimum"},
	{target: service.ErrCustomerNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
}

// GetBalance the caller's balance account
func (h *Handler) GetBalance(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	account, err := h.LedgerService.GetAccount(customer.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.balance_fetch_failed", err)
		return
	}
	response.Success(c, account)
}

// TopUpBalance credits the caller's balance
func (h *Handler) TopUpBalance(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_amount", err)
		return
	}

	account, txn, err := h.LedgerService.TopUp(service.TopUpInput{
		CustomerID: customer.ID,
		Amount:     amount,
		Remark:     req.Remark,
	})
	if err != nil {
		respondWithMappedError(c, err, topUpErrorRules, response.CodeInternal, "error.topup_failed")
		return
	}
	response.Success(c, gin.H{
		"account":     account,
		"transaction": txn,
	})
}

// ListBalanceTransactions the caller's ledger history
func (h *Handler) ListBalanceTransactions(c *gin.Context) {
	customer, ok := h.getCustomer(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	transactions, total, err := h.LedgerService.ListTransactions(repository.BalanceTransactionListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customer.ID,
		Type:       strings.TrimSpace(c.Query("type")),
		Direction:  strings.TrimSpace(c.Query("direction")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.balance_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, transactions, pagination)
}
