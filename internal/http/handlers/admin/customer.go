package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/repository"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdjustBalanceRequest signed balance adjustment request
type AdjustBalanceRequest struct {
	Amount string `json:"amount" binding:"required"`
	Remark string `json:"remark"`
}

// ListCustomers paginated customer listing
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	customers, total, err := h.CustomerService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.customer_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, customers, pagination)
}

// GetCustomer customer detail with the linked user
func (h *Handler) GetCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.CustomerService.GetByID(customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			respondError(c, response.CodeNotFound, "error.customer_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.customer_fetch_failed", err)
		return
	}
	response.Success(c, customer)
}

// ListCustomerTransactions a customer's ledger history
func (h *Handler) ListCustomerTransactions(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	transactions, total, err := h.LedgerService.ListTransactions(repository.BalanceTransactionListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Type:       strings.TrimSpace(c.Query("type")),
		Direction:  strings.TrimSpace(c.Query("direction")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.customer_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, transactions, pagination)
}

// AdjustCustomerBalance applies a signed admin adjustment
func (h *Handler) AdjustCustomerBalance(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_amount", err)
		return
	}

	account, txn, err := h.LedgerService.AdminAdjust(service.AdjustInput{
		CustomerID: customerID,
		Amount:     amount,
		Remark:     req.Remark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			respondError(c, response.CodeBadRequest, "error.invalid_amount", nil)
		case errors.Is(err, service.ErrInsufficientBalance):
			respondError(c, response.CodeBadRequest, "error.insufficient_balance", nil)
		case errors.Is(err, service.ErrCustomerNotFound):
			respondError(c, response.CodeNotFound, "error.customer_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.balance_adjust_failed", err)
		}
		return
	}
	response.Success(c, gin.H{
		"account":     account,
		"transaction": txn,
	})
}
