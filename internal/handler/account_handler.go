package handler

import (
	"net/http"

	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/middleware"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountCommander defines the ledger operations used by AccountHandler. Each
// returns the owning user after the change.
type AccountCommander interface {
	CreateAccount(cqrs.CreateAccountCommand) (*models.User, error)
	DeleteAccount(cqrs.DeleteAccountCommand) (*models.User, error)
	Deposit(cqrs.DepositCommand) (*models.User, error)
	Withdraw(cqrs.WithdrawCommand) (*models.User, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
}

// CreateAccountRequest carries no validate tag on Balance: an opening balance
// below the minimum is a ledger rule and gets the ledger's message.
type CreateAccountRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

type TransactionRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"decimal_gt0"`
}

func NewAccountHandler(commands AccountCommander) *AccountHandler {
	return &AccountHandler{commands: commands}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, ok := pathID(c, "userId", "Invalid user id")
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.commands.CreateAccount(cqrs.CreateAccountCommand{
		UserID:  userID,
		Balance: req.Balance,
	})
	if err != nil {
		respondWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, ok := pathID(c, "userId", "Invalid user id")
	if !ok {
		return
	}
	accountID, ok := pathID(c, "accountId", "Invalid account id")
	if !ok {
		return
	}

	user, err := h.commands.DeleteAccount(cqrs.DeleteAccountCommand{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		respondWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	userID, accountID, req, ok := bindTransaction(c)
	if !ok {
		return
	}

	user, err := h.commands.Deposit(cqrs.DepositCommand{
		UserID:    userID,
		AccountID: accountID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	userID, accountID, req, ok := bindTransaction(c)
	if !ok {
		return
	}

	user, err := h.commands.Withdraw(cqrs.WithdrawCommand{
		UserID:    userID,
		AccountID: accountID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func bindTransaction(c *gin.Context) (userID, accountID int64, req TransactionRequest, ok bool) {
	if userID, ok = pathID(c, "userId", "Invalid user id"); !ok {
		return
	}
	if accountID, ok = pathID(c, "accountId", "Invalid account id"); !ok {
		return
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return userID, accountID, req, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return userID, accountID, req, false
	}
	return userID, accountID, req, true
}
