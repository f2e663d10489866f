package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/gin-gonic/gin"
)

// UserCommander defines the write-side operations used by UserHandler.
type UserCommander interface {
	CreateUser() *models.User
}

// UserQuerier defines the read-side operations used by UserHandler.
type UserQuerier interface {
	GetUser(context.Context, cqrs.GetUserQuery) (*models.User, error)
	ListUsers(context.Context, cqrs.ListUsersQuery) []models.User
}

// UserHandler routes requests to the command or query service as appropriate.
type UserHandler struct {
	commands UserCommander
	queries  UserQuerier
}

type ListUsersResponse struct {
	Users []models.User `json:"users"`
}

func NewUserHandler(commands UserCommander, queries UserQuerier) *UserHandler {
	return &UserHandler{commands: commands, queries: queries}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	c.JSON(http.StatusCreated, h.commands.CreateUser())
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users := h.queries.ListUsers(c.Request.Context(), cqrs.ListUsersQuery{})
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, ListUsersResponse{Users: users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "Invalid user id")
	if !ok {
		return
	}

	user, err := h.queries.GetUser(c.Request.Context(), cqrs.GetUserQuery{UserID: userID})
	if err != nil {
		respondWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
