package handler

import (
	"net/http"
	"strconv"

	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/eaglebank/ledger/shared/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithLedgerError maps a failure kind to its status and renders the
// literal message.
func respondWithLedgerError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// pathID parses a numeric path parameter, answering 400 with message when it
// is malformed.
func pathID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}
