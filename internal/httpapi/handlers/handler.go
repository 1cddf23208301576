package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"chatboard/internal/chat"
	"chatboard/internal/common"
	"chatboard/internal/config"

	"github.com/gin-gonic/gin"
)

// Handler carries the injected dependencies shared by all routes: the one
// store instance, the seed loader it is reset from, and the config.
type Handler struct {
	Store *chat.Store
	Seeds *chat.SeedLoader
	Cfg   config.Config
}

func NewHandler(store *chat.Store, seeds *chat.SeedLoader, cfg config.Config) *Handler {
	return &Handler{Store: store, Seeds: seeds, Cfg: cfg}
}

// idParam parses the numeric :id path segment; non-numeric values are a
// 400, not a lookup miss.
func idParam(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid "+entity+" id")
		return 0, false
	}
	return id, true
}

// storeError maps the store's typed errors onto the HTTP contract.
func storeError(c *gin.Context, err error) {
	var nf *chat.NotFoundError
	if errors.As(err, &nf) {
		common.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	var mf *chat.MissingFieldsError
	var it *chat.InvalidTypeError
	if errors.As(err, &mf) || errors.As(err, &it) {
		common.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	common.Fail(c, http.StatusInternalServerError, "internal error")
}
