package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"chatboard/internal/chat"
	"chatboard/internal/common"

	"github.com/gin-gonic/gin"
)

type createMessageReq struct {
	ChatID  int             `json:"chat_id"`
	Type    string          `json:"type"`
	Author  string          `json:"author"`
	Content json.RawMessage `json:"content"`
}

// ListMessages returns all messages, or only those of one chat when the
// chat_id query parameter is set.
func (h *Handler) ListMessages(c *gin.Context) {
	chatID := 0
	if q := c.Query("chat_id"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			common.Fail(c, http.StatusBadRequest, "invalid chat_id")
			return
		}
		chatID = n
	}
	common.OK(c, h.Store.ListMessages(chatID))
}

func (h *Handler) GetMessage(c *gin.Context) {
	id, ok := idParam(c, "message")
	if !ok {
		return
	}
	m, err := h.Store.GetMessage(id)
	if err != nil {
		storeError(c, err)
		return
	}
	common.OK(c, m)
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req createMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := h.Store.InsertMessage(req.ChatID, req.Type, req.Author, req.Content)
	if err != nil {
		storeError(c, err)
		return
	}
	common.Created(c, m)
}

func (h *Handler) UpdateMessage(c *gin.Context) {
	id, ok := idParam(c, "message")
	if !ok {
		return
	}
	var patch chat.MessagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := h.Store.UpdateMessage(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	common.OK(c, m)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := idParam(c, "message")
	if !ok {
		return
	}
	if err := h.Store.DeleteMessage(id); err != nil {
		storeError(c, err)
		return
	}
	common.NoContent(c)
}
