package handlers

import (
	"net/http"

	"chatboard/internal/chat"
	"chatboard/internal/common"

	"github.com/gin-gonic/gin"
)

type createChatReq struct {
	Name   string `json:"name"`
	Shared bool   `json:"shared"`
}

func (h *Handler) ListChats(c *gin.Context) {
	common.OK(c, h.Store.ListChats())
}

func (h *Handler) GetChat(c *gin.Context) {
	id, ok := idParam(c, "chat")
	if !ok {
		return
	}
	ch, err := h.Store.GetChat(id)
	if err != nil {
		storeError(c, err)
		return
	}
	common.OK(c, ch)
}

func (h *Handler) CreateChat(c *gin.Context) {
	var req createChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	ch, err := h.Store.InsertChat(req.Name, req.Shared)
	if err != nil {
		storeError(c, err)
		return
	}
	common.Created(c, ch)
}

func (h *Handler) UpdateChat(c *gin.Context) {
	id, ok := idParam(c, "chat")
	if !ok {
		return
	}
	var patch chat.ChatPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	ch, err := h.Store.UpdateChat(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	common.OK(c, ch)
}

func (h *Handler) DeleteChat(c *gin.Context) {
	id, ok := idParam(c, "chat")
	if !ok {
		return
	}
	if err := h.Store.DeleteChat(id); err != nil {
		storeError(c, err)
		return
	}
	common.NoContent(c)
}
