package handlers

import (
	"log/slog"

	"chatboard/internal/common"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"message": "pong"})
}

// Index serves a static description of the API surface.
func (h *Handler) Index(c *gin.Context) {
	common.OK(c, gin.H{
		"name": "chatboard",
		"docs": "/docs/index.html",
		"endpoints": []string{
			"GET /chats",
			"POST /chats",
			"GET /chats/:id",
			"PUT /chats/:id",
			"DELETE /chats/:id",
			"GET /messages?chat_id=",
			"POST /messages",
			"GET /messages/:id",
			"PUT /messages/:id",
			"DELETE /messages/:id",
			"GET /db",
			"POST /reset",
		},
	})
}

// Snapshot returns both collections as they currently stand.
func (h *Handler) Snapshot(c *gin.Context) {
	common.OK(c, h.Store.Snapshot())
}

// Reset re-runs the seed loader. A failed reload keeps the current data and
// is still a 200; the failure is only logged.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.Seeds.Load(h.Store); err != nil {
		slog.Warn("seed reload failed, keeping current store",
			"path", h.Seeds.Path(),
			"err", err,
		)
	}
	snap := h.Store.Snapshot()
	common.OK(c, gin.H{
		"message":  "store reset from seed",
		"chats":    snap.Chats,
		"messages": snap.Messages,
	})
}
