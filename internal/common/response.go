package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success responses carry the resource itself; errors carry a single
// "error" string. Status codes follow the CRUD contract: 200 read/update,
// 201 create, 204 delete, 400 validation, 404 not found.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
