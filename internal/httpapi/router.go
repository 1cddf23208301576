package httpapi

import (
	"net/http"

	"chatboard/internal/chat"
	"chatboard/internal/common"
	"chatboard/internal/config"
	"chatboard/internal/httpapi/handlers"
	"chatboard/internal/httpapi/middleware"
	"chatboard/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(store *chat.Store, seeds *chat.SeedLoader, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())
	r.Use(telemetry.Middleware())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	h := handlers.NewHandler(store, seeds, cfg)

	r.GET("/", h.Index)
	r.GET("/ping", h.Ping)

	r.GET("/chats", h.ListChats)
	r.POST("/chats", h.CreateChat)
	r.GET("/chats/:id", h.GetChat)
	r.PUT("/chats/:id", h.UpdateChat)
	r.DELETE("/chats/:id", h.DeleteChat)

	// flat message routes; chat scoping goes through ?chat_id=
	r.GET("/messages", h.ListMessages)
	r.POST("/messages", h.CreateMessage)
	r.GET("/messages/:id", h.GetMessage)
	r.PUT("/messages/:id", h.UpdateMessage)
	r.DELETE("/messages/:id", h.DeleteMessage)

	r.GET("/db", h.Snapshot)
	r.POST("/reset", h.Reset)

	// Swagger UI at /docs/index.html over the static OpenAPI document
	r.StaticFile("/openapi.yaml", cfg.OpenAPIPath)
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.yaml")))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
