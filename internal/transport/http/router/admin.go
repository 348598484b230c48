package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artemon-api/internal/core/server"
	mdw "artemon-api/internal/transport/http/middleware"
)

// NewAdminEngine 后台引擎：全部接口要求 admin 角色，另挂 /metrics
func NewAdminEngine(d Deps) *gin.Engine {
	r := server.NewRouter(d.Log)
	r.Use(mdw.RequestID(), mdw.RateLimitPerIP(20, 40), mdw.Metrics())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin")
	admin.Use(mdw.AuthJWT(d.JWT, "admin"))
	mountAdminActions(admin, d)

	return r
}
