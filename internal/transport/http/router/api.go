package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	mdw "artemon-api/internal/transport/http/middleware"
)

// NewAPIEngine 前台引擎：目录/认证公开，购物车、收藏、订单要求登录
func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api")

	// 公开：注册/登录 + 商品目录
	mountAuthActions(api, d)
	mountCatalogActions(api, d)

	// 登录后：个人资料 / 购物车 / 收藏 / 订单
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT, ""))
	mountUserActions(authed, d)
	mountCartActions(authed, d)
	mountFavoriteActions(authed, d)
	mountOrderActions(authed, d)

	return r
}
