package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountCatalogActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// 筛选参数 AND 组合；结果固定按 id DESC，不分页
	type listQ struct {
		Category    string `form:"category"`
		Trending    string `form:"trending"`
		NewArrivals string `form:"newArrivals"`
		Search      string `form:"search"`
	}
	ez.RegisterAction(e, ez.Action[listQ, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Product, error) {
			items, err := d.Catalog.List(c.Request.Context(), domain.ProductFilter{
				Category:    in.Category,
				Trending:    in.Trending == "true",
				NewArrivals: in.NewArrivals == "true",
				Search:      in.Search,
			})
			if err != nil {
				return nil, ez.Internal("list products failed", err)
			}
			return items, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Product, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid product id")
			}
			p, err := d.Catalog.Get(id)
			if err != nil {
				return nil, fromDomain(err)
			}
			return p, nil
		},
	})
}
