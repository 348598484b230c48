package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountFavoriteActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	ez.RegisterAction(e, ez.Action[struct{}, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/favorites/:email",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Product, error) {
			email := c.Param("email")
			if err := requireSelf(c, email); err != nil {
				return nil, err
			}
			products, err := d.Reconcile.ListFavorites(email)
			if err != nil {
				return nil, ez.Internal("list favorites failed", err)
			}
			return products, nil
		},
	})

	type favIn struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}

	// 加收藏，重复加静默忽略
	ez.RegisterAction(e, ez.Action[favIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/favorites",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *favIn) (gin.H, error) {
			if err := d.Reconcile.AddFavorite(claimEmail(c), in.ProductID); err != nil {
				return nil, ez.Internal("add favorite failed", err)
			}
			return gin.H{"product_id": in.ProductID}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[favIn, gin.H]{
		Method: http.MethodDelete,
		Path:   "/favorites",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *favIn) (gin.H, error) {
			if err := d.Reconcile.RemoveFavorite(claimEmail(c), in.ProductID); err != nil {
				return nil, ez.Internal("remove favorite failed", err)
			}
			return gin.H{"product_id": in.ProductID}, nil
		},
	})

	// 有则删、无则加，返回这次实际走的方向
	ez.RegisterAction(e, ez.Action[favIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/favorites/toggle",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *favIn) (gin.H, error) {
			outcome, err := d.Reconcile.ToggleFavorite(claimEmail(c), in.ProductID)
			if err != nil {
				return nil, ez.Internal("toggle favorite failed", err)
			}
			return gin.H{"product_id": in.ProductID, "outcome": outcome}, nil
		},
	})

	// 整表替换（不是合并）；要合并语义的先在客户端求并集
	type syncIn struct {
		ProductIDs []int64 `json:"product_ids" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[syncIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/favorites/sync",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *syncIn) (gin.H, error) {
			if err := d.Reconcile.ReplaceFavorites(claimEmail(c), in.ProductIDs); err != nil {
				return nil, ez.Internal("sync favorites failed", err)
			}
			return gin.H{"synced": len(in.ProductIDs)}, nil
		},
	})
}
