package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountCartActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// 购物车行连同商品数据；只能看自己的
	ez.RegisterAction(e, ez.Action[struct{}, []domain.CartLine]{
		Method: http.MethodGet,
		Path:   "/cart/:email",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.CartLine, error) {
			email := c.Param("email")
			if err := requireSelf(c, email); err != nil {
				return nil, err
			}
			lines, err := d.Reconcile.ListCart(email)
			if err != nil {
				return nil, ez.Internal("list cart failed", err)
			}
			return lines, nil
		},
	})

	// 覆盖数量（不是累加），数量 < 1 直接拒绝
	type upsertIn struct {
		ProductID int64 `json:"product_id" binding:"required"`
		Quantity  int   `json:"quantity"   binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[upsertIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/cart",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *upsertIn) (gin.H, error) {
			if err := d.Reconcile.UpsertCartLine(claimEmail(c), in.ProductID, in.Quantity); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"product_id": in.ProductID, "quantity": in.Quantity}, nil
		},
	})

	type removeIn struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[removeIn, gin.H]{
		Method: http.MethodDelete,
		Path:   "/cart",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *removeIn) (gin.H, error) {
			if err := d.Reconcile.RemoveCartLine(claimEmail(c), in.ProductID); err != nil {
				return nil, ez.Internal("remove cart item failed", err)
			}
			return gin.H{"product_id": in.ProductID}, nil
		},
	})

	// 游客购物车合并：全成或全不成；失败时客户端保留本地快照重试
	type mergeIn struct {
		Items []domain.GuestCartLine `json:"items" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[mergeIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/cart/merge",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *mergeIn) (gin.H, error) {
			if err := d.Reconcile.MergeGuestCart(claimEmail(c), in.Items); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"merged": len(in.Items)}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/cart/clear",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := d.Reconcile.ClearCart(claimEmail(c)); err != nil {
				return nil, ez.Internal("clear cart failed", err)
			}
			return gin.H{"cleared": true}, nil
		},
	})
}
