package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountOrderActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// 下单：模拟货到付款，items 原样落快照
	type placeIn struct {
		Total float64 `json:"total" binding:"required"`
		Items any     `json:"items" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[placeIn, *domain.Order]{
		Method: http.MethodPost,
		Path:   "/orders",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *placeIn) (*domain.Order, error) {
			o, err := d.Orders.Place(claimEmail(c), in.Total, in.Items)
			if err != nil {
				return nil, ez.Internal("place order failed", err)
			}
			return o, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders/user/:email",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Order, error) {
			email := c.Param("email")
			if err := requireSelf(c, email); err != nil {
				return nil, err
			}
			orders, err := d.Orders.ListByUser(email)
			if err != nil {
				return nil, ez.Internal("list orders failed", err)
			}
			return orders, nil
		},
	})

	// 只有 Pending 可取消
	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodPut,
		Path:   "/orders/:id/cancel",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid order id")
			}
			if err := d.Orders.Cancel(id); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"id": id, "status": domain.OrderCancelled}, nil
		},
	})
}
