package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountAdminActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// --- 用户管理 ---

	e.GET("/users", func(c *gin.Context) (any, error) {
		users, err := d.Accounts.List()
		if err != nil {
			return nil, ez.Internal("list users failed", err)
		}
		return users, nil
	})

	type profileIn struct {
		DisplayName string `json:"displayName" binding:"required,max=64"`
		Phone       string `json:"phone"       binding:"max=32"`
		Address     string `json:"address"     binding:"max=255"`
	}
	ez.RegisterAction(e, ez.Action[profileIn, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *profileIn) (*domain.User, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid user id")
			}
			u, err := d.Accounts.UpdateProfile(id, domain.ProfileUpdate{
				DisplayName: in.DisplayName, Phone: in.Phone, Address: in.Address,
			})
			if err != nil {
				return nil, fromDomain(err)
			}
			return u, nil
		},
	})

	// 删用户连带清掉其收藏和购物车
	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid user id")
			}
			if err := d.Accounts.Delete(id); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"id": id}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/promote/:email",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			email := c.Param("email")
			if err := d.Accounts.Promote(email); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"email": email, "role": domain.RoleAdmin}, nil
		},
	})

	// --- 商品管理 ---

	type productIn struct {
		Name        string  `json:"name"        binding:"required,max=191"`
		Description string  `json:"description"`
		Price       float64 `json:"price"       binding:"required,gte=0"`
		Category    string  `json:"category"    binding:"max=64"`
		Image       string  `json:"image"       binding:"max=255"`
		IsTrending  bool    `json:"isTrending"`
	}
	ez.RegisterAction(e, ez.Action[productIn, *domain.Product]{
		Method: http.MethodPost,
		Path:   "/products",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *productIn) (*domain.Product, error) {
			p := &domain.Product{
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				Category:    in.Category,
				Image:       in.Image,
				IsTrending:  in.IsTrending,
			}
			if err := d.Catalog.Create(c.Request.Context(), p); err != nil {
				return nil, ez.Internal("create product failed", err)
			}
			return p, nil
		},
	})

	ez.RegisterAction(e, ez.Action[productIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/products/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *productIn) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid product id")
			}
			p := &domain.Product{
				ID:          id,
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				Category:    in.Category,
				Image:       in.Image,
				IsTrending:  in.IsTrending,
			}
			if err := d.Catalog.Update(c.Request.Context(), p); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"id": id}, nil
		},
	})

	// 删商品连带清掉引用它的收藏和购物车行
	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid product id")
			}
			if err := d.Catalog.Delete(c.Request.Context(), id); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"id": id}, nil
		},
	})

	// --- 订单管理 ---

	e.GET("/orders", func(c *gin.Context) (any, error) {
		orders, err := d.Orders.ListAll()
		if err != nil {
			return nil, ez.Internal("list orders failed", err)
		}
		return orders, nil
	})

	type statusIn struct {
		Status string `json:"status" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[statusIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/orders/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *statusIn) (gin.H, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid order id")
			}
			if err := d.Orders.SetStatus(id, in.Status); err != nil {
				return nil, fromDomain(err)
			}
			return gin.H{"id": id, "status": in.Status}, nil
		},
	})
}
