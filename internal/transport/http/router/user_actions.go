package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/domain"
	"artemon-api/internal/transport/http/ez"
)

func mountUserActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// 本人（admin 例外）改 displayName/phone/address，email 和角色不走这里
	type profileIn struct {
		DisplayName string `json:"displayName" binding:"required,max=64"`
		Phone       string `json:"phone"       binding:"max=32"`
		Address     string `json:"address"     binding:"max=255"`
	}
	ez.RegisterAction(e, ez.Action[profileIn, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *profileIn) (*domain.User, error) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				return nil, ez.BadRequest("invalid user id")
			}
			u, err := d.Accounts.FindByID(id)
			if err != nil {
				return nil, ez.Internal("load user failed", err)
			}
			if u == nil {
				return nil, ez.NotFound("not found")
			}
			if err := requireSelf(c, u.Email); err != nil {
				return nil, err
			}
			out, err := d.Accounts.UpdateProfile(id, domain.ProfileUpdate{
				DisplayName: in.DisplayName, Phone: in.Phone, Address: in.Address,
			})
			if err != nil {
				return nil, fromDomain(err)
			}
			return out, nil
		},
	})
}
