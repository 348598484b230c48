package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artemon-api/internal/session"
	"artemon-api/internal/transport/http/ez"
)

type profileOut struct {
	ID          int64  `json:"id"`
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        string `json:"role"`
	Token       string `json:"token"`
}

func mountAuthActions(g *gin.RouterGroup, d Deps) {
	e := ez.New(g)

	// 注册：邮箱唯一冲突返回 400 + auth/email-already-in-use
	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	ez.RegisterAction(e, ez.Action[registerIn, profileOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (profileOut, error) {
			u, err := d.Accounts.Register(in.Name, in.Email, in.Password)
			if err != nil {
				return profileOut{}, fromDomain(err)
			}
			tok, err := d.JWT.Issue(u.UID, u.Email, u.Role)
			if err != nil {
				return profileOut{}, ez.Internal("issue token failed", err)
			}
			return profileOut{
				ID: u.ID, UID: u.UID, Email: u.Email, DisplayName: u.DisplayName,
				Phone: u.Phone, Address: u.Address, Role: u.Role, Token: tok,
			}, nil
		},
	})

	// 登录：可带游客快照，对账成功身份才算落定。
	// 账号不存在和密码错误统一返回 401 + auth/invalid-credential。
	type loginIn struct {
		Email    string           `json:"email"    binding:"required,email"`
		Password string           `json:"password" binding:"required"`
		Guest    session.Snapshot `json:"guest"`
	}
	ez.RegisterAction(e, ez.Action[loginIn, profileOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (profileOut, error) {
			sess, err := d.Sessions.SignIn(in.Email, in.Password, in.Guest)
			if err != nil {
				return profileOut{}, fromDomain(err)
			}
			id := sess.Identity()
			tok, err := d.JWT.Issue(id.UID, id.Email, id.Role)
			if err != nil {
				return profileOut{}, ez.Internal("issue token failed", err)
			}
			return profileOut{
				ID: id.ID, UID: id.UID, Email: id.Email, DisplayName: id.DisplayName,
				Phone: id.Phone, Address: id.Address, Role: id.Role, Token: tok,
			}, nil
		},
	})
}
