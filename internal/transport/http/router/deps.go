package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artemon-api/internal/core/auth"
	"artemon-api/internal/domain"
	"artemon-api/internal/service"
	"artemon-api/internal/session"
	"artemon-api/internal/transport/http/ez"
	mdw "artemon-api/internal/transport/http/middleware"
	resp "artemon-api/internal/transport/http/response"
)

type Deps struct {
	Log       *zap.Logger
	JWT       *auth.JWTer
	Accounts  *service.AccountService
	Catalog   *service.CatalogService
	Reconcile *service.ReconcileService
	Orders    *service.OrderService
	Sessions  *session.Manager
}

// claimEmail 从 JWT 中间件解出的身份拿 email
func claimEmail(c *gin.Context) string { return c.GetString(mdw.KeyEmail) }

// requireSelf 只能操作自己的数据，admin 例外
func requireSelf(c *gin.Context, email string) error {
	if claimEmail(c) == email || c.GetString(mdw.KeyRole) == domain.RoleAdmin {
		return nil
	}
	return ez.Forbidden("forbidden")
}

// fromDomain 把领域错误翻成带状态码的响应错误
func fromDomain(err error) error {
	switch {
	case errors.Is(err, domain.ErrQuantityTooLow):
		return ez.BadRequest(err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		return ez.WithCode(http.StatusBadRequest, "Email already exists", resp.CodeEmailInUse)
	case errors.Is(err, domain.ErrInvalidCredential):
		return ez.WithCode(http.StatusUnauthorized, "Invalid credentials", resp.CodeInvalidCredential)
	case errors.Is(err, domain.ErrNotFound):
		return ez.NotFound("not found")
	case errors.Is(err, domain.ErrOrderNotCancellable):
		return ez.BadRequest("Order cannot be cancelled (might be shipped/delivered)")
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		return ez.BadRequest(err.Error())
	default:
		return err
	}
}
