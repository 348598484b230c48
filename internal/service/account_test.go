package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artemon-api/internal/domain"
	"artemon-api/internal/repo"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	_, err := svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)

	_, err = svc.Register("Other Ann", "ann@shop.test", "secret2")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthenticateCollapsesFailureCauses(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	_, err := svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)

	// 密码错误和账号不存在返回同一个错误
	_, err = svc.Authenticate("ann@shop.test", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = svc.Authenticate("nobody@shop.test", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestAuthenticateSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	created, err := svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, created.Role)
	assert.NotEmpty(t, created.UID)

	u, err := svc.Authenticate("ann@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestPromote(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	_, err := svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Promote("ann@shop.test"))
	u, err := svc.Authenticate("ann@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	assert.ErrorIs(t, svc.Promote("nobody@shop.test"), domain.ErrNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	// 邮箱为空 = 不启用
	require.NoError(t, svc.EnsureAdmin("", ""))
	users, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, users)

	// 账号不存在则创建并提权
	require.NoError(t, svc.EnsureAdmin("root@shop.test", "secret1"))
	u, err := svc.Authenticate("root@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	// 幂等，且不覆盖已有密码
	require.NoError(t, svc.EnsureAdmin("root@shop.test", "changed"))
	u2, err := svc.Authenticate("root@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)

	// 已有普通账号只提权
	_, err = svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.EnsureAdmin("ann@shop.test", "ignored"))
	ann, err := svc.Authenticate("ann@shop.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, ann.Role)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repo.NewUserRepo(db))

	created, err := svc.Register("Ann", "ann@shop.test", "secret1")
	require.NoError(t, err)

	u, err := svc.UpdateProfile(created.ID, domain.ProfileUpdate{
		DisplayName: "Ann B", Phone: "555-0101", Address: "1 Toy Lane",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann B", u.DisplayName)
	assert.Equal(t, "555-0101", u.Phone)
	assert.Equal(t, "ann@shop.test", u.Email) // email 不随 profile 改

	_, err = svc.UpdateProfile(99999, domain.ProfileUpdate{DisplayName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
