package session

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"artemon-api/internal/domain"
	"artemon-api/internal/repo"
	"artemon-api/internal/service"
)

type fixture struct {
	db       *gorm.DB
	manager  *Manager
	accounts *service.AccountService
	rec      *service.ReconcileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Product{}, &domain.CartItem{},
		&domain.Favorite{}, &domain.Order{},
	))

	accounts := service.NewAccountService(repo.NewUserRepo(db))
	rec := service.NewReconcileService(repo.NewCartRepo(db), repo.NewFavoriteRepo(db), zap.NewNop())
	return &fixture{
		db:       db,
		manager:  NewManager(accounts, rec, zap.NewNop()),
		accounts: accounts,
		rec:      rec,
	}
}

func (f *fixture) seedProducts(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, f.db.Create(&domain.Product{
			Name:      "Toy",
			Price:     9.99,
			Category:  "plush",
			CreatedAt: time.Now(),
		}).Error)
	}
}

func (f *fixture) register(t *testing.T, email string) {
	t.Helper()
	_, err := f.accounts.Register("Ann", email, "secret123")
	require.NoError(t, err)
}

func TestSignInMergesGuestSnapshot(t *testing.T) {
	f := newFixture(t)
	f.seedProducts(t, 3)
	f.register(t, "ann@shop.test")

	// 服务端已有：商品1 数量2，收藏了商品1
	require.NoError(t, f.rec.UpsertCartLine("ann@shop.test", 1, 2))
	require.NoError(t, f.rec.AddFavorite("ann@shop.test", 1))

	s, err := f.manager.SignIn("ann@shop.test", "secret123", Snapshot{
		Cart: []domain.GuestCartLine{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
		},
		FavoriteIDs: []int64{2, 3},
	})
	require.NoError(t, err)
	require.NotNil(t, s.Identity())
	assert.Equal(t, "ann@shop.test", s.Identity().Email)

	cart, err := f.rec.ListCart("ann@shop.test")
	require.NoError(t, err)
	qty := map[int64]int{}
	for _, l := range cart {
		qty[l.ID] = l.Quantity
	}
	assert.Equal(t, 5, qty[1]) // 同款相加
	assert.Equal(t, 1, qty[2])

	favs, err := f.rec.ListFavoriteIDs("ann@shop.test")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, favs) // 并集，服务端的 1 不丢
}

func TestSignInConsumesSnapshotExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.seedProducts(t, 1)
	f.register(t, "ann@shop.test")

	snap := Snapshot{Cart: []domain.GuestCartLine{{ProductID: 1, Quantity: 2}}}
	_, err := f.manager.SignIn("ann@shop.test", "secret123", snap)
	require.NoError(t, err)

	// 第二次登录带空快照，数量不变
	_, err = f.manager.SignIn("ann@shop.test", "secret123", Snapshot{})
	require.NoError(t, err)

	cart, err := f.rec.ListCart("ann@shop.test")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestSignInBadCredentialLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.seedProducts(t, 1)
	f.register(t, "ann@shop.test")

	_, err := f.manager.SignIn("ann@shop.test", "wrong", Snapshot{
		Cart:        []domain.GuestCartLine{{ProductID: 1, Quantity: 2}},
		FavoriteIDs: []int64{1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	cart, err := f.rec.ListCart("ann@shop.test")
	require.NoError(t, err)
	assert.Empty(t, cart)
	favs, err := f.rec.ListFavoriteIDs("ann@shop.test")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestSignInInvalidSnapshotFailsWhole(t *testing.T) {
	f := newFixture(t)
	f.seedProducts(t, 2)
	f.register(t, "ann@shop.test")

	_, err := f.manager.SignIn("ann@shop.test", "secret123", Snapshot{
		Cart: []domain.GuestCartLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrQuantityTooLow)

	// 对账失败，合法的那一行也不能落库
	cart, err := f.rec.ListCart("ann@shop.test")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestSignOutClearsIdentityOnly(t *testing.T) {
	f := newFixture(t)
	f.seedProducts(t, 1)
	f.register(t, "ann@shop.test")

	s, err := f.manager.SignIn("ann@shop.test", "secret123", Snapshot{
		Cart: []domain.GuestCartLine{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	f.manager.SignOut(s)
	assert.Nil(t, s.Identity())

	cart, err := f.rec.ListCart("ann@shop.test")
	require.NoError(t, err)
	assert.Len(t, cart, 1) // 持久化数据不动
}
