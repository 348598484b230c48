package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"artemon-api/internal/domain"
	"artemon-api/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Favorite{},
		&domain.CartItem{},
		&domain.Order{},
	))
	return db
}

func newReconcile(t *testing.T, db *gorm.DB) *ReconcileService {
	t.Helper()
	return NewReconcileService(repo.NewCartRepo(db), repo.NewFavoriteRepo(db), zap.NewNop())
}

func seedProduct(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	p := domain.Product{Name: name, Price: 9.99, Category: "toys"}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func cartQuantity(t *testing.T, db *gorm.DB, email string, productID int64) int {
	t.Helper()
	var item domain.CartItem
	err := db.First(&item, "user_email = ? AND product_id = ?", email, productID).Error
	if err == gorm.ErrRecordNotFound {
		return 0
	}
	require.NoError(t, err)
	return item.Quantity
}

func TestMergeGuestCartIsAdditive(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p5 := seedProduct(t, db, "Robot Kit")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p5, 2))
	require.NoError(t, svc.MergeGuestCart("a@shop.test", []domain.GuestCartLine{
		{ProductID: p5, Quantity: 3},
	}))

	assert.Equal(t, 5, cartQuantity(t, db, "a@shop.test", p5))
}

func TestMergeGuestCartInsertsNewLines(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p1 := seedProduct(t, db, "Blocks")
	p2 := seedProduct(t, db, "Puzzle")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p1, 1))
	require.NoError(t, svc.MergeGuestCart("a@shop.test", []domain.GuestCartLine{
		{ProductID: p1, Quantity: 2},
		{ProductID: p2, Quantity: 4},
	}))

	assert.Equal(t, 3, cartQuantity(t, db, "a@shop.test", p1))
	assert.Equal(t, 4, cartQuantity(t, db, "a@shop.test", p2))
}

func TestMergeGuestCartAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repo.NewCartRepo(db)
	p1 := seedProduct(t, db, "Blocks")
	p2 := seedProduct(t, db, "Puzzle")

	require.NoError(t, cartRepo.Upsert("a@shop.test", p1, 2))

	// 第二行非法，事务中途失败，第一行的累加也必须回滚
	err := cartRepo.MergeLines("a@shop.test", []domain.GuestCartLine{
		{ProductID: p1, Quantity: 3},
		{ProductID: p2, Quantity: 0},
	})
	require.Error(t, err)

	assert.Equal(t, 2, cartQuantity(t, db, "a@shop.test", p1))
	assert.Equal(t, 0, cartQuantity(t, db, "a@shop.test", p2))
}

func TestUpsertReplacesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p5 := seedProduct(t, db, "Robot Kit")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p5, 2))
	require.NoError(t, svc.UpsertCartLine("a@shop.test", p5, 3))

	// 覆盖不是累加
	assert.Equal(t, 3, cartQuantity(t, db, "a@shop.test", p5))
}

func TestUpsertRejectsQuantityBelowOne(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p := seedProduct(t, db, "Blocks")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p, 2))

	err := svc.UpsertCartLine("a@shop.test", p, 0)
	assert.ErrorIs(t, err, domain.ErrQuantityTooLow)
	assert.Equal(t, 2, cartQuantity(t, db, "a@shop.test", p))

	err = svc.UpsertCartLine("a@shop.test", p, -1)
	assert.ErrorIs(t, err, domain.ErrQuantityTooLow)
}

func TestToggleFavoriteReportsDirection(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p7 := seedProduct(t, db, "Dino")

	out, err := svc.ToggleFavorite("a@shop.test", p7)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, out)

	out, err = svc.ToggleFavorite("a@shop.test", p7)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleRemoved, out)

	out, err = svc.ToggleFavorite("a@shop.test", p7)
	require.NoError(t, err)
	assert.Equal(t, domain.ToggleAdded, out)

	ids, err := svc.ListFavoriteIDs("a@shop.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{p7}, ids)
}

func TestReplaceFavoritesIsDestructive(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	var ids []int64
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, seedProduct(t, db, name))
	}

	for _, id := range ids[:3] {
		require.NoError(t, svc.AddFavorite("a@shop.test", id))
	}

	require.NoError(t, svc.ReplaceFavorites("a@shop.test", []int64{ids[3], ids[4]}))

	got, err := svc.ListFavoriteIDs("a@shop.test")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{ids[3], ids[4]}, got)
}

func TestReplaceFavoritesIgnoresDuplicateInput(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p := seedProduct(t, db, "Blocks")

	require.NoError(t, svc.ReplaceFavorites("a@shop.test", []int64{p, p, p}))

	got, err := svc.ListFavoriteIDs("a@shop.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{p}, got)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p := seedProduct(t, db, "Blocks")

	require.NoError(t, svc.AddFavorite("a@shop.test", p))
	require.NoError(t, svc.AddFavorite("a@shop.test", p))

	got, err := svc.ListFavoriteIDs("a@shop.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{p}, got)
}

func TestListCartJoinsProductData(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p := seedProduct(t, db, "Robot Kit")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p, 2))

	lines, err := svc.ListCart("a@shop.test")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Robot Kit", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, p, lines[0].ID)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	p1 := seedProduct(t, db, "Blocks")
	p2 := seedProduct(t, db, "Puzzle")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p1, 1))
	require.NoError(t, svc.UpsertCartLine("a@shop.test", p2, 2))
	require.NoError(t, svc.ClearCart("a@shop.test"))

	lines, err := svc.ListCart("a@shop.test")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	users := repo.NewUserRepo(db)
	p := seedProduct(t, db, "Blocks")

	u := domain.User{UID: "u1", Email: "a@shop.test", DisplayName: "A", PasswordHash: "x"}
	require.NoError(t, users.Create(&u))
	require.NoError(t, svc.UpsertCartLine(u.Email, p, 2))
	require.NoError(t, svc.AddFavorite(u.Email, p))

	require.NoError(t, users.Delete(u.ID))

	assert.Equal(t, 0, cartQuantity(t, db, u.Email, p))
	ids, err := svc.ListFavoriteIDs(u.Email)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDeleteProductCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newReconcile(t, db)
	products := repo.NewProductRepo(db)
	p := seedProduct(t, db, "Blocks")
	other := seedProduct(t, db, "Puzzle")

	require.NoError(t, svc.UpsertCartLine("a@shop.test", p, 2))
	require.NoError(t, svc.UpsertCartLine("a@shop.test", other, 1))
	require.NoError(t, svc.AddFavorite("a@shop.test", p))

	require.NoError(t, products.Delete(p))

	assert.Equal(t, 0, cartQuantity(t, db, "a@shop.test", p))
	assert.Equal(t, 1, cartQuantity(t, db, "a@shop.test", other))
	ids, err := svc.ListFavoriteIDs("a@shop.test")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
