package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"artemon-api/internal/domain"
	"artemon-api/internal/repo"
)

// 测试不挂 redis，直接打库
func newCatalog(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(repo.NewProductRepo(db), nil, time.Minute)
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []domain.Product{
		{Name: "Wooden Alphabet", Description: "Learn letters", Category: "educational", IsTrending: true, Price: 12},
		{Name: "Counting Bears", Description: "Math practice", Category: "educational", Price: 8},
		{Name: "Toy Robot", Description: "A friendly Robot companion", Category: "electronic", IsTrending: true, Price: 30},
		{Name: "Plush Cat", Description: "Soft and cuddly", Category: "plush", Price: 15},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func TestCatalogFiltersCompose(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)
	seedCatalog(t, db)

	got, err := svc.List(context.Background(), domain.ProductFilter{
		Category: "educational",
		Trending: true,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Wooden Alphabet", got[0].Name)
}

func TestCatalogSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)
	seedCatalog(t, db)

	got, err := svc.List(context.Background(), domain.ProductFilter{Search: "robot"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toy Robot", got[0].Name)

	// 整串匹配，不是分词
	got, err = svc.List(context.Background(), domain.ProductFilter{Search: "robot friendly"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.List(context.Background(), domain.ProductFilter{Search: "FRIENDLY"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toy Robot", got[0].Name)
}

func TestCatalogCategoryAllMeansNoFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)
	seedCatalog(t, db)

	got, err := svc.List(context.Background(), domain.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestCatalogOrderIsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)
	seedCatalog(t, db)

	got, err := svc.List(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i-1].ID, got[i].ID)
	}
}

func TestCatalogNewArrivalsWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)

	fresh := domain.Product{Name: "New Kite", Price: 5}
	stale := domain.Product{Name: "Old Kite", Price: 5}
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&stale).Error)
	// 把一个商品的上架时间推到窗口外
	require.NoError(t, db.Model(&domain.Product{}).Where("id = ?", stale.ID).
		Update("created_at", time.Now().AddDate(0, 0, -31)).Error)

	got, err := svc.List(context.Background(), domain.ProductFilter{NewArrivals: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New Kite", got[0].Name)
}

func TestCatalogGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)

	_, err := svc.Get(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalog(t, db)

	p := domain.Product{Name: "Bare", Price: 1}
	require.NoError(t, svc.Create(context.Background(), &p))
	assert.Equal(t, "/images/default_toy.jpg", p.Image)
	assert.Equal(t, 5.0, p.Rating)
	assert.Equal(t, 10, p.Stock)
}
