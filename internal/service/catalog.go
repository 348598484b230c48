package service

import (
	"context"
	"time"

	"artemon-api/internal/core/cache"
	"artemon-api/internal/domain"
)

const catalogCacheKey = "catalog:all"

// CatalogService 商品查询走这里；无条件的全量列表挂 redis 读穿缓存，
// 带筛选的查询直接打库。
type CatalogService struct {
	products domain.ProductRepository
	cache    *cache.Cache
	ttl      time.Duration
}

func NewCatalogService(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{products: products, cache: c, ttl: ttl}
}

func (s *CatalogService) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	if s.cache != nil && isUnfiltered(f) {
		return cache.GetOrLoadJSON(s.cache, ctx, catalogCacheKey, s.ttl,
			func(context.Context) ([]domain.Product, error) {
				return s.products.Query(f)
			})
	}
	return s.products.Query(f)
}

func (s *CatalogService) Get(id int64) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *CatalogService) Create(ctx context.Context, p *domain.Product) error {
	if p.Image == "" {
		p.Image = "/images/default_toy.jpg"
	}
	if p.Rating == 0 {
		p.Rating = 5.0
	}
	if p.Stock == 0 {
		p.Stock = 10
	}
	if err := s.products.Create(p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Update(ctx context.Context, p *domain.Product) error {
	if err := s.products.Update(p); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, catalogCacheKey)
	}
}

func isUnfiltered(f domain.ProductFilter) bool {
	return (f.Category == "" || f.Category == "all") &&
		!f.Trending && !f.NewArrivals && f.Search == ""
}
