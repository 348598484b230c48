package service

import (
	"go.uber.org/zap"

	"artemon-api/internal/domain"
)

// ReconcileService 负责购物车/收藏在“游客 → 账号”切换时的合并，
// 以及登录后以服务端为准的日常读写。
type ReconcileService struct {
	carts domain.CartRepository
	favs  domain.FavoriteRepository
	log   *zap.Logger
}

func NewReconcileService(carts domain.CartRepository, favs domain.FavoriteRepository, log *zap.Logger) *ReconcileService {
	return &ReconcileService{carts: carts, favs: favs, log: log}
}

// MergeGuestCart 同款商品数量累加、新款插入，整体一个事务。
// 失败时账号购物车保持原样，调用方不清游客快照，之后可重试。
func (s *ReconcileService) MergeGuestCart(email string, lines []domain.GuestCartLine) error {
	for _, line := range lines {
		if line.Quantity < 1 {
			return domain.ErrQuantityTooLow
		}
	}
	if err := s.carts.MergeLines(email, lines); err != nil {
		s.log.Warn("guest cart merge rolled back",
			zap.String("email", email), zap.Int("lines", len(lines)), zap.Error(err))
		return err
	}
	if len(lines) > 0 {
		s.log.Info("guest cart merged",
			zap.String("email", email), zap.Int("lines", len(lines)))
	}
	return nil
}

// ReplaceFavorites 破坏性替换，不做合并；要合并的调用方自己先求并集
func (s *ReconcileService) ReplaceFavorites(email string, productIDs []int64) error {
	return s.favs.ReplaceAll(email, productIDs)
}

func (s *ReconcileService) ToggleFavorite(email string, productID int64) (domain.ToggleOutcome, error) {
	return s.favs.Toggle(email, productID)
}

func (s *ReconcileService) AddFavorite(email string, productID int64) error {
	return s.favs.Add(email, productID)
}

func (s *ReconcileService) RemoveFavorite(email string, productID int64) error {
	return s.favs.Remove(email, productID)
}

func (s *ReconcileService) ListFavorites(email string) ([]domain.Product, error) {
	return s.favs.ListProducts(email)
}

func (s *ReconcileService) ListFavoriteIDs(email string) ([]int64, error) {
	return s.favs.ListIDs(email)
}

// UpsertCartLine 覆盖数量，数量 < 1 直接拒绝而不是当删除处理
func (s *ReconcileService) UpsertCartLine(email string, productID int64, quantity int) error {
	if quantity < 1 {
		return domain.ErrQuantityTooLow
	}
	return s.carts.Upsert(email, productID, quantity)
}

func (s *ReconcileService) RemoveCartLine(email string, productID int64) error {
	return s.carts.Remove(email, productID)
}

func (s *ReconcileService) ClearCart(email string) error {
	return s.carts.Clear(email)
}

func (s *ReconcileService) ListCart(email string) ([]domain.CartLine, error) {
	return s.carts.List(email)
}
