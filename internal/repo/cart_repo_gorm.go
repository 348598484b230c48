package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artemon-api/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

// Upsert 覆盖数量。用户显式改数量就是“设为”，累加只发生在 MergeLines。
func (r *CartRepo) Upsert(email string, productID int64, quantity int) error {
	item := domain.CartItem{UserEmail: email, ProductID: productID, Quantity: quantity}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": quantity}),
	}).Create(&item).Error
}

func (r *CartRepo) Remove(email string, productID int64) error {
	return r.db.Where("user_email = ? AND product_id = ?", email, productID).
		Delete(&domain.CartItem{}).Error
}

func (r *CartRepo) Clear(email string) error {
	return r.db.Where("user_email = ?", email).Delete(&domain.CartItem{}).Error
}

// List 购物车行连同商品数据，按加入顺序返回
func (r *CartRepo) List(email string) ([]domain.CartLine, error) {
	var items []domain.CartItem
	if err := r.db.Where("user_email = ?", email).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []domain.CartLine{}, nil
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	var products []domain.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	lines := make([]domain.CartLine, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue // 商品已下架，行随级联删除消失，这里兜底跳过
		}
		lines = append(lines, domain.CartLine{Product: p, Quantity: it.Quantity})
	}
	return lines, nil
}

// MergeLines 游客购物车并入账号购物车：已有行数量累加，没有的插入。
// 整个合并一个事务，任何一行失败就整体回滚，调用方保留游客快照以便重试。
func (r *CartRepo) MergeLines(email string, lines []domain.GuestCartLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			if line.Quantity < 1 {
				return domain.ErrQuantityTooLow
			}
			var existing domain.CartItem
			err := tx.First(&existing, "user_email = ? AND product_id = ?", email, line.ProductID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				item := domain.CartItem{UserEmail: email, ProductID: line.ProductID, Quantity: line.Quantity}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				err := tx.Model(&domain.CartItem{}).
					Where("user_email = ? AND product_id = ?", email, line.ProductID).
					Update("quantity", existing.Quantity+line.Quantity).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
