package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artemon-api/internal/domain"
)

type FavoriteRepo struct{ db *gorm.DB }

func NewFavoriteRepo(db *gorm.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Add 重复收藏静默忽略（INSERT OR IGNORE 语义）
func (r *FavoriteRepo) Add(email string, productID int64) error {
	fav := domain.Favorite{UserEmail: email, ProductID: productID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

func (r *FavoriteRepo) Remove(email string, productID int64) error {
	return r.db.Where("user_email = ? AND product_id = ?", email, productID).
		Delete(&domain.Favorite{}).Error
}

// Toggle 有则删、无则加，返回实际走的方向
func (r *FavoriteRepo) Toggle(email string, productID int64) (domain.ToggleOutcome, error) {
	var outcome domain.ToggleOutcome
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var fav domain.Favorite
		err := tx.First(&fav, "user_email = ? AND product_id = ?", email, productID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			outcome = domain.ToggleAdded
			return tx.Create(&domain.Favorite{UserEmail: email, ProductID: productID}).Error
		case err != nil:
			return err
		default:
			outcome = domain.ToggleRemoved
			return tx.Where("user_email = ? AND product_id = ?", email, productID).
				Delete(&domain.Favorite{}).Error
		}
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// ReplaceAll 破坏性替换：先删光再插入，整体一个事务。
// 中途失败整体回滚，原有收藏保持不动；并发读者看不到“空集”中间态。
func (r *FavoriteRepo) ReplaceAll(email string, productIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", email).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		for _, id := range productIDs {
			fav := domain.Favorite{UserEmail: email, ProductID: id}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *FavoriteRepo) ListIDs(email string) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&domain.Favorite{}).
		Where("user_email = ?", email).
		Pluck("product_id", &ids).Error
	return ids, err
}

func (r *FavoriteRepo) ListProducts(email string) ([]domain.Product, error) {
	ids, err := r.ListIDs(email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	var products []domain.Product
	err = r.db.Where("id IN ?", ids).Order("id DESC").Find(&products).Error
	return products, err
}
