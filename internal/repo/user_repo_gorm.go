package repo

import (
	"errors"

	"gorm.io/gorm"

	"artemon-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepo) UpdateProfile(id int64, p domain.ProfileUpdate) (*domain.User, error) {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"display_name": p.DisplayName,
		"phone":        p.Phone,
		"address":      p.Address,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *UserRepo) Promote(email string) error {
	res := r.db.Model(&domain.User{}).Where("email = ?", email).Update("role", domain.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 一个事务里连带删掉该用户的收藏和购物车行
func (r *UserRepo) Delete(id int64) error {
	u, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return gorm.ErrRecordNotFound
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", u.Email).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_email = ?", u.Email).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, u.ID).Error
	})
}
