package repo

import (
	"gorm.io/gorm"

	"artemon-api/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) ListByUser(email string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Where("user_email = ?", email).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CancelPending 带状态条件的更新，发货后取消不会生效
func (r *OrderRepo) CancelPending(id int64) (bool, error) {
	res := r.db.Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, domain.OrderPending).
		Update("status", domain.OrderCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
