package domain

import "time"

const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

type Order struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail string    `gorm:"size:191;index" json:"user_email"`
	Total     float64   `json:"total"`
	Status    string    `gorm:"size:16;not null;default:Pending" json:"status"`
	Items     string    `gorm:"type:text" json:"items"` // 下单时的商品快照（JSON）
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	Create(o *Order) error
	ListAll() ([]Order, error)
	ListByUser(email string) ([]Order, error)
	UpdateStatus(id int64, status string) error
	// CancelPending 仅 Pending 状态可取消；返回是否真的取消了
	CancelPending(id int64) (bool, error)
}
